package dynamo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
)

// fakeAPI guarda ítems por tabla e id y registra las escrituras; no evalúa condiciones.
type fakeAPI struct {
	items       map[string]map[string]map[string]types.AttributeValue
	transacts   []*dynamodb.TransactWriteItemsInput
	updates     []*dynamodb.UpdateItemInput
	created     []string
	transactErr error
	updateErr   error
	createErr   error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{items: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeAPI) put(table string, item map[string]types.AttributeValue) {
	if f.items[table] == nil {
		f.items[table] = map[string]map[string]types.AttributeValue{}
	}
	f.items[table][item[attrID].(*types.AttributeValueMemberS).Value] = item
}

func (f *fakeAPI) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key[attrID].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[aws.ToString(in.TableName)][id]}, nil
}

func (f *fakeAPI) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	kind := in.ExpressionAttributeValues[":kind"].(*types.AttributeValueMemberS).Value
	var out []map[string]types.AttributeValue
	for _, it := range f.items[aws.ToString(in.TableName)] {
		if k, ok := it[attrKind].(*types.AttributeValueMemberS); ok && k.Value == kind {
			out = append(out, it)
		}
	}
	return &dynamodb.ScanOutput{Items: out, Count: int32(len(out))}, nil
}

func (f *fakeAPI) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	return &dynamodb.UpdateItemOutput{}, f.updateErr
}

func (f *fakeAPI) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transacts = append(f.transacts, in)
	if f.transactErr != nil {
		return nil, f.transactErr
	}
	for _, ti := range in.TransactItems {
		if ti.Put != nil {
			f.put(aws.ToString(ti.Put.TableName), ti.Put.Item)
		}
		if ti.Delete != nil {
			delete(f.items[aws.ToString(ti.Delete.TableName)], ti.Delete.Key[attrID].(*types.AttributeValueMemberS).Value)
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeAPI) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = append(f.created, aws.ToString(in.TableName))
	return &dynamodb.CreateTableOutput{}, f.createErr
}

var testTables = Tables{Products: "products", Categories: "categories", Brands: "brands", Users: "users"}

func canceled(codes ...string) error {
	reasons := make([]types.CancellationReason, 0, len(codes))
	for _, c := range codes {
		reasons = append(reasons, types.CancellationReason{Code: aws.String(c)})
	}
	return &types.TransactionCanceledException{CancellationReasons: reasons}
}

func sampleProduct() *entity.Product {
	at := time.Date(2026, 10, 14, 9, 30, 0, 123, time.UTC)
	return &entity.Product{
		ID: "p-1", CategoryID: "cat-sub", BrandID: "brand-pentax", ModelNumber: "SUB-100",
		ProductDetails: entity.ProductDetails{HP: 1.5, Outlet: "1 inch", MaxHead: 50, MaxFlow: 100, Watt: 750, Phase: entity.PhaseSingle},
		Price:          decimal.RequireFromString("15000.50"),
		IsActive:       true,
		CreatedBy:      "admin", UpdatedBy: "admin", CreatedAt: at, UpdatedAt: at,
	}
}

func TestProductItem_ConservaPrecioYFechas(t *testing.T) {
	p := sampleProduct()
	it := toProductItem(p)
	assert.Equal(t, "sub-100", it.ModelKey)
	assert.Equal(t, "15000.5", it.Price)

	got, err := it.toEntity()
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(got.Price))
	assert.True(t, p.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, p.ProductDetails, got.ProductDetails)

	it.Price = "abc"
	_, err = it.toEntity()
	assert.Error(t, err)
}

func TestGuardedWrite_Items(t *testing.T) {
	w := guardedWrite{table: "products", id: "p-1", create: true, newGuard: "model#sub-100"}
	items := w.transactItems()
	require.Len(t, items, 2)
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(items[0].Put.ConditionExpression))
	guard := items[1].Put.Item
	assert.Equal(t, &types.AttributeValueMemberS{Value: "model#sub-100"}, guard[attrID])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "p-1"}, guard[attrTarget])

	same := guardedWrite{table: "products", id: "p-1", oldGuard: "model#a", newGuard: "model#a"}
	items = same.transactItems()
	require.Len(t, items, 1)
	assert.Equal(t, "attribute_exists(#id)", aws.ToString(items[0].Put.ConditionExpression))

	moved := guardedWrite{table: "products", id: "p-1", oldGuard: "model#a", newGuard: "model#b"}
	items = moved.transactItems()
	require.Len(t, items, 3)
	assert.NotNil(t, items[1].Delete)
	assert.NotNil(t, items[2].Put)

	deactivated := guardedWrite{table: "products", id: "p-1", oldGuard: "model#a"}
	items = deactivated.transactItems()
	require.Len(t, items, 2)
	assert.NotNil(t, items[1].Delete)
}

func TestClassify(t *testing.T) {
	assert.NoError(t, classify(nil))
	assert.ErrorIs(t, classify(canceled("ConditionalCheckFailed", "None")), errItemCondition)
	assert.ErrorIs(t, classify(canceled("None", "ConditionalCheckFailed")), errGuardTaken)
	other := errors.New("throttled")
	assert.ErrorIs(t, classify(other), other)
}

func TestProductRepo_CreateYBuscarPorModelo(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	repo := NewStore(api, testTables).Products()

	require.NoError(t, repo.Create(ctx, sampleProduct()))
	got, err := repo.FindActiveByModel(ctx, " sub-100 ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "p-1", got.ID)

	missing, err := repo.FindActiveByModel(ctx, "OTHER")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepo_CreateDuplicado(t *testing.T) {
	api := newFakeAPI()
	api.transactErr = canceled("None", "ConditionalCheckFailed")
	repo := NewStore(api, testTables).Products()

	err := repo.Create(context.Background(), sampleProduct())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductRepo_SoftDeleteLiberaModelo(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	repo := NewStore(api, testTables).Products()
	p := sampleProduct()
	require.NoError(t, repo.Create(ctx, p))

	p.IsActive = false
	require.NoError(t, repo.Update(ctx, p))
	last := api.transacts[len(api.transacts)-1]
	require.Len(t, last.TransactItems, 2)
	assert.NotNil(t, last.TransactItems[1].Delete)

	got, err := repo.FindActiveByModel(ctx, "SUB-100")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductRepo_UpdateInexistente(t *testing.T) {
	repo := NewStore(newFakeAPI(), testTables).Products()
	err := repo.Update(context.Background(), sampleProduct())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepo_UpdatePrice(t *testing.T) {
	api := newFakeAPI()
	repo := NewStore(api, testTables).Products()
	at := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.UpdatePrice(context.Background(), "p-1", decimal.NewFromInt(16500), "admin", at))
	require.Len(t, api.updates, 1)
	in := api.updates[0]
	assert.Equal(t, "SET #price = :price, #updated_by = :updated_by, #updated_at = :updated_at", aws.ToString(in.UpdateExpression))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "16500"}, in.ExpressionAttributeValues[":price"])

	api.updateErr = &types.ConditionalCheckFailedException{}
	err := repo.UpdatePrice(context.Background(), "p-1", decimal.NewFromInt(1), "admin", at)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepo_List(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	store := NewStore(api, testTables)
	now := time.Now().UTC()
	require.NoError(t, store.Categories().Create(ctx, &entity.Category{ID: "cat-sub", Name: "Submersible", IsActive: true, CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, store.Brands().Create(ctx, &entity.Brand{ID: "brand-pentax", Name: "Pentax", IsActive: true, CreatedAt: now, UpdatedAt: now}))

	a := sampleProduct()
	b := sampleProduct()
	b.ID, b.ModelNumber, b.HP = "p-2", "SUB-200", 3
	c := sampleProduct()
	c.ID, c.ModelNumber, c.IsActive = "p-3", "SUB-300", false
	for _, p := range []*entity.Product{a, b, c} {
		require.NoError(t, store.Products().Create(ctx, p))
	}

	views, total, err := store.Products().List(ctx, repository.ProductFilter{
		SortBy: repository.SortHP, SortDesc: true, Limit: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, views, 1)
	assert.Equal(t, "SUB-200", views[0].ModelNumber)
	assert.Equal(t, "Submersible", views[0].CategoryName)
	assert.Equal(t, "Pentax", views[0].BrandName)
}

func TestCategoryRepo_FindActiveByName(t *testing.T) {
	ctx := context.Background()
	repo := NewStore(newFakeAPI(), testTables).Categories()
	require.NoError(t, repo.Create(ctx, &entity.Category{ID: "c-1", Name: "Deep Well", IsActive: true}))

	got, err := repo.FindActiveByName(ctx, "  deep   WELL")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "c-1", got.ID)

	list, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUserRepo_UsernameTomado(t *testing.T) {
	api := newFakeAPI()
	api.transactErr = canceled("None", "ConditionalCheckFailed")
	repo := NewStore(api, testTables).Users()

	err := repo.Create(context.Background(), &entity.User{ID: "u-1", Username: "admin", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserRepo_GetByUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewStore(newFakeAPI(), testTables).Users()
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u-1", Username: "Admin", Role: entity.RoleAdmin, IsActive: true}))

	got, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u-1", got.ID)
}

func TestEnsureTables(t *testing.T) {
	api := newFakeAPI()
	api.createErr = &types.ResourceInUseException{}
	store := NewStore(api, testTables)

	require.NoError(t, store.EnsureTables(context.Background()))
	assert.Equal(t, []string{"products", "categories", "brands", "users"}, api.created)

	api.createErr = errors.New("boom")
	assert.Error(t, store.EnsureTables(context.Background()))
}

func TestNamedItemMarshal(t *testing.T) {
	item, err := attributevalue.MarshalMap(toBrandItem(&entity.Brand{ID: "b-1", Name: "Deep Tec", IsActive: true}))
	require.NoError(t, err)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "deep tec"}, item["name_key"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: kindBrand}, item[attrKind])
}
