// Package dynamo implementa los puertos de persistencia sobre Amazon DynamoDB.
//
// Cada entidad vive en su propia tabla con clave de partición "id". La
// unicidad de modelos, nombres y usernames se garantiza con ítems guardia
// ("model#<clave>", "name#<clave>", "username#<clave>") escritos en la misma
// transacción que la entidad.
package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// API es el subconjunto de *dynamodb.Client que usan los repositorios.
type API interface {
	dynamodb.ScanAPIClient
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// Tables nombres de las tablas por entidad.
type Tables struct {
	Products   string
	Categories string
	Brands     string
	Users      string
}

func (t Tables) all() []string {
	return []string{t.Products, t.Categories, t.Brands, t.Users}
}

// Store agrupa el cliente y las tablas; sus métodos devuelven los repositorios.
type Store struct {
	api    API
	tables Tables
}

// NewStore crea el almacén sobre api.
func NewStore(api API, tables Tables) *Store {
	return &Store{api: api, tables: tables}
}

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Categories devuelve el repositorio de categorías.
func (s *Store) Categories() *CategoryRepo {
	return &CategoryRepo{named: named{s: s, table: s.tables.Categories, kind: kindCategory}}
}

// Brands devuelve el repositorio de marcas.
func (s *Store) Brands() *BrandRepo {
	return &BrandRepo{named: named{s: s, table: s.tables.Brands, kind: kindBrand}}
}

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// EnsureTables crea las tablas que falten (on-demand, clave "id"). Pensado para
// DynamoDB Local y entornos de desarrollo; en producción las tablas vienen de IaC.
func (s *Store) EnsureTables(ctx context.Context) error {
	for _, name := range s.tables.all() {
		_, err := s.api.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(name),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(attrID), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(attrID), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		})
		var inUse *types.ResourceInUseException
		if err != nil && !errors.As(err, &inUse) {
			return fmt.Errorf("create table %s: %w", name, err)
		}
	}
	return nil
}

// getItem lee un ítem por id con lectura consistente; nil si no existe.
func (s *Store) getItem(ctx context.Context, table, id string) (map[string]types.AttributeValue, error) {
	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            keyOf(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", table, err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

// scanKind recorre todos los ítems de la tabla con el kind indicado (excluye guardias).
func (s *Store) scanKind(ctx context.Context, table, kind string, fn func(map[string]types.AttributeValue) error) error {
	p := dynamodb.NewScanPaginator(s.api, &dynamodb.ScanInput{
		TableName:                 aws.String(table),
		FilterExpression:          aws.String("#kind = :kind"),
		ExpressionAttributeNames:  map[string]string{"#kind": attrKind},
		ExpressionAttributeValues: map[string]types.AttributeValue{":kind": str(kind)},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		for _, it := range page.Items {
			if err := fn(it); err != nil {
				return err
			}
		}
	}
	return nil
}

func keyOf(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{attrID: str(id)}
}

func str(s string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: s}
}
