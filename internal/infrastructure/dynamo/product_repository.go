package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación DynamoDB de ProductRepository.
type ProductRepo struct {
	s *Store
}

func activeModelGuard(p *entity.Product) string {
	if !p.IsActive {
		return ""
	}
	return modelGuard(p.Key())
}

// Create persiste un nuevo producto y reserva su modelo si está activo.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	item, err := attributevalue.MarshalMap(toProductItem(product))
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	err = r.s.writeGuarded(ctx, guardedWrite{
		table:    r.s.tables.Products,
		id:       product.ID,
		item:     item,
		create:   true,
		newGuard: activeModelGuard(product),
	})
	if errors.Is(err, errItemCondition) || errors.Is(err, errGuardTaken) {
		return domain.ErrDuplicate
	}
	return err
}

// GetByID obtiene un producto por ID (activo o no); nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	raw, err := r.s.getItem(ctx, r.s.tables.Products, id)
	if err != nil || raw == nil {
		return nil, err
	}
	var it productItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	if it.Kind != kindProduct {
		return nil, nil
	}
	return it.toEntity()
}

// FindActiveByModel resuelve la guardia del modelo y lee el producto.
func (r *ProductRepo) FindActiveByModel(ctx context.Context, modelNumber string) (*entity.Product, error) {
	id, err := r.s.resolveGuard(ctx, r.s.tables.Products, modelGuard(entity.ModelKey(modelNumber)))
	if err != nil || id == "" {
		return nil, err
	}
	p, err := r.GetByID(ctx, id)
	if err != nil || p == nil || !p.IsActive {
		return nil, err
	}
	return p, nil
}

// Update reemplaza el producto completo moviendo la guardia si cambia el modelo o el estado.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	old, err := r.GetByID(ctx, product.ID)
	if err != nil {
		return err
	}
	if old == nil {
		return domain.ErrNotFound
	}
	item, err := attributevalue.MarshalMap(toProductItem(product))
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	err = r.s.writeGuarded(ctx, guardedWrite{
		table:    r.s.tables.Products,
		id:       product.ID,
		item:     item,
		oldGuard: activeModelGuard(old),
		newGuard: activeModelGuard(product),
	})
	switch {
	case errors.Is(err, errItemCondition):
		return domain.ErrNotFound
	case errors.Is(err, errGuardTaken):
		return domain.ErrDuplicate
	}
	return err
}

// UpdatePrice modifica solo el precio de un producto activo.
func (r *ProductRepo) UpdatePrice(ctx context.Context, id string, price decimal.Decimal, updatedBy string, at time.Time) error {
	return r.updateActive(ctx, id, "SET #price = :price", map[string]string{"#price": "price"},
		map[string]types.AttributeValue{":price": str(price.String())}, updatedBy, at)
}

// UpdateDetails modifica solo los atributos técnicos de un producto activo.
func (r *ProductRepo) UpdateDetails(ctx context.Context, id string, d entity.ProductDetails, updatedBy string, at time.Time) error {
	values, err := attributevalue.MarshalMap(map[string]any{
		":hp": d.HP, ":outlet": d.Outlet, ":max_head": d.MaxHead,
		":max_flow": d.MaxFlow, ":watt": d.Watt, ":phase": d.Phase,
	})
	if err != nil {
		return fmt.Errorf("marshal details: %w", err)
	}
	names := map[string]string{
		"#hp": "hp", "#outlet": "outlet", "#max_head": "max_head",
		"#max_flow": "max_flow", "#watt": "watt", "#phase": "phase",
	}
	expr := "SET #hp = :hp, #outlet = :outlet, #max_head = :max_head, #max_flow = :max_flow, #watt = :watt, #phase = :phase"
	return r.updateActive(ctx, id, expr, names, values, updatedBy, at)
}

// updateActive aplica expr más la auditoría, condicionado a que el producto exista y esté activo.
func (r *ProductRepo) updateActive(ctx context.Context, id, expr string, names map[string]string,
	values map[string]types.AttributeValue, updatedBy string, at time.Time) error {
	names["#id"] = attrID
	names["#is_active"] = "is_active"
	names["#updated_by"] = "updated_by"
	names["#updated_at"] = "updated_at"
	values[":updated_by"] = str(updatedBy)
	values[":updated_at"] = str(formatTime(at))
	values[":true"] = &types.AttributeValueMemberBOOL{Value: true}

	_, err := r.s.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.s.tables.Products),
		Key:                       keyOf(id),
		UpdateExpression:          aws.String(expr + ", #updated_by = :updated_by, #updated_at = :updated_at"),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #is_active = :true"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	var failed *types.ConditionalCheckFailedException
	if errors.As(err, &failed) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update product %s: %w", id, err)
	}
	return nil
}

// List recorre la tabla y aplica filtro, orden y paginación en memoria.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.ProductView, int, error) {
	categories, err := r.s.Categories().names(ctx)
	if err != nil {
		return nil, 0, err
	}
	brands, err := r.s.Brands().names(ctx)
	if err != nil {
		return nil, 0, err
	}

	var views []*entity.ProductView
	err = r.s.scanKind(ctx, r.s.tables.Products, kindProduct, func(raw map[string]types.AttributeValue) error {
		var it productItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return fmt.Errorf("unmarshal product: %w", err)
		}
		p, err := it.toEntity()
		if err != nil {
			return err
		}
		v := &entity.ProductView{
			Product:      *p,
			CategoryName: categories[p.CategoryID],
			BrandName:    brands[p.BrandID],
		}
		if filter.Matches(v) {
			views = append(views, v)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	repository.SortViews(views, filter.SortBy, filter.SortDesc)
	page := filter.Page(views)
	if page == nil {
		page = []*entity.ProductView{}
	}
	return page, len(views), nil
}
