package dynamo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.BrandRepository    = (*BrandRepo)(nil)
)

// named implementa el acceso común a categorías y marcas.
type named struct {
	s     *Store
	table string
	kind  string
}

func activeNameGuard(it namedItem) string {
	if !it.IsActive {
		return ""
	}
	return nameGuard(it.NameKey)
}

func (n named) create(ctx context.Context, it namedItem) error {
	item, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", n.kind, err)
	}
	err = n.s.writeGuarded(ctx, guardedWrite{
		table: n.table, id: it.ID, item: item, create: true, newGuard: activeNameGuard(it),
	})
	if errors.Is(err, errItemCondition) || errors.Is(err, errGuardTaken) {
		return domain.ErrDuplicate
	}
	return err
}

func (n named) get(ctx context.Context, id string) (*namedItem, error) {
	raw, err := n.s.getItem(ctx, n.table, id)
	if err != nil || raw == nil {
		return nil, err
	}
	var it namedItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", n.kind, err)
	}
	if it.Kind != n.kind {
		return nil, nil
	}
	return &it, nil
}

func (n named) findActive(ctx context.Context, name string) (*namedItem, error) {
	id, err := n.s.resolveGuard(ctx, n.table, nameGuard(entity.NormalizeName(name)))
	if err != nil || id == "" {
		return nil, err
	}
	it, err := n.get(ctx, id)
	if err != nil || it == nil || !it.IsActive {
		return nil, err
	}
	return it, nil
}

func (n named) update(ctx context.Context, it namedItem) error {
	old, err := n.get(ctx, it.ID)
	if err != nil {
		return err
	}
	if old == nil {
		return domain.ErrNotFound
	}
	item, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", n.kind, err)
	}
	err = n.s.writeGuarded(ctx, guardedWrite{
		table: n.table, id: it.ID, item: item,
		oldGuard: activeNameGuard(*old), newGuard: activeNameGuard(it),
	})
	switch {
	case errors.Is(err, errItemCondition):
		return domain.ErrNotFound
	case errors.Is(err, errGuardTaken):
		return domain.ErrDuplicate
	}
	return err
}

// listActive devuelve los ítems activos ordenados por nombre.
func (n named) listActive(ctx context.Context) ([]namedItem, error) {
	var out []namedItem
	err := n.s.scanKind(ctx, n.table, n.kind, func(raw map[string]types.AttributeValue) error {
		var it namedItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return fmt.Errorf("unmarshal %s: %w", n.kind, err)
		}
		if it.IsActive {
			out = append(out, it)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameKey < out[j].NameKey })
	return out, nil
}

// names devuelve id → nombre de todos los ítems, activos o no (para listados de productos).
func (n named) names(ctx context.Context) (map[string]string, error) {
	m := map[string]string{}
	err := n.s.scanKind(ctx, n.table, n.kind, func(raw map[string]types.AttributeValue) error {
		var it namedItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return fmt.Errorf("unmarshal %s: %w", n.kind, err)
		}
		m[it.ID] = it.Name
		return nil
	})
	return m, err
}

// ── Category ───────────────────────────────────────────────────────────────

// CategoryRepo implementación DynamoDB de CategoryRepository.
type CategoryRepo struct{ named }

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	return r.create(ctx, toCategoryItem(c))
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	it, err := r.get(ctx, id)
	if err != nil || it == nil {
		return nil, err
	}
	return it.toCategory(), nil
}

func (r *CategoryRepo) FindActiveByName(ctx context.Context, name string) (*entity.Category, error) {
	it, err := r.findActive(ctx, name)
	if err != nil || it == nil {
		return nil, err
	}
	return it.toCategory(), nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	return r.update(ctx, toCategoryItem(c))
}

func (r *CategoryRepo) ListActive(ctx context.Context) ([]*entity.Category, error) {
	items, err := r.listActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Category, 0, len(items))
	for _, it := range items {
		out = append(out, it.toCategory())
	}
	return out, nil
}

// ── Brand ──────────────────────────────────────────────────────────────────

// BrandRepo implementación DynamoDB de BrandRepository.
type BrandRepo struct{ named }

func (r *BrandRepo) Create(ctx context.Context, b *entity.Brand) error {
	return r.create(ctx, toBrandItem(b))
}

func (r *BrandRepo) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	it, err := r.get(ctx, id)
	if err != nil || it == nil {
		return nil, err
	}
	return it.toBrand(), nil
}

func (r *BrandRepo) FindActiveByName(ctx context.Context, name string) (*entity.Brand, error) {
	it, err := r.findActive(ctx, name)
	if err != nil || it == nil {
		return nil, err
	}
	return it.toBrand(), nil
}

func (r *BrandRepo) Update(ctx context.Context, b *entity.Brand) error {
	return r.update(ctx, toBrandItem(b))
}

func (r *BrandRepo) ListActive(ctx context.Context) ([]*entity.Brand, error) {
	items, err := r.listActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Brand, 0, len(items))
	for _, it := range items {
		out = append(out, it.toBrand())
	}
	return out, nil
}
