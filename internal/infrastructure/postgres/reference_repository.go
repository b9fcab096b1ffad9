package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.BrandRepository    = (*BrandRepo)(nil)
)

// namedRow es la forma común de las tablas categories y brands.
type namedRow struct {
	ID, Name, Description string
	IsActive              bool
	CreatedBy, UpdatedBy  string
	CreatedAt, UpdatedAt  time.Time
}

// namedTable implementa el CRUD compartido de categorías y marcas sobre una tabla.
type namedTable struct {
	q     Querier
	table string
}

const namedColumns = `id, name, description, is_active, created_by, updated_by, created_at, updated_at`

func (t namedTable) create(ctx context.Context, n namedRow) error {
	_, err := t.q.Exec(ctx, `
		INSERT INTO `+t.table+` (id, name, name_key, description, is_active, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		n.ID, n.Name, entity.NormalizeName(n.Name), n.Description, n.IsActive, n.CreatedBy, n.UpdatedBy, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", t.table, err)
	}
	return nil
}

func (t namedTable) update(ctx context.Context, n namedRow) error {
	cmd, err := t.q.Exec(ctx, `
		UPDATE `+t.table+` SET name = $2, name_key = $3, description = $4, is_active = $5, updated_by = $6, updated_at = $7
		WHERE id = $1`,
		n.ID, n.Name, entity.NormalizeName(n.Name), n.Description, n.IsActive, n.UpdatedBy, n.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update %s: %w", t.table, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (t namedTable) findOne(ctx context.Context, where string, arg any) (*namedRow, error) {
	var n namedRow
	err := scanNamed(t.q.QueryRow(ctx, `SELECT `+namedColumns+` FROM `+t.table+` WHERE `+where, arg), &n)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", t.table, err)
	}
	return &n, nil
}

func (t namedTable) byID(ctx context.Context, id string) (*namedRow, error) {
	return t.findOne(ctx, "id = $1", id)
}

func (t namedTable) activeByName(ctx context.Context, name string) (*namedRow, error) {
	return t.findOne(ctx, "name_key = $1 AND is_active", entity.NormalizeName(name))
}

func (t namedTable) listActive(ctx context.Context) ([]namedRow, error) {
	rows, err := t.q.Query(ctx, `SELECT `+namedColumns+` FROM `+t.table+` WHERE is_active ORDER BY name_key`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.table, err)
	}
	defer rows.Close()
	var list []namedRow
	for rows.Next() {
		var n namedRow
		if err := scanNamed(rows, &n); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.table, err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func scanNamed(row pgx.Row, n *namedRow) error {
	return row.Scan(&n.ID, &n.Name, &n.Description, &n.IsActive, &n.CreatedBy, &n.UpdatedBy, &n.CreatedAt, &n.UpdatedAt)
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct{ t namedTable }

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{t: namedTable{q: q, table: "categories"}}
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	return r.t.create(ctx, categoryRow(c))
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	n, err := r.t.byID(ctx, id)
	return n.category(), err
}

func (r *CategoryRepo) FindActiveByName(ctx context.Context, name string) (*entity.Category, error) {
	n, err := r.t.activeByName(ctx, name)
	return n.category(), err
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	return r.t.update(ctx, categoryRow(c))
}

func (r *CategoryRepo) ListActive(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.t.listActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Category, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].category())
	}
	return out, nil
}

func categoryRow(c *entity.Category) namedRow {
	return namedRow{
		ID: c.ID, Name: c.Name, Description: c.Description, IsActive: c.IsActive,
		CreatedBy: c.CreatedBy, UpdatedBy: c.UpdatedBy, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}
}

func (n *namedRow) category() *entity.Category {
	if n == nil {
		return nil
	}
	return &entity.Category{
		ID: n.ID, Name: n.Name, Description: n.Description, IsActive: n.IsActive,
		CreatedBy: n.CreatedBy, UpdatedBy: n.UpdatedBy, CreatedAt: n.CreatedAt, UpdatedAt: n.UpdatedAt,
	}
}

// ── Marcas ────────────────────────────────────────────────────────────────────

// BrandRepo implementación del puerto BrandRepository sobre PostgreSQL.
type BrandRepo struct{ t namedTable }

// NewBrandRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{t: namedTable{q: q, table: "brands"}}
}

func (r *BrandRepo) Create(ctx context.Context, b *entity.Brand) error {
	return r.t.create(ctx, brandRow(b))
}

func (r *BrandRepo) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	n, err := r.t.byID(ctx, id)
	return n.brand(), err
}

func (r *BrandRepo) FindActiveByName(ctx context.Context, name string) (*entity.Brand, error) {
	n, err := r.t.activeByName(ctx, name)
	return n.brand(), err
}

func (r *BrandRepo) Update(ctx context.Context, b *entity.Brand) error {
	return r.t.update(ctx, brandRow(b))
}

func (r *BrandRepo) ListActive(ctx context.Context) ([]*entity.Brand, error) {
	rows, err := r.t.listActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Brand, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].brand())
	}
	return out, nil
}

func brandRow(b *entity.Brand) namedRow {
	return namedRow{
		ID: b.ID, Name: b.Name, Description: b.Description, IsActive: b.IsActive,
		CreatedBy: b.CreatedBy, UpdatedBy: b.UpdatedBy, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt,
	}
}

func (n *namedRow) brand() *entity.Brand {
	if n == nil {
		return nil
	}
	return &entity.Brand{
		ID: n.ID, Name: n.Name, Description: n.Description, IsActive: n.IsActive,
		CreatedBy: n.CreatedBy, UpdatedBy: n.UpdatedBy, CreatedAt: n.CreatedAt, UpdatedAt: n.UpdatedAt,
	}
}
