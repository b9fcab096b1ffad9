package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `p.id, p.category_id, p.brand_id, p.model_number, p.hp, p.outlet, p.max_head, p.max_flow,
	p.watt, p.phase, p.price, p.is_active, p.created_by, p.updated_by, p.created_at, p.updated_at`

func scanProduct(row pgx.Row, p *entity.Product, extra ...any) error {
	dest := []any{
		&p.ID, &p.CategoryID, &p.BrandID, &p.ModelNumber, &p.HP, &p.Outlet, &p.MaxHead, &p.MaxFlow,
		&p.Watt, &p.Phase, &p.Price, &p.IsActive, &p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

// Create persiste un nuevo producto. El índice parcial sobre model_key garantiza la unicidad entre activos.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, category_id, brand_id, model_number, model_key, hp, outlet, outlet_key, max_head,
			max_flow, watt, phase, price, is_active, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CategoryID, p.BrandID, p.ModelNumber, p.Key(), p.HP, p.Outlet, entity.Fold(p.Outlet), p.MaxHead,
		p.MaxFlow, p.Watt, p.Phase, p.Price, p.IsActive, p.CreatedBy, p.UpdatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (activo o no).
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var p entity.Product
	err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1`, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// FindActiveByModel busca el producto activo con la misma clave de modelo.
func (r *ProductRepo) FindActiveByModel(ctx context.Context, modelNumber string) (*entity.Product, error) {
	var p entity.Product
	err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products p WHERE p.model_key = $1 AND p.is_active`,
		entity.ModelKey(modelNumber)), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product by model: %w", err)
	}
	return &p, nil
}

// Update reemplaza todos los campos editables (incluida la baja lógica).
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET category_id = $2, brand_id = $3, model_number = $4, model_key = $5, hp = $6,
			outlet = $7, max_head = $8, max_flow = $9, watt = $10, phase = $11, price = $12,
			is_active = $13, updated_by = $14, updated_at = $15, outlet_key = $16
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.CategoryID, p.BrandID, p.ModelNumber, p.Key(), p.HP,
		p.Outlet, p.MaxHead, p.MaxFlow, p.Watt, p.Phase, p.Price,
		p.IsActive, p.UpdatedBy, p.UpdatedAt, entity.Fold(p.Outlet),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePrice modifica solo el precio de un producto activo.
func (r *ProductRepo) UpdatePrice(ctx context.Context, id string, price decimal.Decimal, updatedBy string, at time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET price = $2, updated_by = $3, updated_at = $4 WHERE id = $1 AND is_active`,
		id, price, updatedBy, at,
	)
	if err != nil {
		return fmt.Errorf("update product price: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateDetails modifica solo los atributos técnicos de un producto activo.
func (r *ProductRepo) UpdateDetails(ctx context.Context, id string, d entity.ProductDetails, updatedBy string, at time.Time) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products SET hp = $2, outlet = $3, max_head = $4, max_flow = $5, watt = $6, phase = $7,
			updated_by = $8, updated_at = $9, outlet_key = $10
		WHERE id = $1 AND is_active`,
		id, d.HP, d.Outlet, d.MaxHead, d.MaxFlow, d.Watt, d.Phase, updatedBy, at, entity.Fold(d.Outlet),
	)
	if err != nil {
		return fmt.Errorf("update product details: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve la página filtrada de productos activos con los nombres de categoría y marca, y el total.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.ProductView, int, error) {
	where, args := productWhere(f)
	from := ` FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN brands b ON b.id = p.brand_id
		WHERE ` + where

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT ` + productColumns + `, c.name, b.name` + from + ` ORDER BY ` + orderBy(f.SortBy, f.SortDesc)
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.ProductView, 0)
	for rows.Next() {
		var v entity.ProductView
		if err := scanProduct(rows, &v.Product, &v.CategoryName, &v.BrandName); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// productWhere traduce el filtro a SQL con placeholders posicionales.
func productWhere(f repository.ProductFilter) (string, []any) {
	conds := []string{"p.is_active"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if f.CategoryID != "" {
		conds = append(conds, "p.category_id = "+arg(f.CategoryID))
	}
	if f.BrandID != "" {
		conds = append(conds, "p.brand_id = "+arg(f.BrandID))
	}
	if f.Phase != "" {
		conds = append(conds, "p.phase = "+arg(f.Phase))
	}
	if f.MinHP != nil {
		conds = append(conds, "p.hp >= "+arg(*f.MinHP))
	}
	if f.MaxHP != nil {
		conds = append(conds, "p.hp <= "+arg(*f.MaxHP))
	}
	if f.MinPrice != nil {
		conds = append(conds, "p.price >= "+arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		conds = append(conds, "p.price <= "+arg(*f.MaxPrice))
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		pat := arg(likePattern(entity.Fold(term)))
		search := []string{
			"p.model_key LIKE " + pat,
			"p.outlet_key LIKE " + pat,
			"lower(p.phase) LIKE " + pat, // phase es ASCII por CHECK: lower coincide con Fold
			"c.name_key LIKE " + pat,
			"b.name_key LIKE " + pat,
		}
		if n, err := strconv.ParseFloat(term, 64); err == nil {
			num := arg(n)
			search = append(search,
				"p.hp = "+num, "p.max_head = "+num, "p.max_flow = "+num, "p.watt = "+num,
				"p.price = "+arg(decimal.NewFromFloat(n)),
			)
		}
		conds = append(conds, "("+strings.Join(search, " OR ")+")")
	}
	return strings.Join(conds, " AND "), args
}

// orderBy mapea el campo de orden a columnas; p.id desempata para un orden estable.
func orderBy(field string, desc bool) string {
	col := "p.created_at"
	switch field {
	case repository.SortModelNumber:
		col = "p.model_key"
	case repository.SortHP:
		col = "p.hp"
	case repository.SortPrice:
		col = "p.price"
	case repository.SortWatt:
		col = "p.watt"
	case repository.SortMaxHead:
		col = "p.max_head"
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	return col + " " + dir + ", p.id " + dir
}
