package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repos agrupa los repositorios atados a una misma transacción.
type Repos struct {
	Products   *ProductRepo
	Categories *CategoryRepo
	Brands     *BrandRepo
	Users      *UserRepo
}

// NewRepos construye todos los repositorios sobre el mismo Querier.
func NewRepos(q Querier) Repos {
	return Repos{
		Products:   NewProductRepository(q),
		Categories: NewCategoryRepository(q),
		Brands:     NewBrandRepository(q),
		Users:      NewUserRepository(q),
	}
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(ctx context.Context, repos Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
