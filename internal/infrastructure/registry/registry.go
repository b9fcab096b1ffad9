// Package registry abre el almacenamiento elegido por STORE_DRIVER y expone sus repositorios.
package registry

import (
	"context"
	"fmt"

	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
	"github.com/Dill1027/DT-Price-List/internal/infrastructure/cloud"
	"github.com/Dill1027/DT-Price-List/internal/infrastructure/dynamo"
	"github.com/Dill1027/DT-Price-List/internal/infrastructure/memory"
	"github.com/Dill1027/DT-Price-List/internal/infrastructure/postgres"
	"github.com/Dill1027/DT-Price-List/pkg/config"
	"github.com/Dill1027/DT-Price-List/pkg/logger"
)

// Repos puertos de persistencia del driver activo.
type Repos struct {
	Products   repository.ProductRepository
	Categories repository.CategoryRepository
	Brands     repository.BrandRepository
	Users      repository.UserRepository
}

// Store es el almacenamiento abierto. Tx es nil salvo con PostgreSQL.
type Store struct {
	Driver string
	Repos  Repos
	Tx     *postgres.TxRunner
	close  func()
}

// Close libera las conexiones del driver.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open conecta el driver configurado. Con PostgreSQL aplica el esquema embebido;
// con DynamoDB crea las tablas si DYNAMODB_CREATE_TABLES está activo.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("postgres pool: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("postgres schema: %w", err)
		}
		r := postgres.NewRepos(pool)
		log.Info().Str("driver", cfg.Store.Driver).Msg("almacenamiento listo")
		return &Store{
			Driver: cfg.Store.Driver,
			Repos:  Repos{Products: r.Products, Categories: r.Categories, Brands: r.Brands, Users: r.Users},
			Tx:     postgres.NewTxRunner(pool),
			close:  pool.Close,
		}, nil

	case config.StoreDriverDynamo:
		awsCfg, err := cloud.LoadConfig(ctx, cfg.Dynamo)
		if err != nil {
			return nil, err
		}
		s := dynamo.NewStore(cloud.NewDynamoClient(awsCfg, cfg.Dynamo.Endpoint), dynamo.Tables{
			Products:   cfg.Dynamo.ProductsTable,
			Categories: cfg.Dynamo.CategoriesTable,
			Brands:     cfg.Dynamo.BrandsTable,
			Users:      cfg.Dynamo.UsersTable,
		})
		if cfg.Dynamo.CreateTables {
			if err := s.EnsureTables(ctx); err != nil {
				return nil, err
			}
		}
		log.Info().Str("driver", cfg.Store.Driver).Str("region", cfg.Dynamo.Region).Msg("almacenamiento listo")
		return &Store{
			Driver: cfg.Store.Driver,
			Repos:  Repos{Products: s.Products(), Categories: s.Categories(), Brands: s.Brands(), Users: s.Users()},
		}, nil

	case config.StoreDriverMemory:
		s := memory.NewStore()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return &Store{
			Driver: cfg.Store.Driver,
			Repos:  Repos{Products: s.Products(), Categories: s.Categories(), Brands: s.Brands(), Users: s.Users()},
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
