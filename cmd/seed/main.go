// seed crea los usuarios iniciales (admin, project, employee) y el catálogo base
// de categorías y marcas en el almacenamiento configurado.
//
// Uso: go run ./cmd/seed
// Credenciales del admin: ADMIN_USERNAME y ADMIN_PASSWORD (por defecto admin / admin123).
package main

import (
	"context"
	"os"
	"time"

	"github.com/Dill1027/DT-Price-List/internal/application/seed"
	"github.com/Dill1027/DT-Price-List/internal/infrastructure/postgres"
	"github.com/Dill1027/DT-Price-List/internal/infrastructure/registry"
	"github.com/Dill1027/DT-Price-List/pkg/config"
	"github.com/Dill1027/DT-Price-List/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	if cfg.Store.Driver == config.StoreDriverMemory {
		log.Fatal().Msg("el driver memory no persiste; use postgres o dynamodb")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := registry.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.Close()

	opts := seed.Options{
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	var rep seed.Report
	if store.Tx != nil {
		err = store.Tx.Run(ctx, func(ctx context.Context, r postgres.Repos) error {
			var runErr error
			rep, runErr = seed.Run(ctx, seed.Repos{Users: r.Users, Categories: r.Categories, Brands: r.Brands}, opts)
			return runErr
		})
	} else {
		rep, err = seed.Run(ctx, seed.Repos{Users: store.Repos.Users, Categories: store.Repos.Categories, Brands: store.Repos.Brands}, opts)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}

	log.Info().
		Str("driver", store.Driver).
		Int("users", rep.Users).
		Int("categories", rep.Categories).
		Int("brands", rep.Brands).
		Msg("seed completado")
}
