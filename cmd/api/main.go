package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/Dill1027/DT-Price-List/internal/application/auth"
	"github.com/Dill1027/DT-Price-List/internal/application/bulkupload"
	"github.com/Dill1027/DT-Price-List/internal/application/pricelist"
	"github.com/Dill1027/DT-Price-List/internal/application/seed"
	"github.com/Dill1027/DT-Price-List/internal/application/usecase"
	"github.com/Dill1027/DT-Price-List/internal/infrastructure/archive"
	"github.com/Dill1027/DT-Price-List/internal/infrastructure/cloud"
	"github.com/Dill1027/DT-Price-List/internal/infrastructure/pdf"
	"github.com/Dill1027/DT-Price-List/internal/infrastructure/registry"
	"github.com/Dill1027/DT-Price-List/internal/infrastructure/spreadsheet"
	httpRouter "github.com/Dill1027/DT-Price-List/internal/interfaces/http"
	"github.com/Dill1027/DT-Price-List/pkg/config"
	"github.com/Dill1027/DT-Price-List/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret-change-me"
		log.Warn().Msg("JWT_SECRET vacío; usando secreto de desarrollo")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := registry.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.Close()
	repos := store.Repos

	// En memoria no hay nada persistido: se cargan los usuarios y el catálogo base.
	if cfg.Store.Driver == config.StoreDriverMemory {
		rep, err := seed.Run(ctx, seed.Repos{Users: repos.Users, Categories: repos.Categories, Brands: repos.Brands}, seed.Options{})
		if err != nil {
			log.Fatal().Err(err).Msg("seed en memoria")
		}
		log.Info().Int("users", rep.Users).Int("categories", rep.Categories).Int("brands", rep.Brands).Msg("seed en memoria")
	}

	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(repos.Users)
	categoryUC := usecase.NewCategoryUseCase(repos.Categories)
	brandUC := usecase.NewBrandUseCase(repos.Brands)
	productUC := usecase.NewProductUseCase(repos.Products, repos.Categories, repos.Brands)

	bulkOpts := []bulkupload.Option{bulkupload.WithLogger(log)}
	if cfg.Upload.ArchiveBucket != "" {
		awsCfg, err := cloud.LoadConfig(ctx, cfg.Dynamo)
		if err != nil {
			log.Fatal().Err(err).Msg("configuración AWS para el archivo S3")
		}
		s3Client := cloud.NewS3Client(awsCfg, cfg.Upload.ArchiveEndpoint)
		bulkOpts = append(bulkOpts, bulkupload.WithArchiver(
			archive.NewS3Archive(s3Client, cfg.Upload.ArchiveBucket, cfg.Upload.ArchivePrefix),
		))
		log.Info().Str("bucket", cfg.Upload.ArchiveBucket).Msg("archivo de cargas masivas activo")
	}
	bulkUC := bulkupload.NewUseCase(repos.Products, repos.Categories, repos.Brands, spreadsheet.NewDecoder(), bulkOpts...)
	priceListUC := pricelist.NewUseCase(repos.Products, spreadsheet.NewWorkbook(), pdf.NewMarotoPriceList())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(helmet.New())
	origins := strings.Join(cfg.HTTP.CORSOrigins, ",")
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: !strings.Contains(origins, "*"), // fiber no admite credenciales con origen comodín
	}))
	app.Use("/api", limiter.New(limiter.Config{
		Max:        cfg.Rate.Max,
		Expiration: cfg.Rate.Window,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "DT Price List API",
	}))

	health := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "service": cfg.App.Name, "timestamp": time.Now().UTC()})
	}
	app.Get("/health", health)
	app.Get("/api/health", health)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		CategoryUC:    categoryUC,
		BrandUC:       brandUC,
		ProductUC:     productUC,
		BulkUC:        bulkUC,
		PriceListUC:   priceListUC,
		JWTSecret:     cfg.JWT.Secret,
		MaxUploadSize: cfg.Upload.MaxFileSize,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
