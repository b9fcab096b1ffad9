package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Dill1027/DT-Price-List/internal/application/auth"
	"github.com/Dill1027/DT-Price-List/internal/application/bulkupload"
	"github.com/Dill1027/DT-Price-List/internal/application/pricelist"
	"github.com/Dill1027/DT-Price-List/internal/application/usecase"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	CategoryUC    *usecase.CategoryUseCase
	BrandUC       *usecase.BrandUseCase
	ProductUC     *usecase.ProductUseCase
	BulkUC        *bulkupload.UseCase
	PriceListUC   *pricelist.UseCase
	JWTSecret     string
	MaxUploadSize int64
}

// Router registra las rutas de la API.
func Router(app fiber.Router, deps RouterDeps) {
	v := NewRequestValidator()
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleAdmin)
	editors := RequireRole(entity.RoleAdmin, entity.RoleProjectUser)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, v)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)

	// Users (admin)
	userHandler := NewUserHandler(deps.UserUC, v)
	users := protected.Group("/users", adminOnly)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Delete("/:id", userHandler.Deactivate)

	// Categories
	categoryHandler := NewCategoryHandler(deps.CategoryUC, v)
	categories := protected.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Brands
	brandHandler := NewBrandHandler(deps.BrandUC, v)
	brands := protected.Group("/brands")
	brands.Get("/", brandHandler.List)
	brands.Post("/", adminOnly, brandHandler.Create)
	brands.Put("/:id", adminOnly, brandHandler.Update)
	brands.Delete("/:id", adminOnly, brandHandler.Delete)

	// Products: las rutas fijas van antes de /:id
	productHandler := NewProductHandler(deps.ProductUC, v)
	exportHandler := NewExportHandler(deps.PriceListUC, v)
	bulkHandler := NewBulkHandler(deps.BulkUC, deps.MaxUploadSize)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/check-model/:model", productHandler.CheckModel)
	products.Get("/category/:id", productHandler.ListByCategory)
	products.Get("/download-template", exportHandler.Template)
	products.Get("/export", exportHandler.ExportXLSX)
	products.Get("/export/pdf", exportHandler.ExportPDF)
	products.Post("/bulk-upload", editors, bulkHandler.Upload)
	products.Post("/bulk-upload/validate", editors, bulkHandler.Validate)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", editors, productHandler.Create)
	products.Put("/:id", editors, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
}
