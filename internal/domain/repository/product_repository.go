package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las búsquedas por modelo consideran solo productos activos; Create y Update
// devuelven domain.ErrDuplicate si la clave del modelo ya está tomada por otro producto activo.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	FindActiveByModel(ctx context.Context, modelNumber string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdatePrice modifica únicamente el precio (y la auditoría).
	UpdatePrice(ctx context.Context, id string, price decimal.Decimal, updatedBy string, at time.Time) error
	// UpdateDetails modifica únicamente los atributos técnicos; el precio no cambia.
	UpdateDetails(ctx context.Context, id string, details entity.ProductDetails, updatedBy string, at time.Time) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.ProductView, int, error)
}
