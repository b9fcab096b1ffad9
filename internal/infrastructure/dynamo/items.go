package dynamo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
)

// Las fechas se guardan en RFC3339Nano (UTC) para que el orden lexicográfico coincida con el temporal.
func formatTime(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

type productItem struct {
	ID          string  `dynamodbav:"id"`
	Kind        string  `dynamodbav:"kind"`
	CategoryID  string  `dynamodbav:"category_id"`
	BrandID     string  `dynamodbav:"brand_id"`
	ModelNumber string  `dynamodbav:"model_number"`
	ModelKey    string  `dynamodbav:"model_key"`
	HP          float64 `dynamodbav:"hp"`
	Outlet      string  `dynamodbav:"outlet"`
	MaxHead     float64 `dynamodbav:"max_head"`
	MaxFlow     float64 `dynamodbav:"max_flow"`
	Watt        float64 `dynamodbav:"watt"`
	Phase       string  `dynamodbav:"phase"`
	Price       string  `dynamodbav:"price"` // decimal exacto como texto
	IsActive    bool    `dynamodbav:"is_active"`
	CreatedBy   string  `dynamodbav:"created_by"`
	UpdatedBy   string  `dynamodbav:"updated_by"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

func toProductItem(p *entity.Product) productItem {
	return productItem{
		ID:          p.ID,
		Kind:        kindProduct,
		CategoryID:  p.CategoryID,
		BrandID:     p.BrandID,
		ModelNumber: p.ModelNumber,
		ModelKey:    p.Key(),
		HP:          p.HP,
		Outlet:      p.Outlet,
		MaxHead:     p.MaxHead,
		MaxFlow:     p.MaxFlow,
		Watt:        p.Watt,
		Phase:       p.Phase,
		Price:       p.Price.String(),
		IsActive:    p.IsActive,
		CreatedBy:   p.CreatedBy,
		UpdatedBy:   p.UpdatedBy,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func (it productItem) toEntity() (*entity.Product, error) {
	price, err := decimal.NewFromString(it.Price)
	if err != nil {
		return nil, fmt.Errorf("product %s price %q: %w", it.ID, it.Price, err)
	}
	return &entity.Product{
		ID:          it.ID,
		CategoryID:  it.CategoryID,
		BrandID:     it.BrandID,
		ModelNumber: it.ModelNumber,
		ProductDetails: entity.ProductDetails{
			HP:      it.HP,
			Outlet:  it.Outlet,
			MaxHead: it.MaxHead,
			MaxFlow: it.MaxFlow,
			Watt:    it.Watt,
			Phase:   it.Phase,
		},
		Price:     price,
		IsActive:  it.IsActive,
		CreatedBy: it.CreatedBy,
		UpdatedBy: it.UpdatedBy,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}, nil
}

// namedItem es la forma común de categorías y marcas.
type namedItem struct {
	ID          string `dynamodbav:"id"`
	Kind        string `dynamodbav:"kind"`
	Name        string `dynamodbav:"name"`
	NameKey     string `dynamodbav:"name_key"`
	Description string `dynamodbav:"description"`
	IsActive    bool   `dynamodbav:"is_active"`
	CreatedBy   string `dynamodbav:"created_by"`
	UpdatedBy   string `dynamodbav:"updated_by"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

func toCategoryItem(c *entity.Category) namedItem {
	return namedItem{
		ID: c.ID, Kind: kindCategory, Name: c.Name, NameKey: c.Key(), Description: c.Description,
		IsActive: c.IsActive, CreatedBy: c.CreatedBy, UpdatedBy: c.UpdatedBy,
		CreatedAt: formatTime(c.CreatedAt), UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func (it namedItem) toCategory() *entity.Category {
	return &entity.Category{
		ID: it.ID, Name: it.Name, Description: it.Description, IsActive: it.IsActive,
		CreatedBy: it.CreatedBy, UpdatedBy: it.UpdatedBy,
		CreatedAt: parseTime(it.CreatedAt), UpdatedAt: parseTime(it.UpdatedAt),
	}
}

func toBrandItem(b *entity.Brand) namedItem {
	return namedItem{
		ID: b.ID, Kind: kindBrand, Name: b.Name, NameKey: b.Key(), Description: b.Description,
		IsActive: b.IsActive, CreatedBy: b.CreatedBy, UpdatedBy: b.UpdatedBy,
		CreatedAt: formatTime(b.CreatedAt), UpdatedAt: formatTime(b.UpdatedAt),
	}
}

func (it namedItem) toBrand() *entity.Brand {
	return &entity.Brand{
		ID: it.ID, Name: it.Name, Description: it.Description, IsActive: it.IsActive,
		CreatedBy: it.CreatedBy, UpdatedBy: it.UpdatedBy,
		CreatedAt: parseTime(it.CreatedAt), UpdatedAt: parseTime(it.UpdatedAt),
	}
}

type userItem struct {
	ID           string `dynamodbav:"id"`
	Kind         string `dynamodbav:"kind"`
	Username     string `dynamodbav:"username"`
	UsernameKey  string `dynamodbav:"username_key"`
	PasswordHash string `dynamodbav:"password_hash"`
	Role         string `dynamodbav:"role"`
	IsActive     bool   `dynamodbav:"is_active"`
	CreatedBy    string `dynamodbav:"created_by"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

func toUserItem(u *entity.User) userItem {
	return userItem{
		ID: u.ID, Kind: kindUser, Username: u.Username, UsernameKey: entity.Fold(u.Username),
		PasswordHash: u.PasswordHash, Role: u.Role, IsActive: u.IsActive, CreatedBy: u.CreatedBy,
		CreatedAt: formatTime(u.CreatedAt), UpdatedAt: formatTime(u.UpdatedAt),
	}
}

func (it userItem) toEntity() *entity.User {
	return &entity.User{
		ID: it.ID, Username: it.Username, PasswordHash: it.PasswordHash, Role: it.Role,
		IsActive: it.IsActive, CreatedBy: it.CreatedBy,
		CreatedAt: parseTime(it.CreatedAt), UpdatedAt: parseTime(it.UpdatedAt),
	}
}
