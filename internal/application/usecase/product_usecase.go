package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Dill1027/DT-Price-List/internal/application/dto"
	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El precio solo lo fija el administrador
// y no se expone a empleados.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	brands     repository.BrandRepository
	now        func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository, brands repository.BrandRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, brands: brands, now: time.Now}
}

// List devuelve la página de productos activos que cumplen el filtro.
func (uc *ProductUseCase) List(ctx context.Context, actor entity.Actor, q dto.ProductListQuery) (*dto.ProductListResponse, error) {
	q.DefaultPage()
	filter := ToProductFilter(actor, q)
	filter.Limit, filter.Offset = q.Limit, q.Offset()

	views, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(views))
	for _, v := range views {
		items = append(items, ToProductResponse(actor, v))
	}
	return &dto.ProductListResponse{Items: items, Page: dto.NewPageResponse(q.PageRequest, total)}, nil
}

// ToProductFilter traduce la query al filtro del repositorio sin paginar.
// Para quien no ve precios se descartan los filtros y el orden por precio.
func ToProductFilter(actor entity.Actor, q dto.ProductListQuery) repository.ProductFilter {
	f := repository.ProductFilter{
		CategoryID: q.CategoryID,
		BrandID:    q.BrandID,
		Phase:      q.Phase,
		MinHP:      q.MinHP,
		MaxHP:      q.MaxHP,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		Search:     strings.TrimSpace(q.Search),
		SortBy:     q.SortBy,
		SortDesc:   strings.EqualFold(q.SortOrder, "desc"),
	}
	if !repository.ValidSortField(f.SortBy) {
		f.SortBy = repository.SortCreatedAt
	}
	if !actor.CanSeePrice() {
		f.MinPrice, f.MaxPrice = nil, nil
		if f.SortBy == repository.SortPrice {
			f.SortBy = repository.SortCreatedAt
		}
	}
	return f
}

// GetByID obtiene un producto activo por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, actor entity.Actor, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.IsActive {
		return nil, domain.ErrNotFound
	}
	return uc.respond(ctx, actor, p)
}

// ListByCategory devuelve los productos activos de una categoría ordenados por modelo.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, actor entity.Actor, categoryID string) ([]dto.ProductResponse, error) {
	views, _, err := uc.repo.List(ctx, repository.ProductFilter{CategoryID: categoryID, SortBy: repository.SortModelNumber})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ToProductResponse(actor, v))
	}
	return out, nil
}

// CheckModel indica si el número de modelo ya lo usa un producto activo.
func (uc *ProductUseCase) CheckModel(ctx context.Context, model string) (*dto.ModelCheckResponse, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, domain.Invalid("model number is required")
	}
	p, err := uc.repo.FindActiveByModel(ctx, model)
	if err != nil {
		return nil, err
	}
	return &dto.ModelCheckResponse{ModelNumber: model, Exists: p != nil, Available: p == nil}, nil
}

// Create crea un producto. El precio de quien no es administrador queda en cero.
func (uc *ProductUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !actor.CanEditProducts() {
		return nil, domain.ErrForbidden
	}
	if err := uc.checkRefs(ctx, in.CategoryID, in.BrandID); err != nil {
		return nil, err
	}
	model := strings.TrimSpace(in.ModelNumber)
	existing, err := uc.repo.FindActiveByModel(ctx, model)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	price := decimal.Zero
	if actor.IsAdmin() && in.Price != nil {
		price = *in.Price
	}
	now := uc.now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		BrandID:     in.BrandID,
		ModelNumber: model,
		ProductDetails: entity.ProductDetails{
			HP:      deref(in.HP),
			Outlet:  strings.TrimSpace(in.Outlet),
			MaxHead: deref(in.MaxHead),
			MaxFlow: deref(in.MaxFlow),
			Watt:    deref(in.Watt),
			Phase:   in.Phase,
		},
		Price:     price,
		IsActive:  true,
		CreatedBy: actor.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return uc.respond(ctx, actor, p)
}

// Update aplica una actualización parcial. Un precio enviado por quien no es administrador se ignora.
func (uc *ProductUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !actor.CanEditProducts() {
		return nil, domain.ErrForbidden
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.IsActive {
		return nil, domain.ErrNotFound
	}
	if in.CategoryID != nil {
		if err := uc.checkCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		p.CategoryID = *in.CategoryID
	}
	if in.BrandID != nil {
		if err := uc.checkBrand(ctx, *in.BrandID); err != nil {
			return nil, err
		}
		p.BrandID = *in.BrandID
	}
	if in.ModelNumber != nil {
		model := strings.TrimSpace(*in.ModelNumber)
		other, err := uc.repo.FindActiveByModel(ctx, model)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != p.ID {
			return nil, domain.ErrDuplicate
		}
		p.ModelNumber = model
	}
	if in.HP != nil {
		p.HP = *in.HP
	}
	if in.Outlet != nil {
		p.Outlet = strings.TrimSpace(*in.Outlet)
	}
	if in.MaxHead != nil {
		p.MaxHead = *in.MaxHead
	}
	if in.MaxFlow != nil {
		p.MaxFlow = *in.MaxFlow
	}
	if in.Watt != nil {
		p.Watt = *in.Watt
	}
	if in.Phase != nil {
		p.Phase = *in.Phase
	}
	if actor.IsAdmin() && in.Price != nil {
		p.Price = *in.Price
	}
	p.UpdatedBy = actor.UserID
	p.UpdatedAt = uc.now()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.respond(ctx, actor, p)
}

// Delete da de baja lógica el producto; el modelo queda libre para reutilizarse.
func (uc *ProductUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil || !p.IsActive {
		return domain.ErrNotFound
	}
	p.IsActive = false
	p.UpdatedBy = actor.UserID
	p.UpdatedAt = uc.now()
	return uc.repo.Update(ctx, p)
}

func (uc *ProductUseCase) checkRefs(ctx context.Context, categoryID, brandID string) error {
	if err := uc.checkCategory(ctx, categoryID); err != nil {
		return err
	}
	return uc.checkBrand(ctx, brandID)
}

func (uc *ProductUseCase) checkCategory(ctx context.Context, id string) error {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil || !c.IsActive {
		return domain.Invalid("Invalid category")
	}
	return nil
}

func (uc *ProductUseCase) checkBrand(ctx context.Context, id string) error {
	b, err := uc.brands.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil || !b.IsActive {
		return domain.Invalid("Invalid brand")
	}
	return nil
}

// respond arma la respuesta de un producto suelto con los nombres de categoría y marca.
func (uc *ProductUseCase) respond(ctx context.Context, actor entity.Actor, p *entity.Product) (*dto.ProductResponse, error) {
	v := &entity.ProductView{Product: *p}
	c, err := uc.categories.GetByID(ctx, p.CategoryID)
	if err != nil {
		return nil, err
	}
	if c != nil {
		v.CategoryName = c.Name
	}
	b, err := uc.brands.GetByID(ctx, p.BrandID)
	if err != nil {
		return nil, err
	}
	if b != nil {
		v.BrandName = b.Name
	}
	res := ToProductResponse(actor, v)
	return &res, nil
}

// ToProductResponse convierte la vista; Price queda nil para quien no puede verlo.
func ToProductResponse(actor entity.Actor, v *entity.ProductView) dto.ProductResponse {
	res := dto.ProductResponse{
		ID:          v.ID,
		Category:    dto.RefResponse{ID: v.CategoryID, Name: v.CategoryName},
		Brand:       dto.RefResponse{ID: v.BrandID, Name: v.BrandName},
		ModelNumber: v.ModelNumber,
		HP:          v.HP,
		Outlet:      v.Outlet,
		MaxHead:     v.MaxHead,
		MaxFlow:     v.MaxFlow,
		Watt:        v.Watt,
		Phase:       v.Phase,
		IsActive:    v.IsActive,
		CreatedBy:   v.CreatedBy,
		UpdatedBy:   v.UpdatedBy,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
	if actor.CanSeePrice() {
		price := v.Price
		res.Price = &price
	}
	return res
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
