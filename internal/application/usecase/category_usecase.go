package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Dill1027/DT-Price-List/internal/application/dto"
	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
)

// CategoryUseCase casos de uso de categorías. Solo el administrador las modifica.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	now  func() time.Time
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, now: time.Now}
}

// List devuelve las categorías activas ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Create crea una categoría; ErrDuplicate si el nombre ya existe entre las activas.
func (uc *CategoryUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	now := uc.now()
	c := &entity.Category{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		IsActive:    true,
		CreatedBy:   actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	existing, err := uc.repo.FindActiveByName(ctx, c.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	res := toCategoryResponse(c)
	return &res, nil
}

// Update renombra o describe una categoría activa.
func (uc *CategoryUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || !c.IsActive {
		return nil, domain.ErrNotFound
	}
	c.Name = strings.TrimSpace(in.Name)
	c.Description = strings.TrimSpace(in.Description)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	other, err := uc.repo.FindActiveByName(ctx, c.Name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != c.ID {
		return nil, domain.ErrDuplicate
	}
	c.UpdatedBy = actor.UserID
	c.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	res := toCategoryResponse(c)
	return &res, nil
}

// Delete da de baja lógica la categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil || !c.IsActive {
		return domain.ErrNotFound
	}
	c.IsActive = false
	c.UpdatedBy = actor.UserID
	c.UpdatedAt = uc.now()
	return uc.repo.Update(ctx, c)
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
