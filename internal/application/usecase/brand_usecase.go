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

// BrandUseCase casos de uso de marcas (fabricantes).
type BrandUseCase struct {
	repo repository.BrandRepository
	now  func() time.Time
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo, now: time.Now}
}

// List devuelve las marcas activas ordenadas por nombre.
func (uc *BrandUseCase) List(ctx context.Context) ([]dto.BrandResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBrandResponse(b))
	}
	return out, nil
}

// Create crea una marca; ErrDuplicate si el nombre ya existe entre las activas.
func (uc *BrandUseCase) Create(ctx context.Context, actor entity.Actor, in dto.BrandRequest) (*dto.BrandResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	now := uc.now()
	b := &entity.Brand{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		IsActive:    true,
		CreatedBy:   actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	existing, err := uc.repo.FindActiveByName(ctx, b.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	res := toBrandResponse(b)
	return &res, nil
}

// Update renombra o describe una marca activa.
func (uc *BrandUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.BrandRequest) (*dto.BrandResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil || !b.IsActive {
		return nil, domain.ErrNotFound
	}
	b.Name = strings.TrimSpace(in.Name)
	b.Description = strings.TrimSpace(in.Description)
	if err := b.Validate(); err != nil {
		return nil, err
	}
	other, err := uc.repo.FindActiveByName(ctx, b.Name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != b.ID {
		return nil, domain.ErrDuplicate
	}
	b.UpdatedBy = actor.UserID
	b.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	res := toBrandResponse(b)
	return &res, nil
}

// Delete da de baja lógica la marca.
func (uc *BrandUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil || !b.IsActive {
		return domain.ErrNotFound
	}
	b.IsActive = false
	b.UpdatedBy = actor.UserID
	b.UpdatedAt = uc.now()
	return uc.repo.Update(ctx, b)
}

func toBrandResponse(b *entity.Brand) dto.BrandResponse {
	return dto.BrandResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
