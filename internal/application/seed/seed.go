// Package seed carga los usuarios iniciales y el catálogo base de categorías y marcas.
// Es idempotente: lo que ya existe se deja como está.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Dill1027/DT-Price-List/internal/application/auth"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
)

// DefaultCategories categorías base del catálogo.
var DefaultCategories = []string{
	"Submersible borehole",
	"Submersible",
	"Centrifugal",
	"Multistage",
	"Pressure pump",
	"Solar pumps",
	"Digital control panels",
}

// DefaultBrands marcas base del catálogo.
var DefaultBrands = []string{"Pentax", "Samking", "Difule", "Deep Tec", "Coverco", "Franklin"}

// Repos puertos usados por la carga inicial.
type Repos struct {
	Users      repository.UserRepository
	Categories repository.CategoryRepository
	Brands     repository.BrandRepository
}

// Options credenciales del administrador inicial.
type Options struct {
	AdminUsername string
	AdminPassword string
}

// Report cuántos registros se crearon.
type Report struct {
	Users      int
	Categories int
	Brands     int
}

type account struct {
	username, password, role string
}

// Run crea los usuarios admin, project y employee y el catálogo base.
func Run(ctx context.Context, r Repos, opts Options) (Report, error) {
	var rep Report
	now := time.Now().UTC()
	if opts.AdminUsername == "" {
		opts.AdminUsername = "admin"
	}
	if opts.AdminPassword == "" {
		opts.AdminPassword = "admin123"
	}

	adminID, err := ensureUser(ctx, r.Users, account{opts.AdminUsername, opts.AdminPassword, entity.RoleAdmin}, "", now, &rep)
	if err != nil {
		return rep, err
	}
	for _, a := range []account{
		{"project", "project123", entity.RoleProjectUser},
		{"employee", "employee123", entity.RoleEmployee},
	} {
		if _, err := ensureUser(ctx, r.Users, a, adminID, now, &rep); err != nil {
			return rep, err
		}
	}

	for _, name := range DefaultCategories {
		existing, err := r.Categories.FindActiveByName(ctx, name)
		if err != nil {
			return rep, fmt.Errorf("find category %s: %w", name, err)
		}
		if existing != nil {
			continue
		}
		c := &entity.Category{
			ID: uuid.New().String(), Name: name, Description: name + " category for Deep Tec products",
			IsActive: true, CreatedBy: adminID, UpdatedBy: adminID, CreatedAt: now, UpdatedAt: now,
		}
		if err := r.Categories.Create(ctx, c); err != nil {
			return rep, fmt.Errorf("create category %s: %w", name, err)
		}
		rep.Categories++
	}

	for _, name := range DefaultBrands {
		existing, err := r.Brands.FindActiveByName(ctx, name)
		if err != nil {
			return rep, fmt.Errorf("find brand %s: %w", name, err)
		}
		if existing != nil {
			continue
		}
		b := &entity.Brand{
			ID: uuid.New().String(), Name: name, Description: name + " brand products",
			IsActive: true, CreatedBy: adminID, UpdatedBy: adminID, CreatedAt: now, UpdatedAt: now,
		}
		if err := r.Brands.Create(ctx, b); err != nil {
			return rep, fmt.Errorf("create brand %s: %w", name, err)
		}
		rep.Brands++
	}
	return rep, nil
}

// ensureUser devuelve el ID del usuario, creándolo si no existe.
func ensureUser(ctx context.Context, users repository.UserRepository, a account, createdBy string, now time.Time, rep *Report) (string, error) {
	existing, err := users.GetByUsername(ctx, a.username)
	if err != nil {
		return "", fmt.Errorf("find user %s: %w", a.username, err)
	}
	if existing != nil {
		return existing.ID, nil
	}
	hash, err := auth.HashPassword(a.password)
	if err != nil {
		return "", err
	}
	u := &entity.User{
		ID: uuid.New().String(), Username: a.username, PasswordHash: hash, Role: a.role,
		IsActive: true, CreatedBy: createdBy, CreatedAt: now, UpdatedAt: now,
	}
	if err := users.Create(ctx, u); err != nil {
		return "", fmt.Errorf("create user %s: %w", a.username, err)
	}
	rep.Users++
	return u.ID, nil
}
