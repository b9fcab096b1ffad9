package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dill1027/DT-Price-List/internal/application/seed"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/infrastructure/memory"
)

func TestRun_Idempotente(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := seed.Repos{Users: store.Users(), Categories: store.Categories(), Brands: store.Brands()}

	rep, err := seed.Run(ctx, repos, seed.Options{})
	require.NoError(t, err)
	assert.Equal(t, seed.Report{Users: 3, Categories: len(seed.DefaultCategories), Brands: len(seed.DefaultBrands)}, rep)

	rep, err = seed.Run(ctx, repos, seed.Options{})
	require.NoError(t, err)
	assert.Equal(t, seed.Report{}, rep)

	admin, err := store.Users().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	employee, err := store.Users().GetByUsername(ctx, "employee")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, employee.CreatedBy)

	brands, err := store.Brands().ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, brands, len(seed.DefaultBrands))
}

func TestRun_AdminPersonalizado(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := seed.Repos{Users: store.Users(), Categories: store.Categories(), Brands: store.Brands()}

	_, err := seed.Run(ctx, repos, seed.Options{AdminUsername: "root", AdminPassword: "s3cret!"})
	require.NoError(t, err)

	root, err := store.Users().GetByUsername(ctx, "root")
	require.NoError(t, err)
	require.NotNil(t, root)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(root.PasswordHash), []byte("s3cret!")))
}
