package bulkupload_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dill1027/DT-Price-List/internal/application/bulkupload"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/infrastructure/memory"
)

func TestResolver_SoloReferenciasActivas(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Categories().Create(ctx, &entity.Category{ID: "c1", Name: "Submersible", IsActive: true}))
	require.NoError(t, store.Categories().Create(ctx, &entity.Category{ID: "c2", Name: "Legacy", IsActive: false}))
	require.NoError(t, store.Brands().Create(ctx, &entity.Brand{ID: "b1", Name: "Deep Tec", IsActive: true}))

	lk, err := bulkupload.NewResolver(store.Categories(), store.Brands()).Resolve(ctx)
	require.NoError(t, err)

	id, ok := lk.CategoryID("  SUBMERSIBLE ")
	assert.True(t, ok)
	assert.Equal(t, "c1", id)

	_, ok = lk.CategoryID("Legacy")
	assert.False(t, ok, "las categorías inactivas no resuelven")

	id, ok = lk.BrandID("deep  tec")
	assert.True(t, ok)
	assert.Equal(t, "b1", id)
}
