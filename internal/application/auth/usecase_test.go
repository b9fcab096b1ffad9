package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dill1027/DT-Price-List/internal/application/auth"
	"github.com/Dill1027/DT-Price-List/internal/application/dto"
	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/infrastructure/memory"
	pkgjwt "github.com/Dill1027/DT-Price-List/pkg/jwt"
)

const secret = "test-secret"

func newAuth(t *testing.T, active bool) (*auth.AuthUseCase, *entity.User) {
	t.Helper()
	store := memory.NewStore()
	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)
	u := &entity.User{ID: "u-1", Username: "admin", PasswordHash: hash, Role: entity.RoleAdmin, IsActive: active}
	require.NoError(t, store.Users().Create(context.Background(), u))
	return auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}), u
}

func TestLogin_OK(t *testing.T) {
	uc, _ := newAuth(t, true)
	res, err := uc.Login(context.Background(), dto.LoginRequest{Username: "Admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", res.User.Username)

	userID, username, role, err := pkgjwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "admin", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuth(t, true)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "nobody", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, _ := newAuth(t, false)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMe(t *testing.T) {
	uc, _ := newAuth(t, true)
	me, err := uc.Me(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, me.Role)

	_, err = uc.Me(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
