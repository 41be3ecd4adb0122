package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/morefix-stock/internal/application/auth"
	"github.com/jhoicas/morefix-stock/internal/application/dto"
	"github.com/jhoicas/morefix-stock/internal/domain"
	pkgjwt "github.com/jhoicas/morefix-stock/pkg/jwt"
)

var jwtCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "morefix-test"}

func TestLogin_PasswordEnClaro(t *testing.T) {
	uc, err := auth.NewAuthUseCase(auth.Admin{Email: "Admin@MoreFix.com", Password: "s3cret-pass"}, jwtCfg)
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@morefix.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	email, role, err := pkgjwt.Parse(jwtCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@morefix.com", email)
	assert.Equal(t, pkgjwt.RoleAdmin, role)
	assert.Equal(t, "admin@morefix.com", out.User.Email)
}

func TestLogin_HashPreconfigurado(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("otra-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	uc, err := auth.NewAuthUseCase(auth.Admin{Email: "admin@morefix.com", PasswordHash: string(hash)}, jwtCfg)
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "admin@morefix.com", Password: "otra-pass"})
	assert.NoError(t, err)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, err := auth.NewAuthUseCase(auth.Admin{Email: "admin@morefix.com", Password: "s3cret-pass"}, jwtCfg)
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "admin@morefix.com", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "otro@morefix.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_SinCredencialesConfiguradas(t *testing.T) {
	uc, err := auth.NewAuthUseCase(auth.Admin{Email: "admin@morefix.com"}, jwtCfg)
	require.NoError(t, err)

	assert.False(t, uc.Enabled())
	_, err = uc.Login(dto.LoginRequest{Email: "admin@morefix.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
