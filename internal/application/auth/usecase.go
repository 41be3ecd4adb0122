package auth

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/morefix-stock/internal/application/dto"
	"github.com/jhoicas/morefix-stock/internal/domain"
	"github.com/jhoicas/morefix-stock/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Admin credenciales del único administrador. Si PasswordHash está vacío se
// hashea Password al construir el caso de uso.
type Admin struct {
	Email        string
	Password     string
	PasswordHash string
}

// AuthUseCase login del administrador configurado. La app no gestiona usuarios.
type AuthUseCase struct {
	email  string
	hash   []byte
	jwtCfg JWTConfig
	now    func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth. Sin hash ni password el login queda
// deshabilitado y siempre responde ErrUnauthorized.
func NewAuthUseCase(admin Admin, jwtCfg JWTConfig) (*AuthUseCase, error) {
	uc := &AuthUseCase{
		email:  strings.ToLower(strings.TrimSpace(admin.Email)),
		jwtCfg: jwtCfg,
		now:    time.Now,
	}
	switch {
	case admin.PasswordHash != "":
		uc.hash = []byte(admin.PasswordHash)
	case admin.Password != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("auth: hashear password admin: %w", err)
		}
		uc.hash = hash
	}
	return uc, nil
}

// Enabled indica si hay credenciales de administrador configuradas.
func (uc *AuthUseCase) Enabled() bool { return len(uc.hash) > 0 }

// Login verifica email/password y genera el JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !uc.Enabled() {
		return nil, domain.ErrUnauthorized
	}
	if strings.ToLower(strings.TrimSpace(in.Email)) != uc.email {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(uc.hash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.email, jwt.RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: uc.now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute).UTC(),
		User:      dto.AdminResponse{Email: uc.email, Role: jwt.RoleAdmin},
	}, nil
}
