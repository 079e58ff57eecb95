package auth

import (
	"context"

	"github.com/weimars70/conta-hencker/internal/application/dto"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
	"github.com/weimars70/conta-hencker/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	accesos  repository.AccesoRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarios repository.UsuarioRepository, accesos repository.AccesoRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, accesos: accesos, jwtCfg: jwtCfg}
}

// Login verifica email/clave contra el hash bcrypt, genera el JWT y arma la
// lista de empresas del usuario. Toda falla de credenciales devuelve el mismo
// ErrUnauthorized: la respuesta no distingue email inexistente de clave mala.
// La lista de empresas es fail-soft: si la vista no responde, va vacía.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.usuarios.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.ClaveHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Activo {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Nombre, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	empresas, err := uc.accesos.EmpresasDeUsuario(ctx, user.ID)
	if err != nil || empresas == nil {
		empresas = []entity.EmpresaUsuario{}
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User:        *user,
		Empresas:    empresas,
	}, nil
}
