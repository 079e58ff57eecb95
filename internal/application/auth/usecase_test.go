package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weimars70/conta-hencker/internal/application/auth"
	"github.com/weimars70/conta-hencker/internal/application/dto"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
	"github.com/weimars70/conta-hencker/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const claveTest = "secreto-de-prueba-con-largo-suficiente"

var cfgTest = auth.JWTConfig{Secret: claveTest, ExpMinutes: 60, Issuer: "conta-hencker-test"}

// usuarioRepoFake solo implementa GetByEmail de forma útil; el login no usa
// el resto del puerto.
type usuarioRepoFake struct {
	porEmail map[string]*entity.Usuario
	fallar   error
}

var _ repository.UsuarioRepository = (*usuarioRepoFake)(nil)

func (f *usuarioRepoFake) GetByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	if f.fallar != nil {
		return nil, f.fallar
	}
	u, ok := f.porEmail[email]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (f *usuarioRepoFake) List(context.Context, repository.FiltroUsuarios) ([]entity.Usuario, error) {
	return nil, nil
}
func (f *usuarioRepoFake) GetByID(context.Context, int) (*entity.Usuario, error) { return nil, nil }
func (f *usuarioRepoFake) Create(_ context.Context, u *entity.Usuario) (*entity.Usuario, error) {
	return u, nil
}
func (f *usuarioRepoFake) Update(_ context.Context, u *entity.Usuario) (*entity.Usuario, error) {
	return u, nil
}
func (f *usuarioRepoFake) Delete(context.Context, int) error { return nil }

// accesosFake solo responde EmpresasDeUsuario.
type accesosFake struct {
	empresas []entity.EmpresaUsuario
	fallar   error
}

var _ repository.AccesoRepository = (*accesosFake)(nil)

func (f *accesosFake) EmpresasDeUsuario(context.Context, int) ([]entity.EmpresaUsuario, error) {
	if f.fallar != nil {
		return nil, f.fallar
	}
	return f.empresas, nil
}

func (f *accesosFake) List(context.Context, repository.FiltroAccesos) ([]entity.Acceso, error) {
	return nil, nil
}
func (f *accesosFake) GetByUsuario(context.Context, string) (*entity.Acceso, error) {
	return nil, nil
}
func (f *accesosFake) Create(_ context.Context, a *entity.Acceso) (*entity.Acceso, error) {
	return a, nil
}
func (f *accesosFake) Update(_ context.Context, _ string, a *entity.Acceso) (*entity.Acceso, error) {
	return a, nil
}
func (f *accesosFake) Delete(context.Context, string) error           { return nil }
func (f *accesosFake) Activo(context.Context, string, string) (bool, error) { return false, nil }

func usuarioConClave(t *testing.T, email, clave string, activo bool) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(clave), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.Usuario{
		ID:        42,
		Nombre:    "Julián Gómez",
		Email:     email,
		ClaveHash: string(hash),
		Activo:    activo,
	}
}

func TestLogin_CredencialesValidas(t *testing.T) {
	usuarios := &usuarioRepoFake{porEmail: map[string]*entity.Usuario{
		"julian@acme.co": usuarioConClave(t, "julian@acme.co", "clave123", true),
	}}
	accesos := &accesosFake{empresas: []entity.EmpresaUsuario{
		{Empresa: "01", Nombre: "Acme", Nivel: "1"},
	}}

	uc := auth.NewAuthUseCase(usuarios, accesos, cfgTest)
	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "julian@acme.co", Password: "clave123",
	})
	require.NoError(t, err)

	// El token debe poder verificarse con el mismo secreto y llevar la
	// identidad del usuario.
	claims, err := jwt.Parse(claveTest, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "julian@acme.co", claims.Email)
	assert.Equal(t, "Julián Gómez", claims.Nombre)

	assert.Equal(t, 42, resp.User.ID)
	require.Len(t, resp.Empresas, 1)
	assert.Equal(t, "01", resp.Empresas[0].Empresa)
}

func TestLogin_ClaveIncorrecta(t *testing.T) {
	usuarios := &usuarioRepoFake{porEmail: map[string]*entity.Usuario{
		"julian@acme.co": usuarioConClave(t, "julian@acme.co", "clave123", true),
	}}

	uc := auth.NewAuthUseCase(usuarios, &accesosFake{}, cfgTest)
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "julian@acme.co", Password: "otra-clave",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(&usuarioRepoFake{porEmail: map[string]*entity.Usuario{}}, &accesosFake{}, cfgTest)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "nadie@acme.co", Password: "clave123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"email inexistente y clave mala deben ser indistinguibles")
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	usuarios := &usuarioRepoFake{porEmail: map[string]*entity.Usuario{
		"julian@acme.co": usuarioConClave(t, "julian@acme.co", "clave123", false),
	}}

	uc := auth.NewAuthUseCase(usuarios, &accesosFake{}, cfgTest)
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "julian@acme.co", Password: "clave123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmpresasFailSoft(t *testing.T) {
	// Si la vista de empresas no responde, el login igual sale con lista vacía.
	usuarios := &usuarioRepoFake{porEmail: map[string]*entity.Usuario{
		"julian@acme.co": usuarioConClave(t, "julian@acme.co", "clave123", true),
	}}
	accesos := &accesosFake{fallar: errors.New("vista no disponible")}

	uc := auth.NewAuthUseCase(usuarios, accesos, cfgTest)
	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "julian@acme.co", Password: "clave123",
	})
	require.NoError(t, err)
	assert.NotNil(t, resp.Empresas)
	assert.Empty(t, resp.Empresas)
}
