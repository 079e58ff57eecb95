package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weimars70/conta-hencker/internal/application/dto"
	"github.com/weimars70/conta-hencker/internal/application/usecase"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

// accesoRepoFake puerto de accesos en memoria, indexado por usuario.
type accesoRepoFake struct {
	filas  map[string]*entity.Acceso
	fallar error
}

var _ repository.AccesoRepository = (*accesoRepoFake)(nil)

func nuevaAccesoRepoFake(filas ...entity.Acceso) *accesoRepoFake {
	f := &accesoRepoFake{filas: map[string]*entity.Acceso{}}
	for _, a := range filas {
		copia := a
		f.filas[copia.Usuario] = &copia
	}
	return f
}

func (f *accesoRepoFake) List(_ context.Context, _ repository.FiltroAccesos) ([]entity.Acceso, error) {
	if f.fallar != nil {
		return nil, f.fallar
	}
	out := make([]entity.Acceso, 0, len(f.filas))
	for _, a := range f.filas {
		out = append(out, *a)
	}
	return out, nil
}

func (f *accesoRepoFake) GetByUsuario(_ context.Context, usuario string) (*entity.Acceso, error) {
	if f.fallar != nil {
		return nil, f.fallar
	}
	a, ok := f.filas[usuario]
	if !ok {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

func (f *accesoRepoFake) Create(_ context.Context, a *entity.Acceso) (*entity.Acceso, error) {
	if f.fallar != nil {
		return nil, f.fallar
	}
	copia := *a
	f.filas[copia.Usuario] = &copia
	out := copia
	return &out, nil
}

func (f *accesoRepoFake) Update(_ context.Context, usuario string, a *entity.Acceso) (*entity.Acceso, error) {
	if f.fallar != nil {
		return nil, f.fallar
	}
	if _, ok := f.filas[usuario]; !ok {
		return nil, nil
	}
	copia := *a
	f.filas[usuario] = &copia
	out := copia
	return &out, nil
}

func (f *accesoRepoFake) Delete(_ context.Context, usuario string) error {
	if f.fallar != nil {
		return f.fallar
	}
	delete(f.filas, usuario)
	return nil
}

func (f *accesoRepoFake) Activo(_ context.Context, usuario, empresa string) (bool, error) {
	if f.fallar != nil {
		return false, f.fallar
	}
	a, ok := f.filas[usuario]
	if !ok || a.Empresa != empresa {
		return false, nil
	}
	return a.Activo, nil
}

func (f *accesoRepoFake) EmpresasDeUsuario(_ context.Context, _ int) ([]entity.EmpresaUsuario, error) {
	if f.fallar != nil {
		return nil, f.fallar
	}
	return nil, nil
}

// ── Validar (fail-closed) ─────────────────────────────────────────────────────

func TestAccesoValidar_AccesoActivo(t *testing.T) {
	uc := usecase.NewAccesoUseCase(nuevaAccesoRepoFake(
		entity.Acceso{Empresa: "01", Usuario: "jgomez", Activo: true},
	))

	ok, err := uc.Validar(context.Background(), "jgomez", "01")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAccesoValidar_AccesoInactivo(t *testing.T) {
	uc := usecase.NewAccesoUseCase(nuevaAccesoRepoFake(
		entity.Acceso{Empresa: "01", Usuario: "jgomez", Activo: false},
	))

	ok, err := uc.Validar(context.Background(), "jgomez", "01")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccesoValidar_FilaAusente(t *testing.T) {
	uc := usecase.NewAccesoUseCase(nuevaAccesoRepoFake())

	ok, err := uc.Validar(context.Background(), "nadie", "01")
	require.NoError(t, err)
	assert.False(t, ok, "sin fila no hay acceso")
}

func TestAccesoValidar_EmpresaDistinta(t *testing.T) {
	// El acceso es por llave compuesta: activo en "01" no autoriza en "02".
	uc := usecase.NewAccesoUseCase(nuevaAccesoRepoFake(
		entity.Acceso{Empresa: "01", Usuario: "jgomez", Activo: true},
	))

	ok, err := uc.Validar(context.Background(), "jgomez", "02")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccesoValidar_ErrorDeConsultaNiegaAcceso(t *testing.T) {
	repo := nuevaAccesoRepoFake(entity.Acceso{Empresa: "01", Usuario: "jgomez", Activo: true})
	repo.fallar = errors.New("backend caído")
	uc := usecase.NewAccesoUseCase(repo)

	ok, err := uc.Validar(context.Background(), "jgomez", "01")
	assert.False(t, ok, "ante la duda se niega el acceso")
	assert.Error(t, err, "el error se devuelve aparte para el log")
}

// ── CRUD ──────────────────────────────────────────────────────────────────────

func TestAccesoUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewAccesoUseCase(nuevaAccesoRepoFake())

	nivel := "1"
	_, err := uc.Update(context.Background(), "nadie", dto.UpdateAccesoRequest{Nivel: &nivel})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccesoCreate_ActivoOmitidoEsVerdadero(t *testing.T) {
	uc := usecase.NewAccesoUseCase(nuevaAccesoRepoFake())

	creado, err := uc.Create(context.Background(), dto.CreateAccesoRequest{
		Empresa: "01", Usuario: "jgomez",
	})
	require.NoError(t, err)
	assert.True(t, creado.Activo)
}
