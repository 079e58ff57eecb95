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

// empresaRepoFake implementación en memoria del puerto, indexada por ID.
type empresaRepoFake struct {
	filas map[int]*entity.Empresa
	sigID int
	// fallar fuerza un error en todas las operaciones.
	fallar error
}

var _ repository.EmpresaRepository = (*empresaRepoFake)(nil)

func nuevaEmpresaRepoFake(filas ...entity.Empresa) *empresaRepoFake {
	f := &empresaRepoFake{filas: map[int]*entity.Empresa{}, sigID: 1}
	for _, e := range filas {
		copia := e
		if copia.ID == 0 {
			copia.ID = f.sigID
		}
		f.filas[copia.ID] = &copia
		if copia.ID >= f.sigID {
			f.sigID = copia.ID + 1
		}
	}
	return f
}

func (f *empresaRepoFake) List(_ context.Context, _ repository.FiltroEmpresas) ([]entity.Empresa, error) {
	if f.fallar != nil {
		return nil, f.fallar
	}
	out := make([]entity.Empresa, 0, len(f.filas))
	for _, e := range f.filas {
		out = append(out, *e)
	}
	return out, nil
}

func (f *empresaRepoFake) GetByID(_ context.Context, id int) (*entity.Empresa, error) {
	if f.fallar != nil {
		return nil, f.fallar
	}
	e, ok := f.filas[id]
	if !ok {
		return nil, nil
	}
	copia := *e
	return &copia, nil
}

func (f *empresaRepoFake) FindByEmpresaONit(_ context.Context, empresa, nit string, excluirID int) (*entity.Empresa, error) {
	if f.fallar != nil {
		return nil, f.fallar
	}
	for _, e := range f.filas {
		if e.ID == excluirID {
			continue
		}
		if e.Empresa == empresa || e.NIT == nit {
			copia := *e
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *empresaRepoFake) Create(_ context.Context, e *entity.Empresa) (*entity.Empresa, error) {
	if f.fallar != nil {
		return nil, f.fallar
	}
	copia := *e
	copia.ID = f.sigID
	f.sigID++
	f.filas[copia.ID] = &copia
	out := copia
	return &out, nil
}

func (f *empresaRepoFake) Update(_ context.Context, e *entity.Empresa) (*entity.Empresa, error) {
	if f.fallar != nil {
		return nil, f.fallar
	}
	if _, ok := f.filas[e.ID]; !ok {
		return nil, nil
	}
	copia := *e
	f.filas[e.ID] = &copia
	out := copia
	return &out, nil
}

func (f *empresaRepoFake) Delete(_ context.Context, id int) error {
	if f.fallar != nil {
		return f.fallar
	}
	delete(f.filas, id)
	return nil
}

func ptr[T any](v T) *T { return &v }

// ── Create ────────────────────────────────────────────────────────────────────

func TestEmpresaCreate_CodigoDuplicadoRechazado(t *testing.T) {
	repo := nuevaEmpresaRepoFake(entity.Empresa{Empresa: "01", NIT: "900111222", Nombre: "Acme"})
	uc := usecase.NewEmpresaUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateEmpresaRequest{
		Empresa: "01", Nit: "800999888", Nombre: "Otra",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "mismo código de empresa debe rechazarse")
}

func TestEmpresaCreate_NitDuplicadoRechazado(t *testing.T) {
	repo := nuevaEmpresaRepoFake(entity.Empresa{Empresa: "01", NIT: "900111222", Nombre: "Acme"})
	uc := usecase.NewEmpresaUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateEmpresaRequest{
		Empresa: "02", Nit: "900111222", Nombre: "Otra",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "mismo NIT debe rechazarse aunque el código difiera")
}

func TestEmpresaCreate_ActivoOmitidoEsVerdadero(t *testing.T) {
	repo := nuevaEmpresaRepoFake()
	uc := usecase.NewEmpresaUseCase(repo)

	creada, err := uc.Create(context.Background(), dto.CreateEmpresaRequest{
		Empresa: "01", Nit: "900111222", Nombre: "Acme",
	})
	require.NoError(t, err)
	assert.True(t, creada.Activo)
	assert.NotZero(t, creada.ID)
}

// ── Get ───────────────────────────────────────────────────────────────────────

func TestEmpresaGet_Inexistente(t *testing.T) {
	uc := usecase.NewEmpresaUseCase(nuevaEmpresaRepoFake())

	_, err := uc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Update ────────────────────────────────────────────────────────────────────

func TestEmpresaUpdate_AplicaSoloCamposPresentes(t *testing.T) {
	repo := nuevaEmpresaRepoFake(entity.Empresa{
		ID: 1, Empresa: "01", NIT: "900111222", Nombre: "Acme", Ciudad: "Bogotá",
	})
	uc := usecase.NewEmpresaUseCase(repo)

	actualizada, err := uc.Update(context.Background(), 1, dto.UpdateEmpresaRequest{
		Nombre: ptr("Acme S.A.S."),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme S.A.S.", actualizada.Nombre)
	assert.Equal(t, "Bogotá", actualizada.Ciudad, "los campos ausentes no se tocan")
	assert.Equal(t, "900111222", actualizada.NIT)
}

func TestEmpresaUpdate_RevalidaUnicidadAlCambiarNit(t *testing.T) {
	repo := nuevaEmpresaRepoFake(
		entity.Empresa{ID: 1, Empresa: "01", NIT: "900111222", Nombre: "Acme"},
		entity.Empresa{ID: 2, Empresa: "02", NIT: "800999888", Nombre: "Beta"},
	)
	uc := usecase.NewEmpresaUseCase(repo)

	_, err := uc.Update(context.Background(), 1, dto.UpdateEmpresaRequest{
		Nit: ptr("800999888"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestEmpresaUpdate_NoConflictaConsigoMisma(t *testing.T) {
	// Reenviar el propio NIT sin cambiarlo no debe detectarse como conflicto.
	repo := nuevaEmpresaRepoFake(entity.Empresa{ID: 1, Empresa: "01", NIT: "900111222", Nombre: "Acme"})
	uc := usecase.NewEmpresaUseCase(repo)

	actualizada, err := uc.Update(context.Background(), 1, dto.UpdateEmpresaRequest{
		Nit: ptr("900111222"), Nombre: ptr("Acme 2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme 2", actualizada.Nombre)
}

func TestEmpresaUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewEmpresaUseCase(nuevaEmpresaRepoFake())

	_, err := uc.Update(context.Background(), 7, dto.UpdateEmpresaRequest{Nombre: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── List ──────────────────────────────────────────────────────────────────────

func TestEmpresaList_PropagaErrorDelRepositorio(t *testing.T) {
	repo := nuevaEmpresaRepoFake()
	repo.fallar = errors.New("conexión rechazada")
	uc := usecase.NewEmpresaUseCase(repo)

	_, err := uc.List(context.Background(), repository.FiltroEmpresas{}, dto.PageRequest{})
	assert.Error(t, err)
}
