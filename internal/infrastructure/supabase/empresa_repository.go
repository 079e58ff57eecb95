package supabase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/supabase-community/postgrest-go"
	"github.com/weimars70/conta-hencker/internal/domain"
	"github.com/weimars70/conta-hencker/internal/domain/entity"
	"github.com/weimars70/conta-hencker/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación del puerto EmpresaRepository sobre PostgREST.
type EmpresaRepo struct {
	rest *postgrest.Client
}

// NewEmpresaRepository construye el adaptador de persistencia para empresas.
func NewEmpresaRepository(rest *postgrest.Client) *EmpresaRepo {
	return &EmpresaRepo{rest: rest}
}

// filaEmpresa es la fila tal como la serializa PostgREST: activo llega como
// bool, entero o texto según el esquema heredado y se normaliza al mapear.
type filaEmpresa struct {
	ID         int    `json:"id"`
	Empresa    string `json:"empresa"`
	Nombre     string `json:"nombre"`
	Abreviado  string `json:"abreviado"`
	NIT        string `json:"nit"`
	DgVerifica string `json:"dg_verifica"`
	Direccion  string `json:"direccion"`
	Telefono   string `json:"telefono"`
	Ciudad     string `json:"ciudad"`
	Fax        string `json:"fax"`
	Correo     string `json:"correo"`
	Niveles    string `json:"niveles"`
	Activo     any    `json:"activo"`
}

func (f filaEmpresa) aEntidad() entity.Empresa {
	return entity.Empresa{
		ID:         f.ID,
		Empresa:    f.Empresa,
		Nombre:     f.Nombre,
		Abreviado:  f.Abreviado,
		NIT:        f.NIT,
		DgVerifica: f.DgVerifica,
		Direccion:  f.Direccion,
		Telefono:   f.Telefono,
		Ciudad:     f.Ciudad,
		Fax:        f.Fax,
		Correo:     f.Correo,
		Niveles:    f.Niveles,
		Activo:     domain.NormalizeActivo(f.Activo),
	}
}

// cuerpoEmpresa arma el payload de escritura (sin id; lo asigna la base).
func cuerpoEmpresa(e *entity.Empresa) map[string]any {
	return map[string]any{
		"empresa":     e.Empresa,
		"nombre":      e.Nombre,
		"abreviado":   e.Abreviado,
		"nit":         e.NIT,
		"dg_verifica": e.DgVerifica,
		"direccion":   e.Direccion,
		"telefono":    e.Telefono,
		"ciudad":      e.Ciudad,
		"fax":         e.Fax,
		"correo":      e.Correo,
		"niveles":     e.Niveles,
		"activo":      e.Activo,
	}
}

// List devuelve el conjunto filtrado completo ordenado por id.
func (r *EmpresaRepo) List(ctx context.Context, f repository.FiltroEmpresas) ([]entity.Empresa, error) {
	fb := r.rest.From("empresas").Select("*", "", false)
	if f.Empresa != "" {
		fb = fb.Ilike("empresa", "%"+f.Empresa+"%")
	}
	if f.Nombre != "" {
		fb = fb.Ilike("nombre", "%"+f.Nombre+"%")
	}
	if f.Nit != "" {
		fb = fb.Ilike("nit", "%"+f.Nit+"%")
	}
	if f.Ciudad != "" {
		fb = fb.Ilike("ciudad", "%"+f.Ciudad+"%")
	}
	if f.Activo != nil {
		fb = fb.Eq("activo", strconv.FormatBool(*f.Activo))
	}
	var filas []filaEmpresa
	_, err := fb.Order("id", &postgrest.OrderOpts{Ascending: true}).ExecuteTo(&filas)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	list := make([]entity.Empresa, 0, len(filas))
	for _, fila := range filas {
		list = append(list, fila.aEntidad())
	}
	return list, nil
}

// GetByID obtiene una empresa por ID; (nil, nil) si no existe.
func (r *EmpresaRepo) GetByID(ctx context.Context, id int) (*entity.Empresa, error) {
	var filas []filaEmpresa
	_, err := r.rest.From("empresas").
		Select("*", "", false).
		Eq("id", strconv.Itoa(id)).
		Limit(1, "").
		ExecuteTo(&filas)
	if err != nil {
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	if len(filas) == 0 {
		return nil, nil
	}
	e := filas[0].aEntidad()
	return &e, nil
}

// FindByEmpresaONit busca una empresa con el mismo código o NIT, opcionalmente
// excluyendo un id. Es el pre-chequeo de unicidad del create/update.
func (r *EmpresaRepo) FindByEmpresaONit(ctx context.Context, empresa, nit string, excluirID int) (*entity.Empresa, error) {
	fb := r.rest.From("empresas").
		Select("*", "", false).
		Or(fmt.Sprintf("empresa.eq.%s,nit.eq.%s", empresa, nit), "")
	if excluirID > 0 {
		fb = fb.Neq("id", strconv.Itoa(excluirID))
	}
	var filas []filaEmpresa
	if _, err := fb.Limit(1, "").ExecuteTo(&filas); err != nil {
		return nil, fmt.Errorf("buscar empresa por codigo o nit: %w", err)
	}
	if len(filas) == 0 {
		return nil, nil
	}
	e := filas[0].aEntidad()
	return &e, nil
}

// Create persiste una nueva empresa y devuelve la fila creada.
func (r *EmpresaRepo) Create(ctx context.Context, e *entity.Empresa) (*entity.Empresa, error) {
	var filas []filaEmpresa
	_, err := r.rest.From("empresas").
		Insert(cuerpoEmpresa(e), false, "", "representation", "").
		ExecuteTo(&filas)
	if err != nil {
		return nil, traducir("insert empresa", err)
	}
	if len(filas) == 0 {
		return nil, fmt.Errorf("insert empresa: sin fila de retorno")
	}
	creada := filas[0].aEntidad()
	return &creada, nil
}

// Update actualiza la fila completa por id; (nil, nil) si el id no existe.
func (r *EmpresaRepo) Update(ctx context.Context, e *entity.Empresa) (*entity.Empresa, error) {
	var filas []filaEmpresa
	_, err := r.rest.From("empresas").
		Update(cuerpoEmpresa(e), "representation", "").
		Eq("id", strconv.Itoa(e.ID)).
		ExecuteTo(&filas)
	if err != nil {
		return nil, traducir("update empresa", err)
	}
	if len(filas) == 0 {
		return nil, nil
	}
	actualizada := filas[0].aEntidad()
	return &actualizada, nil
}

// Delete elimina una empresa por ID; ErrNotFound si no existía.
func (r *EmpresaRepo) Delete(ctx context.Context, id int) error {
	var filas []filaEmpresa
	_, err := r.rest.From("empresas").
		Delete("representation", "").
		Eq("id", strconv.Itoa(id)).
		ExecuteTo(&filas)
	if err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	if len(filas) == 0 {
		return domain.ErrNotFound
	}
	return nil
}
