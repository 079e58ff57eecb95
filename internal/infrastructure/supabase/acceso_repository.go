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

var _ repository.AccesoRepository = (*AccesoRepo)(nil)

// AccesoRepo implementación del puerto AccesoRepository sobre PostgREST.
type AccesoRepo struct {
	rest *postgrest.Client
}

// NewAccesoRepository construye el adaptador de persistencia para accesos.
func NewAccesoRepository(rest *postgrest.Client) *AccesoRepo {
	return &AccesoRepo{rest: rest}
}

type filaAcceso struct {
	Empresa      string `json:"empresa"`
	Usuario      string `json:"usuario"`
	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
	Clave        string `json:"clave"`
	Nivel        string `json:"nivel"`
	Codigo       int    `json:"codigo"`
	Bodega       int    `json:"bodega"`
	CentroCostos int    `json:"centro_costos"`
	Activo       any    `json:"activo"`
}

func (f filaAcceso) aEntidad() entity.Acceso {
	return entity.Acceso{
		Empresa:      f.Empresa,
		Usuario:      f.Usuario,
		Nombre:       f.Nombre,
		Email:        f.Email,
		Clave:        f.Clave,
		Nivel:        f.Nivel,
		Codigo:       f.Codigo,
		Bodega:       f.Bodega,
		CentroCostos: f.CentroCostos,
		Activo:       domain.NormalizeActivo(f.Activo),
	}
}

func cuerpoAcceso(a *entity.Acceso, conEmpresa bool) map[string]any {
	cuerpo := map[string]any{
		"nombre":        a.Nombre,
		"email":         a.Email,
		"clave":         a.Clave,
		"nivel":         a.Nivel,
		"codigo":        a.Codigo,
		"bodega":        a.Bodega,
		"centro_costos": a.CentroCostos,
		"activo":        a.Activo,
	}
	if conEmpresa {
		cuerpo["empresa"] = a.Empresa
	}
	return cuerpo
}

// List devuelve el conjunto filtrado completo ordenado por (empresa, usuario).
func (r *AccesoRepo) List(ctx context.Context, f repository.FiltroAccesos) ([]entity.Acceso, error) {
	fb := r.rest.From("accesos").Select("*", "", false)
	if f.Empresa != "" {
		fb = fb.Ilike("empresa", "%"+f.Empresa+"%")
	}
	if f.Usuario != "" {
		fb = fb.Ilike("usuario", "%"+f.Usuario+"%")
	}
	if f.Nombre != "" {
		fb = fb.Ilike("nombre", "%"+f.Nombre+"%")
	}
	if f.Email != "" {
		fb = fb.Ilike("email", "%"+f.Email+"%")
	}
	if f.Activo != nil {
		fb = fb.Eq("activo", strconv.FormatBool(*f.Activo))
	}
	var filas []filaAcceso
	_, err := fb.
		Order("empresa", &postgrest.OrderOpts{Ascending: true}).
		Order("usuario", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&filas)
	if err != nil {
		return nil, fmt.Errorf("list accesos: %w", err)
	}
	list := make([]entity.Acceso, 0, len(filas))
	for _, fila := range filas {
		list = append(list, fila.aEntidad())
	}
	return list, nil
}

// GetByUsuario obtiene el acceso alcanzable por usuario; (nil, nil) si no existe.
func (r *AccesoRepo) GetByUsuario(ctx context.Context, usuario string) (*entity.Acceso, error) {
	var filas []filaAcceso
	_, err := r.rest.From("accesos").
		Select("*", "", false).
		Eq("usuario", usuario).
		Limit(1, "").
		ExecuteTo(&filas)
	if err != nil {
		return nil, fmt.Errorf("get acceso: %w", err)
	}
	if len(filas) == 0 {
		return nil, nil
	}
	a := filas[0].aEntidad()
	return &a, nil
}

// Create persiste un nuevo acceso y devuelve la fila creada.
func (r *AccesoRepo) Create(ctx context.Context, a *entity.Acceso) (*entity.Acceso, error) {
	cuerpo := cuerpoAcceso(a, true)
	cuerpo["usuario"] = a.Usuario
	var filas []filaAcceso
	_, err := r.rest.From("accesos").
		Insert(cuerpo, false, "", "representation", "").
		ExecuteTo(&filas)
	if err != nil {
		return nil, traducir("insert acceso", err)
	}
	if len(filas) == 0 {
		return nil, fmt.Errorf("insert acceso: sin fila de retorno")
	}
	creado := filas[0].aEntidad()
	return &creado, nil
}

// Update actualiza la fila direccionada por usuario; (nil, nil) si no existe.
func (r *AccesoRepo) Update(ctx context.Context, usuario string, a *entity.Acceso) (*entity.Acceso, error) {
	var filas []filaAcceso
	_, err := r.rest.From("accesos").
		Update(cuerpoAcceso(a, true), "representation", "").
		Eq("usuario", usuario).
		ExecuteTo(&filas)
	if err != nil {
		return nil, traducir("update acceso", err)
	}
	if len(filas) == 0 {
		return nil, nil
	}
	actualizado := filas[0].aEntidad()
	return &actualizado, nil
}

// Delete elimina el acceso por usuario; ErrNotFound si no existía.
func (r *AccesoRepo) Delete(ctx context.Context, usuario string) error {
	var filas []filaAcceso
	_, err := r.rest.From("accesos").
		Delete("representation", "").
		Eq("usuario", usuario).
		ExecuteTo(&filas)
	if err != nil {
		return fmt.Errorf("delete acceso: %w", err)
	}
	if len(filas) == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Activo consulta la llave compuesta completa (usuario, empresa).
// Fila ausente = false sin error; el caso de uso decide el fail-closed.
func (r *AccesoRepo) Activo(ctx context.Context, usuario, empresa string) (bool, error) {
	var filas []struct {
		Activo any `json:"activo"`
	}
	_, err := r.rest.From("accesos").
		Select("activo", "", false).
		Eq("usuario", usuario).
		Eq("empresa", empresa).
		Limit(1, "").
		ExecuteTo(&filas)
	if err != nil {
		return false, fmt.Errorf("validar acceso: %w", err)
	}
	if len(filas) == 0 {
		return false, nil
	}
	return domain.NormalizeActivo(filas[0].Activo), nil
}

// EmpresasDeUsuario lee view_empresas_usuarios para armar la lista de
// empresas del login. PostgREST expone las vistas igual que las tablas.
func (r *AccesoRepo) EmpresasDeUsuario(ctx context.Context, usuarioID int) ([]entity.EmpresaUsuario, error) {
	var filas []struct {
		Empresa      string `json:"empresa"`
		Nombre       string `json:"nombre_empresa"`
		Nivel        string `json:"nivel"`
		Codigo       int    `json:"codigo"`
		Bodega       int    `json:"bodega"`
		CentroCostos int    `json:"centro_costos"`
	}
	_, err := r.rest.From("view_empresas_usuarios").
		Select("empresa,nombre_empresa,nivel,codigo,bodega,centro_costos", "", false).
		Eq("usuario_id", strconv.Itoa(usuarioID)).
		Eq("activo", "true").
		ExecuteTo(&filas)
	if err != nil {
		return nil, fmt.Errorf("empresas de usuario: %w", err)
	}
	list := make([]entity.EmpresaUsuario, 0, len(filas))
	for _, f := range filas {
		list = append(list, entity.EmpresaUsuario{
			Empresa:      f.Empresa,
			Nombre:       f.Nombre,
			Nivel:        f.Nivel,
			Codigo:       f.Codigo,
			Bodega:       f.Bodega,
			CentroCostos: f.CentroCostos,
		})
	}
	return list, nil
}
