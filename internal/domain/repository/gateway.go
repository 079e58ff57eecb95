package repository

import "context"

// Registro es una fila dinámica del gateway genérico. Las tablas de captura
// son "schema-less" para la aplicación: qué columnas existen lo decide el
// registro de esquema, no un struct.
type Registro = map[string]any

// FiltroLista parámetros de listado del gateway genérico.
type FiltroLista struct {
	Empresa  string // filtro exacto por empresa; vacío = sin filtro
	Busqueda string // búsqueda parcial insensible a mayúsculas; columnas según la tabla
}

// ClaveRegistro llave compuesta de toda operación unitaria del gateway.
// El WHERE incluye siempre ambas partes: ninguna operación cruza empresas
// aunque el código coincida.
type ClaveRegistro struct {
	Codigo  int
	Empresa string
}

// TableGateway es el puerto CRUD parametrizado por nombre de tabla.
// Ambas implementaciones (PostgreSQL directo y PostgREST) validan tabla y
// columnas contra el registro de esquema antes de ejecutar nada, devuelven
// filas con `activo` ya normalizado a bool, y representan la ausencia como
// (nil, nil): traducirla a ErrNotFound es responsabilidad del caso de uso.
//
// El contexto cancela la espera del lado cliente; una escritura abandonada
// por timeout puede haberse completado igualmente en el servidor.
type TableGateway interface {
	Insert(ctx context.Context, tabla string, datos Registro) (Registro, error)
	FindAll(ctx context.Context, tabla string, filtro FiltroLista) ([]Registro, error)
	FindOne(ctx context.Context, tabla string, clave ClaveRegistro) (Registro, error)
	Update(ctx context.Context, tabla string, clave ClaveRegistro, datos Registro) (Registro, error)
	Remove(ctx context.Context, tabla string, clave ClaveRegistro) (Registro, error)
}
