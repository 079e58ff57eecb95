// Package schema define el registro de tablas que el gateway genérico puede
// tocar. Los nombres de tabla y columna llegan del exterior y no pueden
// parametrizarse como valores en SQL, así que se validan aquí contra una
// lista cerrada antes de construir cualquier sentencia.
package schema

// Tabla describe una tabla de captura genérica: sus columnas permitidas y
// las columnas sobre las que aplica la búsqueda parcial insensible a
// mayúsculas. La clave de direccionamiento es siempre (codigo, empresa).
type Tabla struct {
	Nombre   string
	Columnas []string
	// Busqueda son las columnas del ILIKE. Para nits es (nit, nombre);
	// para el resto (codigo::text, nombre, abreviado). CodigoComoTexto
	// indica si la primera columna requiere CAST a texto.
	Busqueda        []string
	CodigoComoTexto bool
}

// columnas estándar de una tabla de referencia por empresa.
var columnasGenericas = []string{"empresa", "codigo", "nombre", "abreviado", "activo"}

var registro = map[string]*Tabla{
	"bodegas":          generica("bodegas"),
	"cargos":           generica("cargos"),
	"centro_costos":    generica("centro_costos"),
	"fuente_contable":  generica("fuente_contable"),
	"califica_cliente": generica("califica_cliente"),
	"tipo_consecutivo": generica("tipo_consecutivo"),
	"nits": {
		Nombre:   "nits",
		Columnas: []string{"empresa", "codigo", "nit", "nombre", "abreviado", "activo"},
		Busqueda: []string{"nit", "nombre"},
	},
}

func generica(nombre string) *Tabla {
	return &Tabla{
		Nombre:          nombre,
		Columnas:        columnasGenericas,
		Busqueda:        []string{"codigo", "nombre", "abreviado"},
		CodigoComoTexto: true,
	}
}

// Buscar devuelve la definición de una tabla permitida, o false si el nombre
// no está en el registro.
func Buscar(nombre string) (*Tabla, bool) {
	t, ok := registro[nombre]
	return t, ok
}

// PermiteColumna informa si la columna pertenece a la tabla.
func (t *Tabla) PermiteColumna(col string) bool {
	for _, c := range t.Columnas {
		if c == col {
			return true
		}
	}
	return false
}
