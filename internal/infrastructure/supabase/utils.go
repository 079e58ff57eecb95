package supabase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/weimars70/conta-hencker/internal/domain"
)

// esDuplicado detecta violaciones de unicidad en la respuesta de PostgREST.
// PostgREST serializa el error de Postgres con su código SQLSTATE en el
// cuerpo, así que se inspecciona el mensaje.
func esDuplicado(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}

// traducir convierte violaciones de unicidad en ErrDuplicate conservando contexto.
func traducir(op string, err error) error {
	if esDuplicado(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// texto representa un valor JSON como texto. Los números llegan del decoder
// como float64; los códigos son enteros pequeños y se formatean sin decimales.
func texto(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
