package domain

import "strings"

// NormalizeActivo coerciona el campo activo a bool estricto sin importar cómo
// llegue del almacenamiento: entero 1 o booleano true → true; todo lo demás
// (0, nil, cadenas distintas de "true", tipos inesperados) → false.
// La regla se aplica una sola vez, en la frontera de persistencia, para que
// ambos backends devuelvan exactamente la misma forma.
func NormalizeActivo(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case int:
		return val == 1
	case int16:
		return val == 1
	case int32:
		return val == 1
	case int64:
		return val == 1
	case float64:
		// JSON decodifica números como float64
		return val == 1
	case string:
		return strings.EqualFold(val, "true")
	default:
		return false
	}
}
