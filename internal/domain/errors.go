package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los adaptadores de
// persistencia traducen los errores del backend activo a esta taxonomía;
// los handlers solo conocen estos sentinelas.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrTablaDesconocida y ErrColumnaDesconocida protegen el gateway genérico:
	// ningún identificador que no esté en el registro de esquema llega al SQL.
	ErrTablaDesconocida   = errors.New("tabla no permitida")
	ErrColumnaDesconocida = errors.New("columna no permitida")
)
