package entity

// Usuario representa un usuario del sistema. El email funciona como identidad
// de login. ClaveHash es siempre un hash bcrypt; nunca se serializa hacia el
// cliente (el DTO de respuesta lo omite).
type Usuario struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	ClaveHash string `json:"-"`
	Telefono  string `json:"telefono"`
	Activo    bool   `json:"activo"`
}
