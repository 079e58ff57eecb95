package entity

// Acceso representa la autorización de un usuario sobre una empresa.
// La llave real de la tabla es compuesta (empresa, usuario), pero la API
// direcciona el recurso únicamente por `usuario`: un usuario con accesos en
// varias empresas solo tiene una fila alcanzable vía update/delete. Es una
// inconsistencia heredada del sistema original que se conserva a propósito;
// corregirla cambiaría el contrato del frontend.
type Acceso struct {
	Empresa      string `json:"empresa"`
	Usuario      string `json:"usuario"`
	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
	Clave        string `json:"clave"`
	Nivel        string `json:"nivel"`
	Codigo       int    `json:"codigo"`
	Bodega       int    `json:"bodega"`
	CentroCostos int    `json:"centro_costos"`
	Activo       bool   `json:"activo"`
}

// EmpresaUsuario es una fila de la vista view_empresas_usuarios: las empresas
// a las que un usuario tiene acceso activo, tal como se devuelven en el login.
type EmpresaUsuario struct {
	Empresa      string `json:"empresa"`
	Nombre       string `json:"nombre"`
	Nivel        string `json:"nivel"`
	Codigo       int    `json:"codigo"`
	Bodega       int    `json:"bodega"`
	CentroCostos int    `json:"centro_costos"`
}
