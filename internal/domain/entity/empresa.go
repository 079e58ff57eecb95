package entity

// Empresa representa una empresa/tenant del sistema. El código `Empresa` es
// la llave natural en los joins (accesos, plan_contable), pero el CRUD la
// direcciona por el ID numérico; ambas llaves conviven por diseño histórico.
type Empresa struct {
	ID         int    `json:"id"`
	Empresa    string `json:"empresa"` // código de negocio, ej. "01"
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
	Activo     bool   `json:"activo"`
}
