package dto

// PageRequest paginación 1-based para listados.
type PageRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

// DefaultPage aplica valores por defecto si Page/Limit son cero.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
}

// Paginado envoltura estándar de los listados. Total y TotalPages describen
// el conjunto filtrado completo, no la página devuelta.
type Paginado[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Paginar corta el conjunto filtrado completo en la página pedida. Una página
// más allá del final devuelve data vacía con los totales intactos.
func Paginar[T any](items []T, p PageRequest) Paginado[T] {
	p.DefaultPage()
	total := len(items)
	totalPages := (total + p.Limit - 1) / p.Limit

	inicio := (p.Page - 1) * p.Limit
	if inicio > total {
		inicio = total
	}
	fin := inicio + p.Limit
	if fin > total {
		fin = total
	}
	data := make([]T, 0, fin-inicio)
	data = append(data, items[inicio:fin]...)

	return Paginado[T]{
		Data:       data,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
