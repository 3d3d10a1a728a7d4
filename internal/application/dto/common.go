package dto

import "github.com/tu-usuario/stockadmin-api/internal/domain/repository"

// PaginationRequest query params de listados (page, per_page, search, sort).
type PaginationRequest struct {
	Page          int    `query:"page"`
	PerPage       int    `query:"per_page"`
	Search        string `query:"search"`
	SortBy        string `query:"sort_by"`
	SortDirection string `query:"sort_direction"`
}

// ToPagination convierte el request al filtro de repositorio con defaults aplicados.
func (r PaginationRequest) ToPagination() repository.Pagination {
	p := repository.Pagination{
		Page:          r.Page,
		PerPage:       r.PerPage,
		Search:        r.Search,
		SortBy:        r.SortBy,
		SortDirection: r.SortDirection,
	}
	p.Normalize()
	return p
}

// Meta metadatos de página en respuestas paginadas.
type Meta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// Paginated cuerpo estándar de listados: {data, meta}.
type Paginated struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

// NewPaginated arma el cuerpo paginado; count es la cantidad de elementos de la página.
func NewPaginated(data any, p repository.Pagination, total, count int) Paginated {
	lastPage := (total + p.PerPage - 1) / p.PerPage
	if lastPage < 1 {
		lastPage = 1
	}
	from, to := 0, 0
	if count > 0 {
		from = p.Offset() + 1
		to = p.Offset() + count
	}
	return Paginated{
		Data: data,
		Meta: Meta{
			CurrentPage: p.Page,
			PerPage:     p.PerPage,
			Total:       total,
			LastPage:    lastPage,
			From:        from,
			To:          to,
		},
	}
}

// SuccessResponse envelope de respuestas exitosas: {success:true, message, data}.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse envelope de error: {success:false, message}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
