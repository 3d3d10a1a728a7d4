package repository

// Pagination parámetros de listado compartidos por todos los repositorios:
// página, búsqueda y ordenamiento. Sin SortBy se ordena por created_at DESC.
type Pagination struct {
	Page          int
	PerPage       int
	Search        string
	SortBy        string
	SortDirection string // asc | desc
}

// Normalize aplica valores por defecto y sanea la dirección de orden.
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 10
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
	if p.SortDirection != "asc" && p.SortDirection != "desc" {
		p.SortDirection = "desc"
	}
}

// Offset devuelve el desplazamiento SQL de la página.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}
