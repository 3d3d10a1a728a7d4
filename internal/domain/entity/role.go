package entity

import "time"

// Role agrupa permisos asignables a usuarios.
type Role struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"` // único
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Permisos expandidos (vacío si no se cargaron).
	Permissions []Permission `json:"permissions,omitempty"`
}

// Permission representa una acción autorizable (ej. "product.create").
type Permission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"` // único
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
