package entity

import "time"

// Roles conocidos por la aplicación. Se persisten en la tabla roles;
// estas constantes existen para los flujos que los referencian por nombre.
const (
	RoleAdmin = "admin"
	RoleSales = "sales"
)

// User representa una cuenta de la aplicación. Las cuentas de vendedores
// (módulo Sales) son usuarios con el rol "sales".
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // único
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Roles expandidos (vacío si no se cargaron).
	Roles []Role `json:"roles,omitempty"`
}

// HasRole indica si el usuario tiene el rol con ese nombre cargado.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
