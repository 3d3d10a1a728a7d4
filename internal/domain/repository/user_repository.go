package repository

import "github.com/tu-usuario/stockadmin-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios y su asignación de roles.
// Los métodos Get* devuelven (nil, nil) si el registro no existe y cargan
// los roles del usuario.
type UserRepository interface {
	Create(user *entity.User) error
	Update(user *entity.User) error
	Delete(id string) error

	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)

	// AssignRole asigna un rol por nombre (idempotente).
	AssignRole(userID, roleName string) error

	// ListByRole pagina los usuarios que tienen el rol; búsqueda por nombre/email.
	ListByRole(roleName string, p Pagination) ([]*entity.User, int, error)
	GetAllByRole(roleName string) ([]*entity.User, error)
}
