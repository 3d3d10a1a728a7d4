package repository

import "github.com/tu-usuario/stockadmin-api/internal/domain/entity"

// RoleRepository puerto de persistencia de roles y su relación con permisos.
type RoleRepository interface {
	Create(role *entity.Role) error
	Update(role *entity.Role) error
	Delete(id string) error

	// GetByID devuelve el rol con permisos cargados, o (nil, nil) si no existe.
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)

	// List pagina roles (permisos expandidos); búsqueda por nombre.
	List(p Pagination) ([]*entity.Role, int, error)
	GetAll() ([]*entity.Role, error)

	// SyncPermissions reemplaza el conjunto de permisos del rol de forma atómica.
	SyncPermissions(roleID string, permissionIDs []string) error
	// ListPermissions devuelve los permisos actuales del rol.
	ListPermissions(roleID string) ([]entity.Permission, error)
}

// PermissionRepository puerto de persistencia de permisos.
type PermissionRepository interface {
	Create(permission *entity.Permission) error
	Update(permission *entity.Permission) error
	Delete(id string) error

	GetByID(id string) (*entity.Permission, error)
	GetAll() ([]entity.Permission, error)
}
