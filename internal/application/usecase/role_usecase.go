package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockadmin-api/internal/application/dto"
	"github.com/tu-usuario/stockadmin-api/internal/domain"
	"github.com/tu-usuario/stockadmin-api/internal/domain/entity"
	"github.com/tu-usuario/stockadmin-api/internal/domain/repository"
)

// RoleUseCase administra roles, permisos y su asignación.
type RoleUseCase struct {
	roleRepo repository.RoleRepository
	permRepo repository.PermissionRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(roleRepo repository.RoleRepository, permRepo repository.PermissionRepository) *RoleUseCase {
	return &RoleUseCase{roleRepo: roleRepo, permRepo: permRepo}
}

// --- Roles ---

// CreateRole crea un rol (nombre único).
func (uc *RoleUseCase) CreateRole(ctx context.Context, in dto.RoleRequest) (*entity.Role, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	role := &entity.Role{ID: uuid.New().String(), Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.roleRepo.Create(role); err != nil {
		return nil, err
	}
	return role, nil
}

// UpdateRole renombra un rol.
func (uc *RoleUseCase) UpdateRole(ctx context.Context, id string, in dto.RoleRequest) (*entity.Role, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	role, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	role.Name = in.Name
	role.UpdatedAt = time.Now()
	if err := uc.roleRepo.Update(role); err != nil {
		return nil, err
	}
	return role, nil
}

// DeleteRole elimina un rol (y sus asignaciones en cascada).
func (uc *RoleUseCase) DeleteRole(ctx context.Context, id string) (*entity.Role, error) {
	role, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.roleRepo.Delete(id); err != nil {
		return nil, err
	}
	return role, nil
}

// ListRoles pagina roles con permisos expandidos.
func (uc *RoleUseCase) ListRoles(ctx context.Context, p repository.Pagination) ([]*entity.Role, int, error) {
	return uc.roleRepo.List(p)
}

// GetAllRoles devuelve todos los roles.
func (uc *RoleUseCase) GetAllRoles(ctx context.Context) ([]*entity.Role, error) {
	return uc.roleRepo.GetAll()
}

// --- Permisos ---

// CreatePermission crea un permiso (nombre único).
func (uc *RoleUseCase) CreatePermission(ctx context.Context, in dto.PermissionRequest) (*entity.Permission, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	perm := &entity.Permission{ID: uuid.New().String(), Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.permRepo.Create(perm); err != nil {
		return nil, err
	}
	return perm, nil
}

// UpdatePermission renombra un permiso.
func (uc *RoleUseCase) UpdatePermission(ctx context.Context, id string, in dto.PermissionRequest) (*entity.Permission, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	perm, err := uc.permRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if perm == nil {
		return nil, domain.ErrNotFound
	}
	perm.Name = in.Name
	perm.UpdatedAt = time.Now()
	if err := uc.permRepo.Update(perm); err != nil {
		return nil, err
	}
	return perm, nil
}

// DeletePermission elimina un permiso.
func (uc *RoleUseCase) DeletePermission(ctx context.Context, id string) (*entity.Permission, error) {
	perm, err := uc.permRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if perm == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.permRepo.Delete(id); err != nil {
		return nil, err
	}
	return perm, nil
}

// GetAllPermissions devuelve todos los permisos.
func (uc *RoleUseCase) GetAllPermissions(ctx context.Context) ([]entity.Permission, error) {
	return uc.permRepo.GetAll()
}

// --- Asignación ---

// SyncPermissions reemplaza el conjunto de permisos del rol. Los IDs deben
// existir; devuelve el rol con los permisos resultantes.
func (uc *RoleUseCase) SyncPermissions(ctx context.Context, roleID string, in dto.SyncPermissionsRequest) (*entity.Role, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	role, err := uc.roleRepo.GetByID(roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	for _, permID := range in.PermissionIDs {
		perm, err := uc.permRepo.GetByID(permID)
		if err != nil {
			return nil, err
		}
		if perm == nil {
			return nil, domain.ErrNotFound
		}
	}
	if err := uc.roleRepo.SyncPermissions(roleID, in.PermissionIDs); err != nil {
		return nil, err
	}
	return uc.roleRepo.GetByID(roleID)
}

// GetRolePermissions devuelve los permisos de un rol.
func (uc *RoleUseCase) GetRolePermissions(ctx context.Context, roleID string) ([]entity.Permission, error) {
	role, err := uc.roleRepo.GetByID(roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	return uc.roleRepo.ListPermissions(roleID)
}

// GetRole devuelve un rol por ID con sus permisos cargados.
func (uc *RoleUseCase) GetRole(ctx context.Context, id string) (*entity.Role, error) {
	role, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	return role, nil
}

// RoleHasPermission verifica si un rol (por nombre) tiene un permiso.
// El rol admin siempre pasa.
func (uc *RoleUseCase) RoleHasPermission(roleName, permission string) (bool, error) {
	if roleName == entity.RoleAdmin {
		return true, nil
	}
	role, err := uc.roleRepo.GetByName(roleName)
	if err != nil {
		return false, err
	}
	if role == nil {
		return false, nil
	}
	for _, p := range role.Permissions {
		if p.Name == permission {
			return true, nil
		}
	}
	return false, nil
}
