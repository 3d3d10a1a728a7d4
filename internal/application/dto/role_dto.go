package dto

import (
	"fmt"

	"github.com/tu-usuario/stockadmin-api/internal/domain"
)

// RoleRequest body para crear/actualizar un rol.
type RoleRequest struct {
	Name string `json:"name"`
}

// Validate valida reglas mínimas del request.
func (r RoleRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	return nil
}

// PermissionRequest body para crear/actualizar un permiso.
type PermissionRequest struct {
	Name string `json:"name"`
}

// Validate valida reglas mínimas del request.
func (r PermissionRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	return nil
}

// SyncPermissionsRequest body para POST /role/:id/sync-permissions.
type SyncPermissionsRequest struct {
	PermissionIDs []string `json:"permission_ids"`
}

// Validate valida reglas mínimas del request.
func (r SyncPermissionsRequest) Validate() error {
	for _, id := range r.PermissionIDs {
		if id == "" {
			return fmt.Errorf("%w: permission_ids contiene un id vacío", domain.ErrInvalidInput)
		}
	}
	return nil
}
