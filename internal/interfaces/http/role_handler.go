package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockadmin-api/internal/application/dto"
	"github.com/tu-usuario/stockadmin-api/internal/application/usecase"
)

// RoleHandler maneja las peticiones HTTP de roles y permisos (solo admin).
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// List godoc
// @Summary      Listar roles
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página"            default(1)
// @Param        per_page  query  int     false  "Tamaño de página"  default(10)
// @Success      200       {object}  dto.SuccessResponse
// @Router       /api/v1/role [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	var req dto.PaginationRequest
	if err := c.QueryParser(&req); err != nil {
		return failMsg(c, fiber.StatusBadRequest, "query params inválidos")
	}
	p := req.ToPagination()
	list, total, err := h.uc.ListRoles(c.Context(), p)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "roles obtenidos", dto.NewPaginated(list, p, total, len(list)))
}

// GetAll godoc
// @Summary      Listar roles (sin paginar)
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/v1/role/all [get]
func (h *RoleHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.uc.GetAllRoles(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "roles obtenidos", list)
}

// Create godoc
// @Summary      Crear rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RoleRequest  true  "Datos del rol"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/role [post]
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.RoleRequest
	if err := c.BodyParser(&in); err != nil {
		return failMsg(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.CreateRole(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "rol creado", out)
}

// GetByID godoc
// @Summary      Obtener rol por ID (con permisos)
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del rol"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/role/{id} [get]
func (h *RoleHandler) GetByID(c *fiber.Ctx) error {
	role, err := h.uc.GetRole(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "rol obtenido", role)
}

// Update godoc
// @Summary      Actualizar rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del rol"
// @Param        body  body  dto.RoleRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/role/{id} [put]
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	var in dto.RoleRequest
	if err := c.BodyParser(&in); err != nil {
		return failMsg(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.UpdateRole(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "rol actualizado", out)
}

// Delete godoc
// @Summary      Eliminar rol
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del rol"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/role/{id} [delete]
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.DeleteRole(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "rol eliminado", out)
}

// SyncPermissions godoc
// @Summary      Sincronizar permisos de un rol
// @Description  Reemplaza el conjunto de permisos del rol por el enviado.
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del rol"
// @Param        body  body  dto.SyncPermissionsRequest  true  "IDs de permisos"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/role/{id}/sync-permissions [post]
func (h *RoleHandler) SyncPermissions(c *fiber.Ctx) error {
	var in dto.SyncPermissionsRequest
	if err := c.BodyParser(&in); err != nil {
		return failMsg(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.SyncPermissions(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "permisos sincronizados", out)
}

// GetPermissions godoc
// @Summary      Permisos de un rol
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del rol"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/role/{id}/permissions [get]
func (h *RoleHandler) GetPermissions(c *fiber.Ctx) error {
	out, err := h.uc.GetRolePermissions(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "permisos del rol obtenidos", out)
}

// ListAllPermissions godoc
// @Summary      Listar catálogo de permisos
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/v1/permission [get]
func (h *RoleHandler) ListAllPermissions(c *fiber.Ctx) error {
	out, err := h.uc.GetAllPermissions(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "permisos obtenidos", out)
}

// CreatePermission godoc
// @Summary      Crear permiso
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PermissionRequest  true  "Datos del permiso"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/permission [post]
func (h *RoleHandler) CreatePermission(c *fiber.Ctx) error {
	var in dto.PermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return failMsg(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.CreatePermission(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "permiso creado", out)
}

// UpdatePermission godoc
// @Summary      Actualizar permiso
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del permiso"
// @Param        body  body  dto.PermissionRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/permission/{id} [put]
func (h *RoleHandler) UpdatePermission(c *fiber.Ctx) error {
	var in dto.PermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return failMsg(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.UpdatePermission(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "permiso actualizado", out)
}

// DeletePermission godoc
// @Summary      Eliminar permiso
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del permiso"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/permission/{id} [delete]
func (h *RoleHandler) DeletePermission(c *fiber.Ctx) error {
	out, err := h.uc.DeletePermission(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "permiso eliminado", out)
}
