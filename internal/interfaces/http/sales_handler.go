package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockadmin-api/internal/application/dto"
	"github.com/tu-usuario/stockadmin-api/internal/application/usecase"
)

// SalesHandler maneja las peticiones HTTP para cuentas de vendedor (solo admin).
type SalesHandler struct {
	uc *usecase.SalesUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *usecase.SalesUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// List godoc
// @Summary      Listar vendedores
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página"            default(1)
// @Param        per_page  query  int     false  "Tamaño de página"  default(10)
// @Param        search    query  string  false  "Búsqueda por nombre o email"
// @Success      200       {object}  dto.SuccessResponse
// @Router       /api/v1/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	var req dto.PaginationRequest
	if err := c.QueryParser(&req); err != nil {
		return failMsg(c, fiber.StatusBadRequest, "query params inválidos")
	}
	p := req.ToPagination()
	list, total, err := h.uc.List(c.Context(), p)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "vendedores obtenidos", dto.NewPaginated(list, p, total, len(list)))
}

// GetAll godoc
// @Summary      Listar vendedores (sin paginar)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/v1/sales/all [get]
func (h *SalesHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.uc.GetAll(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "vendedores obtenidos", list)
}

// Create godoc
// @Summary      Crear vendedor
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalesRequest  true  "Datos del vendedor"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.SalesRequest
	if err := c.BodyParser(&in); err != nil {
		return failMsg(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "vendedor creado", out)
}

// GetByID godoc
// @Summary      Obtener vendedor por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vendedor"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/sales/{id} [get]
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "vendedor obtenido", out)
}

// Update godoc
// @Summary      Actualizar vendedor
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del vendedor"
// @Param        body  body  dto.SalesRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/sales/{id} [put]
func (h *SalesHandler) Update(c *fiber.Ctx) error {
	var in dto.SalesRequest
	if err := c.BodyParser(&in); err != nil {
		return failMsg(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "vendedor actualizado", out)
}

// Delete godoc
// @Summary      Eliminar vendedor
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vendedor"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/sales/{id} [delete]
func (h *SalesHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "vendedor eliminado", out)
}
