package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockadmin-api/internal/application/dto"
	"github.com/tu-usuario/stockadmin-api/internal/application/stockmovement"
)

// StockMovementHandler maneja las peticiones HTTP del motor de movimientos (protegido).
type StockMovementHandler struct {
	uc *stockmovement.UseCase
}

// NewStockMovementHandler construye el handler.
func NewStockMovementHandler(uc *stockmovement.UseCase) *StockMovementHandler {
	return &StockMovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos de stock
// @Tags         stock-movements
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página"            default(1)
// @Param        per_page  query  int     false  "Tamaño de página"  default(10)
// @Param        search    query  string  false  "Búsqueda por tipo, origen, referencia o producto"
// @Success      200       {object}  dto.SuccessResponse
// @Router       /api/v1/stock-movement [get]
func (h *StockMovementHandler) List(c *fiber.Ctx) error {
	var req dto.PaginationRequest
	if err := c.QueryParser(&req); err != nil {
		return failMsg(c, fiber.StatusBadRequest, "query params inválidos")
	}
	p := req.ToPagination()
	list, total, err := h.uc.List(c.Context(), p)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "movimientos obtenidos", dto.NewPaginated(list, p, total, len(list)))
}

// ListByProduct godoc
// @Summary      Movimientos de un producto por slug
// @Tags         stock-movements
// @Security     Bearer
// @Produce      json
// @Param        productSlug  path   string  true   "Slug del producto"
// @Param        page         query  int     false  "Página"  default(1)
// @Success      200          {object}  dto.SuccessResponse
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /api/v1/stock-movement/product/{productSlug} [get]
func (h *StockMovementHandler) ListByProduct(c *fiber.Ctx) error {
	var req dto.PaginationRequest
	if err := c.QueryParser(&req); err != nil {
		return failMsg(c, fiber.StatusBadRequest, "query params inválidos")
	}
	p := req.ToPagination()
	product, list, total, err := h.uc.ListByProductSlug(c.Context(), c.Params("productSlug"), p)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "movimientos del producto obtenidos", dto.StockMovementsByProduct{
		Product:        product,
		StockMovements: dto.NewPaginated(list, p, total, len(list)),
	})
}

// Create godoc
// @Summary      Registrar movimiento de stock
// @Description  IN suma, OUT resta (rechazado si dejaría stock negativo), ADJUST fija el stock absoluto.
// @Tags         stock-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/stock-movement [post]
func (h *StockMovementHandler) Create(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return failMsg(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.UserID == nil {
		if uid := GetUserID(c); uid != "" {
			in.UserID = &uid
		}
	}
	out, err := h.uc.Record(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "movimiento registrado", out)
}

// GetAll godoc
// @Summary      Listar movimientos (sin paginar)
// @Tags         stock-movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/v1/stock-movement/all [get]
func (h *StockMovementHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.uc.GetAll(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "movimientos obtenidos", list)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         stock-movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stock-movement/{id} [get]
func (h *StockMovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "movimiento obtenido", out)
}

// Update godoc
// @Summary      Revisar movimiento
// @Description  Corrige tipo/cantidad de un movimiento histórico y recalcula el stock del producto.
// @Tags         stock-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.StockMovementRequest  true  "Movimiento corregido"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/stock-movement/{id} [put]
func (h *StockMovementHandler) Update(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return failMsg(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Revise(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "movimiento actualizado", out)
}

// Delete godoc
// @Summary      Eliminar movimiento
// @Description  Revierte el efecto del movimiento sobre el stock del producto y lo elimina.
// @Tags         stock-movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stock-movement/{id} [delete]
func (h *StockMovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return ok(c, "movimiento eliminado", nil)
}
