package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockadmin-api/internal/application/auth"
	"github.com/tu-usuario/stockadmin-api/internal/application/stockmovement"
	"github.com/tu-usuario/stockadmin-api/internal/application/usecase"
	"github.com/tu-usuario/stockadmin-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	StockMovementUC *stockmovement.UseCase
	SalesUC         *usecase.SalesUseCase
	StoreUC         *usecase.StoreUseCase
	RoleUC          *usecase.RoleUseCase
	AuthUC          *auth.UseCase
	JWTSecret       string
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	v1 := app.Group("/api/v1")

	// Auth
	authGroup := v1.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := v1.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (admin y vendedores)
	products := protected.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/all", productHandler.GetAll)
	products.Get("/slug/:slug", productHandler.GetBySlug)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id", productHandler.Update) // clientes sin soporte PUT
	products.Delete("/:id", productHandler.Delete)

	// Stock movements (motor del ledger). Las escrituras piden el permiso
	// stock-movement.manage; el rol admin siempre pasa.
	canManageStock := RequirePermission("stock-movement.manage", deps.RoleUC)
	movements := protected.Group("/stock-movement")
	movementHandler := NewStockMovementHandler(deps.StockMovementUC)
	movements.Get("/", movementHandler.List)
	movements.Get("/all", movementHandler.GetAll)
	movements.Get("/product/:productSlug", movementHandler.ListByProduct)
	movements.Post("/", canManageStock, movementHandler.Create)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", canManageStock, movementHandler.Update)
	movements.Post("/:id", canManageStock, movementHandler.Update)
	movements.Delete("/:id", canManageStock, movementHandler.Delete)

	// Stores (admin y vendedores)
	stores := protected.Group("/store")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
	stores.Get("/all", storeHandler.GetAll)
	stores.Post("/", storeHandler.Create)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", storeHandler.Update)
	stores.Post("/:id", storeHandler.Update)
	stores.Delete("/:id", storeHandler.Delete)

	// Sales (solo admin)
	adminOnly := RequireRole(entity.RoleAdmin)
	sales := protected.Group("/sales", adminOnly)
	salesHandler := NewSalesHandler(deps.SalesUC)
	sales.Get("/", salesHandler.List)
	sales.Get("/all", salesHandler.GetAll)
	sales.Post("/", salesHandler.Create)
	sales.Get("/:id", salesHandler.GetByID)
	sales.Put("/:id", salesHandler.Update)
	sales.Post("/:id", salesHandler.Update)
	sales.Delete("/:id", salesHandler.Delete)

	// Roles y permisos (solo admin)
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles := protected.Group("/role", adminOnly)
	roles.Get("/", roleHandler.List)
	roles.Get("/all", roleHandler.GetAll)
	roles.Post("/", roleHandler.Create)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)
	roles.Post("/:id/sync-permissions", roleHandler.SyncPermissions)
	roles.Get("/:id/permissions", roleHandler.GetPermissions)

	permissions := protected.Group("/permission", adminOnly)
	permissions.Get("/", roleHandler.ListAllPermissions)
	permissions.Post("/", roleHandler.CreatePermission)
	permissions.Put("/:id", roleHandler.UpdatePermission)
	permissions.Delete("/:id", roleHandler.DeletePermission)
}
