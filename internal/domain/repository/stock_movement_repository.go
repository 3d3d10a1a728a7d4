package repository

import "github.com/tu-usuario/stockadmin-api/internal/domain/entity"

// StockMovementRepository puerto de persistencia del historial de movimientos.
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
	// Update persiste type/quantity/source/reference/user_id del movimiento.
	// CreatedAt nunca cambia: la posición en el ledger se conserva.
	Update(m *entity.StockMovement) error
	Delete(id string) error

	// GetByID devuelve el movimiento sin relaciones, o (nil, nil) si no existe.
	GetByID(id string) (*entity.StockMovement, error)
	// GetByIDExpanded devuelve el movimiento con producto y usuario cargados.
	GetByIDExpanded(id string) (*entity.StockMovement, error)

	// ListByProduct devuelve el ledger completo del producto ordenado por
	// (created_at, id) ascendente. El orden es determinante para el replay.
	ListByProduct(productID string) ([]entity.StockMovement, error)

	// List pagina todos los movimientos (producto y usuario expandidos);
	// la búsqueda cubre type/source/reference y nombre/sku del producto.
	List(p Pagination) ([]*entity.StockMovement, int, error)
	// GetAllExpanded devuelve todos los movimientos sin paginar, más
	// recientes primero, con producto y usuario expandidos.
	GetAllExpanded() ([]*entity.StockMovement, error)
	// ListByProductPaginated pagina los movimientos de un producto;
	// la búsqueda cubre type/source/reference.
	ListByProductPaginated(productID string, p Pagination) ([]*entity.StockMovement, int, error)
}
