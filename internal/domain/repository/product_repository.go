package repository

import "github.com/tu-usuario/stockadmin-api/internal/domain/entity"

// ProductRepository puerto de persistencia de productos. Los métodos Get*
// devuelven (nil, nil) si el registro no existe.
//
// El motor de movimientos es el único que escribe Stock (IncrementStock /
// SetStock); Update no debe tocar esa columna.
type ProductRepository interface {
	Create(product *entity.Product) error
	Update(product *entity.Product) error
	Delete(id string) error

	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE)
	// para serializar movimientos concurrentes sobre el mismo producto.
	GetByIDForUpdate(id string) (*entity.Product, error)
	GetBySlug(slug string) (*entity.Product, error)

	// SlugExists indica si otro producto (distinto de excludeID) ya usa el slug.
	SlugExists(slug, excludeID string) (bool, error)

	// IncrementStock aplica un delta (positivo o negativo) sobre stock.
	IncrementStock(id string, delta int) error
	// SetStock fija el stock en un valor absoluto (ADJUST y recomputación).
	SetStock(id string, stock int) error

	List(p Pagination) ([]*entity.Product, int, error)
	GetAllActive() ([]*entity.Product, error)
}
