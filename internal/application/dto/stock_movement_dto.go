package dto

import (
	"fmt"

	"github.com/tu-usuario/stockadmin-api/internal/domain"
	"github.com/tu-usuario/stockadmin-api/internal/domain/entity"
)

// StockMovementRequest body para registrar o revisar un movimiento de stock.
type StockMovementRequest struct {
	ProductID string  `json:"product_id"`
	Type      string  `json:"type"` // IN | OUT | ADJUST
	Quantity  int     `json:"quantity"`
	Source    *string `json:"source,omitempty"`
	Reference *string `json:"reference,omitempty"`
	UserID    *string `json:"user_id,omitempty"`
}

// Validate valida reglas mínimas del request.
func (r StockMovementRequest) Validate() error {
	if r.ProductID == "" {
		return fmt.Errorf("%w: product_id es requerido", domain.ErrInvalidInput)
	}
	if !entity.ValidMovementType(r.Type) {
		return fmt.Errorf("%w: type debe ser IN, OUT o ADJUST", domain.ErrInvalidInput)
	}
	if r.Quantity < 1 {
		return fmt.Errorf("%w: quantity debe ser un entero positivo", domain.ErrInvalidInput)
	}
	return nil
}

// StockMovementsByProduct respuesta de GET /stock-movement/product/:slug:
// el producto junto con sus movimientos paginados.
type StockMovementsByProduct struct {
	Product        *entity.Product `json:"product"`
	StockMovements Paginated       `json:"stock_movements"`
}
