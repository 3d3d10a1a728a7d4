package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN     = "IN"     // entrada: stock += quantity
	MovementTypeOUT    = "OUT"    // salida: stock -= quantity (rechazada si queda negativo)
	MovementTypeADJUST = "ADJUST" // ajuste absoluto: stock = quantity
)

// ValidMovementType indica si el tipo es uno de IN/OUT/ADJUST.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIN, MovementTypeOUT, MovementTypeADJUST:
		return true
	}
	return false
}

// StockMovement representa un evento firmado contra el stock de un producto.
// El ledger de un producto es su secuencia de movimientos ordenada por
// (CreatedAt, ID); ID desempata colisiones de timestamp para que el replay
// sea determinista.
type StockMovement struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"` // IN | OUT | ADJUST
	Quantity  int       `json:"quantity"`
	Source    *string   `json:"source,omitempty"`
	Reference *string   `json:"reference,omitempty"`
	UserID    *string   `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Relaciones expandidas en respuestas (nil si no se cargaron).
	Product *Product `json:"product,omitempty"`
	User    *User    `json:"user,omitempty"`
}
