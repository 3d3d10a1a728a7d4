// Package ledger contiene la lógica pura del libro de stock: aplicar, revertir
// y recomputar el stock de un producto a partir de su historial de movimientos.
// No toca persistencia; el caso de uso transaccional (application/stockmovement)
// es una cáscara delgada alrededor de estas funciones.
package ledger

import (
	"sort"

	"github.com/tu-usuario/stockadmin-api/internal/domain"
	"github.com/tu-usuario/stockadmin-api/internal/domain/entity"
)

// Apply calcula el efecto hacia adelante de un movimiento sobre el stock.
// IN suma, OUT resta (rechazado con ErrInsufficientStock si queda negativo),
// ADJUST fija el valor absoluto descartando el acumulado anterior.
func Apply(stock int, movementType string, quantity int) (int, error) {
	switch movementType {
	case entity.MovementTypeIN:
		return stock + quantity, nil
	case entity.MovementTypeOUT:
		if stock-quantity < 0 {
			return stock, domain.ErrInsufficientStock
		}
		return stock - quantity, nil
	case entity.MovementTypeADJUST:
		return quantity, nil
	}
	return stock, domain.ErrInvalidInput
}

// Reverse deshace el efecto de un movimiento por aritmética simple.
// Para IN/OUT la inversa es exacta. Un ADJUST es lossy: el set absoluto
// destruyó el valor anterior, así que no tiene inversa aritmética y el
// caller debe recomputar con Replay; en ese caso ok es false.
func Reverse(stock int, movementType string, quantity int) (reversed int, ok bool) {
	switch movementType {
	case entity.MovementTypeIN:
		return stock - quantity, true
	case entity.MovementTypeOUT:
		return stock + quantity, true
	}
	return stock, false
}

// Replay recalcula el stock desde cero plegando los movimientos en orden
// cronológico: IN suma, OUT resta, ADJUST reinicia el acumulado a su cantidad.
// El resultado final se recorta a un mínimo de cero (un OUT histórico pudo
// quedar huérfano tras borrar el IN que lo respaldaba).
func Replay(movements []entity.StockMovement) int {
	ordered := Chronological(movements)

	stock := 0
	for _, m := range ordered {
		switch m.Type {
		case entity.MovementTypeIN:
			stock += m.Quantity
		case entity.MovementTypeOUT:
			stock -= m.Quantity
		case entity.MovementTypeADJUST:
			stock = m.Quantity
		}
	}
	if stock < 0 {
		stock = 0
	}
	return stock
}

// Chronological devuelve una copia ordenada por (CreatedAt, ID) ascendente.
// El ID desempata timestamps iguales para que el replay sea determinista.
func Chronological(movements []entity.StockMovement) []entity.StockMovement {
	ordered := make([]entity.StockMovement, len(movements))
	copy(ordered, movements)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})
	return ordered
}

// IsLast indica si el movimiento con ese ID es el último del ledger en orden
// cronológico. Con un ledger vacío devuelve false.
func IsLast(movements []entity.StockMovement, movementID string) bool {
	if len(movements) == 0 {
		return false
	}
	ordered := Chronological(movements)
	return ordered[len(ordered)-1].ID == movementID
}

// Excluding devuelve los movimientos sin el que tiene el ID dado.
func Excluding(movements []entity.StockMovement, movementID string) []entity.StockMovement {
	out := make([]entity.StockMovement, 0, len(movements))
	for _, m := range movements {
		if m.ID != movementID {
			out = append(out, m)
		}
	}
	return out
}
