package dto

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockadmin-api/internal/domain"
)

// ProductRequest body para crear/actualizar un producto.
// Stock solo se respeta en la creación; después lo gobierna el motor de movimientos.
type ProductRequest struct {
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	IsActive    *bool           `json:"is_active,omitempty"`
	Brand       *string         `json:"brand,omitempty"`
	Description *string         `json:"description,omitempty"`
	Image       *string         `json:"image,omitempty"`
}

// Validate valida reglas mínimas del request.
func (r ProductRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if r.SKU == "" {
		return fmt.Errorf("%w: sku es requerido", domain.ErrInvalidInput)
	}
	if r.Unit == "" {
		return fmt.Errorf("%w: unit es requerido", domain.ErrInvalidInput)
	}
	if r.Stock < 0 {
		return fmt.Errorf("%w: stock no puede ser negativo", domain.ErrInvalidInput)
	}
	if r.Price.IsNegative() {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}
