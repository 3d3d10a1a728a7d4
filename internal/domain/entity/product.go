package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Stock es un contador materializado:
// solo el motor de movimientos (stockmovement.UseCase) lo modifica, y debe coincidir
// siempre con el replay del historial de movimientos del producto.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`  // único
	Slug        string          `json:"slug"` // derivado del nombre, único
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	IsActive    bool            `json:"is_active"`
	Brand       *string         `json:"brand,omitempty"`
	Description *string         `json:"description,omitempty"`
	Image       *string         `json:"image,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
