package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Store representa una tienda registrada por un vendedor.
type Store struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	OwnerName        string           `json:"owner_name"`
	Phone            *string          `json:"phone,omitempty"`
	Address          *string          `json:"address,omitempty"`
	Latitude         *decimal.Decimal `json:"latitude,omitempty"`
	Longitude        *decimal.Decimal `json:"longitude,omitempty"`
	Image            *string          `json:"image,omitempty"`
	CreatedBySalesID *string          `json:"created_by_sales_id,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`

	// Vendedor que registró la tienda (nil si no se cargó).
	CreatedBySales *User `json:"created_by_sales,omitempty"`
}
