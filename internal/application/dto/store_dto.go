package dto

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockadmin-api/internal/domain"
)

// StoreRequest body para crear/actualizar una tienda.
// CreatedBySalesID es opcional: si falta, se usa el usuario autenticado.
type StoreRequest struct {
	Name             string           `json:"name"`
	OwnerName        string           `json:"owner_name"`
	Phone            *string          `json:"phone,omitempty"`
	Address          *string          `json:"address,omitempty"`
	Latitude         *decimal.Decimal `json:"latitude,omitempty"`
	Longitude        *decimal.Decimal `json:"longitude,omitempty"`
	Image            *string          `json:"image,omitempty"`
	CreatedBySalesID *string          `json:"created_by_sales_id,omitempty"`
}

// Validate valida reglas mínimas del request.
func (r StoreRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if r.OwnerName == "" {
		return fmt.Errorf("%w: owner_name es requerido", domain.ErrInvalidInput)
	}
	return nil
}
