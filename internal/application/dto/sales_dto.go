package dto

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/stockadmin-api/internal/domain"
)

// SalesRequest body para crear/actualizar una cuenta de vendedor.
// Password es obligatorio al crear; en update, vacío significa no cambiarla.
type SalesRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// Validate valida reglas mínimas; forCreate exige password.
func (r SalesRequest) Validate(forCreate bool) error {
	if r.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	if forCreate && len(r.Password) < 8 {
		return fmt.Errorf("%w: password debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}
	if !forCreate && r.Password != "" && len(r.Password) < 8 {
		return fmt.Errorf("%w: password debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}
	return nil
}
