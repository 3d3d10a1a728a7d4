package dto

import (
	"fmt"

	"github.com/tu-usuario/stockadmin-api/internal/domain"
	"github.com/tu-usuario/stockadmin-api/internal/domain/entity"
)

// LoginRequest body para POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate valida reglas mínimas del request.
func (r LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return fmt.Errorf("%w: email y password son requeridos", domain.ErrInvalidInput)
	}
	return nil
}

// LoginResponse token emitido y usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}
