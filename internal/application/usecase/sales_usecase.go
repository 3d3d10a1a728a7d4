package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockadmin-api/internal/application/dto"
	"github.com/tu-usuario/stockadmin-api/internal/domain"
	"github.com/tu-usuario/stockadmin-api/internal/domain/entity"
	"github.com/tu-usuario/stockadmin-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// SalesUseCase administra cuentas de vendedores: usuarios con el rol "sales".
// Todas las operaciones por ID están acotadas a ese rol; un ID de otro usuario
// responde ErrNotFound.
type SalesUseCase struct {
	userRepo repository.UserRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(userRepo repository.UserRepository) *SalesUseCase {
	return &SalesUseCase{userRepo: userRepo}
}

// Create crea la cuenta con password hasheado (bcrypt) y asigna el rol sales.
func (uc *SalesUseCase) Create(ctx context.Context, in dto.SalesRequest) (*entity.User, error) {
	if err := in.Validate(true); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	if err := uc.userRepo.AssignRole(user.ID, entity.RoleSales); err != nil {
		return nil, err
	}
	return uc.userRepo.GetByID(user.ID)
}

// Update actualiza nombre/email; password solo si viene en el request.
func (uc *SalesUseCase) Update(ctx context.Context, id string, in dto.SalesRequest) (*entity.User, error) {
	if err := in.Validate(false); err != nil {
		return nil, err
	}

	user, err := uc.getSales(id)
	if err != nil {
		return nil, err
	}

	user.Name = in.Name
	user.Email = in.Email
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete elimina la cuenta de vendedor.
func (uc *SalesUseCase) Delete(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.getSales(id)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.Delete(id); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID devuelve un vendedor por ID.
func (uc *SalesUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.getSales(id)
}

// List pagina vendedores con búsqueda por nombre/email.
func (uc *SalesUseCase) List(ctx context.Context, p repository.Pagination) ([]*entity.User, int, error) {
	return uc.userRepo.ListByRole(entity.RoleSales, p)
}

// GetAll devuelve todos los vendedores.
func (uc *SalesUseCase) GetAll(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.GetAllByRole(entity.RoleSales)
}

func (uc *SalesUseCase) getSales(id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.HasRole(entity.RoleSales) {
		return nil, domain.ErrNotFound
	}
	return user, nil
}
