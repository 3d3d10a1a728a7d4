package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockadmin-api/internal/application/dto"
	"github.com/tu-usuario/stockadmin-api/internal/domain"
	"github.com/tu-usuario/stockadmin-api/internal/domain/entity"
	"github.com/tu-usuario/stockadmin-api/internal/domain/repository"
)

// StoreUseCase CRUD de tiendas registradas por vendedores.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Create crea una tienda. Si el request no trae created_by_sales_id se usa
// actorID (el usuario autenticado).
func (uc *StoreUseCase) Create(ctx context.Context, actorID string, in dto.StoreRequest) (*entity.Store, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	createdBy := in.CreatedBySalesID
	if createdBy == nil && actorID != "" {
		createdBy = &actorID
	}
	now := time.Now()
	store := &entity.Store{
		ID:               uuid.New().String(),
		Name:             in.Name,
		OwnerName:        in.OwnerName,
		Phone:            in.Phone,
		Address:          in.Address,
		Latitude:         in.Latitude,
		Longitude:        in.Longitude,
		Image:            in.Image,
		CreatedBySalesID: createdBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	return uc.repo.GetByID(store.ID)
}

// Update actualiza los datos de la tienda (el creador no cambia).
func (uc *StoreUseCase) Update(ctx context.Context, id string, in dto.StoreRequest) (*entity.Store, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}

	store.Name = in.Name
	store.OwnerName = in.OwnerName
	store.Phone = in.Phone
	store.Address = in.Address
	store.Latitude = in.Latitude
	store.Longitude = in.Longitude
	if in.Image != nil {
		store.Image = in.Image
	}
	store.UpdatedAt = time.Now()

	if err := uc.repo.Update(store); err != nil {
		return nil, err
	}
	return uc.repo.GetByID(id)
}

// Delete elimina una tienda.
func (uc *StoreUseCase) Delete(ctx context.Context, id string) (*entity.Store, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return store, nil
}

// GetByID devuelve una tienda con el vendedor creador expandido.
func (uc *StoreUseCase) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return store, nil
}

// List pagina tiendas con búsqueda por name/owner_name/address.
func (uc *StoreUseCase) List(ctx context.Context, p repository.Pagination) ([]*entity.Store, int, error) {
	return uc.repo.List(p)
}

// GetAll devuelve todas las tiendas, más recientes primero.
func (uc *StoreUseCase) GetAll(ctx context.Context) ([]*entity.Store, error) {
	return uc.repo.GetAll()
}
