package repository

import "github.com/tu-usuario/stockadmin-api/internal/domain/entity"

// StoreRepository puerto de persistencia de tiendas. Los Get* devuelven
// (nil, nil) si no existe y expanden el vendedor creador.
type StoreRepository interface {
	Create(store *entity.Store) error
	Update(store *entity.Store) error
	Delete(id string) error

	GetByID(id string) (*entity.Store, error)

	// List pagina con búsqueda por name/owner_name/address.
	List(p Pagination) ([]*entity.Store, int, error)
	GetAll() ([]*entity.Store, error)
}
