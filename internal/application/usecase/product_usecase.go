package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockadmin-api/internal/application/dto"
	"github.com/tu-usuario/stockadmin-api/internal/domain"
	"github.com/tu-usuario/stockadmin-api/internal/domain/entity"
	"github.com/tu-usuario/stockadmin-api/internal/domain/repository"
	"github.com/tu-usuario/stockadmin-api/pkg/slug"
)

// ProductUseCase CRUD de productos del catálogo. El stock solo se fija aquí
// en la creación; después lo gobierna el motor de movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto con slug único derivado del nombre.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*entity.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	uniqueSlug, err := uc.uniqueSlug(in.Name, "")
	if err != nil {
		return nil, err
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		SKU:         in.SKU,
		Slug:        uniqueSlug,
		Stock:       in.Stock,
		Price:       in.Price,
		Unit:        in.Unit,
		IsActive:    isActive,
		Brand:       in.Brand,
		Description: in.Description,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update actualiza un producto. El slug se regenera desde el nuevo nombre;
// el stock NO se modifica aquí (solo vía movimientos).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*entity.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	uniqueSlug, err := uc.uniqueSlug(in.Name, id)
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.SKU = in.SKU
	product.Slug = uniqueSlug
	product.Price = in.Price
	product.Unit = in.Unit
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.Brand = in.Brand
	product.Description = in.Description
	if in.Image != nil {
		product.Image = in.Image
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete elimina un producto (y en cascada su historial de movimientos).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID devuelve un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// GetBySlug devuelve un producto por slug.
func (uc *ProductUseCase) GetBySlug(ctx context.Context, productSlug string) (*entity.Product, error) {
	product, err := uc.repo.GetBySlug(productSlug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// List pagina productos con búsqueda por name/sku/brand.
func (uc *ProductUseCase) List(ctx context.Context, p repository.Pagination) ([]*entity.Product, int, error) {
	return uc.repo.List(p)
}

// GetAll devuelve los productos activos.
func (uc *ProductUseCase) GetAll(ctx context.Context) ([]*entity.Product, error) {
	return uc.repo.GetAllActive()
}

// uniqueSlug deriva el slug del nombre y le agrega un sufijo numérico
// incremental hasta que no colisione con otro producto.
func (uc *ProductUseCase) uniqueSlug(name, excludeID string) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "producto"
	}
	candidate := base
	for counter := 1; ; counter++ {
		exists, err := uc.repo.SlugExists(candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("verificar slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
