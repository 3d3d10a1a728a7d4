// Package stockmovement implementa el motor de movimientos de stock: registrar,
// revisar y eliminar movimientos manteniendo products.stock consistente con el
// replay del historial (ver internal/domain/ledger).
package stockmovement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockadmin-api/internal/application/dto"
	"github.com/tu-usuario/stockadmin-api/internal/domain"
	"github.com/tu-usuario/stockadmin-api/internal/domain/entity"
	"github.com/tu-usuario/stockadmin-api/internal/domain/ledger"
	"github.com/tu-usuario/stockadmin-api/internal/domain/repository"
)

// UseCase casos de uso de movimientos de stock. Cada operación de escritura
// corre en una transacción con la fila del producto bloqueada (FOR UPDATE),
// de modo que dos movimientos concurrentes sobre el mismo producto se
// serializan y no hay lost updates sobre el contador de stock.
type UseCase struct {
	txRunner    TxRunner
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, movRepo repository.StockMovementRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movRepo: movRepo, productRepo: productRepo}
}

// Record crea un movimiento y aplica su efecto al stock del producto en la
// misma transacción. OUT se pre-chequea contra el stock leído bajo lock y se
// rechaza con ErrInsufficientStock si dejaría el stock negativo; ADJUST fija
// el stock en la cantidad. Devuelve el movimiento con producto y usuario
// expandidos.
func (uc *UseCase) Record(ctx context.Context, in dto.StockMovementRequest) (*entity.StockMovement, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	m := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Source:    in.Source,
		Reference: in.Reference,
		UserID:    in.UserID,
		CreatedAt: time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, productRepo repository.ProductRepository) error {
		product, err := productRepo.GetByIDForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		newStock, err := ledger.Apply(product.Stock, in.Type, in.Quantity)
		if err != nil {
			return err
		}

		if err := movRepo.Create(m); err != nil {
			return fmt.Errorf("crear movimiento: %w", err)
		}
		return uc.persistStock(productRepo, product, in.Type, newStock)
	})
	if err != nil {
		return nil, err
	}

	return uc.movRepo.GetByIDExpanded(m.ID)
}

// Revise edita un movimiento existente de forma atómica: revierte el efecto
// anterior, persiste los nuevos valores (CreatedAt se conserva, el movimiento
// mantiene su posición en el ledger) y aplica el efecto nuevo.
//
// Revertir IN/OUT es aritmética simple; revertir un ADJUST exige recomputar
// por replay porque el set absoluto destruyó el valor previo. Además, si el
// movimiento editado no es el último del ledger, el stock final se recomputa
// replay-eando el historial completo actualizado: un ADJUST posterior absorbe
// el cambio y la inversa aritmética dejaría el contador inconsistente con el
// historial.
func (uc *UseCase) Revise(ctx context.Context, id string, in dto.StockMovementRequest) (*entity.StockMovement, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	err := uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, productRepo repository.ProductRepository) error {
		m, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrMovementNotFound
		}
		if in.ProductID != m.ProductID {
			return fmt.Errorf("%w: un movimiento no puede cambiar de producto", domain.ErrInvalidInput)
		}

		product, err := productRepo.GetByIDForUpdate(m.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		// Releer el movimiento ya con el producto bloqueado: toda escritura de
		// movimientos corre bajo ese lock, así que la lectura previa puede ser
		// obsoleta frente a una revisión o eliminación concurrente confirmada.
		m, err = movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrMovementNotFound
		}

		history, err := movRepo.ListByProduct(m.ProductID)
		if err != nil {
			return fmt.Errorf("listar movimientos: %w", err)
		}

		// (a) revertir el efecto anterior
		base, ok := ledger.Reverse(product.Stock, m.Type, m.Quantity)
		if !ok {
			base = ledger.Replay(ledger.Excluding(history, m.ID))
		}

		// (b) aplicar el efecto nuevo sobre la base revertida
		newStock, err := ledger.Apply(base, in.Type, in.Quantity)
		if err != nil {
			return err
		}

		wasLast := ledger.IsLast(history, m.ID)

		m.Type = in.Type
		m.Quantity = in.Quantity
		m.Source = in.Source
		m.Reference = in.Reference
		if in.UserID != nil {
			m.UserID = in.UserID
		}
		if err := movRepo.Update(m); err != nil {
			return fmt.Errorf("actualizar movimiento: %w", err)
		}

		if !wasLast {
			// Movimientos posteriores (posiblemente un ADJUST) definen el valor
			// final: recomputar sobre el historial ya actualizado.
			updated := append(ledger.Excluding(history, m.ID), *m)
			newStock = ledger.Replay(updated)
		}
		return productRepo.SetStock(product.ID, newStock)
	})
	if err != nil {
		return nil, err
	}

	return uc.movRepo.GetByIDExpanded(id)
}

// Delete revierte el efecto del movimiento sobre el producto y elimina la
// fila, todo en la misma transacción. Un ADJUST (o un movimiento con historia
// posterior) se revierte recomputando por replay el ledger restante.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, productRepo repository.ProductRepository) error {
		m, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrMovementNotFound
		}

		product, err := productRepo.GetByIDForUpdate(m.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		// Misma relectura bajo lock que en Revise: el tipo y la cantidad a
		// revertir deben ser los vigentes, no los leídos antes del lock.
		m, err = movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrMovementNotFound
		}

		history, err := movRepo.ListByProduct(m.ProductID)
		if err != nil {
			return fmt.Errorf("listar movimientos: %w", err)
		}

		var newStock int
		if reversed, ok := ledger.Reverse(product.Stock, m.Type, m.Quantity); ok && ledger.IsLast(history, m.ID) {
			newStock = reversed
		} else {
			newStock = ledger.Replay(ledger.Excluding(history, m.ID))
		}

		if err := movRepo.Delete(m.ID); err != nil {
			return fmt.Errorf("eliminar movimiento: %w", err)
		}
		return productRepo.SetStock(product.ID, newStock)
	})
}

// GetByID devuelve un movimiento con producto y usuario expandidos.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	m, err := uc.movRepo.GetByIDExpanded(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrMovementNotFound
	}
	return m, nil
}

// List pagina todos los movimientos con producto y usuario expandidos.
func (uc *UseCase) List(ctx context.Context, p repository.Pagination) ([]*entity.StockMovement, int, error) {
	return uc.movRepo.List(p)
}

// GetAll devuelve todos los movimientos sin paginar, más recientes primero.
func (uc *UseCase) GetAll(ctx context.Context) ([]*entity.StockMovement, error) {
	return uc.movRepo.GetAllExpanded()
}

// ListByProductSlug devuelve el producto y sus movimientos paginados.
func (uc *UseCase) ListByProductSlug(ctx context.Context, productSlug string, p repository.Pagination) (*entity.Product, []*entity.StockMovement, int, error) {
	product, err := uc.productRepo.GetBySlug(productSlug)
	if err != nil {
		return nil, nil, 0, err
	}
	if product == nil {
		return nil, nil, 0, domain.ErrProductNotFound
	}
	list, total, err := uc.movRepo.ListByProductPaginated(product.ID, p)
	if err != nil {
		return nil, nil, 0, err
	}
	return product, list, total, nil
}

// persistStock escribe el stock igual que el tipo de movimiento lo define:
// IN/OUT como delta incremental, ADJUST como set absoluto.
func (uc *UseCase) persistStock(productRepo repository.ProductRepository, product *entity.Product, movementType string, newStock int) error {
	var err error
	switch movementType {
	case entity.MovementTypeIN, entity.MovementTypeOUT:
		err = productRepo.IncrementStock(product.ID, newStock-product.Stock)
	default:
		err = productRepo.SetStock(product.ID, newStock)
	}
	if err != nil {
		return fmt.Errorf("actualizar stock: %w", err)
	}
	return nil
}
