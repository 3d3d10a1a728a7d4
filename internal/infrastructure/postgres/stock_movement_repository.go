package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stockadmin-api/internal/domain/entity"
	"github.com/tu-usuario/stockadmin-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación de StockMovementRepository sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un nuevo movimiento.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, source, reference, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.Type, m.Quantity, m.Source, m.Reference, m.UserID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// Update persiste type/quantity/source/reference/user_id. created_at no cambia:
// el movimiento conserva su posición en el ledger.
func (r *StockMovementRepo) Update(m *entity.StockMovement) error {
	query := `
		UPDATE stock_movements SET type = $2, quantity = $3, source = $4, reference = $5, user_id = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Type, m.Quantity, m.Source, m.Reference, m.UserID,
	)
	if err != nil {
		return fmt.Errorf("update stock movement: %w", err)
	}
	return nil
}

// Delete elimina un movimiento por ID.
func (r *StockMovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento sin relaciones.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, source, reference, user_id, created_at
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Source, &m.Reference, &m.UserID, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return &m, nil
}

const movementExpandedColumns = `
	m.id, m.product_id, m.type, m.quantity, m.source, m.reference, m.user_id, m.created_at,
	p.id, p.name, p.sku, p.slug, p.stock, p.price, p.unit, p.is_active, p.brand, p.description, p.image, p.created_at, p.updated_at,
	u.id, u.name, u.email, u.created_at, u.updated_at`

const movementExpandedFrom = `
	FROM stock_movements m
	JOIN products p ON p.id = m.product_id
	LEFT JOIN users u ON u.id = m.user_id`

func scanMovementExpanded(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var p entity.Product
	var uid, uname, uemail *string
	var ucreated, uupdated *time.Time
	err := row.Scan(
		&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Source, &m.Reference, &m.UserID, &m.CreatedAt,
		&p.ID, &p.Name, &p.SKU, &p.Slug, &p.Stock, &p.Price, &p.Unit, &p.IsActive,
		&p.Brand, &p.Description, &p.Image, &p.CreatedAt, &p.UpdatedAt,
		&uid, &uname, &uemail, &ucreated, &uupdated,
	)
	if err != nil {
		return nil, err
	}
	m.Product = &p
	if uid != nil {
		m.User = &entity.User{ID: *uid, Name: *uname, Email: *uemail, CreatedAt: *ucreated, UpdatedAt: *uupdated}
	}
	return &m, nil
}

// GetByIDExpanded obtiene un movimiento con producto y usuario cargados.
func (r *StockMovementRepo) GetByIDExpanded(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementExpandedColumns + movementExpandedFrom + ` WHERE m.id = $1`
	m, err := scanMovementExpanded(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return m, nil
}

// ListByProduct devuelve el ledger completo del producto en orden (created_at, id)
// ascendente. El ID desempata timestamps iguales: el orden estable es
// determinante para que el replay sea correcto.
func (r *StockMovementRepo) ListByProduct(productID string) ([]entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, source, reference, user_id, created_at
		FROM stock_movements WHERE product_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()

	var list []entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Source, &m.Reference, &m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// List pagina todos los movimientos con producto y usuario expandidos.
// La búsqueda cubre type/source/reference y nombre/sku del producto.
func (r *StockMovementRepo) List(p repository.Pagination) ([]*entity.StockMovement, int, error) {
	where := ``
	args := []any{}
	if p.Search != "" {
		where = `WHERE m.type ILIKE $1 OR m.source ILIKE $1 OR m.reference ILIKE $1 OR p.name ILIKE $1 OR p.sku ILIKE $1`
		args = append(args, "%"+p.Search+"%")
	}
	return r.listExpanded(where, args, p)
}

// ListByProductPaginated pagina los movimientos de un producto; búsqueda por type/source/reference.
func (r *StockMovementRepo) ListByProductPaginated(productID string, p repository.Pagination) ([]*entity.StockMovement, int, error) {
	where := `WHERE m.product_id = $1`
	args := []any{productID}
	if p.Search != "" {
		where += ` AND (m.type ILIKE $2 OR m.source ILIKE $2 OR m.reference ILIKE $2)`
		args = append(args, "%"+p.Search+"%")
	}
	return r.listExpanded(where, args, p)
}

// GetAllExpanded devuelve todos los movimientos sin paginar, más recientes primero.
func (r *StockMovementRepo) GetAllExpanded() ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementExpandedColumns + movementExpandedFrom + ` ORDER BY m.created_at DESC, m.id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovementExpanded(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *StockMovementRepo) listExpanded(where string, args []any, p repository.Pagination) ([]*entity.StockMovement, int, error) {
	var total int
	countQuery := `SELECT count(*)` + movementExpandedFrom + ` ` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock movements: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s %s %s %s LIMIT $%d OFFSET $%d`,
		movementExpandedColumns, movementExpandedFrom, where,
		orderBy("stock_movements", "m", p.SortBy, p.SortDirection),
		len(args)+1, len(args)+2,
	)
	args = append(args, p.PerPage, p.Offset())

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovementExpanded(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}
