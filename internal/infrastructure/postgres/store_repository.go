package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stockadmin-api/internal/domain"
	"github.com/tu-usuario/stockadmin-api/internal/domain/entity"
	"github.com/tu-usuario/stockadmin-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación de StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

const storeColumns = `id, name, owner_name, phone, address, latitude, longitude, image, created_by_sales_id, created_at, updated_at`

func scanStore(row pgx.Row) (*entity.Store, error) {
	var s entity.Store
	err := row.Scan(
		&s.ID, &s.Name, &s.OwnerName, &s.Phone, &s.Address,
		&s.Latitude, &s.Longitude, &s.Image, &s.CreatedBySalesID,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *StoreRepo) Create(s *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, owner_name, phone, address, latitude, longitude, image, created_by_sales_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.OwnerName, s.Phone, s.Address,
		s.Latitude, s.Longitude, s.Image, s.CreatedBySalesID,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

func (r *StoreRepo) Update(s *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, owner_name = $3, phone = $4, address = $5,
			latitude = $6, longitude = $7, image = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.OwnerName, s.Phone, s.Address,
		s.Latitude, s.Longitude, s.Image, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

func (r *StoreRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda con el vendedor que la registró expandido.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	query := `
		SELECT s.id, s.name, s.owner_name, s.phone, s.address, s.latitude, s.longitude,
			s.image, s.created_by_sales_id, s.created_at, s.updated_at,
			u.id, u.name, u.email, u.created_at, u.updated_at
		FROM stores s
		LEFT JOIN users u ON u.id = s.created_by_sales_id
		WHERE s.id = $1`
	var s entity.Store
	var uid, uname, uemail *string
	var ucreated, uupdated *time.Time
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.OwnerName, &s.Phone, &s.Address,
		&s.Latitude, &s.Longitude, &s.Image, &s.CreatedBySalesID,
		&s.CreatedAt, &s.UpdatedAt,
		&uid, &uname, &uemail, &ucreated, &uupdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	if uid != nil {
		s.CreatedBySales = &entity.User{ID: *uid, Name: *uname, Email: *uemail, CreatedAt: *ucreated, UpdatedAt: *uupdated}
	}
	return &s, nil
}

// List pagina las tiendas; búsqueda por nombre, dueño y dirección.
func (r *StoreRepo) List(p repository.Pagination) ([]*entity.Store, int, error) {
	where := ``
	args := []any{}
	if p.Search != "" {
		where = `WHERE name ILIKE $1 OR owner_name ILIKE $1 OR address ILIKE $1`
		args = append(args, "%"+p.Search+"%")
	}

	var total int
	countQuery := `SELECT count(*) FROM stores ` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stores: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM stores %s %s LIMIT $%d OFFSET $%d`,
		storeColumns, where, orderBy("stores", "", p.SortBy, p.SortDirection),
		len(args)+1, len(args)+2,
	)
	args = append(args, p.PerPage, p.Offset())

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

// GetAll devuelve todas las tiendas sin paginar.
func (r *StoreRepo) GetAll() ([]*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
