package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stockadmin-api/internal/domain"
	"github.com/tu-usuario/stockadmin-api/internal/domain/entity"
	"github.com/tu-usuario/stockadmin-api/internal/domain/repository"
)

var (
	_ repository.RoleRepository       = (*RoleRepo)(nil)
	_ repository.PermissionRepository = (*PermissionRepo)(nil)
)

// RoleRepo implementación de RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

func (r *RoleRepo) Create(role *entity.Role) error {
	query := `INSERT INTO roles (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, role.ID, role.Name, role.CreatedAt, role.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

func (r *RoleRepo) Update(role *entity.Role) error {
	query := `UPDATE roles SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, role.ID, role.Name, role.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

func (r *RoleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol con sus permisos cargados.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	return r.getRole(`SELECT id, name, created_at, updated_at FROM roles WHERE id = $1`, id)
}

// GetByName obtiene un rol por nombre con sus permisos cargados.
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	return r.getRole(`SELECT id, name, created_at, updated_at FROM roles WHERE name = $1`, name)
}

func (r *RoleRepo) getRole(query string, arg any) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	perms, err := r.ListPermissions(role.ID)
	if err != nil {
		return nil, err
	}
	role.Permissions = perms
	return &role, nil
}

// List pagina los roles; búsqueda por nombre.
func (r *RoleRepo) List(p repository.Pagination) ([]*entity.Role, int, error) {
	where := ``
	args := []any{}
	if p.Search != "" {
		where = `WHERE name ILIKE $1`
		args = append(args, "%"+p.Search+"%")
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM roles `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count roles: %w", err)
	}

	query := fmt.Sprintf(`SELECT id, name, created_at, updated_at FROM roles %s %s LIMIT $%d OFFSET $%d`,
		where, orderBy("roles", "", p.SortBy, p.SortDirection), len(args)+1, len(args)+2,
	)
	args = append(args, p.PerPage, p.Offset())

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	rows.Close()

	for _, role := range list {
		perms, err := r.ListPermissions(role.ID)
		if err != nil {
			return nil, 0, err
		}
		role.Permissions = perms
	}
	return list, total, nil
}

// GetAll devuelve todos los roles sin paginar ni cargar permisos.
func (r *RoleRepo) GetAll() ([]*entity.Role, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at, updated_at FROM roles ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// SyncPermissions reemplaza el conjunto de permisos del rol por el recibido
// (borrar e insertar, estilo sync).
func (r *RoleRepo) SyncPermissions(roleID string, permissionIDs []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, roleID); err != nil {
		return fmt.Errorf("clear role permissions: %w", err)
	}
	for _, pid := range permissionIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			roleID, pid,
		)
		if err != nil {
			return fmt.Errorf("insert role permission: %w", err)
		}
	}
	return nil
}

// ListPermissions devuelve los permisos asignados a un rol.
func (r *RoleRepo) ListPermissions(roleID string) ([]entity.Permission, error) {
	query := `
		SELECT p.id, p.name, p.created_at, p.updated_at
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		WHERE rp.role_id = $1
		ORDER BY p.name ASC`
	rows, err := r.q.Query(context.Background(), query, roleID)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	defer rows.Close()

	var list []entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// PermissionRepo implementación de PermissionRepository sobre PostgreSQL.
type PermissionRepo struct {
	q Querier
}

func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

func (r *PermissionRepo) Create(p *entity.Permission) error {
	query := `INSERT INTO permissions (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Name, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert permission: %w", err)
	}
	return nil
}

func (r *PermissionRepo) Update(p *entity.Permission) error {
	query := `UPDATE permissions SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Name, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update permission: %w", err)
	}
	return nil
}

func (r *PermissionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM permissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete permission: %w", err)
	}
	return nil
}

func (r *PermissionRepo) GetByID(id string) (*entity.Permission, error) {
	var p entity.Permission
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at, updated_at FROM permissions WHERE id = $1`, id).Scan(
		&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permission: %w", err)
	}
	return &p, nil
}

func (r *PermissionRepo) GetAll() ([]entity.Permission, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at, updated_at FROM permissions ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()

	var list []entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
