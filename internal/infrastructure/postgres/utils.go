package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// columnas permitidas para ORDER BY por tabla; evita inyección vía sort_by.
var sortable = map[string]map[string]bool{
	"products":        {"name": true, "sku": true, "price": true, "stock": true, "created_at": true, "updated_at": true},
	"stock_movements": {"type": true, "quantity": true, "source": true, "reference": true, "created_at": true},
	"users":           {"name": true, "email": true, "created_at": true, "updated_at": true},
	"stores":          {"name": true, "owner_name": true, "address": true, "created_at": true, "updated_at": true},
	"roles":           {"name": true, "created_at": true, "updated_at": true},
}

// orderBy arma la cláusula ORDER BY validando columna y dirección contra la
// lista blanca; sin sort_by válido cae al default (created_at DESC).
func orderBy(table, alias, sortBy, direction string) string {
	col := "created_at"
	dir := "DESC"
	if cols, ok := sortable[table]; ok && cols[sortBy] {
		col = sortBy
		if strings.EqualFold(direction, "asc") {
			dir = "ASC"
		}
	}
	if alias != "" {
		return fmt.Sprintf("ORDER BY %s.%s %s", alias, col, dir)
	}
	return fmt.Sprintf("ORDER BY %s %s", col, dir)
}
