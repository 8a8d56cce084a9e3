// Package postgres implements the repository interfaces with database/sql
// and parameterized queries.
package postgres

import (
	"context"
	"database/sql"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// execDelete runs a DELETE by id and reports sql.ErrNoRows when nothing matched.
func execDelete(ctx context.Context, db *sql.DB, q string, id int64) error {
	res, err := db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
