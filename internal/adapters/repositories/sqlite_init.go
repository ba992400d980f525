package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
// Weight profiles are stored as the domain's textual encoding in weight_data.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`

	createOrderFruitsQuery := `
	CREATE TABLE IF NOT EXISTS order_fruits (
		order_id TEXT NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		fruit_type VARCHAR(50) NOT NULL,
		weight_data VARCHAR(100) NOT NULL,
		PRIMARY KEY (order_id, position)
	);
	`

	return execSchema(db, "init schema", []string{
		createOrdersQuery,
		createOrderFruitsQuery,
	})
}

func execSchema(db *sql.DB, op string, statements []string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("%s: exec statement #%d: %w", op, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit tx: %w", op, err)
	}

	return nil
}
