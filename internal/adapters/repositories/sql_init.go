package repositories

import (
	"database/sql"
	"errors"
)

// Initialize the Postgres database schema.
// Weight profiles are mapped onto columns; every fruit line shares one unit.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id UUID PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createOrderFruitsQuery := `
	CREATE TABLE IF NOT EXISTS order_fruits (
		order_id UUID NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		fruit_type VARCHAR(50) NOT NULL,
		unit VARCHAR(20) NOT NULL,
		net_value NUMERIC(12, 2) NOT NULL CHECK (net_value > 0),
		tare_value NUMERIC(12, 2) CHECK (tare_value > 0),
		gross_value NUMERIC(12, 2) NOT NULL,
		PRIMARY KEY (order_id, position)
	);
	`

	return execSchema(db, "init postgres schema", []string{
		createOrdersQuery,
		createOrderFruitsQuery,
	})
}
