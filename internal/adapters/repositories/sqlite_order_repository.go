package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"fruit-order-service/internal/domain"
	"fruit-order-service/internal/platform/obs"
)

// SQLite-backed implementation of the OrderRepository port.
// Each fruit's weight profile is persisted as an opaque text blob.
type SqliteOrderRepository struct{ DB *sql.DB }

func NewSqliteOrderRepository(db *sql.DB) *SqliteOrderRepository {
	return &SqliteOrderRepository{DB: db}
}

// Insert the order, replacing any fruit lines stored for it before.
func (s *SqliteOrderRepository) SaveOrder(ctx context.Context, order *domain.Order) (err error) {
	defer obs.Time(ctx, "orders.sqlite.SaveOrder")(&err)

	if s.DB == nil {
		return errors.New("sqlite order repository: DB is nil")
	}
	if order == nil {
		return errors.New("save order: order is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save order: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id := order.ID.String()

	if _, err := tx.ExecContext(ctx, `
	INSERT INTO orders (order_id)
	VALUES (?)
	ON CONFLICT (order_id) DO NOTHING;
	`, id); err != nil {
		return fmt.Errorf("save order %s: insert order: %w", id, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_fruits WHERE order_id = ?;`, id); err != nil {
		return fmt.Errorf("save order %s: clear fruits: %w", id, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO order_fruits (
		order_id,
		position,
		fruit_type,
		weight_data
	)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("save order %s: prepare insert: %w", id, err)
	}
	defer stmt.Close()

	for i, f := range order.Fruits {
		if _, err := stmt.ExecContext(ctx, id, i, string(f.Type), domain.EncodeProfile(f.Weights)); err != nil {
			return fmt.Errorf("save order %s: insert fruit #%d: %w", id, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save order %s: commit tx: %w", id, err)
	}

	return nil
}

// Return a single order, decoding and re-validating every stored weight profile.
func (s *SqliteOrderRepository) GetOrder(ctx context.Context, id domain.OrderID) (_ *domain.Order, err error) {
	defer obs.Time(ctx, "orders.sqlite.GetOrder")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite order repository: DB is nil")
	}

	query := `
	SELECT
		o.order_id,
		f.fruit_type,
		f.weight_data
	FROM orders o
	LEFT JOIN order_fruits f ON f.order_id = o.order_id
	WHERE o.order_id = ?
	ORDER BY f.position;
	`
	orders, err := s.queryOrders(ctx, query, id.String())
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("get order %s: %w", id, domain.ErrOrderNotFound)
	}

	return orders[0], nil
}

// Return all orders stored in the database, oldest first.
func (s *SqliteOrderRepository) ListOrders(ctx context.Context) (_ []*domain.Order, err error) {
	defer obs.Time(ctx, "orders.sqlite.ListOrders")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite order repository: DB is nil")
	}

	query := `
	SELECT
		o.order_id,
		f.fruit_type,
		f.weight_data
	FROM orders o
	LEFT JOIN order_fruits f ON f.order_id = o.order_id
	ORDER BY o.created_at, o.rowid, f.position;
	`
	orders, err := s.queryOrders(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func (s *SqliteOrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]*domain.Order, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders table: %w", err)
	}
	defer rows.Close()

	var b orderBuilder
	for rows.Next() {
		var orderID string
		var fruitType, weightData sql.NullString
		if err := rows.Scan(&orderID, &fruitType, &weightData); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		order, err := b.order(orderID)
		if err != nil {
			return nil, err
		}
		if !fruitType.Valid {
			continue
		}

		profile, err := domain.DecodeProfile(weightData.String)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", orderID, err)
		}
		if err := appendFruit(order, fruitType.String, profile); err != nil {
			return nil, err
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}

	return b.orders, nil
}
