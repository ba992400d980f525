package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"fruit-order-service/internal/domain"
	"fruit-order-service/internal/platform/obs"

	"github.com/shopspring/decimal"
)

// SQLOrderRepository is a Postgres-backed OrderRepository that maps each weight
// profile onto structured columns instead of the textual encoding.
type SQLOrderRepository struct {
	DB *sql.DB
}

func NewSQLOrderRepository(db *sql.DB) *SQLOrderRepository {
	return &SQLOrderRepository{DB: db}
}

// Upsert the order and replace its fruit lines.
func (s *SQLOrderRepository) SaveOrder(ctx context.Context, order *domain.Order) (err error) {
	defer obs.Time(ctx, "orders.sql.SaveOrder")(&err)

	if s.DB == nil {
		return errors.New("sql order repository: db is nil")
	}
	if order == nil {
		return errors.New("save order: order is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save order: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id := order.ID.String()

	if _, err := tx.ExecContext(ctx, `
	INSERT INTO orders (order_id)
	VALUES ($1)
	ON CONFLICT (order_id) DO NOTHING;
	`, id); err != nil {
		return fmt.Errorf("save order %s: insert order: %w", id, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_fruits WHERE order_id = $1;`, id); err != nil {
		return fmt.Errorf("save order %s: clear fruits: %w", id, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO order_fruits (order_id, position, fruit_type, unit, net_value, tare_value, gross_value)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`)
	if err != nil {
		return fmt.Errorf("save order %s: db prepare: %w", id, err)
	}
	defer stmt.Close()

	for i, f := range order.Fruits {
		p := f.Weights
		tare := decimal.NullDecimal{}
		if t, ok := p.Tare(); ok {
			tare = decimal.NewNullDecimal(t.Weight().Value())
		}

		if _, err := stmt.ExecContext(ctx,
			id,
			i,
			string(f.Type),
			string(p.Unit()),
			p.Net().Weight().Value(),
			tare,
			p.Gross().Weight().Value(),
		); err != nil {
			return fmt.Errorf("save order %s: insert fruit #%d: %w", id, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save order %s: commit: %w", id, err)
	}

	return nil
}

func (s *SQLOrderRepository) GetOrder(ctx context.Context, id domain.OrderID) (_ *domain.Order, err error) {
	defer obs.Time(ctx, "orders.sql.GetOrder")(&err)

	if s.DB == nil {
		return nil, errors.New("sql order repository: db is nil")
	}

	q := `
	SELECT o.order_id, f.fruit_type, f.unit, f.net_value, f.tare_value, f.gross_value
	FROM orders o
	LEFT JOIN order_fruits f ON f.order_id = o.order_id
	WHERE o.order_id = $1
	ORDER BY f.position;
	`
	orders, err := s.queryOrders(ctx, q, id.String())
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("get order %s: %w", id, domain.ErrOrderNotFound)
	}

	return orders[0], nil
}

func (s *SQLOrderRepository) ListOrders(ctx context.Context) (_ []*domain.Order, err error) {
	defer obs.Time(ctx, "orders.sql.ListOrders")(&err)

	if s.DB == nil {
		return nil, errors.New("sql order repository: db is nil")
	}

	q := `
	SELECT o.order_id, f.fruit_type, f.unit, f.net_value, f.tare_value, f.gross_value
	FROM orders o
	LEFT JOIN order_fruits f ON f.order_id = o.order_id
	ORDER BY o.created_at, o.order_id, f.position;
	`
	orders, err := s.queryOrders(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func (s *SQLOrderRepository) queryOrders(ctx context.Context, q string, args ...any) ([]*domain.Order, error) {
	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders table: %w", err)
	}
	defer rows.Close()

	var b orderBuilder
	for rows.Next() {
		var orderID string
		var fruitType, unit sql.NullString
		var net, tare, gross decimal.NullDecimal
		if err := rows.Scan(&orderID, &fruitType, &unit, &net, &tare, &gross); err != nil {
			return nil, fmt.Errorf("scan rows: %w", err)
		}

		order, err := b.order(orderID)
		if err != nil {
			return nil, err
		}
		if !fruitType.Valid {
			continue
		}

		profile, err := profileFromColumns(unit.String, net, tare, gross)
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

// Rebuild a weight profile from its columns through the validating constructors.
func profileFromColumns(unitName string, net, tare, gross decimal.NullDecimal) (domain.WeightProfile, error) {
	unit, err := domain.ParseUnit(unitName)
	if err != nil {
		return domain.WeightProfile{}, err
	}

	netWeight, err := domain.NewWeight(net.Decimal, unit)
	if err != nil {
		return domain.WeightProfile{}, fmt.Errorf("net: %w", err)
	}

	var p domain.WeightProfile
	if tare.Valid {
		tareWeight, err := domain.NewWeight(tare.Decimal, unit)
		if err != nil {
			return domain.WeightProfile{}, fmt.Errorf("tare: %w", err)
		}
		p, err = domain.NewWeightProfile(domain.NewNetWeight(netWeight), domain.NewTareWeight(tareWeight))
		if err != nil {
			return domain.WeightProfile{}, err
		}
	} else {
		p, err = domain.NewNetOnlyProfile(domain.NewNetWeight(netWeight))
		if err != nil {
			return domain.WeightProfile{}, err
		}
	}

	if !gross.Valid || !gross.Decimal.Equal(p.Gross().Weight().Value()) {
		return domain.WeightProfile{}, fmt.Errorf(
			"stored gross=%s derived=%s: %w",
			gross.Decimal, p.Gross().Weight(), domain.ErrGrossMismatch,
		)
	}

	return p, nil
}
