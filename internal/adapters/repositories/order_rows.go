package repositories

import (
	"fmt"
	"fruit-order-service/internal/domain"
)

// orderBuilder groups joined (order, fruit) rows back into aggregates.
// Rows of one order must be contiguous.
type orderBuilder struct {
	orders []*domain.Order
}

// Return the order for id, starting a new one when id differs from the last row's.
func (b *orderBuilder) order(id string) (*domain.Order, error) {
	if n := len(b.orders); n > 0 && b.orders[n-1].ID.String() == id {
		return b.orders[n-1], nil
	}

	orderID, err := domain.ParseOrderID(id)
	if err != nil {
		return nil, fmt.Errorf("scan order: %w", err)
	}

	order := &domain.Order{ID: orderID}
	b.orders = append(b.orders, order)
	return order, nil
}

func appendFruit(order *domain.Order, fruitType string, profile domain.WeightProfile) error {
	t, err := domain.ParseFruitType(fruitType)
	if err != nil {
		return fmt.Errorf("order %s: %w", order.ID, err)
	}
	fruit, err := domain.NewFruit(t, profile)
	if err != nil {
		return fmt.Errorf("order %s: %w", order.ID, err)
	}
	order.AddFruit(fruit)
	return nil
}
