package ports

import (
	"context"
	"fruit-order-service/internal/domain"
)

// Port: a boundary for storing and retrieving Order aggregates.
// Implementations must rebuild weight profiles through the domain's validating
// constructors on read and return domain.ErrOrderNotFound for unknown ids.
type OrderRepository interface {
	// Insert or replace the order and all of its fruit lines.
	SaveOrder(ctx context.Context, order *domain.Order) error
	// Retrieve a single order by id.
	GetOrder(ctx context.Context, id domain.OrderID) (*domain.Order, error)
	// Retrieve all stored orders.
	ListOrders(ctx context.Context) ([]*domain.Order, error)
}
