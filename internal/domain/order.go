package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type OrderID uuid.UUID

func NewOrderID() OrderID { return OrderID(uuid.New()) }

func ParseOrderID(s string) (OrderID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return OrderID{}, fmt.Errorf("parse order id %q: %w", s, err)
	}
	return OrderID(id), nil
}

func (id OrderID) String() string { return uuid.UUID(id).String() }

// Order aggregate: a customer order made of fruit lines.
// Fruit weights are replaced, never edited in place.
type Order struct {
	ID     OrderID
	Fruits []Fruit
}

func NewOrder(fruits ...Fruit) *Order {
	return &Order{
		ID:     NewOrderID(),
		Fruits: append([]Fruit(nil), fruits...),
	}
}

// Add a fruit line to the order.
func (o *Order) AddFruit(f Fruit) {
	o.Fruits = append(o.Fruits, f)
}

// Replace the fruit at index i, e.g. after a corrected scale reading.
func (o *Order) ReplaceFruit(i int, f Fruit) error {
	if i < 0 || i >= len(o.Fruits) {
		return fmt.Errorf("replace fruit: order %s index %d (len=%d): %w", o.ID, i, len(o.Fruits), ErrFruitIndex)
	}
	o.Fruits[i] = f
	return nil
}
