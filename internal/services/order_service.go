package services

import (
	"context"
	"fmt"
	"fruit-order-service/internal/domain"
	"fruit-order-service/internal/ports"
	"strings"
)

// Raw measurement as entered by a caller (HTTP body, seed file, CLI args).
type MeasureInput struct {
	Value string `json:"value" yaml:"value"`
	Unit  string `json:"unit" yaml:"unit"`
}

// Raw fruit line. Tare is optional; omitting it yields a net-only profile.
type FruitInput struct {
	FruitType string        `json:"fruit_type" yaml:"fruit_type"`
	Net       MeasureInput  `json:"net" yaml:"net"`
	Tare      *MeasureInput `json:"tare,omitempty" yaml:"tare,omitempty"`
}

// OrderService coordinates order use cases on top of an OrderRepository.
type OrderService struct {
	Repo ports.OrderRepository
}

func NewOrderService(repo ports.OrderRepository) *OrderService {
	return &OrderService{Repo: repo}
}

// Validate the fruit lines, then persist them as a new order.
func (s *OrderService) PlaceOrder(ctx context.Context, fruits []FruitInput) (*domain.Order, error) {
	order := domain.NewOrder()
	for i, in := range fruits {
		f, err := BuildFruit(in)
		if err != nil {
			return nil, fmt.Errorf("place order: fruit #%d: %w", i, err)
		}
		order.AddFruit(f)
	}

	if err := s.Repo.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id domain.OrderID) (*domain.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.Repo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Replace the fruit at index with a re-measured one and store the order.
func (s *OrderService) CorrectFruit(ctx context.Context, id domain.OrderID, index int, in FruitInput) (*domain.Order, error) {
	f, err := BuildFruit(in)
	if err != nil {
		return nil, fmt.Errorf("correct fruit: %w", err)
	}

	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("correct fruit: %w", err)
	}
	if err := order.ReplaceFruit(index, f); err != nil {
		return nil, fmt.Errorf("correct fruit: %w", err)
	}

	if err := s.Repo.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("correct fruit: %w", err)
	}
	return order, nil
}

// Build a validated Fruit from raw input. Net and tare must already share a unit.
func BuildFruit(in FruitInput) (domain.Fruit, error) {
	t, err := domain.ParseFruitType(in.FruitType)
	if err != nil {
		return domain.Fruit{}, err
	}

	net, err := domain.ParseWeight(in.Net.Value, in.Net.Unit)
	if err != nil {
		return domain.Fruit{}, fmt.Errorf("net: %w", err)
	}

	profile, err := domain.NewNetOnlyProfile(domain.NewNetWeight(net))
	if err != nil {
		return domain.Fruit{}, err
	}
	if in.Tare != nil {
		tare, err := domain.ParseWeight(in.Tare.Value, in.Tare.Unit)
		if err != nil {
			return domain.Fruit{}, fmt.Errorf("tare: %w", err)
		}
		profile, err = domain.NewWeightProfile(domain.NewNetWeight(net), domain.NewTareWeight(tare))
		if err != nil {
			return domain.Fruit{}, err
		}
	}

	return domain.NewFruit(t, profile)
}

// Convert a raw value between units, e.g. Convert("1", "Pounds", "Grams") = 453.59 Grams.
func Convert(value, from, to string) (domain.Weight, error) {
	w, err := domain.ParseWeight(value, from)
	if err != nil {
		return domain.Weight{}, fmt.Errorf("convert: %w", err)
	}
	target, err := domain.ParseUnit(strings.TrimSpace(to))
	if err != nil {
		return domain.Weight{}, fmt.Errorf("convert: %w", err)
	}
	out, err := domain.ConvertTo(w, target)
	if err != nil {
		return domain.Weight{}, fmt.Errorf("convert: %w", err)
	}
	return out, nil
}
