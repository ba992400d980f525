package services

import (
	"context"
	"encoding/json"
	"fmt"
	"fruit-order-service/internal/domain"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// One order in a seed file. OrderID is optional; a fixed id makes reseeding idempotent.
type OrderSeed struct {
	OrderID string       `json:"order_id" yaml:"order_id"`
	Fruits  []FruitInput `json:"fruits" yaml:"fruits"`
}

// Read order seeds from a .json, .yaml or .yml file.
func LoadSeedFile(path string) ([]OrderSeed, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seeds: read %q: %w", path, err)
	}

	var data []OrderSeed
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(bytes, &data); err != nil {
			return nil, fmt.Errorf("load seeds: parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(bytes, &data); err != nil {
			return nil, fmt.Errorf("load seeds: parse json: %w", err)
		}
	}

	return data, nil
}

// Populate the repository with orders from a seed file. Every fruit goes
// through the same validation as PlaceOrder; the first invalid entry aborts.
func (s *OrderService) Seed(ctx context.Context, path string) (int, error) {
	seeds, err := LoadSeedFile(path)
	if err != nil {
		return 0, err
	}

	orders := make([]*domain.Order, 0, len(seeds))
	for i, item := range seeds {
		order := domain.NewOrder()
		if id := strings.TrimSpace(item.OrderID); id != "" {
			order.ID, err = domain.ParseOrderID(id)
			if err != nil {
				return 0, fmt.Errorf("seed orders: item %d: %w", i+1, err)
			}
		}

		for j, in := range item.Fruits {
			f, err := BuildFruit(in)
			if err != nil {
				return 0, fmt.Errorf("seed orders: item %d fruit %d: %w", i+1, j+1, err)
			}
			order.AddFruit(f)
		}
		orders = append(orders, order)
	}

	for _, o := range orders {
		if err := s.Repo.SaveOrder(ctx, o); err != nil {
			return 0, fmt.Errorf("seed orders: save %s: %w", o.ID, err)
		}
	}

	return len(orders), nil
}
