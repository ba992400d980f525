package services

import (
	"fmt"
	"fruit-order-service/internal/domain"
)

// Summed weights of an order, all expressed in one unit.
// Tare is nil when no fruit line carries packaging.
type OrderTotals struct {
	Unit  domain.Unit
	Net   *domain.Weight
	Tare  *domain.Weight
	Gross *domain.Weight
}

// Totals converts every fruit's weights into unit and sums them.
// Each leg is converted separately, so rounding happens once per leg per fruit.
func Totals(order *domain.Order, unit domain.Unit) (OrderTotals, error) {
	if !unit.Valid() {
		return OrderTotals{}, fmt.Errorf("order totals: %q: %w", unit, domain.ErrUnknownUnit)
	}

	totals := OrderTotals{Unit: unit}
	for i, f := range order.Fruits {
		p := f.Weights

		if err := accumulate(&totals.Net, p.Net().Weight(), unit); err != nil {
			return OrderTotals{}, fmt.Errorf("order totals: fruit #%d net: %w", i, err)
		}
		if tare, ok := p.Tare(); ok {
			if err := accumulate(&totals.Tare, tare.Weight(), unit); err != nil {
				return OrderTotals{}, fmt.Errorf("order totals: fruit #%d tare: %w", i, err)
			}
		}
		if err := accumulate(&totals.Gross, p.Gross().Weight(), unit); err != nil {
			return OrderTotals{}, fmt.Errorf("order totals: fruit #%d gross: %w", i, err)
		}
	}

	return totals, nil
}

func accumulate(sum **domain.Weight, w domain.Weight, unit domain.Unit) error {
	if *sum == nil {
		converted, err := domain.ConvertTo(w, unit)
		if err != nil {
			return err
		}
		*sum = &converted
		return nil
	}

	next, err := (*sum).Add(w)
	if err != nil {
		return err
	}
	*sum = &next
	return nil
}
