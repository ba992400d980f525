package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Grams per unit. Grams is the pivot every conversion passes through.
var gramsPerUnit = map[Unit]decimal.Decimal{
	Grams:     decimal.NewFromInt(1),
	Kilograms: decimal.NewFromInt(1000),
	Pounds:    decimal.RequireFromString("453.592"),
}

// ConvertTo expresses w in target. Same-unit conversion returns w untouched.
// Otherwise the value goes to grams, then to target, and is rounded once to two
// places (half away from zero). The result is rebuilt through NewWeight, so a
// conversion that rounds down to zero fails with ErrZeroValue.
func ConvertTo(w Weight, target Unit) (Weight, error) {
	if !target.Valid() {
		return Weight{}, fmt.Errorf("convert weight: %q: %w", target, ErrUnknownUnit)
	}
	if w.unit == target {
		return w, nil
	}

	from, ok := gramsPerUnit[w.unit]
	if !ok {
		return Weight{}, fmt.Errorf("convert weight: %q: %w", w.unit, ErrUnknownUnit)
	}

	grams := w.value.Mul(from)
	converted := grams.Div(gramsPerUnit[target]).Round(2)

	out, err := NewWeight(converted, target)
	if err != nil {
		return Weight{}, fmt.Errorf("convert weight %s to %s: %w", w, target, err)
	}
	return out, nil
}
