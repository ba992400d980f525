package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Unit of mass. The string value is the canonical name used on the wire.
type Unit string

const (
	Grams     Unit = "Grams"
	Kilograms Unit = "Kilograms"
	Pounds    Unit = "Pounds"
)

// Return the unit matching name, ignoring case and surrounding whitespace.
func ParseUnit(name string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "grams":
		return Grams, nil
	case "kilograms":
		return Kilograms, nil
	case "pounds":
		return Pounds, nil
	}
	return "", fmt.Errorf("parse unit %q: %w", name, ErrUnknownUnit)
}

func (u Unit) Valid() bool {
	return u == Grams || u == Kilograms || u == Pounds
}

func (u Unit) String() string { return string(u) }

const (
	// Integer digits allowed in a weight value; matches NUMERIC(12, 2) storage.
	maxIntegerDigits = 10
	// Largest scale accepted before trailing zeros are checked, e.g. 1.500000.
	maxScale = 18
	// Longest decimal string ParseWeight will look at.
	maxValueLen = 32
)

// Immutable mass quantity with at most two fractional digits.
// The zero Weight is not a valid weight; construct one with NewWeight.
type Weight struct {
	value decimal.Decimal
	unit  Unit
}

// Validate value and unit and build a Weight.
// Zero is rejected: an absent measurement is modelled by the caller
// (see NewNetOnlyProfile), not by a zero weight.
func NewWeight(value decimal.Decimal, unit Unit) (Weight, error) {
	if !unit.Valid() {
		return Weight{}, fmt.Errorf("new weight: %q: %w", unit, ErrUnknownUnit)
	}
	// Bound the exponent before any rescaling; both checks only read the
	// coefficient length and exponent.
	if value.Exponent() < -maxScale {
		return Weight{}, fmt.Errorf("new weight: more than %d fractional digits: %w", maxScale, ErrInvalidPrecision)
	}
	if !value.IsZero() && value.NumDigits()+int(value.Exponent()) > maxIntegerDigits {
		return Weight{}, fmt.Errorf("new weight: more than %d integer digits: %w", maxIntegerDigits, ErrValueOutOfRange)
	}
	if !value.Equal(value.Truncate(2)) {
		return Weight{}, fmt.Errorf("new weight: %s: %w", value, ErrInvalidPrecision)
	}
	if value.IsNegative() {
		return Weight{}, fmt.Errorf("new weight: %s: %w", value, ErrNegativeValue)
	}
	if value.IsZero() {
		return Weight{}, fmt.Errorf("new weight: %w", ErrZeroValue)
	}
	return Weight{value: value, unit: unit}, nil
}

// Like NewWeight but panics on invalid input. Intended for literals.
func MustWeight(value string, unit Unit) Weight {
	w, err := ParseWeight(value, string(unit))
	if err != nil {
		panic(fmt.Sprintf("invalid weight: %v", err))
	}
	return w
}

// Parse a decimal string and unit name into a Weight.
func ParseWeight(value, unit string) (Weight, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return Weight{}, err
	}
	value = strings.TrimSpace(value)
	if len(value) > maxValueLen {
		return Weight{}, fmt.Errorf("parse weight: value longer than %d characters: %w", maxValueLen, ErrMalformedRecord)
	}
	if strings.ContainsAny(value, "eE") {
		return Weight{}, fmt.Errorf("parse weight %q: exponent notation not allowed: %w", value, ErrMalformedRecord)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Weight{}, fmt.Errorf("parse weight %q: %w", value, ErrMalformedRecord)
	}
	return NewWeight(d, u)
}

func FromGrams(value decimal.Decimal) (Weight, error)     { return NewWeight(value, Grams) }
func FromKilograms(value decimal.Decimal) (Weight, error) { return NewWeight(value, Kilograms) }
func FromPounds(value decimal.Decimal) (Weight, error)    { return NewWeight(value, Pounds) }

func (w Weight) Value() decimal.Decimal { return w.value }
func (w Weight) Unit() Unit             { return w.unit }

// IsUnset reports whether w is the uninitialised Weight{} rather than one built by NewWeight.
func (w Weight) IsUnset() bool { return w.unit == "" }

// Add other to w. other is converted into w's unit first; the sum is re-validated.
func (w Weight) Add(other Weight) (Weight, error) {
	converted, err := ConvertTo(other, w.unit)
	if err != nil {
		return Weight{}, fmt.Errorf("add weight: %w", err)
	}
	sum, err := NewWeight(w.value.Add(converted.value), w.unit)
	if err != nil {
		return Weight{}, fmt.Errorf("add weight: %w", err)
	}
	return sum, nil
}

// Subtract other from w in w's unit. A difference that is zero or negative is an error.
func (w Weight) Subtract(other Weight) (Weight, error) {
	converted, err := ConvertTo(other, w.unit)
	if err != nil {
		return Weight{}, fmt.Errorf("subtract weight: %w", err)
	}
	diff, err := NewWeight(w.value.Sub(converted.value), w.unit)
	if err != nil {
		return Weight{}, fmt.Errorf("subtract weight: %w", err)
	}
	return diff, nil
}

// Equal compares numeric value and unit. 1.5 and 1.50 of the same unit are equal.
func (w Weight) Equal(other Weight) bool {
	return w.unit == other.unit && w.value.Equal(other.value)
}

// Key returns a canonical representation usable as a map key: equal weights have equal keys.
func (w Weight) Key() string {
	return w.value.StringFixed(2) + " " + string(w.unit)
}

// String renders "<value> <unit>", the form used by the textual codec.
func (w Weight) String() string {
	return w.value.String() + " " + string(w.unit)
}
