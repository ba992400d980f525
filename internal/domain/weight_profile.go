package domain

import "fmt"

// WeightProfile combines the net and tare weights of an item and the gross
// weight derived from them. It is immutable: a corrected measurement means
// building a new profile.
type WeightProfile struct {
	net     NetWeight
	tare    TareWeight
	hasTare bool
	gross   GrossWeight
}

// Build a profile from net and tare weights expressed in the same unit.
// Units are never converted here; mismatches are returned as ErrInconsistentUnits
// so that a mislabelled scale reading is not silently reinterpreted.
func NewWeightProfile(net NetWeight, tare TareWeight) (WeightProfile, error) {
	if net.weight.IsUnset() || tare.weight.IsUnset() {
		return WeightProfile{}, fmt.Errorf("new weight profile: %w", ErrZeroValue)
	}
	if net.weight.unit != tare.weight.unit {
		return WeightProfile{}, fmt.Errorf(
			"new weight profile: net=%s tare=%s: %w",
			net.weight.unit, tare.weight.unit, ErrInconsistentUnits,
		)
	}

	gross, err := net.weight.Add(tare.weight)
	if err != nil {
		return WeightProfile{}, fmt.Errorf("new weight profile: derive gross: %w", err)
	}

	return WeightProfile{
		net:     net,
		tare:    tare,
		hasTare: true,
		gross:   NewGrossWeight(gross),
	}, nil
}

// Build a profile for an unpackaged item. The tare is absent, not zero,
// and gross equals net. An unset net weight fails with ErrZeroValue.
func NewNetOnlyProfile(net NetWeight) (WeightProfile, error) {
	if net.weight.IsUnset() {
		return WeightProfile{}, fmt.Errorf("new net-only weight profile: %w", ErrZeroValue)
	}
	return WeightProfile{
		net:   net,
		gross: NewGrossWeight(net.weight),
	}, nil
}

func (p WeightProfile) Net() NetWeight     { return p.net }
func (p WeightProfile) Gross() GrossWeight { return p.gross }

// Tare returns the tare weight and whether one is present.
func (p WeightProfile) Tare() (TareWeight, bool) { return p.tare, p.hasTare }

// Unit shared by every member of the profile.
func (p WeightProfile) Unit() Unit { return p.net.weight.unit }

// IsUnset reports whether p is the zero WeightProfile{} rather than one built
// by a constructor.
func (p WeightProfile) IsUnset() bool { return p.net.weight.IsUnset() }

func (p WeightProfile) Equal(other WeightProfile) bool {
	if p.hasTare != other.hasTare {
		return false
	}
	if p.hasTare && !p.tare.Equal(other.tare) {
		return false
	}
	return p.net.Equal(other.net) && p.gross.Equal(other.gross)
}
