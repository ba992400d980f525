package domain

import (
	"fmt"
	"strings"
)

type FruitType string

const (
	Banana FruitType = "Banana"
	Orange FruitType = "Orange"
	Apple  FruitType = "Apple"
)

func ParseFruitType(name string) (FruitType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "banana":
		return Banana, nil
	case "orange":
		return Orange, nil
	case "apple":
		return Apple, nil
	}
	return "", fmt.Errorf("parse fruit type %q: %w", name, ErrUnknownFruitType)
}

func (t FruitType) Valid() bool {
	return t == Banana || t == Orange || t == Apple
}

// A fruit line of an order: what was shipped and how much it weighs.
type Fruit struct {
	Type    FruitType
	Weights WeightProfile
}

func NewFruit(t FruitType, weights WeightProfile) (Fruit, error) {
	if !t.Valid() {
		return Fruit{}, fmt.Errorf("new fruit: %q: %w", t, ErrUnknownFruitType)
	}
	if weights.IsUnset() {
		return Fruit{}, fmt.Errorf("new fruit: missing net weight: %w", ErrZeroValue)
	}
	return Fruit{Type: t, Weights: weights}, nil
}

func (f Fruit) Equal(other Fruit) bool {
	return f.Type == other.Type && f.Weights.Equal(other.Weights)
}

// Packaging of a known empty weight that fruit is shipped in.
type FruitPackaging struct {
	Tare TareWeight
}

// Pack builds the weight profile of net contents shipped in this packaging.
func (p FruitPackaging) Pack(net NetWeight) (WeightProfile, error) {
	profile, err := NewWeightProfile(net, p.Tare)
	if err != nil {
		return WeightProfile{}, fmt.Errorf("pack fruit: %w", err)
	}
	return profile, nil
}
