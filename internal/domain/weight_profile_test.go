package domain

import (
	"errors"
	"testing"
)

func TestNewWeightProfile(t *testing.T) {
	p, err := NewWeightProfile(
		NewNetWeight(MustWeight("1", Kilograms)),
		NewTareWeight(MustWeight("0.2", Kilograms)),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gross := p.Gross().Weight()
	if !gross.Value().Equal(dec("1.2")) {
		t.Errorf("gross value = %s, want 1.2", gross.Value())
	}
	if gross.Unit() != Kilograms {
		t.Errorf("gross unit = %s, want %s", gross.Unit(), Kilograms)
	}
	if p.Unit() != Kilograms {
		t.Errorf("profile unit = %s, want %s", p.Unit(), Kilograms)
	}

	tare, ok := p.Tare()
	if !ok || !tare.Weight().Equal(MustWeight("0.2", Kilograms)) {
		t.Errorf("tare = %s (present=%v), want 0.2 Kilograms", tare, ok)
	}
}

func TestNewWeightProfileRejectsMixedUnits(t *testing.T) {
	_, err := NewWeightProfile(
		NewNetWeight(MustWeight("1", Kilograms)),
		NewTareWeight(MustWeight("200", Grams)),
	)
	if !errors.Is(err, ErrInconsistentUnits) {
		t.Fatalf("err = %v, want %v", err, ErrInconsistentUnits)
	}
}

func TestNewWeightProfileRejectsUnsetWeights(t *testing.T) {
	_, err := NewWeightProfile(NetWeight{}, NewTareWeight(MustWeight("1", Grams)))
	if !errors.Is(err, ErrZeroValue) {
		t.Fatalf("err = %v, want %v", err, ErrZeroValue)
	}
}

func TestNewNetOnlyProfile(t *testing.T) {
	net := NewNetWeight(MustWeight("3.25", Pounds))
	p, err := NewNetOnlyProfile(net)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := p.Tare(); ok {
		t.Fatalf("net-only profile should have no tare")
	}
	if !p.Gross().Weight().Equal(net.Weight()) {
		t.Fatalf("gross = %s, want %s", p.Gross(), net)
	}
}

func TestWeightProfileEqual(t *testing.T) {
	build := func(net, tare string) WeightProfile {
		p, err := NewWeightProfile(
			NewNetWeight(MustWeight(net, Grams)),
			NewTareWeight(MustWeight(tare, Grams)),
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return p
	}

	a := build("500", "20")
	if !a.Equal(build("500.00", "20")) {
		t.Errorf("profiles with equal weights should be equal")
	}
	if a.Equal(build("500", "21")) {
		t.Errorf("profiles with different tare should differ")
	}

	// Same gross, but one has an explicit tare and the other does not.
	netOnly := netOnlyProfile(t, "520", Grams)
	if netOnly.Equal(build("500", "20")) {
		t.Errorf("absent tare must not equal a present tare")
	}
}

func TestNewNetOnlyProfileRejectsUnsetNet(t *testing.T) {
	p, err := NewNetOnlyProfile(NetWeight{})
	if !errors.Is(err, ErrZeroValue) {
		t.Fatalf("err = %v, want %v", err, ErrZeroValue)
	}
	if !p.IsUnset() {
		t.Fatalf("profile = %q, want unset", EncodeProfile(p))
	}
}

func TestWeightProfileIsUnset(t *testing.T) {
	if !(WeightProfile{}).IsUnset() {
		t.Errorf("WeightProfile{}.IsUnset() = false, want true")
	}
	if netOnlyProfile(t, "1", Grams).IsUnset() {
		t.Errorf("constructed profile reports unset")
	}
}

func netOnlyProfile(t *testing.T, value string, unit Unit) WeightProfile {
	t.Helper()
	p, err := NewNetOnlyProfile(NewNetWeight(MustWeight(value, unit)))
	if err != nil {
		t.Fatalf("net-only profile: %v", err)
	}
	return p
}
