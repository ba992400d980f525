package domain

import (
	"errors"
	"testing"
)

func TestConvertTo(t *testing.T) {
	cases := []struct {
		value  string
		from   Unit
		to     Unit
		expect string
	}{
		{"1000", Grams, Kilograms, "1"},
		{"1", Kilograms, Grams, "1000"},
		{"1", Pounds, Grams, "453.59"},
		{"454", Grams, Pounds, "1"},
		{"1000", Grams, Pounds, "2.20"},
		{"1", Kilograms, Pounds, "2.20"},
		{"1", Pounds, Kilograms, "0.45"},
		{"0.05", Kilograms, Grams, "50"},
	}

	for _, tc := range cases {
		got, err := ConvertTo(MustWeight(tc.value, tc.from), tc.to)
		if err != nil {
			t.Fatalf("%s %s -> %s: unexpected error: %v", tc.value, tc.from, tc.to, err)
		}
		if got.Unit() != tc.to {
			t.Errorf("%s %s -> %s: unit = %s", tc.value, tc.from, tc.to, got.Unit())
		}
		if !got.Value().Equal(dec(tc.expect)) {
			t.Errorf("%s %s -> %s: value = %s, want %s", tc.value, tc.from, tc.to, got.Value(), tc.expect)
		}
	}
}

func TestConvertToSameUnitIsIdentity(t *testing.T) {
	for _, u := range []Unit{Grams, Kilograms, Pounds} {
		w := MustWeight("10.25", u)
		got, err := ConvertTo(w, u)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(w) {
			t.Fatalf("ConvertTo(%s, %s) = %s", w, u, got)
		}
	}
}

func TestConvertToRoundTrip(t *testing.T) {
	original := MustWeight("100", Grams)

	kg, err := ConvertTo(original, Kilograms)
	if err != nil {
		t.Fatalf("to kilograms: %v", err)
	}
	back, err := ConvertTo(kg, Grams)
	if err != nil {
		t.Fatalf("back to grams: %v", err)
	}

	if !back.Value().Equal(original.Value()) {
		t.Fatalf("round trip = %s, want %s", back.Value(), original.Value())
	}
}

func TestConvertToRoundsHalfAwayFromZero(t *testing.T) {
	// 5 g = 0.005 kg exactly, the midpoint between 0.00 and 0.01.
	got, err := ConvertTo(MustWeight("5", Grams), Kilograms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Value().Equal(dec("0.01")) {
		t.Fatalf("value = %s, want 0.01", got.Value())
	}
}

func TestConvertToNeverProducesInvalidWeight(t *testing.T) {
	_, err := ConvertTo(MustWeight("1", Grams), Pounds)
	if !errors.Is(err, ErrZeroValue) {
		t.Fatalf("err = %v, want %v", err, ErrZeroValue)
	}

	_, err = ConvertTo(MustWeight("1", Grams), Unit("Ounces"))
	if !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("err = %v, want %v", err, ErrUnknownUnit)
	}
}
