package domain

import "testing"

func TestRoleWeightWrapsWeight(t *testing.T) {
	w := MustWeight("10", Kilograms)

	if got := NewNetWeight(w).Weight(); !got.Equal(w) {
		t.Errorf("net weight = %s, want %s", got, w)
	}
	if got := NewTareWeight(MustWeight("5", Pounds)).Weight(); !got.Equal(MustWeight("5", Pounds)) {
		t.Errorf("tare weight = %s, want 5 Pounds", got)
	}
	if got := NewGrossWeight(MustWeight("1000", Grams)).Weight(); !got.Equal(MustWeight("1000", Grams)) {
		t.Errorf("gross weight = %s, want 1000 Grams", got)
	}
}

func TestRoleWeightEqual(t *testing.T) {
	a := NewNetWeight(MustWeight("10", Kilograms))
	b := NewNetWeight(MustWeight("10.00", Kilograms))
	if !a.Equal(b) {
		t.Errorf("%s should equal %s", a, b)
	}

	c := NewTareWeight(MustWeight("5", Pounds))
	d := NewTareWeight(MustWeight("6", Pounds))
	if c.Equal(d) {
		t.Errorf("%s should not equal %s", c, d)
	}
}

func TestRoleWeightLabels(t *testing.T) {
	w := MustWeight("1.5", Kilograms)
	cases := []struct {
		got  string
		want string
	}{
		{NewNetWeight(w).String(), "NetWeight: 1.5 Kilograms"},
		{NewTareWeight(w).String(), "TareWeight: 1.5 Kilograms"},
		{NewGrossWeight(w).String(), "GrossWeight: 1.5 Kilograms"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}
