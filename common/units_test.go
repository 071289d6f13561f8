package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestUnitsRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		scale float64
		value float64
	}{
		{"default_zero", 0, 0},
		{"default_positive", 0, 100},
		{"default_negative", 0, -37.5},
		{"custom_scale", 10, 123.456},
		{"fractional_scale", 0.5, 3},
		{"large", 64, 1e9},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			u := Units{Scale: c.scale}
			got := u.ToScreen(u.ToWorld(c.value))
			if math.Abs(got-c.value) > 1e-9*math.Max(1, math.Abs(c.value)) {
				t.Fatalf("round trip of %v gave %v", c.value, got)
			}
		})
	}
}

func TestUnitsDefaultScale(t *testing.T) {
	if got := ToWorld(64); got != 2 {
		t.Fatalf("ToWorld(64) = %v, want 2", got)
	}
	if got := ToScreen(1.5); got != 48 {
		t.Fatalf("ToScreen(1.5) = %v, want 48", got)
	}

	u := Units{}
	p := u.ToWorldVec(cp.Vector{X: 100, Y: 100})
	if p.X != 100.0/32 || p.Y != 100.0/32 {
		t.Fatalf("ToWorldVec = %v", p)
	}
	back := u.ToScreenVec(p)
	if math.Abs(back.X-100) > 1e-9 || math.Abs(back.Y-100) > 1e-9 {
		t.Fatalf("ToScreenVec = %v", back)
	}
}

func TestDistanceAndMidpoint(t *testing.T) {
	a := cp.Vector{X: 0, Y: 0}
	b := cp.Vector{X: 3, Y: 4}
	if d := Distance(a, b); d != 5 {
		t.Fatalf("Distance = %v, want 5", d)
	}
	if m := Midpoint(a, b); m.X != 1.5 || m.Y != 2 {
		t.Fatalf("Midpoint = %v", m)
	}
}
