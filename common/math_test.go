package common

import "testing"

func TestSmoothFactor(t *testing.T) {
	cases := []struct {
		name     string
		rate, dt float64
		want     float64
	}{
		{"partial", 10, 0.05, 0.5},
		{"clamped", 10, 0.5, 1},
		{"snap", 0, 0.01, 1},
		{"negative_dt", 10, -1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := SmoothFactor(c.rate, c.dt); got != c.want {
				t.Fatalf("SmoothFactor(%v, %v) = %v, want %v", c.rate, c.dt, got, c.want)
			}
		})
	}
	if got := Lerp(2, 4, 0.25); got != 2.5 {
		t.Fatalf("Lerp = %v, want 2.5", got)
	}
}
