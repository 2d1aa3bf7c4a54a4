package normalize

import (
	"math"
	"testing"
)

func TestScaleTo24h_IdentityAt24(t *testing.T) {
	for _, v := range []float64{0, 1, 599, 1234, 50000} {
		if got := ScaleTo24h(v, 24); got != int64(v) {
			t.Errorf("ScaleTo24h(%v, 24): got %d", v, got)
		}
	}
}

func TestScaleTo24h_ShorterPeriods(t *testing.T) {
	for _, p := range []int{6, 12} {
		for _, v := range []float64{0, 1, 333, 600, 1001, 49999} {
			want := int64(math.Round(v * 24 / float64(p)))
			if got := ScaleTo24h(v, p); got != want {
				t.Errorf("ScaleTo24h(%v, %d): got %d, want %d", v, p, got, want)
			}
		}
	}
	if got := ScaleTo24h(600, 12); got != 1200 {
		t.Errorf("ScaleTo24h(600, 12): got %d, want 1200", got)
	}
	if got := ScaleTo24h(150, 6); got != 600 {
		t.Errorf("ScaleTo24h(150, 6): got %d, want 600", got)
	}
}

func TestScaleTo24h_InvalidPeriod(t *testing.T) {
	if got := ScaleTo24h(500, 0); got != 500 {
		t.Errorf("got %d, want 500", got)
	}
}
