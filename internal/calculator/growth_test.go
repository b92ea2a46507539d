package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestGrowth_Formula(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		want   float64
	}{
		{"up ten percent", []float64{100, 110}, 0.10},
		{"down ten percent", []float64{50, 45}, -0.10},
		{"flat", []float64{10, 10}, 0},
		{"uses last two of longer series", []float64{1, 2, 3, 100, 125}, 0.25},
		{"fractional", []float64{3, 7}, 4.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Growth(tt.closes)
			if g == nil {
				t.Fatal("expected non-nil growth")
			}
			if math.Abs(*g-tt.want) > 1e-9 {
				t.Errorf("expected %.12f, got %.12f", tt.want, *g)
			}
		})
	}
}

func TestGrowth_NilCases(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
	}{
		{"empty", nil},
		{"single point", []float64{42}},
		{"zero previous close", []float64{0, 10}},
		{"nan last", []float64{100, math.NaN()}},
		{"nan previous", []float64{math.NaN(), 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if g := Growth(tt.closes); g != nil {
				t.Errorf("expected nil growth, got %v", *g)
			}
		})
	}
}

func TestLatestClose(t *testing.T) {
	p, err := LatestClose([]float64{1, 2, 3.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != 3.5 {
		t.Errorf("expected 3.5, got %v", p)
	}

	// A single point still prices, even though growth would be nil.
	p, err = LatestClose([]float64{7})
	if err != nil || p != 7 {
		t.Errorf("expected 7 with no error, got %v, %v", p, err)
	}

	if _, err := LatestClose(nil); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}
