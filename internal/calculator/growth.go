package calculator

import (
	"errors"
	"math"
)

// ErrInsufficientData indicates the series has no points to price from.
var ErrInsufficientData = errors.New("not enough data points")

// LatestClose returns the most recent closing price from the series.
func LatestClose(closes []float64) (float64, error) {
	if len(closes) == 0 {
		return 0, ErrInsufficientData
	}
	return closes[len(closes)-1], nil
}

// Growth computes the day-over-day growth rate (last-prev)/prev as a signed
// fraction. It returns nil when fewer than 2 points exist, the previous close
// is zero, or either value is NaN. A nil growth is a valid degraded result,
// not an error.
func Growth(closes []float64) *float64 {
	if len(closes) < 2 {
		return nil
	}
	last := closes[len(closes)-1]
	prev := closes[len(closes)-2]
	if prev == 0 || math.IsNaN(last) || math.IsNaN(prev) {
		return nil
	}
	g := (last - prev) / prev
	return &g
}
