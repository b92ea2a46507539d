package quotes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stonkwatch/internal/model"
)

// MockSource returns controllable fixed data for development and testing.
// Symbols present in Series (or covered by Price) succeed; symbols listed in
// Errs fail with that error; everything else is not found. Delays simulates
// slow upstreams per symbol and respects context cancellation.
type MockSource struct {
	Price  float64
	Series map[string][]float64
	Names  map[string]string
	Errs   map[string]error
	Delays map[string]time.Duration
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) RecentCloses(ctx context.Context, symbol string, days int) (*model.PriceSeries, error) {
	if err := m.wait(ctx, symbol); err != nil {
		return nil, err
	}
	if err := m.Errs[symbol]; err != nil {
		return nil, err
	}
	closes, ok := m.Series[symbol]
	if !ok {
		if m.Price > 0 {
			return seriesFromCloses(symbol, generateMockCloses(m.Price, days)), nil
		}
		return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}
	return seriesFromCloses(symbol, closes), nil
}

func (m *MockSource) DisplayName(ctx context.Context, symbol string) (string, error) {
	if err := m.wait(ctx, symbol); err != nil {
		return "", err
	}
	if err := m.Errs[symbol]; err != nil {
		return "", err
	}
	if name, ok := m.Names[symbol]; ok {
		return name, nil
	}
	return strings.ToUpper(symbol), nil
}

func (m *MockSource) wait(ctx context.Context, symbol string) error {
	d := m.Delays[symbol]
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, ctx.Err())
	case <-time.After(d):
		return nil
	}
}

func seriesFromCloses(symbol string, closes []float64) *model.PriceSeries {
	points := make([]model.ClosePoint, len(closes))
	for i, c := range closes {
		points[i] = model.ClosePoint{
			Date:  time.Now().AddDate(0, 0, -(len(closes) - i)),
			Close: c,
		}
	}
	return &model.PriceSeries{
		Symbol:    strings.ToUpper(symbol),
		Points:    points,
		FetchedAt: time.Now(),
	}
}

func generateMockCloses(basePrice float64, count int) []float64 {
	closes := make([]float64, count)
	for i := 0; i < count; i++ {
		closes[i] = basePrice * (1 + float64(i-count/2)*0.001)
	}
	return closes
}
