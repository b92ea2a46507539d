package quotes

import (
	"context"
	"errors"

	"stonkwatch/internal/model"
)

// Sentinel errors returned by Source implementations. Callers classify with
// errors.Is; anything else counts as the source being unavailable.
var (
	ErrNotFound          = errors.New("symbol not found")
	ErrSourceUnavailable = errors.New("quote source unavailable")
	ErrInsufficientData  = errors.New("insufficient price data")
)

// Source provides recent closes and display names for symbols. Any
// implementation works: HTTP client, cached store, or mock.
type Source interface {
	RecentCloses(ctx context.Context, symbol string, days int) (*model.PriceSeries, error)
	DisplayName(ctx context.Context, symbol string) (string, error)
	Name() string
}
