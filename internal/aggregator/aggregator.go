package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"stonkwatch/internal/calculator"
	"stonkwatch/internal/model"
	"stonkwatch/internal/quotes"
	"stonkwatch/internal/registry"

	"golang.org/x/sync/semaphore"
)

const (
	// DefaultWindowDays is the trading-day window used for growth computation.
	DefaultWindowDays = 5
	// DefaultTimeout bounds each individual symbol fetch.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxConcurrent caps in-flight source calls across all batches.
	DefaultMaxConcurrent = 8
)

// Aggregator queries the quote source for symbols, concurrently for batches,
// and converts every per-symbol error into a Failure outcome. One instance is
// shared process-wide so the concurrency cap holds across simultaneous
// report requests.
type Aggregator struct {
	Source     quotes.Source
	WindowDays int
	Timeout    time.Duration
	sem        *semaphore.Weighted
}

// New creates an Aggregator. maxConcurrent <= 0 selects the default cap.
func New(source quotes.Source, maxConcurrent int64, timeout time.Duration, windowDays int) *Aggregator {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if windowDays < 2 {
		windowDays = DefaultWindowDays
	}
	return &Aggregator{
		Source:     source,
		WindowDays: windowDays,
		Timeout:    timeout,
		sem:        semaphore.NewWeighted(maxConcurrent),
	}
}

// FetchOne fetches a single symbol's quote. name, when non-empty, is used as
// the display name; otherwise the source is asked for one. All errors come
// back as a Failure outcome, never as a raised error.
func (a *Aggregator) FetchOne(ctx context.Context, symbol, name string) model.FetchOutcome {
	if err := a.sem.Acquire(ctx, 1); err != nil {
		return model.Failed(symbol, model.ReasonSourceUnavailable, err)
	}
	defer a.sem.Release(1)

	fctx, cancel := context.WithTimeout(ctx, a.Timeout)
	defer cancel()

	series, err := a.Source.RecentCloses(fctx, symbol, a.WindowDays)
	if err != nil {
		return model.Failed(symbol, classify(err), err)
	}

	closes := series.Closes()
	price, err := calculator.LatestClose(closes)
	if err != nil {
		return model.Failed(symbol, model.ReasonInsufficientData, err)
	}
	growth := calculator.Growth(closes)

	if name == "" {
		// Display name is cosmetic: fall back to the symbol rather than
		// failing a quote we already have.
		resolved, nameErr := a.Source.DisplayName(fctx, symbol)
		if nameErr != nil || resolved == "" {
			name = series.Symbol
		} else {
			name = resolved
		}
	}

	return model.Success(model.QuoteResult{
		Symbol: series.Symbol,
		Name:   name,
		Price:  price,
		Growth: growth,
	})
}

// FetchAll fetches every entry concurrently and returns one outcome per
// entry, in input order regardless of completion order. A failing or slow
// symbol never blocks or aborts the others; cancelling ctx aborts the whole
// batch and reports the still-pending symbols as unavailable.
func (a *Aggregator) FetchAll(ctx context.Context, entries []registry.Entry) []model.FetchOutcome {
	outcomes := make([]model.FetchOutcome, len(entries))

	var wg sync.WaitGroup
	wg.Add(len(entries))
	for i, e := range entries {
		go func(i int, e registry.Entry) {
			defer wg.Done()
			outcomes[i] = a.FetchOne(ctx, e.Symbol, e.Name)
		}(i, e)
	}
	wg.Wait()

	failed := 0
	for _, o := range outcomes {
		if !o.OK() {
			failed++
		}
	}
	if failed > 0 {
		log.Printf("[WARN] batch fetch: %d/%d symbols failed", failed, len(entries))
	}
	return outcomes
}

func classify(err error) model.FailReason {
	switch {
	case errors.Is(err, quotes.ErrNotFound):
		return model.ReasonNotFound
	case errors.Is(err, quotes.ErrInsufficientData):
		return model.ReasonInsufficientData
	default:
		// Timeouts, cancellation and transport errors all land here.
		return model.ReasonSourceUnavailable
	}
}

// Describe renders a failure reason for logs.
func Describe(f *model.FetchFailure) string {
	if f == nil {
		return "ok"
	}
	return fmt.Sprintf("%s: %v", f.Reason, f.Cause)
}
