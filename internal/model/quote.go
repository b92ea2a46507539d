package model

import "time"

// ClosePoint is a single daily closing price.
type ClosePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds recent daily closes for one symbol, most-recent last.
// Points are never mutated after retrieval.
type PriceSeries struct {
	Symbol    string
	Points    []ClosePoint
	FetchedAt time.Time
}

// Closes returns the closing prices in series order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// QuoteResult is one symbol's resolved quote. Growth is nil when it cannot
// be computed from the available closes; that is a degraded result, not a
// fetch failure.
type QuoteResult struct {
	Symbol string
	Name   string
	Price  float64
	Growth *float64
}

// FailReason classifies why a fetch produced no quote.
type FailReason string

const (
	ReasonNotFound          FailReason = "NOT_FOUND"
	ReasonSourceUnavailable FailReason = "SOURCE_UNAVAILABLE"
	ReasonInsufficientData  FailReason = "INSUFFICIENT_DATA"
)

// FetchFailure carries the reason and underlying cause for a failed fetch.
type FetchFailure struct {
	Reason FailReason
	Cause  error
}

// FetchOutcome is the per-symbol result of an aggregation pass. Exactly one
// of Quote or Failure is set; failures are data, never batch errors.
type FetchOutcome struct {
	Symbol  string
	Quote   *QuoteResult
	Failure *FetchFailure
}

// OK reports whether the fetch produced a quote.
func (o FetchOutcome) OK() bool { return o.Quote != nil }

// Success builds a successful outcome.
func Success(q QuoteResult) FetchOutcome {
	return FetchOutcome{Symbol: q.Symbol, Quote: &q}
}

// Failed builds a failure outcome.
func Failed(symbol string, reason FailReason, cause error) FetchOutcome {
	return FetchOutcome{Symbol: symbol, Failure: &FetchFailure{Reason: reason, Cause: cause}}
}

// RankingSet is the output of one ranking pass. Top holds up to 10 results
// by descending growth, Bottom up to 10 by ascending growth, MarketFiltered
// every valid result matching the market suffix by descending growth.
type RankingSet struct {
	Top            []QuoteResult
	Bottom         []QuoteResult
	MarketFiltered []QuoteResult
}
