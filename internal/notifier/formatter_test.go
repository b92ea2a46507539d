package notifier

import (
	"strings"
	"testing"
	"time"

	"stonkwatch/internal/model"
)

func g(v float64) *float64 { return &v }

func TestFormatQuote(t *testing.T) {
	tests := []struct {
		name  string
		quote model.QuoteResult
		want  string
	}{
		{
			"positive growth",
			model.QuoteResult{Symbol: "AAPL", Name: "Apple", Price: 189.5, Growth: g(0.0123)},
			"AAPL (Apple): $189.50 | 🟢 +1.23%",
		},
		{
			"negative growth",
			model.QuoteResult{Symbol: "BBB", Name: "B Corp", Price: 45, Growth: g(-0.10)},
			"BBB (B Corp): $45.00 | 🔴 -10.00%",
		},
		{
			"zero growth keeps percentage",
			model.QuoteResult{Symbol: "FLAT", Name: "Flat Co", Price: 10, Growth: g(0)},
			"FLAT (Flat Co): $10.00 | 🔴 0.00%",
		},
		{
			"missing growth",
			model.QuoteResult{Symbol: "NOG", Name: "No Growth", Price: 10},
			"NOG (No Growth): $10.00 | growth n/a",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatQuote(&tt.quote); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatQuote_NilGrowthDistinctFromZero(t *testing.T) {
	zero := FormatQuote(&model.QuoteResult{Symbol: "S", Name: "N", Price: 1, Growth: g(0)})
	missing := FormatQuote(&model.QuoteResult{Symbol: "S", Name: "N", Price: 1})
	if zero == missing {
		t.Errorf("zero growth and missing growth must render differently: %q", zero)
	}
}

func TestFormatMoversReport(t *testing.T) {
	set := model.RankingSet{
		Top:    []model.QuoteResult{{Symbol: "AAA", Name: "A Corp", Price: 110, Growth: g(0.10)}},
		Bottom: []model.QuoteResult{{Symbol: "BBB", Name: "B Corp", Price: 45, Growth: g(-0.10)}},
	}
	at := time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC)
	report := FormatMoversReport(set, ".AX", at)

	for _, want := range []string{
		"2026-09-01",
		"Winners:",
		"AAA (A Corp): $110.00 | 🟢 +10.00%",
		"Losers:",
		"BBB (B Corp): $45.00 | 🔴 -10.00%",
		"AX Stocks Ranked:",
		"(no data)",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestFormatLookupHint(t *testing.T) {
	hint := FormatLookupHint("ZZZZ")
	if !strings.Contains(hint, "`ZZZZ`") {
		t.Errorf("hint should quote the symbol: %q", hint)
	}
	if !strings.Contains(hint, "bhp.ax") {
		t.Errorf("hint should suggest a suffixed example: %q", hint)
	}
}
