package notifier

import (
	"fmt"
	"strings"
	"time"

	"stonkwatch/internal/model"
)

// Directional markers for growth rendering.
const (
	up   = "🟢"
	down = "🔴"
)

// HelpText is the reply to /help.
const HelpText = `Hi, this is StonkWatch. See below for guidelines on using the bot.

The bot looks up stock prices with a rough 15-minute delay from real-time... close enough.

Commands:
/help - show this help message
/stonk AAPL - show the latest price of AAPL
/stonk bhp.ax - show the latest price of BHP from the ASX
/today - top 10 best and worst performing stocks today`

// FormatQuote renders a single quote as one line, e.g.
// "AAPL (Apple): $189.50 | 🟢 +1.23%". A missing growth rate renders as
// "growth n/a", which is deliberately distinct from "0.00%".
func FormatQuote(q *model.QuoteResult) string {
	return fmt.Sprintf("%s (%s): %s%s", q.Symbol, q.Name, formatPrice(q.Price), formatGrowth(q.Growth))
}

// FormatRankingLine renders one entry of a ranking section.
func FormatRankingLine(q model.QuoteResult) string {
	return FormatQuote(&q)
}

// FormatMoversReport renders the full daily-movers report.
func FormatMoversReport(set model.RankingSet, marketSuffix string, at time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 Daily Movers | %s\n", at.Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("\n📈 Top %d Winners:\n", len(set.Top)))
	writeLines(&b, set.Top)

	b.WriteString(fmt.Sprintf("\n📉 Top %d Losers:\n", len(set.Bottom)))
	writeLines(&b, set.Bottom)

	market := strings.ToUpper(strings.TrimPrefix(marketSuffix, "."))
	b.WriteString(fmt.Sprintf("\n🌏 %s Stocks Ranked:\n", market))
	writeLines(&b, set.MarketFiltered)

	return b.String()
}

// FormatLookupHint is the corrective reply for a symbol the source does not
// recognize.
func FormatLookupHint(symbol string) string {
	return fmt.Sprintf("Cannot get data for `%s`. Did you type it correctly? "+
		"Try something like `bhp.ax` if it's an ASX stock.", symbol)
}

// FormatLookupError is the reply when the source itself misbehaved.
func FormatLookupError() string {
	return "Something went wrong while fetching data. Please try again later."
}

func writeLines(b *strings.Builder, results []model.QuoteResult) {
	if len(results) == 0 {
		b.WriteString("(no data)\n")
		return
	}
	for _, q := range results {
		b.WriteString(FormatRankingLine(q))
		b.WriteString("\n")
	}
}

func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

func formatGrowth(growth *float64) string {
	if growth == nil {
		return " | growth n/a"
	}
	direction, sign := down, ""
	if *growth > 0 {
		direction, sign = up, "+"
	}
	return fmt.Sprintf(" | %s %s%.2f%%", direction, sign, *growth*100)
}
