package ranking

import (
	"sort"
	"strings"

	"stonkwatch/internal/model"
)

// TopN is the number of entries kept in the best/worst rankings.
const TopN = 10

// Rank sorts a batch of fetch outcomes into the daily-movers views. Failure
// outcomes and successes without a growth rate are excluded. Ties keep their
// relative input order, so ranking the same outcomes twice yields the same
// set. The input is never modified.
func Rank(outcomes []model.FetchOutcome, marketSuffix string) model.RankingSet {
	valid := make([]model.QuoteResult, 0, len(outcomes))
	for _, o := range outcomes {
		if o.OK() && o.Quote.Growth != nil {
			valid = append(valid, *o.Quote)
		}
	}

	desc := sortedByGrowth(valid, false)
	asc := sortedByGrowth(valid, true)

	set := model.RankingSet{
		Top:    head(desc, TopN),
		Bottom: head(asc, TopN),
	}

	suffix := strings.ToUpper(marketSuffix)
	market := make([]model.QuoteResult, 0)
	for _, q := range desc {
		if suffix != "" && strings.HasSuffix(strings.ToUpper(q.Symbol), suffix) {
			market = append(market, q)
		}
	}
	set.MarketFiltered = market
	return set
}

func sortedByGrowth(results []model.QuoteResult, ascending bool) []model.QuoteResult {
	out := make([]model.QuoteResult, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return *out[i].Growth < *out[j].Growth
		}
		return *out[i].Growth > *out[j].Growth
	})
	return out
}

func head(results []model.QuoteResult, n int) []model.QuoteResult {
	if len(results) > n {
		results = results[:n]
	}
	return results
}
