package registry

import "strings"

// Entry is one tracked symbol with its display name.
type Entry struct {
	Symbol string
	Name   string
}

// Registry is the fixed symbol universe. It is immutable after construction
// and safe for concurrent readers; changing the universe means building a new
// Registry from new configuration.
type Registry struct {
	entries []Entry
	byUpper map[string]string
}

// New builds a Registry preserving the insertion order of entries.
func New(entries []Entry) *Registry {
	r := &Registry{
		entries: make([]Entry, len(entries)),
		byUpper: make(map[string]string, len(entries)),
	}
	copy(r.entries, entries)
	for _, e := range entries {
		r.byUpper[strings.ToUpper(e.Symbol)] = e.Name
	}
	return r
}

// All returns the tracked universe in insertion order.
func (r *Registry) All() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Name returns the display name for a symbol (case-insensitive), or ""
// when the symbol is not tracked.
func (r *Registry) Name(symbol string) string {
	return r.byUpper[strings.ToUpper(symbol)]
}

// Len returns the number of tracked symbols.
func (r *Registry) Len() int { return len(r.entries) }

// Default returns the curated ticker list used when the config does not
// provide a universe. ASX symbols carry the ".AX" suffix.
func Default() *Registry {
	return New([]Entry{
		{"BA", "Boeing"},
		{"TSLA", "Tesla"},
		{"BP", "British Petroleum"},
		{"AMD", "AMD"},
		{"CBA.AX", "Commbank"},
		{"SHEL", "Shell"},
		{"GOOG", "Google"},
		{"BHP.AX", "BHP"},
		{"STO.AX", "Santos"},
		{"TLS.AX", "Telstra"},
		{"NVDA", "Nvidia"},
		{"COKE", "Coca Cola"},
		{"QAN.AX", "Qantas"},
		{"PFE", "Pfizer"},
		{"MCD", "McDonald's"},
		{"JNJ", "Johnson & Johnson"},
		{"MSFT", "Microsoft"},
		{"TTWO", "Take Two"},
		{"RTX", "Raytheon"},
		{"JPM", "JP Morgan"},
		{"LMT", "Lockheed Martin"},
		{"CSCO", "Cisco"},
		{"NOC", "Northrop Grumman"},
		{"MPL.AX", "Medibank"},
		{"CRWD", "Crowdstrike"},
		{"AAPL", "Apple"},
		{"MA", "Mastercard"},
		{"ANZ.AX", "ANZ Bank"},
		{"ORCL", "Oracle"},
		{"VGN.AX", "Virgin Australia"},
		{"WBC.AX", "Westpac Banking"},
	})
}
