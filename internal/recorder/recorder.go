package recorder

// ReportEvent is the journal entry for one full-universe report cycle.
type ReportEvent struct {
	Trigger      string // "CRON" or "COMMAND"
	Symbols      int
	Succeeded    int
	Failed       int
	DurationMS   int64
	TopSymbol    string
	TopGrowth    float64
	BottomSymbol string
	BottomGrowth float64
}

// LookupEvent is the journal entry for one single-symbol lookup.
type LookupEvent struct {
	Symbol string
	OK     bool
	Reason string // failure reason, empty on success
	Price  float64
}

// Recorder journals operational events for later inspection. It is
// write-only: nothing in the engine reads these records back.
type Recorder interface {
	RecordReport(evt *ReportEvent) error
	RecordLookup(evt *LookupEvent) error
	Close() error
}
