package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"stonkwatch/internal/aggregator"
	"stonkwatch/internal/model"
	"stonkwatch/internal/notifier"
	"stonkwatch/internal/ranking"
	"stonkwatch/internal/recorder"
	"stonkwatch/internal/registry"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the cron-driven daily report and dispatches user commands.
type Scheduler struct {
	Cron         *cron.Cron
	Aggregator   *aggregator.Aggregator
	Registry     *registry.Registry
	Notifier     *notifier.TelegramNotifier
	Recorder     recorder.Recorder
	MarketSuffix string
	Ctx          context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, agg *aggregator.Aggregator, reg *registry.Registry,
	tn *notifier.TelegramNotifier, rec recorder.Recorder, marketSuffix string) *Scheduler {
	return &Scheduler{
		Cron:         cron.New(cron.WithSeconds()),
		Aggregator:   agg,
		Registry:     reg,
		Notifier:     tn,
		Recorder:     rec,
		MarketSuffix: marketSuffix,
		Ctx:          ctx,
	}
}

// RegisterAll registers the scheduled tasks.
func (s *Scheduler) RegisterAll(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunDailyNow executes the daily report immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunDailyNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily movers report")
	report, err := s.buildMoversReport("CRON")
	if err != nil {
		s.trySend(fmt.Sprintf("❌ daily report failed: %v", err))
		return
	}
	s.trySend(report)
}

// buildMoversReport aggregates the whole universe, ranks it, and renders the
// report. Individual symbol failures are excluded from the ranking; only an
// empty universe is an error.
func (s *Scheduler) buildMoversReport(trigger string) (string, error) {
	entries := s.Registry.All()
	if len(entries) == 0 {
		return "", fmt.Errorf("empty symbol universe")
	}

	start := time.Now()
	outcomes := s.Aggregator.FetchAll(s.Ctx, entries)
	set := ranking.Rank(outcomes, s.MarketSuffix)
	elapsed := time.Since(start)

	evt := &recorder.ReportEvent{
		Trigger:    trigger,
		Symbols:    len(entries),
		DurationMS: elapsed.Milliseconds(),
	}
	for _, o := range outcomes {
		if o.OK() {
			evt.Succeeded++
		} else {
			evt.Failed++
		}
	}
	if len(set.Top) > 0 {
		evt.TopSymbol, evt.TopGrowth = set.Top[0].Symbol, *set.Top[0].Growth
	}
	if len(set.Bottom) > 0 {
		evt.BottomSymbol, evt.BottomGrowth = set.Bottom[0].Symbol, *set.Bottom[0].Growth
	}
	if err := s.Recorder.RecordReport(evt); err != nil {
		log.Printf("[ERROR] record report: %v", err)
	}

	log.Printf("[INFO] report built: %d/%d symbols in %v", evt.Succeeded, evt.Symbols, elapsed)
	return notifier.FormatMoversReport(set, s.MarketSuffix, time.Now()), nil
}

// lookup resolves one symbol on demand and returns the user-facing reply.
func (s *Scheduler) lookup(symbol string) string {
	outcome := s.Aggregator.FetchOne(s.Ctx, symbol, s.Registry.Name(symbol))

	evt := &recorder.LookupEvent{Symbol: strings.ToUpper(symbol), OK: outcome.OK()}
	if outcome.OK() {
		evt.Price = outcome.Quote.Price
	} else {
		evt.Reason = string(outcome.Failure.Reason)
	}
	if err := s.Recorder.RecordLookup(evt); err != nil {
		log.Printf("[ERROR] record lookup: %v", err)
	}

	if outcome.OK() {
		return notifier.FormatQuote(outcome.Quote)
	}
	log.Printf("[WARN] lookup %s failed: %s", symbol, aggregator.Describe(outcome.Failure))
	if outcome.Failure.Reason == model.ReasonNotFound {
		return notifier.FormatLookupHint(symbol)
	}
	return notifier.FormatLookupError()
}

// HandleCommand processes a user command line and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(strings.TrimSpace(command))
	if len(fields) == 0 {
		return ""
	}

	switch strings.ToLower(fields[0]) {
	case "/stonk":
		if len(fields) < 2 {
			return "Usage: /stonk <symbol>, e.g. /stonk AAPL"
		}
		return s.lookup(fields[1])
	case "/today":
		report, err := s.buildMoversReport("COMMAND")
		if err != nil {
			log.Printf("[ERROR] /today: %v", err)
			return notifier.FormatLookupError()
		}
		return report
	case "/help", "help":
		return notifier.HelpText
	default:
		return "Unknown command. Available:\n• /stonk <symbol>\n• /today\n• /help"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
