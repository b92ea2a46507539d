package scheduler

import (
	"context"
	"strings"
	"testing"
	"time"

	"stonkwatch/internal/aggregator"
	"stonkwatch/internal/quotes"
	"stonkwatch/internal/recorder"
	"stonkwatch/internal/registry"
)

func newTestScheduler(t *testing.T, src quotes.Source) *Scheduler {
	t.Helper()
	reg := registry.New([]registry.Entry{
		{Symbol: "AAA", Name: "A Corp"},
		{Symbol: "BBB", Name: "B Corp"},
		{Symbol: "CCC.AX", Name: "C Ltd"},
	})
	agg := aggregator.New(src, 4, 200*time.Millisecond, 5)
	return NewScheduler(context.Background(), agg, reg, nil, recorder.NewNoopRecorder(), ".AX")
}

func TestHandleCommand_Stonk(t *testing.T) {
	src := &quotes.MockSource{
		Series: map[string][]float64{"AAA": {100, 110}},
	}
	s := newTestScheduler(t, src)

	reply := s.HandleCommand("/stonk AAA")
	if !strings.Contains(reply, "AAA (A Corp)") || !strings.Contains(reply, "+10.00%") {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestHandleCommand_StonkUnknownSymbol(t *testing.T) {
	s := newTestScheduler(t, &quotes.MockSource{Series: map[string][]float64{}})

	reply := s.HandleCommand("/stonk ZZZZ")
	if !strings.Contains(reply, "Did you type it correctly?") {
		t.Errorf("expected corrective hint, got %q", reply)
	}
}

func TestHandleCommand_StonkMissingArg(t *testing.T) {
	s := newTestScheduler(t, &quotes.MockSource{Price: 100})
	reply := s.HandleCommand("/stonk")
	if !strings.Contains(reply, "Usage:") {
		t.Errorf("expected usage hint, got %q", reply)
	}
}

func TestHandleCommand_Today(t *testing.T) {
	// CCC.AX times out; the report still covers the other two symbols.
	src := &quotes.MockSource{
		Series: map[string][]float64{
			"AAA": {100, 110},
			"BBB": {50, 45},
		},
		Delays: map[string]time.Duration{"CCC.AX": time.Second},
	}
	s := newTestScheduler(t, src)

	report := s.HandleCommand("/today")
	if !strings.Contains(report, "AAA (A Corp)") {
		t.Errorf("winner missing from report:\n%s", report)
	}
	if !strings.Contains(report, "BBB (B Corp)") {
		t.Errorf("loser missing from report:\n%s", report)
	}
	if strings.Contains(report, "CCC.AX") {
		t.Errorf("failed symbol must be excluded from report:\n%s", report)
	}
}

func TestHandleCommand_HelpAndUnknown(t *testing.T) {
	s := newTestScheduler(t, &quotes.MockSource{Price: 100})

	if reply := s.HandleCommand("/help"); !strings.Contains(reply, "/stonk") {
		t.Errorf("help should list commands, got %q", reply)
	}
	if reply := s.HandleCommand("/nonsense"); !strings.Contains(reply, "Unknown command") {
		t.Errorf("expected unknown-command reply, got %q", reply)
	}
	if reply := s.HandleCommand("   "); reply != "" {
		t.Errorf("blank input should yield empty reply, got %q", reply)
	}
}
