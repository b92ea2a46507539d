package registry

import "testing"

func TestNew_PreservesOrder(t *testing.T) {
	entries := []Entry{
		{"CCC.AX", "C Ltd"},
		{"AAA", "A Corp"},
		{"BBB", "B Corp"},
	}
	r := New(entries)
	got := r.All()
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, e := range entries {
		if got[i] != e {
			t.Errorf("entry %d: expected %v, got %v", i, e, got[i])
		}
	}
}

func TestName_CaseInsensitive(t *testing.T) {
	r := New([]Entry{{"BHP.AX", "BHP"}})
	for _, sym := range []string{"BHP.AX", "bhp.ax", "Bhp.Ax"} {
		if name := r.Name(sym); name != "BHP" {
			t.Errorf("Name(%q): expected BHP, got %q", sym, name)
		}
	}
	if name := r.Name("ZZZZ"); name != "" {
		t.Errorf("expected empty name for unknown symbol, got %q", name)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	r := New([]Entry{{"AAA", "A Corp"}, {"BBB", "B Corp"}})
	got := r.All()
	got[0] = Entry{"XXX", "mutated"}
	if r.All()[0].Symbol != "AAA" {
		t.Error("mutating All() result must not affect the registry")
	}
}

func TestDefault_Universe(t *testing.T) {
	r := Default()
	if r.Len() != 31 {
		t.Fatalf("expected 31 default tickers, got %d", r.Len())
	}
	if r.Name("cba.ax") != "Commbank" {
		t.Errorf("expected Commbank for cba.ax, got %q", r.Name("cba.ax"))
	}
	// First entry fixed by insertion order.
	if r.All()[0].Symbol != "BA" {
		t.Errorf("expected BA first, got %s", r.All()[0].Symbol)
	}
}
