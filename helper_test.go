package lifecast

import (
	"testing"
	"time"

	"github.com/lifecast/lifecast/date"
)

// monthly returns a monthly timeline of n periods starting January 2030.
func monthly(t *testing.T, n int) *Timeline {
	t.Helper()
	tl, err := NewTimelineFor(date.New(2030, time.January, 1), n, date.Monthly)
	if err != nil {
		t.Fatalf("NewTimelineFor() error = %v", err)
	}
	return tl
}

// yearly returns a yearly timeline of n periods starting in 2030.
func yearly(t *testing.T, n int) *Timeline {
	t.Helper()
	tl, err := NewTimelineFor(date.New(2030, time.January, 1), n, date.Yearly)
	if err != nil {
		t.Fatalf("NewTimelineFor() error = %v", err)
	}
	return tl
}

// flowModule emits a fixed signed amount per period under a single "flow"
// component. It gives tests full control over the shape of a ledger.
type flowModule struct {
	name    string
	amounts []float64
}

func (m *flowModule) Name() string    { return m.name }
func (m *flowModule) Validate() error { return nil }

func (m *flowModule) Compute(tl *Timeline, rates *Resolver) (*CashflowSeries, error) {
	series := NewCashflowSeries(m.name, tl)
	for p := range tl.Periods() {
		series.Add("flow", p, USD(m.amounts[p]))
	}
	return series, nil
}

// mustAggregate aggregates the modules over the timeline or fails the test.
func mustAggregate(t *testing.T, tl *Timeline, modules ...Module) *UnifiedLedger {
	t.Helper()
	ledger, err := Aggregate(tl, NewResolver(tl), modules...)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	return ledger
}
