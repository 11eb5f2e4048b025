package lifecast

import (
	"fmt"

	"github.com/lifecast/lifecast/date"
)

// Scenario is one complete set of simulation inputs: a horizon, a period
// granularity and the active domain modules. Running a scenario is a
// one-shot, request-scoped batch computation; all state is discarded after
// the ledger is returned.
type Scenario struct {
	Name string

	From, To    date.Date
	Granularity date.Period // zero value is date.Monthly

	Modules []Module
}

// Timeline builds the scenario's canonical timeline.
func (s *Scenario) Timeline() (*Timeline, error) {
	return NewTimeline(s.From, s.To, s.Granularity)
}

// Run validates the scenario, computes every module series and returns the
// unified ledger. Same inputs always produce the same ledger.
func (s *Scenario) Run() (*UnifiedLedger, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	tl, err := s.Timeline()
	if err != nil {
		return nil, err
	}
	return Aggregate(tl, NewResolver(tl), s.Modules...)
}

// Comparison is the result of running two scenarios over the same horizon.
type Comparison struct {
	A, B *UnifiedLedger

	// BreakEven is the first period where A's cumulative cost becomes no
	// greater than B's; HasBreakEven is false when the two never cross
	// within the horizon.
	BreakEven    Period
	HasBreakEven bool
}

// Compare runs both scenarios and computes the break-even between them.
// The scenarios must share the same horizon and granularity.
func Compare(a, b *Scenario) (*Comparison, error) {
	if a.From != b.From || a.To != b.To || a.Granularity != b.Granularity {
		return nil, fmt.Errorf("%w: scenarios %q and %q have different horizons", ErrMisalignedSeries, a.Name, b.Name)
	}
	ledgerA, err := a.Run()
	if err != nil {
		return nil, fmt.Errorf("running scenario %q: %w", a.Name, err)
	}
	ledgerB, err := b.Run()
	if err != nil {
		return nil, fmt.Errorf("running scenario %q: %w", b.Name, err)
	}
	breakEven, ok, err := BreakEven(ledgerA, ledgerB)
	if err != nil {
		return nil, err
	}
	return &Comparison{A: ledgerA, B: ledgerB, BreakEven: breakEven, HasBreakEven: ok}, nil
}
