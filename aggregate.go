package lifecast

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lifecast/lifecast/date"
)

// LedgerRow is the merged view of one period: every module component keyed
// as "module.component", the net cashflow of the period, and the running
// cumulative net since period 0.
type LedgerRow struct {
	Period     Period
	Range      date.Range
	Components map[string]Money
	Net        Money
	Cumulative Money
}

// UnifiedLedger is the aggregator's output: the merged ledger of all module
// series over one timeline. It is derived purely from the module outputs and
// recomputed fully on any input change.
type UnifiedLedger struct {
	timeline *Timeline
	order    []string // component keys in module, then component order
	rows     []LedgerRow
}

// Timeline returns the timeline the ledger is aligned to.
func (l *UnifiedLedger) Timeline() *Timeline { return l.timeline }

// Len returns the number of periods in the ledger.
func (l *UnifiedLedger) Len() int { return len(l.rows) }

// Row returns the merged row for period p.
func (l *UnifiedLedger) Row(p Period) LedgerRow { return l.rows[p] }

// Rows returns all rows in period order. Callers must not mutate them.
func (l *UnifiedLedger) Rows() []LedgerRow { return l.rows }

// Components returns the merged component keys in stable order.
func (l *UnifiedLedger) Components() []string { return l.order }

// Net returns the net cashflow at period p.
func (l *UnifiedLedger) Net(p Period) Money { return l.rows[p].Net }

// Cumulative returns the cumulative net cashflow from period 0 through p.
func (l *UnifiedLedger) Cumulative(p Period) Money { return l.rows[p].Cumulative }

// CumulativeCost returns the cumulative cost through p: the negated
// cumulative net, positive when outflows dominate.
func (l *UnifiedLedger) CumulativeCost(p Period) Money { return l.rows[p].Cumulative.Neg() }

// Aggregate computes every module's series and merges them into a unified
// ledger. Modules are independent, so they are computed concurrently; the
// merge is the join point and happens by period key, so module order never
// affects the result.
//
// Two modules answering to the same name (e.g. a Rent and a Mortgage in one
// scenario) wrap ErrInvalidInput. A series whose domain is not the timeline
// wraps ErrMisalignedSeries. Any module failure aborts the run: a failed run
// yields no ledger.
func Aggregate(tl *Timeline, rates *Resolver, modules ...Module) (*UnifiedLedger, error) {
	names := make(map[string]bool, len(modules))
	for _, m := range modules {
		if names[m.Name()] {
			return nil, fmt.Errorf("%w: duplicate module %q", ErrInvalidInput, m.Name())
		}
		names[m.Name()] = true
	}

	results := make([]*CashflowSeries, len(modules))
	var g errgroup.Group
	for i, m := range modules {
		g.Go(func() error {
			series, err := m.Compute(tl, rates)
			if err != nil {
				return fmt.Errorf("module %q: %w", m.Name(), err)
			}
			results[i] = series
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return merge(tl, results)
}

// merge validates alignment and folds the series into ledger rows.
func merge(tl *Timeline, series []*CashflowSeries) (*UnifiedLedger, error) {
	ledger := &UnifiedLedger{timeline: tl, rows: make([]LedgerRow, tl.Len())}
	for _, s := range series {
		if s.Len() != tl.Len() {
			return nil, fmt.Errorf("%w: module %q covers %d periods, timeline has %d",
				ErrMisalignedSeries, s.Module(), s.Len(), tl.Len())
		}
		for _, component := range s.Components() {
			ledger.order = append(ledger.order, s.Module()+"."+component)
		}
	}

	var cumulative Money
	for p := range tl.Periods() {
		row := LedgerRow{
			Period:     p,
			Range:      tl.Range(p),
			Components: make(map[string]Money),
		}
		for _, s := range series {
			for _, component := range s.Components() {
				amount := s.At(component, p)
				row.Components[s.Module()+"."+component] = amount
				row.Net = row.Net.Add(amount)
			}
		}
		cumulative = cumulative.Add(row.Net)
		row.Cumulative = cumulative
		ledger.rows[p] = row
	}
	return ledger, nil
}
