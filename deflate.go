package lifecast

import "fmt"

// Deflator converts nominal values to real, base-period-equivalent values
// for display and comparison. It is a pure, presentation-time view: it never
// feeds back into a ledger, which always stays nominal.
type Deflator struct {
	prices *RateSeries
	base   Period
}

// NewDeflator resolves the general price-level spec against the timeline and
// fixes the base period all real values are expressed in.
func NewDeflator(tl *Timeline, priceLevel RateSpec, base Period) (*Deflator, error) {
	if !tl.Contains(base) {
		return nil, fmt.Errorf("%w: base period %d outside the %d-period horizon", ErrInvalidRange, base, tl.Len())
	}
	resolver := NewResolver(tl)
	prices, err := resolver.Resolve(priceLevel)
	if err != nil {
		return nil, fmt.Errorf("resolving price level: %w", err)
	}
	return &Deflator{prices: prices, base: base}, nil
}

// Real converts a nominal value observed at the given period into base-period
// money: nominal * priceLevel(base) / priceLevel(at).
func (d *Deflator) Real(nominal Money, at Period) Money {
	return nominal.Mul(d.prices.Factor(d.base)).Div(d.prices.Factor(at))
}

// RealRows returns a deflated copy of the ledger's rows. The ledger itself
// is left untouched.
func (d *Deflator) RealRows(l *UnifiedLedger) []LedgerRow {
	rows := make([]LedgerRow, l.Len())
	for p := range l.timeline.Periods() {
		src := l.rows[p]
		row := LedgerRow{
			Period:     src.Period,
			Range:      src.Range,
			Components: make(map[string]Money, len(src.Components)),
			Net:        d.Real(src.Net, p),
		}
		for key, amount := range src.Components {
			row.Components[key] = d.Real(amount, p)
		}
		// The cumulative of a real series is the sum of real nets, not the
		// deflated nominal cumulative.
		if p == 0 {
			row.Cumulative = row.Net
		} else {
			row.Cumulative = rows[p-1].Cumulative.Add(row.Net)
		}
		rows[p] = row
	}
	return rows
}
