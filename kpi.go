package lifecast

import (
	"fmt"
	"iter"
	"strings"
)

// BreakEven returns the first period where scenario a's cumulative cost
// becomes no greater than scenario b's, having been above before. When the
// two lines never cross within the horizon it returns false rather than an
// error. When a is never above b, period 0 is the break-even.
//
// Both ledgers must share the same horizon; otherwise ErrMisalignedSeries.
func BreakEven(a, b *UnifiedLedger) (Period, bool, error) {
	if a.Len() != b.Len() {
		return 0, false, fmt.Errorf("%w: ledgers cover %d and %d periods", ErrMisalignedSeries, a.Len(), b.Len())
	}
	wasAbove := false
	for p := range a.timeline.Periods() {
		costA, costB := a.CumulativeCost(p), b.CumulativeCost(p)
		if costA.LessThanOrEqual(costB) {
			if p == 0 || wasAbove {
				return p, true, nil
			}
		} else {
			wasAbove = true
		}
	}
	return 0, false, nil
}

// TotalCostOfOwnership returns the cumulative sum of all outflow components
// of the named module from period 0 through the given period, inclusive of
// financing and recurring costs. The result is positive.
func TotalCostOfOwnership(l *UnifiedLedger, module string, through Period) (Money, error) {
	if !l.timeline.Contains(through) {
		return Money{}, fmt.Errorf("%w: period %d outside the %d-period horizon", ErrInvalidRange, through, l.Len())
	}
	prefix := module + "."
	var total Money
	found := false
	for _, key := range l.order {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		found = true
		for p := Period(0); p <= through; p++ {
			if amount := l.rows[p].Components[key]; amount.IsNegative() {
				total = total.Add(amount.Neg())
			}
		}
	}
	if !found {
		return Money{}, fmt.Errorf("%w: no module %q in ledger", ErrInvalidInput, module)
	}
	return total, nil
}

// BurnRate returns the trailing moving average of net outflow per period, as
// a lazy sequence over the whole horizon. The first window-1 periods average
// over the periods available so far. Periods with net inflow count as zero
// outflow. The sequence is finite and restartable: it recomputes from the
// ledger on every iteration and has no side effects.
func BurnRate(l *UnifiedLedger, window int) (iter.Seq2[Period, Money], error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: burn rate window %d must be positive", ErrInvalidInput, window)
	}
	return func(yield func(Period, Money) bool) {
		outflows := make([]Money, l.Len())
		for p := range l.timeline.Periods() {
			if net := l.rows[p].Net; net.IsNegative() {
				outflows[p] = net.Neg()
			}
			var sum Money
			count := 0
			for i := int(p); i >= 0 && count < window; i-- {
				sum = sum.Add(outflows[i])
				count++
			}
			if !yield(p, sum.Div(Q(count))) {
				return
			}
		}
	}, nil
}
