package lifecast

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AmortizationEntry is one period of a loan schedule: the total payment made,
// its split into interest and principal, and the balance left afterwards.
type AmortizationEntry struct {
	Payment   Money
	Interest  Money
	Principal Money
	Balance   Money
}

// AmortizationSchedule is the full repayment plan of a fixed-payment loan.
type AmortizationSchedule struct {
	// Payment is the constant periodic payment derived from principal, rate
	// and term. The last period's actual payment differs: it is adjusted so
	// the balance lands exactly on zero.
	Payment Money
	Entries []AmortizationEntry
}

// Term returns the number of periods until the balance reaches zero. With
// extra payments this is shorter than the contractual term.
func (s *AmortizationSchedule) Term() int { return len(s.Entries) }

// TotalInterest returns the interest paid over the whole schedule.
func (s *AmortizationSchedule) TotalInterest() Money {
	var total Money
	for _, e := range s.Entries {
		total = total.Add(e.Interest)
	}
	return total
}

// addTo spreads the monthly schedule over the timeline as negative cashflows,
// summing the months that fall into the same period on coarser granularities.
// Months past the horizon are dropped; periods past the payoff stay zero.
func (s *AmortizationSchedule) addTo(series *CashflowSeries, tl *Timeline, interestComp, principalComp string) {
	months := tl.Granularity().Months()
	for i, e := range s.Entries {
		p := Period(i / months)
		if !tl.Contains(p) {
			break
		}
		series.Add(interestComp, p, e.Interest.Neg())
		series.Add(principalComp, p, e.Principal.Neg())
	}
}

// Amortize computes the repayment schedule of a fixed-payment loan. It is the
// single amortization implementation shared by the mortgage, car-loan and
// student-loan modules.
//
// annualRate is the nominal annual note rate; the periodic rate is
// annualRate/12, the market convention for quoted loan rates (unlike growth
// RateSpecs, which compound effectively). extra is an additional principal
// payment applied every period; it shortens the schedule, and the schedule
// ends at the first period the balance reaches zero.
//
// Interest of a period is the unpaid balance times the periodic rate; the
// principal portion is payment minus interest; the final period's principal
// portion absorbs the rounding drift so that the principal portions sum
// exactly to the original principal.
func Amortize(principal Money, annualRate float64, termMonths int, extra Money) (*AmortizationSchedule, error) {
	if !principal.IsPositive() {
		return nil, fmt.Errorf("%w: loan principal %s must be positive", ErrInvalidInput, principal)
	}
	if termMonths <= 0 {
		return nil, fmt.Errorf("%w: loan term %d must be positive", ErrInvalidInput, termMonths)
	}
	if annualRate < 0 {
		return nil, fmt.Errorf("%w: negative loan rate %v", ErrInvalidInput, annualRate)
	}
	if extra.IsNegative() {
		return nil, fmt.Errorf("%w: negative extra payment %s", ErrInvalidInput, extra)
	}

	one := decimal.NewFromInt(1)
	rate := decimal.NewFromFloat(annualRate).Div(decimal.NewFromInt(12))
	balance := principal.value
	// Payments round to the principal currency's fraction, not a fixed two
	// decimals, so zero-fraction currencies amortize in whole units.
	fraction := int32(principal.currency().Fraction)

	var payment decimal.Decimal
	if rate.IsZero() {
		payment = balance.Div(decimal.NewFromInt(int64(termMonths))).Round(fraction)
	} else {
		// Standard annuity formula: P * r * (1+r)^n / ((1+r)^n - 1).
		pow, err := one.Add(rate).PowInt32(int32(termMonths))
		if err != nil {
			return nil, fmt.Errorf("computing annuity factor: %w", err)
		}
		payment = balance.Mul(rate).Mul(pow).Div(pow.Sub(one)).Round(fraction)
	}

	sched := &AmortizationSchedule{
		Payment: Money{value: payment, cur: principal.cur},
		Entries: make([]AmortizationEntry, 0, termMonths),
	}
	for i := 0; i < termMonths && balance.IsPositive(); i++ {
		interest := balance.Mul(rate).Round(fraction)
		principalPart := payment.Sub(interest).Add(extra.value)
		if i == termMonths-1 || principalPart.GreaterThanOrEqual(balance) {
			principalPart = balance
		}
		balance = balance.Sub(principalPart)
		sched.Entries = append(sched.Entries, AmortizationEntry{
			Payment:   Money{value: interest.Add(principalPart), cur: principal.cur},
			Interest:  Money{value: interest, cur: principal.cur},
			Principal: Money{value: principalPart, cur: principal.cur},
			Balance:   Money{value: balance, cur: principal.cur},
		})
	}
	return sched, nil
}
