package lifecast

import "fmt"

// StudentLoan models the debt domain: a fixed-payment loan amortized with
// the shared Amortize algorithm. ExtraPayment enables the aggressive payoff
// mode: the extra amount reduces principal ahead of schedule every month and
// the loan reaches zero balance strictly earlier than under minimum payments.
type StudentLoan struct {
	Principal    Money
	AnnualRate   float64
	TermMonths   int
	ExtraPayment Money
}

func (l *StudentLoan) Name() string { return "debt" }

func (l *StudentLoan) Validate() error {
	if !l.Principal.IsPositive() {
		return fmt.Errorf("%w: student loan principal %s must be positive", ErrInvalidInput, l.Principal)
	}
	if l.TermMonths <= 0 {
		return fmt.Errorf("%w: student loan term %d must be positive", ErrInvalidInput, l.TermMonths)
	}
	if l.AnnualRate < 0 {
		return fmt.Errorf("%w: negative student loan rate %v", ErrInvalidInput, l.AnnualRate)
	}
	if l.ExtraPayment.IsNegative() {
		return fmt.Errorf("%w: negative extra payment %s", ErrInvalidInput, l.ExtraPayment)
	}
	return nil
}

func (l *StudentLoan) Compute(tl *Timeline, rates *Resolver) (*CashflowSeries, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	sched, err := Amortize(l.Principal, l.AnnualRate, l.TermMonths, l.ExtraPayment)
	if err != nil {
		return nil, fmt.Errorf("amortizing student loan: %w", err)
	}
	series := NewCashflowSeries(l.Name(), tl)
	sched.addTo(series, tl, "interest", "principal")
	return series, nil
}

// PayoffPeriod returns the timeline period at which the loan balance first
// reaches zero, and false when payoff happens after the horizon end.
func (l *StudentLoan) PayoffPeriod(tl *Timeline) (Period, bool, error) {
	sched, err := Amortize(l.Principal, l.AnnualRate, l.TermMonths, l.ExtraPayment)
	if err != nil {
		return 0, false, err
	}
	p := Period((sched.Term() - 1) / tl.Granularity().Months())
	if !tl.Contains(p) {
		return 0, false, nil
	}
	return p, true, nil
}
