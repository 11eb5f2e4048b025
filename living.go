package lifecast

import "fmt"

// DefaultExpenseGrowth is the annual growth used for expense categories
// without their own spec.
var DefaultExpenseGrowth = Fixed(0.025)

// ExpenseCategory is one recurring living cost: groceries, subscriptions,
// eating out. Each category grows independently under its own spec.
type ExpenseCategory struct {
	Name string
	// Monthly is the cost at period 0.
	Monthly Money
	Growth  RateSpec
}

// LivingExpenses models the living-expenses domain as an aggregate of
// categorized recurring costs.
type LivingExpenses struct {
	Categories []ExpenseCategory
}

func (l *LivingExpenses) Name() string { return "living" }

func (l *LivingExpenses) Validate() error {
	if len(l.Categories) == 0 {
		return fmt.Errorf("%w: no expense categories", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(l.Categories))
	for _, c := range l.Categories {
		if c.Name == "" {
			return fmt.Errorf("%w: expense category without a name", ErrInvalidInput)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate expense category %q", ErrInvalidInput, c.Name)
		}
		seen[c.Name] = true
		if c.Monthly.IsNegative() {
			return fmt.Errorf("%w: negative amount %s for category %q", ErrInvalidInput, c.Monthly, c.Name)
		}
	}
	return nil
}

func (l *LivingExpenses) Compute(tl *Timeline, rates *Resolver) (*CashflowSeries, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	months := Q(tl.Granularity().Months())
	series := NewCashflowSeries(l.Name(), tl)
	for _, c := range l.Categories {
		growth, err := rates.Resolve(orDefault(c.Growth, DefaultExpenseGrowth))
		if err != nil {
			return nil, fmt.Errorf("resolving growth for category %q: %w", c.Name, err)
		}
		for p := range tl.Periods() {
			series.Add(c.Name, p, c.Monthly.Mul(growth.Factor(p)).Mul(months).Neg())
		}
	}
	return series, nil
}
