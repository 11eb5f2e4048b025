package lifecast

import (
	"encoding/json"
	"fmt"
)

// FilingStatus is the federal tax filing status.
type FilingStatus int

const (
	Single FilingStatus = iota
	Married
)

func (s FilingStatus) String() string {
	switch s {
	case Single:
		return "single"
	case Married:
		return "married"
	default:
		return "unknown"
	}
}

// ParseFilingStatus parses a filing status from its name.
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch s {
	case "single":
		return Single, nil
	case "married":
		return Married, nil
	default:
		return Single, fmt.Errorf("unknown filing status: %q", s)
	}
}

func (s FilingStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *FilingStatus) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseFilingStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// TaxBracket is one marginal bracket: the Rate applies to the slice of
// annual income above From, up to the next bracket's From.
type TaxBracket struct {
	From Money
	Rate float64
}

// DefaultBrackets returns the 2024 federal marginal brackets for a filing
// status. Scenarios with other jurisdictions supply their own table.
func DefaultBrackets(status FilingStatus) []TaxBracket {
	switch status {
	case Married:
		return []TaxBracket{
			{USD(0), 0.10},
			{USD(23200), 0.12},
			{USD(94300), 0.22},
			{USD(201050), 0.24},
			{USD(383900), 0.32},
			{USD(487450), 0.35},
			{USD(731200), 0.37},
		}
	default:
		return []TaxBracket{
			{USD(0), 0.10},
			{USD(11600), 0.12},
			{USD(47150), 0.22},
			{USD(100525), 0.24},
			{USD(191950), 0.32},
			{USD(243725), 0.35},
			{USD(609350), 0.37},
		}
	}
}

// DefaultIncomeGrowth is the annual wage growth used when none is given.
var DefaultIncomeGrowth = Fixed(0.03)

// IncomeTax models the taxes domain: gross income growing under its own
// spec, taxed through a progressive bracket table. Each period's liability
// is the annual liability at that period's annualized income, divided evenly
// over the year's periods, so a rising income moves through the brackets as
// the simulation progresses. The series carries the gross income as an
// inflow and the tax as an outflow.
type IncomeTax struct {
	// GrossAnnualIncome is the annual gross income at period 0.
	GrossAnnualIncome Money
	FilingStatus      FilingStatus
	// Brackets overrides DefaultBrackets(FilingStatus) when non-nil. It must
	// be sorted by From ascending and start at zero.
	Brackets     []TaxBracket
	IncomeGrowth RateSpec
}

func (t *IncomeTax) Name() string { return "taxes" }

func (t *IncomeTax) brackets() []TaxBracket {
	if t.Brackets != nil {
		return t.Brackets
	}
	return DefaultBrackets(t.FilingStatus)
}

func (t *IncomeTax) Validate() error {
	if !t.GrossAnnualIncome.IsPositive() {
		return fmt.Errorf("%w: gross income %s must be positive", ErrInvalidInput, t.GrossAnnualIncome)
	}
	brackets := t.brackets()
	if len(brackets) == 0 {
		return fmt.Errorf("%w: empty bracket table", ErrInvalidInput)
	}
	if !brackets[0].From.IsZero() {
		return fmt.Errorf("%w: first bracket must start at zero, got %s", ErrInvalidInput, brackets[0].From)
	}
	for i, b := range brackets {
		if b.Rate < 0 || b.Rate > 1 {
			return fmt.Errorf("%w: bracket rate %v out of [0,1]", ErrInvalidInput, b.Rate)
		}
		if i > 0 && !brackets[i-1].From.LessThan(b.From) {
			return fmt.Errorf("%w: bracket thresholds must be strictly increasing at %s", ErrInvalidInput, b.From)
		}
	}
	return nil
}

func (t *IncomeTax) Compute(tl *Timeline, rates *Resolver) (*CashflowSeries, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	growth, err := rates.Resolve(orDefault(t.IncomeGrowth, DefaultIncomeGrowth))
	if err != nil {
		return nil, fmt.Errorf("resolving income growth: %w", err)
	}
	brackets := t.brackets()
	perYear := Q(tl.PerYear())
	series := NewCashflowSeries(t.Name(), tl)
	for p := range tl.Periods() {
		annual := t.GrossAnnualIncome.Mul(growth.Factor(p))
		series.Add("gross_income", p, annual.Div(perYear))
		series.Add("income_tax", p, progressiveTax(annual, brackets).Div(perYear).Neg())
	}
	return series, nil
}

// progressiveTax applies marginal rates per bracket: each bracket's rate
// taxes only the slice of income falling inside that bracket.
func progressiveTax(income Money, brackets []TaxBracket) Money {
	var tax Money
	for i, b := range brackets {
		if income.LessThanOrEqual(b.From) {
			break
		}
		upper := income
		if i+1 < len(brackets) && brackets[i+1].From.LessThan(income) {
			upper = brackets[i+1].From
		}
		tax = tax.Add(upper.Sub(b.From).Mul(Q(b.Rate)))
	}
	return tax
}
