package lifecast

import "fmt"

// Default annual growth rates for housing costs, used when a spec is left nil.
var (
	DefaultRentGrowth      = Fixed(0.05)
	DefaultInsuranceGrowth = Fixed(0.03)
	DefaultUtilitiesGrowth = Fixed(0.025)
)

// Rent models the renting variant of the housing domain. A scenario holds
// either a Rent or a Mortgage module, never both: both answer to the
// "housing" module name and the aggregator rejects duplicates.
type Rent struct {
	// MonthlyRent is the full rent before roommate contributions.
	MonthlyRent Money
	// RoommateShare is the fraction of the rent paid by roommates, in [0,1].
	RoommateShare float64
	// RentersInsurance is the monthly premium, zero when not insured.
	RentersInsurance Money
	// Utilities is the monthly utilities cost when not included in rent.
	Utilities Money

	// Growth specs; nil selects the default for the category.
	RentGrowth      RateSpec
	InsuranceGrowth RateSpec
	UtilitiesGrowth RateSpec
}

func (r *Rent) Name() string { return "housing" }

func (r *Rent) Validate() error {
	if !r.MonthlyRent.IsPositive() {
		return fmt.Errorf("%w: monthly rent %s must be positive", ErrInvalidInput, r.MonthlyRent)
	}
	if r.RoommateShare < 0 || r.RoommateShare > 1 {
		return fmt.Errorf("%w: roommate share %v must be within [0,1]", ErrInvalidInput, r.RoommateShare)
	}
	if r.RentersInsurance.IsNegative() || r.Utilities.IsNegative() {
		return fmt.Errorf("%w: negative housing cost", ErrInvalidInput)
	}
	return nil
}

func (r *Rent) Compute(tl *Timeline, rates *Resolver) (*CashflowSeries, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	rent, err := rates.Resolve(orDefault(r.RentGrowth, DefaultRentGrowth))
	if err != nil {
		return nil, fmt.Errorf("resolving rent growth: %w", err)
	}
	insurance, err := rates.Resolve(orDefault(r.InsuranceGrowth, DefaultInsuranceGrowth))
	if err != nil {
		return nil, fmt.Errorf("resolving renters insurance growth: %w", err)
	}
	utilities, err := rates.Resolve(orDefault(r.UtilitiesGrowth, DefaultUtilitiesGrowth))
	if err != nil {
		return nil, fmt.Errorf("resolving utilities growth: %w", err)
	}

	months := Q(tl.Granularity().Months())
	ownShare := Q(1 - r.RoommateShare)
	series := NewCashflowSeries(r.Name(), tl)
	for p := range tl.Periods() {
		series.Add("rent", p, r.MonthlyRent.Mul(ownShare).Mul(rent.Factor(p)).Mul(months).Neg())
		series.Add("renters_insurance", p, r.RentersInsurance.Mul(insurance.Factor(p)).Mul(months).Neg())
		series.Add("utilities", p, r.Utilities.Mul(utilities.Factor(p)).Mul(months).Neg())
	}
	return series, nil
}

// Mortgage models the home-purchase variant of the housing domain: a fixed
// payment loan amortized through the shared Amortize algorithm, plus escrowed
// property tax and homeowners insurance, each growing under its own spec.
type Mortgage struct {
	Principal  Money
	AnnualRate float64
	TermMonths int
	// ExtraPayment is an additional principal payment every month.
	ExtraPayment Money

	// Monthly escrow amounts at period 0.
	PropertyTax   Money
	HomeInsurance Money

	PropertyTaxGrowth RateSpec
	InsuranceGrowth   RateSpec
}

func (m *Mortgage) Name() string { return "housing" }

func (m *Mortgage) Validate() error {
	if !m.Principal.IsPositive() {
		return fmt.Errorf("%w: mortgage principal %s must be positive", ErrInvalidInput, m.Principal)
	}
	if m.TermMonths <= 0 {
		return fmt.Errorf("%w: mortgage term %d must be positive", ErrInvalidInput, m.TermMonths)
	}
	if m.AnnualRate < 0 {
		return fmt.Errorf("%w: negative mortgage rate %v", ErrInvalidInput, m.AnnualRate)
	}
	if m.PropertyTax.IsNegative() || m.HomeInsurance.IsNegative() {
		return fmt.Errorf("%w: negative escrow amount", ErrInvalidInput)
	}
	return nil
}

func (m *Mortgage) Compute(tl *Timeline, rates *Resolver) (*CashflowSeries, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	sched, err := Amortize(m.Principal, m.AnnualRate, m.TermMonths, m.ExtraPayment)
	if err != nil {
		return nil, fmt.Errorf("amortizing mortgage: %w", err)
	}
	tax, err := rates.Resolve(orDefault(m.PropertyTaxGrowth, DefaultInsuranceGrowth))
	if err != nil {
		return nil, fmt.Errorf("resolving property tax growth: %w", err)
	}
	insurance, err := rates.Resolve(orDefault(m.InsuranceGrowth, DefaultInsuranceGrowth))
	if err != nil {
		return nil, fmt.Errorf("resolving home insurance growth: %w", err)
	}

	months := Q(tl.Granularity().Months())
	series := NewCashflowSeries(m.Name(), tl)
	sched.addTo(series, tl, "interest", "principal")
	for p := range tl.Periods() {
		series.Add("property_tax", p, m.PropertyTax.Mul(tax.Factor(p)).Mul(months).Neg())
		series.Add("home_insurance", p, m.HomeInsurance.Mul(insurance.Factor(p)).Mul(months).Neg())
	}
	return series, nil
}

// orDefault substitutes a module's documented default for a nil growth spec.
func orDefault(spec, def RateSpec) RateSpec {
	if spec == nil {
		return def
	}
	return spec
}
