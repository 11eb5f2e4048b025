package lifecast

import "fmt"

// Default annual growth rates for transport costs.
var (
	DefaultFuelGrowth        = Fixed(0.03)
	DefaultMaintenanceGrowth = Fixed(0.025)
	DefaultFareGrowth        = Fixed(0.03)
)

// CarLoan describes the financing of a loan-funded car. The cashflow reuses
// the shared Amortize algorithm.
type CarLoan struct {
	Principal  Money
	AnnualRate float64
	TermMonths int
}

// Car models the car variant of the transport domain: recurring fuel,
// insurance and maintenance costs, each growing under its own spec, plus the
// financing cashflow when the car is loan funded.
type Car struct {
	// Fuel cost inputs: monthly fuel spend is PricePerGallon * MilesPerMonth / MilesPerGallon.
	PricePerGallon Money
	MilesPerMonth  float64
	MilesPerGallon float64

	// Monthly amounts at period 0.
	Insurance   Money
	Maintenance Money

	FuelGrowth        RateSpec
	InsuranceGrowth   RateSpec
	MaintenanceGrowth RateSpec

	// Loan is nil for a car owned outright.
	Loan *CarLoan
}

func (c *Car) Name() string { return "transport" }

func (c *Car) Validate() error {
	if c.PricePerGallon.IsNegative() || c.Insurance.IsNegative() || c.Maintenance.IsNegative() {
		return fmt.Errorf("%w: negative car cost", ErrInvalidInput)
	}
	if c.MilesPerMonth < 0 {
		return fmt.Errorf("%w: negative miles per month %v", ErrInvalidInput, c.MilesPerMonth)
	}
	if c.MilesPerMonth > 0 && c.MilesPerGallon < 1 {
		return fmt.Errorf("%w: miles per gallon %v must be at least 1", ErrInvalidInput, c.MilesPerGallon)
	}
	if c.Loan != nil {
		if !c.Loan.Principal.IsPositive() {
			return fmt.Errorf("%w: car loan principal %s must be positive", ErrInvalidInput, c.Loan.Principal)
		}
		if c.Loan.TermMonths <= 0 {
			return fmt.Errorf("%w: car loan term %d must be positive", ErrInvalidInput, c.Loan.TermMonths)
		}
		if c.Loan.AnnualRate < 0 {
			return fmt.Errorf("%w: negative car loan rate %v", ErrInvalidInput, c.Loan.AnnualRate)
		}
	}
	return nil
}

func (c *Car) Compute(tl *Timeline, rates *Resolver) (*CashflowSeries, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	fuel, err := rates.Resolve(orDefault(c.FuelGrowth, DefaultFuelGrowth))
	if err != nil {
		return nil, fmt.Errorf("resolving fuel growth: %w", err)
	}
	insurance, err := rates.Resolve(orDefault(c.InsuranceGrowth, DefaultInsuranceGrowth))
	if err != nil {
		return nil, fmt.Errorf("resolving car insurance growth: %w", err)
	}
	maintenance, err := rates.Resolve(orDefault(c.MaintenanceGrowth, DefaultMaintenanceGrowth))
	if err != nil {
		return nil, fmt.Errorf("resolving maintenance growth: %w", err)
	}

	var monthlyFuel Money
	if c.MilesPerMonth > 0 {
		monthlyFuel = c.PricePerGallon.Mul(Q(c.MilesPerMonth)).Div(Q(c.MilesPerGallon))
	}

	months := Q(tl.Granularity().Months())
	series := NewCashflowSeries(c.Name(), tl)
	for p := range tl.Periods() {
		series.Add("fuel", p, monthlyFuel.Mul(fuel.Factor(p)).Mul(months).Neg())
		series.Add("insurance", p, c.Insurance.Mul(insurance.Factor(p)).Mul(months).Neg())
		series.Add("maintenance", p, c.Maintenance.Mul(maintenance.Factor(p)).Mul(months).Neg())
	}
	if c.Loan != nil {
		sched, err := Amortize(c.Loan.Principal, c.Loan.AnnualRate, c.Loan.TermMonths, Money{})
		if err != nil {
			return nil, fmt.Errorf("amortizing car loan: %w", err)
		}
		sched.addTo(series, tl, "loan_interest", "loan_principal")
	}
	return series, nil
}

// Transit models the public-transport variant of the transport domain.
type Transit struct {
	// MonthlyPass is the pass price at period 0.
	MonthlyPass Money
	FareGrowth  RateSpec
}

func (t *Transit) Name() string { return "transport" }

func (t *Transit) Validate() error {
	if !t.MonthlyPass.IsPositive() {
		return fmt.Errorf("%w: monthly pass %s must be positive", ErrInvalidInput, t.MonthlyPass)
	}
	return nil
}

func (t *Transit) Compute(tl *Timeline, rates *Resolver) (*CashflowSeries, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	fare, err := rates.Resolve(orDefault(t.FareGrowth, DefaultFareGrowth))
	if err != nil {
		return nil, fmt.Errorf("resolving fare growth: %w", err)
	}
	months := Q(tl.Granularity().Months())
	series := NewCashflowSeries(t.Name(), tl)
	for p := range tl.Periods() {
		series.Add("transit_pass", p, t.MonthlyPass.Mul(fare.Factor(p)).Mul(months).Neg())
	}
	return series, nil
}
