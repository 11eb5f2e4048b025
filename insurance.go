package lifecast

import "fmt"

// HealthPlan is a tier of health coverage with its own base premium.
type HealthPlan string

const (
	PlanBronze HealthPlan = "bronze"
	PlanSilver HealthPlan = "silver"
	PlanGold   HealthPlan = "gold"
)

// DefaultHealthPremiums is the base monthly premium per plan tier, used when
// a HealthInsurance module carries no custom premium table.
var DefaultHealthPremiums = map[HealthPlan]Money{
	PlanBronze: USD(320),
	PlanSilver: USD(450),
	PlanGold:   USD(600),
}

// DefaultPremiumGrowth is the annual premium growth used when none is given.
var DefaultPremiumGrowth = Fixed(0.06)

// HealthInsurance models the insurance domain: a per-period premium picked
// from a tiered plan table and growing under its own spec.
type HealthInsurance struct {
	Plan HealthPlan
	// Premiums overrides DefaultHealthPremiums when non-nil.
	Premiums      map[HealthPlan]Money
	PremiumGrowth RateSpec
}

func (h *HealthInsurance) Name() string { return "insurance" }

func (h *HealthInsurance) premium() (Money, error) {
	table := h.Premiums
	if table == nil {
		table = DefaultHealthPremiums
	}
	premium, ok := table[h.Plan]
	if !ok {
		return Money{}, fmt.Errorf("%w: unknown health plan %q", ErrInvalidInput, h.Plan)
	}
	return premium, nil
}

func (h *HealthInsurance) Validate() error {
	premium, err := h.premium()
	if err != nil {
		return err
	}
	if !premium.IsPositive() {
		return fmt.Errorf("%w: premium %s for plan %q must be positive", ErrInvalidInput, premium, h.Plan)
	}
	return nil
}

func (h *HealthInsurance) Compute(tl *Timeline, rates *Resolver) (*CashflowSeries, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	premium, _ := h.premium()
	growth, err := rates.Resolve(orDefault(h.PremiumGrowth, DefaultPremiumGrowth))
	if err != nil {
		return nil, fmt.Errorf("resolving premium growth: %w", err)
	}
	months := Q(tl.Granularity().Months())
	series := NewCashflowSeries(h.Name(), tl)
	for p := range tl.Periods() {
		series.Add("health_premium", p, premium.Mul(growth.Factor(p)).Mul(months).Neg())
	}
	return series, nil
}
