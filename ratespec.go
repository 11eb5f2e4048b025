package lifecast

import (
	"fmt"
	"math"
	"sort"

	"github.com/lifecast/lifecast/date"
	"github.com/shopspring/decimal"
)

// RateSpec is an abstract description of how a quantity grows over time.
// It resolves deterministically to exactly one periodic rate per timeline
// period. The closed set of kinds is FixedRate, SteppedRate and ExternalRate.
//
// Annual rates are expressed as decimals (0.03 is 3% per year) and converted
// to periodic rates with effective compounding: periodic = (1+annual)^(1/n)-1
// where n is the number of periods per year. This convention is applied
// uniformly to every growth rate of the engine. Loan note rates are the one
// exception, see Amortize.
type RateSpec interface {
	resolve(tl *Timeline) (*RateSeries, error)
}

// FixedRate grows a quantity at a constant annual rate over the whole horizon.
type FixedRate struct {
	Annual float64
}

// Fixed is a shorthand for a constant annual growth rate.
func Fixed(annual float64) *FixedRate { return &FixedRate{Annual: annual} }

func (r *FixedRate) resolve(tl *Timeline) (*RateSeries, error) {
	periodic, err := annualToPeriodic(r.Annual, tl.PerYear())
	if err != nil {
		return nil, err
	}
	rates := make([]decimal.Decimal, tl.Len())
	for i := range rates {
		rates[i] = periodic
	}
	return newRateSeries(rates)
}

// RateStep is one change point of a SteppedRate: the annual rate that takes
// effect at period From (inclusive) and holds until the next step or the
// horizon end.
type RateStep struct {
	From   Period
	Annual float64
}

// SteppedRate grows a quantity at an annual rate that changes at explicit
// periods. Steps must cover the horizon from period 0. When two steps share
// the same From period, the later-declared one wins.
type SteppedRate struct {
	Steps []RateStep
}

func (r *SteppedRate) resolve(tl *Timeline) (*RateSeries, error) {
	if len(r.Steps) == 0 {
		return nil, fmt.Errorf("%w: stepped rate has no steps", ErrInvalidInput)
	}
	steps := make([]RateStep, len(r.Steps))
	copy(steps, r.Steps)
	// Stable keeps declaration order among equal From periods, so the last
	// declared step naturally overwrites earlier ones below.
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].From < steps[j].From })
	if steps[0].From < 0 {
		return nil, fmt.Errorf("%w: negative step period %d", ErrInvalidInput, steps[0].From)
	}
	if steps[0].From != 0 {
		return nil, fmt.Errorf("%w: stepped rate must declare a rate at period 0, first step is at %d", ErrInvalidInput, steps[0].From)
	}
	rates := make([]decimal.Decimal, tl.Len())
	for _, step := range steps {
		if int(step.From) >= tl.Len() {
			// A change beyond the horizon never takes effect.
			continue
		}
		periodic, err := annualToPeriodic(step.Annual, tl.PerYear())
		if err != nil {
			return nil, err
		}
		for p := int(step.From); p < tl.Len(); p++ {
			rates[p] = periodic
		}
	}
	return newRateSeries(rates)
}

// ExternalRate aligns a pre-fetched external series of annual rates to the
// timeline. The engine never fetches the series itself; a provider does,
// strictly before the simulation runs.
//
// Observations are decimal annual rates: 0.03 means 3% per year. Providers
// convert their native units first (see fred.FetchRate and
// fred.YearOverYear); an observation of 1 or more is rejected as a raw
// percent or index quote.
//
// For each period, the observation on or before the period's last day
// applies. Periods with no usable observation fall back to Fallback, or fail
// wrapping ErrMissingRateData when no fallback is configured.
type ExternalRate struct {
	Series   *date.History[float64]
	Fallback *FixedRate
}

func (r *ExternalRate) resolve(tl *Timeline) (*RateSeries, error) {
	if r.Series == nil || r.Series.Len() == 0 {
		if r.Fallback != nil {
			return r.Fallback.resolve(tl)
		}
		return nil, fmt.Errorf("%w: external series is empty", ErrMissingRateData)
	}
	rates := make([]decimal.Decimal, tl.Len())
	for p := range tl.Periods() {
		annual, ok := r.Series.ValueAsOf(tl.Range(p).To)
		switch {
		case !ok && r.Fallback == nil:
			return nil, fmt.Errorf("%w: external series does not cover period %s", ErrMissingRateData, tl.Range(p).Identifier())
		case !ok:
			annual = r.Fallback.Annual
		case annual >= 1:
			return nil, fmt.Errorf("%w: observation %v for period %s is not a decimal annual rate", ErrInvalidInput, annual, tl.Range(p).Identifier())
		}
		periodic, err := annualToPeriodic(annual, tl.PerYear())
		if err != nil {
			return nil, err
		}
		rates[p] = periodic
	}
	return newRateSeries(rates)
}

// annualToPeriodic converts an effective annual rate to the equivalent
// periodic rate for n periods per year.
func annualToPeriodic(annual float64, n int) (decimal.Decimal, error) {
	if annual <= -1 {
		return decimal.Decimal{}, fmt.Errorf("%w: annual rate %v resolves to a non-positive growth factor", ErrInvalidInput, annual)
	}
	if n == 1 {
		return decimal.NewFromFloat(annual), nil
	}
	return decimal.NewFromFloat(math.Pow(1+annual, 1/float64(n)) - 1), nil
}
