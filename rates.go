package lifecast

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateSeries is a RateSpec resolved against a timeline: exactly one periodic
// rate per period, in timeline order, with the cumulative growth factors
// precomputed. It is built once per simulation run and read-only thereafter.
type RateSeries struct {
	periodic []decimal.Decimal
	factors  []decimal.Decimal
}

// newRateSeries validates the periodic rates and precomputes the cumulative
// factors. The rate at period p is the growth from period p-1 to p, so
// factor(0) is always 1.
func newRateSeries(periodic []decimal.Decimal) (*RateSeries, error) {
	one := decimal.NewFromInt(1)
	factors := make([]decimal.Decimal, len(periodic))
	for p, r := range periodic {
		growth := one.Add(r)
		if !growth.IsPositive() {
			return nil, fmt.Errorf("%w: periodic rate %s at period %d resolves to a non-positive growth factor", ErrInvalidInput, r, p)
		}
		if p == 0 {
			factors[0] = one
			continue
		}
		factors[p] = factors[p-1].Mul(growth)
	}
	return &RateSeries{periodic: periodic, factors: factors}, nil
}

// Len returns the number of periods covered, always the timeline length.
func (rs *RateSeries) Len() int { return len(rs.periodic) }

// Rate returns the periodic rate applying to period p.
func (rs *RateSeries) Rate(p Period) Quantity { return Quantity{value: rs.periodic[p]} }

// Factor returns the cumulative growth factor from period 0 to period p.
// A base amount at period 0 is worth base.Mul(Factor(p)) at period p.
func (rs *RateSeries) Factor(p Period) Quantity { return Quantity{value: rs.factors[p]} }

// Resolver is the shared rate-resolution service of a simulation run. It
// turns abstract RateSpecs into RateSeries aligned to the run's timeline.
type Resolver struct {
	tl *Timeline
}

// NewResolver returns a resolver bound to the given timeline.
func NewResolver(tl *Timeline) *Resolver { return &Resolver{tl: tl} }

// Resolve resolves the spec into a series covering every timeline period
// exactly once. A nil spec is an error: modules substitute their documented
// defaults before resolving, the resolver never defaults silently.
func (r *Resolver) Resolve(spec RateSpec) (*RateSeries, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: nil rate spec", ErrInvalidInput)
	}
	return spec.resolve(r.tl)
}
