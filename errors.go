package lifecast

import "errors"

// Sentinel errors raised by the projection engine. They are always wrapped
// with context by the failing component, so callers test them with errors.Is.
var (
	// ErrInvalidRange reports timeline bounds that cannot produce any period.
	ErrInvalidRange = errors.New("invalid timeline range")

	// ErrInvalidInput reports a domain input that violates a module's preconditions.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingRateData reports an external rate series that does not cover
	// the timeline and has no configured fallback.
	ErrMissingRateData = errors.New("missing rate data")

	// ErrMisalignedSeries reports a cashflow series whose domain does not
	// match the simulation timeline.
	ErrMisalignedSeries = errors.New("misaligned cashflow series")
)
