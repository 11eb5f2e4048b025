package lifecast

import (
	"errors"
	"fmt"
)

// Validate runs every pre-flight check on the scenario without computing any
// series: timeline bounds, module-level input sanity and module-name
// uniqueness. It gates Run, and collects all failures rather than stopping
// at the first, so a caller can surface them at once.
func (s *Scenario) Validate() error {
	var errs error
	if s.To.Before(s.From) {
		errs = errors.Join(errs, fmt.Errorf("%w: end %s precedes start %s", ErrInvalidRange, s.To, s.From))
	}
	if len(s.Modules) == 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: scenario %q has no modules", ErrInvalidInput, s.Name))
	}
	names := make(map[string]bool, len(s.Modules))
	for _, m := range s.Modules {
		if names[m.Name()] {
			errs = errors.Join(errs, fmt.Errorf("%w: duplicate module %q", ErrInvalidInput, m.Name()))
		}
		names[m.Name()] = true
		if err := m.Validate(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("module %q: %w", m.Name(), err))
		}
	}
	return errs
}
