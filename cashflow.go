package lifecast

// Module is the capability contract every domain cashflow model implements.
// The aggregator depends only on this contract, never on concrete module
// types, so new financial domains plug in without touching aggregation.
//
// Compute must be deterministic: same inputs, same timeline, same output,
// with no clock reads and no randomness. It fails eagerly, wrapping
// ErrInvalidInput, when the module's inputs violate its preconditions.
type Module interface {
	// Name identifies the module's domain, e.g. "housing". It prefixes every
	// component key in the unified ledger.
	Name() string

	// Validate checks the module inputs without running the simulation.
	// Compute performs the same checks eagerly.
	Validate() error

	// Compute produces the module's cashflow series over exactly the
	// timeline's periods, resolving its growth specs through the shared
	// resolver.
	Compute(tl *Timeline, rates *Resolver) (*CashflowSeries, error)
}

// CashflowSeries is the per-period output of one domain module: for every
// timeline period, a set of named signed amounts (inflow positive, outflow
// negative). Components a module never touches in a period are zero, so a
// paid-off loan is naturally zero-filled to the horizon end.
//
// A series is produced once by a module invocation and never mutated after.
type CashflowSeries struct {
	module string
	order  []string
	comps  map[string][]Money
	length int
}

// NewCashflowSeries returns an empty series for a module, with its domain
// fixed to the timeline's periods.
func NewCashflowSeries(module string, tl *Timeline) *CashflowSeries {
	return &CashflowSeries{
		module: module,
		comps:  make(map[string][]Money),
		length: tl.Len(),
	}
}

// Module returns the name of the module that produced the series.
func (s *CashflowSeries) Module() string { return s.module }

// Len returns the number of periods the series covers.
func (s *CashflowSeries) Len() int { return s.length }

// Components returns the component names in the order they were first added.
func (s *CashflowSeries) Components() []string { return s.order }

// Add accumulates amount into the named component at period p.
func (s *CashflowSeries) Add(component string, p Period, amount Money) {
	values, ok := s.comps[component]
	if !ok {
		values = make([]Money, s.length)
		s.comps[component] = values
		s.order = append(s.order, component)
	}
	values[p] = values[p].Add(amount)
}

// At returns the amount of the named component at period p.
func (s *CashflowSeries) At(component string, p Period) Money {
	values, ok := s.comps[component]
	if !ok {
		return Money{}
	}
	return values[p]
}

// Net returns the signed sum of all components at period p.
func (s *CashflowSeries) Net(p Period) Money {
	var net Money
	for _, component := range s.order {
		net = net.Add(s.comps[component][p])
	}
	return net
}
