package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/lifecast/lifecast"
	"github.com/lifecast/lifecast/date"
)

// compareCmd holds the flags for the 'compare' subcommand. It answers the
// rent-or-buy question: the stored profile as-is against a variant where the
// housing module is replaced by a mortgage.
type compareCmd struct {
	profile string
	from    string
	to      string

	principal float64
	rate      float64
	termYears int
	tax       float64
	insurance float64
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare a profile against a buy-instead-of-rent variant" }
func (*compareCmd) Usage() string {
	return `lc compare -profile <id> -principal <amount> -rate <annual> -term <years> [-from <date>] [-to <date>]

  Run the stored profile and a variant where housing is a mortgage, and
  report the break-even period between the two.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.profile, "profile", "", "Profile id to compare.")
	f.StringVar(&c.from, "from", "", "First month of the horizon. Defaults to today.")
	f.StringVar(&c.to, "to", "", "Last month of the horizon. Defaults to the retirement preset.")
	f.Float64Var(&c.principal, "principal", 0, "Mortgage principal of the buy variant.")
	f.Float64Var(&c.rate, "rate", 0, "Annual nominal mortgage rate, as a decimal.")
	f.IntVar(&c.termYears, "term", 30, "Mortgage term in years.")
	f.Float64Var(&c.tax, "tax", 0, "Monthly property tax of the buy variant.")
	f.Float64Var(&c.insurance, "insurance", 0, "Monthly homeowners insurance of the buy variant.")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	comparison, err := c.compare()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	horizon := comparison.A.Timeline()
	last := lifecast.Period(horizon.Len() - 1)
	fmt.Printf("cumulative cost buying:  %s\n", comparison.A.CumulativeCost(last))
	fmt.Printf("cumulative cost renting: %s\n", comparison.B.CumulativeCost(last))
	if comparison.HasBreakEven {
		fmt.Printf("buying breaks even at %s\n", horizon.Range(comparison.BreakEven).Identifier())
	} else {
		fmt.Println("no break-even within horizon")
	}
	return subcommands.ExitSuccess
}

func (c *compareCmd) compare() (*lifecast.Comparison, error) {
	if c.profile == "" {
		return nil, fmt.Errorf("missing -profile")
	}
	if c.principal <= 0 {
		return nil, fmt.Errorf("missing -principal")
	}
	profiles, err := openStore()
	if err != nil {
		return nil, err
	}
	profile, err := profiles.Load(c.profile)
	if err != nil {
		return nil, err
	}

	from := date.Today()
	if c.from != "" {
		if from, err = date.Parse(c.from); err != nil {
			return nil, err
		}
	}
	var to date.Date
	if c.to != "" {
		if to, err = date.Parse(c.to); err != nil {
			return nil, err
		}
	} else if to, err = profile.HorizonTo(lifecast.RetirementAge); err != nil {
		return nil, err
	}

	rent, err := profile.Scenario(from, to)
	if err != nil {
		return nil, err
	}
	rent.Name = c.profile + " (current)"

	buy, err := profile.Scenario(from, to)
	if err != nil {
		return nil, err
	}
	buy.Name = c.profile + " (buy)"
	mortgage := &lifecast.Mortgage{
		Principal:     lifecast.USD(c.principal),
		AnnualRate:    c.rate,
		TermMonths:    12 * c.termYears,
		PropertyTax:   lifecast.USD(c.tax),
		HomeInsurance: lifecast.USD(c.insurance),
	}
	replaced := false
	for i, m := range buy.Modules {
		if m.Name() == mortgage.Name() {
			buy.Modules[i] = mortgage
			replaced = true
		}
	}
	if !replaced {
		buy.Modules = append(buy.Modules, mortgage)
	}

	// The buy variant breaks even when its cumulative cost drops to the
	// renting baseline, so it goes first.
	return lifecast.Compare(buy, rent)
}
