package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/lifecast/lifecast"
	"github.com/lifecast/lifecast/date"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	profile       string
	from          string
	to            string
	end           string
	out           string
	deflateRate   float64
	deflateSeries string
	burnWindow    int
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "project a profile's finances over a horizon" }
func (*simulateCmd) Usage() string {
	return `lc simulate -profile <id> [-from <date>] [-to <date> | -end <retirement|lifespan>] [-o <file>]

  Run the projection for a stored profile and print a period summary.
  With -o, the full ledger is written to the file as JSONL.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.profile, "profile", "", "Profile id to simulate.")
	f.StringVar(&c.from, "from", "", "First month of the horizon. Defaults to today.")
	f.StringVar(&c.to, "to", "", "Last month of the horizon. Overrides -end.")
	f.StringVar(&c.end, "end", "retirement", "Horizon preset when -to is not given (retirement, lifespan).")
	f.StringVar(&c.out, "o", "", "Write the full ledger to this file as JSONL.")
	f.Float64Var(&c.deflateRate, "deflate", 0, "Annual inflation rate for real-dollar display (0 keeps nominal).")
	f.StringVar(&c.deflateSeries, "deflate-series", "", "Rate series file (from 'lc fetch') for real-dollar display.")
	f.IntVar(&c.burnWindow, "burn-window", 12, "Trailing window, in periods, for the burn rate.")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scenario, err := c.scenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, err := scenario.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := c.render(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.out != "" {
		file, err := os.Create(c.out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		if err := lifecast.EncodeLedger(file, ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

// scenario loads the profile and builds the scenario from the flags.
func (c *simulateCmd) scenario() (*lifecast.Scenario, error) {
	if c.profile == "" {
		return nil, fmt.Errorf("missing -profile")
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
	switch {
	case c.to != "":
		if to, err = date.Parse(c.to); err != nil {
			return nil, err
		}
	case c.end == "lifespan":
		if to, err = profile.HorizonTo(lifecast.LifespanAge); err != nil {
			return nil, err
		}
	default:
		if to, err = profile.HorizonTo(lifecast.RetirementAge); err != nil {
			return nil, err
		}
	}
	return profile.Scenario(from, to)
}

// deflator builds the optional real-dollar view from the flags.
func (c *simulateCmd) deflator(ledger *lifecast.UnifiedLedger) (*lifecast.Deflator, error) {
	switch {
	case c.deflateSeries != "":
		history, err := loadSeries(c.deflateSeries)
		if err != nil {
			return nil, err
		}
		spec := &lifecast.ExternalRate{Series: history}
		return lifecast.NewDeflator(ledger.Timeline(), spec, 0)
	case c.deflateRate != 0:
		return lifecast.NewDeflator(ledger.Timeline(), lifecast.Fixed(c.deflateRate), 0)
	default:
		return nil, nil
	}
}

// render prints a yearly summary of the ledger with net, cumulative and burn
// rate columns, in real dollars when a deflator is configured.
func (c *simulateCmd) render(ledger *lifecast.UnifiedLedger) error {
	deflator, err := c.deflator(ledger)
	if err != nil {
		return err
	}
	burn, err := lifecast.BurnRate(ledger, c.burnWindow)
	if err != nil {
		return err
	}
	burnAt := make(map[lifecast.Period]lifecast.Money, ledger.Len())
	for p, avg := range burn {
		burnAt[p] = avg
	}

	var realRows []lifecast.LedgerRow
	if deflator != nil {
		realRows = deflator.RealRows(ledger)
	}

	tl := ledger.Timeline()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "period\tnet\tcumulative\tburn rate\tsavings")
	step := tl.PerYear()
	for p := range tl.Periods() {
		if int(p)%step != 0 && int(p) != tl.Len()-1 {
			continue
		}
		net, cum, avg := ledger.Net(p), ledger.Cumulative(p), burnAt[p]
		if deflator != nil {
			net, avg = realRows[p].Net, deflator.Real(avg, p)
			cum = realRows[p].Cumulative
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", tl.Range(p).Identifier(), net.SignedString(), cum.SignedString(), avg, savingsRate(ledger, p))
	}
	return w.Flush()
}

// savingsRate is the period net as a share of gross income, or "-" for
// profiles without an income module.
func savingsRate(ledger *lifecast.UnifiedLedger, p lifecast.Period) string {
	gross := ledger.Row(p).Components["taxes.gross_income"]
	if !gross.IsPositive() {
		return "-"
	}
	return lifecast.Percent(100 * ledger.Net(p).AsFloat() / gross.AsFloat()).SignedString()
}
