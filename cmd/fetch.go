package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/lifecast/lifecast/date"
	"github.com/lifecast/lifecast/fred"
)

// fetchCmd downloads an observed rate series from FRED and saves it in the
// format that 'simulate -deflate-series' reads back.
type fetchCmd struct {
	series string
	kind   string
	from   string
	to     string
	out    string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download a rate series from FRED" }
func (*fetchCmd) Usage() string {
	return `lc fetch -series <id> -o <file.json> [-kind rate|index] [-from <date>] [-to <date>]

  Download a FRED series and save it as a JSON object of date to decimal
  annual rate. Percent-quoted series (MORTGAGE30US, DGS10) use -kind rate,
  the default; index-level series (CPIAUCSL) use -kind index and are
  converted to year-over-year rates. The API key is read from the
  FRED_API_KEY environment variable, optionally via a .env file.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.series, "series", "", "FRED series id to download.")
	f.StringVar(&c.kind, "kind", "rate", "Series quoting: 'rate' for percent quotes, 'index' for index levels.")
	f.StringVar(&c.from, "from", "", "First observation date. Defaults to ten years ago.")
	f.StringVar(&c.to, "to", "", "Last observation date. Defaults to today.")
	f.StringVar(&c.out, "o", "", "Path of the JSON file to write.")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.fetch(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *fetchCmd) fetch() error {
	if c.series == "" {
		return fmt.Errorf("missing -series")
	}
	if c.out == "" {
		return fmt.Errorf("missing -o")
	}

	// .env is optional, the variable may come from the environment itself.
	godotenv.Load()
	apiKey := os.Getenv("FRED_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("FRED_API_KEY is not set")
	}

	to := date.Today()
	if c.to != "" {
		var err error
		if to, err = date.Parse(c.to); err != nil {
			return err
		}
	}
	from := to.AddMonth(-120)
	if c.from != "" {
		var err error
		if from, err = date.Parse(c.from); err != nil {
			return err
		}
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	client := fred.NewClient(&http.Client{Timeout: 30 * time.Second}, apiKey, log)
	rng := date.Range{From: from, To: to}

	var history *date.History[float64]
	var err error
	switch c.kind {
	case "rate":
		history, err = client.FetchRate(c.series, rng)
	case "index":
		history, err = client.Fetch(c.series, rng)
		if err == nil {
			history, err = fred.YearOverYear(history)
		}
	default:
		return fmt.Errorf("unknown -kind %q, want rate or index", c.kind)
	}
	if err != nil {
		return err
	}
	if err := saveSeries(c.out, history); err != nil {
		return err
	}
	fmt.Printf("saved %d observations of %s to %s\n", history.Len(), c.series, c.out)
	return nil
}
