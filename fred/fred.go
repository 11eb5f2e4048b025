// Package fred fetches observation series (CPI, benchmark rates) from the
// FRED API and turns them into dated histories the rate resolver can align
// to a timeline. It is the pre-fetch boundary: the engine itself never makes
// a network call, a caller fetches here first and hands the series in.
package fred

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"

	"github.com/lifecast/lifecast/date"
)

const baseURL = "https://api.stlouisfed.org/fred/series/observations"

// Client fetches observation series over HTTP.
type Client struct {
	http   *http.Client
	apiKey string
	log    zerolog.Logger
}

// NewClient returns a client using the given API key.
func NewClient(httpClient *http.Client, apiKey string, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{http: httpClient, apiKey: apiKey, log: log}
}

// Fetch downloads the observations of a series over a date range and returns
// them as a history of float64 values, in the units FRED quotes the series
// in. Observations with a missing value (FRED reports those as ".") are
// skipped.
//
// The engine consumes decimal annual rates, not raw quotes: use FetchRate
// for percent-quoted series and YearOverYear for index-level series.
func (c *Client) Fetch(seriesID string, rng date.Range) (*date.History[float64], error) {
	return c.fetchFrom(baseURL, seriesID, rng)
}

// FetchRate downloads a percent-quoted series (MORTGAGE30US, DGS10) and
// converts its observations into decimal annual rates: a 6.72 quote becomes
// 0.0672.
func (c *Client) FetchRate(seriesID string, rng date.Range) (*date.History[float64], error) {
	history, err := c.Fetch(seriesID, rng)
	if err != nil {
		return nil, err
	}
	return percentToDecimal(history), nil
}

// percentToDecimal rescales a percent-quoted history to decimal rates.
func percentToDecimal(quotes *date.History[float64]) *date.History[float64] {
	rates := &date.History[float64]{}
	for on, v := range quotes.Values() {
		rates.Append(on, v/100)
	}
	return rates
}

// YearOverYear converts an index-level series (CPIAUCSL and the like) into
// the annual growth observed at each date: the level divided by the level
// twelve months earlier, minus one. Observations without a usable level a
// year back are dropped, so the result starts one year into the input; an
// input too short to yield any rate is an error.
func YearOverYear(index *date.History[float64]) (*date.History[float64], error) {
	rates := &date.History[float64]{}
	for on, v := range index.Values() {
		prior, ok := index.ValueAsOf(on.AddMonth(-12))
		if !ok || prior == 0 {
			continue
		}
		rates.Append(on, v/prior-1)
	}
	if rates.Len() == 0 {
		return nil, fmt.Errorf("index series too short for year-over-year rates")
	}
	return rates, nil
}

func (c *Client) fetchFrom(base, seriesID string, rng date.Range) (*date.History[float64], error) {
	q := url.Values{}
	q.Set("series_id", seriesID)
	q.Set("api_key", c.apiKey)
	q.Set("file_type", "json")
	q.Set("observation_start", rng.From.String())
	q.Set("observation_end", rng.To.String())
	addr := base + "?" + q.Encode()

	c.log.Debug().Str("series", seriesID).Stringer("from", rng.From).Stringer("to", rng.To).Msg("fetching observations")

	resp, err := c.http.Get(addr)
	if err != nil {
		return nil, fmt.Errorf("fetching series %q: %w", seriesID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching series %q: received status %s", seriesID, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response for series %q: %w", seriesID, err)
	}
	history, err := parseObservations(body)
	if err != nil {
		return nil, fmt.Errorf("parsing series %q: %w", seriesID, err)
	}
	c.log.Info().Str("series", seriesID).Int("observations", history.Len()).Msg("series fetched")
	return history, nil
}

// parseObservations extracts the observations array from a FRED JSON
// document into a history.
func parseObservations(body []byte) (*date.History[float64], error) {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	jval, err := jsonpath.Get("$.observations", jobj)
	if err != nil {
		return nil, fmt.Errorf("no observations in response: %w", err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("observations is not a list: %T", jval)
	}

	history := &date.History[float64]{}
	for _, item := range jlist {
		obs, ok := item.(map[string]any)
		if !ok {
			continue
		}
		dateStr, _ := obs["date"].(string)
		valueStr, _ := obs["value"].(string)
		if valueStr == "." {
			// FRED's marker for a missing observation.
			continue
		}
		on, err := date.Parse(dateStr)
		if err != nil {
			return nil, fmt.Errorf("bad observation date: %w", err)
		}
		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return nil, fmt.Errorf("bad observation value %q on %s: %w", valueStr, on, err)
		}
		history.Append(on, value)
	}
	return history, nil
}
