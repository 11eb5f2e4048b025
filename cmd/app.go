// Package cmd implements the CLI application to project personal finances.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/lifecast/lifecast/date"
	"github.com/lifecast/lifecast/store"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&profileCmd{}, "profiles")

	c.Register(&simulateCmd{}, "simulation")
	c.Register(&compareCmd{}, "simulation")

	c.Register(&fetchCmd{}, "rates")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var profileDir = flag.String("profile-dir", ".lifecast", "Path to the folder holding user profiles")

// openStore opens the profile store at the configured directory.
func openStore() (*store.Store, error) {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return store.New(*profileDir, log)
}

// saveSeries persists a fetched rate series as a JSON object of date to value.
func saveSeries(path string, history *date.History[float64]) error {
	obj := make(map[string]float64, history.Len())
	for on, v := range history.Values() {
		obj[on.String()] = v
	}
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// loadSeries reads a series saved by saveSeries back into a history.
func loadSeries(path string) (*date.History[float64], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var obj map[string]float64
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("decoding series %q: %w", path, err)
	}
	history := &date.History[float64]{}
	for key, v := range obj {
		on, err := date.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("bad date in series %q: %w", path, err)
		}
		history.Append(on, v)
	}
	return history, nil
}
