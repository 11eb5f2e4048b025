package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/lifecast/lifecast"
)

// profileCmd manages the stored profiles: import, show, list.
type profileCmd struct {
	importPath string
	show       string
	list       bool
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "import, show or list stored profiles" }
func (*profileCmd) Usage() string {
	return `lc profile [-import <file.json>] [-show <id>] [-list]

  Import a profile from a JSON file, print a stored profile, or list all
  stored profile ids.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.importPath, "import", "", "Path to a profile JSON file to import into the store.")
	f.StringVar(&c.show, "show", "", "Id of a stored profile to print.")
	f.BoolVar(&c.list, "list", false, "List the ids of all stored profiles.")
}

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *profileCmd) run() error {
	profiles, err := openStore()
	if err != nil {
		return err
	}
	switch {
	case c.importPath != "":
		data, err := os.ReadFile(c.importPath)
		if err != nil {
			return err
		}
		var profile lifecast.Profile
		if err := json.Unmarshal(data, &profile); err != nil {
			return fmt.Errorf("decoding profile %q: %w", c.importPath, err)
		}
		if profile.ID == "" {
			return fmt.Errorf("profile %q has no id", c.importPath)
		}
		if err := profiles.Save(&profile); err != nil {
			return err
		}
		fmt.Printf("imported profile %q\n", profile.ID)
		return nil

	case c.show != "":
		profile, err := profiles.Load(c.show)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil

	case c.list:
		ids, err := profiles.List()
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	}
	return fmt.Errorf("one of -import, -show or -list is required")
}
