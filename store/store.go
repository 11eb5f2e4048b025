// Package store persists user profiles as JSON files, one per profile id.
// Writes go to a temp file first and are swapped in with an atomic rename,
// so a crash mid-write never leaves a half-written profile behind.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lifecast/lifecast"
)

var (
	// ErrNotFound reports a profile id with no stored file.
	ErrNotFound = errors.New("profile not found")
	// ErrCorrupt reports a stored file that does not decode into a profile.
	ErrCorrupt = errors.New("profile corrupt")
)

// Store reads and writes profiles under a single directory.
type Store struct {
	dir string
	log zerolog.Logger
}

// New returns a store rooted at dir, creating it if needed.
func New(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating profile directory %q: %w", dir, err)
	}
	return &Store{dir: dir, log: log}, nil
}

// sanitize keeps profile ids usable as file names: anything outside
// [a-zA-Z0-9_-] becomes an underscore.
func sanitize(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, id)
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, sanitize(id)+".json")
}

// Save writes the profile, replacing any previous version atomically.
func (s *Store) Save(p *lifecast.Profile) error {
	if p.ID == "" {
		return fmt.Errorf("%w: profile without an id", lifecast.ErrInvalidInput)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profile %q: %w", p.ID, err)
	}

	tmp, err := os.CreateTemp(s.dir, "profile-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing profile %q: %w", p.ID, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(p.ID)); err != nil {
		return fmt.Errorf("replacing profile %q: %w", p.ID, err)
	}
	s.log.Debug().Str("profile", p.ID).Msg("profile saved")
	return nil
}

// Load reads the profile with the given id.
func (s *Store) Load(id string) (*lifecast.Profile, error) {
	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading profile %q: %w", id, err)
	}
	var p lifecast.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCorrupt, id, err)
	}
	if p.ID == "" {
		return nil, fmt.Errorf("%w: %q: missing id", ErrCorrupt, id)
	}
	return &p, nil
}

// List returns the ids of all stored profiles, sorted by file name.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	return ids, nil
}
