package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifecast/lifecast"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	return s
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	p := &lifecast.Profile{ID: "alice", GrossAnnualIncome: 85000}
	p.Housing.Kind = lifecast.HousingRent
	p.Housing.MonthlyRent = 1800

	require.NoError(t, s.Save(p))

	got, err := s.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.ID)
	assert.Equal(t, lifecast.HousingRent, got.Housing.Kind)
	assert.Equal(t, 1800.0, got.Housing.MonthlyRent)
	assert.Equal(t, 85000.0, got.GrossAnnualIncome)
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)

	p := &lifecast.Profile{ID: "bob", GrossAnnualIncome: 60000}
	require.NoError(t, s.Save(p))
	p.GrossAnnualIncome = 65000
	require.NoError(t, s.Save(p))

	got, err := s.Load("bob")
	require.NoError(t, err)
	assert.Equal(t, 65000.0, got.GrossAnnualIncome)
}

func TestLoadMissingProfile(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadCorruptProfile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.dir, "bad.json"), []byte("{not json"), 0o644))

	_, err := s.Load("bad")
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestSanitizedIDs(t *testing.T) {
	s := newTestStore(t)

	p := &lifecast.Profile{ID: "../../etc/passwd"}
	require.NoError(t, s.Save(p))

	ids, err := s.List()
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.NotContains(t, ids[0], "/")
}

func TestList(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(&lifecast.Profile{ID: "a"}))
	require.NoError(t, s.Save(&lifecast.Profile{ID: "b"}))

	ids, err := s.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}
