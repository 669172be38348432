package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFacts_OneFactPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facts.txt")
	require.NoError(t, os.WriteFile(path, []byte("T. rex had tiny arms.\r\n\nIt lived in North America.\n   \nIt could not chew.\n"), 0o644))

	facts, err := LoadFacts(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"T. rex had tiny arms.",
		"It lived in North America.",
		"It could not chew.",
	}, facts)
}

func TestLoadFacts_BlankFileHasNoFacts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facts.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n \n\t\n"), 0o644))

	_, err := LoadFacts(path)
	require.ErrorIs(t, err, ErrNoFacts)
}

func TestLoadFacts_MissingFile(t *testing.T) {
	_, err := LoadFacts(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestRandomFact_ReturnsEveryFact draws repeatedly until every fact has been
// seen, which a uniform choice does long before the draw limit.
func TestRandomFact_ReturnsEveryFact(t *testing.T) {
	facts := []string{"a", "b", "c", "d", "e"}
	rng := newTestRand()
	seen := make(map[string]bool)
	for i := 0; i < 1000 && len(seen) < len(facts); i++ {
		f := RandomFact(rng, facts)
		require.Contains(t, facts, f)
		seen[f] = true
	}
	assert.Len(t, seen, len(facts))
}

func TestRoarTablePick_ReturnsKnownRoars(t *testing.T) {
	cfg := DefaultConfig()
	table := cfg.roarTable()
	require.Len(t, table, 8)

	known := map[string]time.Duration{
		filepath.Join("Sounds", "T_rex1.ogg"): 6500 * time.Millisecond,
		filepath.Join("Sounds", "T_rex2.ogg"): 3 * time.Second,
		filepath.Join("Sounds", "T_rex3.ogg"): 4 * time.Second,
		filepath.Join("Sounds", "T_rex4.ogg"): 5500 * time.Millisecond,
		filepath.Join("Sounds", "T_rex5.ogg"): 4 * time.Second,
		filepath.Join("Sounds", "T_rex6.ogg"): 6 * time.Second,
		filepath.Join("Sounds", "T_rex7.ogg"): 4500 * time.Millisecond,
		filepath.Join("Sounds", "T_rex8.ogg"): 4 * time.Second,
	}

	rng := newTestRand()
	counts := make(map[string]int)
	const draws = 8000
	for i := 0; i < draws; i++ {
		r := table.Pick(rng)
		length, ok := known[r.Path]
		require.True(t, ok, "unexpected roar %s", r.Path)
		assert.Equal(t, length, r.Length)
		counts[r.Path]++
	}
	require.Len(t, counts, 8)
	// Each roar should land near draws/8; allow a generous margin.
	for path, n := range counts {
		assert.InDelta(t, draws/8, n, 200, "roar %s drawn %d times", path, n)
	}
}
