package main

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestLogger returns a logger writing into a buffer.
func newTestLogger() (*EventLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return newEventLogger(&buf), &buf
}

// newTestRand returns a deterministic random source.
func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// writeAssets lays out a facts file and eight short sound files under a
// temporary directory and returns a config pointing at them.
func writeAssets(t *testing.T, facts string) Config {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.FactsFile = filepath.Join(dir, "Files", "dinosaur_facts.txt")
	cfg.SoundsDir = filepath.Join(dir, "Sounds")
	cfg.LogFile = filepath.Join(dir, "Files", "t_rex.log")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.FactsFile), 0o755))
	require.NoError(t, os.MkdirAll(cfg.SoundsDir, 0o755))
	require.NoError(t, os.WriteFile(cfg.FactsFile, []byte(facts), 0o644))
	for i := 1; i <= 8; i++ {
		name := filepath.Join(cfg.SoundsDir, fmt.Sprintf("T_rex%d.ogg", i))
		require.NoError(t, os.WriteFile(name, []byte("OggS"), 0o644))
	}
	return cfg
}
