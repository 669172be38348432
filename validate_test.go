package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreflight_ReadableFactsPass(t *testing.T) {
	cfg := writeAssets(t, "Fact one.\nFact two.\n")
	logger, buf := newTestLogger()

	facts, err := Preflight(cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fact one.", "Fact two."}, facts)

	out := buf.String()
	assert.Contains(t, out, "FILE CHECK")
	assert.Contains(t, out, "PERMISSION CHECK")
	assert.Contains(t, out, "EMPTY FILE CHECK")
	assert.Contains(t, out, "T_rex8.ogg file was found! (blake2b-256 ")
	assert.Contains(t, out, "Preliminary checks are complete. Starting program...")
	assert.NotContains(t, out, "ERROR")
}

func TestPreflight_MissingSoundFileIsNamed(t *testing.T) {
	cfg := writeAssets(t, "Fact one.\n")
	missing := filepath.Join(cfg.SoundsDir, "T_rex3.ogg")
	require.NoError(t, os.Remove(missing))
	logger, buf := newTestLogger()

	facts, err := Preflight(cfg, logger)
	require.Error(t, err)
	assert.Nil(t, facts)

	var pe *PreflightError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "file check", pe.Step)
	assert.Equal(t, []string{missing}, pe.Files)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "T_rex3.ogg")

	assert.Contains(t, buf.String(), "ERROR: T_rex3.ogg file was not found!")
	// Later checks never run.
	assert.NotContains(t, buf.String(), "PERMISSION CHECK")
}

func TestPreflight_ReportsEveryMissingFile(t *testing.T) {
	cfg := writeAssets(t, "Fact one.\n")
	require.NoError(t, os.Remove(cfg.FactsFile))
	require.NoError(t, os.Remove(filepath.Join(cfg.SoundsDir, "T_rex1.ogg")))
	require.NoError(t, os.Remove(filepath.Join(cfg.SoundsDir, "T_rex8.ogg")))
	logger, buf := newTestLogger()

	_, err := Preflight(cfg, logger)
	var pe *PreflightError
	require.ErrorAs(t, err, &pe)
	assert.Len(t, pe.Files, 3)
	assert.Equal(t, cfg.FactsFile, pe.Files[0])
	assert.Contains(t, buf.String(), "dinosaur_facts.txt file was not found!")
}

func TestPreflight_DirectoryIsNotAFile(t *testing.T) {
	cfg := writeAssets(t, "Fact one.\n")
	path := filepath.Join(cfg.SoundsDir, "T_rex5.ogg")
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o755))
	logger, _ := newTestLogger()

	_, err := Preflight(cfg, logger)
	var pe *PreflightError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, []string{path}, pe.Files)
}

func TestPreflight_UnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any file")
	}
	cfg := writeAssets(t, "Fact one.\n")
	path := filepath.Join(cfg.SoundsDir, "T_rex2.ogg")
	require.NoError(t, os.Chmod(path, 0o000))
	t.Cleanup(func() { _ = os.Chmod(path, 0o644) })
	logger, buf := newTestLogger()

	_, err := Preflight(cfg, logger)
	var pe *PreflightError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "permission check", pe.Step)
	assert.Equal(t, []string{path}, pe.Files)
	assert.Contains(t, buf.String(), "User does not have permission to read the T_rex2.ogg file.")
}

func TestPreflight_EmptyFactsFile(t *testing.T) {
	cfg := writeAssets(t, "")
	logger, buf := newTestLogger()

	_, err := Preflight(cfg, logger)
	require.ErrorIs(t, err, ErrEmptyFile)
	assert.Contains(t, buf.String(), "The dinosaur_facts.txt file is empty.")
}

func TestPreflight_BlankFactsFile(t *testing.T) {
	cfg := writeAssets(t, "\n\n")
	logger, _ := newTestLogger()

	_, err := Preflight(cfg, logger)
	require.ErrorIs(t, err, ErrNoFacts)
	var pe *PreflightError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "load", pe.Step)
}

func TestRequiredFiles_FactsFirstNoDuplicates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Roars = append(cfg.Roars, RoarConfig{File: "T_rex1.ogg", Seconds: 1})

	files := requiredFiles(cfg)
	require.Len(t, files, 9)
	assert.Equal(t, cfg.FactsFile, files[0])
}
