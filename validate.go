package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyFile is returned when the facts file has no content at all.
var ErrEmptyFile = errors.New("file is empty")

// PreflightError reports which startup check failed and the files that
// caused it.
type PreflightError struct {
	Step  string   // "file check", "permission check", "empty file check" or "load"
	Files []string // offending files, in the order they were checked
	Err   error
}

func (e *PreflightError) Error() string {
	msg := fmt.Sprintf("%s failed for %s", e.Step, strings.Join(e.Files, ", "))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PreflightError) Unwrap() error { return e.Err }

// requiredFiles lists the facts file followed by every distinct sound file.
func requiredFiles(cfg Config) []string {
	files := []string{cfg.FactsFile}
	seen := map[string]bool{cfg.FactsFile: true}
	for _, r := range cfg.roarTable() {
		if !seen[r.Path] {
			seen[r.Path] = true
			files = append(files, r.Path)
		}
	}
	return files
}

// Preflight runs the startup checks in order and returns the loaded facts.
// Every file is checked before a step fails, so the log names all missing or
// unreadable files at once.
func Preflight(cfg Config, logger *EventLogger) ([]string, error) {
	files := requiredFiles(cfg)
	if err := checkFiles(files, logger); err != nil {
		return nil, err
	}
	if err := checkPermissions(files, logger); err != nil {
		return nil, err
	}
	if err := checkNotEmpty(cfg.FactsFile, logger); err != nil {
		return nil, err
	}
	facts, err := createList(cfg.FactsFile, logger)
	if err != nil {
		return nil, err
	}
	logger.Log("Preliminary checks are complete. Starting program...")
	return facts, nil
}

// checkFiles verifies that each file exists and is a regular file.
func checkFiles(files []string, logger *EventLogger) error {
	logger.Log("FILE CHECK")
	var missing []string
	for _, path := range files {
		name, dir := filepath.Base(path), filepath.Dir(path)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			logger.Error("%s file was not found! Make sure that the %s file exists in the '%s' folder.", name, name, dir)
			missing = append(missing, path)
			continue
		}
		sum, err := fingerprint(path)
		if err != nil {
			// Readability is reported by the permission check.
			logger.Log("%s file was found!", name)
			continue
		}
		logger.Log("%s file was found! (blake2b-256 %s)", name, sum)
	}
	if len(missing) > 0 {
		return &PreflightError{Step: "file check", Files: missing, Err: os.ErrNotExist}
	}
	return nil
}

// checkPermissions verifies that the current user can read each file.
func checkPermissions(files []string, logger *EventLogger) error {
	logger.Log("PERMISSION CHECK")
	var denied []string
	for _, path := range files {
		name := filepath.Base(path)
		if canRead(path) {
			logger.Log("User has permission to read the %s file.", name)
			continue
		}
		logger.Error("User does not have permission to read the %s file.", name)
		denied = append(denied, path)
	}
	if len(denied) > 0 {
		return &PreflightError{Step: "permission check", Files: denied, Err: os.ErrPermission}
	}
	return nil
}

// checkNotEmpty fails if the file has a size of zero.
func checkNotEmpty(path string, logger *EventLogger) error {
	logger.Log("EMPTY FILE CHECK")
	name := filepath.Base(path)
	info, err := os.Stat(path)
	if err != nil {
		logger.Error("Could not stat the %s file: %v", name, err)
		return &PreflightError{Step: "empty file check", Files: []string{path}, Err: err}
	}
	if info.Size() == 0 {
		logger.Error("The %s file is empty.", name)
		return &PreflightError{Step: "empty file check", Files: []string{path}, Err: ErrEmptyFile}
	}
	logger.Log("The %s file is not empty.", name)
	return nil
}

// createList loads the facts file into memory.
func createList(path string, logger *EventLogger) ([]string, error) {
	logger.Log("CREATING LIST")
	logger.Log("Reading file: %s", path)
	facts, err := LoadFacts(path)
	if err != nil {
		logger.Error("The %s file could not be made into a list: %v", path, err)
		return nil, &PreflightError{Step: "load", Files: []string{path}, Err: err}
	}
	logger.Log("After reading %s, the list was successfully populated with %d facts.", path, len(facts))
	return facts, nil
}
