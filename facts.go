package main

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
)

// ErrNoFacts is returned when the facts file holds nothing but blank lines.
var ErrNoFacts = errors.New("no facts found")

// LoadFacts reads a facts file and returns one fact per non-blank line.
func LoadFacts(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var facts []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		facts = append(facts, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(facts) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoFacts)
	}
	return facts, nil
}

// RandomFact picks one fact uniformly at random.
func RandomFact(rng *rand.Rand, facts []string) string {
	return facts[rng.IntN(len(facts))]
}
