package main

// This file defines pluggable audio players for the dinosaur's roar.

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// Player plays sound clips.  Play starts a clip and returns without waiting
// for it to finish; starting a new clip replaces whatever was playing.  Stop
// silences the current clip, if any.
type Player interface {
	Name() string
	Play(path string) error
	Stop() error
}

// newPlayer returns the player selected in the configuration.
func newPlayer(cfg Config, logger *EventLogger) (Player, error) {
	switch cfg.Player {
	case "log":
		return LogPlayer{logger: logger}, nil
	case "command", "":
		return NewCommandPlayer(cfg.Players), nil
	default:
		return nil, fmt.Errorf("unknown player %q", cfg.Player)
	}
}

// LogPlayer only records which clip would have played.  It is useful for a
// dry run on a machine without speakers.
type LogPlayer struct {
	logger *EventLogger
}

// Name returns the type name of the player.
func (LogPlayer) Name() string { return "log" }

// Play writes the clip name to the event log.
func (p LogPlayer) Play(path string) error {
	p.logger.Log("play %s", filepath.Base(path))
	return nil
}

// Stop does nothing.
func (LogPlayer) Stop() error { return nil }

// CommandPlayer plays clips with an OS audio command chosen by file
// extension, e.g. "ogg123 -q" for .ogg files.  The clip path is appended as
// the last argument.
type CommandPlayer struct {
	commands map[string]string

	mu      sync.Mutex
	current *exec.Cmd
	done    chan struct{}
}

// NewCommandPlayer builds a player from an extension to command-line map.
// Extensions are given without the leading dot.
func NewCommandPlayer(commands map[string]string) *CommandPlayer {
	m := make(map[string]string, len(commands))
	for ext, line := range commands {
		m[normalizeExt(ext)] = line
	}
	return &CommandPlayer{commands: m}
}

// normalizeExt lower-cases a file extension and drops its leading dot.
func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Name returns the type name of the player.
func (*CommandPlayer) Name() string { return "command" }

// Check verifies that every clip in paths has a player command configured
// for its extension and that the command can be found on PATH.
func (p *CommandPlayer) Check(paths ...string) error {
	var errs []error
	checked := make(map[string]bool)
	for _, path := range paths {
		ext := normalizeExt(filepath.Ext(path))
		if checked[ext] {
			continue
		}
		checked[ext] = true
		args := strings.Fields(p.commands[ext])
		if len(args) == 0 {
			errs = append(errs, fmt.Errorf("no player configured for %q files", ext))
			continue
		}
		if _, err := exec.LookPath(args[0]); err != nil {
			errs = append(errs, fmt.Errorf("player for %q files: %w", ext, err))
		}
	}
	return errors.Join(errs...)
}

// Play stops any clip still playing and starts path.
func (p *CommandPlayer) Play(path string) error {
	ext := normalizeExt(filepath.Ext(path))
	args := strings.Fields(p.commands[ext])
	if len(args) == 0 {
		return fmt.Errorf("no player configured for %q files", ext)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.stopLocked(); err != nil {
		return err
	}

	cmd := exec.Command(args[0], append(args[1:], path)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", args[0], err)
	}
	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()
	p.current, p.done = cmd, done
	return nil
}

// Stop kills the clip that is playing and waits for the process to exit.
func (p *CommandPlayer) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopLocked()
}

func (p *CommandPlayer) stopLocked() error {
	if p.current == nil {
		return nil
	}
	cmd, done := p.current, p.done
	p.current, p.done = nil, nil
	select {
	case <-done:
		return nil
	default:
	}
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("stop player: %w", err)
	}
	<-done
	return nil
}
