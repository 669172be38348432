//go:build !linux || disablegpio

package main

import "sync"

// stubBoard stands in for the Raspberry Pi when GPIO is unavailable.  The
// buttons are never pressed, so the program runs until it is interrupted.
type stubBoard struct {
	mu      sync.Mutex
	motor   float64
	enabled bool
	closed  bool
}

// openBoard returns a board that only remembers what it was told.
func openBoard(pins Pins, pwmFrequency int) (Board, error) {
	return &stubBoard{}, nil
}

// ActivatePressed always reports false.
func (b *stubBoard) ActivatePressed() bool { return false }

// StopPressed always reports false.
func (b *stubBoard) StopPressed() bool { return false }

// SetMotor validates and remembers the drive value.
func (b *stubBoard) SetMotor(value float64) error {
	if err := checkMotorValue(value); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.motor = value
	return nil
}

// EnableMotor remembers whether the motor is enabled.
func (b *stubBoard) EnableMotor(on bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = on
	return nil
}

// Close resets the recorded state and marks the board closed.
func (b *stubBoard) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.motor, b.enabled, b.closed = 0, false, true
	return nil
}
