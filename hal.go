package main

// This file defines the hardware abstraction layer (HAL) for the dinosaur.
// openBoard is provided by hal_rpi.go on Linux, where periph.io drives the
// GPIO pins, and by hal_stub.go everywhere else so the program can be run and
// tested on a desktop machine without Raspberry Pi hardware.

import (
	"errors"
	"fmt"
)

// ErrMotorValue is returned when a motor value outside -1..1 is requested.
var ErrMotorValue = errors.New("motor value must be between -1 and 1")

// Board is the set of hardware handles the dinosaur needs: two push buttons
// and a motor behind an enable pin.
type Board interface {
	// ActivatePressed reports whether the activate (white) button is held.
	ActivatePressed() bool
	// StopPressed reports whether the stop (red) button is held.
	StopPressed() bool
	// SetMotor sets the motor drive value.  Positive values run the motor
	// forwards, negative values backwards, and 0 stops it.
	SetMotor(value float64) error
	// EnableMotor switches the H-bridge enable pin.
	EnableMotor(on bool) error
	// Close drives every output low and releases the pins.  It may be
	// called more than once.
	Close() error
}

// checkMotorValue rejects drive values the motor cannot take.
func checkMotorValue(value float64) error {
	if value < -1 || value > 1 {
		return fmt.Errorf("%v: %w", value, ErrMotorValue)
	}
	return nil
}
