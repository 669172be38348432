//go:build linux && !disablegpio

// This file provides the Raspberry Pi implementation of the HAL using the
// periph.io library.  When building for other platforms or when the build tag
// "disablegpio" is specified, hal_stub.go is used instead.

package main

import (
	"errors"
	"fmt"
	"math"
	"sync"

	// Use the new periph module layout.  See https://periph.io/news/2020/a_new_start/
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// rpiBoard drives the dinosaur through periph.io pins.  Pins are addressed by
// their BCM numbers.
type rpiBoard struct {
	forward  gpio.PinIO
	backward gpio.PinIO
	enable   gpio.PinIO
	activate gpio.PinIO
	stop     gpio.PinIO
	mode     ButtonMode
	freq     physic.Frequency

	mu     sync.Mutex
	closed bool
}

// openBoard initialises periph host state and claims the configured pins.
// Returning an error here prevents the dinosaur from starting.
func openBoard(pins Pins, pwmFrequency int) (Board, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio init: %w", err)
	}
	b := &rpiBoard{
		mode: pins.ButtonMode,
		freq: physic.Frequency(pwmFrequency) * physic.Hertz,
	}
	var err error
	if b.forward, err = lookupPin(pins.Forward); err != nil {
		return nil, err
	}
	if b.backward, err = lookupPin(pins.Backward); err != nil {
		return nil, err
	}
	if b.enable, err = lookupPin(pins.Enable); err != nil {
		return nil, err
	}
	if b.activate, err = lookupPin(pins.Activate); err != nil {
		return nil, err
	}
	if b.stop, err = lookupPin(pins.Stop); err != nil {
		return nil, err
	}

	pull := gpio.PullUp
	if pins.ButtonMode == ButtonPullDown {
		pull = gpio.PullDown
	}
	for _, p := range []gpio.PinIO{b.activate, b.stop} {
		if err := p.In(pull, gpio.NoEdge); err != nil {
			_ = b.Close()
			return nil, fmt.Errorf("configure %s as input: %w", p.Name(), err)
		}
	}
	for _, p := range []gpio.PinIO{b.forward, b.backward, b.enable} {
		if err := p.Out(gpio.Low); err != nil {
			_ = b.Close()
			return nil, fmt.Errorf("configure %s as output: %w", p.Name(), err)
		}
	}
	return b, nil
}

// lookupPin finds a GPIO pin by BCM number.
func lookupPin(n int) (gpio.PinIO, error) {
	name := fmt.Sprintf("GPIO%d", n)
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("gpio pin %s not found", name)
	}
	return p, nil
}

// ActivatePressed reads the activate button.
func (b *rpiBoard) ActivatePressed() bool {
	return buttonPressed(b.mode, bool(b.activate.Read()))
}

// StopPressed reads the stop button.
func (b *rpiBoard) StopPressed() bool {
	return buttonPressed(b.mode, bool(b.stop.Read()))
}

// SetMotor drives one side of the H-bridge with a PWM duty cycle matching
// the magnitude of value and holds the other side low.
func (b *rpiBoard) SetMotor(value float64) error {
	if err := checkMotorValue(value); err != nil {
		return err
	}
	drive, idle := b.forward, b.backward
	if value < 0 {
		drive, idle = b.backward, b.forward
	}
	if err := idle.Out(gpio.Low); err != nil {
		return fmt.Errorf("motor %s: %w", idle.Name(), err)
	}
	if value == 0 {
		if err := drive.Out(gpio.Low); err != nil {
			return fmt.Errorf("motor %s: %w", drive.Name(), err)
		}
		return nil
	}
	duty := gpio.Duty(math.Round(math.Abs(value) * float64(gpio.DutyMax)))
	if err := drive.PWM(duty, b.freq); err != nil {
		return fmt.Errorf("motor %s pwm: %w", drive.Name(), err)
	}
	return nil
}

// EnableMotor drives the H-bridge enable pin high or low.
func (b *rpiBoard) EnableMotor(on bool) error {
	if err := b.enable.Out(gpio.Level(on)); err != nil {
		return fmt.Errorf("motor enable %s: %w", b.enable.Name(), err)
	}
	return nil
}

// Close stops the motor and halts every pin that was claimed.
func (b *rpiBoard) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	var errs []error
	for _, p := range []gpio.PinIO{b.enable, b.forward, b.backward} {
		if p == nil {
			continue
		}
		if err := p.Out(gpio.Low); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
		}
	}
	for _, p := range []gpio.PinIO{b.enable, b.forward, b.backward, b.activate, b.stop} {
		if p == nil {
			continue
		}
		if err := p.Halt(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
		}
	}
	return errors.Join(errs...)
}
