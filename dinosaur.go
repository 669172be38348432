package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"sync"
	"time"
)

// Dinosaur holds everything the main loop needs: the hardware handles, the
// audio player and the facts and roars to draw from.  Close releases the
// hardware and must run on every exit path; Run takes care of that.
type Dinosaur struct {
	cfg     Config
	board   Board
	player  Player
	logger  *EventLogger
	console *Console
	facts   []string
	roars   RoarTable
	rng     *rand.Rand

	closeOnce sync.Once
	closeErr  error
}

// NewDinosaur wires the loop together.  facts must not be empty.  A nil rng
// is replaced with a randomly seeded one.
func NewDinosaur(cfg Config, board Board, player Player, logger *EventLogger, console *Console, facts []string, rng *rand.Rand) *Dinosaur {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Dinosaur{
		cfg:     cfg,
		board:   board,
		player:  player,
		logger:  logger,
		console: console,
		facts:   facts,
		roars:   cfg.roarTable(),
		rng:     rng,
	}
}

// Run prints the banner and polls the buttons until the stop button is
// pressed or ctx is cancelled, both of which return nil.  Any other error is
// fatal.  The hardware is released before Run returns.
func (d *Dinosaur) Run(ctx context.Context) (err error) {
	defer func() {
		if err != nil {
			d.logger.Error("%v", err)
			d.console.Failure(d.cfg.LogFile)
		}
		if cerr := d.Close(); err == nil {
			err = cerr
		}
	}()

	d.console.Header()
	// Pre-load the first roar.
	roar := d.roars.Pick(d.rng)
	d.console.Prompt()

	for {
		if ctx.Err() != nil {
			d.logger.Log("Interrupt received.")
			return nil
		}
		if d.board.ActivatePressed() {
			if err := d.Activate(ctx, roar); err != nil {
				return err
			}
			if ctx.Err() != nil {
				continue
			}
			roar = d.roars.Pick(d.rng)
			d.console.Prompt()
		}
		if d.board.StopPressed() {
			d.logger.Log("Stop button pressed.")
			return nil
		}
		if d.cfg.PollInterval > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(d.cfg.PollInterval):
			}
		}
	}
}

// Activate prints a random fact and runs the motor for the length of roar
// while the roar plays.  Cancelling ctx cuts the roar short; the motor is
// switched off either way.
func (d *Dinosaur) Activate(ctx context.Context, roar Roar) error {
	d.console.Fact(RandomFact(d.rng, d.facts))

	if err := d.board.SetMotor(d.cfg.MotorSpeed); err != nil {
		if errors.Is(err, ErrMotorValue) {
			d.logger.Error("A bad value was specified for the motor. The value should be between -1 and 1.")
		}
		return fmt.Errorf("set motor: %w", err)
	}
	d.logger.Log("Roar %s for %s.", filepath.Base(roar.Path), roar.Length)
	// The clip is started before the motor so a player failure never moves it.
	if err := d.player.Play(roar.Path); err != nil {
		return fmt.Errorf("play %s: %w", roar.Path, err)
	}
	if err := d.board.EnableMotor(true); err != nil {
		_ = d.player.Stop()
		return fmt.Errorf("enable motor: %w", err)
	}

	timer := time.NewTimer(roar.Length)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}

	if err := d.board.EnableMotor(false); err != nil {
		return fmt.Errorf("disable motor: %w", err)
	}
	return nil
}

// Close silences the player, releases the GPIO pins and says goodbye.  Only
// the first call does anything.
func (d *Dinosaur) Close() error {
	d.closeOnce.Do(func() {
		var errs []error
		if err := d.player.Stop(); err != nil {
			errs = append(errs, err)
		}
		if err := d.board.Close(); err != nil {
			errs = append(errs, fmt.Errorf("release gpio: %w", err))
		}
		d.console.Exiting()
		d.logger.Log("END")
		d.closeErr = errors.Join(errs...)
	})
	return d.closeErr
}
