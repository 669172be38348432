package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// boardOpener acquires the GPIO pins; openBoard is the real one.
type boardOpener func(pins Pins, pwmFrequency int) (Board, error)

// Entry point for the T. rex controller
func main() {
	os.Exit(run(configPath, os.Stdout, openBoard))
}

// run performs the startup checks and hands over to the dinosaur's main loop.
// It returns the process exit status: 0 when the stop button or an interrupt
// ended the program, 1 for any fatal error.
func run(cfgPath string, out io.Writer, open boardOpener) int {
	cfgMgr := ConfigManager{Path: cfgPath}
	if err := cfgMgr.Load(); err != nil {
		log.Printf("failed to load configuration: %v", err)
		return 1
	}
	cfg := cfgMgr.Get()

	logger, err := NewEventLogger(cfg.LogFile)
	if err != nil {
		log.Printf("failed to open log: %v", err)
		return 1
	}
	defer logger.Close()
	console := NewConsole(out)
	logger.Log("START")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dino, err := setup(cfg, logger, console, open)
	if err != nil {
		logger.Error("%v", err)
		console.Failure(cfg.LogFile)
		console.Exiting()
		logger.Log("END")
		return 1
	}
	if err := dino.Run(ctx); err != nil {
		return 1
	}
	return 0
}

// setup validates the files on disk and acquires the hardware.
func setup(cfg Config, logger *EventLogger, console *Console, open boardOpener) (*Dinosaur, error) {
	facts, err := Preflight(cfg, logger)
	if err != nil {
		return nil, err
	}
	player, err := newPlayer(cfg, logger)
	if err != nil {
		return nil, err
	}
	if cp, ok := player.(*CommandPlayer); ok {
		var paths []string
		for _, r := range cfg.roarTable() {
			paths = append(paths, r.Path)
		}
		if err := cp.Check(paths...); err != nil {
			return nil, err
		}
	}
	board, err := open(cfg.Pins, cfg.PWMFrequency)
	if err != nil {
		return nil, fmt.Errorf("initialise gpio: %w", err)
	}
	return NewDinosaur(cfg, board, player, logger, console, facts, nil), nil
}
