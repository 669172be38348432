package main

import (
	"math/rand/v2"
	"path/filepath"
	"time"
)

// ButtonMode describes how a push button is wired to its GPIO pin.
type ButtonMode string

const (
	// ButtonPullUp uses the internal pull-up; pressing the button pulls the pin low.
	ButtonPullUp ButtonMode = "pull_up"
	// ButtonPullDown uses the internal pull-down; pressing the button drives the pin high.
	ButtonPullDown ButtonMode = "pull_down"
)

// Pins holds the BCM pin numbers of the dinosaur's hardware.  The motor is
// driven through an H-bridge: forward and backward carry the PWM signal and
// enable switches the bridge on.
type Pins struct {
	Forward    int        `mapstructure:"forward"`
	Backward   int        `mapstructure:"backward"`
	Enable     int        `mapstructure:"enable"`
	Activate   int        `mapstructure:"activate"` // white button
	Stop       int        `mapstructure:"stop"`     // red button
	ButtonMode ButtonMode `mapstructure:"button_mode"`
}

// RoarConfig pairs a sound file (relative to the sounds directory) with the
// length of the clip in seconds.
type RoarConfig struct {
	File    string  `mapstructure:"file"`
	Seconds float64 `mapstructure:"seconds"`
}

// Config is the top-level structure read from config.json.  Every field has
// a default, so the file is optional.
type Config struct {
	FactsFile    string            `mapstructure:"facts_file"`
	SoundsDir    string            `mapstructure:"sounds_dir"`
	LogFile      string            `mapstructure:"log_file"`
	MotorSpeed   float64           `mapstructure:"motor_speed"`   // -1..1, negative runs the motor backwards
	PWMFrequency int               `mapstructure:"pwm_frequency"` // Hz
	PollInterval time.Duration     `mapstructure:"poll_interval"` // 0 polls as fast as possible
	Player       string            `mapstructure:"player"`        // "command" or "log"
	Players      map[string]string `mapstructure:"players"`       // file extension -> command line
	Pins         Pins              `mapstructure:"pins"`
	Roars        []RoarConfig      `mapstructure:"roars"`
}

// Roar is a sound clip ready to be played, with the time the motor should run for.
type Roar struct {
	Path   string
	Length time.Duration
}

// RoarTable is the fixed set of roars one is drawn from on every activation.
type RoarTable []Roar

// Pick selects one roar uniformly at random.
func (t RoarTable) Pick(rng *rand.Rand) Roar {
	return t[rng.IntN(len(t))]
}

// roarTable resolves the configured roars against the sounds directory.
func (c Config) roarTable() RoarTable {
	table := make(RoarTable, 0, len(c.Roars))
	for _, r := range c.Roars {
		table = append(table, Roar{
			Path:   filepath.Join(c.SoundsDir, r.File),
			Length: time.Duration(r.Seconds * float64(time.Second)),
		})
	}
	return table
}
