package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"sync"

	"github.com/spf13/viper"
)

// configPath is the default filename for the optional configuration.
const configPath = "config.json"

// DefaultRoars returns the roar table shipped with the dinosaur.  The key/value
// pair is sound file name : length of the file in seconds.
func DefaultRoars() []RoarConfig {
	return []RoarConfig{
		{File: "T_rex1.ogg", Seconds: 6.5},
		{File: "T_rex2.ogg", Seconds: 3},
		{File: "T_rex3.ogg", Seconds: 4},
		{File: "T_rex4.ogg", Seconds: 5.5},
		{File: "T_rex5.ogg", Seconds: 4},
		{File: "T_rex6.ogg", Seconds: 6},
		{File: "T_rex7.ogg", Seconds: 4.5},
		{File: "T_rex8.ogg", Seconds: 4},
	}
}

// DefaultConfig matches the wiring of the current dinosaur build.
func DefaultConfig() Config {
	return Config{
		FactsFile:    "Files/dinosaur_facts.txt",
		SoundsDir:    "Sounds",
		LogFile:      "Files/t_rex.log",
		MotorSpeed:   0.7,
		PWMFrequency: 100,
		Player:       "command",
		Players: map[string]string{
			"ogg": "ogg123 -q",
			"mp3": "mpg123 -q",
			"wav": "aplay -q",
		},
		Pins: Pins{
			Forward:    20,
			Backward:   16,
			Enable:     21,
			Activate:   12,
			Stop:       9,
			ButtonMode: ButtonPullUp,
		},
		Roars: DefaultRoars(),
	}
}

// ConfigManager wraps the loaded configuration.  Path may be set before Load
// to read something other than config.json.
type ConfigManager struct {
	Path string

	mu     sync.RWMutex
	cfg    Config
	loaded bool
}

// Load reads configuration from disk.  If the file does not exist the
// defaults are used unchanged; nothing is written back.
func (cm *ConfigManager) Load() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.loaded {
		return nil
	}
	path := cm.Path
	if path == "" {
		path = configPath
	}
	cfg := DefaultConfig()
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("unable to read config: %w", err)
		}
		cm.cfg = cfg
		cm.loaded = true
		return nil
	}

	// Player keys may be written as file extensions (".mp3"), so dots must not
	// split keys.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("unable to read config: %w", err)
	}
	// Fields absent from the file keep their defaults.  A roar list replaces
	// the default table rather than being merged into it.
	if v.IsSet("roars") {
		cfg.Roars = nil
	}
	// Player entries from the file override the defaults for the same
	// extension, whether or not they were written with a leading dot.
	players := maps.Clone(cfg.Players)
	if players == nil {
		players = make(map[string]string)
	}
	if v.IsSet("players") {
		for ext, line := range v.GetStringMapString("players") {
			players[normalizeExt(ext)] = line
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("invalid %s: %w", path, err)
	}
	cfg.Players = players
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid %s: %w", path, err)
	}
	cm.cfg = cfg
	cm.loaded = true
	return nil
}

// Get returns a copy of the current configuration.
func (cm *ConfigManager) Get() Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.cfg
}

// Validate checks the configuration for values the hardware cannot honour.
func (c Config) Validate() error {
	if c.MotorSpeed < -1 || c.MotorSpeed > 1 {
		return fmt.Errorf("motor_speed %v: %w", c.MotorSpeed, ErrMotorValue)
	}
	if c.PWMFrequency <= 0 {
		return fmt.Errorf("pwm_frequency must be positive, got %d", c.PWMFrequency)
	}
	if c.PollInterval < 0 {
		return errors.New("poll_interval must not be negative")
	}
	if c.FactsFile == "" {
		return errors.New("facts_file is required")
	}
	if c.Player != "command" && c.Player != "log" {
		return fmt.Errorf("unknown player %q", c.Player)
	}
	if len(c.Roars) == 0 {
		return errors.New("at least one roar is required")
	}
	for i, r := range c.Roars {
		if r.File == "" {
			return fmt.Errorf("roar %d: file is required", i)
		}
		if r.Seconds <= 0 {
			return fmt.Errorf("roar %d (%s): seconds must be positive", i, r.File)
		}
	}
	switch c.Pins.ButtonMode {
	case ButtonPullUp, ButtonPullDown:
	default:
		return fmt.Errorf("unknown button_mode %q", c.Pins.ButtonMode)
	}
	seen := make(map[int]string)
	for _, p := range []struct {
		name string
		pin  int
	}{
		{"forward", c.Pins.Forward},
		{"backward", c.Pins.Backward},
		{"enable", c.Pins.Enable},
		{"activate", c.Pins.Activate},
		{"stop", c.Pins.Stop},
	} {
		if p.pin < 0 {
			return fmt.Errorf("pin %s: invalid number %d", p.name, p.pin)
		}
		if other, ok := seen[p.pin]; ok {
			return fmt.Errorf("pins %s and %s both use GPIO%d", other, p.name, p.pin)
		}
		seen[p.pin] = p.name
	}
	return nil
}
