// Package config resolves game settings from compiled defaults, an optional .env file
// and SAUCER_* environment variables. The binary takes no arguments, so the environment
// is the only override channel.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/saucer/constants"
)

// EnvPrefix is prepended to every override variable name
const EnvPrefix = "SAUCER_"

// DefaultEnvFile is loaded when present; missing file is not an error
const DefaultEnvFile = ".env"

var (
	// ErrInvalid wraps every validation failure
	ErrInvalid = errors.New("invalid configuration")

	// ErrScreenTooSmall reports a terminal that cannot hold the field
	ErrScreenTooSmall = errors.New("screen too small")
)

// Config holds all tunables for one game
type Config struct {
	Rows                int
	InitialSaucers      int
	MaxSaucers          int
	MaxDelay            int
	ExtraSaucerOdds     int
	ExtraSaucerInterval time.Duration
	StartingAmmo        int
	MaxShots            int
	MaxEscaped          int
	SaucerTick          time.Duration
	ShotTick            time.Duration

	Sound bool
	Debug bool

	// Seed for the saucer RNG, 0 picks a time-based seed
	Seed uint64
}

// Default returns the compiled-in configuration
func Default() Config {
	return Config{
		Rows:                constants.SaucerRows,
		InitialSaucers:      constants.InitialSaucers,
		MaxSaucers:          constants.MaxSaucers,
		MaxDelay:            constants.MaxSaucerDelay,
		ExtraSaucerOdds:     constants.ExtraSaucerOdds,
		ExtraSaucerInterval: constants.ExtraSaucerInterval,
		StartingAmmo:        constants.StartingAmmo,
		MaxShots:            constants.MaxShots,
		MaxEscaped:          constants.MaxEscaped,
		SaucerTick:          constants.SaucerTick,
		ShotTick:            constants.ShotTick,
		Sound:               true,
	}
}

// Load reads envFile (if it exists) into the process environment and applies overrides
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides fields from lookup, which is os.LookupEnv outside tests
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"ROWS", &c.Rows},
		{"INITIAL", &c.InitialSaucers},
		{"MAX_SAUCERS", &c.MaxSaucers},
		{"MAX_DELAY", &c.MaxDelay},
		{"EXTRA_ODDS", &c.ExtraSaucerOdds},
		{"AMMO", &c.StartingAmmo},
		{"MAX_SHOTS", &c.MaxShots},
		{"MAX_ESCAPED", &c.MaxEscaped},
	}
	for _, f := range ints {
		v, ok := lookup(EnvPrefix + f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, f.key, v, err)
		}
		*f.dst = n
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"TICK", &c.SaucerTick},
		{"SHOT_TICK", &c.ShotTick},
		{"EXTRA_INTERVAL", &c.ExtraSaucerInterval},
	}
	for _, f := range durations {
		v, ok := lookup(EnvPrefix + f.key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, f.key, v, err)
		}
		*f.dst = d
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"SOUND", &c.Sound},
		{"DEBUG", &c.Debug},
	}
	for _, f := range bools {
		v, ok := lookup(EnvPrefix + f.key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, f.key, v, err)
		}
		*f.dst = b
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		s, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q: %v", ErrInvalid, EnvPrefix, v, err)
		}
		c.Seed = s
	}

	return nil
}

// Validate checks the screen-independent constraints
func (c Config) Validate() error {
	switch {
	case c.Rows < 1:
		return fmt.Errorf("%w: rows %d < 1", ErrInvalid, c.Rows)
	case c.InitialSaucers < 0:
		return fmt.Errorf("%w: initial saucers %d < 0", ErrInvalid, c.InitialSaucers)
	case c.MaxSaucers < c.InitialSaucers:
		return fmt.Errorf("%w: max saucers %d < initial saucers %d", ErrInvalid, c.MaxSaucers, c.InitialSaucers)
	case c.MaxSaucers < 1 || c.MaxSaucers > constants.MaxSaucerSlots:
		return fmt.Errorf("%w: max saucers %d outside 1..%d", ErrInvalid, c.MaxSaucers, constants.MaxSaucerSlots)
	case c.MaxDelay < 1:
		return fmt.Errorf("%w: max delay %d < 1", ErrInvalid, c.MaxDelay)
	case c.ExtraSaucerOdds < 1:
		return fmt.Errorf("%w: extra saucer odds %d < 1", ErrInvalid, c.ExtraSaucerOdds)
	case c.ExtraSaucerInterval <= 0:
		return fmt.Errorf("%w: extra saucer interval %v", ErrInvalid, c.ExtraSaucerInterval)
	case c.StartingAmmo < 1:
		return fmt.Errorf("%w: starting ammo %d < 1", ErrInvalid, c.StartingAmmo)
	case c.MaxShots < 1:
		return fmt.Errorf("%w: max shots %d < 1", ErrInvalid, c.MaxShots)
	case c.MaxEscaped < 1:
		return fmt.Errorf("%w: max escaped %d < 1", ErrInvalid, c.MaxEscaped)
	case c.SaucerTick <= 0 || c.ShotTick <= 0:
		return fmt.Errorf("%w: ticks must be positive", ErrInvalid)
	}
	return nil
}

// ValidateGeometry checks that a width x height screen can hold the field
func (c Config) ValidateGeometry(width, height int) error {
	if width < constants.MinScreenWidth {
		return fmt.Errorf("%w: width %d < %d", ErrScreenTooSmall, width, constants.MinScreenWidth)
	}
	if c.Rows > height-constants.ReservedRows {
		return fmt.Errorf("%w: %d saucer rows need height >= %d, have %d",
			ErrScreenTooSmall, c.Rows, c.Rows+constants.ReservedRows, height)
	}
	return nil
}

// TaskBudget is the number of concurrent tasks the game may need at once
func (c Config) TaskBudget() int {
	return c.MaxSaucers + c.MaxShots + constants.TaskHeadroom
}
