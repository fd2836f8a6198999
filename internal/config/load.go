package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tensorplex-labs/matsum/internal/matrix"
)

var ErrInvalidConfig = errors.New("config: invalid value")

// Load parses the environment and validates the result.
func Load() (*AppConfig, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) Validate() error {
	var errs []error
	if c.MatrixSize < 1 {
		errs = append(errs, invalid("MATRIX_SIZE", c.MatrixSize, "must be >= 1"))
	}
	if c.Threads < 0 {
		errs = append(errs, invalid("THREADS", c.Threads, "must be >= 0"))
	}
	if c.RNGFrom >= c.RNGTo {
		errs = append(errs, invalid("RNG_FROM", c.RNGFrom, fmt.Sprintf("must be below RNG_TO (%d)", c.RNGTo)))
	}
	switch strings.ToLower(c.SeedMode) {
	case matrix.SeedModeFixed, matrix.SeedModeEntropy:
	default:
		errs = append(errs, invalid("RNG_SEED_MODE", c.SeedMode, "must be fixed or entropy"))
	}
	if c.Rounds < 1 {
		errs = append(errs, invalid("ROUNDS", c.Rounds, "must be >= 1"))
	}
	return errors.Join(errs...)
}

func invalid(key string, value any, reason string) error {
	return fmt.Errorf("%s=%v %s: %w", key, value, reason, ErrInvalidConfig)
}
