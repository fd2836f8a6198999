// Package config defines environment configuration structs and loaders.
package config

import (
	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	MatrixEnvConfig
	RNGEnvConfig
	RunEnvConfig
}

func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MatrixEnvConfig holds the problem size and the worker count.
type MatrixEnvConfig struct {
	MatrixSize int `env:"MATRIX_SIZE" envDefault:"5000"`
	// Threads is the number of parallel workers. Zero runs the sequential reducer.
	Threads int `env:"THREADS" envDefault:"128"`
}

// RNGEnvConfig configures the matrix generator.
type RNGEnvConfig struct {
	RNGFrom  int32  `env:"RNG_FROM" envDefault:"1000"`
	RNGTo    int32  `env:"RNG_TO" envDefault:"9999"`
	SeedMode string `env:"RNG_SEED_MODE" envDefault:"fixed"`
	Seed     uint64 `env:"RNG_SEED" envDefault:"1"`
}

// RunEnvConfig configures the driver output.
type RunEnvConfig struct {
	PrintMatrices bool   `env:"PRINT_MATRICES" envDefault:"false"`
	Rounds        int    `env:"ROUNDS" envDefault:"1"`
	ReportJSON    bool   `env:"REPORT_JSON" envDefault:"false"`
	Environment   string `env:"ENVIRONMENT" envDefault:"prod"`
}
