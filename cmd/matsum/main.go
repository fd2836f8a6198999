package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/matsum/internal/config"
	"github.com/tensorplex-labs/matsum/internal/driver"
	"github.com/tensorplex-labs/matsum/internal/utils/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log.Debug().
		Int("matrix_size", cfg.MatrixSize).
		Int("threads", cfg.Threads).
		Str("seed_mode", cfg.SeedMode).
		Int("rounds", cfg.Rounds).
		Msg("loaded config")

	if _, err := driver.New(cfg, os.Stdout, log.Logger).Run(); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}
