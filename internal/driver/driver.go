// Package driver runs one timed matrix addition: it generates the inputs,
// reduces them and reports how long each phase took.
package driver

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/tensorplex-labs/matsum/internal/config"
	"github.com/tensorplex-labs/matsum/internal/matrix"
	"github.com/tensorplex-labs/matsum/internal/reducer"
)

// Result holds the matrices of a run alongside its report.
type Result struct {
	A, B, Sum *matrix.Matrix
	Report    Report
}

type Driver struct {
	cfg *config.AppConfig
	out io.Writer
	log zerolog.Logger
}

// New returns a driver that prints matrices and the JSON report to out and
// phase timings to log.
func New(cfg *config.AppConfig, out io.Writer, log zerolog.Logger) *Driver {
	return &Driver{cfg: cfg, out: out, log: log}
}

func (d *Driver) Run() (*Result, error) {
	start := time.Now()
	d.log.Info().Msg("> program init")

	a, b, err := d.setup()
	if err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}

	setupElapsed := time.Since(start)
	d.log.Info().Msgf("> setup finished in %.4f ms", milliseconds(setupElapsed))

	r, err := reducer.New(reducer.WithWorkers(d.cfg.Threads))
	if err != nil {
		return nil, err
	}

	var sum *matrix.Matrix
	roundsMs := make([]float64, 0, d.cfg.Rounds)
	for round := range d.cfg.Rounds {
		roundStart := time.Now()
		sum, err = r.Reduce(a, b)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}
		roundsMs = append(roundsMs, milliseconds(time.Since(roundStart)))
		d.log.Debug().Int("round", round).Float64("ms", roundsMs[round]).Msg("round finished")
	}

	if d.cfg.PrintMatrices {
		if err := matrix.Fprint(d.out, sum); err != nil {
			return nil, err
		}
	}

	taskElapsed := time.Since(start) - setupElapsed
	d.log.Info().Msgf("> task finished in %.4f ms", milliseconds(taskElapsed))

	res := &Result{
		A:   a,
		B:   b,
		Sum: sum,
		Report: Report{
			MatrixSize: d.cfg.MatrixSize,
			Workers:    d.cfg.Threads,
			SetupMs:    milliseconds(setupElapsed),
			TaskMs:     milliseconds(taskElapsed),
			RoundsMs:   roundsMs,
			Summary:    Summarize(roundsMs),
		},
	}

	if len(roundsMs) > 1 {
		s := res.Report.Summary
		d.log.Info().
			Int("rounds", len(roundsMs)).
			Float64("mean_ms", s.Mean).
			Float64("stddev_ms", s.StdDev).
			Float64("min_ms", s.Min).
			Float64("max_ms", s.Max).
			Msg("> round summary")
	}

	if d.cfg.ReportJSON {
		data, err := res.Report.JSON()
		if err != nil {
			return nil, fmt.Errorf("marshal report: %w", err)
		}
		if _, err := fmt.Fprintf(d.out, "%s\n", data); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// setup generates both inputs from one source, a first, and prints them when
// configured to.
func (d *Driver) setup() (a, b *matrix.Matrix, err error) {
	src, err := matrix.NewSource(d.cfg.SeedMode, d.cfg.Seed)
	if err != nil {
		return nil, nil, err
	}
	gen, err := matrix.NewGenerator(src, d.cfg.RNGFrom, d.cfg.RNGTo)
	if err != nil {
		return nil, nil, err
	}
	if a, err = gen.Generate(d.cfg.MatrixSize); err != nil {
		return nil, nil, err
	}
	if b, err = gen.Generate(d.cfg.MatrixSize); err != nil {
		return nil, nil, err
	}

	if d.cfg.PrintMatrices {
		if err := matrix.Fprint(d.out, a); err != nil {
			return nil, nil, err
		}
		if _, err := io.WriteString(d.out, "\n"); err != nil {
			return nil, nil, err
		}
		if err := matrix.Fprint(d.out, b); err != nil {
			return nil, nil, err
		}
	}
	return a, b, nil
}
