package driver

import (
	"time"

	"github.com/bytedance/sonic"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Report is the timing record of one run. Durations are milliseconds.
type Report struct {
	MatrixSize int          `json:"matrix_size"`
	Workers    int          `json:"workers"`
	SetupMs    float64      `json:"setup_ms"`
	TaskMs     float64      `json:"task_ms"`
	RoundsMs   []float64    `json:"rounds_ms"`
	Summary    RoundSummary `json:"summary"`
}

// RoundSummary describes the per-round computation times.
type RoundSummary struct {
	Mean   float64 `json:"mean_ms"`
	StdDev float64 `json:"stddev_ms"`
	Min    float64 `json:"min_ms"`
	Max    float64 `json:"max_ms"`
}

// Summarize returns the statistics of roundsMs. The standard deviation of
// fewer than two samples is 0.
func Summarize(roundsMs []float64) RoundSummary {
	if len(roundsMs) == 0 {
		return RoundSummary{}
	}
	s := RoundSummary{
		Min: floats.Min(roundsMs),
		Max: floats.Max(roundsMs),
	}
	if len(roundsMs) == 1 {
		s.Mean = roundsMs[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(roundsMs, nil)
	return s
}

func (r *Report) JSON() ([]byte, error) {
	return sonic.Marshal(r)
}

func milliseconds(d time.Duration) float64 {
	return d.Seconds() * 1000
}
