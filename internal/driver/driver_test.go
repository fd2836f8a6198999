package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorplex-labs/matsum/internal/config"
	"github.com/tensorplex-labs/matsum/internal/matrix"
	"github.com/tensorplex-labs/matsum/internal/reducer"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		MatrixEnvConfig: config.MatrixEnvConfig{MatrixSize: 6, Threads: 4},
		RNGEnvConfig: config.RNGEnvConfig{
			RNGFrom:  matrix.DefaultLow,
			RNGTo:    matrix.DefaultHigh,
			SeedMode: matrix.SeedModeFixed,
			Seed:     1,
		},
		RunEnvConfig: config.RunEnvConfig{Rounds: 1, Environment: "test"},
	}
}

func run(t *testing.T, cfg *config.AppConfig) (*Result, string, string) {
	t.Helper()
	var out, logs bytes.Buffer
	res, err := New(cfg, &out, zerolog.New(&logs)).Run()
	require.NoError(t, err)
	return res, out.String(), logs.String()
}

func TestRun_LogsPhases(t *testing.T) {
	res, out, logs := run(t, testConfig())

	assert.Empty(t, out)
	assert.Contains(t, logs, "> program init")
	assert.Contains(t, logs, "> setup finished in ")
	assert.Contains(t, logs, "> task finished in ")
	assert.NotContains(t, logs, "> round summary")

	assert.Equal(t, 6, res.Report.MatrixSize)
	assert.Equal(t, 4, res.Report.Workers)
	assert.Len(t, res.Report.RoundsMs, 1)
	assert.GreaterOrEqual(t, res.Report.TaskMs, 0.0)
}

func TestRun_SumIsCorrect(t *testing.T) {
	res, _, _ := run(t, testConfig())

	want := matrix.MustNew(res.A.Size())
	reducer.Sequential(res.A, res.B, want)
	assert.True(t, want.Equal(res.Sum))
}

func TestRun_FixedSeedIsReproducible(t *testing.T) {
	first, _, _ := run(t, testConfig())
	second, _, _ := run(t, testConfig())

	assert.True(t, first.A.Equal(second.A))
	assert.True(t, first.B.Equal(second.B))
	assert.True(t, first.Sum.Equal(second.Sum))
	assert.False(t, first.A.Equal(first.B))
}

func TestRun_SequentialAndParallelAgree(t *testing.T) {
	seq := testConfig()
	seq.Threads = 0
	par := testConfig()
	par.Threads = 3

	a, _, _ := run(t, seq)
	b, _, _ := run(t, par)
	assert.True(t, a.Sum.Equal(b.Sum))
}

func TestRun_PrintMatrices(t *testing.T) {
	cfg := testConfig()
	cfg.MatrixSize = 3
	cfg.PrintMatrices = true

	res, out, _ := run(t, cfg)

	want := res.A.String() + "\n" + res.B.String() + res.Sum.String()
	assert.Equal(t, want, out)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 3*3+1)
}

func TestRun_RoundsAndJSONReport(t *testing.T) {
	cfg := testConfig()
	cfg.Rounds = 3
	cfg.ReportJSON = true

	res, out, logs := run(t, cfg)
	assert.Contains(t, logs, "> round summary")
	assert.Len(t, res.Report.RoundsMs, 3)

	var got Report
	require.NoError(t, sonic.Unmarshal([]byte(strings.TrimSpace(out)), &got))
	assert.Equal(t, res.Report.MatrixSize, got.MatrixSize)
	assert.Equal(t, res.Report.Workers, got.Workers)
	assert.Len(t, got.RoundsMs, 3)
}

func TestRun_BadSeedMode(t *testing.T) {
	cfg := testConfig()
	cfg.SeedMode = "bogus"
	_, err := New(cfg, &bytes.Buffer{}, zerolog.Nop()).Run()
	require.ErrorIs(t, err, matrix.ErrUnknownSeedMode)
}

func TestRun_NegativeThreads(t *testing.T) {
	cfg := testConfig()
	cfg.Threads = -1
	_, err := New(cfg, &bytes.Buffer{}, zerolog.Nop()).Run()
	require.ErrorIs(t, err, reducer.ErrNegativeWorkers)
}
