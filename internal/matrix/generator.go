package matrix

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	DefaultLow  int32 = 1_000
	DefaultHigh int32 = 9_999

	SeedModeFixed   = "fixed"
	SeedModeEntropy = "entropy"
)

// NewSource builds the random source for a seed mode. Fixed mode is a PCG
// stream derived from seed, so a whole run is reproducible. Entropy mode seeds
// ChaCha8 from the operating system and ignores seed.
func NewSource(mode string, seed uint64) (rand.Source, error) {
	switch strings.ToLower(mode) {
	case SeedModeFixed:
		return rand.NewPCG(seed, seed), nil
	case SeedModeEntropy:
		var key [32]byte
		if _, err := crand.Read(key[:]); err != nil {
			return nil, fmt.Errorf("read entropy: %w", err)
		}
		return rand.NewChaCha8(key), nil
	}
	return nil, fmt.Errorf("%q: %w", mode, ErrUnknownSeedMode)
}

// Generator fills matrices with values drawn uniformly from [low, high).
// It owns its source and is not safe for concurrent use.
type Generator struct {
	rng       *rand.Rand
	low, high int32
}

func NewGenerator(src rand.Source, low, high int32) (*Generator, error) {
	if low >= high {
		return nil, fmt.Errorf("[%d, %d): %w", low, high, ErrBadRange)
	}
	return &Generator{rng: rand.New(src), low: low, high: high}, nil
}

// Generate returns a new n×n matrix. Cells are drawn row by row so the same
// source state always yields the same matrix.
func (g *Generator) Generate(n int) (*Matrix, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	span := int64(g.high) - int64(g.low)
	for i := range m.data {
		m.data[i] = int32(int64(g.low) + g.rng.Int64N(span))
	}
	return m, nil
}
