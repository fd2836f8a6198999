package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSugar_BeforeInit(t *testing.T) {
	Logger = nil
	assert.NotPanics(t, func() {
		Sugar().Debugw("no-op", "key", "value")
		Sync()
	})
}

func TestNewZapLogger_Level(t *testing.T) {
	tests := []struct {
		level     zerolog.Level
		wantDebug bool
	}{
		{zerolog.TraceLevel, true},
		{zerolog.DebugLevel, true},
		{zerolog.InfoLevel, false},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			l := newZapLogger(tt.level)
			assert.Equal(t, tt.wantDebug, l.Core().Enabled(zapcore.DebugLevel))
			assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
		})
	}
}
