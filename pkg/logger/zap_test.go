package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_ConvertsTypedFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.Info(context.Background(), "location upserted",
		String("path", "create"),
		Int("attempt", 2),
		Int64("rider_id", 4),
		Float64("latitude", -20.1923),
		WithError(errors.New("boom")),
		Lazy("lazy", func() any { return "computed" }),
	)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "create", fields["path"])
	assert.Equal(t, int64(2), fields["attempt"])
	assert.Equal(t, int64(4), fields["rider_id"])
	assert.Equal(t, -20.1923, fields["latitude"])
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, "computed", fields["lazy"])
}

func TestZapLogger_KindMismatchFallsBackToAny(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.Warn(context.Background(), "odd field", Field{Key: "n", Value: 7, Kind: KindString})

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, int64(7), logs.All()[0].ContextMap()["n"])
}

func TestZapLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewFromZap(zap.New(core)).With(String("component", "search"))

	log.Debug(context.Background(), "dropped")
	log.Error(context.Background(), "kept")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "search", logs.All()[0].ContextMap()["component"])
}
