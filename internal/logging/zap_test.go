package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_WritesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewZapLogger(zap.New(core))
	ctx := context.Background()

	log.With("component", "http").Info(ctx, "request", "status", 200)
	log.Warn(ctx, "slow")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "request", entries[0].Message)
		fields := entries[0].ContextMap()
		assert.Equal(t, "http", fields["component"])
		assert.EqualValues(t, 200, fields["status"])
		assert.Equal(t, zap.WarnLevel, entries[1].Level)
	}
}

func TestNewProductionZap_FallsBackToInfo(t *testing.T) {
	l, err := NewProductionZap("nonsense")
	if assert.NoError(t, err) {
		assert.False(t, l.Core().Enabled(zap.DebugLevel))
		assert.True(t, l.Core().Enabled(zap.InfoLevel))
	}
}
