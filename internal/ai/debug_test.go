package ai

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/hostile/internal/model"
)

func TestEnableDebugLogging(t *testing.T) {
	t.Cleanup(func() { EnableDebugLogging(false) })

	tests := []struct {
		name    string
		enabled bool
	}{
		{"enable", true},
		{"disable", false},
		{"enable again", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			EnableDebugLogging(tt.enabled)
			assert.Equal(t, tt.enabled, IsDebugEnabled())
		})
	}
}

func TestDebugLogging_AttackPhases(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() {
		slog.SetDefault(prev)
		EnableDebugLogging(false)
	})

	run := func() {
		f := newHostileFixture(t, model.VariantRanged, vec(0, 5))
		for i := 0; i < 40; i++ {
			f.ai.Tick(step)
		}
		require.Equal(t, model.PhaseRetract, f.ai.LastAttackOutcome())
	}

	EnableDebugLogging(false)
	run()
	assert.NotContains(t, buf.String(), "attack phase")

	EnableDebugLogging(true)
	run()
	out := buf.String()
	assert.Contains(t, out, "attack sequence started")
	assert.Contains(t, out, "to=BEAM_GROWTH")
	assert.Contains(t, out, "hostile engagement changed")
}
