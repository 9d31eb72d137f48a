package ai

import (
	"context"
	"testing"

	"github.com/udisondev/hostile/internal/model"
)

// BenchmarkHostileAI_Tick measures one tick of a ranged hostile holding and
// firing at its target.
func BenchmarkHostileAI_Tick(b *testing.B) {
	f := newHostileFixture(b, model.VariantRanged, vec(0, 5))

	b.ResetTimer()
	for range b.N {
		f.ai.Tick(step)
	}
}

// BenchmarkTickManager_Step measures a parallel step over 1000 hostiles.
func BenchmarkTickManager_Step(b *testing.B) {
	mgr := NewTickManager(step, 8)
	for i := range 1000 {
		f := newHostileFixture(b, model.VariantRanged, vec(0, float64(i%20)))
		mgr.Register(uint32(i+1), f.ai)
	}
	ctx := context.Background()

	b.ResetTimer()
	for range b.N {
		if err := mgr.Step(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
