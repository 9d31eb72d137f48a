package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngagementState_String(t *testing.T) {
	assert.Equal(t, "IDLE", EngagementIdle.String())
	assert.Equal(t, "PURSUING", EngagementPursuing.String())
	assert.Equal(t, "HOLDING", EngagementHolding.String())
	assert.Equal(t, "UNKNOWN", EngagementState(99).String())
}

func TestAttackPhase_Active(t *testing.T) {
	active := []AttackPhase{PhaseAimDelay, PhaseFireCue, PhaseImpactDelay, PhaseBeamGrowth, PhaseHold, PhaseRetract}
	for _, p := range active {
		assert.True(t, p.Active(), p.String())
	}
	assert.False(t, PhaseNone.Active())
	assert.False(t, PhaseCancelled.Active())
	assert.Equal(t, "BEAM_GROWTH", PhaseBeamGrowth.String())
}

func TestParseVariant(t *testing.T) {
	v, ok := ParseVariant("melee")
	assert.True(t, ok)
	assert.Equal(t, VariantMelee, v)

	v, ok = ParseVariant("ranged")
	assert.True(t, ok)
	assert.Equal(t, VariantRanged, v)
	assert.Equal(t, "ranged", v.String())

	_, ok = ParseVariant("sniper")
	assert.False(t, ok)
}

func TestHostileTemplate_EngageRange(t *testing.T) {
	tmpl := DefaultHostileTemplate()
	assert.Equal(t, 7.0, tmpl.EngageRange())

	tmpl.Variant = VariantMelee
	assert.Equal(t, 2.0, tmpl.EngageRange())
}

func TestHit_HasTag(t *testing.T) {
	h := Hit{Tag: "Player"}
	assert.True(t, h.HasTag("Player"))
	assert.False(t, h.HasTag("player"))
	assert.False(t, Hit{Tag: TagWorld}.HasTag("Player"))
}
