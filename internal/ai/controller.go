package ai

import (
	"time"

	"github.com/udisondev/hostile/internal/model"
)

// Controller represents a per-NPC AI driven by the TickManager
type Controller interface {
	// Start starts AI controller
	Start()

	// Stop stops AI controller
	Stop()

	// State returns the current engagement state
	State() model.EngagementState

	// Tick performs one simulation step of length dt
	Tick(dt time.Duration)
}
