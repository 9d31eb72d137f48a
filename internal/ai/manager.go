package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultTickInterval is the simulation step used when none is configured.
const DefaultTickInterval = 50 * time.Millisecond

// TickManager drives all registered controllers at a fixed step.
// Different controllers may be ticked in parallel (bounded by workers);
// a single controller is never ticked twice concurrently because tickAll
// waits for every tick before the next step.
type TickManager struct {
	controllers     sync.Map // map[uint32]Controller — id → controller
	controllerCount atomic.Int32
	interval        time.Duration
	workers         int
	stopCh          chan struct{}
	stopOnce        sync.Once
	ticks           atomic.Uint64
}

// NewTickManager creates a tick manager. Non-positive interval falls back to
// DefaultTickInterval; workers ≤ 0 ticks sequentially.
func NewTickManager(interval time.Duration, workers int) *TickManager {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &TickManager{
		interval: interval,
		workers:  workers,
		stopCh:   make(chan struct{}),
	}
}

// Interval returns the simulation step.
func (m *TickManager) Interval() time.Duration {
	return m.interval
}

// Register registers and starts a controller
func (m *TickManager) Register(id uint32, controller Controller) {
	if _, loaded := m.controllers.Swap(id, controller); !loaded {
		m.controllerCount.Add(1)
	}
	controller.Start()

	slog.Debug("AI controller registered",
		"id", id,
		"state", controller.State())
}

// Unregister stops and removes a controller
func (m *TickManager) Unregister(id uint32) {
	value, ok := m.controllers.LoadAndDelete(id)
	if !ok {
		return
	}

	m.controllerCount.Add(-1)
	value.(Controller).Stop()

	slog.Debug("AI controller unregistered", "id", id)
}

// Start runs the tick loop (blocks until context is canceled or Stop is called)
func (m *TickManager) Start(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	slog.Info("AI tick manager started", "interval", m.interval, "workers", m.workers)

	for {
		select {
		case <-ctx.Done():
			slog.Info("AI tick manager stopping")
			return ctx.Err()

		case <-m.stopCh:
			slog.Info("AI tick manager stopped")
			return nil

		case <-ticker.C:
			if err := m.tickAll(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("ticking controllers: %w", err)
			}
		}
	}
}

// Stop stops the tick loop. Safe to call more than once.
func (m *TickManager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// Step advances every controller by one interval without waiting for the ticker.
func (m *TickManager) Step(ctx context.Context) error {
	return m.tickAll(ctx)
}

// tickAll ticks every registered controller once
func (m *TickManager) tickAll(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	if m.workers > 0 {
		g.SetLimit(m.workers)
	}

	count := 0
	m.controllers.Range(func(_, value any) bool {
		if gctx.Err() != nil {
			return false
		}
		controller := value.(Controller)
		count++

		if m.workers <= 0 {
			controller.Tick(m.interval)
			return true
		}
		g.Go(func() error {
			controller.Tick(m.interval)
			return nil
		})
		return true
	})

	if err := g.Wait(); err != nil {
		return err
	}

	n := m.ticks.Add(1)
	if count > 0 && IsDebugEnabled() {
		slog.Debug("AI tick completed", "tick", n, "controllers", count)
	}
	return gctx.Err()
}

// Ticks returns number of completed steps
func (m *TickManager) Ticks() uint64 {
	return m.ticks.Load()
}

// Count returns number of registered controllers (O(1) cached count)
func (m *TickManager) Count() int {
	return int(m.controllerCount.Load())
}

// GetController returns a registered controller
func (m *TickManager) GetController(id uint32) (Controller, error) {
	value, ok := m.controllers.Load(id)
	if !ok {
		return nil, fmt.Errorf("controller not found for id %d", id)
	}
	return value.(Controller), nil
}
