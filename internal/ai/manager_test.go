package ai

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/udisondev/hostile/internal/model"
)

// countingController records ticks and flags overlapping ticks.
type countingController struct {
	started  atomic.Bool
	ticks    atomic.Int32
	inFlight atomic.Int32
	overlap  atomic.Bool

	mu  sync.Mutex
	dts []time.Duration
}

func (c *countingController) Start() { c.started.Store(true) }
func (c *countingController) Stop()  { c.started.Store(false) }

func (c *countingController) State() model.EngagementState {
	return model.EngagementIdle
}

func (c *countingController) Tick(dt time.Duration) {
	if c.inFlight.Add(1) > 1 {
		c.overlap.Store(true)
	}
	defer c.inFlight.Add(-1)

	time.Sleep(time.Millisecond)
	c.ticks.Add(1)

	c.mu.Lock()
	c.dts = append(c.dts, dt)
	c.mu.Unlock()
}

func TestTickManager_RegisterUnregister(t *testing.T) {
	mgr := NewTickManager(DefaultTickInterval, 0)
	ctrl := &countingController{}

	mgr.Register(1, ctrl)

	if mgr.Count() != 1 {
		t.Errorf("Count() after Register() = %d, want 1", mgr.Count())
	}
	if !ctrl.started.Load() {
		t.Error("Register() should start the controller")
	}

	got, err := mgr.GetController(1)
	if err != nil {
		t.Fatalf("GetController() error = %v", err)
	}
	if got.State() != model.EngagementIdle {
		t.Errorf("controller.State() = %v, want IDLE", got.State())
	}

	mgr.Unregister(1)

	if mgr.Count() != 0 {
		t.Errorf("Count() after Unregister() = %d, want 0", mgr.Count())
	}
	if ctrl.started.Load() {
		t.Error("Unregister() should stop the controller")
	}
	if _, err := mgr.GetController(1); err == nil {
		t.Error("GetController() after Unregister() should return error")
	}

	// re-registering the same id must not double count
	mgr.Register(2, ctrl)
	mgr.Register(2, ctrl)
	if mgr.Count() != 1 {
		t.Errorf("Count() after duplicate Register() = %d, want 1", mgr.Count())
	}
}

func TestTickManager_StepPassesInterval(t *testing.T) {
	mgr := NewTickManager(20*time.Millisecond, 0)
	ctrl := &countingController{}
	mgr.Register(1, ctrl)

	for range 3 {
		if err := mgr.Step(context.Background()); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}

	if ctrl.ticks.Load() != 3 {
		t.Errorf("ticks = %d, want 3", ctrl.ticks.Load())
	}
	if mgr.Ticks() != 3 {
		t.Errorf("Ticks() = %d, want 3", mgr.Ticks())
	}
	for _, dt := range ctrl.dts {
		if dt != 20*time.Millisecond {
			t.Errorf("dt = %s, want 20ms", dt)
		}
	}
}

func TestTickManager_ParallelTicksNeverOverlapPerController(t *testing.T) {
	mgr := NewTickManager(DefaultTickInterval, 4)

	ctrls := make([]*countingController, 16)
	for i := range ctrls {
		ctrls[i] = &countingController{}
		mgr.Register(uint32(i+1), ctrls[i])
	}

	for range 10 {
		if err := mgr.Step(context.Background()); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}

	for i, c := range ctrls {
		if c.ticks.Load() != 10 {
			t.Errorf("controller %d ticks = %d, want 10", i+1, c.ticks.Load())
		}
		if c.overlap.Load() {
			t.Errorf("controller %d was ticked concurrently", i+1)
		}
	}
}

func TestTickManager_Start(t *testing.T) {
	mgr := NewTickManager(10*time.Millisecond, 2)
	ctrl := &countingController{}
	mgr.Register(1, ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- mgr.Start(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Start() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start() did not stop after context cancel")
	}

	if ctrl.ticks.Load() == 0 {
		t.Error("controller was never ticked")
	}
}

func TestTickManager_Stop(t *testing.T) {
	mgr := NewTickManager(10*time.Millisecond, 0)

	done := make(chan error, 1)
	go func() {
		done <- mgr.Start(context.Background())
	}()

	mgr.Stop()
	mgr.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() after Stop() error = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start() did not return after Stop()")
	}
}

func TestTickManager_DefaultInterval(t *testing.T) {
	if got := NewTickManager(0, 0).Interval(); got != DefaultTickInterval {
		t.Errorf("Interval() = %s, want %s", got, DefaultTickInterval)
	}
}
