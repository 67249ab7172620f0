// Package engine drives registered tweeners from a single frame clock.
// It is the concurrency boundary around the single-threaded tween core:
// every mutation and every frame step serializes on the engine mutex.
package engine

import (
	"context"
	"sync"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tweenbox/internal/app/tween"
	"github.com/osa030/tweenbox/internal/domain/stage"
)

// Hooks are optional callbacks invoked by the engine around frame
// processing. They run outside the engine mutex.
type Hooks struct {
	// AfterStep runs after every completed frame step.
	AfterStep func(frame uint64)
}

// Engine owns the frame clock, the stage and the tick list.
//
// Tweener listener callbacks run inside Step while the mutex is held;
// they may operate on tweeners but must not call back into the engine.
type Engine struct {
	mu      sync.Mutex
	clock   *FrameClock
	stage   *stage.Stage
	entries []*tween.Tweener
	frame   uint64
	hooks   Hooks
}

// New returns an engine over the given stage. A nil stage gets an
// empty one.
func New(st *stage.Stage) *Engine {
	if st == nil {
		st = stage.New()
	}
	return &Engine{
		clock: NewFrameClock(),
		stage: st,
	}
}

// Clock returns the engine's frame clock, for constructing tweeners.
func (e *Engine) Clock() *FrameClock {
	return e.clock
}

// Stage returns the stage the engine animates.
func (e *Engine) Stage() *stage.Stage {
	return e.stage
}

// SetHooks installs the engine hooks.
func (e *Engine) SetHooks(h Hooks) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hooks = h
}

// Add registers tweeners with the engine. Registration order is tick
// order.
func (e *Engine) Add(tws ...*tween.Tweener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = append(e.entries, tws...)
}

// Remove unregisters a tweener.
func (e *Engine) Remove(tw *tween.Tweener) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, entry := range e.entries {
		if entry == tw {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered tweeners.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.entries)
}

// Active returns the number of currently enabled tweeners.
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, tw := range e.entries {
		if tw.Enabled() {
			n++
		}
	}
	return n
}

// Frame returns the number of completed steps.
func (e *Engine) Frame() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frame
}

// Step advances the clock to the given wall time and ticks every
// registered tweener exactly once.
func (e *Engine) Step(at time.Time) {
	e.mu.Lock()
	e.clock.Step(at)
	for _, tw := range e.entries {
		tw.Tick()
	}
	e.frame++
	frame := e.frame
	hook := e.hooks.AfterStep
	e.mu.Unlock()

	if hook != nil {
		hook(frame)
	}
}

// Snapshot copies the current stage state under the engine lock, so it
// is consistent with tick boundaries.
func (e *Engine) Snapshot() []stage.NodeState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stage.Snapshot()
}

// PlayGroup plays every tweener tagged with the group and returns how
// many were affected.
func (e *Engine) PlayGroup(group int, forward bool) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, tw := range e.entries {
		if tw.Group == group {
			tw.Play(forward)
			n++
		}
	}
	return n
}

// StopGroup deactivates every tweener tagged with the group without
// completing them, and returns how many were affected.
func (e *Engine) StopGroup(group int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, tw := range e.entries {
		if tw.Group == group {
			tw.SetEnabled(false)
			n++
		}
	}
	return n
}

// Run steps the engine from a wall ticker until the context is
// cancelled. Returns nil on cancellation.
func (e *Engine) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	zlog.Info().Int("fps", fps).Msg("Engine loop started")
	for {
		select {
		case <-ctx.Done():
			zlog.Info().Uint64("frames", e.Frame()).Msg("Engine loop stopped")
			return nil
		case now := <-ticker.C:
			e.Step(now)
		}
	}
}
