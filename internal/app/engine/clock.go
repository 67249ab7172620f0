package engine

import (
	"sync"
	"time"
)

// FrameClock tracks scaled and unscaled frame time for tweeners. It
// only advances when Step is called, so owners control the frame rate
// and tests can drive it deterministically.
//
// The scaled domain accumulates delta * timeScale per step; changing
// the scale never rewrites time that has already passed.
type FrameClock struct {
	mu        sync.RWMutex
	timeScale float64

	last    time.Time
	stepped bool

	scaledNow   float64
	scaledDelta float64
	realNow     float64
	realDelta   float64
}

// NewFrameClock returns a clock at time zero with scale 1.
func NewFrameClock() *FrameClock {
	return &FrameClock{timeScale: 1}
}

// SetTimeScale sets the scaled-domain speed. Zero pauses the scaled
// domain; negative values are clamped to zero. The unscaled domain is
// unaffected.
func (c *FrameClock) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	c.mu.Lock()
	c.timeScale = scale
	c.mu.Unlock()
}

// TimeScale returns the current scaled-domain speed.
func (c *FrameClock) TimeScale() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timeScale
}

// Step advances both domains to the given wall time. The first step
// establishes the epoch and reports zero deltas. Wall time moving
// backwards yields a zero-delta frame, never negative time.
func (c *FrameClock) Step(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.stepped {
		c.stepped = true
		c.last = at
	}

	d := at.Sub(c.last).Seconds()
	if d < 0 {
		d = 0
	}
	c.last = at

	c.realDelta = d
	c.realNow += d
	c.scaledDelta = d * c.timeScale
	c.scaledNow += c.scaledDelta
}

// Time returns the scaled time since the first step.
func (c *FrameClock) Time() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scaledNow
}

// Delta returns the scaled delta of the last step.
func (c *FrameClock) Delta() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scaledDelta
}

// RealTime returns the unscaled time since the first step.
func (c *FrameClock) RealTime() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.realNow
}

// RealDelta returns the unscaled delta of the last step.
func (c *FrameClock) RealDelta() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.realDelta
}
