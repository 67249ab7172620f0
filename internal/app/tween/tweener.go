// Package tween provides the playback controller at the heart of the
// engine: a tweener advances a normalized progress factor every frame,
// applies easing and wraparound rules, and notifies listeners when a
// run completes.
//
// Tweeners are single-threaded and frame-driven. One Tick runs to
// completion synchronously, including the full listener fan-out; cross
// goroutine access is the engine layer's job.
package tween

import (
	"math"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tweenbox/internal/domain/curve"
	"github.com/osa030/tweenbox/internal/domain/easing"
)

// Tweener advances a [0,1] progress factor under easing, looping and
// direction rules, and hands the eased value to a sampler every tick.
//
// The zero value is not usable; construct with New.
type Tweener struct {
	// Method selects the easing formula applied before sampling.
	Method easing.Method
	// Style selects the wraparound policy at the [0,1] bounds.
	Style Style
	// Curve optionally reshapes the eased value. Applied after Method.
	Curve curve.Curve
	// SteeperCurves sharpens the easing shape. No effect on Linear.
	SteeperCurves bool
	// IgnoreTimeScale makes the tweener advance on unscaled time.
	IgnoreTimeScale bool
	// Delay defers advancement after activation, in seconds. Negative
	// values are treated as zero.
	Delay float64
	// Duration is the time for the factor to travel 0 to 1, in seconds.
	// Zero means the tween completes on its first non-deferred tick.
	Duration float64
	// Group tags the tweener for group playback operations.
	Group int

	// EventReceiver and CallWhenFinished form the legacy notification
	// channel. Skipped unless both are set.
	//
	// Deprecated: register completion listeners with AddOnFinished.
	EventReceiver    MessageSink
	CallWhenFinished string

	clock   Clock
	sampler Sampler

	enabled   bool
	started   bool
	startTime float64

	factor float64
	// rate is the signed per-second factor increment. Its magnitude is
	// recomputed lazily from Duration; its sign is the playback
	// direction and survives duration edits.
	rate           float64
	cachedDuration float64

	onFinished []*Handler
	snapshot   []*Handler
}

// New returns an idle tweener reading time from c.
func New(c Clock) *Tweener {
	return &Tweener{
		Duration:       1,
		clock:          c,
		rate:           1000,
		cachedDuration: -1,
	}
}

// amountPerDelta returns the signed per-second increment, refreshing
// its magnitude if Duration changed since the last read. The sign is
// never touched by the refresh.
func (t *Tweener) amountPerDelta() float64 {
	if t.cachedDuration != t.Duration {
		t.cachedDuration = t.Duration
		mag := 1000.0
		if t.Duration > 0 {
			mag = 1 / t.Duration
		}
		t.rate = math.Copysign(mag, t.rate)
	}
	return t.rate
}

// Direction returns the current playback direction.
func (t *Tweener) Direction() Direction {
	if t.amountPerDelta() < 0 {
		return Reverse
	}
	return Forward
}

// Factor returns the raw sampling factor.
func (t *Tweener) Factor() float64 {
	return t.factor
}

// SetFactor sets the raw sampling factor, clamped to [0,1].
func (t *Tweener) SetFactor(f float64) {
	t.factor = easing.Clamp01(f)
}

// Enabled reports whether the tweener advances on Tick.
func (t *Tweener) Enabled() bool {
	return t.enabled
}

// SetEnabled activates or deactivates ticking. Deactivating resets the
// started flag, so the delay re-arms on the next activation.
func (t *Tweener) SetEnabled(enabled bool) {
	t.enabled = enabled
	if !enabled {
		t.started = false
	}
}

// SetSampler installs the consumer of eased samples. A nil sampler is
// tolerated; samples are dropped.
func (t *Tweener) SetSampler(s Sampler) {
	t.sampler = s
}

// Tick advances the tween by one frame. Outside its active window
// (disabled, or still inside the delay) a tick is a no-op.
func (t *Tweener) Tick() {
	if !t.enabled || t.clock == nil {
		return
	}

	delta := t.clock.Delta()
	now := t.clock.Time()
	if t.IgnoreTimeScale {
		delta = t.clock.RealDelta()
		now = t.clock.RealTime()
	}

	if !t.started {
		t.started = true
		d := t.Delay
		if d < 0 {
			d = 0
		}
		t.startTime = now + d
	}

	if now < t.startTime {
		return
	}

	// Advance the sampling factor. A zero-duration tween jumps a full
	// unit so it reaches its terminal regardless of the frame delta.
	rate := t.amountPerDelta()
	if t.Duration == 0 {
		t.factor += math.Copysign(1, rate)
	} else {
		t.factor += rate * delta
	}

	switch t.Style {
	case Loop:
		if t.factor > 1 || t.factor < 0 {
			// Keeps the fractional phase and the direction.
			t.factor -= math.Floor(t.factor)
		}
	case PingPong:
		if t.factor > 1 {
			t.factor = 1 - (t.factor - math.Floor(t.factor))
			t.rate = -t.rate
		} else if t.factor < 0 {
			t.factor = -t.factor
			t.factor -= math.Floor(t.factor)
			t.rate = -t.rate
		}
	}

	if t.Style == Once && (t.Duration == 0 || t.factor > 1 || t.factor < 0) {
		t.factor = easing.Clamp01(t.factor)
		t.Sample(t.factor, true)

		// The sample call may have retargeted the tween; stop only if
		// the factor is still pinned at the terminal for the current
		// direction.
		if t.Duration == 0 || (t.factor == 1 && t.rate > 0) || (t.factor == 0 && t.rate < 0) {
			t.SetEnabled(false)
			zlog.Debug().Msgf("tween completed: factor=%v direction=%s", t.factor, t.Direction())
		}

		completions.fire(t)
		return
	}

	t.Sample(t.factor, false)
}

// Sample clamps the raw factor, applies the easing method and the
// optional curve, and forwards the result to the sampler.
func (t *Tweener) Sample(factor float64, finished bool) {
	val := easing.Evaluate(t.Method, factor, t.SteeperCurves)
	if t.Curve != nil {
		val = t.Curve.Evaluate(val)
	}
	if t.sampler != nil {
		t.sampler.Sample(val, finished)
	}
}

// Play activates the tween in the given direction and runs one frame
// immediately, so samplers observe the starting state without a one
// frame lag.
func (t *Tweener) Play(forward bool) {
	rate := math.Abs(t.amountPerDelta())
	if !forward {
		rate = -rate
	}
	t.rate = rate
	t.enabled = true
	zlog.Debug().Msgf("tween play: direction=%s duration=%v delay=%v", t.Direction(), t.Duration, t.Delay)
	t.Tick()
}

// PlayForward plays the tween toward factor 1.
func (t *Tweener) PlayForward() {
	t.Play(true)
}

// PlayReverse plays the tween toward factor 0.
func (t *Tweener) PlayReverse() {
	t.Play(false)
}

// Toggle flips the direction of an in-progress tween, or plays it
// forward from the start. Unlike Play it does not run a frame-zero
// tick.
func (t *Tweener) Toggle() {
	if t.factor > 0 {
		t.rate = -t.amountPerDelta()
	} else {
		t.rate = math.Abs(t.amountPerDelta())
	}
	t.enabled = true
}

// ResetToBeginning rewinds to the start for the current direction and
// samples it once, so observers see the rewound state immediately. The
// delay re-arms on the next activation.
func (t *Tweener) ResetToBeginning() {
	t.started = false
	if t.amountPerDelta() < 0 {
		t.factor = 1
	} else {
		t.factor = 0
	}
	t.Sample(t.factor, false)
}

// Finish fast-forwards an active tween to the terminal state for its
// current direction, sampling it as finished and firing the completion
// listeners.
func (t *Tweener) Finish() {
	if !t.enabled {
		return
	}
	if t.amountPerDelta() > 0 {
		t.factor = 1
	} else {
		t.factor = 0
	}
	t.Sample(t.factor, true)
	t.SetEnabled(false)
	completions.fire(t)
}

// SetOnFinished replaces all completion listeners with a single
// persistent one and returns its handle.
func (t *Tweener) SetOnFinished(fn Callback) *Handler {
	t.onFinished = nil
	return t.AddOnFinished(fn, false)
}

// AddOnFinished appends a completion listener. Listeners fire in
// registration order. One-shot listeners are dropped after their first
// firing; others persist across completions.
func (t *Tweener) AddOnFinished(fn Callback, oneShot bool) *Handler {
	h := &Handler{fn: fn, oneShot: oneShot}
	t.onFinished = append(t.onFinished, h)
	return h
}

// RemoveOnFinished removes a previously registered listener. Removal
// is honored immediately, even from inside a listener while a
// notification is in flight.
func (t *Tweener) RemoveOnFinished(h *Handler) bool {
	removed := removeHandler(&t.onFinished, h)
	if removeHandler(&t.snapshot, h) {
		removed = true
	}
	return removed
}

// notifyFinished runs the completion fan-out: the live listener list is
// swapped aside, the snapshot is invoked in order, and surviving
// persistent listeners are re-registered after the firing. Listeners
// registered during the firing land on the fresh live list and are not
// invoked until the next completion. Runs under the dispatch token.
func (t *Tweener) notifyFinished() {
	if len(t.onFinished) > 0 {
		t.snapshot = t.onFinished
		t.onFinished = nil

		for i := 0; i < len(t.snapshot); {
			h := t.snapshot[i]
			if h != nil && h.fn != nil {
				h.fn()
				if i >= len(t.snapshot) {
					break
				}
				if t.snapshot[i] != h {
					// The entry removed itself; the next one has
					// shifted into this slot.
					continue
				}
			}
			i++
		}

		for _, h := range t.snapshot {
			if h != nil && !h.oneShot {
				t.onFinished = append(t.onFinished, h)
			}
		}
		t.snapshot = nil
	}

	if t.EventReceiver != nil && t.CallWhenFinished != "" {
		t.EventReceiver.TweenMessage(t.CallWhenFinished, t)
	}
}
