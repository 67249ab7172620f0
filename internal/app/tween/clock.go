package tween

// Clock supplies frame time to tweeners in two domains. Time and Delta
// report scaled seconds, RealTime and RealDelta unscaled wall seconds.
// A tweener reads exactly one domain per tick, selected by its
// IgnoreTimeScale flag.
type Clock interface {
	// Time returns the scaled time since the clock started.
	Time() float64
	// Delta returns the scaled time advanced by the last frame.
	Delta() float64
	// RealTime returns the unscaled time since the clock started.
	RealTime() float64
	// RealDelta returns the unscaled time advanced by the last frame.
	RealDelta() float64
}

// Sampler consumes the eased factor produced by a tweener every tick.
// Implementations must not assume a fixed call rate; finished marks the
// sample delivered at a terminal crossing.
type Sampler interface {
	Sample(factor float64, finished bool)
}

// MessageSink is the deprecated name-based notification channel. It is
// invoked best-effort after the completion listeners when a receiver
// and a method name are both configured.
//
// Deprecated: register completion listeners with AddOnFinished instead.
type MessageSink interface {
	TweenMessage(method string, t *Tweener)
}
