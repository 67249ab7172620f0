// Package effects provides concrete tweens that feed eased samples
// into stage nodes or arbitrary consumers. Every effect embeds a
// tweener and acts as its own sampler.
package effects

import (
	"github.com/osa030/tweenbox/internal/app/tween"
	"github.com/osa030/tweenbox/internal/domain/value"
)

// Float tweens a bare scalar through a callback. It is the escape
// hatch for targets the node-bound effects do not cover.
type Float struct {
	*tween.Tweener
	From  float64
	To    float64
	Apply func(v float64)
}

// NewFloat returns a scalar tween delivering values to apply.
func NewFloat(c tween.Clock, from, to, duration float64, apply func(v float64)) *Float {
	f := &Float{Tweener: tween.New(c), From: from, To: to, Apply: apply}
	f.Duration = duration
	f.SetSampler(f)
	return f
}

// Sample delivers the interpolated value to the callback.
func (f *Float) Sample(factor float64, finished bool) {
	if f.Apply != nil {
		f.Apply(value.Lerp(f.From, f.To, factor))
	}
}
