package effects

import (
	"github.com/osa030/tweenbox/internal/app/tween"
	"github.com/osa030/tweenbox/internal/domain/stage"
	"github.com/osa030/tweenbox/internal/domain/value"
)

// Rotation tweens a node's rotation between From and To, in degrees.
// The interpolation is a plain lerp; winding multiple turns is
// expressed by passing angles beyond 360.
type Rotation struct {
	*tween.Tweener
	Node *stage.Node
	From float64
	To   float64
}

// NewRotation returns a rotation tween over node.
func NewRotation(c tween.Clock, node *stage.Node, from, to, duration float64) *Rotation {
	r := &Rotation{Tweener: tween.New(c), Node: node, From: from, To: to}
	r.Duration = duration
	r.SetSampler(r)
	return r
}

// Sample writes the interpolated rotation into the node.
func (r *Rotation) Sample(factor float64, finished bool) {
	r.Node.Rotation = value.Lerp(r.From, r.To, factor)
}

// SetBeginToCurrent captures the node's current rotation as the start value.
func (r *Rotation) SetBeginToCurrent() {
	r.From = r.Node.Rotation
}

// SetEndToCurrent captures the node's current rotation as the end value.
func (r *Rotation) SetEndToCurrent() {
	r.To = r.Node.Rotation
}
