package effects

import (
	"github.com/osa030/tweenbox/internal/app/tween"
	"github.com/osa030/tweenbox/internal/domain/stage"
	"github.com/osa030/tweenbox/internal/domain/value"
)

// Alpha tweens a node's opacity between From and To.
type Alpha struct {
	*tween.Tweener
	Node *stage.Node
	From float64
	To   float64
}

// NewAlpha returns an alpha tween over node.
func NewAlpha(c tween.Clock, node *stage.Node, from, to, duration float64) *Alpha {
	a := &Alpha{Tweener: tween.New(c), Node: node, From: from, To: to}
	a.Duration = duration
	a.SetSampler(a)
	return a
}

// Sample writes the interpolated alpha into the node.
func (a *Alpha) Sample(factor float64, finished bool) {
	a.Node.Alpha = value.Lerp(a.From, a.To, factor)
}

// SetBeginToCurrent captures the node's current alpha as the start value.
func (a *Alpha) SetBeginToCurrent() {
	a.From = a.Node.Alpha
}

// SetEndToCurrent captures the node's current alpha as the end value.
func (a *Alpha) SetEndToCurrent() {
	a.To = a.Node.Alpha
}
