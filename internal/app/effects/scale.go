package effects

import (
	"github.com/osa030/tweenbox/internal/app/tween"
	"github.com/osa030/tweenbox/internal/domain/stage"
	"github.com/osa030/tweenbox/internal/domain/value"
)

// Scale tweens a node's scale between From and To.
type Scale struct {
	*tween.Tweener
	Node *stage.Node
	From value.Vec3
	To   value.Vec3
}

// NewScale returns a scale tween over node.
func NewScale(c tween.Clock, node *stage.Node, from, to value.Vec3, duration float64) *Scale {
	s := &Scale{Tweener: tween.New(c), Node: node, From: from, To: to}
	s.Duration = duration
	s.SetSampler(s)
	return s
}

// Sample writes the interpolated scale into the node.
func (s *Scale) Sample(factor float64, finished bool) {
	s.Node.Scale = s.From.Lerp(s.To, factor)
}

// SetBeginToCurrent captures the node's current scale as the start value.
func (s *Scale) SetBeginToCurrent() {
	s.From = s.Node.Scale
}

// SetEndToCurrent captures the node's current scale as the end value.
func (s *Scale) SetEndToCurrent() {
	s.To = s.Node.Scale
}
