package effects

import (
	"github.com/osa030/tweenbox/internal/app/tween"
	"github.com/osa030/tweenbox/internal/domain/stage"
	"github.com/osa030/tweenbox/internal/domain/value"
)

// Position tweens a node's position between From and To.
type Position struct {
	*tween.Tweener
	Node *stage.Node
	From value.Vec3
	To   value.Vec3
}

// NewPosition returns a position tween over node.
func NewPosition(c tween.Clock, node *stage.Node, from, to value.Vec3, duration float64) *Position {
	p := &Position{Tweener: tween.New(c), Node: node, From: from, To: to}
	p.Duration = duration
	p.SetSampler(p)
	return p
}

// Sample writes the interpolated position into the node.
func (p *Position) Sample(factor float64, finished bool) {
	p.Node.Position = p.From.Lerp(p.To, factor)
}

// SetBeginToCurrent captures the node's current position as the start value.
func (p *Position) SetBeginToCurrent() {
	p.From = p.Node.Position
}

// SetEndToCurrent captures the node's current position as the end value.
func (p *Position) SetEndToCurrent() {
	p.To = p.Node.Position
}
