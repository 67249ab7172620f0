package effects

import (
	"github.com/osa030/tweenbox/internal/app/tween"
	"github.com/osa030/tweenbox/internal/domain/stage"
	"github.com/osa030/tweenbox/internal/domain/value"
)

// Color tweens a node's color between From and To, component-wise.
type Color struct {
	*tween.Tweener
	Node *stage.Node
	From value.Color
	To   value.Color
}

// NewColor returns a color tween over node.
func NewColor(c tween.Clock, node *stage.Node, from, to value.Color, duration float64) *Color {
	cl := &Color{Tweener: tween.New(c), Node: node, From: from, To: to}
	cl.Duration = duration
	cl.SetSampler(cl)
	return cl
}

// Sample writes the interpolated color into the node.
func (c *Color) Sample(factor float64, finished bool) {
	c.Node.Color = c.From.Lerp(c.To, factor)
}

// SetBeginToCurrent captures the node's current color as the start value.
func (c *Color) SetBeginToCurrent() {
	c.From = c.Node.Color
}

// SetEndToCurrent captures the node's current color as the end value.
func (c *Color) SetEndToCurrent() {
	c.To = c.Node.Color
}
