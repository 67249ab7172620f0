// Package stage provides the named nodes whose properties effects animate.
package stage

import (
	"github.com/cockroachdb/errors"

	"github.com/osa030/tweenbox/internal/domain/value"
)

var (
	// ErrNodeNotFound is returned when a node name is not on the stage.
	ErrNodeNotFound = errors.New("node not found")
	// ErrDuplicateNode is returned when adding a node whose name is taken.
	ErrDuplicateNode = errors.New("duplicate node")
)

// Node is a named bag of animatable properties. Effects write into it
// every sample; it carries no behavior of its own.
type Node struct {
	Name     string
	Position value.Vec3
	Scale    value.Vec3
	Rotation float64 // Degrees
	Alpha    float64 // [0,1]
	Color    value.Color
}

// NewNode returns a node with identity defaults: origin position, unit
// scale, fully opaque white.
func NewNode(name string) *Node {
	return &Node{
		Name:  name,
		Scale: value.Vec3{X: 1, Y: 1, Z: 1},
		Alpha: 1,
		Color: value.White,
	}
}

// NodeState is a plain copy of a node's animatable state, suitable for
// feeds and UIs.
type NodeState struct {
	Name     string      `json:"name"`
	Position value.Vec3  `json:"position"`
	Scale    value.Vec3  `json:"scale"`
	Rotation float64     `json:"rotation"`
	Alpha    float64     `json:"alpha"`
	Color    value.Color `json:"color"`
}

// Stage is an ordered collection of nodes with name lookup.
// Not safe for concurrent use; the engine serializes access.
type Stage struct {
	nodes []*Node
	index map[string]*Node
}

// New returns an empty stage.
func New() *Stage {
	return &Stage{index: make(map[string]*Node)}
}

// Add places a node on the stage. Node names must be unique.
func (s *Stage) Add(n *Node) error {
	if _, ok := s.index[n.Name]; ok {
		return errors.Wrapf(ErrDuplicateNode, "%q", n.Name)
	}
	s.nodes = append(s.nodes, n)
	s.index[n.Name] = n
	return nil
}

// Node returns the node registered under name.
func (s *Stage) Node(name string) (*Node, error) {
	n, ok := s.index[name]
	if !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "%q", name)
	}
	return n, nil
}

// Nodes returns the stage's nodes in insertion order.
func (s *Stage) Nodes() []*Node {
	out := make([]*Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Snapshot copies the current state of every node in insertion order.
func (s *Stage) Snapshot() []NodeState {
	out := make([]NodeState, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, NodeState{
			Name:     n.Name,
			Position: n.Position,
			Scale:    n.Scale,
			Rotation: n.Rotation,
			Alpha:    n.Alpha,
			Color:    n.Color,
		})
	}
	return out
}
