package show

import (
	"sort"

	"github.com/samber/lo"

	"github.com/osa030/tweenbox/internal/app/tween"
	"github.com/osa030/tweenbox/internal/domain/stage"
)

// Builder constructs tweens for one step kind.
type Builder interface {
	// Kind returns the step kind this builder handles.
	Kind() string

	// Description returns a human readable description of the kind.
	Description() string

	// ValidateSettings decodes and validates a step's settings map.
	// Implementations keep the decoded configuration for Build.
	ValidateSettings(settings map[string]any) error

	// Build constructs the step's tween against the target node.
	Build(ctx BuildContext) (*tween.Tweener, error)
}

// BuildContext carries what a builder needs to construct a tween.
type BuildContext struct {
	Clock tween.Clock
	Node  *stage.Node
	Step  StepDef
}

var registry = make(map[string]func() Builder)

// Register registers a builder factory for a step kind.
func Register(kind string, factory func() Builder) {
	registry[kind] = factory
}

// Kinds returns the registered step kinds in sorted order.
func Kinds() []string {
	kinds := lo.Keys(registry)
	sort.Strings(kinds)
	return kinds
}

// Describe returns kind to description for all registered builders.
func Describe() map[string]string {
	out := make(map[string]string, len(registry))
	for kind, factory := range registry {
		out[kind] = factory().Description()
	}
	return out
}
