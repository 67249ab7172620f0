// Package curve provides named animation curves that reshape an eased
// factor before it reaches a sampler. A curve maps [0,1] to [0,1]-ish
// space; overshoot (back, elastic) is allowed and left to the consumer.
package curve

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// ErrUnknownCurve is returned when a curve name is not registered.
var ErrUnknownCurve = errors.New("unknown curve")

// Curve evaluates a progress value. Implementations must be
// deterministic and side-effect free.
type Curve interface {
	// Evaluate maps a progress value t (normally in [0,1]) to an output value.
	Evaluate(t float64) float64
}

// Func adapts a plain function to the Curve interface.
type Func func(t float64) float64

// Evaluate calls the wrapped function.
func (f Func) Evaluate(t float64) float64 {
	return f(t)
}

// registry holds registered curves by name.
var registry = make(map[string]Curve)

// Register registers a named curve. Later registrations with the same
// name replace earlier ones. Intended for init time and startup wiring.
func Register(name string, c Curve) {
	registry[name] = c
}

// Lookup returns the curve registered under name.
func Lookup(name string) (Curve, error) {
	c, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCurve, "%q", name)
	}
	return c, nil
}

// Names returns all registered curve names in sorted order.
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}
