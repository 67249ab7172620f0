// Package show loads tween show definitions from YAML and builds them
// into live tweens on an engine. A show is thin construction plumbing:
// chaining rides the tween completion listeners, there is no timeline
// model of its own.
package show

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osa030/tweenbox/internal/app/tween"
	"github.com/osa030/tweenbox/internal/domain/value"
)

// Def is a complete show definition.
type Def struct {
	Name  string    `yaml:"name" validate:"required"`
	Nodes []NodeDef `yaml:"nodes" validate:"dive"`
	Steps []StepDef `yaml:"steps" validate:"dive"`
}

// NodeDef declares a stage node and overrides of its initial state.
// Nil fields keep the node defaults.
type NodeDef struct {
	Name     string       `yaml:"name" validate:"required"`
	Position *value.Vec3  `yaml:"position,omitempty"`
	Scale    *value.Vec3  `yaml:"scale,omitempty"`
	Rotation *float64     `yaml:"rotation,omitempty"`
	Alpha    *float64     `yaml:"alpha,omitempty"`
	Color    *value.Color `yaml:"color,omitempty"`
}

// StepDef declares one tween step. Duration zero is an instant tween,
// matching the controller semantics.
type StepDef struct {
	Name            string         `yaml:"name" validate:"required"`
	Node            string         `yaml:"node" validate:"required"`
	Kind            string         `yaml:"kind" validate:"required"`
	Duration        float64        `yaml:"duration" validate:"gte=0"`
	Delay           float64        `yaml:"delay" validate:"gte=0"`
	Method          string         `yaml:"method" default:"linear"`
	Style           string         `yaml:"style" default:"once"`
	Curve           string         `yaml:"curve,omitempty"`
	Steeper         bool           `yaml:"steeper"`
	IgnoreTimeScale bool           `yaml:"ignore_time_scale"`
	Group           int            `yaml:"group"`
	After           string         `yaml:"after,omitempty"`
	Manual          bool           `yaml:"manual"`
	Settings        map[string]any `yaml:"settings,omitempty"`
}

// Load reads and validates a show definition from a YAML file.
func Load(path string) (*Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read show file")
	}

	var def Def
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(err, "failed to parse show file")
	}

	if err := defaults.Set(&def); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	if err := validator.New().Struct(&def); err != nil {
		return nil, errors.Wrap(err, "show validation failed")
	}

	return &def, nil
}

// Show is a built set of named tweens registered on an engine.
type Show struct {
	name  string
	steps map[string]*tween.Tweener
	order []string
}

// Name returns the show's name.
func (s *Show) Name() string {
	return s.name
}

// Step returns the tween built for the named step.
func (s *Show) Step(name string) (*tween.Tweener, bool) {
	tw, ok := s.steps[name]
	return tw, ok
}

// Names returns the step names in definition order.
func (s *Show) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of steps.
func (s *Show) Len() int {
	return len(s.steps)
}
