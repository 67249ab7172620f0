package show

import (
	"strings"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tweenbox/internal/app/engine"
	"github.com/osa030/tweenbox/internal/app/tween"
	"github.com/osa030/tweenbox/internal/domain/curve"
	"github.com/osa030/tweenbox/internal/domain/easing"
	"github.com/osa030/tweenbox/internal/domain/stage"
)

// Build constructs a show on the given stage and engine: declares the
// nodes, builds one tween per step, wires completion chains, and starts
// every step that is neither chained nor marked manual.
func Build(def *Def, st *stage.Stage, eng *engine.Engine) (*Show, error) {
	for _, nd := range def.Nodes {
		node := stage.NewNode(nd.Name)
		if nd.Position != nil {
			node.Position = *nd.Position
		}
		if nd.Scale != nil {
			node.Scale = *nd.Scale
		}
		if nd.Rotation != nil {
			node.Rotation = *nd.Rotation
		}
		if nd.Alpha != nil {
			node.Alpha = *nd.Alpha
		}
		if nd.Color != nil {
			node.Color = *nd.Color
		}
		if err := st.Add(node); err != nil {
			return nil, errors.Wrapf(err, "failed to add node %s", nd.Name)
		}
		zlog.Debug().Msgf("declared show node: %s", nd.Name)
	}

	s := &Show{
		name:  def.Name,
		steps: make(map[string]*tween.Tweener, len(def.Steps)),
	}

	for i, step := range def.Steps {
		if _, ok := s.steps[step.Name]; ok {
			return nil, errors.Newf("duplicate step name: %s (step index %d)", step.Name, i)
		}

		factory, ok := registry[step.Kind]
		if !ok {
			return nil, errors.Newf("unsupported step kind: %s (step %s), known kinds: %s",
				step.Kind, step.Name, strings.Join(Kinds(), ", "))
		}

		builder := factory()
		if err := builder.ValidateSettings(step.Settings); err != nil {
			return nil, errors.Wrapf(err, "invalid settings for step %s", step.Name)
		}

		node, err := st.Node(step.Node)
		if err != nil {
			return nil, errors.Wrapf(err, "unknown node for step %s", step.Name)
		}

		tw, err := builder.Build(BuildContext{Clock: eng.Clock(), Node: node, Step: step})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build step %s", step.Name)
		}

		if err := applyStepConfig(tw, step); err != nil {
			return nil, errors.Wrapf(err, "step %s", step.Name)
		}

		eng.Add(tw)
		s.steps[step.Name] = tw
		s.order = append(s.order, step.Name)

		zlog.Info().Msgf("built show step: name=%s kind=%s node=%s duration=%v",
			step.Name, step.Kind, step.Node, step.Duration)
	}

	for _, step := range def.Steps {
		succ := s.steps[step.Name]
		if step.After == "" {
			if !step.Manual {
				succ.PlayForward()
			}
			continue
		}

		pred, ok := s.steps[step.After]
		if !ok {
			return nil, errors.Newf("unknown predecessor %s for step %s", step.After, step.Name)
		}
		if pred == succ {
			return nil, errors.Newf("step %s chains to itself", step.Name)
		}
		pred.AddOnFinished(func() {
			succ.PlayForward()
		}, false)
	}

	zlog.Info().Msgf("built show %s: %d nodes, %d steps", def.Name, len(def.Nodes), len(def.Steps))
	return s, nil
}

// applyStepConfig copies the step's playback settings onto the tween.
func applyStepConfig(tw *tween.Tweener, step StepDef) error {
	method, err := easing.ParseMethod(step.Method)
	if err != nil {
		return errors.Wrap(err, "failed to parse method")
	}

	style, err := tween.ParseStyle(step.Style)
	if err != nil {
		return errors.Wrap(err, "failed to parse style")
	}

	tw.Method = method
	tw.Style = style
	tw.SteeperCurves = step.Steeper
	tw.IgnoreTimeScale = step.IgnoreTimeScale
	tw.Delay = step.Delay
	tw.Group = step.Group

	if step.Curve != "" {
		cv, err := curve.Lookup(step.Curve)
		if err != nil {
			return errors.Wrap(err, "failed to resolve curve")
		}
		tw.Curve = cv
	}

	return nil
}
