package show

import (
	"github.com/cockroachdb/errors"

	"github.com/osa030/tweenbox/internal/app/effects"
	"github.com/osa030/tweenbox/internal/app/tween"
	"github.com/osa030/tweenbox/internal/domain/value"
)

// ColorBuilder builds node color blend tweens.
type ColorBuilder struct {
	config *colorConfig
}

type colorConfig struct {
	From *value.Color `mapstructure:"from"`
	To   value.Color  `mapstructure:"to"`
}

func (b *ColorBuilder) Kind() string {
	return "color"
}

func (b *ColorBuilder) Description() string {
	return "Blends a node's color between two values"
}

func (b *ColorBuilder) ValidateSettings(settings map[string]any) error {
	var config colorConfig
	if err := decodeSettings(settings, &config); err != nil {
		return err
	}

	if err := b.checkComponents(config.To); err != nil {
		return errors.Wrap(err, "invalid to color")
	}
	if config.From != nil {
		if err := b.checkComponents(*config.From); err != nil {
			return errors.Wrap(err, "invalid from color")
		}
	}

	b.config = &config
	return nil
}

// checkComponents rejects components outside [0, 1]. The value types
// carry no validation tags, so the range check lives here.
func (b *ColorBuilder) checkComponents(c value.Color) error {
	for _, v := range []float64{c.R, c.G, c.B, c.A} {
		if v < 0 || v > 1 {
			return errors.Newf("component %v out of range [0, 1]", v)
		}
	}
	return nil
}

func (b *ColorBuilder) Build(ctx BuildContext) (*tween.Tweener, error) {
	if b.config == nil {
		if err := b.ValidateSettings(nil); err != nil {
			return nil, err
		}
	}

	from := ctx.Node.Color
	if b.config.From != nil {
		from = *b.config.From
	}

	eff := effects.NewColor(ctx.Clock, ctx.Node, from, b.config.To, ctx.Step.Duration)
	return eff.Tweener, nil
}

func init() {
	Register("color", func() Builder {
		return &ColorBuilder{}
	})
}
