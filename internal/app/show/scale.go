package show

import (
	"github.com/osa030/tweenbox/internal/app/effects"
	"github.com/osa030/tweenbox/internal/app/tween"
	"github.com/osa030/tweenbox/internal/domain/value"
)

// ScaleBuilder builds node scale tweens.
type ScaleBuilder struct {
	config *scaleConfig
}

type scaleConfig struct {
	From *value.Vec3 `mapstructure:"from"`
	To   value.Vec3  `mapstructure:"to"`
}

func (b *ScaleBuilder) Kind() string {
	return "scale"
}

func (b *ScaleBuilder) Description() string {
	return "Scales a node between two sizes"
}

func (b *ScaleBuilder) ValidateSettings(settings map[string]any) error {
	var config scaleConfig
	if err := decodeSettings(settings, &config); err != nil {
		return err
	}
	b.config = &config
	return nil
}

func (b *ScaleBuilder) Build(ctx BuildContext) (*tween.Tweener, error) {
	if b.config == nil {
		if err := b.ValidateSettings(nil); err != nil {
			return nil, err
		}
	}

	from := ctx.Node.Scale
	if b.config.From != nil {
		from = *b.config.From
	}

	eff := effects.NewScale(ctx.Clock, ctx.Node, from, b.config.To, ctx.Step.Duration)
	return eff.Tweener, nil
}

func init() {
	Register("scale", func() Builder {
		return &ScaleBuilder{}
	})
}
