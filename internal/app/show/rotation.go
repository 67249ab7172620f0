package show

import (
	"github.com/osa030/tweenbox/internal/app/effects"
	"github.com/osa030/tweenbox/internal/app/tween"
)

// RotationBuilder builds node rotation tweens. Angles are degrees and
// may exceed a full turn for multi-revolution spins.
type RotationBuilder struct {
	config *rotationConfig
}

type rotationConfig struct {
	From *float64 `mapstructure:"from"`
	To   float64  `mapstructure:"to"`
}

func (b *RotationBuilder) Kind() string {
	return "rotation"
}

func (b *RotationBuilder) Description() string {
	return "Rotates a node between two angles in degrees"
}

func (b *RotationBuilder) ValidateSettings(settings map[string]any) error {
	var config rotationConfig
	if err := decodeSettings(settings, &config); err != nil {
		return err
	}
	b.config = &config
	return nil
}

func (b *RotationBuilder) Build(ctx BuildContext) (*tween.Tweener, error) {
	if b.config == nil {
		if err := b.ValidateSettings(nil); err != nil {
			return nil, err
		}
	}

	from := ctx.Node.Rotation
	if b.config.From != nil {
		from = *b.config.From
	}

	eff := effects.NewRotation(ctx.Clock, ctx.Node, from, b.config.To, ctx.Step.Duration)
	return eff.Tweener, nil
}

func init() {
	Register("rotation", func() Builder {
		return &RotationBuilder{}
	})
}
