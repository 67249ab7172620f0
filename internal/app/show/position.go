package show

import (
	"github.com/osa030/tweenbox/internal/app/effects"
	"github.com/osa030/tweenbox/internal/app/tween"
	"github.com/osa030/tweenbox/internal/domain/value"
)

// PositionBuilder builds node movement tweens.
type PositionBuilder struct {
	config *positionConfig
}

type positionConfig struct {
	From *value.Vec3 `mapstructure:"from"`
	To   value.Vec3  `mapstructure:"to"`
}

func (b *PositionBuilder) Kind() string {
	return "position"
}

func (b *PositionBuilder) Description() string {
	return "Moves a node between two positions"
}

func (b *PositionBuilder) ValidateSettings(settings map[string]any) error {
	var config positionConfig
	if err := decodeSettings(settings, &config); err != nil {
		return err
	}
	b.config = &config
	return nil
}

func (b *PositionBuilder) Build(ctx BuildContext) (*tween.Tweener, error) {
	if b.config == nil {
		if err := b.ValidateSettings(nil); err != nil {
			return nil, err
		}
	}

	from := ctx.Node.Position
	if b.config.From != nil {
		from = *b.config.From
	}

	eff := effects.NewPosition(ctx.Clock, ctx.Node, from, b.config.To, ctx.Step.Duration)
	return eff.Tweener, nil
}

func init() {
	Register("position", func() Builder {
		return &PositionBuilder{}
	})
}
