package show

import (
	"github.com/osa030/tweenbox/internal/app/effects"
	"github.com/osa030/tweenbox/internal/app/tween"
)

// AlphaBuilder builds node opacity fades.
type AlphaBuilder struct {
	config *alphaConfig
}

type alphaConfig struct {
	// From overrides the start opacity. Nil captures the node's
	// current opacity at build time.
	From *float64 `mapstructure:"from" validate:"omitempty,gte=0,lte=1"`
	To   float64  `mapstructure:"to" validate:"gte=0,lte=1"`
}

func (b *AlphaBuilder) Kind() string {
	return "alpha"
}

func (b *AlphaBuilder) Description() string {
	return "Fades a node's opacity between two values"
}

func (b *AlphaBuilder) ValidateSettings(settings map[string]any) error {
	var config alphaConfig
	if err := decodeSettings(settings, &config); err != nil {
		return err
	}
	b.config = &config
	return nil
}

func (b *AlphaBuilder) Build(ctx BuildContext) (*tween.Tweener, error) {
	if b.config == nil {
		if err := b.ValidateSettings(nil); err != nil {
			return nil, err
		}
	}

	from := ctx.Node.Alpha
	if b.config.From != nil {
		from = *b.config.From
	}

	eff := effects.NewAlpha(ctx.Clock, ctx.Node, from, b.config.To, ctx.Step.Duration)
	return eff.Tweener, nil
}

func init() {
	Register("alpha", func() Builder {
		return &AlphaBuilder{}
	})
}
