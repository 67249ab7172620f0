package curve

import "github.com/tanema/gween/ease"

// fromEase adapts a gween easing function (time, begin, change, duration)
// to the normalized Curve shape.
func fromEase(fn ease.TweenFunc) Curve {
	return Func(func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	})
}

func init() {
	builtins := map[string]ease.TweenFunc{
		"in_quad":        ease.InQuad,
		"out_quad":       ease.OutQuad,
		"in_out_quad":    ease.InOutQuad,
		"in_cubic":       ease.InCubic,
		"out_cubic":      ease.OutCubic,
		"in_out_cubic":   ease.InOutCubic,
		"in_quart":       ease.InQuart,
		"out_quart":      ease.OutQuart,
		"in_out_quart":   ease.InOutQuart,
		"in_quint":       ease.InQuint,
		"out_quint":      ease.OutQuint,
		"in_out_quint":   ease.InOutQuint,
		"in_sine":        ease.InSine,
		"out_sine":       ease.OutSine,
		"in_out_sine":    ease.InOutSine,
		"in_expo":        ease.InExpo,
		"out_expo":       ease.OutExpo,
		"in_out_expo":    ease.InOutExpo,
		"in_circ":        ease.InCirc,
		"out_circ":       ease.OutCirc,
		"in_out_circ":    ease.InOutCirc,
		"in_back":        ease.InBack,
		"out_back":       ease.OutBack,
		"in_out_back":    ease.InOutBack,
		"in_elastic":     ease.InElastic,
		"out_elastic":    ease.OutElastic,
		"in_out_elastic": ease.InOutElastic,
		"in_bounce":      ease.InBounce,
		"out_bounce":     ease.OutBounce,
		"in_out_bounce":  ease.InOutBounce,
	}
	for name, fn := range builtins {
		Register(name, fromEase(fn))
	}
}
