// Package easing provides the built-in easing methods applied to a raw
// progress factor before sampling.
package easing

import (
	"math"

	"github.com/cockroachdb/errors"
)

// ErrUnknownMethod is returned when a method name cannot be parsed.
var ErrUnknownMethod = errors.New("unknown easing method")

// Method selects the easing formula applied to the raw factor.
type Method int

const (
	Linear    Method = iota // No shaping, factor passes through unchanged
	EaseIn                  // Slow start, sine based
	EaseOut                 // Slow end, sine based
	EaseInOut               // Slow start and end
	BounceIn                // Bounces at the start
	BounceOut               // Bounces at the end
)

// String returns the string representation of the method.
func (m Method) String() string {
	switch m {
	case Linear:
		return "linear"
	case EaseIn:
		return "ease_in"
	case EaseOut:
		return "ease_out"
	case EaseInOut:
		return "ease_in_out"
	case BounceIn:
		return "bounce_in"
	case BounceOut:
		return "bounce_out"
	default:
		return "unknown"
	}
}

// ParseMethod converts a configuration string into a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "linear", "":
		return Linear, nil
	case "ease_in":
		return EaseIn, nil
	case "ease_out":
		return EaseOut, nil
	case "ease_in_out":
		return EaseInOut, nil
	case "bounce_in":
		return BounceIn, nil
	case "bounce_out":
		return BounceOut, nil
	default:
		return Linear, errors.Wrapf(ErrUnknownMethod, "%q", s)
	}
}

// Evaluate maps a raw factor in [0,1] through the selected method.
// Deterministic and side-effect free. Inputs outside [0,1] are clamped
// first, so the result is always within [0,1].
func Evaluate(m Method, factor float64, steeper bool) float64 {
	val := Clamp01(factor)

	switch m {
	case EaseIn:
		val = 1 - math.Sin(0.5*math.Pi*(1-val))
		if steeper {
			val *= val
		}
	case EaseOut:
		val = math.Sin(0.5 * math.Pi * val)
		if steeper {
			val = 1 - val
			val = 1 - val*val
		}
	case EaseInOut:
		val = val - math.Sin(val*2*math.Pi)/(2*math.Pi)
		if steeper {
			val = val*2 - 1
			sign := 1.0
			if val < 0 {
				sign = -1.0
			}
			val = 1 - math.Abs(val)
			val = 1 - val*val
			val = sign*val*0.5 + 0.5
		}
	case BounceIn:
		val = bounce(val)
	case BounceOut:
		val = 1 - bounce(1-val)
	}

	return Clamp01(val)
}

// Clamp01 restricts v to the [0,1] interval.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// bounce is the shared piecewise parabolic bounce shape.
// Breakpoints are the classic n/2.75 segments.
func bounce(val float64) float64 {
	switch {
	case val < 1/2.75:
		return 7.5625 * val * val
	case val < 2/2.75:
		val -= 1.5 / 2.75
		return 7.5625*val*val + 0.75
	case val < 2.5/2.75:
		val -= 2.25 / 2.75
		return 7.5625*val*val + 0.9375
	default:
		val -= 2.625 / 2.75
		return 7.5625*val*val + 0.984375
	}
}
