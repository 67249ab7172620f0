package curve

import "github.com/cockroachdb/errors"

// ErrBadKeyframes is returned when a keyframe list cannot form a curve.
var ErrBadKeyframes = errors.New("bad keyframes")

// Keyframe is a single point on a keyframed curve. Ease selects how the
// segment starting at this key approaches the next key.
type Keyframe struct {
	T    float64 `yaml:"t"`
	V    float64 `yaml:"v"`
	Ease string  `yaml:"ease,omitempty"` // "linear" (default), "smooth", "cubic"
}

// Keyframed is a piecewise curve over sorted keyframes.
type Keyframed struct {
	keys []Keyframe
}

// NewKeyframed builds a keyframed curve. Keys must be non-empty and
// sorted by T ascending; segment ease kinds must be known.
func NewKeyframed(keys []Keyframe) (*Keyframed, error) {
	if len(keys) == 0 {
		return nil, errors.Wrap(ErrBadKeyframes, "no keys")
	}
	for i, k := range keys {
		if i > 0 && k.T < keys[i-1].T {
			return nil, errors.Wrapf(ErrBadKeyframes, "keys not sorted at index %d", i)
		}
		switch k.Ease {
		case "", "linear", "smooth", "cubic":
		default:
			return nil, errors.Wrapf(ErrBadKeyframes, "unknown segment ease %q", k.Ease)
		}
	}
	ks := make([]Keyframe, len(keys))
	copy(ks, keys)
	return &Keyframed{keys: ks}, nil
}

// Evaluate returns the curve value at t. Outside the key range the
// first/last key value is held.
func (c *Keyframed) Evaluate(t float64) float64 {
	n := len(c.keys)
	if n == 1 {
		return c.keys[0].V
	}
	if t <= c.keys[0].T {
		return c.keys[0].V
	}
	if t >= c.keys[n-1].T {
		return c.keys[n-1].V
	}
	for i := 0; i < n-1; i++ {
		a := c.keys[i]
		b := c.keys[i+1]
		if t >= a.T && t <= b.T {
			den := b.T - a.T
			if den <= 0 {
				return b.V
			}
			u := (t - a.T) / den
			u = segmentEase(a.Ease, u)
			return a.V + (b.V-a.V)*u
		}
	}
	return c.keys[n-1].V
}

// segmentEase shapes the local segment progress u in [0,1].
func segmentEase(kind string, u float64) float64 {
	switch kind {
	case "smooth":
		// classic smoothstep 3u^2 - 2u^3
		return u * u * (3 - 2*u)
	case "cubic":
		// 6u^5 - 15u^4 + 10u^3
		return u * u * u * (u*(u*6-15) + 10)
	default:
		return u
	}
}
