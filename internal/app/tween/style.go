package tween

import "github.com/cockroachdb/errors"

// ErrUnknownStyle is returned when a style name cannot be parsed.
var ErrUnknownStyle = errors.New("unknown playback style")

// Style represents the wraparound policy applied when the factor
// leaves the [0,1] interval.
type Style int

const (
	Once     Style = iota // Run to the end, then stop
	Loop                  // Wrap back to the start, keeping direction
	PingPong              // Reflect at the bounds, reversing direction
)

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case Once:
		return "once"
	case Loop:
		return "loop"
	case PingPong:
		return "ping_pong"
	default:
		return "unknown"
	}
}

// ParseStyle converts a configuration string into a Style.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "once", "":
		return Once, nil
	case "loop":
		return Loop, nil
	case "ping_pong":
		return PingPong, nil
	default:
		return Once, errors.Wrapf(ErrUnknownStyle, "%q", s)
	}
}

// Direction represents the sign of the playback rate.
type Direction int

const (
	Reverse Direction = -1
	Forward Direction = 1
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}
