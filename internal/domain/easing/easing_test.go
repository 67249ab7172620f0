package easing

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Endpoints(t *testing.T) {
	methods := []Method{Linear, EaseIn, EaseOut, EaseInOut, BounceIn, BounceOut}

	for _, m := range methods {
		t.Run(m.String(), func(t *testing.T) {
			assert.InDelta(t, 0.0, Evaluate(m, 0, false), 1e-9)
			assert.InDelta(t, 1.0, Evaluate(m, 1, false), 1e-9)
			assert.InDelta(t, 0.0, Evaluate(m, 0, true), 1e-9)
			assert.InDelta(t, 1.0, Evaluate(m, 1, true), 1e-9)
		})
	}
}

func TestEvaluate_StaysWithinRange(t *testing.T) {
	methods := []Method{Linear, EaseIn, EaseOut, EaseInOut, BounceIn, BounceOut}

	for _, m := range methods {
		for f := -0.5; f <= 1.5; f += 0.05 {
			for _, steeper := range []bool{false, true} {
				got := Evaluate(m, f, steeper)
				assert.GreaterOrEqual(t, got, 0.0, "method=%s factor=%f", m, f)
				assert.LessOrEqual(t, got, 1.0, "method=%s factor=%f", m, f)
			}
		}
	}
}

func TestEvaluate_KnownValues(t *testing.T) {
	tests := []struct {
		name    string
		method  Method
		factor  float64
		steeper bool
		want    float64
	}{
		{
			name:   "linear passes through",
			method: Linear,
			factor: 0.37,
			want:   0.37,
		},
		{
			name:   "ease_in midpoint",
			method: EaseIn,
			factor: 0.5,
			want:   1 - math.Sin(0.25*math.Pi),
		},
		{
			name:    "ease_in steeper squares",
			method:  EaseIn,
			factor:  0.5,
			steeper: true,
			want:    (1 - math.Sin(0.25*math.Pi)) * (1 - math.Sin(0.25*math.Pi)),
		},
		{
			name:   "ease_out midpoint",
			method: EaseOut,
			factor: 0.5,
			want:   math.Sin(0.25 * math.Pi),
		},
		{
			name:   "ease_in_out midpoint is exact half",
			method: EaseInOut,
			factor: 0.5,
			want:   0.5,
		},
		{
			name:   "bounce_in first segment is plain parabola",
			method: BounceIn,
			factor: 0.2,
			want:   7.5625 * 0.2 * 0.2,
		},
		{
			name:   "bounce_out mirrors bounce_in",
			method: BounceOut,
			factor: 0.8,
			want:   1 - 7.5625*0.2*0.2,
		},
		{
			name:   "input below range clamps to zero",
			method: Linear,
			factor: -0.5,
			want:   0,
		},
		{
			name:   "input above range clamps to one",
			method: Linear,
			factor: 1.5,
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.method, tt.factor, tt.steeper)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluate_EaseSymmetry(t *testing.T) {
	// EaseOut is the mirror of EaseIn around the center point.
	for f := 0.0; f <= 1.0; f += 0.1 {
		in := Evaluate(EaseIn, 1-f, false)
		out := Evaluate(EaseOut, f, false)
		assert.InDelta(t, 1-in, out, 1e-9, "factor=%f", f)
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Method
		wantErr bool
	}{
		{name: "linear", input: "linear", want: Linear},
		{name: "empty defaults to linear", input: "", want: Linear},
		{name: "ease_in", input: "ease_in", want: EaseIn},
		{name: "ease_out", input: "ease_out", want: EaseOut},
		{name: "ease_in_out", input: "ease_in_out", want: EaseInOut},
		{name: "bounce_in", input: "bounce_in", want: BounceIn},
		{name: "bounce_out", input: "bounce_out", want: BounceOut},
		{name: "unknown", input: "quadratic", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMethod(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownMethod))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "linear", Linear.String())
	assert.Equal(t, "ease_in_out", EaseInOut.String())
	assert.Equal(t, "unknown", Method(99).String())
}
