// Package value provides the small animatable value types shared by
// effects and stage nodes.
package value

// Lerp linearly interpolates between a and b by t. t is not clamped;
// callers feeding overshooting curves get extrapolation on purpose.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Vec3 is a three-component vector.
type Vec3 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// Lerp interpolates component-wise toward to.
func (v Vec3) Lerp(to Vec3, t float64) Vec3 {
	return Vec3{
		X: Lerp(v.X, to.X, t),
		Y: Lerp(v.Y, to.Y, t),
		Z: Lerp(v.Z, to.Z, t),
	}
}

// Color is an RGBA color with components in [0,1].
type Color struct {
	R float64 `yaml:"r" json:"r"`
	G float64 `yaml:"g" json:"g"`
	B float64 `yaml:"b" json:"b"`
	A float64 `yaml:"a" json:"a"`
}

// White is the opaque white color.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Lerp interpolates component-wise toward to.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		R: Lerp(c.R, to.R, t),
		G: Lerp(c.G, to.G, t),
		B: Lerp(c.B, to.B, t),
		A: Lerp(c.A, to.A, t),
	}
}
