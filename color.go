package matl

import "github.com/chewxy/math32"

// Vector4 is a four component custom vector value.
type Vector4 struct {
	X float32 `json:"x" yaml:"x"` // First component
	Y float32 `json:"y" yaml:"y"` // Second component
	Z float32 `json:"z" yaml:"z"` // Third component
	W float32 `json:"w" yaml:"w"` // Fourth component
}

// Color4 is an RGBA color, used for sampler border colors.
type Color4 struct {
	R float32 `json:"r" yaml:"r"` // Red channel component
	G float32 `json:"g" yaml:"g"` // Green channel component
	B float32 `json:"b" yaml:"b"` // Blue channel component
	A float32 `json:"a" yaml:"a"` // Alpha channel component
}

// Vec4 creates a Vector4 from components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vec4Scalar creates a Vector4 with all components set to v.
func Vec4Scalar(v float32) Vector4 {
	return Vector4{X: v, Y: v, Z: v, W: v}
}

// ToArray converts the vector to an array.
func (v Vector4) ToArray() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vector4) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z) && isFinite(v.W)
}

// ToArray converts color to an array.
func (c Color4) ToArray() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// IsFinite reports whether no channel is NaN or infinite.
func (c Color4) IsFinite() bool {
	return isFinite(c.R) && isFinite(c.G) && isFinite(c.B) && isFinite(c.A)
}

// isFinite reports whether f is neither NaN nor infinite.
func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
