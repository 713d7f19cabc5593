package geometry

import "math"

// Vector2 represents a 2D point or vector in canvas space
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromPolar creates a vector from an angle and a length
func FromPolar(angle, radius float64) Vector2 {
	x, y := PolarToCartesian(angle, radius)
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Angle returns the direction of the vector in (-π, π]
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
