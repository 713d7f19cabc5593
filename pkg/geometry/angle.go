package geometry

import "math"

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// SignedAngleBetween returns the shortest signed rotation from source to target,
// in (-π, π]. It never subtracts the raw angles directly, so values either side of
// the ±π seam compare as neighbours.
func SignedAngleBetween(target, source float64) float64 {
	d := target - source
	a := math.Atan2(math.Sin(d), math.Cos(d))
	if a <= -math.Pi {
		return math.Pi
	}
	return a
}

// NormalizeAngle wraps angle into (-π, π]. Angles already in range are returned
// unchanged, which makes the function idempotent.
func NormalizeAngle(angle float64) float64 {
	if angle > -math.Pi && angle <= math.Pi {
		return angle
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return math.NaN()
	}
	m := math.Mod(math.Pi-angle, Tau)
	if m < 0 {
		m += Tau
	}
	if m >= Tau {
		m -= Tau
	}
	a := math.Pi - m
	if a <= -math.Pi {
		a += Tau
	}
	return a
}

// PolarToCartesian converts a polar coordinate to x, y on the unit circle convention
// (angle 0 points along +x, angles grow towards +y).
func PolarToCartesian(angle, radius float64) (float64, float64) {
	return radius * math.Cos(angle), radius * math.Sin(angle)
}

// DegreesToRadians converts degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadiansToDegrees converts radians to degrees
func RadiansToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
