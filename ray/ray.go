package ray

import "depthtrace/vmath/vec3"

const (
	// NoHit is the distance reported when a ray meets nothing.
	NoHit = -1.0

	// Epsilon is how far behind the ray origin a root may fall and still
	// count as a hit.
	Epsilon = 1e-5
)

type Span struct {
	Lo, Hi float64
}

// Fraction maps t linearly from [Lo, Hi] onto [0, 1], clamping outside.
func (s Span) Fraction(t float64) float64 {
	return Clamp((t-s.Lo)/(s.Hi-s.Lo), 0, 1)
}

// Clamp limits x to [lo, hi].  NaN clamps to lo.
func Clamp(x, lo, hi float64) float64 {
	if x > hi {
		return hi
	}
	if x >= lo {
		return x
	}
	return lo
}

type Ray struct {
	Point vec3.T
	Slope vec3.T
}

// New builds a ray from point along direction, normalizing direction.
func New(point, direction vec3.T) Ray {
	return Ray{
		Point: point,
		Slope: vec3.Normalize(direction),
	}
}

func (r *Ray) Eval(t float64) vec3.T {
	return vec3.T{
		r.Point[0] + t*r.Slope[0],
		r.Point[1] + t*r.Slope[1],
		r.Point[2] + t*r.Slope[2],
	}
}
