package vec3

import (
	"math"

	"depthtrace/vmath/triple"
)

type T [3]float64

func (v T) Norm() float64 {
	return triple.Norm(v)
}

func (v T) NormSquared() float64 {
	return triple.NormSquared(v)
}

// Normalize divides v by its norm.  The zero vector comes back as NaNs;
// callers that can produce one must check for it themselves.
func Normalize(v T) T {
	return triple.Div(v, v.Norm())
}

func AddVV(a, b T) T {
	return triple.Add(a, b)
}

func SubVV(a, b T) T {
	return triple.Sub(a, b)
}

func MulVS(a T, b float64) T {
	return triple.Mul(a, b)
}

func DivVS(a T, b float64) T {
	return triple.Div(a, b)
}

func IProd(a, b T) float64 {
	return triple.Dot(a, b)
}

func CProd(a, b T) T {
	return T{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// IsFinite reports whether no component is NaN or infinite.
func (v T) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
