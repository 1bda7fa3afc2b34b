// Package triple holds the arithmetic shared by every three-component value
// type (points, directions, colors).
package triple

import "math"

type T interface {
	~[3]float64
}

func Add[V T](a, b V) V {
	return V{
		a[0] + b[0],
		a[1] + b[1],
		a[2] + b[2],
	}
}

func Sub[V T](a, b V) V {
	return V{
		a[0] - b[0],
		a[1] - b[1],
		a[2] - b[2],
	}
}

func Mul[V T](a V, s float64) V {
	return V{
		a[0] * s,
		a[1] * s,
		a[2] * s,
	}
}

func Div[V T](a V, s float64) V {
	return V{
		a[0] / s,
		a[1] / s,
		a[2] / s,
	}
}

func Dot[V T](a, b V) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func NormSquared[V T](a V) float64 {
	return Dot(a, a)
}

func Norm[V T](a V) float64 {
	return math.Sqrt(NormSquared(a))
}
