package geometry

import (
	"math"

	"depthtrace/color"
	"depthtrace/ray"
	"depthtrace/vmath/vec3"
)

// Sphere is a sphere in world coordinates.  Radius is not validated; a
// negative radius behaves the way the quadratic says it does.
//
// Color is carried with the geometry but the depth integrator never looks at
// it.
type Sphere struct {
	Center vec3.T
	Radius float64
	Color  color.RGB
}

// Intersect returns the near root of the ray/sphere quadratic, assuming a
// unit-length slope.  The root may be negative when the sphere is behind the
// ray origin.  A ray that misses entirely returns ray.NoHit.
func (s *Sphere) Intersect(r ray.Ray) float64 {
	oc := vec3.SubVV(r.Point, s.Center)
	b := vec3.IProd(r.Slope, oc)
	c := vec3.IProd(oc, oc) - s.Radius*s.Radius

	discriminant := b*b - c
	if discriminant < 0 {
		return ray.NoHit
	}

	return -b - math.Sqrt(discriminant)
}

type Spheres []Sphere

// Hit finds the nearest sphere in front of the ray origin (within
// ray.Epsilon).  It returns the distance and the sphere's index, or
// (ray.NoHit, -1).  Equal distances keep the earlier sphere.
func (ss Spheres) Hit(r ray.Ray) (float64, int) {
	nearest := math.Inf(1)
	nearestIndex := -1

	for i := range ss {
		t := ss[i].Intersect(r)
		if t >= -ray.Epsilon && t < nearest {
			nearest = t
			nearestIndex = i
		}
	}

	if nearestIndex == -1 {
		return ray.NoHit, -1
	}
	return nearest, nearestIndex
}

// Intersect is Hit without the index.
func (ss Spheres) Intersect(r ray.Ray) float64 {
	t, _ := ss.Hit(r)
	return t
}
