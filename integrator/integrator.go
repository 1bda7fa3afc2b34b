package integrator

import (
	"depthtrace/color"
	"depthtrace/geometry"
	"depthtrace/ray"
)

// Default distance window for the built-in scene.  These are tuned to that
// room, not to scenes in general.
const (
	DefaultMinDistance = -1.0
	DefaultMaxDistance = 10.0
)

// Sample is what an Integrator learns about one ray.
type Sample struct {
	Color color.RGB

	// T is the distance to the surface that produced Color, or ray.NoHit.
	T float64
}

type Integrator interface {
	Shade(r ray.Ray) Sample
}

// Depth shades a ray by the distance to the nearest sphere: Range.Lo and
// nearer is white, Range.Hi and farther is black.  Sphere colors are ignored.
type Depth struct {
	Geometry geometry.Spheres
	Range    ray.Span
}

func NewDepth(spheres geometry.Spheres, minDistance, maxDistance float64) *Depth {
	return &Depth{
		Geometry: spheres,
		Range:    ray.Span{Lo: minDistance, Hi: maxDistance},
	}
}

// Map turns a distance into a gray level.  A miss (ray.NoHit) is below any
// sensible minimum and comes out white.
func (d *Depth) Map(t float64) color.RGB {
	return color.Gray(1 - d.Range.Fraction(t))
}

func (d *Depth) Shade(r ray.Ray) Sample {
	t := d.Geometry.Intersect(r)
	return Sample{
		Color: d.Map(t),
		T:     t,
	}
}
