package scene

import (
	"fmt"

	"depthtrace/camera"
	"depthtrace/color"
	"depthtrace/geometry"
	"depthtrace/vmath/vec3"
)

// Scene is everything a render needs to know about the world.  Nothing in it
// changes once rendering starts.
type Scene struct {
	Spheres geometry.Spheres
	Camera  *camera.PinholeCamera
}

// wallRadius makes the wall spheres flat enough to pass for planes near the
// scene.
const wallRadius = 1e5

// DefaultSpheres is the built-in room: five wall spheres, two object spheres
// and a light sphere.
func DefaultSpheres() geometry.Spheres {
	white := color.From255(255, 255, 255)

	return geometry.Spheres{
		// Ceiling.
		{Center: vec3.T{0, 0, wallRadius + 2.65}, Radius: wallRadius, Color: white},
		// Floor.
		{Center: vec3.T{0, 0, -wallRadius}, Radius: wallRadius, Color: white},
		// Back wall.
		{Center: vec3.T{0, wallRadius + 1.4, 0}, Radius: wallRadius, Color: white},
		// Left wall.
		{Center: vec3.T{-wallRadius - 1.6, 0, 0}, Radius: wallRadius, Color: color.From255(183, 108, 115)},
		// Right wall.
		{Center: vec3.T{wallRadius + 1.6, 0, 0}, Radius: wallRadius, Color: color.From255(114, 108, 182)},

		// The "mirror" and "glass" objects.  Only their shapes matter here.
		{Center: vec3.T{-0.75, 0.25, 0.5}, Radius: 0.5, Color: white},
		{Center: vec3.T{0.75, -0.5, 0.5}, Radius: 0.5, Color: white},

		// Light.
		{Center: vec3.T{10 + 2.65, 0, 0}, Radius: 10, Color: white},
	}
}

// DefaultCamera looks into the room from outside the open front, tilted 4
// degrees down.
func DefaultCamera() (*camera.PinholeCamera, error) {
	return camera.NewPinhole(
		vec3.T{0, -5.75, 1.75},
		vec3.T{0, 0.9976, -0.06976},
		50,
		0.75,
	)
}

func Default() (*Scene, error) {
	cam, err := DefaultCamera()
	if err != nil {
		return nil, fmt.Errorf("while building default camera: %w", err)
	}

	return &Scene{
		Spheres: DefaultSpheres(),
		Camera:  cam,
	}, nil
}
