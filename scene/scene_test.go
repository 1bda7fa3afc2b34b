package scene

import (
	"math"
	"testing"

	"depthtrace/ray"
	"depthtrace/vmath/vec3"
)

func TestDefault(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(s.Spheres) != 8 {
		t.Errorf("got %d spheres, want 8", len(s.Spheres))
	}

	for i, sp := range s.Spheres {
		for _, ch := range sp.Color {
			if ch < 0 || ch > 1 {
				t.Errorf("sphere %d color %v is outside [0, 1]", i, sp.Color)
			}
		}
	}

	if math.Abs(s.Camera.Eye.Norm()-1) > 1e-12 {
		t.Errorf("camera eye %v is not unit length", s.Camera.Eye)
	}
}

func TestDefaultCameraSeesBackWall(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	r := s.Camera.NDCToRay(0, 0)
	tHit, idx := s.Spheres.Hit(r)
	if idx != 2 {
		t.Fatalf("center ray hit sphere %d at %v, want the back wall (2)", idx, tHit)
	}

	// Near the axis the back wall is the plane y = 1.4 to within its curvature.
	p := r.Eval(tHit)
	if math.Abs(p[1]-1.4) > 1e-4 {
		t.Errorf("center ray hit %v, want y = 1.4", p)
	}
}

func TestDefaultCameraMissesOutsideRoom(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Straight back out of the open front of the room.
	r := ray.New(s.Camera.Center, vec3.T{0, -1, 0})
	if got := s.Spheres.Intersect(r); got != ray.NoHit {
		t.Errorf("ray out of the room hit at %v, want %v", got, ray.NoHit)
	}
}
