package camera

import (
	"math"
	"testing"

	"depthtrace/vmath/vec3"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/xerrors"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func mustPinhole(t *testing.T, center, eye vec3.T, fov, aspect float64) *PinholeCamera {
	t.Helper()
	c, err := NewPinhole(center, eye, fov, aspect)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return c
}

func TestBasisIsOrthogonal(t *testing.T) {
	eyes := []vec3.T{
		{0, 0.9976, -0.06976},
		{1, 0, 0},
		{1, 2, 3},
		{-4, 0.5, -7},
	}

	for _, eye := range eyes {
		c := mustPinhole(t, vec3.T{}, eye, 50, 0.75)

		if math.Abs(c.Eye.Norm()-1) > 1e-12 {
			t.Errorf("eye %v: Eye not unit, norm %v", eye, c.Eye.Norm())
		}
		if d := vec3.IProd(c.Right, c.Eye); math.Abs(d) > 1e-12 {
			t.Errorf("eye %v: Right.Eye = %v, want 0", eye, d)
		}
		if d := vec3.IProd(c.Up, c.Eye); math.Abs(d) > 1e-12 {
			t.Errorf("eye %v: Up.Eye = %v, want 0", eye, d)
		}
		if d := vec3.IProd(c.Up, c.Right); math.Abs(d) > 1e-12 {
			t.Errorf("eye %v: Up.Right = %v, want 0", eye, d)
		}
		if c.Up[2] <= 0 {
			t.Errorf("eye %v: Up %v should point towards world up", eye, c.Up)
		}
	}
}

func TestScale(t *testing.T) {
	c := mustPinhole(t, vec3.T{}, vec3.T{0, 1, 0}, 90, 1)
	if math.Abs(c.Scale-1) > 1e-12 {
		t.Errorf("Scale for 90 degrees = %v, want 1", c.Scale)
	}
}

func TestDegenerateBasis(t *testing.T) {
	testCases := []struct {
		name string
		eye  vec3.T
	}{
		{"zero", vec3.T{0, 0, 0}},
		{"straight up", vec3.T{0, 0, 1}},
		{"straight down", vec3.T{0, 0, -3}},
		{"NaN", vec3.T{math.NaN(), 1, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPinhole(vec3.T{}, tc.eye, 50, 1)
			if !xerrors.Is(err, ErrDegenerateBasis) {
				t.Errorf("NewPinhole(%v) error = %v, want ErrDegenerateBasis", tc.eye, err)
			}
		})
	}
}

func TestNDCToRay(t *testing.T) {
	center := vec3.T{0, -5, 1}
	c := mustPinhole(t, center, vec3.T{0, 2, 0}, 90, 0.5)

	testCases := []struct {
		name string
		x, y float64
		want vec3.T
	}{
		{"center", 0, 0, vec3.T{0, 1, 0}},
		{"right edge", 1, 0, vec3.Normalize(vec3.T{1, 1, 0})},
		{"left edge", -1, 0, vec3.Normalize(vec3.T{-1, 1, 0})},
		{"top edge", 0, 1, vec3.Normalize(vec3.T{0, 1, 0.5})},
		{"bottom edge", 0, -1, vec3.Normalize(vec3.T{0, 1, -0.5})},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := c.NDCToRay(tc.x, tc.y)
			if diff := cmp.Diff(r.Slope, tc.want, approx); diff != "" {
				t.Errorf("Bad slope; diff (-got +want)\n%s", diff)
			}
			if diff := cmp.Diff(r.Point, center); diff != "" {
				t.Errorf("Bad origin; diff (-got +want)\n%s", diff)
			}
		})
	}
}

func TestImageToRay(t *testing.T) {
	c := mustPinhole(t, vec3.T{}, vec3.T{0, 1, 0}, 90, 1)

	// Top-left pixel maps to NDC (-1, 1), the center pixel to (0, 0).
	if diff := cmp.Diff(c.ImageToRay(0, 4, 0, 4).Slope, c.NDCToRay(-1, 1).Slope); diff != "" {
		t.Errorf("Top-left; diff (-got +want)\n%s", diff)
	}
	if diff := cmp.Diff(c.ImageToRay(2, 4, 2, 4).Slope, vec3.T{0, 1, 0}, approx); diff != "" {
		t.Errorf("Center; diff (-got +want)\n%s", diff)
	}
	if diff := cmp.Diff(c.ImageToRay(3, 4, 1, 4).Slope, c.NDCToRay(-0.5, -0.5).Slope); diff != "" {
		t.Errorf("Lower left quadrant; diff (-got +want)\n%s", diff)
	}

	var _ Camera = c
}
