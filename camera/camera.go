package camera

import (
	"math"

	"depthtrace/ray"
	"depthtrace/vmath/vec3"

	"golang.org/x/xerrors"
)

// WorldUp is the axis the camera basis is built against.
var WorldUp = vec3.T{0, 0, 1}

// ErrDegenerateBasis is returned when the eye direction is zero or parallel to
// WorldUp, which leaves the right axis with no length.
var ErrDegenerateBasis = xerrors.New("camera basis is degenerate")

// degenerateNorm is the smallest right-axis length accepted.  The right axis
// is |eye| * sin(angle to WorldUp) with |eye| == 1.
const degenerateNorm = 1e-12

type Camera interface {
	ImageToRay(curRow, imgRows, curCol, imgCols int) ray.Ray
}

// PinholeCamera shoots every ray from Center.  Right and Up are left at the
// length the cross products give them; only Eye is unit length.
type PinholeCamera struct {
	Center vec3.T
	Eye    vec3.T
	Right  vec3.T
	Up     vec3.T

	// FOV is the field of view in degrees.
	FOV    float64
	Aspect float64

	// Scale is tan(FOV/2), the NDC-to-slope factor.
	Scale float64
}

func NewPinhole(center, eye vec3.T, fov, aspect float64) (*PinholeCamera, error) {
	if !eye.IsFinite() || eye.Norm() == 0 {
		return nil, xerrors.Errorf("eye direction %v: %w", eye, ErrDegenerateBasis)
	}

	c := &PinholeCamera{
		Center: center,
		Eye:    vec3.Normalize(eye),
		FOV:    fov,
		Aspect: aspect,
		Scale:  math.Tan(fov / 2 * math.Pi / 180),
	}
	c.Right = vec3.CProd(c.Eye, WorldUp)
	c.Up = vec3.CProd(c.Right, c.Eye)

	if c.Right.Norm() < degenerateNorm {
		return nil, xerrors.Errorf("eye direction %v is parallel to world up %v: %w", eye, WorldUp, ErrDegenerateBasis)
	}

	return c, nil
}

// NDCToRay returns the ray through normalized device coordinates (x, y), each
// in [-1, 1], with +y up.
func (c *PinholeCamera) NDCToRay(x, y float64) ray.Ray {
	dir := vec3.AddVV(c.Eye, vec3.MulVS(c.Right, x*c.Scale))
	dir = vec3.AddVV(dir, vec3.MulVS(c.Up, y*c.Scale*c.Aspect))
	return ray.New(c.Center, dir)
}

// ImageToRay maps pixel (curRow, curCol) onto NDC and returns its ray.  Row 0
// is the top of the image.  Both image dimensions must be at least 2.
func (c *PinholeCamera) ImageToRay(curRow, imgRows, curCol, imgCols int) ray.Ray {
	halfCols := imgCols / 2
	halfRows := imgRows / 2

	x := float64(curCol-halfCols) / float64(halfCols)
	y := -float64(curRow-halfRows) / float64(halfRows)

	return c.NDCToRay(x, y)
}
