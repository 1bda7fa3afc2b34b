// Package color is the RGB color type used for shading results.  It is kept
// apart from vec3.T so that positions and colors cannot be mixed up.
package color

import "depthtrace/vmath/triple"

// RGB channels are nominally in [0, 1].
type RGB [3]float64

var (
	Black = RGB{0, 0, 0}
	White = RGB{1, 1, 1}
)

// From255 builds a color from 8-bit style channel values in [0, 255].
func From255(r, g, b float64) RGB {
	return triple.Div(RGB{r, g, b}, 255)
}

// Gray returns the achromatic color with all channels equal to v.
func Gray(v float64) RGB {
	return RGB{v, v, v}
}

func (c RGB) R() float64 { return c[0] }
func (c RGB) G() float64 { return c[1] }
func (c RGB) B() float64 { return c[2] }
