// Package ppm writes images in the plain-text PPM (P3) format.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"depthtrace/framebuffer"
)

const MaxValue = 255

// Channel quantizes a [0, 1] channel to [0, MaxValue], rounding half away from
// zero.  Out-of-range input clamps; NaN becomes 0.
func Channel(v float64) int {
	scaled := math.Round(v * MaxValue)
	if scaled > MaxValue {
		return MaxValue
	}
	if scaled >= 0 {
		return int(scaled)
	}
	return 0
}

func Write(w io.Writer, im *framebuffer.Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", im.Width, im.Height, MaxValue); err != nil {
		return fmt.Errorf("while writing header: %w", err)
	}

	for _, p := range im.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", Channel(p.R()), Channel(p.G()), Channel(p.B())); err != nil {
			return fmt.Errorf("while writing pixel data: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while flushing: %w", err)
	}

	return nil
}
