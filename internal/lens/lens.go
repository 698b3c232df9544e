// Package lens computes the boundary of the shaded region formed by three
// unit circles centered at (-1, 0), (0, 0) and (1, 0).
//
// The region lies between x = -0.5 and x = 0.5, where the center circle meets
// the left and right circles. It is bounded above by the center circle and
// below by the upper arc of the left circle (x < 0) or of the right circle
// (x >= 0). The bounds are closed-form and are not re-derived numerically.
package lens

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// XMin is the left end of the region, where the center and left circles cross.
	XMin = -0.5

	// XMax is the right end of the region, where the center and right circles cross.
	XMax = 0.5

	// Switch is the x at which the lower boundary moves from the left circle
	// to the right circle. Switch itself belongs to the right circle.
	Switch = 0.0

	// DefaultSamples is the number of x samples used for the filled region.
	DefaultSamples = 500
)

// ErrTooFewSamples is returned by Sample when fewer than two samples are requested.
var ErrTooFewSamples = errors.New("lens: at least two samples are required")

// Circle describes a circle by center and radius.
type Circle struct {
	CX, CY float64
	R      float64
}

// Circles holds the left, center and right unit circles, in that order.
var Circles = [3]Circle{
	{CX: -1, CY: 0, R: 1},
	{CX: 0, CY: 0, R: 1},
	{CX: 1, CY: 0, R: 1},
}

// Upper returns the upper boundary at x: the center circle's upper arc.
func Upper(x float64) float64 {
	return math.Sqrt(1 - x*x)
}

// Lower returns the lower boundary at x: the left circle's upper arc for
// x < Switch, the right circle's upper arc otherwise.
func Lower(x float64) float64 {
	if x < Switch {
		return math.Sqrt(1 - (x+1)*(x+1))
	}
	return math.Sqrt(1 - (x-1)*(x-1))
}

// DashHeight returns the y of the region's corners at x = ±0.5, sqrt(0.75).
func DashHeight() float64 {
	return math.Sqrt(0.75)
}

// Curve is a sampled pair of boundary curves sharing the same x values.
type Curve struct {
	X     []float64
	Upper []float64
	Lower []float64
}

// Len returns the number of samples.
func (c Curve) Len() int { return len(c.X) }

// Sample evaluates both boundaries at n evenly spaced x values covering
// [XMin, XMax]. The first and last x are exactly XMin and XMax.
func Sample(n int) (Curve, error) {
	if n < 2 {
		return Curve{}, ErrTooFewSamples
	}

	// Span accumulates rounding error towards the far end; pin both
	// corners so the boundary closes exactly.
	xs := floats.Span(make([]float64, n), XMin, XMax)
	xs[0], xs[n-1] = XMin, XMax
	c := Curve{
		X:     xs,
		Upper: make([]float64, n),
		Lower: make([]float64, n),
	}
	for i, x := range xs {
		c.Upper[i] = Upper(x)
		c.Lower[i] = Lower(x)
	}
	return c, nil
}
