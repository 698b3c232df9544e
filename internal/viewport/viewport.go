// Package viewport maps data coordinates onto a pixel canvas with equal
// aspect ratio: one data unit spans the same number of pixels on both axes.
package viewport

import (
	"errors"
	"image"
	"math"
)

// ErrEmptyRange is returned when a limit pair does not describe a positive range.
var ErrEmptyRange = errors.New("viewport: limits must satisfy min < max")

// ErrNoRoom is returned when the margins leave no drawable area.
var ErrNoRoom = errors.New("viewport: canvas too small for margins")

// Limits is a closed data interval.
type Limits struct {
	Min, Max float64
}

// Span returns Max - Min.
func (l Limits) Span() float64 { return l.Max - l.Min }

// Viewport is a data-to-pixel transform. Pixel y grows downward,
// data y grows upward.
type Viewport struct {
	x, y   Limits
	scale  float64 // pixels per data unit, both axes
	left   float64 // pixel x of x.Min
	bottom float64 // pixel y of y.Min
}

// Fit places the data box described by x and y inside a canvas of the given
// pixel size, leaving at least margin pixels on every side. The box is
// scaled uniformly to the largest size that fits and centered in the
// remaining space.
func Fit(width, height int, margin float64, x, y Limits) (*Viewport, error) {
	if x.Span() <= 0 || y.Span() <= 0 {
		return nil, ErrEmptyRange
	}
	availW := float64(width) - 2*margin
	availH := float64(height) - 2*margin
	if availW <= 0 || availH <= 0 {
		return nil, ErrNoRoom
	}

	scale := math.Min(availW/x.Span(), availH/y.Span())
	boxW := scale * x.Span()
	boxH := scale * y.Span()

	return &Viewport{
		x:      x,
		y:      y,
		scale:  scale,
		left:   (float64(width) - boxW) / 2,
		bottom: (float64(height) + boxH) / 2,
	}, nil
}

// Scale returns the number of pixels per data unit.
func (v *Viewport) Scale() float64 { return v.scale }

// XLim returns the data x limits.
func (v *Viewport) XLim() Limits { return v.x }

// YLim returns the data y limits.
func (v *Viewport) YLim() Limits { return v.y }

// X converts a data x coordinate to pixels.
func (v *Viewport) X(x float64) float64 {
	return v.left + (x-v.x.Min)*v.scale
}

// Y converts a data y coordinate to pixels.
func (v *Viewport) Y(y float64) float64 {
	return v.bottom - (y-v.y.Min)*v.scale
}

// Point converts a data point to pixels.
func (v *Viewport) Point(x, y float64) (px, py float64) {
	return v.X(x), v.Y(y)
}

// Bounds returns the pixel rectangle covered by the data limits,
// rounded outward to whole pixels.
func (v *Viewport) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(v.X(v.x.Min))),
		int(math.Floor(v.Y(v.y.Max))),
		int(math.Ceil(v.X(v.x.Max))),
		int(math.Ceil(v.Y(v.y.Min))),
	)
}
