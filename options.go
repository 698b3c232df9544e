package threecircles

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/vg"

	"github.com/gogpu/threecircles/internal/lens"
)

// DefaultOutput is the file Render writes when used from the command.
const DefaultOutput = "three_circles_intersection.png"

// DefaultDPI is the export resolution.
const DefaultDPI = 300

// Option configures a Figure during creation.
//
// Example:
//
//	// Default 6x5 inch figure at 300 DPI
//	f, err := threecircles.NewFigure()
//
//	// Quick low-resolution preview
//	f, err := threecircles.NewFigure(threecircles.WithDPI(72))
type Option func(*config)

// config holds the physical layout of a figure. Lengths are in points.
type config struct {
	width   vg.Length
	height  vg.Length
	dpi     float64
	margin  vg.Length // space kept around the axes box for labels
	pad     vg.Length // space kept around the content when trimming
	samples int
}

func defaultConfig() config {
	return config{
		width:   6 * vg.Inch,
		height:  5 * vg.Inch,
		dpi:     DefaultDPI,
		margin:  0.5 * vg.Inch,
		pad:     0.1 * vg.Inch,
		samples: lens.DefaultSamples,
	}
}

// WithDPI sets the output resolution in dots per inch.
func WithDPI(dpi float64) Option {
	return func(c *config) {
		c.dpi = dpi
	}
}

// WithSize sets the canvas size before trimming.
func WithSize(width, height vg.Length) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithPad sets the whitespace kept around the drawing when it is trimmed.
func WithPad(pad vg.Length) Option {
	return func(c *config) {
		c.pad = pad
	}
}

// WithSamples sets how many x samples trace the shaded region's boundary.
func WithSamples(n int) Option {
	return func(c *config) {
		c.samples = n
	}
}

func (c config) validate() error {
	if c.dpi <= 0 || math.IsNaN(c.dpi) || math.IsInf(c.dpi, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidDPI, c.dpi)
	}
	if c.width <= 0 || c.height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidSize, c.width, c.height)
	}
	if c.pad < 0 || c.margin < 0 {
		return fmt.Errorf("%w: negative pad or margin", ErrInvalidSize)
	}
	return nil
}

// px converts a physical length to device pixels at the configured DPI.
func (c config) px(l vg.Length) float64 {
	return l.Dots(c.dpi)
}
