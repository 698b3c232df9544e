package threecircles

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"gonum.org/v1/plot/vg"

	"github.com/gogpu/threecircles/internal/lens"
	"github.com/gogpu/threecircles/internal/viewport"
)

// Data limits of the axes box.
var (
	xLim = viewport.Limits{Min: -2.5, Max: 2.5}
	yLim = viewport.Limits{Min: -1.5, Max: 1.8}
)

var (
	xTicks = []float64{-2, -1, 1, 2}
	yTicks = []float64{-1, 1}
)

// Stroke and text metrics, in points.
const (
	circleWidth   vg.Length = 1
	guideWidth    vg.Length = 1
	spineWidth    vg.Length = 0.8
	tickWidth     vg.Length = 1
	tickLength    vg.Length = 6
	tickPad       vg.Length = 3.5
	markerSize    vg.Length = 6
	dashOn        vg.Length = 3.7
	dashOff       vg.Length = 1.6
	tickFontSize  vg.Length = 12
	labelFontSize vg.Length = 14
)

// Figure is a drawing of the three circles on a raster canvas.
// Create it with NewFigure, call Draw once, then export with SavePNG or
// EncodePNG. Figure implements io.Closer.
type Figure struct {
	cfg   config
	dc    *gg.Context
	vp    *viewport.Viewport
	font  *text.FontSource
	curve lens.Curve
}

// NewFigure allocates a blank white canvas and computes the region boundary.
func NewFigure(opts ...Option) (*Figure, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	curve, err := lens.Sample(cfg.samples)
	if err != nil {
		return nil, fmt.Errorf("threecircles: sample boundary: %w", err)
	}

	w := int(math.Round(cfg.px(cfg.width)))
	h := int(math.Round(cfg.px(cfg.height)))
	vp, err := viewport.Fit(w, h, cfg.px(cfg.margin), xLim, yLim)
	if err != nil {
		return nil, fmt.Errorf("threecircles: fit axes: %w", err)
	}

	font, err := loadFont()
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.White)

	Logger().Debug("threecircles: canvas",
		"width", w, "height", h, "dpi", cfg.dpi, "px_per_unit", vp.Scale())

	return &Figure{
		cfg:   cfg,
		dc:    dc,
		vp:    vp,
		font:  font,
		curve: curve,
	}, nil
}

// Close releases the drawing context and font.
func (f *Figure) Close() error {
	err := f.dc.Close()
	if cerr := f.font.Close(); err == nil {
		err = cerr
	}
	return err
}

// Image returns the full, untrimmed canvas.
func (f *Figure) Image() image.Image {
	return f.dc.Image()
}

// view returns the data-to-pixel mapping of the canvas.
func (f *Figure) view() *viewport.Viewport {
	return f.vp
}

// DPI returns the configured resolution.
func (f *Figure) DPI() float64 {
	return f.cfg.dpi
}

// Draw paints the whole figure, back to front.
func (f *Figure) Draw() error {
	stages := []struct {
		name string
		draw func() error
	}{
		{"lens", f.drawLens},
		{"circles", f.drawCircles},
		{"guides", f.drawGuides},
		{"spines", f.drawSpines},
		{"ticks", f.drawTicks},
		{"arrows", f.drawArrows},
		{"labels", f.drawLabels},
	}

	f.dc.SetRGB(0, 0, 0)
	for _, s := range stages {
		Logger().Debug("threecircles: draw", "stage", s.name)
		if err := s.draw(); err != nil {
			return fmt.Errorf("threecircles: draw %s: %w", s.name, err)
		}
	}
	return nil
}

// drawLens fills the region between the upper and lower boundaries,
// tracing the lower curve left to right and the upper curve back.
func (f *Figure) drawLens() error {
	c := f.curve
	n := c.Len()

	f.dc.MoveTo(f.vp.Point(c.X[0], c.Lower[0]))
	for i := 1; i < n; i++ {
		f.dc.LineTo(f.vp.Point(c.X[i], c.Lower[i]))
	}
	for i := n - 1; i >= 0; i-- {
		f.dc.LineTo(f.vp.Point(c.X[i], c.Upper[i]))
	}
	f.dc.ClosePath()
	return f.dc.Fill()
}

func (f *Figure) drawCircles() error {
	f.dc.SetLineWidth(f.cfg.px(circleWidth))
	for _, c := range lens.Circles {
		f.dc.DrawCircle(f.vp.X(c.CX), f.vp.Y(c.CY), c.R*f.vp.Scale())
		if err := f.dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// drawGuides draws the dashed verticals from the x axis up to the region's corners.
func (f *Figure) drawGuides() error {
	f.dc.SetLineWidth(f.cfg.px(guideWidth))
	f.dc.SetDash(f.cfg.px(dashOn), f.cfg.px(dashOff))
	defer f.dc.ClearDash()

	top := lens.DashHeight()
	for _, x := range []float64{lens.XMin, lens.XMax} {
		f.dc.DrawLine(f.vp.X(x), f.vp.Y(0), f.vp.X(x), f.vp.Y(top))
	}
	return f.dc.Stroke()
}

// drawSpines draws the axes through the origin. Only the bottom and left
// spines exist; they span the full limits.
func (f *Figure) drawSpines() error {
	f.dc.SetLineWidth(f.cfg.px(spineWidth))
	f.dc.DrawLine(f.vp.X(xLim.Min), f.vp.Y(0), f.vp.X(xLim.Max), f.vp.Y(0))
	f.dc.DrawLine(f.vp.X(0), f.vp.Y(yLim.Min), f.vp.X(0), f.vp.Y(yLim.Max))
	return f.dc.Stroke()
}

// drawTicks draws ticks crossing the spines ("inout") and their labels.
func (f *Figure) drawTicks() error {
	half := f.cfg.px(tickLength) / 2
	ox, oy := f.vp.Point(0, 0)

	f.dc.SetLineWidth(f.cfg.px(tickWidth))
	for _, t := range xTicks {
		x := f.vp.X(t)
		f.dc.DrawLine(x, oy-half, x, oy+half)
	}
	for _, t := range yTicks {
		y := f.vp.Y(t)
		f.dc.DrawLine(ox-half, y, ox+half, y)
	}
	if err := f.dc.Stroke(); err != nil {
		return err
	}

	face := f.face(tickFontSize)
	gap := half + f.cfg.px(tickPad)
	for _, t := range xTicks {
		f.drawText(face, tickLabel(t), f.vp.X(t), oy+gap, alignCenter, alignTop)
	}
	for _, t := range yTicks {
		f.drawText(face, tickLabel(t), ox-gap, f.vp.Y(t), alignRight, alignMiddle)
	}
	return nil
}

// drawArrows places filled triangle markers on the positive ends of both axes.
func (f *Figure) drawArrows() error {
	h := f.cfg.px(markerSize) / 2

	// Pointing right at the end of the x axis.
	cx, cy := f.vp.Point(xLim.Max, 0)
	f.dc.MoveTo(cx+h, cy)
	f.dc.LineTo(cx-h, cy-h)
	f.dc.LineTo(cx-h, cy+h)
	f.dc.ClosePath()

	// Pointing up at the end of the y axis.
	cx, cy = f.vp.Point(0, yLim.Max)
	f.dc.MoveTo(cx, cy-h)
	f.dc.LineTo(cx-h, cy+h)
	f.dc.LineTo(cx+h, cy+h)
	f.dc.ClosePath()

	return f.dc.Fill()
}

func (f *Figure) drawLabels() error {
	small := f.face(tickFontSize)
	large := f.face(labelFontSize)

	f.drawText(small, "0", f.vp.X(-0.2), f.vp.Y(-0.2), alignCenter, alignMiddle)
	f.drawText(large, "x", f.vp.X(2.6), f.vp.Y(0), alignLeft, alignMiddle)
	f.drawText(large, "y", f.vp.X(0), f.vp.Y(1.9), alignCenter, alignBottom)
	return nil
}

// tickLabel formats a tick value, writing negatives with U+2212 MINUS SIGN.
func tickLabel(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return "\u2212" + rest
	}
	return s
}
