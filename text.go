package threecircles

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"gonum.org/v1/plot/vg"
)

type hAlign int

const (
	alignLeft hAlign = iota
	alignCenter
	alignRight
)

type vAlign int

const (
	alignTop vAlign = iota
	alignMiddle
	alignBottom
)

// loadFont parses the embedded Go Regular font.
func loadFont() (*text.FontSource, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("threecircles: load font: %w", err)
	}
	return src, nil
}

// face returns a face whose em size is size points at the figure's DPI.
// gg faces are sized in pixels at 72 DPI.
func (f *Figure) face(size vg.Length) text.Face {
	return f.font.Face(f.cfg.px(size))
}

// drawText draws s so that the given edge (or center) of its box sits at
// (x, y). Vertical alignment uses the font's ascent and descent rather than
// the glyphs' ink.
func (f *Figure) drawText(face text.Face, s string, x, y float64, ha hAlign, va vAlign) {
	w := face.Advance(s)
	switch ha {
	case alignCenter:
		x -= w / 2
	case alignRight:
		x -= w
	}

	m := face.Metrics()
	switch va {
	case alignTop:
		y += m.Ascent
	case alignMiddle:
		y += (m.Ascent - m.Descent) / 2
	case alignBottom:
		y -= m.Descent
	}

	f.dc.SetFont(face)
	f.dc.DrawString(s, x, y)
}
