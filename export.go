package threecircles

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/gogpu/threecircles/internal/pngdpi"
)

// TrimBounds returns the canvas rectangle kept on export: the axes box
// joined with everything drawn outside it, grown by the configured pad.
func (f *Figure) TrimBounds() image.Rectangle {
	img := f.dc.Image()
	return f.trimBounds(img)
}

func (f *Figure) trimBounds(img image.Image) image.Rectangle {
	r := f.vp.Bounds().Union(pngdpi.ContentBounds(img, color.White))
	pad := int(math.Round(f.cfg.px(f.cfg.pad)))
	return r.Inset(-pad).Intersect(img.Bounds())
}

// EncodePNG writes the trimmed figure to w as a PNG tagged with the
// figure's DPI.
func (f *Figure) EncodePNG(w io.Writer) error {
	img := f.dc.Image()
	trimmed, err := pngdpi.Crop(img, f.trimBounds(img))
	if err != nil {
		return fmt.Errorf("threecircles: trim: %w", err)
	}
	return pngdpi.Encode(w, trimmed, f.cfg.dpi)
}

// SavePNG writes the trimmed figure to a PNG file at path.
func (f *Figure) SavePNG(path string) (err error) {
	out, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if err := f.EncodePNG(out); err != nil {
		return err
	}

	Logger().Info("threecircles: saved", "path", path, "dpi", f.cfg.dpi)
	return nil
}

// Render draws the figure and saves it to path in a single pass.
func Render(path string, opts ...Option) error {
	f, err := NewFigure(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.Draw(); err != nil {
		return err
	}
	return f.SavePNG(path)
}
