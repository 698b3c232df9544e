// Package pngdpi writes PNG images that carry their print resolution and
// trims canvases down to their drawn content.
//
// image/png does not emit a pHYs chunk, so Encode splices one in after IHDR.
package pngdpi

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
)

const (
	signatureLen  = 8
	ihdrLen       = 4 + 4 + 13 + 4 // length, type, data, crc
	metersPerInch = 0.0254
	unitMeter     = 1
)

var (
	// ErrNoPhys is returned by ReadDPI when the PNG has no pHYs chunk,
	// or one whose unit is not the metre.
	ErrNoPhys = errors.New("pngdpi: no pHYs chunk with metre unit")

	// ErrInvalidDPI is returned by Encode for a non-positive resolution.
	ErrInvalidDPI = errors.New("pngdpi: dpi must be positive")

	// ErrEmptyCrop is returned by Crop for an empty rectangle.
	ErrEmptyCrop = errors.New("pngdpi: crop rectangle is empty")

	errMalformed = errors.New("pngdpi: malformed png stream")
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// Encode writes img to w as a PNG whose pHYs chunk records dpi.
func Encode(w io.Writer, img image.Image, dpi float64) error {
	if dpi <= 0 || math.IsNaN(dpi) || math.IsInf(dpi, 0) {
		return ErrInvalidDPI
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	raw := buf.Bytes()
	if len(raw) < signatureLen+ihdrLen || !bytes.Equal(raw[:signatureLen], pngSignature) {
		return errMalformed
	}

	head := raw[:signatureLen+ihdrLen]
	if _, err := w.Write(head); err != nil {
		return err
	}
	if _, err := w.Write(physChunk(dpi)); err != nil {
		return err
	}
	_, err := w.Write(raw[len(head):])
	return err
}

// physChunk builds a complete pHYs chunk for dpi in pixels per metre.
func physChunk(dpi float64) []byte {
	ppm := uint32(math.Round(dpi / metersPerInch))

	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppm)
	binary.BigEndian.PutUint32(chunk[12:16], ppm)
	chunk[16] = unitMeter
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))
	return chunk
}

// ReadDPI scans a PNG stream for its pHYs chunk and returns the horizontal
// resolution in dots per inch. Scanning stops at the first IDAT chunk,
// since pHYs must precede image data.
func ReadDPI(r io.Reader) (float64, error) {
	sig := make([]byte, signatureLen)
	if _, err := io.ReadFull(r, sig); err != nil {
		return 0, fmt.Errorf("pngdpi: read signature: %w", err)
	}
	if !bytes.Equal(sig, pngSignature) {
		return 0, errMalformed
	}

	var hdr [8]byte
	for {
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			return 0, fmt.Errorf("pngdpi: read chunk header: %w", err)
		}
		n := binary.BigEndian.Uint32(hdr[0:4])
		typ := string(hdr[4:8])

		switch typ {
		case "pHYs":
			if n != 9 {
				return 0, errMalformed
			}
			data := make([]byte, 9+4)
			if _, err := io.ReadFull(r, data); err != nil {
				return 0, fmt.Errorf("pngdpi: read pHYs: %w", err)
			}
			if data[8] != unitMeter {
				return 0, ErrNoPhys
			}
			ppm := binary.BigEndian.Uint32(data[0:4])
			return float64(ppm) * metersPerInch, nil
		case "IDAT", "IEND":
			return 0, ErrNoPhys
		}

		if _, err := io.CopyN(io.Discard, r, int64(n)+4); err != nil {
			return 0, fmt.Errorf("pngdpi: skip %s: %w", typ, err)
		}
	}
}

// ContentBounds returns the smallest rectangle holding every pixel of img
// that differs from bg. It returns an empty rectangle when nothing was drawn.
func ContentBounds(img image.Image, bg color.Color) image.Rectangle {
	bgR, bgG, bgB, bgA := bg.RGBA()
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if r == bgR && g == bgG && bl == bgB && a == bgA {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}

	if maxX < minX {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// Crop copies the part of img inside r into a new image whose origin is (0, 0).
// r is clipped to the bounds of img first.
func Crop(img image.Image, r image.Rectangle) (*image.RGBA, error) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return nil, ErrEmptyCrop
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.Copy(dst, image.Point{}, img, r, xdraw.Src, nil)
	return dst, nil
}
