package pngdpi

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"
)

func whiteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	return img
}

func TestEncodeRecordsDPI(t *testing.T) {
	for _, dpi := range []float64{72, 96, 300} {
		var buf bytes.Buffer
		if err := Encode(&buf, whiteImage(8, 4), dpi); err != nil {
			t.Fatalf("Encode(%v): %v", dpi, err)
		}

		got, err := ReadDPI(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("ReadDPI: %v", err)
		}
		if math.Abs(got-dpi) > 0.05 { // pHYs stores whole pixels per metre
			t.Errorf("ReadDPI = %v, want %v", got, dpi)
		}
	}
}

func TestEncodeStillDecodes(t *testing.T) {
	src := whiteImage(5, 3)
	src.Set(2, 1, color.Black)

	var buf bytes.Buffer
	if err := Encode(&buf, src, 300); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 3 {
		t.Errorf("decoded size = %v, want 5x3", img.Bounds())
	}
	if r, _, _, _ := img.At(2, 1).RGBA(); r != 0 {
		t.Errorf("pixel (2,1) red = %#x, want 0", r)
	}
}

func TestEncodeInvalidDPI(t *testing.T) {
	for _, dpi := range []float64{0, -300, math.NaN(), math.Inf(1)} {
		var buf bytes.Buffer
		if err := Encode(&buf, whiteImage(1, 1), dpi); !errors.Is(err, ErrInvalidDPI) {
			t.Errorf("Encode(dpi=%v) error = %v, want ErrInvalidDPI", dpi, err)
		}
	}
}

func TestReadDPIWithoutPhys(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, whiteImage(2, 2)); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadDPI(&buf); !errors.Is(err, ErrNoPhys) {
		t.Errorf("ReadDPI error = %v, want ErrNoPhys", err)
	}
}

func TestReadDPINotPNG(t *testing.T) {
	if _, err := ReadDPI(bytes.NewReader([]byte("GIF89a-not-a-png"))); err == nil {
		t.Error("ReadDPI accepted a non-PNG stream")
	}
}

func TestContentBounds(t *testing.T) {
	img := whiteImage(20, 10)
	img.Set(3, 2, color.Black)
	img.Set(15, 7, color.RGBA{R: 200, G: 200, B: 200, A: 255})

	got := ContentBounds(img, color.White)
	want := image.Rect(3, 2, 16, 8)
	if got != want {
		t.Errorf("ContentBounds = %v, want %v", got, want)
	}
}

func TestContentBoundsBlank(t *testing.T) {
	if got := ContentBounds(whiteImage(4, 4), color.White); !got.Empty() {
		t.Errorf("ContentBounds of blank image = %v, want empty", got)
	}
}

func TestCrop(t *testing.T) {
	img := whiteImage(10, 10)
	img.Set(4, 5, color.Black)

	out, err := Crop(img, image.Rect(4, 5, 8, 12))
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	// Clipped to the source: 4x5.
	if out.Bounds() != image.Rect(0, 0, 4, 5) {
		t.Errorf("Crop bounds = %v, want (0,0)-(4,5)", out.Bounds())
	}
	if r, _, _, _ := out.At(0, 0).RGBA(); r != 0 {
		t.Errorf("cropped origin red = %#x, want 0", r)
	}

	if _, err := Crop(img, image.Rect(20, 20, 30, 30)); !errors.Is(err, ErrEmptyCrop) {
		t.Errorf("Crop outside bounds error = %v, want ErrEmptyCrop", err)
	}
}
