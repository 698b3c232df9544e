package main

import (
	"image/png"
	"io"
	"math"
	"os"
	"testing"

	"github.com/gogpu/threecircles"
	"github.com/gogpu/threecircles/internal/pngdpi"
)

func TestRunWritesDiagram(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(threecircles.DefaultOutput)
	if err != nil {
		t.Fatalf("output not created: %v", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("output is empty")
	}

	dpi, err := pngdpi.ReadDPI(f)
	if err != nil {
		t.Fatalf("ReadDPI: %v", err)
	}
	if math.Abs(dpi-threecircles.DefaultDPI) > 0.05 {
		t.Errorf("DPI = %v, want %v", dpi, threecircles.DefaultDPI)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}

	// Axes limits span 5 x 3.3 data units.
	b := img.Bounds()
	got := float64(b.Dx()) / float64(b.Dy())
	want := 5 / 3.3
	if math.Abs(got-want)/want > 0.15 {
		t.Errorf("aspect = %.3f (%dx%d), want about %.3f", got, b.Dx(), b.Dy(), want)
	}
}
