package viewport

import (
	"errors"
	"math"
	"testing"
)

func TestFitEqualAspect(t *testing.T) {
	v, err := Fit(1800, 1500, 150, Limits{-2.5, 2.5}, Limits{-1.5, 1.8})
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	// Width-bound: 1500 px for 5 units.
	if v.Scale() != 300 {
		t.Errorf("Scale() = %v, want 300", v.Scale())
	}

	ux := v.X(1) - v.X(0)
	uy := v.Y(0) - v.Y(1)
	if math.Abs(ux-uy) > 1e-9 {
		t.Errorf("unit x = %v px, unit y = %v px, want equal", ux, uy)
	}
	if v.XLim().Span() != 5 {
		t.Errorf("XLim().Span() = %v, want 5", v.XLim().Span())
	}
}

func TestFitCentersBox(t *testing.T) {
	v, err := Fit(1000, 1000, 0, Limits{0, 2}, Limits{0, 1})
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	tests := []struct {
		name   string
		x, y   float64
		px, py float64
	}{
		{"bottom-left", 0, 0, 0, 750},
		{"top-right", 2, 1, 1000, 250},
		{"center", 1, 0.5, 500, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py := v.Point(tt.x, tt.y)
			if px != tt.px || py != tt.py {
				t.Errorf("Point(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, px, py, tt.px, tt.py)
			}
		})
	}

	b := v.Bounds()
	if b.Min.X != 0 || b.Min.Y != 250 || b.Max.X != 1000 || b.Max.Y != 750 {
		t.Errorf("Bounds() = %v, want (0,250)-(1000,750)", b)
	}
}

func TestFitHeightBound(t *testing.T) {
	v, err := Fit(1000, 100, 10, Limits{-1, 1}, Limits{-1, 1})
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if v.Scale() != 40 {
		t.Errorf("Scale() = %v, want 40", v.Scale())
	}
	if got := v.Y(1); got != 10 {
		t.Errorf("Y(1) = %v, want 10", got)
	}
}

func TestFitErrors(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		margin float64
		x, y   Limits
		want   error
	}{
		{"reversed x", 100, 100, 0, Limits{1, -1}, Limits{0, 1}, ErrEmptyRange},
		{"empty y", 100, 100, 0, Limits{0, 1}, Limits{2, 2}, ErrEmptyRange},
		{"margins too wide", 100, 100, 50, Limits{0, 1}, Limits{0, 1}, ErrNoRoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Fit(tt.w, tt.h, tt.margin, tt.x, tt.y); !errors.Is(err, tt.want) {
				t.Errorf("Fit error = %v, want %v", err, tt.want)
			}
		})
	}
}
