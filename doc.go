// Package threecircles draws three overlapping unit circles and shades the
// lens-shaped region they enclose.
//
// # Overview
//
// The circles are centered at (-1, 0), (0, 0) and (1, 0). The shaded region
// is bounded above by the center circle and below by the left and right
// circles' upper arcs, between x = -0.5 and x = 0.5. The figure also carries
// dashed guides at x = ±0.5, axes crossing at the origin with ticks and
// arrowheads, and the labels "0", "x" and "y".
//
// # Quick Start
//
//	if err := threecircles.Render(threecircles.DefaultOutput); err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline
//
// Rendering runs in three stages:
//   - Geometry: boundary curves from internal/lens, pure functions of x
//   - Drawing: Figure.Draw paints onto a gg software context
//   - Export: Figure.SavePNG trims the canvas to its content and writes a PNG
//     that records its DPI
//
// # Coordinate System
//
// Drawing happens in data coordinates (y up) mapped to pixels (y down)
// with equal aspect, so the circles stay circular at every DPI.
package threecircles
