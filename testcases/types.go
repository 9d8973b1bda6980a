// seehuhn.de/go/pixelgt - pixel-level ground truth for page layouts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases provides synthetic annotated pages for tests and
// benchmarks.
package testcases

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/pixelgt"
)

// TestCase is a synthetic page: an annotation together with the ink
// which is present on the page.
type TestCase struct {
	Name    string // lowercase a-z, 0-9 and _ only
	Width   int    // page width in pixels
	Height  int    // page height in pixels
	Regions []pixelgt.Region
	Ink     []image.Rectangle // dark areas of the page image
}

// Layout returns the annotation of the page.
func (tc TestCase) Layout() *pixelgt.Layout {
	return &pixelgt.Layout{
		Width:   tc.Width,
		Height:  tc.Height,
		Regions: tc.Regions,
	}
}

// Binary returns the ideal binarization of the page, with ink exactly
// in the Ink rectangles.
func (tc TestCase) Binary() *pixelgt.BinaryRaster {
	bin := pixelgt.NewBinaryRaster(tc.Width, tc.Height)
	for _, r := range tc.Ink {
		r = r.Intersect(image.Rect(0, 0, tc.Width, tc.Height))
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				bin.SetInk(x, y, true)
			}
		}
	}
	return bin
}

// Image returns a page image with black ink on white paper.
func (tc TestCase) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	for _, r := range tc.Ink {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.SetGray(x, y, color.Gray{Y: 0})
			}
		}
	}
	return img
}

func region(typ string, poly pixelgt.Polygon) pixelgt.Region {
	return pixelgt.Region{Type: typ, Polygon: poly}
}

func pt(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}

// rectangle builds an axis-parallel rectangle with corners (x1, y1)
// and (x2, y2).
func rectangle(x1, y1, x2, y2 int) pixelgt.Polygon {
	return pixelgt.Polygon{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// triangle builds a triangle.
func triangle(x1, y1, x2, y2, x3, y3 int) pixelgt.Polygon {
	return pixelgt.Polygon{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}

// fivePointStar builds a self-intersecting five-pointed star, connecting
// every second point of a regular pentagon.
func fivePointStar(cx, cy, r float64) pixelgt.Polygon {
	pts := make([]image.Point, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))),
		)
	}
	order := []int{0, 2, 4, 1, 3}
	star := make(pixelgt.Polygon, len(order))
	for i, j := range order {
		star[i] = pts[j]
	}
	return star
}
