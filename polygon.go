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

package pixelgt

import (
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Polygon is a closed polygon in pixel coordinates.  There is an implicit
// edge from the last vertex back to the first one.
//
// Pixel (x, y) is inside the polygon if the integer point (x, y) is
// inside according to the even-odd rule.  Points on the boundary are
// inside if the interior lies immediately to the right (increasing x),
// or, for horizontal boundary edges, immediately below (increasing y).
// Thus the square with corners (2, 2) and (6, 6) contains the pixels
// with 2 <= x < 6 and 2 <= y < 6.
//
// Edge crossings are computed exactly in integer arithmetic.  Rasterizers
// working in floating point can classify points lying exactly on a
// sloped edge differently: for the edge from (37, 10) to (-5, -4), the
// point (22, 5) lies on the edge, but 9/14*42 evaluates to
// 27.000000000000004 in float64.
type Polygon []image.Point

// Region is an annotated polygon together with its type name.
type Region struct {
	ID      string
	Type    string
	Polygon Polygon
}

// Layout is the annotation of a single page.
// A Width or Height of 0 means that the size was not specified.
type Layout struct {
	Width, Height int
	Regions       []Region
}

// Bounds returns the smallest rectangle which contains all pixels
// inside the polygon.  The XMax and YMax coordinates are exclusive.
// Polygons with fewer than three vertices have empty bounds.
func (p Polygon) Bounds() rect.IntRect {
	if len(p) < 3 {
		return rect.IntRect{}
	}
	b := rect.IntRect{XMin: p[0].X, YMin: p[0].Y, XMax: p[0].X, YMax: p[0].Y}
	for _, v := range p[1:] {
		b.XMin = min(b.XMin, v.X)
		b.YMin = min(b.YMin, v.Y)
		b.XMax = max(b.XMax, v.X)
		b.YMax = max(b.YMax, v.Y)
	}
	return b
}

// Contains reports whether pixel (x, y) is inside the polygon.
func (p Polygon) Contains(x, y int) bool {
	if len(p) < 3 {
		return false
	}
	hits := 0
	last := p[len(p)-1]
	for _, cur := range p {
		e, ok := makeEdge(last, cur)
		last = cur
		if !ok || y < e.yLo || y >= e.yHi {
			continue
		}
		if x < e.crossing(y) {
			hits++
		}
	}
	return hits&1 != 0
}

// Path returns the polygon as a closed path.
func (p Polygon) Path() *path.Data {
	res := &path.Data{}
	if len(p) == 0 {
		return res
	}
	res.MoveTo(toVec(p[0]))
	for _, v := range p[1:] {
		res.LineTo(toVec(v))
	}
	return res.Close()
}

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// edge is a non-horizontal polygon edge, oriented so that yLo < yHi.
type edge struct {
	xLo, yLo int // end point with the smaller y coordinate
	xHi, yHi int // end point with the larger y coordinate
}

// makeEdge returns the edge between a and b.  Horizontal edges never
// cross a scanline and are reported as !ok.
func makeEdge(a, b image.Point) (edge, bool) {
	switch {
	case a.Y < b.Y:
		return edge{xLo: a.X, yLo: a.Y, xHi: b.X, yHi: b.Y}, true
	case a.Y > b.Y:
		return edge{xLo: b.X, yLo: b.Y, xHi: a.X, yHi: a.Y}, true
	default:
		return edge{}, false
	}
}

// crossing returns the smallest x coordinate, on scanline y, which lies
// on or to the right of the edge.  Pixels with x < crossing(y) are to
// the left of the edge.  The caller must ensure yLo <= y < yHi.
func (e *edge) crossing(y int) int {
	num := (y - e.yLo) * (e.xHi - e.xLo)
	den := e.yHi - e.yLo
	off := num / den // rounds towards zero
	if num%den != 0 && num > 0 {
		off++
	}
	return e.xLo + off
}
