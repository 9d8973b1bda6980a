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
	"cmp"
	"slices"

	"github.com/unixpickle/essentials"
	"seehuhn.de/go/geom/rect"
)

// Rasterizer converts annotated regions into a label raster.  Every pixel
// inside a region (see [Polygon]) has the region's mask ORed into its
// label, so that overlapping regions produce composite labels.
//
// The exported fields may be changed between calls.  A Rasterizer is
// safe for concurrent use as long as the fields are not modified.
type Rasterizer struct {
	// Masks maps region types to label masks.
	Masks *MaskTable

	// Workers is the number of goroutines used for filling.
	// Values <= 0 mean GOMAXPROCS.
	Workers int

	// Strict makes unknown region types an error, instead of skipping
	// the region with a warning.
	Strict bool

	// bandHeight is the number of raster rows handled by one work item.
	bandHeight int
}

// NewRasterizer returns a Rasterizer which uses the given mask table.
// If masks is nil, [DefaultMasks] is used.
func NewRasterizer(masks *MaskTable) *Rasterizer {
	if masks == nil {
		masks = DefaultMasks()
	}
	return &Rasterizer{
		Masks:      masks,
		bandHeight: defaultBandHeight,
	}
}

// shape is a region prepared for filling.
type shape struct {
	mask  uint32
	bbox  rect.IntRect // clamped to the raster
	edges []edge       // sorted by yLo
}

// Rasterize draws the regions into a new width×height label raster.
//
// Regions with an unknown type are skipped; one [Warning] is returned for
// each of them, in input order.  If r.Strict is set, an unknown type
// gives an [*UnknownTypeError] instead.  A region without vertices is an error.
// Regions with one or two vertices contain no pixels.
func (r *Rasterizer) Rasterize(width, height int, regions []Region) (*LabelRaster, []Warning, error) {
	shapes, warnings, err := r.prepare(width, height, regions)
	if err != nil {
		return nil, warnings, err
	}

	l := NewLabelRaster(width, height)
	r.fillShapes(l, shapes)

	Logger().Debug("rasterized regions",
		"regions", len(regions), "drawn", len(shapes), "skipped", len(warnings))
	return l, warnings, nil
}

// Fill ORs mask into every pixel of l which lies inside the polygon.
func (r *Rasterizer) Fill(l *LabelRaster, poly Polygon, mask uint32) {
	s, ok := newShape(poly, mask, l.Bounds())
	if !ok {
		return
	}
	var sc scanner
	sc.fill(l, s, 0, l.Height)
}

// prepare resolves region types and builds the edge lists.  Regions are
// processed sequentially, so that warnings appear in input order.
func (r *Rasterizer) prepare(width, height int, regions []Region) ([]*shape, []Warning, error) {
	masks := r.Masks
	if masks == nil {
		masks = DefaultMasks()
	}
	clip := rect.IntRect{XMin: 0, YMin: 0, XMax: width, YMax: height}

	var shapes []*shape
	var warnings []Warning
	for i, reg := range regions {
		mask, ok := masks.Lookup(reg.Type)
		if !ok {
			w := Warning{Index: i, RegionID: reg.ID, Type: reg.Type}
			if r.Strict {
				return nil, warnings, &UnknownTypeError{Warning: w}
			}
			Logger().Warn("unknown region type, region skipped",
				"index", i, "id", reg.ID, "type", reg.Type)
			warnings = append(warnings, w)
			continue
		}
		if len(reg.Polygon) == 0 {
			return nil, warnings, &EmptyRegionError{Index: i, ID: reg.ID}
		}
		if s, ok := newShape(reg.Polygon, mask, clip); ok {
			shapes = append(shapes, s)
		}
	}
	return shapes, warnings, nil
}

// newShape collects the non-horizontal edges of the polygon and clamps its
// bounding box to clip.  It returns !ok if no pixel of clip can be inside.
func newShape(poly Polygon, mask uint32, clip rect.IntRect) (*shape, bool) {
	bbox := poly.Bounds()
	bbox.XMin = max(bbox.XMin, clip.XMin)
	bbox.YMin = max(bbox.YMin, clip.YMin)
	bbox.XMax = min(bbox.XMax, clip.XMax)
	bbox.YMax = min(bbox.YMax, clip.YMax)
	if bbox.XMin >= bbox.XMax || bbox.YMin >= bbox.YMax {
		return nil, false
	}

	edges := make([]edge, 0, len(poly))
	last := poly[len(poly)-1]
	for _, cur := range poly {
		if e, ok := makeEdge(last, cur); ok {
			edges = append(edges, e)
		}
		last = cur
	}
	slices.SortFunc(edges, func(a, b edge) int {
		return cmp.Compare(a.yLo, b.yLo)
	})

	return &shape{mask: mask, bbox: bbox, edges: edges}, true
}

// fillShapes splits the raster into horizontal bands and fills the bands
// concurrently.  Each band applies all shapes in order, and no pixel
// belongs to more than one band.
func (r *Rasterizer) fillShapes(l *LabelRaster, shapes []*shape) {
	if len(shapes) == 0 || l.Height == 0 {
		return
	}
	bh := r.bandHeight
	if bh <= 0 {
		bh = defaultBandHeight
	}
	numBands := (l.Height + bh - 1) / bh

	essentials.ConcurrentMap(numWorkers(r.Workers), numBands, func(i int) {
		y0 := i * bh
		y1 := min(y0+bh, l.Height)
		var sc scanner
		for _, s := range shapes {
			sc.fill(l, s, y0, y1)
		}
	})
}

// scanner holds the scratch buffers of one filling goroutine.
type scanner struct {
	active    []int // indices of active edges
	crossings []int // crossing positions on the current scanline
}

// fill ORs the shape's mask into rows y0 <= y < y1 of l, using an
// active edge list.
func (sc *scanner) fill(l *LabelRaster, s *shape, y0, y1 int) {
	yMin := max(y0, s.bbox.YMin)
	yMax := min(y1, s.bbox.YMax)
	if yMin >= yMax {
		return
	}

	sc.active = sc.active[:0]
	nextEdge := 0
	for y := yMin; y < yMax; y++ {
		// add edges which start at or above this scanline
		for nextEdge < len(s.edges) && s.edges[nextEdge].yLo <= y {
			if s.edges[nextEdge].yHi > y {
				sc.active = append(sc.active, nextEdge)
			}
			nextEdge++
		}

		sc.crossings = sc.crossings[:0]
		for i := 0; i < len(sc.active); {
			e := &s.edges[sc.active[i]]
			if e.yHi <= y {
				// remove from active list (swap with last)
				sc.active[i] = sc.active[len(sc.active)-1]
				sc.active = sc.active[:len(sc.active)-1]
				continue
			}
			sc.crossings = append(sc.crossings, e.crossing(y))
			i++
		}
		if len(sc.crossings) < 2 {
			continue
		}
		slices.Sort(sc.crossings)

		// Even-odd rule: pixel x is inside iff an odd number of
		// crossings lie to its right, i.e. x is in [c[2k], c[2k+1]).
		row := l.Pix[y*l.Width : (y+1)*l.Width]
		for k := 0; k+1 < len(sc.crossings); k += 2 {
			xa := max(sc.crossings[k], s.bbox.XMin)
			xb := min(sc.crossings[k+1], s.bbox.XMax)
			for x := xa; x < xb; x++ {
				row[x] |= s.mask
			}
		}
	}
}

// defaultBandHeight is the number of rows per work item when filling.
const defaultBandHeight = 64
