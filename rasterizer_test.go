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

package pixelgt_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pixelgt"
	"seehuhn.de/go/pixelgt/testcases"
)

func findCase(t testing.TB, category, name string) testcases.TestCase {
	t.Helper()
	for _, tc := range testcases.All[category] {
		if tc.Name == name {
			return tc
		}
	}
	t.Fatalf("test case %s/%s not found", category, name)
	return testcases.TestCase{}
}

func square(x1, y1, x2, y2 int) pixelgt.Polygon {
	return pixelgt.Polygon{{x1, y1}, {x2, y1}, {x2, y2}, {x1, y2}}
}

func rasterize(t *testing.T, tc testcases.TestCase) *pixelgt.LabelRaster {
	t.Helper()
	r := pixelgt.NewRasterizer(nil)
	l, _, err := r.Rasterize(tc.Width, tc.Height, tc.Regions)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestRasterizeOverlap(t *testing.T) {
	l := rasterize(t, findCase(t, "overlap", "comment_decoration"))
	cases := []struct {
		x, y int
		want uint32
	}{
		{0, 0, 0},
		{1, 1, 2},
		{3, 5, 2},
		{4, 4, 2 | 4},
		{5, 5, 2 | 4},
		{6, 6, 4},
		{8, 8, 4},
		{9, 9, 0},
		{8, 1, 0},
	}
	for _, c := range cases {
		if got := l.At(c.x, c.y); got != c.want {
			t.Errorf("label at (%d, %d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestRasterizeSameType(t *testing.T) {
	l := rasterize(t, findCase(t, "overlap", "same_type_twice"))
	for _, p := range [][2]int{{2, 2}, {7, 7}, {13, 13}} {
		if got := l.At(p[0], p[1]); got != 8 {
			t.Errorf("label at %v = %d, want 8", p, got)
		}
	}
}

func TestRasterizeOrderIndependent(t *testing.T) {
	for _, name := range []string{"comment_decoration", "background_region"} {
		t.Run(name, func(t *testing.T) {
			tc := findCase(t, "overlap", name)
			forward := rasterize(t, tc)

			tc.Regions = slices.Clone(tc.Regions)
			slices.Reverse(tc.Regions)
			backward := rasterize(t, tc)

			if d := cmp.Diff(forward, backward); d != "" {
				t.Errorf("region order changes the result (-forward +backward):\n%s", d)
			}
		})
	}
}

func TestRasterizeUnknownType(t *testing.T) {
	tc := findCase(t, "overlap", "unknown_type")
	r := pixelgt.NewRasterizer(nil)
	l, warnings, err := r.Rasterize(tc.Width, tc.Height, tc.Regions)
	if err != nil {
		t.Fatal(err)
	}

	want := []pixelgt.Warning{{Index: 0, RegionID: "r1", Type: "marginalia"}}
	if d := cmp.Diff(want, warnings); d != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", d)
	}
	if got := l.At(0, 0); got != 0 {
		t.Errorf("label at (0, 0) = %d, want 0", got)
	}
	if got := l.At(2, 2); got != 8 {
		t.Errorf("label at (2, 2) = %d, want 8", got)
	}
}

func TestRasterizeEmptyRegion(t *testing.T) {
	regions := []pixelgt.Region{
		{ID: "a", Type: pixelgt.TypeTextLine, Polygon: square(1, 1, 3, 3)},
		{ID: "u", Type: "marginalia"}, // unknown types are skipped first
		{ID: "e", Type: pixelgt.TypeComment},
	}
	r := pixelgt.NewRasterizer(nil)
	l, warnings, err := r.Rasterize(8, 8, regions)

	var empty *pixelgt.EmptyRegionError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyRegionError, got %v", err)
	}
	if empty.Index != 2 || empty.ID != "e" {
		t.Errorf("error refers to region %d (%q), want 2 (\"e\")", empty.Index, empty.ID)
	}
	if l != nil {
		t.Error("a label raster was returned together with an error")
	}
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(warnings))
	}
}

func TestRasterizeClipping(t *testing.T) {
	l := rasterize(t, findCase(t, "precision", "clipped"))
	for i, v := range l.Pix {
		if v != 4 {
			t.Fatalf("pixel %d has label %d, want 4", i, v)
		}
	}

	for _, name := range []string{"outside", "degenerate"} {
		l := rasterize(t, findCase(t, "precision", name))
		for i, v := range l.Pix {
			if v != 0 {
				t.Errorf("%s: pixel %d has label %d, want 0", name, i, v)
				break
			}
		}
	}
}

func TestRasterizeSliver(t *testing.T) {
	l := rasterize(t, findCase(t, "precision", "sliver"))
	for y := range l.Height {
		for x := range l.Width {
			want := uint32(0)
			if y == 3 && x >= 2 && x < 30 {
				want = 8
			}
			if got := l.At(x, y); got != want {
				t.Errorf("label at (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestRasterizeWorkers(t *testing.T) {
	tc := findCase(t, "large", "page")

	r1 := pixelgt.NewRasterizer(nil)
	r1.Workers = 1
	seq, _, err := r1.Rasterize(tc.Width, tc.Height, tc.Regions)
	if err != nil {
		t.Fatal(err)
	}

	r8 := pixelgt.NewRasterizer(nil)
	r8.Workers = 8
	pixelgt.SetBandHeight(r8, 7)
	par, _, err := r8.Rasterize(tc.Width, tc.Height, tc.Regions)
	if err != nil {
		t.Fatal(err)
	}

	if n := countDiffs(seq, par); n > 0 {
		t.Errorf("%d pixels depend on the number of workers", n)
	}
}

func TestRasterizeEmptyPage(t *testing.T) {
	r := pixelgt.NewRasterizer(nil)
	l, _, err := r.Rasterize(0, 0, []pixelgt.Region{{Type: pixelgt.TypeTextLine, Polygon: square(0, 0, 4, 4)}})
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Pix) != 0 {
		t.Errorf("empty page has %d pixels", len(l.Pix))
	}
}

func TestFill(t *testing.T) {
	l := pixelgt.NewLabelRaster(8, 8)
	l.Set(3, 3, 0x10)

	r := pixelgt.NewRasterizer(nil)
	r.Fill(l, square(2, 2, 5, 5), 0x01)
	r.Fill(l, pixelgt.Polygon{{7, 7}}, 0x02)

	if got := l.At(3, 3); got != 0x11 {
		t.Errorf("label at (3, 3) = %#x, want 0x11", got)
	}
	if got := l.At(4, 4); got != 0x01 {
		t.Errorf("label at (4, 4) = %#x, want 0x01", got)
	}
	if got := l.At(5, 5); got != 0 {
		t.Errorf("label at (5, 5) = %#x, want 0", got)
	}
	if got := l.At(7, 7); got != 0 {
		t.Errorf("degenerate polygon changed pixel (7, 7) to %#x", got)
	}
}

func TestRasterizeStrict(t *testing.T) {
	tc := findCase(t, "overlap", "unknown_type")
	r := pixelgt.NewRasterizer(nil)
	r.Strict = true
	_, _, err := r.Rasterize(tc.Width, tc.Height, tc.Regions)

	var unknown *pixelgt.UnknownTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
	if unknown.RegionID != "r1" || unknown.Type != "marginalia" {
		t.Errorf("error refers to region %q of type %q", unknown.RegionID, unknown.Type)
	}
}

// crossesRight reports whether the horizontal ray from (x, y) towards
// increasing x crosses the edge from a to b.  The test uses the sign
// of a cross product, so no division is involved.
func crossesRight(a, b [2]int, x, y int) bool {
	if a[1] > b[1] {
		a, b = b, a
	}
	if y < a[1] || y >= b[1] {
		return false
	}
	// (x, y) is strictly left of the edge, seen from a towards b with b
	// below a, iff the cross product is positive.
	return (b[0]-a[0])*(y-a[1])-(x-a[0])*(b[1]-a[1]) > 0
}

// insideExact is an even-odd point-in-polygon test, written
// independently from the rasterizer.
func insideExact(p pixelgt.Polygon, x, y int) bool {
	inside := false
	for i := range p {
		a := [2]int{p[i].X, p[i].Y}
		j := (i + 1) % len(p)
		b := [2]int{p[j].X, p[j].Y}
		if crossesRight(a, b, x, y) {
			inside = !inside
		}
	}
	return inside
}

func TestRandomPolygons(t *testing.T) {
	const size = 40
	rng := rand.New(rand.NewPCG(1, 2))

	polys := []pixelgt.Polygon{
		// (22, 5) lies exactly on the first edge
		{{37, 10}, {-5, -4}, {37, -4}},
		{{-5, -4}, {37, 10}, {-5, 10}},
	}
	for range 200 {
		n := 3 + rng.IntN(8)
		p := make(pixelgt.Polygon, n)
		for i := range p {
			p[i].X = rng.IntN(size+10) - 5
			p[i].Y = rng.IntN(size+10) - 5
		}
		polys = append(polys, p)
	}

	r := pixelgt.NewRasterizer(nil)
	for k, p := range polys {
		l := pixelgt.NewLabelRaster(size, size)
		r.Fill(l, p, 0x08)
		for y := range size {
			for x := range size {
				want := insideExact(p, x, y)
				if got := p.Contains(x, y); got != want {
					t.Fatalf("polygon %d %v: Contains(%d, %d) = %t, want %t", k, p, x, y, got, want)
				}
				if got := l.At(x, y) == 0x08; got != want {
					t.Fatalf("polygon %d %v: pixel (%d, %d) filled = %t, want %t", k, p, x, y, got, want)
				}
			}
		}
	}

	if !polys[0].Contains(22, 5) {
		t.Error("(22, 5) not inside the first triangle")
	}
	if polys[1].Contains(22, 5) {
		t.Error("(22, 5) inside the second triangle")
	}
}
