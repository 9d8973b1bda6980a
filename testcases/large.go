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

package testcases

import (
	"image"

	"seehuhn.de/go/pixelgt"
)

// largeCases contains full-size pages, used mainly for benchmarks.
var largeCases = []TestCase{
	manuscriptPage("page", 600, 800, 24),
}

// manuscriptPage builds a page with a column of text lines, a comment in
// the margin and a decoration overlapping the first lines.
func manuscriptPage(name string, width, height, lines int) TestCase {
	tc := TestCase{
		Name:   name,
		Width:  width,
		Height: height,
	}

	top, left, right := height/10, width/5, width-width/10
	lineHeight := (height - 2*top) / lines
	for i := range lines {
		y := top + i*lineHeight
		// slanted baseline, so that not all edges are axis-parallel
		poly := pixelgt.Polygon{
			pt(left, y), pt(right, y+2),
			pt(right, y+lineHeight-2), pt(left, y+lineHeight),
		}
		tc.Regions = append(tc.Regions, region(pixelgt.TypeTextLine, poly))
		for x := left + 4; x+6 < right; x += 12 {
			tc.Ink = append(tc.Ink, image.Rect(x, y+lineHeight/4, x+6, y+3*lineHeight/4))
		}
	}

	tc.Regions = append(tc.Regions,
		region(pixelgt.TypeComment, rectangle(width/40, top, left-width/40, top+6*lineHeight)),
		region(pixelgt.TypeDecoration, fivePointStar(float64(left+lineHeight), float64(top+lineHeight), float64(lineHeight)*1.5)),
	)
	tc.Ink = append(tc.Ink, image.Rect(width/20, top+lineHeight, left-width/20, top+5*lineHeight))
	return tc
}
