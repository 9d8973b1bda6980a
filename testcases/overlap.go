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

var overlapCases = []TestCase{
	{
		// the two squares share the 2x2 block 4 <= x, y < 6
		Name:   "comment_decoration",
		Width:  10,
		Height: 10,
		Regions: []pixelgt.Region{
			region(pixelgt.TypeComment, rectangle(1, 1, 6, 6)),
			region(pixelgt.TypeDecoration, rectangle(4, 4, 9, 9)),
		},
		Ink: []image.Rectangle{image.Rect(1, 1, 6, 6), image.Rect(4, 4, 9, 9)},
	},
	{
		Name:   "same_type_twice",
		Width:  16,
		Height: 16,
		Regions: []pixelgt.Region{
			region(pixelgt.TypeTextLine, rectangle(2, 2, 10, 10)),
			region(pixelgt.TypeTextLine, rectangle(6, 6, 14, 14)),
		},
		Ink: []image.Rectangle{image.Rect(2, 2, 14, 14)},
	},
	{
		Name:   "unknown_type",
		Width:  10,
		Height: 10,
		Regions: []pixelgt.Region{
			{ID: "r1", Type: "marginalia", Polygon: rectangle(0, 0, 10, 10)},
			{ID: "r2", Type: pixelgt.TypeTextLine, Polygon: rectangle(2, 2, 6, 6)},
		},
		Ink: []image.Rectangle{image.Rect(2, 2, 6, 6)},
	},
	{
		Name:   "background_region",
		Width:  12,
		Height: 12,
		Regions: []pixelgt.Region{
			region(pixelgt.TypeBackground, rectangle(0, 0, 12, 12)),
			region(pixelgt.TypeTextLine, rectangle(3, 3, 9, 9)),
		},
		Ink: []image.Rectangle{image.Rect(4, 4, 8, 8), image.Rect(0, 11, 2, 12)},
	},
}
