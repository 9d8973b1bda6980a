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

var precisionCases = []TestCase{
	{
		// extends beyond all four edges of the page
		Name:    "clipped",
		Width:   16,
		Height:  16,
		Regions: []pixelgt.Region{region(pixelgt.TypeDecoration, rectangle(-5, -3, 20, 30))},
		Ink:     []image.Rectangle{image.Rect(0, 0, 16, 8)},
	},
	{
		Name:    "outside",
		Width:   16,
		Height:  16,
		Regions: []pixelgt.Region{region(pixelgt.TypeTextLine, rectangle(20, 20, 30, 30))},
	},
	{
		Name:   "degenerate",
		Width:  16,
		Height: 16,
		Regions: []pixelgt.Region{
			region(pixelgt.TypeTextLine, pixelgt.Polygon{pt(4, 4)}),
			region(pixelgt.TypeTextLine, pixelgt.Polygon{pt(2, 2), pt(12, 12)}),
			region(pixelgt.TypeTextLine, pixelgt.Polygon{pt(2, 8), pt(8, 8), pt(14, 8)}),
		},
	},
	{
		Name:    "diagonal",
		Width:   16,
		Height:  16,
		Regions: []pixelgt.Region{region(pixelgt.TypeComment, triangle(0, 0, 15, 0, 0, 15))},
		Ink:     []image.Rectangle{image.Rect(0, 0, 8, 8)},
	},
	{
		Name:    "sliver",
		Width:   32,
		Height:  8,
		Regions: []pixelgt.Region{region(pixelgt.TypeTextLine, rectangle(2, 3, 30, 4))},
		Ink:     []image.Rectangle{image.Rect(2, 3, 30, 4)},
	},
}
