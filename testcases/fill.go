package testcases

import (
	"image"

	"seehuhn.de/go/pixelgt"
)

var fillCases = []TestCase{
	{
		Name:    "square_textline",
		Width:   10,
		Height:  10,
		Regions: []pixelgt.Region{region(pixelgt.TypeTextLine, rectangle(2, 2, 6, 6))},
		Ink:     []image.Rectangle{image.Rect(2, 2, 6, 6)},
	},
	{
		Name:    "square_no_ink",
		Width:   10,
		Height:  10,
		Regions: []pixelgt.Region{region(pixelgt.TypeTextLine, rectangle(2, 2, 6, 6))},
	},
	{
		Name:    "square_stray_ink",
		Width:   10,
		Height:  10,
		Regions: []pixelgt.Region{region(pixelgt.TypeTextLine, rectangle(2, 2, 6, 6))},
		Ink: []image.Rectangle{
			image.Rect(3, 3, 5, 5),
			image.Rect(7, 7, 9, 9), // outside the region
		},
	},
	{
		Name:    "triangle",
		Width:   64,
		Height:  64,
		Regions: []pixelgt.Region{region(pixelgt.TypeDecoration, triangle(10, 50, 32, 10, 54, 50))},
		Ink:     []image.Rectangle{image.Rect(26, 30, 38, 46)},
	},
	{
		Name:    "star",
		Width:   64,
		Height:  64,
		Regions: []pixelgt.Region{region(pixelgt.TypeComment, fivePointStar(32, 32, 25))},
		Ink:     []image.Rectangle{image.Rect(10, 20, 54, 24)},
	},
	{
		Name:   "concave",
		Width:  32,
		Height: 32,
		Regions: []pixelgt.Region{region(pixelgt.TypeTextLine, pixelgt.Polygon{
			pt(4, 4), pt(12, 4), pt(12, 20), pt(24, 20), pt(24, 28), pt(4, 28),
		})},
		Ink: []image.Rectangle{image.Rect(6, 6, 10, 26), image.Rect(10, 22, 22, 26)},
	},
}
