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

// Package preview draws page annotations into a PDF file, so that the
// polygons can be checked visually before ground truth is generated.
package preview

import (
	"errors"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pixelgt"
)

// errNoSize is returned for layouts without a page size.
var errNoSize = errors.New("preview: page size not specified")

// typeColors assigns a fill color to each standard region type.
// Other types with an entry in the mask table are drawn in gray.
var typeColors = map[string]color.Color{
	pixelgt.TypeBackground: color.DeviceRGB{0.9, 0.9, 0.9},
	pixelgt.TypeComment:    color.DeviceRGB{0.95, 0.55, 0.55},
	pixelgt.TypeDecoration: color.DeviceRGB{0.55, 0.85, 0.55},
	pixelgt.TypeTextLine:   color.DeviceRGB{0.55, 0.65, 0.95},
}

var otherColor = color.DeviceGray(0.7)

// WriteFile writes a one-page PDF showing the regions of layout.
// One PDF unit corresponds to one pixel.  Regions are filled using the
// even-odd rule and outlined in black.  Regions whose type is not in
// masks are omitted.  If masks is nil, [pixelgt.DefaultMasks] is used.
func WriteFile(fileName string, layout *pixelgt.Layout, masks *pixelgt.MaskTable) error {
	if layout.Width <= 0 || layout.Height <= 0 {
		return errNoSize
	}
	page, err := document.CreateSinglePage(fileName, pageSize(layout), pdf.V1_7, nil)
	if err != nil {
		return err
	}
	return draw(page, layout, masks)
}

// Write is like [WriteFile], but writes the PDF to w.
func Write(w io.Writer, layout *pixelgt.Layout, masks *pixelgt.MaskTable) error {
	if layout.Width <= 0 || layout.Height <= 0 {
		return errNoSize
	}
	page, err := document.WriteSinglePage(w, pageSize(layout), pdf.V1_7, nil)
	if err != nil {
		return err
	}
	return draw(page, layout, masks)
}

func pageSize(layout *pixelgt.Layout) *pdf.Rectangle {
	return &pdf.Rectangle{
		URx: float64(layout.Width),
		URy: float64(layout.Height),
	}
}

func draw(page *document.Page, layout *pixelgt.Layout, masks *pixelgt.MaskTable) error {
	if masks == nil {
		masks = pixelgt.DefaultMasks()
	}

	// white paper
	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, float64(layout.Width), float64(layout.Height))
	page.Fill()

	// PDF origin is bottom-left, pixel coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(layout.Height)})

	page.SetLineWidth(0.5)
	page.SetStrokeColor(color.DeviceGray(0))
	for _, reg := range layout.Regions {
		if _, ok := masks.Lookup(reg.Type); !ok || len(reg.Polygon) < 3 {
			continue
		}
		fill, ok := typeColors[reg.Type]
		if !ok {
			fill = otherColor
		}
		page.SetFillColor(fill)
		addPath(page, reg.Polygon.Path())
		page.FillAndStrokeEvenOdd()
	}

	return page.Close()
}

// addPath appends the line segments of p to the current PDF path.
func addPath(page *document.Page, p *path.Data) {
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(p.Coords[coordIdx].X, p.Coords[coordIdx].Y)
			coordIdx++
		case path.CmdLineTo:
			page.LineTo(p.Coords[coordIdx].X, p.Coords[coordIdx].Y)
			coordIdx++
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
