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

package page

import (
	"encoding/xml"
	"io"
	"strconv"

	"seehuhn.de/go/pixelgt"
)

type outDoc struct {
	XMLName xml.Name `xml:"PcGts"`
	NS      string   `xml:"xmlns,attr"`
	Page    xmlPage  `xml:"Page"`
}

// Write writes the layout as a PAGE XML document.  Polygons are stored
// in the points attribute of the Coords elements.  If imageFile is not
// empty, it is recorded as the imageFilename of the page.
func Write(w io.Writer, layout *pixelgt.Layout, imageFile string) error {
	doc := &outDoc{
		NS: Namespace,
		Page: xmlPage{
			ImageFilename: imageFile,
			Regions:       make([]xmlRegion, len(layout.Regions)),
		},
	}
	if layout.Width > 0 && layout.Height > 0 {
		doc.Page.ImageWidth = strconv.Itoa(layout.Width)
		doc.Page.ImageHeight = strconv.Itoa(layout.Height)
	}
	for i, reg := range layout.Regions {
		doc.Page.Regions[i] = xmlRegion{
			ID:     reg.ID,
			Type:   reg.Type,
			Coords: &xmlCoords{Points: FormatPoints(reg.Polygon)},
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
