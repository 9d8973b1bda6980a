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

// Package page reads and writes page annotations in the PAGE XML format.
//
// Only the parts of the format needed for ground truth generation are
// supported: the page size and the TextRegion elements, each with a
// type attribute and a polygon.  The polygon can be given either as
// Point child elements of Coords, or as the points attribute of Coords.
// Element names are matched regardless of the XML name space.
package page

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/pixelgt"
)

// Namespace is the XML name space used by [Write].
const Namespace = "http://schema.primaresearch.org/PAGE/gts/pagecontent/2019-07-15"

// ErrNoPage is returned if the document has no Page element.
var ErrNoPage = errors.New("annotation has no Page element")

// MissingCoordsError is returned if a region has no Coords element.
type MissingCoordsError struct {
	Index int
	ID    string
}

func (err *MissingCoordsError) Error() string {
	return "region " + describe(err.Index, err.ID) + ": no Coords element"
}

// SyntaxError indicates an attribute value which could not be parsed.
type SyntaxError struct {
	Where string // the element or region containing the value
	Err   error
}

func (err *SyntaxError) Error() string {
	return "malformed annotation: " + err.Where + ": " + err.Err.Error()
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

type xmlDoc struct {
	Page *xmlPage `xml:"Page"`
}

type xmlPage struct {
	ImageFilename string      `xml:"imageFilename,attr,omitempty"`
	ImageWidth    string      `xml:"imageWidth,attr,omitempty"`
	ImageHeight   string      `xml:"imageHeight,attr,omitempty"`
	Regions       []xmlRegion `xml:"TextRegion"`
}

type xmlRegion struct {
	ID     string     `xml:"id,attr,omitempty"`
	Type   string     `xml:"type,attr,omitempty"`
	Coords *xmlCoords `xml:"Coords"`
}

type xmlCoords struct {
	Points string     `xml:"points,attr,omitempty"`
	Point  []xmlPoint `xml:"Point"`
}

type xmlPoint struct {
	X string `xml:"x,attr"`
	Y string `xml:"y,attr"`
}

// ReadFile reads a page annotation from the named file.
func ReadFile(name string) (*pixelgt.Layout, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	layout, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return layout, nil
}

// Read reads a page annotation.
//
// A missing imageWidth or imageHeight attribute results in a zero
// Width or Height in the returned layout.  Regions are returned in
// document order.  Type names are not checked here.
func Read(r io.Reader) (*pixelgt.Layout, error) {
	var doc xmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	if doc.Page == nil {
		return nil, ErrNoPage
	}

	width, err := parseSize(doc.Page.ImageWidth, "imageWidth")
	if err != nil {
		return nil, err
	}
	height, err := parseSize(doc.Page.ImageHeight, "imageHeight")
	if err != nil {
		return nil, err
	}

	layout := &pixelgt.Layout{
		Width:   width,
		Height:  height,
		Regions: make([]pixelgt.Region, 0, len(doc.Page.Regions)),
	}
	for i, xr := range doc.Page.Regions {
		if xr.Coords == nil {
			return nil, &MissingCoordsError{Index: i, ID: xr.ID}
		}
		poly, err := xr.Coords.polygon()
		if err != nil {
			return nil, &SyntaxError{Where: "region " + describe(i, xr.ID), Err: err}
		}
		layout.Regions = append(layout.Regions, pixelgt.Region{
			ID:      xr.ID,
			Type:    xr.Type,
			Polygon: poly,
		})
	}
	return layout, nil
}

// polygon returns the vertices of a Coords element.  Point children take
// precedence over the points attribute.
func (c *xmlCoords) polygon() (pixelgt.Polygon, error) {
	if len(c.Point) > 0 {
		poly := make(pixelgt.Polygon, len(c.Point))
		for i, p := range c.Point {
			x, err := strconv.Atoi(strings.TrimSpace(p.X))
			if err != nil {
				return nil, fmt.Errorf("point %d: x: %w", i, err)
			}
			y, err := strconv.Atoi(strings.TrimSpace(p.Y))
			if err != nil {
				return nil, fmt.Errorf("point %d: y: %w", i, err)
			}
			poly[i] = image.Point{X: x, Y: y}
		}
		return poly, nil
	}
	return ParsePoints(c.Points)
}

// ParsePoints parses a list of coordinate pairs of the form
// "x1,y1 x2,y2 ...".  An empty string gives an empty polygon.
func ParsePoints(s string) (pixelgt.Polygon, error) {
	fields := strings.Fields(s)
	poly := make(pixelgt.Polygon, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("invalid coordinate pair %q", f)
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate pair %q: %w", f, err)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate pair %q: %w", f, err)
		}
		poly = append(poly, image.Point{X: x, Y: y})
	}
	return poly, nil
}

// FormatPoints is the inverse of [ParsePoints].
func FormatPoints(poly pixelgt.Polygon) string {
	var b strings.Builder
	for i, p := range poly {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(p.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Y))
	}
	return b.String()
}

func parseSize(s, attr string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err == nil && n < 0 {
		err = errors.New("negative value")
	}
	if err != nil {
		return 0, &SyntaxError{Where: "Page@" + attr, Err: err}
	}
	return n, nil
}

func describe(index int, id string) string {
	s := strconv.Itoa(index)
	if id != "" {
		s += " (" + strconv.Quote(id) + ")"
	}
	return s
}
