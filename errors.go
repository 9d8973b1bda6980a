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
	"fmt"
	"strconv"
)

// EmptyRegionError is returned when a region has no vertices.
type EmptyRegionError struct {
	Index int    // position of the region in the input
	ID    string // region identifier, if known
}

func (err *EmptyRegionError) Error() string {
	name := "region " + strconv.Itoa(err.Index)
	if err.ID != "" {
		name += " (" + strconv.Quote(err.ID) + ")"
	}
	return name + " has no vertices"
}

// UnknownTypeError is returned in strict mode when a region type has no
// entry in the mask table.
type UnknownTypeError struct {
	Warning
}

func (err *UnknownTypeError) Error() string {
	s := "region " + strconv.Itoa(err.Index)
	if err.RegionID != "" {
		s += " (" + strconv.Quote(err.RegionID) + ")"
	}
	return s + ": unknown region type " + strconv.Quote(err.Type)
}

// DimensionError is returned when the label raster and the binary raster
// do not have the same size.
type DimensionError struct {
	LabelWidth, LabelHeight   int
	BinaryWidth, BinaryHeight int
}

func (err *DimensionError) Error() string {
	return fmt.Sprintf("raster size mismatch: labels are %dx%d, binary image is %dx%d",
		err.LabelWidth, err.LabelHeight, err.BinaryWidth, err.BinaryHeight)
}

// Warning describes a region which was skipped because its type has no
// entry in the mask table.
type Warning struct {
	Index    int    // position of the region in the input
	RegionID string // region identifier, if known
	Type     string // the unrecognised type name
}

func (w Warning) String() string {
	s := "region " + strconv.Itoa(w.Index)
	if w.RegionID != "" {
		s += " (" + strconv.Quote(w.RegionID) + ")"
	}
	return s + ": unknown region type " + strconv.Quote(w.Type) + ", skipped"
}
