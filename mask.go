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
	"maps"
	"slices"
)

// BoundaryBit is set in a label to mark a pixel which lies inside an
// annotated region but was not classified as ink by the binarizer.
const BoundaryBit uint32 = 0x800000

// labelBits covers the 24-bit label space of the RGB label image.
const labelBits uint32 = 0xFFFFFF

// Region type names of the default mask table.
const (
	TypeBackground = "background"
	TypeComment    = "comment"
	TypeDecoration = "decoration"
	TypeTextLine   = "textline"
)

// MaskTable maps region type names to label masks.
// A MaskTable is immutable after construction and safe for concurrent use.
type MaskTable struct {
	masks map[string]uint32
	bg    uint32
}

// NewMaskTable returns a table with the given name to mask mapping.
// Masks must be non-zero, must fit into 24 bits and must not use
// [BoundaryBit].  The table must contain an entry for [TypeBackground].
func NewMaskTable(masks map[string]uint32) (*MaskTable, error) {
	bg, ok := masks[TypeBackground]
	if !ok {
		return nil, fmt.Errorf("mask table: missing %q entry", TypeBackground)
	}
	for _, name := range slices.Sorted(maps.Keys(masks)) {
		m := masks[name]
		switch {
		case m == 0:
			return nil, fmt.Errorf("mask table: zero mask for %q", name)
		case m&^labelBits != 0:
			return nil, fmt.Errorf("mask table: mask 0x%X for %q exceeds 24 bits", m, name)
		case m&BoundaryBit != 0:
			return nil, fmt.Errorf("mask table: mask 0x%X for %q uses the boundary bit", m, name)
		}
	}
	return &MaskTable{
		masks: maps.Clone(masks),
		bg:    bg,
	}, nil
}

// DefaultMasks returns the standard table: background=1, comment=2,
// decoration=4, textline=8.
func DefaultMasks() *MaskTable {
	return defaultMasks
}

var defaultMasks = &MaskTable{
	masks: map[string]uint32{
		TypeBackground: 1,
		TypeComment:    2,
		TypeDecoration: 4,
		TypeTextLine:   8,
	},
	bg: 1,
}

// Lookup returns the mask for the given region type.
func (t *MaskTable) Lookup(name string) (uint32, bool) {
	m, ok := t.masks[name]
	return m, ok
}

// Background returns the mask used for pixels outside every region.
func (t *MaskTable) Background() uint32 {
	return t.bg
}

// Names returns the region type names in sorted order.
func (t *MaskTable) Names() []string {
	return slices.Sorted(maps.Keys(t.masks))
}
