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
	"github.com/unixpickle/essentials"
)

// Merge reconciles the rasterized regions with the binarization.  Both
// rasters are modified in place.  For every pixel, with code being the
// label without [BoundaryBit]:
//
//   - If code is 0, the pixel is outside all regions: it becomes
//     background in binary and its label becomes the background mask.
//   - If code is the background mask, the pixel lies only in background
//     regions.  Ink is kept there; a non-ink pixel gets the plain
//     background mask as its label.
//   - Otherwise, if the pixel is not ink, its label becomes
//     BoundaryBit | code.
//   - Otherwise both values are left unchanged.
//
// Merge is idempotent.  If the rasters differ in size, a [*DimensionError]
// is returned and nothing is modified.  If masks is nil, [DefaultMasks]
// is used.
func Merge(labels *LabelRaster, binary *BinaryRaster, masks *MaskTable) error {
	return mergeRows(labels, binary, masks, 0)
}

func mergeRows(labels *LabelRaster, binary *BinaryRaster, masks *MaskTable, workers int) error {
	if !sameSize(labels, binary) {
		return &DimensionError{
			LabelWidth:   labels.Width,
			LabelHeight:  labels.Height,
			BinaryWidth:  binary.Width,
			BinaryHeight: binary.Height,
		}
	}
	if masks == nil {
		masks = DefaultMasks()
	}
	bg := masks.Background()

	w := labels.Width
	essentials.ConcurrentMap(numWorkers(workers), labels.Height, func(y int) {
		lo, hi := y*w, (y+1)*w
		for i := lo; i < hi; i++ {
			labels.Pix[i], binary.Ink[i] = mergePixel(labels.Pix[i], binary.Ink[i], bg)
		}
	})
	return nil
}

// mergePixel applies the merge rule to a single pixel.
func mergePixel(label uint32, ink bool, bg uint32) (uint32, bool) {
	code := label &^ BoundaryBit
	switch {
	case code == 0:
		return bg, false
	case code == bg && !ink:
		return bg, false
	case code == bg:
		return label, true
	case !ink:
		return BoundaryBit | code, false
	default:
		return label, true
	}
}
