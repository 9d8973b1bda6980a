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

// Package pixelgt turns a polygon annotation of a scanned page into
// pixel-level ground truth for document layout analysis.
//
// Two rasters are produced: a binarization of the page image (see
// [Binarizer]) and a label raster (see [Rasterizer]).  [Merge] reconciles
// the two: pixels outside all regions become background, and region
// pixels which are not ink are marked with [BoundaryBit].
package pixelgt

//go:generate go run ./testcases/export

import (
	"fmt"
	"image"
)

// Generator runs the complete ground truth pipeline for one page.
type Generator struct {
	// Masks maps region types to label masks.
	Masks *MaskTable

	// Binarizer separates ink from background.
	Binarizer *Binarizer

	// Workers is the number of goroutines used by each stage.
	// Values <= 0 mean GOMAXPROCS.
	Workers int

	// Strict rejects layouts with unknown region types.
	Strict bool
}

// NewGenerator returns a Generator with the default mask table and
// binarization parameters.
func NewGenerator() *Generator {
	return &Generator{
		Masks:     DefaultMasks(),
		Binarizer: NewBinarizer(),
	}
}

// Result holds the output of [Generator.Generate].
type Result struct {
	Binary   *BinaryRaster
	Labels   *LabelRaster
	Warnings []Warning
}

// Generate computes the binary and label rasters for a page.
//
// If the layout does not specify the page size, the size of img is used.
// Otherwise the layout size must match the image size.
func (g *Generator) Generate(layout *Layout, img image.Image) (*Result, error) {
	masks := g.Masks
	if masks == nil {
		masks = DefaultMasks()
	}
	bin := g.Binarizer
	if bin == nil {
		bin = NewBinarizer()
	}

	width, height := layout.Width, layout.Height
	if width == 0 || height == 0 {
		b := img.Bounds()
		width, height = b.Dx(), b.Dy()
		Logger().Debug("page size not specified, using image size",
			"width", width, "height", height)
	}
	if b := img.Bounds(); b.Dx() != width || b.Dy() != height {
		return nil, &DimensionError{
			LabelWidth:   width,
			LabelHeight:  height,
			BinaryWidth:  b.Dx(),
			BinaryHeight: b.Dy(),
		}
	}

	Logger().Info("drawing regions", "count", len(layout.Regions))
	r := &Rasterizer{Masks: masks, Workers: g.Workers, Strict: g.Strict}
	labels, warnings, err := r.Rasterize(width, height, layout.Regions)
	if err != nil {
		return nil, fmt.Errorf("rasterizing regions: %w", err)
	}

	Logger().Info("binarizing")
	bz := *bin
	if bz.Workers == 0 {
		bz.Workers = g.Workers
	}
	binary := bz.Binarize(img)

	Logger().Info("merging regions and binarization")
	if err := mergeRows(labels, binary, masks, g.Workers); err != nil {
		return nil, err
	}

	return &Result{
		Binary:   binary,
		Labels:   labels,
		Warnings: warnings,
	}, nil
}

// numWorkers converts a worker count setting into the argument expected by
// essentials.ConcurrentMap, where 0 means GOMAXPROCS.
func numWorkers(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
