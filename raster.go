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
	"image"
	"image/color"

	"seehuhn.de/go/geom/rect"
)

// LabelRaster holds one label value per pixel, in row-major order.
// Each value is a bitwise OR of region masks, optionally combined
// with [BoundaryBit].
type LabelRaster struct {
	Width, Height int
	Pix           []uint32
}

// NewLabelRaster allocates a label raster with all pixels set to 0.
func NewLabelRaster(width, height int) *LabelRaster {
	return &LabelRaster{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

// At returns the label of pixel (x, y).
func (l *LabelRaster) At(x, y int) uint32 {
	return l.Pix[y*l.Width+x]
}

// Set replaces the label of pixel (x, y).
func (l *LabelRaster) Set(x, y int, v uint32) {
	l.Pix[y*l.Width+x] = v
}

// Bounds returns the pixel rectangle covered by the raster.
func (l *LabelRaster) Bounds() rect.IntRect {
	return rect.IntRect{XMin: 0, YMin: 0, XMax: l.Width, YMax: l.Height}
}

// Image converts the labels to an opaque RGB image.  The 24 label bits
// are stored as red (bits 16-23), green (bits 8-15) and blue (bits 0-7).
func (l *LabelRaster) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	for y := range l.Height {
		row := img.Pix[y*img.Stride:]
		for x, v := range l.Pix[y*l.Width : (y+1)*l.Width] {
			row[4*x+0] = uint8(v >> 16)
			row[4*x+1] = uint8(v >> 8)
			row[4*x+2] = uint8(v)
			row[4*x+3] = 0xFF
		}
	}
	return img
}

// LabelsFromImage reads a label raster back from an image written by
// [LabelRaster.Image].
func LabelsFromImage(img image.Image) *LabelRaster {
	b := img.Bounds()
	l := NewLabelRaster(b.Dx(), b.Dy())
	for y := range l.Height {
		for x := range l.Width {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			l.Pix[y*l.Width+x] = uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
		}
	}
	return l
}

// BinaryRaster records, for every pixel, whether it shows ink.
type BinaryRaster struct {
	Width, Height int
	Ink           []bool
}

// NewBinaryRaster allocates a binary raster with all pixels set to
// background.
func NewBinaryRaster(width, height int) *BinaryRaster {
	return &BinaryRaster{
		Width:  width,
		Height: height,
		Ink:    make([]bool, width*height),
	}
}

// IsInk reports whether pixel (x, y) is ink.
func (b *BinaryRaster) IsInk(x, y int) bool {
	return b.Ink[y*b.Width+x]
}

// SetInk sets pixel (x, y) to ink or background.
func (b *BinaryRaster) SetInk(x, y int, ink bool) {
	b.Ink[y*b.Width+x] = ink
}

// Bounds returns the pixel rectangle covered by the raster.
func (b *BinaryRaster) Bounds() rect.IntRect {
	return rect.IntRect{XMin: 0, YMin: 0, XMax: b.Width, YMax: b.Height}
}

// Image converts the raster to a grayscale image with black ink on a
// white background.
func (b *BinaryRaster) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	for y := range b.Height {
		row := img.Pix[y*img.Stride:]
		for x, ink := range b.Ink[y*b.Width : (y+1)*b.Width] {
			if ink {
				row[x] = 0x00
			} else {
				row[x] = 0xFF
			}
		}
	}
	return img
}

// BinaryFromImage reads a binary raster from an image, treating dark
// pixels as ink.  This inverts [BinaryRaster.Image].
func BinaryFromImage(img image.Image) *BinaryRaster {
	b := img.Bounds()
	bin := NewBinaryRaster(b.Dx(), b.Dy())
	for y := range bin.Height {
		for x := range bin.Width {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			bin.Ink[y*bin.Width+x] = c.Y < 0x80
		}
	}
	return bin
}

func sameSize(l *LabelRaster, b *BinaryRaster) bool {
	return l.Width == b.Width && l.Height == b.Height
}
