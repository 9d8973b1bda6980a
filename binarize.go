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
	"math"

	"github.com/unixpickle/essentials"
)

// Default parameters of the band-pass binarization, tuned for manuscript
// scans.
const (
	DefaultSigmaNarrow = 1.5
	DefaultSigmaWide   = 25.0
	DefaultThreshold   = 0.01
)

// gaussTruncate is the number of standard deviations covered by each
// side of a Gaussian kernel.
const gaussTruncate = 4.0

// Binarizer separates ink from background using a difference of Gaussians.
//
// The input is converted to gray values in [0, 1] and blurred twice, with
// standard deviations SigmaNarrow and SigmaWide.  A pixel is ink if the
// wide blur (the local background level) exceeds the narrow blur (the
// stroke-scale intensity) by more than Threshold, i.e. if the pixel is
// noticeably darker than its surroundings.
type Binarizer struct {
	SigmaNarrow float64
	SigmaWide   float64
	Threshold   float64

	// Workers is the number of goroutines used for filtering.
	// Values <= 0 mean GOMAXPROCS.
	Workers int
}

// NewBinarizer returns a Binarizer with the default parameters.
func NewBinarizer() *Binarizer {
	return &Binarizer{
		SigmaNarrow: DefaultSigmaNarrow,
		SigmaWide:   DefaultSigmaWide,
		Threshold:   DefaultThreshold,
	}
}

// Binarize classifies every pixel of img as ink or background.
// The result is deterministic for a given image and parameter set.
func (b *Binarizer) Binarize(img image.Image) *BinaryRaster {
	gray := grayPlane(img)
	workers := numWorkers(b.Workers)

	Logger().Debug("binarizing",
		"width", gray.width, "height", gray.height,
		"sigmaNarrow", b.SigmaNarrow, "sigmaWide", b.SigmaWide,
		"threshold", b.Threshold)

	var narrow, wide *plane
	essentials.ConcurrentMap(2, 2, func(i int) {
		if i == 0 {
			narrow = gray.blur(b.SigmaNarrow, workers)
		} else {
			wide = gray.blur(b.SigmaWide, workers)
		}
	})

	res := NewBinaryRaster(gray.width, gray.height)
	th := float32(b.Threshold)
	essentials.ConcurrentMap(workers, gray.height, func(y int) {
		lo, hi := y*gray.width, (y+1)*gray.width
		for i := lo; i < hi; i++ {
			res.Ink[i] = wide.pix[i]-narrow.pix[i] > th
		}
	})
	return res
}

// plane is a single-channel floating point image.
type plane struct {
	width, height int
	pix           []float32
}

func newPlane(width, height int) *plane {
	return &plane{
		width:  width,
		height: height,
		pix:    make([]float32, width*height),
	}
}

// grayPlane converts img to gray values in [0, 1], using the unweighted
// mean of the red, green and blue channels.
func grayPlane(img image.Image) *plane {
	bounds := img.Bounds()
	p := newPlane(bounds.Dx(), bounds.Dy())

	switch img := img.(type) {
	case *image.Gray:
		for y := range p.height {
			src := img.Pix[(y+bounds.Min.Y-img.Rect.Min.Y)*img.Stride:]
			dst := p.pix[y*p.width : (y+1)*p.width]
			off := bounds.Min.X - img.Rect.Min.X
			for x := range dst {
				dst[x] = float32(src[off+x]) / 255
			}
		}
	default:
		for y := range p.height {
			dst := p.pix[y*p.width : (y+1)*p.width]
			for x := range dst {
				r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				dst[x] = float32((r>>8)+(g>>8)+(b>>8)) / (3 * 255)
			}
		}
	}
	return p
}

// blur returns a copy of p convolved with a Gaussian of standard deviation
// sigma.  The two-pass separable algorithm first convolves the rows and
// then the columns.  Pixels outside the plane are replaced by the nearest
// edge pixel.
func (p *plane) blur(sigma float64, workers int) *plane {
	kernel := gaussianKernel(sigma)
	half := len(kernel) / 2
	w, h := p.width, p.height

	tmp := newPlane(w, h)
	essentials.ConcurrentMap(workers, h, func(y int) {
		src := p.pix[y*w : (y+1)*w]
		dst := tmp.pix[y*w : (y+1)*w]
		for x := range dst {
			var sum float32
			for k, weight := range kernel {
				kx := min(max(x+k-half, 0), w-1)
				sum += src[kx] * weight
			}
			dst[x] = sum
		}
	})

	out := newPlane(w, h)
	essentials.ConcurrentMap(workers, h, func(y int) {
		dst := out.pix[y*w : (y+1)*w]
		for k, weight := range kernel {
			ky := min(max(y+k-half, 0), h-1)
			src := tmp.pix[ky*w : (ky+1)*w]
			for x := range dst {
				dst[x] += src[x] * weight
			}
		}
	})
	return out
}

// gaussianKernel returns a normalized 1D Gaussian kernel for the given
// standard deviation.  The kernel has an odd number of entries and
// extends gaussTruncate standard deviations to each side.
// For sigma <= 0 the identity kernel [1] is returned.
func gaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}

	size := int(2*gaussTruncate*sigma + 1)
	if size%2 == 0 {
		size++
	}
	half := size / 2

	kernel := make([]float32, size)
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - half)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	invSum := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= invSum
	}
	return kernel
}
