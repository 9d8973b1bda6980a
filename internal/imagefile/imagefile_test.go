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

package imagefile

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestSaveLoad(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 4))
	for y := range 4 {
		for x := range 5 {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 50), G: uint8(y * 60), B: 0x08, A: 0xFF})
		}
	}

	name := filepath.Join(t.TempDir(), "labels.png")
	if err := SavePNG(name, img); err != nil {
		t.Fatal(err)
	}
	back, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}

	if back.Bounds() != img.Bounds() {
		t.Fatalf("bounds %v, want %v", back.Bounds(), img.Bounds())
	}
	for y := range 4 {
		for x := range 5 {
			got := color.RGBAModel.Convert(back.At(x, y)).(color.RGBA)
			if want := img.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestLoadFormats(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 6))
	dir := t.TempDir()

	encoders := map[string]func(*os.File) error{
		"page.bmp": func(f *os.File) error { return bmp.Encode(f, img) },
		"page.jpg": func(f *os.File) error { return jpeg.Encode(f, img, nil) },
	}
	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			fileName := filepath.Join(dir, name)
			f, err := os.Create(fileName)
			if err != nil {
				t.Fatal(err)
			}
			err = encode(f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				t.Fatal(err)
			}

			back, err := Load(fileName)
			if err != nil {
				t.Fatal(err)
			}
			if back.Bounds().Dx() != 8 || back.Bounds().Dy() != 6 {
				t.Errorf("image size %v, want 8x6", back.Bounds())
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("missing file was accepted")
	}

	name := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(name, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(name); err == nil {
		t.Error("invalid image data was accepted")
	}
}
