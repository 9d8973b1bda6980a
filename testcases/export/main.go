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

// Command export writes the synthetic test pages to testdata/, as PAGE
// XML annotations together with PNG page images.  The files can be used
// to run the pixelgt command by hand, or to compare against other
// ground truth generators.
// Run from the module root directory.
package main

import (
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/unixpickle/essentials"

	"seehuhn.de/go/pixelgt/internal/imagefile"
	"seehuhn.de/go/pixelgt/page"
	"seehuhn.de/go/pixelgt/testcases"
)

const outDir = "testdata"

func main() {
	essentials.Must(os.MkdirAll(outDir, 0o755))

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			base := filepath.Join(outDir, category+"_"+tc.Name)
			imageFile := base + ".png"
			essentials.Must(imagefile.SavePNG(imageFile, tc.Image()))
			essentials.Must(writeLayout(base+".xml", tc, filepath.Base(imageFile)))
		}
	}
}

func writeLayout(name string, tc testcases.TestCase, imageFile string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = page.Write(f, tc.Layout(), imageFile)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
