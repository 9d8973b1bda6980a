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

// Command pixelgt generates pixel-level ground truth for an annotated
// page.  It writes a binarized version of the page image and a label
// image whose 24-bit RGB values encode the region type of each pixel.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/pixelgt"
	"seehuhn.de/go/pixelgt/internal/imagefile"
	"seehuhn.de/go/pixelgt/page"
	"seehuhn.de/go/pixelgt/preview"
)

func main() {
	os.Exit(pixelgtMain(os.Args[1:], os.Stderr))
}

// pixelgtMain parses the command line and runs the generator.  The return
// value is the exit status of the program.
func pixelgtMain(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("pixelgt", flag.ContinueOnError)
	flags.SetOutput(stderr)
	sigmaNarrow := flags.Float64("sigma-narrow", pixelgt.DefaultSigmaNarrow, "standard deviation of the narrow Gaussian")
	sigmaWide := flags.Float64("sigma-wide", pixelgt.DefaultSigmaWide, "standard deviation of the wide Gaussian")
	threshold := flags.Float64("threshold", pixelgt.DefaultThreshold, "binarization threshold")
	workers := flags.Int("workers", 0, "number of worker goroutines (0 = all CPUs)")
	previewFile := flags.String("preview", "", "also write the annotation as a PDF file")
	strict := flags.Bool("strict", false, "treat unknown region types as errors")
	verbose := flags.Bool("v", false, "show debug output")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [options] annotation.xml image out-binary.png out-labels.png\n", flags.Name())
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if flags.NArg() < 4 {
		flags.Usage()
		return 1
	}

	pixelgt.SetLogger(newLogger(stderr, *verbose))

	gen := pixelgt.NewGenerator()
	gen.Workers = *workers
	gen.Strict = *strict
	gen.Binarizer.SigmaNarrow = *sigmaNarrow
	gen.Binarizer.SigmaWide = *sigmaWide
	gen.Binarizer.Threshold = *threshold

	err := run(gen, flags.Arg(0), flags.Arg(1), flags.Arg(2), flags.Arg(3), *previewFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// run generates the ground truth for one page.  If an error occurs, no
// output files are left behind.
func run(gen *pixelgt.Generator, xmlFile, imageFile, binFile, labelFile, previewFile string) (err error) {
	log := pixelgt.Logger()

	log.Info("loading annotation", "file", xmlFile)
	layout, err := page.ReadFile(xmlFile)
	if err != nil {
		return err
	}

	log.Info("loading image", "file", imageFile)
	img, err := imagefile.Load(imageFile)
	if err != nil {
		return err
	}

	res, err := gen.Generate(layout, img)
	if err != nil {
		return err
	}

	var written []string
	defer func() {
		if err != nil {
			for _, name := range written {
				os.Remove(name)
			}
		}
	}()

	if err := imagefile.SavePNG(binFile, res.Binary.Image()); err != nil {
		return err
	}
	written = append(written, binFile)
	if err := imagefile.SavePNG(labelFile, res.Labels.Image()); err != nil {
		return err
	}
	written = append(written, labelFile)

	if previewFile != "" {
		pl := *layout
		pl.Width, pl.Height = res.Labels.Width, res.Labels.Height
		log.Info("writing preview", "file", previewFile)
		if err := preview.WriteFile(previewFile, &pl, gen.Masks); err != nil {
			return fmt.Errorf("writing preview: %w", err)
		}
	}
	log.Info("done", "binary", binFile, "labels", labelFile, "warnings", len(res.Warnings))
	return nil
}

// newLogger logs in human readable form to a terminal, and as JSON
// otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
