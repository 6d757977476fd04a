// Command depixelize reads a pixel-art raster from a file, runs it
// through the depixelization pipeline, and writes an SVG (optionally
// gzip-compressed as .svgz) to another file.
//
// Environment variables (loaded from a .env file if present, following
// the joho/godotenv init-time pattern of Fepozopo-timp/pkg/cli) provide
// defaults for flags left unset: DEPIXEL_SCALE, DEPIXEL_LINE_WIDTH,
// DEPIXEL_PROMINENCE_THRESHOLD, DEPIXEL_PROMINENCE_WINDOW.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/depixel"
	"github.com/katalvlaran/depixel/imageio"
	"github.com/klauspost/compress/gzip"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("depixelize: no .env file loaded: %v", err)
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("depixelize: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("depixelize", flag.ExitOnError)
	in := fs.String("in", "", "input raster image path (PNG, GIF, BMP, TIFF, or QOI)")
	out := fs.String("out", "", "output SVG path")
	scale := fs.Int("scale", envInt("DEPIXEL_SCALE", 20), "SVG unit scale factor")
	lineWidth := fs.Int("line-width", envInt("DEPIXEL_LINE_WIDTH", 2), "stroke width for debug lines and Béziers")
	prominenceThreshold := fs.Int("prominence-threshold", envInt("DEPIXEL_PROMINENCE_THRESHOLD", 4), "P3 sparse-colour-prominence ratio threshold")
	prominenceWindow := fs.Int("prominence-window", envInt("DEPIXEL_PROMINENCE_WINDOW", 6), "P3 sparse-colour-prominence window side length")
	smooth := fs.Bool("smooth", false, "emit piecewise quadratic-Bézier curves instead of straight polygons")
	gz := fs.Bool("gzip", false, "gzip-compress the output (.svgz)")
	debug := fs.Bool("debug", false, "log the decoded image size and rendered SVG size to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *in == "" || *out == "" {
		return fmt.Errorf("both -in and -out are required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *in, err)
	}

	tensor, err := imageio.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", *in, err)
	}
	if *debug {
		log.Printf("depixelize: decoded %s (%dx%d)", *in, len(tensor[0]), len(tensor))
	}

	cfg := depixel.NewConfig(
		depixel.WithScaleFactor(*scale),
		depixel.WithLineWidth(*lineWidth),
		depixel.WithColorProminenceThreshold(*prominenceThreshold),
		depixel.WithColorProminenceWindow(*prominenceWindow),
		depixel.WithSmooth(*smooth),
	)

	svg, err := depixel.Run(tensor, cfg)
	if err != nil {
		return fmt.Errorf("running pipeline: %w", err)
	}
	if *debug {
		log.Printf("depixelize: rendered %d bytes of SVG", len(svg))
	}

	return writeOutput(*out, svg, *gz)
}

func writeOutput(path, svg string, compressed bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if !compressed {
		_, err = f.WriteString(svg)
		return err
	}

	gw := gzip.NewWriter(f)
	if _, err := gw.Write([]byte(svg)); err != nil {
		return err
	}
	return gw.Close()
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
