package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output image file format
type Format string

// Supported output formats
const (
	PPM  Format = "ppm"
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// PixelFunc returns the color of pixel (x, y), where y = 0 is the bottom row
type PixelFunc func(x, y int) color.RGBA

// FormatFromPath picks the output format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return PPM, nil
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Encode writes a width x height image in the given format, top row first.
// fn is called exactly once per pixel.
func Encode(w io.Writer, format Format, width, height int, fn PixelFunc) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	switch format {
	case PPM:
		return encodePPM(w, width, height, fn)
	case PNG:
		return png.Encode(w, ToImage(width, height, fn))
	case BMP:
		return bmp.Encode(w, ToImage(width, height, fn))
	case TIFF:
		return tiff.Encode(w, ToImage(width, height, fn), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// EncodeImage writes an already rendered image in the given format
func EncodeImage(w io.Writer, format Format, img *image.RGBA) error {
	bounds := img.Bounds()
	return Encode(w, format, bounds.Dx(), bounds.Dy(), FromImage(img))
}

// WriteFile encodes img to path, choosing the format from the extension
func WriteFile(path string, img *image.RGBA) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := EncodeImage(file, format, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return file.Close()
}

// ToImage evaluates fn into an RGBA image whose first row is the top of the picture
func ToImage(width, height int, fn PixelFunc) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, height-1-y, fn(x, y))
		}
	}
	return img
}

// FromImage adapts a top-row-first image to a PixelFunc
func FromImage(img *image.RGBA) PixelFunc {
	bounds := img.Bounds()
	return func(x, y int) color.RGBA {
		return img.RGBAAt(bounds.Min.X+x, bounds.Max.Y-1-y)
	}
}

// encodePPM writes plain-text P3 with one "r g b" triple per line
func encodePPM(w io.Writer, width, height int, fn PixelFunc) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			c := fn(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
