// Package ascii renders images as text for the terminal.
package ascii

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Ramp runs from dark to light.
const Ramp = "@%#*+=-:. "

// CellAspect is how much taller a terminal cell is than it is wide.
const CellAspect = 2.0

// Convert scales img to width columns and maps each cell's luminance to
// a Ramp character. Rows are halved to make up for tall cells.
func Convert(img image.Image, width int) []string {
	b := img.Bounds()
	if width <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}
	if width > b.Dx() {
		width = b.Dx()
	}
	height := int(float64(b.Dy()) * float64(width) / float64(b.Dx()) / CellAspect)
	if height < 1 {
		height = 1
	}

	gray := image.NewGray(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(gray, gray.Bounds(), img, b, draw.Src, nil)

	lines := make([]string, height)
	for y := 0; y < height; y++ {
		var line strings.Builder
		for x := 0; x < width; x++ {
			line.WriteByte(shade(gray.GrayAt(x, y)))
		}
		lines[y] = line.String()
	}
	return lines
}

func shade(c color.Gray) byte {
	idx := int(c.Y) * (len(Ramp) - 1) / 255
	if idx >= len(Ramp) {
		idx = len(Ramp) - 1
	}
	return Ramp[idx]
}
