package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// PaletteImage renders palette-indexed cells into an RGBA image.
func PaletteImage(w, h int, cells []uint8, palette []color.RGBA) (*image.RGBA, error) {
	if len(cells) != w*h {
		return nil, fmt.Errorf("render: %d cells for %dx%d image", len(cells), w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillPaletteRGBA(img.Pix, cells, palette)
	return img, nil
}

// ScalarImage renders a normalized scalar field through a color ramp.
func ScalarImage(w, h int, values []float64, ramp func(float64) color.RGBA) (*image.RGBA, error) {
	if len(values) != w*h {
		return nil, fmt.Errorf("render: %d values for %dx%d image", len(values), w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillScalarRGBA(img.Pix, values, ramp)
	return img, nil
}

// GrayRamp maps a normalized value to an opaque gray level.
func GrayRamp(v float64) color.RGBA {
	g := uint8(v * 255)
	return color.RGBA{R: g, G: g, B: g, A: 255}
}

// HeatRamp maps a normalized value from cool blue through green to warm red.
func HeatRamp(v float64) color.RGBA {
	switch {
	case v < 0.5:
		t := v * 2
		return lerpRGBA(color.RGBA{R: 40, G: 80, B: 200, A: 255}, color.RGBA{R: 80, G: 190, B: 120, A: 255}, t)
	default:
		t := (v - 0.5) * 2
		return lerpRGBA(color.RGBA{R: 80, G: 190, B: 120, A: 255}, color.RGBA{R: 220, G: 70, B: 50, A: 255}, t)
	}
}

// MoistureRamp maps a normalized value from dry sand tones to saturated blue.
func MoistureRamp(v float64) color.RGBA {
	return lerpRGBA(color.RGBA{R: 210, G: 190, B: 140, A: 255}, color.RGBA{R: 40, G: 110, B: 220, A: 255}, v)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// WritePNG encodes an image to a PNG file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return f.Close()
}
