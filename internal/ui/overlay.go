//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"terragen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type temperatureFieldProvider interface {
	TemperatureField() []float64
}

type humidityFieldProvider interface {
	HumidityField() []float64
}

type heightFieldProvider interface {
	HeightField() []float64
}

// Overlay draws optional field visualizations on top of the base world view.
// Key 1 toggles temperature, key 2 humidity, key 3 the height contour tint.
type Overlay struct {
	builder core.Builder
	scale   int

	showTemperature bool
	showHumidity    bool
	showHeight      bool

	fieldImg *ebiten.Image
	fieldBuf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(builder core.Builder, scale int) *Overlay {
	return &Overlay{builder: builder, scale: scale}
}

// Update handles overlay toggle input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showTemperature = !o.showTemperature
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHumidity = !o.showHumidity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showHeight = !o.showHeight
	}
}

// Draw renders the enabled field overlays onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.builder.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	o.ensureBuffers(size)

	if o.showTemperature {
		if provider, ok := o.builder.(temperatureFieldProvider); ok {
			o.drawField(screen, provider.TemperatureField(), size, temperatureColor)
		}
	}
	if o.showHumidity {
		if provider, ok := o.builder.(humidityFieldProvider); ok {
			o.drawField(screen, provider.HumidityField(), size, humidityColor)
		}
	}
	if o.showHeight {
		if provider, ok := o.builder.(heightFieldProvider); ok {
			o.drawNormalizedField(screen, provider.HeightField(), size, heightColor)
		}
	}
}

func (o *Overlay) ensureBuffers(size core.Size) {
	total := size.W * size.H
	if o.fieldImg == nil || o.fieldImg.Bounds().Dx() != size.W || o.fieldImg.Bounds().Dy() != size.H {
		o.fieldImg = ebiten.NewImage(size.W, size.H)
		o.fieldBuf = make([]byte, 4*total)
	} else if len(o.fieldBuf) != 4*total {
		o.fieldBuf = make([]byte, 4*total)
	}
}

// drawField assumes values already live in [0, 1].
func (o *Overlay) drawField(screen *ebiten.Image, values []float64, size core.Size, ramp func(float64) color.RGBA) {
	total := size.W * size.H
	if len(values) != total {
		return
	}
	for i, v := range values {
		col := ramp(clamp01(v))
		base := i * 4
		o.fieldBuf[base+0] = col.R
		o.fieldBuf[base+1] = col.G
		o.fieldBuf[base+2] = col.B
		o.fieldBuf[base+3] = col.A
	}
	o.blitField(screen)
}

// drawNormalizedField rescales values to [0, 1] first, so it also works on
// raw heights mid-generation.
func (o *Overlay) drawNormalizedField(screen *ebiten.Image, values []float64, size core.Size, ramp func(float64) color.RGBA) {
	total := size.W * size.H
	if len(values) != total || total == 0 {
		return
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	span := maxVal - minVal
	if span <= 0 {
		span = 1
	}
	for i, v := range values {
		col := ramp((v - minVal) / span)
		base := i * 4
		o.fieldBuf[base+0] = col.R
		o.fieldBuf[base+1] = col.G
		o.fieldBuf[base+2] = col.B
		o.fieldBuf[base+3] = col.A
	}
	o.blitField(screen)
}

func (o *Overlay) blitField(screen *ebiten.Image) {
	o.fieldImg.WritePixels(o.fieldBuf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.fieldImg, op)
}

func temperatureColor(t float64) color.RGBA {
	cold := color.RGBA{R: 60, G: 90, B: 220, A: 150}
	warm := color.RGBA{R: 230, G: 80, B: 40, A: 150}
	return lerpRGBA(cold, warm, t)
}

func humidityColor(t float64) color.RGBA {
	dry := color.RGBA{R: 210, G: 185, B: 130, A: 150}
	wet := color.RGBA{R: 40, G: 120, B: 220, A: 150}
	return lerpRGBA(dry, wet, t)
}

func heightColor(t float64) color.RGBA {
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 160}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 175}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 190}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 205}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
