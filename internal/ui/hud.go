//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"terragen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the world view. The panel
// is display-only; values come from flag-style config, not live editing.
type HUD struct {
	builder    core.Builder
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	title      string
}

// NewHUD constructs a HUD for the provided builder and panel width.
func NewHUD(builder core.Builder, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{builder: builder, width: width}
	h.title = buildTitle(builder)
	return h
}

// Update refreshes the cached parameter snapshot from the builder.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.builder.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the HUD panel anchored to the right edge of the world view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	size := h.builder.Size()
	height := size.H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawPanel()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(builder core.Builder) string {
	if builder == nil {
		return "World"
	}
	name := builder.Name()
	if name == "" {
		return "World"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func (h *HUD) drawPanel() {
	face := basicfont.Face7x13
	headerColor := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	labelColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	valueColor := color.RGBA{R: 160, G: 200, B: 160, A: 255}

	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, headerColor)
	y += lineHeight
	stage := fmt.Sprintf("stage: %s", h.builder.Stage())
	text.Draw(h.panel, stage, face, panelPadding, y, labelColor)
	y += lineHeight + groupSpacing

	maxY := h.lastHeight - panelPadding
	for _, group := range h.snapshot.Groups {
		if y > maxY {
			return
		}
		name := group.Name
		if group.Summary != "" {
			name = fmt.Sprintf("%s (%s)", name, group.Summary)
		}
		text.Draw(h.panel, name, face, panelPadding, y, groupColor)
		y += lineHeight
		for _, param := range group.Params {
			if y > maxY {
				return
			}
			text.Draw(h.panel, param.Label, face, panelPadding+indent, y, labelColor)
			bounds := text.BoundString(face, param.Value)
			x := h.width - panelPadding - bounds.Dx()
			if x < panelPadding+indent {
				x = panelPadding + indent
			}
			text.Draw(h.panel, param.Value, face, x, y, valueColor)
			y += lineHeight
		}
		y += groupSpacing
	}
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 18
	groupSpacing   = 6
	indent         = 10
)
