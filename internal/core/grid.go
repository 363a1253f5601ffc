package core

import "math"

// Grid stores a 2D field of float64 cell values in row-major order.
type Grid struct {
	W, H int
	data []float64
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the value at integer coordinates, clamping to the grid edge.
func (g *Grid) At(x, y int) float64 {
	if x < 0 {
		x = 0
	}
	if x >= g.W {
		x = g.W - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= g.H {
		y = g.H - 1
	}
	return g.data[y*g.W+x]
}

// Set writes the value at integer coordinates. Out-of-range writes are dropped.
func (g *Grid) Set(x, y int, v float64) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	g.data[y*g.W+x] = v
}

// InInterior reports whether (x, y) lies where bilinear interpolation of the
// four surrounding cells is defined.
func (g *Grid) InInterior(x, y float64) bool {
	return x >= 0 && y >= 0 && x <= float64(g.W-1) && y <= float64(g.H-1)
}

// cellOf returns the lower-left lattice cell and fractional offsets for a
// continuous position. The lattice index is clamped so positions on the far
// edge still resolve to a valid 2x2 neighborhood.
func (g *Grid) cellOf(x, y float64) (xi, yi int, u, v float64) {
	xi = int(math.Floor(x))
	yi = int(math.Floor(y))
	if xi > g.W-2 {
		xi = g.W - 2
	}
	if yi > g.H-2 {
		yi = g.H - 2
	}
	if xi < 0 {
		xi = 0
	}
	if yi < 0 {
		yi = 0
	}
	return xi, yi, x - float64(xi), y - float64(yi)
}

// Bilinear samples the grid at a continuous position. The second return
// value is false when the position falls outside the interpolable interior.
func (g *Grid) Bilinear(x, y float64) (float64, bool) {
	if g.W < 2 || g.H < 2 || !g.InInterior(x, y) {
		return 0, false
	}
	xi, yi, u, v := g.cellOf(x, y)
	i := yi*g.W + xi
	h00 := g.data[i]
	h10 := g.data[i+1]
	h01 := g.data[i+g.W]
	h11 := g.data[i+g.W+1]
	return h00*(1-u)*(1-v) + h10*u*(1-v) + h01*(1-u)*v + h11*u*v, true
}

// Gradient returns the finite-difference slope at a continuous position,
// interpolated across the surrounding cell edges and clamped at the border.
func (g *Grid) Gradient(x, y float64) (float64, float64) {
	if g.W < 2 || g.H < 2 {
		return 0, 0
	}
	xi, yi, u, v := g.cellOf(x, y)
	i := yi*g.W + xi
	h00 := g.data[i]
	h10 := g.data[i+1]
	h01 := g.data[i+g.W]
	h11 := g.data[i+g.W+1]
	gx := (h10-h00)*(1-v) + (h11-h01)*v
	gy := (h01-h00)*(1-u) + (h11-h10)*u
	return gx, gy
}

// Splat distributes amount across the four cells surrounding a continuous
// position, proportional to the bilinear weights. Negative amounts remove
// material.
func (g *Grid) Splat(x, y float64, amount float64) {
	if g.W < 2 || g.H < 2 || !g.InInterior(x, y) {
		return
	}
	xi, yi, u, v := g.cellOf(x, y)
	i := yi*g.W + xi
	g.data[i] += amount * (1 - u) * (1 - v)
	g.data[i+1] += amount * u * (1 - v)
	g.data[i+g.W] += amount * (1 - u) * v
	g.data[i+g.W+1] += amount * u * v
}

// MinMax returns the smallest and largest cell values.
func (g *Grid) MinMax() (float64, float64) {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, v := range g.data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Sum returns the total of all cell values.
func (g *Grid) Sum() float64 {
	total := 0.0
	for _, v := range g.data {
		total += v
	}
	return total
}

// Normalize rescales all cells to [0, 1]. A flat grid normalizes to zero.
// Returns the raw range that was collapsed.
func (g *Grid) Normalize() (min, max float64) {
	min, max = g.MinMax()
	span := max - min
	if span <= 0 {
		for i := range g.data {
			g.data[i] = 0
		}
		return min, max
	}
	for i, v := range g.data {
		g.data[i] = (v - min) / span
	}
	return min, max
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.W, g.H)
	copy(out.data, g.data)
	return out
}

// Fill sets every cell to the provided value.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}
