package core

import (
	"math"
	"testing"
)

func TestBilinearInterpolation(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, 0)
	g.Set(1, 0, 1)
	g.Set(0, 1, 2)
	g.Set(1, 1, 3)

	v, ok := g.Bilinear(0.5, 0.5)
	if !ok {
		t.Fatal("centre of a 2x2 grid must be interpolable")
	}
	if math.Abs(v-1.5) > 1e-12 {
		t.Fatalf("Bilinear(0.5, 0.5) = %f, want 1.5", v)
	}

	// Exact lattice corners reproduce the stored values.
	if v, _ := g.Bilinear(1, 1); math.Abs(v-3) > 1e-12 {
		t.Fatalf("Bilinear(1, 1) = %f, want 3", v)
	}
	if _, ok := g.Bilinear(-0.1, 0); ok {
		t.Fatal("positions outside the grid must not interpolate")
	}
	if _, ok := g.Bilinear(1.1, 0.5); ok {
		t.Fatal("positions outside the grid must not interpolate")
	}
}

func TestGradientOnPlane(t *testing.T) {
	g := NewGrid(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			g.Set(x, y, float64(x)*2)
		}
	}
	gx, gy := g.Gradient(3.4, 5.1)
	if math.Abs(gx-2) > 1e-12 || math.Abs(gy) > 1e-12 {
		t.Fatalf("gradient of plane z=2x is (%f, %f), want (2, 0)", gx, gy)
	}
}

func TestSplatConservesAmount(t *testing.T) {
	g := NewGrid(8, 8)
	g.Fill(1)
	before := g.Sum()
	g.Splat(3.3, 4.7, 2.5)
	if diff := g.Sum() - before; math.Abs(diff-2.5) > 1e-12 {
		t.Fatalf("splat changed total by %f, want 2.5", diff)
	}
	g.Splat(0, 0, -1)
	if diff := g.Sum() - before; math.Abs(diff-1.5) > 1e-12 {
		t.Fatalf("negative splat changed total by %f, want 1.5", diff)
	}
	// Outside the interior nothing lands.
	g.Splat(-1, 3, 10)
	if diff := g.Sum() - before; math.Abs(diff-1.5) > 1e-12 {
		t.Fatal("out-of-grid splat must be dropped")
	}
}

func TestNormalize(t *testing.T) {
	g := NewGrid(4, 1)
	g.Set(0, 0, 10)
	g.Set(1, 0, 20)
	g.Set(2, 0, 30)
	g.Set(3, 0, 50)

	min, max := g.Normalize()
	if min != 10 || max != 50 {
		t.Fatalf("Normalize returned raw range %f..%f, want 10..50", min, max)
	}
	lo, hi := g.MinMax()
	if lo != 0 || hi != 1 {
		t.Fatalf("normalized range is %f..%f, want 0..1", lo, hi)
	}
	if v := g.At(1, 0); math.Abs(v-0.25) > 1e-12 {
		t.Fatalf("At(1,0) = %f after normalize, want 0.25", v)
	}
}

func TestNormalizeFlatGrid(t *testing.T) {
	g := NewGrid(3, 3)
	g.Fill(7)
	g.Normalize()
	lo, hi := g.MinMax()
	if lo != 0 || hi != 0 {
		t.Fatalf("flat grid must normalize to zero, got %f..%f", lo, hi)
	}
}

func TestAtClampsToEdge(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(0, 0, 5)
	g.Set(2, 2, 9)
	if v := g.At(-4, -4); v != 5 {
		t.Fatalf("At(-4,-4) = %f, want clamped 5", v)
	}
	if v := g.At(10, 10); v != 9 {
		t.Fatalf("At(10,10) = %f, want clamped 9", v)
	}
}
