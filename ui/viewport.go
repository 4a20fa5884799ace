package ui

import "math"

// Geometry describes the surface after a resize.
type Geometry struct {
	Cols, Rows int
	TileSize   int

	// Logical (layout) pixels.
	Width, Height int
	// Device pixels.
	BackingWidth, BackingHeight int
	Scale                       float64
}

// Viewport sizes a Surface for a cols x rows grid of square tiles.
type Viewport struct {
	Cols, Rows int
	TileSize   int
}

// Resize applies the grid's logical size, the density-scaled backing size
// and the matching scale transform to s. A density of zero or less counts
// as 1.
func (v Viewport) Resize(s Surface, density float64) Geometry {
	if density <= 0 || math.IsNaN(density) || math.IsInf(density, 0) {
		density = 1
	}

	g := Geometry{
		Cols:     v.Cols,
		Rows:     v.Rows,
		TileSize: v.TileSize,
		Width:    v.Cols * v.TileSize,
		Height:   v.Rows * v.TileSize,
		Scale:    density,
	}
	g.BackingWidth = scaled(g.Width, density)
	g.BackingHeight = scaled(g.Height, density)

	s.SetLogicalSize(g.Width, g.Height)
	s.SetBackingSize(g.BackingWidth, g.BackingHeight)
	s.SetScale(g.Scale)
	return g
}

func scaled(n int, density float64) int {
	px := int(math.Round(float64(n) * density))
	if px < 1 {
		return 1
	}
	return px
}
