package ui

import (
	"image/color"

	"github.com/golang/glog"

	"gridsnake/game/types"
)

// Palette holds the board colours.
type Palette struct {
	Background color.RGBA
	GridLine   color.RGBA
	Snake      color.RGBA
	GlowBlur   float64
}

// DefaultPalette is the dark board with a spring-green snake.
var DefaultPalette = Palette{
	Background: color.RGBA{R: 0x0f, G: 0x0f, B: 0x0f, A: 0xff},
	GridLine:   color.RGBA{R: 0x1f, G: 0x1f, B: 0x1f, A: 0xff},
	Snake:      color.RGBA{R: 0x00, G: 0xff, B: 0x7f, A: 0xff},
	GlowBlur:   10,
}

type Renderer struct {
	palette Palette
	surface Surface
}

func NewRenderer(s Surface, p Palette) *Renderer {
	return &Renderer{palette: p, surface: s}
}

// Render redraws the whole board: background, one stroked rectangle per
// cell, then the snake with glow. It returns false if the surface was not
// available and nothing was drawn.
func (r *Renderer) Render(body []types.Point, g Geometry) bool {
	drawn := r.surface.Draw(func(c Canvas) {
		tile := float64(g.TileSize)

		c.SetFillColor(r.palette.Background)
		c.FillRect(0, 0, float64(g.Width), float64(g.Height))

		// Draw grid lines
		c.SetStrokeColor(r.palette.GridLine)
		for x := 0; x < g.Cols; x++ {
			for y := 0; y < g.Rows; y++ {
				c.StrokeRect(float64(x)*tile, float64(y)*tile, tile, tile)
			}
		}

		// Draw snake body
		c.SetFillColor(r.palette.Snake)
		c.SetGlow(r.palette.Snake, r.palette.GlowBlur)
		for _, p := range body {
			c.FillRect(float64(p.X)*tile, float64(p.Y)*tile, tile, tile)
		}
		c.ClearGlow()
	})
	if !drawn {
		glog.V(1).Info("render skipped: surface unavailable")
	}
	return drawn
}
