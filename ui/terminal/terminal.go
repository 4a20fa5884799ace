// Package terminal runs the board in a terminal through tcell. Each tile
// is drawn as two character cells so the board keeps a square aspect.
package terminal

import (
	"context"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"gridsnake/game/input"
	"gridsnake/ui"
)

const (
	cellsPerTile  = 2
	frameInterval = 16 * time.Millisecond // ~60 FPS
	gridGlyph     = '·'
)

var keyNames = map[tcell.Key]string{
	tcell.KeyUp:    input.KeyArrowUp,
	tcell.KeyDown:  input.KeyArrowDown,
	tcell.KeyLeft:  input.KeyArrowLeft,
	tcell.KeyRight: input.KeyArrowRight,
}

// Surface draws onto a tcell screen. Logical pixels are mapped to tiles by
// the tile size, and tiles to character cells.
type Surface struct {
	screen tcell.Screen
	tile   int

	logicalW, logicalH int

	fill   tcell.Color
	stroke tcell.Color
	glow   bool
}

func NewSurface(screen tcell.Screen, tileSize int) *Surface {
	if tileSize < 1 {
		tileSize = 1
	}
	return &Surface{
		screen: screen,
		tile:   tileSize,
		fill:   tcell.ColorDefault,
		stroke: tcell.ColorDefault,
	}
}

func (s *Surface) SetLogicalSize(w, h int) {
	s.logicalW, s.logicalH = w, h
}

// SetBackingSize is a no-op: a terminal cell is the device pixel.
func (s *Surface) SetBackingSize(w, h int) {}

// SetScale is a no-op for the same reason.
func (s *Surface) SetScale(scale float64) {}

func (s *Surface) Draw(fn func(ui.Canvas)) bool {
	if s.screen == nil {
		return false
	}
	s.screen.Clear()
	fn(s)
	s.screen.Show()
	return true
}

// origin centres the board in the terminal, clamped to the top-left.
func (s *Surface) origin() (int, int) {
	w, h := s.screen.Size()
	cols := s.logicalW / s.tile * cellsPerTile
	rows := s.logicalH / s.tile
	return max((w-cols)/2, 0), max((h-rows)/2, 0)
}

// cells returns the character rectangle covered by a logical-pixel rect.
func (s *Surface) cells(x, y, w, h float64) (x0, y0, x1, y1 int) {
	t := float64(s.tile)
	ox, oy := s.origin()
	x0 = ox + int(math.Floor(x/t))*cellsPerTile
	x1 = ox + int(math.Ceil((x+w)/t))*cellsPerTile
	y0 = oy + int(math.Floor(y/t))
	y1 = oy + int(math.Ceil((y+h)/t))
	return
}

func (s *Surface) SetFillColor(c color.RGBA) { s.fill = toColor(c) }
func (s *Surface) SetStrokeColor(c color.RGBA) { s.stroke = toColor(c) }

func (s *Surface) FillRect(x, y, w, h float64) {
	style := tcell.StyleDefault.Background(s.fill).Bold(s.glow)
	x0, y0, x1, y1 := s.cells(x, y, w, h)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

// StrokeRect marks the top-left cell of every tile in the rect with a dot,
// keeping whatever background is already there.
func (s *Surface) StrokeRect(x, y, w, h float64) {
	x0, y0, x1, y1 := s.cells(x, y, w, h)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx += cellsPerTile {
			_, _, style, _ := s.screen.GetContent(cx, cy)
			s.screen.SetContent(cx, cy, gridGlyph, nil, style.Foreground(s.stroke))
		}
	}
}

func (s *Surface) SetGlow(c color.RGBA, blur float64) { s.glow = blur > 0 }
func (s *Surface) ClearGlow() { s.glow = false }

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Host owns the tcell screen and its event loop.
type Host struct {
	screen  tcell.Screen
	surface *Surface
}

// NewHost initialises the terminal. Close must be called to restore it.
func NewHost(tileSize int) (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating terminal screen")
	}
	return NewHostWithScreen(screen, tileSize)
}

// NewHostWithScreen wraps an existing, uninitialised screen.
func NewHostWithScreen(screen tcell.Screen, tileSize int) (*Host, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initialising terminal screen")
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	return &Host{
		screen:  screen,
		surface: NewSurface(screen, tileSize),
	}, nil
}

func (h *Host) Surface() ui.Surface { return h.surface }

func (h *Host) Density() float64 { return 1 }

// Run polls terminal events on a separate goroutine and dispatches them,
// together with frame ticks, on the calling goroutine.
func (h *Host) Run(ctx context.Context, hd ui.Handler) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	start := time.Now()
	var pressed bool
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					glog.Info("terminal: quit requested")
					return nil
				}
				hd.Key(keyName(ev))

			case *tcell.EventResize:
				h.screen.Sync()
				hd.Resize()

			case *tcell.EventMouse:
				x, y := ev.Position()
				px, py := h.pointer(x, y)
				down := ev.Buttons()&tcell.Button1 != 0
				switch {
				case down && !pressed:
					pressed = true
					hd.TouchStart(px, py)
				case !down && pressed:
					pressed = false
					hd.TouchEnd(px, py)
				}
			}

		case <-ticker.C:
			hd.Frame(time.Since(start))
		}
	}
}

// pointer converts a character position to pointer coordinates with the
// same aspect as the board's tiles.
func (h *Host) pointer(x, y int) (float64, float64) {
	t := float64(h.surface.tile)
	return float64(x) * t / cellsPerTile, float64(y) * t
}

func (h *Host) Close() error {
	h.screen.Fini()
	return nil
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func keyName(ev *tcell.EventKey) string {
	if name, ok := keyNames[ev.Key()]; ok {
		return name
	}
	if ev.Key() == tcell.KeyRune {
		return string(ev.Rune())
	}
	return ""
}

var _ ui.Host = (*Host)(nil)
