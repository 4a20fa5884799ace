// Package window runs the board in a native window through raylib.
package window

import (
	"context"
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"

	"gridsnake/game/input"
	"gridsnake/ui"
)

const glowLayers = 3

var keyNames = map[int32]string{
	rl.KeyUp:    input.KeyArrowUp,
	rl.KeyDown:  input.KeyArrowDown,
	rl.KeyLeft:  input.KeyArrowLeft,
	rl.KeyRight: input.KeyArrowRight,
	rl.KeyW:     "w",
	rl.KeyA:     "a",
	rl.KeyS:     "s",
	rl.KeyD:     "d",
}

// Options configures the window.
type Options struct {
	Title     string
	Width     int // Initial logical width
	Height    int // Initial logical height
	TargetFPS int
}

// Surface renders into an offscreen texture sized in device pixels and
// presents it centred in the window at its logical size.
type Surface struct {
	target   rl.RenderTexture2D
	loaded   bool
	backingW int
	backingH int

	logicalW, logicalH int
	scale              float32

	fill   rl.Color
	stroke rl.Color
	glow   rl.Color
	blur   float32
}

func (s *Surface) SetLogicalSize(w, h int) {
	s.logicalW, s.logicalH = w, h
	rl.SetWindowMinSize(w, h)
}

// SetBackingSize reallocates the render texture when the size changes.
func (s *Surface) SetBackingSize(w, h int) {
	if s.loaded && w == s.backingW && h == s.backingH {
		return
	}
	if s.loaded {
		rl.UnloadRenderTexture(s.target)
		s.loaded = false
	}
	s.target = rl.LoadRenderTexture(int32(w), int32(h))
	s.backingW, s.backingH = w, h
	s.loaded = s.target.ID != 0
	rl.SetTextureFilter(s.target.Texture, rl.FilterBilinear)
}

func (s *Surface) SetScale(scale float64) {
	s.scale = float32(scale)
}

// Draw records fn into the backing texture; Present shows it.
func (s *Surface) Draw(fn func(ui.Canvas)) bool {
	if !s.loaded || !rl.IsWindowReady() {
		return false
	}
	rl.BeginTextureMode(s.target)
	rl.BeginMode2D(rl.Camera2D{Zoom: s.scale})
	fn(s)
	rl.EndMode2D()
	rl.EndTextureMode()
	return true
}

// Present blits the backing texture to the window. raylib polls input at
// the end of every drawn frame, so this runs every frame even when the
// board did not change.
func (s *Surface) Present() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	if s.loaded {
		w, h := float32(s.logicalW), float32(s.logicalH)
		x := (float32(rl.GetScreenWidth()) - w) / 2
		y := (float32(rl.GetScreenHeight()) - h) / 2
		// Render textures are stored upside down.
		src := rl.NewRectangle(0, 0, float32(s.backingW), -float32(s.backingH))
		dst := rl.NewRectangle(max(x, 0), max(y, 0), w, h)
		rl.DrawTexturePro(s.target.Texture, src, dst, rl.NewVector2(0, 0), 0, rl.White)
	}
	rl.EndDrawing()
}

func (s *Surface) SetFillColor(c color.RGBA) { s.fill = rl.Color(c) }
func (s *Surface) SetStrokeColor(c color.RGBA) { s.stroke = rl.Color(c) }

func (s *Surface) FillRect(x, y, w, h float64) {
	rec := rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
	if s.blur > 0 {
		// Approximate a shadow blur with fading, widening halos.
		for i := glowLayers; i >= 1; i-- {
			grow := s.blur * float32(i) / glowLayers
			halo := rl.NewRectangle(rec.X-grow, rec.Y-grow, rec.Width+2*grow, rec.Height+2*grow)
			rl.DrawRectangleRec(halo, rl.Fade(s.glow, 0.5/float32(glowLayers+i)))
		}
	}
	rl.DrawRectangleRec(rec, s.fill)
}

func (s *Surface) StrokeRect(x, y, w, h float64) {
	rl.DrawRectangleLinesEx(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), 1, s.stroke)
}

func (s *Surface) SetGlow(c color.RGBA, blur float64) {
	s.glow = rl.Color(c)
	s.blur = float32(blur)
}

func (s *Surface) ClearGlow() {
	s.blur = 0
}

// Host is a raylib window.
type Host struct {
	surface *Surface
}

// NewHost opens a resizable high-DPI window. raylib must stay on the
// calling goroutine's thread from here on.
func NewHost(opts Options) *Host {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}
	rl.SetExitKey(rl.KeyEscape)
	return &Host{surface: &Surface{scale: 1}}
}

func (h *Host) Surface() ui.Surface { return h.surface }

func (h *Host) Density() float64 {
	dpi := rl.GetWindowScaleDPI()
	if dpi.X <= 0 {
		return 1
	}
	return float64(dpi.X)
}

// Run drives hd once per window frame until the window closes or ctx is
// done.
func (h *Host) Run(ctx context.Context, hd ui.Handler) error {
	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
			if k == rl.KeyQ {
				glog.Info("window: quit requested")
				return nil
			}
			if name, ok := keyNames[k]; ok {
				hd.Key(name)
			}
		}

		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			p := rl.GetMousePosition()
			hd.TouchStart(float64(p.X), float64(p.Y))
		}
		if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
			p := rl.GetMousePosition()
			hd.TouchEnd(float64(p.X), float64(p.Y))
		}

		if rl.IsWindowResized() {
			hd.Resize()
		}

		hd.Frame(time.Duration(rl.GetTime() * float64(time.Second)))
		h.surface.Present()
	}
	return nil
}

func (h *Host) Close() error {
	if h.surface.loaded {
		rl.UnloadRenderTexture(h.surface.target)
		h.surface.loaded = false
	}
	rl.CloseWindow()
	return nil
}

var _ ui.Host = (*Host)(nil)
