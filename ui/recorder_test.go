package ui

import (
	"fmt"
	"image/color"
)

// recorder is a Surface that logs every call as a string.
type recorder struct {
	unavailable bool

	logicalW, logicalH int
	backingW, backingH int
	scale              float64

	ops []string
}

func (r *recorder) SetLogicalSize(w, h int) { r.logicalW, r.logicalH = w, h }
func (r *recorder) SetBackingSize(w, h int) { r.backingW, r.backingH = w, h }
func (r *recorder) SetScale(s float64) { r.scale = s }

func (r *recorder) Draw(fn func(Canvas)) bool {
	if r.unavailable {
		return false
	}
	fn(r)
	return true
}

func (r *recorder) SetFillColor(c color.RGBA) { r.log("fill-color %02x%02x%02x", c.R, c.G, c.B) }
func (r *recorder) SetStrokeColor(c color.RGBA) { r.log("stroke-color %02x%02x%02x", c.R, c.G, c.B) }
func (r *recorder) FillRect(x, y, w, h float64) { r.log("fill %g %g %g %g", x, y, w, h) }
func (r *recorder) StrokeRect(x, y, w, h float64) {
	r.log("stroke %g %g %g %g", x, y, w, h)
}
func (r *recorder) SetGlow(c color.RGBA, blur float64) {
	r.log("glow %02x%02x%02x %g", c.R, c.G, c.B, blur)
}
func (r *recorder) ClearGlow() { r.log("glow none") }

func (r *recorder) log(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, op := range r.ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}
