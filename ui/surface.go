package ui

import (
	"context"
	"image/color"
	"time"
)

// Surface is a raster drawing target. Sizes set here persist until changed;
// drawing happens inside Draw in logical pixel coordinates, with the scale
// transform applied by the surface.
type Surface interface {
	// SetLogicalSize sets the presentation size in layout pixels.
	SetLogicalSize(width, height int)
	// SetBackingSize sets the buffer resolution in device pixels.
	SetBackingSize(width, height int)
	// SetScale sets the transform applied to all subsequent drawing.
	SetScale(scale float64)
	// Draw runs fn against the surface's canvas. It returns false without
	// calling fn when the surface cannot be drawn on right now.
	Draw(fn func(Canvas)) bool
}

// Canvas holds the immediate-mode drawing primitives.
type Canvas interface {
	SetFillColor(c color.RGBA)
	SetStrokeColor(c color.RGBA)
	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	// SetGlow makes subsequent fills cast a glow of the given colour and
	// blur radius, until ClearGlow.
	SetGlow(c color.RGBA, blur float64)
	ClearGlow()
}

// Handler receives frames and input from a Host. All calls arrive on the
// host's loop goroutine, one at a time.
type Handler interface {
	// Frame is called once per display frame with the time since the host
	// started delivering frames.
	Frame(ts time.Duration)
	// Key reports a key-down by name and returns true if it was consumed.
	Key(name string) bool
	TouchStart(x, y float64)
	TouchEnd(x, y float64)
	// Resize is called when the viewport changes size or density.
	Resize()
}

// Host is a platform that owns a Surface and drives a Handler.
type Host interface {
	Surface() Surface
	// Density is the device pixel ratio of the current display.
	Density() float64
	// Run delivers frames and input to h until ctx is done or the user
	// quits. No calls reach h after Run returns.
	Run(ctx context.Context, h Handler) error
	Close() error
}
