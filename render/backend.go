// Package render defines the rendering back-end used by the frame driver and
// provides the built-in "software" back-end.
//
// A back-end owns the raster side of a frame: it creates the canvas and depth
// buffer for each frame, rasterizes transformed triangles and edges into
// them, and shows or persists finished canvases. Geometry arrives already
// transformed into screen space (pixel units, origin at the bottom-left,
// y pointing up, z pointing towards the viewer).
//
// # Backend Registration
//
// Back-ends are registered using the database/sql driver pattern:
//
//	func init() {
//	    render.Register("myformat", func(cfg render.Config) render.Backend {
//	        return NewMyBackend(cfg)
//	    })
//	}
//
// The built-in "software" back-end is always registered.
//
//	b, err := render.NewBackend("software", render.DefaultConfig())
//
// # Thread Safety
//
// Back-ends must allow concurrent use on distinct frames. A [Frame] itself
// is not safe for concurrent use.
package render

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/gogpu/mdl/matrix"
)

// Backend is the interface that all rendering back-ends must implement.
type Backend interface {
	// NewFrame returns a cleared canvas and depth buffer.
	NewFrame() *Frame

	// DrawPolygons rasterizes p.Points as triangles, three points per
	// triangle, using p.Lighting.
	DrawPolygons(f *Frame, p Primitive)

	// DrawLines rasterizes p.Points as edges, two points per edge, in
	// p.Color.
	DrawLines(f *Frame, p Primitive)

	// Show presents the frame's canvas. It has no effect on the frame.
	Show(f *Frame) error

	// Save persists the frame's canvas to path. The image format is chosen
	// from the file extension.
	Save(f *Frame, path string) error
}

// Frame is the per-frame raster state: a canvas and its depth buffer.
type Frame struct {
	Canvas *Canvas
	Depth  *DepthBuffer
}

// Primitive is one batch of screen-space geometry submitted to a back-end.
type Primitive struct {
	// Points holds triangles (polygons) or edges (lines).
	Points []matrix.Point

	// Lighting is used for polygons.
	Lighting Lighting

	// Color is used for lines.
	Color color.RGBA

	// Constants and Coords are the optional material and coordinate-system
	// references attached to the drawing command, in command order. They
	// are passed through unchanged; the software back-end does not
	// interpret them.
	Constants string
	Coords    []string
}

// Config configures a back-end created through the registry.
type Config struct {
	// Width and Height are the canvas dimensions in pixels.
	Width, Height int

	// Background is the colour a new canvas is cleared to.
	Background color.RGBA

	// Show receives the canvas image on Show. When nil, Show only logs.
	Show func(image.Image) error

	// Logger receives back-end diagnostics. When nil, logging is disabled.
	Logger *slog.Logger
}

// DefaultConfig returns a 500x500 configuration with a black background.
func DefaultConfig() Config {
	return Config{
		Width:      500,
		Height:     500,
		Background: color.RGBA{A: 0xff},
	}
}
