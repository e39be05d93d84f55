package render

import (
	"image/color"
	"log/slog"
	"math"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/mdl/geom"
	"github.com/gogpu/mdl/matrix"
)

func init() {
	Register("software", func(cfg Config) Backend {
		return NewSoftware(cfg)
	})
}

// Software is a CPU back-end: flat-shaded triangles with back-face culling
// and a depth buffer, plus depth-tested lines.
type Software struct {
	cfg Config
	log *slog.Logger
}

// NewSoftware creates a software back-end. Zero dimensions fall back to
// DefaultConfig.
func NewSoftware(cfg Config) *Software {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Software{cfg: cfg, log: log}
}

// Config returns the effective configuration.
func (s *Software) Config() Config {
	return s.cfg
}

// NewFrame implements Backend.
func (s *Software) NewFrame() *Frame {
	c := NewCanvas(s.cfg.Width, s.cfg.Height)
	c.Clear(s.cfg.Background)
	return &Frame{
		Canvas: c,
		Depth:  NewDepthBuffer(s.cfg.Width, s.cfg.Height),
	}
}

// DrawPolygons implements Backend. Triangles whose normal points away from
// the view vector are culled.
func (s *Software) DrawPolygons(f *Frame, p Primitive) {
	drawn := 0
	for i := 0; i+2 < len(p.Points); i += 3 {
		p0, p1, p2 := p.Points[i], p.Points[i+1], p.Points[i+2]
		n := f64.Vec3(geom.Normal(p0, p1, p2))
		if dot(n, p.Lighting.View) <= 0 {
			continue
		}
		s.fillTriangle(f, p0, p1, p2, p.Lighting.Shade(n))
		drawn++
	}
	s.log.Debug("render: polygons", "triangles", len(p.Points)/3, "drawn", drawn,
		"constants", p.Constants, "coords", p.Coords)
}

// DrawLines implements Backend.
func (s *Software) DrawLines(f *Frame, p Primitive) {
	for i := 0; i+1 < len(p.Points); i += 2 {
		s.drawLine(f, p.Points[i], p.Points[i+1], p.Color)
	}
	s.log.Debug("render: lines", "edges", len(p.Points)/2,
		"constants", p.Constants, "coords", p.Coords)
}

// Show implements Backend.
func (s *Software) Show(f *Frame) error {
	if s.cfg.Show == nil {
		s.log.Info("render: display requested, no viewer attached")
		return nil
	}
	return s.cfg.Show(f.Canvas.ToImage())
}

// Save implements Backend.
func (s *Software) Save(f *Frame, path string) error {
	return SaveImage(f.Canvas, path)
}

// plot writes one screen-space pixel, flipping y into image coordinates.
func (s *Software) plot(f *Frame, x, y int, z float64, c color.RGBA) {
	iy := s.cfg.Height - 1 - y
	if f.Depth.Test(x, iy, z) {
		f.Canvas.SetPixel(x, iy, c)
	}
}

// span draws the horizontal run on row y from (x0, z0) to (x1, z1).
func (s *Software) span(f *Frame, y int, x0, z0, x1, z1 float64, c color.RGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
		z0, z1 = z1, z0
	}
	xs, xe := int(math.Round(x0)), int(math.Round(x1))
	if xs == xe {
		s.plot(f, xs, y, math.Max(z0, z1), c)
		return
	}
	dz := (z1 - z0) / float64(xe-xs)
	z := z0
	for x := xs; x <= xe; x++ {
		s.plot(f, x, y, z, c)
		z += dz
	}
}

// fillTriangle scan-converts a triangle row by row between its long edge
// (bottom to top) and its two short edges.
func (s *Software) fillTriangle(f *Frame, p0, p1, p2 matrix.Point, c color.RGBA) {
	if p0[1] > p1[1] {
		p0, p1 = p1, p0
	}
	if p1[1] > p2[1] {
		p1, p2 = p2, p1
	}
	if p0[1] > p1[1] {
		p0, p1 = p1, p0
	}
	bot, mid, top := p0, p1, p2

	yb := int(math.Round(bot[1]))
	ym := int(math.Round(mid[1]))
	yt := int(math.Round(top[1]))

	if yb == yt {
		lo, hi := bot, bot
		for _, p := range []matrix.Point{mid, top} {
			if p[0] < lo[0] {
				lo = p
			}
			if p[0] > hi[0] {
				hi = p
			}
		}
		s.span(f, yb, lo[0], lo[2], hi[0], hi[2], c)
		return
	}

	lerp := func(a, b matrix.Point, t float64) (float64, float64) {
		return a[0] + t*(b[0]-a[0]), a[2] + t*(b[2]-a[2])
	}

	for y := yb; y <= yt; y++ {
		x0, z0 := lerp(bot, top, float64(y-yb)/float64(yt-yb))
		var x1, z1 float64
		switch {
		case y < ym:
			x1, z1 = lerp(bot, mid, float64(y-yb)/float64(ym-yb))
		case yt == ym:
			x1, z1 = mid[0], mid[2]
		default:
			x1, z1 = lerp(mid, top, float64(y-ym)/float64(yt-ym))
		}
		s.span(f, y, x0, z0, x1, z1, c)
	}
}

// drawLine rasterizes a segment with Bresenham's algorithm, interpolating
// depth along the major axis.
func (s *Software) drawLine(f *Frame, p0, p1 matrix.Point, c color.RGBA) {
	x0, y0 := int(math.Round(p0[0])), int(math.Round(p0[1]))
	x1, y1 := int(math.Round(p1[0])), int(math.Round(p1[1]))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	steps := max(dx, -dy)
	z, dz := p0[2], 0.0
	if steps > 0 {
		dz = (p1[2] - p0[2]) / float64(steps)
	}

	e := dx + dy
	for {
		s.plot(f, x0, y0, z, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
		z += dz
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
