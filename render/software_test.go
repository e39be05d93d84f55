package render

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/mdl/geom"
	"github.com/gogpu/mdl/matrix"
)

func newTestBackend(w, h int) *Software {
	return NewSoftware(Config{Width: w, Height: h, Background: color.RGBA{A: 255}})
}

func TestNewSoftwareDefaults(t *testing.T) {
	s := NewSoftware(Config{})
	if cfg := s.Config(); cfg.Width != 500 || cfg.Height != 500 {
		t.Errorf("Config() = %dx%d, want 500x500", cfg.Width, cfg.Height)
	}
}

func TestNewFrameCleared(t *testing.T) {
	s := newTestBackend(8, 8)
	f := s.NewFrame()
	if got := f.Canvas.GetPixel(3, 3); got != (color.RGBA{A: 255}) {
		t.Errorf("new frame pixel = %v, want background", got)
	}
}

func TestDrawPolygonsFillsFrontFace(t *testing.T) {
	s := newTestBackend(20, 20)
	f := s.NewFrame()

	var b geom.Buffer
	b.AddTriangle(matrix.Pt(2, 2, 0), matrix.Pt(17, 2, 0), matrix.Pt(2, 17, 0))
	s.DrawPolygons(f, Primitive{Points: b.Points, Lighting: DefaultLighting()})

	// Screen (4,4) is image (4, 15).
	if got := f.Canvas.GetPixel(4, 15); got == (color.RGBA{A: 255}) {
		t.Error("pixel inside the triangle was not filled")
	}
	if got := f.Canvas.GetPixel(16, 3); got != (color.RGBA{A: 255}) {
		t.Errorf("pixel outside the triangle = %v, want background", got)
	}
}

func TestDrawPolygonsCullsBackFace(t *testing.T) {
	s := newTestBackend(20, 20)
	f := s.NewFrame()

	// Clockwise as seen from +z.
	pts := []matrix.Point{matrix.Pt(2, 2, 0), matrix.Pt(2, 17, 0), matrix.Pt(17, 2, 0)}
	s.DrawPolygons(f, Primitive{Points: pts, Lighting: DefaultLighting()})

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if got := f.Canvas.GetPixel(x, y); got != (color.RGBA{A: 255}) {
				t.Fatalf("back face drew pixel (%d,%d) = %v", x, y, got)
			}
		}
	}
}

func TestDepthTestKeepsNearest(t *testing.T) {
	s := newTestBackend(20, 20)
	f := s.NewFrame()
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	s.DrawLines(f, Primitive{Points: []matrix.Point{matrix.Pt(0, 10, 5), matrix.Pt(19, 10, 5)}, Color: red})
	s.DrawLines(f, Primitive{Points: []matrix.Point{matrix.Pt(0, 10, 1), matrix.Pt(19, 10, 1)}, Color: blue})

	if got := f.Canvas.GetPixel(10, 9); got != red {
		t.Errorf("pixel after farther line = %v, want %v", got, red)
	}
}

func TestDrawLinesEndpoints(t *testing.T) {
	s := newTestBackend(10, 10)
	f := s.NewFrame()
	white := color.RGBA{255, 255, 255, 255}

	var b geom.Buffer
	b.AddEdge(1, 1, 0, 8, 5, 0)
	s.DrawLines(f, Primitive{Points: b.Points, Color: white})

	for _, p := range []image.Point{{1, 8}, {8, 4}} {
		if got := f.Canvas.GetPixel(p.X, p.Y); got != white {
			t.Errorf("endpoint %v = %v, want white", p, got)
		}
	}
}

func TestShowUsesHook(t *testing.T) {
	var shown image.Image
	s := NewSoftware(Config{Width: 4, Height: 4, Show: func(img image.Image) error {
		shown = img
		return nil
	}})
	if err := s.Show(s.NewFrame()); err != nil {
		t.Fatalf("Show() error: %v", err)
	}
	if shown == nil || shown.Bounds().Dx() != 4 {
		t.Errorf("Show hook received %v", shown)
	}

	// Without a hook Show is a no-op.
	if err := newTestBackend(4, 4).Show(s.NewFrame()); err != nil {
		t.Errorf("Show() without hook error: %v", err)
	}
}

func TestSaveCreatesDirectories(t *testing.T) {
	s := newTestBackend(4, 4)
	path := filepath.Join(t.TempDir(), "anim", "frame000.png")
	if err := s.Save(s.NewFrame(), path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	s := newTestBackend(4, 4)
	path := filepath.Join(t.TempDir(), "out.xyz")
	err := s.Save(s.NewFrame(), path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Save(.xyz) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("unsupported save left a file behind")
	}
}
