package mdl

import (
	"image/color"
	"slices"
	"sync"

	"github.com/gogpu/mdl/matrix"
	"github.com/gogpu/mdl/render"
)

// fakeBackend records every call instead of rasterizing.
//
// DrawPolygons also marks pixel (0,0) of the frame with the x coordinate of
// the first point, so shown and saved frames can be told apart.
type fakeBackend struct {
	mu       sync.Mutex
	frames   int
	polygons []render.Primitive
	lines    []render.Primitive
	shows    int
	shownX   []uint8
	saves    []string
	savedX   map[string]uint8
}

func (b *fakeBackend) NewFrame() *render.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frames++
	return &render.Frame{Canvas: render.NewCanvas(1, 1), Depth: render.NewDepthBuffer(1, 1)}
}

func (b *fakeBackend) DrawPolygons(f *render.Frame, p render.Primitive) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p.Points = slices.Clone(p.Points)
	b.polygons = append(b.polygons, p)
	if len(p.Points) > 0 {
		f.Canvas.SetPixel(0, 0, color.RGBA{R: uint8(p.Points[0][0]), A: 255})
	}
}

func (b *fakeBackend) DrawLines(_ *render.Frame, p render.Primitive) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p.Points = slices.Clone(p.Points)
	b.lines = append(b.lines, p)
}

func (b *fakeBackend) Show(f *render.Frame) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shows++
	b.shownX = append(b.shownX, f.Canvas.GetPixel(0, 0).R)
	return nil
}

func (b *fakeBackend) Save(f *render.Frame, path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.saves = append(b.saves, path)
	if b.savedX == nil {
		b.savedX = make(map[string]uint8)
	}
	b.savedX[path] = f.Canvas.GetPixel(0, 0).R
	return nil
}

// fakeAssembler records the frames it was asked to assemble.
type fakeAssembler struct {
	calls    int
	basename string
	frames   []string
}

func (a *fakeAssembler) Assemble(basename string, frames []string) (string, error) {
	a.calls++
	a.basename = basename
	a.frames = slices.Clone(frames)
	return basename + ".gif", nil
}

func nums(v ...float64) []Arg {
	args := make([]Arg, len(v))
	for i, x := range v {
		args[i] = Num(x)
	}
	return args
}

func cmd(op Op, args ...Arg) Command {
	return Command{Op: op, Args: args}
}

func knobCmd(op Op, knob string, v ...float64) Command {
	return Command{Op: op, Args: nums(v...), Knob: knob}
}

// firstPoint returns the first point of a recorded primitive.
func firstPoint(p render.Primitive) matrix.Point {
	return p.Points[0]
}
