// Package viewer presents shown canvases in a desktop window.
//
// Show only records a copy of each canvas, so it may be called from any
// goroutine while frames render. Run opens the window afterwards; the arrow
// keys step through the recorded canvases and Escape closes the window.
package viewer

import (
	"image"
	"image/draw"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Viewer collects canvases for display.
type Viewer struct {
	mu     sync.Mutex
	images []*image.RGBA
}

// New creates an empty viewer.
func New() *Viewer {
	return &Viewer{}
}

// Show records a copy of img. Its signature matches render.Config.Show.
func (v *Viewer) Show(img image.Image) error {
	b := img.Bounds()
	cp := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(cp, cp.Bounds(), img, b.Min, draw.Src)

	v.mu.Lock()
	v.images = append(v.images, cp)
	v.mu.Unlock()
	return nil
}

// Len returns the number of recorded canvases.
func (v *Viewer) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.images)
}

// Run opens a window showing the recorded canvases and blocks until it is
// closed. It does nothing when no canvas was recorded.
func (v *Viewer) Run(title string) error {
	v.mu.Lock()
	images := append([]*image.RGBA(nil), v.images...)
	v.mu.Unlock()
	if len(images) == 0 {
		return nil
	}

	b := images[0].Bounds()
	g := &game{images: images, w: b.Dx(), h: b.Dy()}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.w, g.h)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type game struct {
	images []*image.RGBA
	cur    int
	w, h   int
	img    *ebiten.Image
	shown  int
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.cur = (g.cur + 1) % len(g.images)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.cur = (g.cur + len(g.images) - 1) % len(g.images)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil || g.shown != g.cur {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImageFromImage(g.images[g.cur])
		g.shown = g.cur
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
