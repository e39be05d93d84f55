package mdl

import (
	"image/color"
	"testing"

	"github.com/gogpu/mdl/geom"
	"github.com/gogpu/mdl/render"
)

func TestDefaultRunOptions(t *testing.T) {
	o := defaultRunOptions()
	if o.backend != nil || o.backendName != "software" {
		t.Errorf("backend = %v, %q", o.backend, o.backendName)
	}
	if o.config.Width != 500 || o.config.Height != 500 {
		t.Errorf("canvas = %dx%d, want 500x500", o.config.Width, o.config.Height)
	}
	if o.outputDir != DefaultOutputDir || o.workers != 1 || o.step != geom.DefaultStep {
		t.Errorf("outputDir = %q, workers = %d, step = %d", o.outputDir, o.workers, o.step)
	}
	if o.lineColor != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("lineColor = %v, want white", o.lineColor)
	}
	if o.lighting != render.DefaultLighting() {
		t.Errorf("lighting = %+v", o.lighting)
	}
}

func TestRunOptions(t *testing.T) {
	b := &fakeBackend{}
	red := color.RGBA{R: 255, A: 255}
	o := defaultRunOptions()
	for _, opt := range []RunOption{
		WithBackend(b),
		WithBackendName("other", render.Config{Width: 10, Height: 20}),
		WithOutputDir("frames"),
		WithWorkers(4),
		WithLineColor(red),
		WithStep(8),
	} {
		opt(&o)
	}
	if o.backend != b || o.backendName != "other" || o.config.Height != 20 {
		t.Errorf("backend options not applied: %+v", o)
	}
	if o.outputDir != "frames" || o.workers != 4 || o.lineColor != red || o.step != 8 {
		t.Errorf("options not applied: %+v", o)
	}
}

func TestRunOptionsClamp(t *testing.T) {
	o := defaultRunOptions()
	WithWorkers(-3)(&o)
	WithStep(0)(&o)
	if o.workers != 1 {
		t.Errorf("WithWorkers(-3) workers = %d, want 1", o.workers)
	}
	if o.step != geom.DefaultStep {
		t.Errorf("WithStep(0) step = %d, want %d", o.step, geom.DefaultStep)
	}
}
