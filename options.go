package mdl

import (
	"image/color"

	"github.com/gogpu/mdl/geom"
	"github.com/gogpu/mdl/render"
)

// DefaultOutputDir is the directory animation frames are written to.
const DefaultOutputDir = "anim"

// RunOption configures a Run.
//
// Example:
//
//	// Default: sequential frames on the software back-end
//	res, err := mdl.Run(ctx, script)
//
//	// Eight frames at a time, frames written under out/
//	res, err := mdl.Run(ctx, script, mdl.WithWorkers(8), mdl.WithOutputDir("out"))
type RunOption func(*runOptions)

// runOptions holds optional configuration for Run.
type runOptions struct {
	backend     render.Backend
	backendName string
	config      render.Config
	assembler   Assembler
	outputDir   string
	workers     int
	lighting    render.Lighting
	lineColor   color.RGBA
	step        int
}

// defaultRunOptions returns the default run options.
func defaultRunOptions() runOptions {
	return runOptions{
		backendName: "software",
		config:      render.DefaultConfig(),
		outputDir:   DefaultOutputDir,
		workers:     1,
		lighting:    render.DefaultLighting(),
		lineColor:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		step:        geom.DefaultStep,
	}
}

// WithBackend sets the rendering back-end. It takes precedence over
// WithBackendName.
func WithBackend(b render.Backend) RunOption {
	return func(o *runOptions) {
		o.backend = b
	}
}

// WithBackendName selects a registered back-end and its configuration.
// The configuration's Logger defaults to Logger().
func WithBackendName(name string, cfg render.Config) RunOption {
	return func(o *runOptions) {
		o.backendName = name
		o.config = cfg
	}
}

// WithAssembler sets the animation assembler. By default frames are
// assembled into "<basename>.gif" by anim.Assembler.
func WithAssembler(a Assembler) RunOption {
	return func(o *runOptions) {
		o.assembler = a
	}
}

// WithOutputDir sets the directory animation frames are written to.
func WithOutputDir(dir string) RunOption {
	return func(o *runOptions) {
		o.outputDir = dir
	}
}

// WithWorkers renders up to n frames of an animation concurrently. n <= 1
// renders frames one after another; this is the default.
//
// Concurrent runs produce the same output as sequential ones: knob values
// follow frame order, save commands run on the last frame only (whose
// files a sequential run leaves behind), and display hands canvases to the
// back-end in frame order after all frames have rendered.
func WithWorkers(n int) RunOption {
	return func(o *runOptions) {
		o.workers = max(n, 1)
	}
}

// WithLighting sets the lighting constants polygons are rendered with.
func WithLighting(l render.Lighting) RunOption {
	return func(o *runOptions) {
		o.lighting = l
	}
}

// WithLineColor sets the color lines are drawn in.
func WithLineColor(c color.RGBA) RunOption {
	return func(o *runOptions) {
		o.lineColor = c
	}
}

// WithStep sets the tessellation step of spheres and tori.
func WithStep(step int) RunOption {
	return func(o *runOptions) {
		if step > 0 {
			o.step = step
		}
	}
}
