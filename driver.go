package mdl

import (
	"context"
	"fmt"

	"github.com/gogpu/mdl/anim"
	"github.com/gogpu/mdl/internal/parallel"
	"github.com/gogpu/mdl/render"
)

// Script is a command list with its symbol table, as produced by a scene
// parser.
type Script struct {
	Commands []Command    `json:"commands"`
	Symbols  *SymbolTable `json:"symbols,omitempty"`
}

// Assembler turns the persisted frames of an animation, given in frame
// order, into one animation file and returns its path.
type Assembler interface {
	Assemble(basename string, frames []string) (string, error)
}

// Result describes what a Run produced.
type Result struct {
	Plan Plan

	// Files lists the persisted animation frames in frame order. It is empty
	// for a still image.
	Files []string

	// Animation is the path of the assembled animation, if any.
	Animation string
}

// FrameName returns the file an animation frame is persisted to:
// dir + "/" + basename + the frame index zero padded to three digits +
// ".png".
func FrameName(dir, basename string, frame int) string {
	if dir == "" {
		return fmt.Sprintf("%s%03d.png", basename, frame)
	}
	return fmt.Sprintf("%s/%s%03d.png", dir, basename, frame)
}

// Run renders a script: once for a still image, or once per frame for an
// animation, which is then assembled.
//
// All validation (FirstPass, SecondPass, Validate) happens before the first
// frame renders, so a fatal error never leaves partial output. Run checks
// ctx before each frame; a canceled run is not assembled.
//
// s.Symbols is the state carried from frame to frame: before frame i runs,
// the knob values scheduled for frame i are written into it, and a knob
// keeps its last value on frames outside all of its vary windows. After Run
// returns, s.Symbols holds the values of the last frame.
func Run(ctx context.Context, s *Script, opts ...RunOption) (*Result, error) {
	o := defaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if s.Symbols == nil {
		s.Symbols = NewSymbolTable()
	}

	plan, err := FirstPass(s.Commands)
	if err != nil {
		return nil, err
	}
	sched, err := SecondPass(s.Commands, plan.Frames)
	if err != nil {
		return nil, err
	}
	if err := Validate(s.Commands); err != nil {
		return nil, err
	}

	backend := o.backend
	if backend == nil {
		cfg := o.config
		if cfg.Logger == nil {
			cfg.Logger = Logger()
		}
		backend, err = render.NewBackend(o.backendName, cfg)
		if err != nil {
			return nil, err
		}
	}

	r := &runner{
		script:  s,
		plan:    plan,
		sched:   sched,
		opts:    &o,
		backend: backend,
	}
	if plan.Animated() {
		r.files = make([]string, plan.Frames)
	}

	if o.workers > 1 && plan.Animated() {
		err = r.renderParallel(ctx)
	} else {
		err = r.renderSequential(ctx)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{Plan: plan, Files: r.files}
	if !plan.Animated() {
		return res, nil
	}

	asm := o.assembler
	if asm == nil {
		asm = anim.New(anim.WithLogger(Logger()))
	}
	res.Animation, err = asm.Assemble(plan.Basename, r.files)
	if err != nil {
		return nil, fmt.Errorf("mdl: assemble %s: %w", plan.Basename, err)
	}
	return res, nil
}

// runner holds the state shared by every frame of a Run.
type runner struct {
	script  *Script
	plan    Plan
	sched   Schedule
	opts    *runOptions
	backend render.Backend
	files   []string // written by index, one slot per frame
}

// applyKnobs writes the knob values scheduled for one frame into t.
func applyKnobs(t *SymbolTable, values map[string]float64) {
	for knob, v := range values {
		t.Set(knob, v)
	}
}

// renderSequential renders the frames in order on the calling goroutine,
// every frame reading the caller's symbol table.
func (r *runner) renderSequential(ctx context.Context) error {
	for i := range r.plan.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		applyKnobs(r.script.Symbols, r.sched[i])
		if err := r.renderFrame(newFrameState(i, r.opts, r.backend, r.script.Symbols)); err != nil {
			return err
		}
	}
	return nil
}

// renderParallel renders the frames on a worker pool.
//
// Frame i reads a snapshot of the symbol table with the schedules of frames
// 0..i applied in order, so knob values match a sequential run. Only the
// last frame executes save, since every frame saves to the same names.
// Shown canvases are copied and handed to the back-end in frame order once
// all frames have rendered.
func (r *runner) renderParallel(ctx context.Context) error {
	n := r.plan.Frames
	snapshots := make([]*SymbolTable, n)
	running := r.script.Symbols.Clone()
	for i := range n {
		applyKnobs(running, r.sched[i])
		snapshots[i] = running.Clone()
	}

	shown := make([][]*render.Frame, n)
	pool := parallel.NewWorkerPool(min(r.opts.workers, n))
	defer pool.Close()
	err := pool.Map(ctx, n, func(_ context.Context, i int) error {
		st := newFrameState(i, r.opts, r.backend, snapshots[i])
		st.deferShow = true
		st.skipSave = i != n-1
		if err := r.renderFrame(st); err != nil {
			return err
		}
		shown[i] = st.shown
		return nil
	})
	if err != nil {
		return err
	}

	for i, frames := range shown {
		for _, f := range frames {
			if err := r.backend.Show(f); err != nil {
				return fmt.Errorf("mdl: frame %d: %w", i, err)
			}
		}
	}
	r.script.Symbols.entries = running.entries
	return nil
}

// renderFrame runs the command list on st and persists the frame if the
// run is animated.
func (r *runner) renderFrame(st *frameState) error {
	for ci, cmd := range r.script.Commands {
		if err := st.exec(ci, cmd); err != nil {
			return wrapCommandError(ci, cmd, err)
		}
	}

	if !r.plan.Animated() {
		return nil
	}
	i := st.index
	name := FrameName(r.opts.outputDir, r.plan.Basename, i)
	if err := r.backend.Save(st.frame, name); err != nil {
		return fmt.Errorf("mdl: frame %d: %w", i, err)
	}
	Logger().Info("mdl: frame saved", "frame", i, "file", name)
	r.files[i] = name
	return nil
}
