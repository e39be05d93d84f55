package mdl

import (
	"math"

	"github.com/gogpu/mdl/geom"
	"github.com/gogpu/mdl/matrix"
	"github.com/gogpu/mdl/render"
)

// shapeArity is the number of numeric arguments of each solid.
var shapeArity = map[Op]int{
	OpBox:    6,
	OpSphere: 4,
	OpTorus:  5,
}

// frameState is everything one frame's commands act on. It is owned by a
// single goroutine for the duration of the frame.
type frameState struct {
	index   int
	opts    *runOptions
	backend render.Backend
	frame   *render.Frame
	stack   *Stack
	symbols *SymbolTable
	buf     geom.Buffer

	// deferShow makes display record a copy of the canvas in shown instead
	// of calling the back-end. skipSave makes save a no-op.
	deferShow bool
	shown     []*render.Frame
	skipSave  bool
}

func newFrameState(index int, opts *runOptions, backend render.Backend, symbols *SymbolTable) *frameState {
	return &frameState{
		index:   index,
		opts:    opts,
		backend: backend,
		frame:   backend.NewFrame(),
		stack:   NewStack(),
		symbols: symbols,
	}
}

// exec interprets the command at position i of the command list.
func (s *frameState) exec(i int, cmd Command) error {
	Logger().Debug("mdl: exec", "frame", s.index, "command", i, "op", cmd.Op)

	switch cmd.Op {
	case OpBox, OpSphere, OpTorus:
		a, err := decodeShape(i, cmd, shapeArity[cmd.Op])
		if err != nil {
			return err
		}
		n := a.nums
		switch cmd.Op {
		case OpBox:
			s.buf.AddBox(n[0], n[1], n[2], n[3], n[4], n[5])
		case OpSphere:
			s.buf.AddSphere(n[0], n[1], n[2], n[3], s.opts.step)
		case OpTorus:
			s.buf.AddTorus(n[0], n[1], n[2], n[3], n[4], s.opts.step)
		}
		s.flushPolygons(a.constants, refs(a.coords))

	case OpLine:
		a, err := decodeLine(i, cmd)
		if err != nil {
			return err
		}
		p := a.p
		s.buf.AddEdge(p[0], p[1], p[2], p[3], p[4], p[5])
		s.flushLines(a.constants, refs(a.coords0, a.coords1))

	case OpMove:
		v, err := decodeNumbers(i, cmd, 3)
		if err != nil {
			return err
		}
		k := s.knob(cmd)
		s.stack.Compose(matrix.Translate(v[0]*k, v[1]*k, v[2]*k))

	case OpScale:
		v, err := decodeNumbers(i, cmd, 3)
		if err != nil {
			return err
		}
		k := s.knob(cmd)
		s.stack.Compose(matrix.Scale(v[0]*k, v[1]*k, v[2]*k))

	case OpRotate:
		axis, deg, err := decodeRotate(i, cmd)
		if err != nil {
			return err
		}
		s.stack.Compose(rotation(axis, deg*math.Pi/180*s.knob(cmd)))

	case OpPush:
		s.stack.Push()

	case OpPop:
		return s.stack.Pop()

	case OpDisplay:
		if s.deferShow {
			s.shown = append(s.shown, &render.Frame{Canvas: s.frame.Canvas.Clone()})
			return nil
		}
		return s.backend.Show(s.frame)

	case OpSave:
		name, err := decodeName(i, cmd)
		if err != nil {
			return err
		}
		if s.skipSave {
			Logger().Debug("mdl: save left to the last frame", "frame", s.index, "file", name)
			return nil
		}
		return s.backend.Save(s.frame, name)

	case OpFrames, OpBasename, OpVary:
		// consumed by FirstPass and SecondPass

	default:
		Logger().Debug("mdl: ignoring unknown command", "command", i, "op", cmd.Op)
	}
	return nil
}

// knob returns the multiplier of cmd: the current value of its knob, or 1.
func (s *frameState) knob(cmd Command) float64 {
	if cmd.Knob == "" {
		return 1
	}
	return s.symbols.Multiplier(cmd.Knob)
}

// flushPolygons transforms the scratch buffer by the current transform,
// submits it as triangles and clears it.
func (s *frameState) flushPolygons(constants string, coords []string) {
	s.buf.Transform(s.stack.Top())
	s.backend.DrawPolygons(s.frame, render.Primitive{
		Points:    s.buf.Points,
		Lighting:  s.opts.lighting,
		Constants: constants,
		Coords:    coords,
	})
	s.buf.Reset()
}

// flushLines transforms the scratch buffer by the current transform,
// submits it as edges and clears it.
func (s *frameState) flushLines(constants string, coords []string) {
	s.buf.Transform(s.stack.Top())
	s.backend.DrawLines(s.frame, render.Primitive{
		Points:    s.buf.Points,
		Color:     s.opts.lineColor,
		Constants: constants,
		Coords:    coords,
	})
	s.buf.Reset()
}

// rotation returns the rotation about axis "x", "y", or otherwise z.
func rotation(axis string, theta float64) matrix.Mat4 {
	switch axis {
	case "x":
		return matrix.RotateX(theta)
	case "y":
		return matrix.RotateY(theta)
	default:
		return matrix.RotateZ(theta)
	}
}

// refs drops empty references.
func refs(names ...string) []string {
	var out []string
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
