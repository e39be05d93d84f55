package mdl

import (
	"fmt"
	"math"
)

// argReader walks a command's arguments left to right.
type argReader struct {
	index int
	cmd   Command
	pos   int
}

func newArgReader(index int, cmd Command) *argReader {
	return &argReader{index: index, cmd: cmd}
}

func (r *argReader) errorf(format string, args ...any) error {
	return &ArgumentError{Index: r.index, Op: r.cmd.Op, Reason: fmt.Sprintf(format, args...)}
}

// optName consumes a name reference if one is next.
func (r *argReader) optName() string {
	if r.pos < len(r.cmd.Args) {
		if name, ok := r.cmd.Args[r.pos].NameRef(); ok {
			r.pos++
			return name
		}
	}
	return ""
}

func (r *argReader) name() (string, error) {
	if r.pos >= len(r.cmd.Args) {
		return "", r.errorf("missing argument %d, want a name", r.pos+1)
	}
	name, ok := r.cmd.Args[r.pos].NameRef()
	if !ok {
		return "", r.errorf("argument %d is %v, want a name", r.pos+1, r.cmd.Args[r.pos])
	}
	r.pos++
	return name, nil
}

func (r *argReader) numbers(dst []float64) error {
	for i := range dst {
		if r.pos >= len(r.cmd.Args) {
			return r.errorf("missing argument %d, want a number", r.pos+1)
		}
		v, ok := r.cmd.Args[r.pos].Number()
		if !ok {
			return r.errorf("argument %d is %v, want a number", r.pos+1, r.cmd.Args[r.pos])
		}
		dst[i] = v
		r.pos++
	}
	return nil
}

func (r *argReader) done() error {
	if r.pos != len(r.cmd.Args) {
		return r.errorf("%d arguments, want %d", len(r.cmd.Args), r.pos)
	}
	return nil
}

// shapeArgs are the arguments of box, sphere and torus:
// [constants] numbers... [coords].
type shapeArgs struct {
	constants string
	coords    string
	nums      []float64
}

func decodeShape(index int, cmd Command, n int) (shapeArgs, error) {
	r := newArgReader(index, cmd)
	a := shapeArgs{nums: make([]float64, n)}
	a.constants = r.optName()
	if err := r.numbers(a.nums); err != nil {
		return a, err
	}
	a.coords = r.optName()
	return a, r.done()
}

// lineArgs are the arguments of line:
// [constants] x0 y0 z0 [coords0] x1 y1 z1 [coords1].
type lineArgs struct {
	constants string
	coords0   string
	coords1   string
	p         [6]float64
}

func decodeLine(index int, cmd Command) (lineArgs, error) {
	r := newArgReader(index, cmd)
	var a lineArgs
	a.constants = r.optName()
	if err := r.numbers(a.p[:3]); err != nil {
		return a, err
	}
	a.coords0 = r.optName()
	if err := r.numbers(a.p[3:]); err != nil {
		return a, err
	}
	a.coords1 = r.optName()
	return a, r.done()
}

func decodeNumbers(index int, cmd Command, n int) ([]float64, error) {
	r := newArgReader(index, cmd)
	nums := make([]float64, n)
	if err := r.numbers(nums); err != nil {
		return nil, err
	}
	return nums, r.done()
}

func decodeName(index int, cmd Command) (string, error) {
	r := newArgReader(index, cmd)
	name, err := r.name()
	if err != nil {
		return "", err
	}
	return name, r.done()
}

// decodeRotate returns the axis name and the angle in degrees.
func decodeRotate(index int, cmd Command) (string, float64, error) {
	r := newArgReader(index, cmd)
	axis, err := r.name()
	if err != nil {
		return "", 0, err
	}
	var deg [1]float64
	if err := r.numbers(deg[:]); err != nil {
		return "", 0, err
	}
	return axis, deg[0], r.done()
}

// decodeFrames returns the frame count of a frames command.
func decodeFrames(index int, cmd Command) (int, error) {
	nums, err := decodeNumbers(index, cmd, 1)
	if err != nil {
		return 0, err
	}
	n := nums[0]
	if n < 1 || n != math.Trunc(n) || n > MaxFrames {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidFrameCount, n)
	}
	return int(n), nil
}

// varyArgs are the arguments of vary: start_frame end_frame start_value
// end_value, with the knob on the command.
type varyArgs struct {
	knob                 string
	startFrame, endFrame float64
	startValue, endValue float64
}

func decodeVary(index int, cmd Command) (varyArgs, error) {
	nums, err := decodeNumbers(index, cmd, 4)
	if err != nil {
		return varyArgs{}, err
	}
	if cmd.Knob == "" {
		return varyArgs{}, &ArgumentError{Index: index, Op: cmd.Op, Reason: "missing knob"}
	}
	return varyArgs{
		knob:       cmd.Knob,
		startFrame: nums[0],
		endFrame:   nums[1],
		startValue: nums[2],
		endValue:   nums[3],
	}, nil
}
