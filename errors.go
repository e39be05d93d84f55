package mdl

import (
	"errors"
	"fmt"
)

// Sentinel errors for the mdl package.
var (
	// ErrVaryWithoutFrames is returned when a script varies a knob but never
	// declares a frame count.
	ErrVaryWithoutFrames = errors.New("mdl: vary found without frames")

	// ErrInvalidFrameCount is returned when frames is not an integer in
	// [1, MaxFrames].
	ErrInvalidFrameCount = errors.New("mdl: frame count must be an integer between 1 and MaxFrames")

	// ErrInvalidVaryRange is wrapped by VaryRangeError.
	ErrInvalidVaryRange = errors.New("mdl: incorrect range for vary")

	// ErrStackUnderflow is returned when pop would remove the last
	// coordinate frame.
	ErrStackUnderflow = errors.New("mdl: pop would empty the transform stack")

	// ErrParse is returned when a script cannot be decoded.
	ErrParse = errors.New("mdl: parsing failed")
)

// VaryRangeError is returned when a vary window falls outside the
// animation or is empty.
type VaryRangeError struct {
	Knob       string
	Start, End float64
	Frames     int
}

func (e *VaryRangeError) Error() string {
	return fmt.Sprintf("mdl: incorrect range for vary %q: frames %g..%g with %d frames",
		e.Knob, e.Start, e.End, e.Frames)
}

// Unwrap returns ErrInvalidVaryRange.
func (e *VaryRangeError) Unwrap() error {
	return ErrInvalidVaryRange
}

// ArgumentError is returned when a command's arguments do not match its
// operator.
type ArgumentError struct {
	Index  int // position of the command in the command list
	Op     Op
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("mdl: command %d (%s): %s", e.Index, e.Op, e.Reason)
}

// CommandError attaches the position of the failing command to an error.
type CommandError struct {
	Index int
	Op    Op
	Err   error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("mdl: command %d (%s): %v", e.Index, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}
