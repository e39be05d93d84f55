package mdl

import "github.com/gogpu/mdl/matrix"

// Stack is the transform stack: nested coordinate frames whose top is the
// current transform. A Stack always holds at least one frame.
//
// The zero value is not usable; create stacks with NewStack.
type Stack struct {
	frames []matrix.Mat4
}

// NewStack returns a stack holding a single identity frame.
func NewStack() *Stack {
	return &Stack{frames: []matrix.Mat4{matrix.Identity()}}
}

// Push duplicates the current frame. Composition on the new top does not
// affect the frame below.
func (s *Stack) Push() {
	s.frames = append(s.frames, s.Top())
}

// Pop removes the current frame. It returns ErrStackUnderflow and leaves
// the stack unchanged if only one frame remains.
func (s *Stack) Pop() error {
	if len(s.frames) <= 1 {
		return ErrStackUnderflow
	}
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

// Compose post-multiplies the current frame by m in place (top = top * m),
// so m acts in the current frame's local coordinates.
func (s *Stack) Compose(m matrix.Mat4) {
	top := len(s.frames) - 1
	s.frames[top] = s.frames[top].Multiply(m)
}

// Top returns the current transform.
func (s *Stack) Top() matrix.Mat4 {
	return s.frames[len(s.frames)-1]
}

// Depth returns the number of frames on the stack.
func (s *Stack) Depth() int {
	return len(s.frames)
}
