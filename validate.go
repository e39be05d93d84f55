package mdl

// Validate checks a command list before anything is rendered: every
// command's arguments must match its operator, and pop must never remove
// the last transform. Push and pop are unconditional, so stack depth is
// known without rendering.
//
// Validate returns an *ArgumentError, or a *CommandError wrapping
// ErrStackUnderflow or ErrInvalidFrameCount.
func Validate(cmds []Command) error {
	depth := 1
	for i, cmd := range cmds {
		var err error
		switch cmd.Op {
		case OpBox, OpSphere, OpTorus:
			_, err = decodeShape(i, cmd, shapeArity[cmd.Op])
		case OpLine:
			_, err = decodeLine(i, cmd)
		case OpMove, OpScale:
			_, err = decodeNumbers(i, cmd, 3)
		case OpRotate:
			_, _, err = decodeRotate(i, cmd)
		case OpPush:
			depth++
		case OpPop:
			if depth == 1 {
				err = ErrStackUnderflow
			}
			depth--
		case OpSave, OpBasename:
			_, err = decodeName(i, cmd)
		case OpFrames:
			_, err = decodeFrames(i, cmd)
		case OpVary:
			_, err = decodeVary(i, cmd)
		}
		if err != nil {
			return wrapCommandError(i, cmd, err)
		}
	}
	return nil
}

// wrapCommandError attaches the command position unless err already
// carries it.
func wrapCommandError(i int, cmd Command, err error) error {
	switch err.(type) {
	case *ArgumentError, *CommandError:
		return err
	}
	return &CommandError{Index: i, Op: cmd.Op, Err: err}
}
