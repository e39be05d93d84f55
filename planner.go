package mdl

// DefaultBasename is the base name used when frames is declared without
// basename.
const DefaultBasename = "base"

// MaxFrames is the largest frame count a script may declare. The schedule
// holds one entry per frame, so the bound caps what a script can make Run
// allocate before the first frame.
const MaxFrames = 100_000

// Plan describes what a command list renders: a single still image or an
// animation of Frames frames whose images are named from Basename.
type Plan struct {
	Frames   int
	Basename string

	// DefaultName is true when frames was declared without basename and
	// Basename holds DefaultBasename.
	DefaultName bool
}

// Animated reports whether the plan renders more than one frame.
func (p Plan) Animated() bool {
	return p.Frames > 1
}

// FirstPass scans the command list for animation commands and returns the
// frame count and base name. The frame count must be an integer in
// [1, MaxFrames].
//
// Without frames or vary the plan is a single still frame. vary without
// frames is fatal and returns ErrVaryWithoutFrames. frames without basename
// is not fatal: the plan uses DefaultBasename and a warning naming it is
// logged.
func FirstPass(cmds []Command) (Plan, error) {
	plan := Plan{Frames: 1, Basename: DefaultBasename}
	var sawFrames, sawVary, sawName bool

	for i, cmd := range cmds {
		switch cmd.Op {
		case OpFrames:
			n, err := decodeFrames(i, cmd)
			if err != nil {
				return Plan{}, err
			}
			plan.Frames = n
			sawFrames = true
		case OpVary:
			sawVary = true
		case OpBasename:
			name, err := decodeName(i, cmd)
			if err != nil {
				return Plan{}, err
			}
			plan.Basename = name
			sawName = true
		}
	}

	if sawVary && !sawFrames {
		return Plan{}, ErrVaryWithoutFrames
	}
	if sawFrames && !sawName {
		plan.DefaultName = true
		Logger().Warn("mdl: frames found without basename", "basename", plan.Basename)
	}
	return plan, nil
}
