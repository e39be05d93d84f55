package mdl

import (
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
)

// Op identifies the operator of a command.
type Op uint8

const (
	OpUnknown Op = iota // Unrecognized operator, ignored by the dispatcher

	// Drawing commands
	OpBox
	OpSphere
	OpTorus
	OpLine

	// Transform commands
	OpMove
	OpScale
	OpRotate
	OpPush
	OpPop

	// Output commands
	OpDisplay
	OpSave

	// Animation commands
	OpFrames
	OpBasename
	OpVary
)

// opNames maps Op values to their script spelling.
var opNames = [...]string{
	OpUnknown:  "unknown",
	OpBox:      "box",
	OpSphere:   "sphere",
	OpTorus:    "torus",
	OpLine:     "line",
	OpMove:     "move",
	OpScale:    "scale",
	OpRotate:   "rotate",
	OpPush:     "push",
	OpPop:      "pop",
	OpDisplay:  "display",
	OpSave:     "save",
	OpFrames:   "frames",
	OpBasename: "basename",
	OpVary:     "vary",
}

var opsByName = func() map[string]Op {
	m := make(map[string]Op, len(opNames))
	for op, name := range opNames {
		if Op(op) != OpUnknown {
			m[name] = Op(op)
		}
	}
	return m
}()

// String returns the script spelling of the operator.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// ParseOp returns the operator named s. Matching is case-insensitive;
// unknown names yield OpUnknown.
func ParseOp(s string) Op {
	return opsByName[cases.Fold().String(s)]
}

// MarshalText implements encoding.TextMarshaler.
func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode
// to OpUnknown rather than failing, so newer scripts still load.
func (o *Op) UnmarshalText(text []byte) error {
	*o = ParseOp(string(text))
	return nil
}

// ArgKind tags the variant held by an Arg.
type ArgKind uint8

const (
	ArgNumber ArgKind = iota // numeric literal
	ArgName                  // name reference
)

// Arg is one positional command argument: either a number or a name
// reference. The zero value is the number 0.
type Arg struct {
	kind ArgKind
	num  float64
	name string
}

// Num returns a numeric argument.
func Num(v float64) Arg {
	return Arg{kind: ArgNumber, num: v}
}

// Name returns a name-reference argument.
func Name(s string) Arg {
	return Arg{kind: ArgName, name: s}
}

// Kind reports which variant a holds.
func (a Arg) Kind() ArgKind {
	return a.kind
}

// IsName reports whether a is a name reference.
func (a Arg) IsName() bool {
	return a.kind == ArgName
}

// Number returns the numeric value and true if a is a number.
func (a Arg) Number() (float64, bool) {
	return a.num, a.kind == ArgNumber
}

// NameRef returns the referenced name and true if a is a name reference.
func (a Arg) NameRef() (string, bool) {
	return a.name, a.kind == ArgName
}

// String formats a for diagnostics.
func (a Arg) String() string {
	if a.kind == ArgName {
		return strconv.Quote(a.name)
	}
	return strconv.FormatFloat(a.num, 'g', -1, 64)
}

// MarshalJSON encodes a number as a JSON number and a name as a string.
func (a Arg) MarshalJSON() ([]byte, error) {
	if a.kind == ArgName {
		return json.Marshal(a.name)
	}
	return json.Marshal(a.num)
}

// UnmarshalJSON accepts a JSON number or string.
func (a *Arg) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case float64:
		*a = Num(v)
	case string:
		*a = Name(v)
	default:
		return fmt.Errorf("mdl: argument must be a number or a string, got %s", data)
	}
	return nil
}

// Command is one entry of the command list. Commands are read-only once
// produced.
type Command struct {
	Op   Op     `json:"op"`
	Args []Arg  `json:"args,omitempty"`
	Knob string `json:"knob,omitempty"`
}

// String formats c for diagnostics.
func (c Command) String() string {
	s := c.Op.String()
	for _, a := range c.Args {
		s += " " + a.String()
	}
	if c.Knob != "" {
		s += " [" + c.Knob + "]"
	}
	return s
}
