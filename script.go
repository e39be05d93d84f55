package mdl

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadScript decodes a script serialized as JSON:
//
//	{
//	  "commands": [
//	    {"op": "frames", "args": [10]},
//	    {"op": "vary", "knob": "k", "args": [0, 9, 0, 1]},
//	    {"op": "move", "knob": "k", "args": [100, 0, 0]},
//	    {"op": "box", "args": [0, 100, 0, 50, 50, 50]}
//	  ],
//	  "symbols": {"k": ["knob", 0]}
//	}
//
// Operator names are case-insensitive; unknown operators load as OpUnknown.
// Decoding failures wrap ErrParse.
func LoadScript(r io.Reader) (*Script, error) {
	var s Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if s.Symbols == nil {
		s.Symbols = NewSymbolTable()
	}
	return &s, nil
}

// LoadScriptFile decodes the script stored at path.
func LoadScriptFile(path string) (*Script, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return LoadScript(f)
}
