package mdl

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestSymbolTableSetKeepsKind(t *testing.T) {
	st := NewSymbolTable()
	st.Define("speed", Symbol{Kind: "constant", Value: 3})
	st.Set("speed", 4)
	st.Set("k", 0.5)

	if s, _ := st.Lookup("speed"); s.Kind != "constant" || s.Value != 4 {
		t.Errorf("speed = %+v, want constant 4", s)
	}
	if s, _ := st.Lookup("k"); s.Kind != KindKnob || s.Value != 0.5 {
		t.Errorf("k = %+v, want knob 0.5", s)
	}
	if got := st.Names(); !slices.Equal(got, []string{"k", "speed"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestSymbolTableMultiplier(t *testing.T) {
	st := NewSymbolTable()
	if got := st.Multiplier("missing"); got != 1 {
		t.Errorf("Multiplier(missing) = %v, want 1", got)
	}
	st.Set("k", 0)
	if got := st.Multiplier("k"); got != 0 {
		t.Errorf("Multiplier(k) = %v, want 0", got)
	}
}

func TestSymbolTableClone(t *testing.T) {
	st := NewSymbolTable()
	st.Set("k", 1)
	c := st.Clone()
	c.Set("k", 2)
	c.Set("j", 3)

	if st.Multiplier("k") != 1 || st.Len() != 1 {
		t.Errorf("Clone shares storage with the original")
	}

	var zero SymbolTable
	if zero.Clone().Len() != 0 {
		t.Error("Clone of zero table is not empty")
	}
	zero.Set("x", 1)
	if zero.Multiplier("x") != 1 {
		t.Error("Set on zero table lost the value")
	}
}

func TestSymbolTableJSON(t *testing.T) {
	data := `{"k":["knob",0],"shiny":["constants",[[0.3,0.5,0.8]]],"bare":["coord_system"]}`
	st := NewSymbolTable()
	if err := json.Unmarshal([]byte(data), st); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if s, ok := st.Lookup("k"); !ok || s.Kind != KindKnob || s.Value != 0 {
		t.Errorf("k = %+v, %v", s, ok)
	}
	s, ok := st.Lookup("shiny")
	if !ok || s.Kind != "constants" || s.Data == nil {
		t.Errorf("shiny = %+v, %v; want constants with raw data", s, ok)
	}
	if s, ok := st.Lookup("bare"); !ok || s.Kind != "coord_system" {
		t.Errorf("bare = %+v, %v", s, ok)
	}

	out, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	back := NewSymbolTable()
	if err := json.Unmarshal(out, back); err != nil {
		t.Fatalf("Unmarshal(Marshal) error: %v", err)
	}
	if back.Len() != 3 {
		t.Errorf("round trip Len() = %d, want 3", back.Len())
	}
}

func TestSymbolJSONInvalid(t *testing.T) {
	var s Symbol
	for _, data := range []string{`[]`, `["a",1,2]`, `[1,2]`, `"knob"`} {
		if err := json.Unmarshal([]byte(data), &s); err == nil {
			t.Errorf("Unmarshal(%s) error = nil", data)
		}
	}
}
