package mdl

import (
	"encoding/json"
	"fmt"
	"maps"
	"sort"
)

// KindKnob is the symbol kind of animated parameters.
const KindKnob = "knob"

// Symbol is one symbol table entry. Value holds numeric values; entries
// whose value is not a number (material constants, coordinate systems)
// keep it in Data.
type Symbol struct {
	Kind  string
	Value float64
	Data  json.RawMessage
}

// MarshalJSON encodes s as the pair [kind, value].
func (s Symbol) MarshalJSON() ([]byte, error) {
	if s.Data != nil {
		return json.Marshal([]any{s.Kind, s.Data})
	}
	return json.Marshal([]any{s.Kind, s.Value})
}

// UnmarshalJSON decodes the pair [kind, value].
func (s *Symbol) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) == 0 || len(pair) > 2 {
		return fmt.Errorf("mdl: symbol must be [kind, value], got %s", data)
	}
	var out Symbol
	if err := json.Unmarshal(pair[0], &out.Kind); err != nil {
		return fmt.Errorf("mdl: symbol kind: %w", err)
	}
	if len(pair) == 2 {
		if err := json.Unmarshal(pair[1], &out.Value); err != nil {
			out.Value = 0
			out.Data = append(json.RawMessage(nil), pair[1]...)
		}
	}
	*s = out
	return nil
}

// SymbolTable maps declared names to their current kind and value.
//
// A SymbolTable is not safe for concurrent use; parallel frames each work on
// their own Clone.
type SymbolTable struct {
	entries map[string]Symbol
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{entries: make(map[string]Symbol)}
}

// Define adds or replaces an entry.
func (t *SymbolTable) Define(name string, s Symbol) {
	t.init()
	t.entries[name] = s
}

// Lookup returns the entry for name.
func (t *SymbolTable) Lookup(name string) (Symbol, bool) {
	s, ok := t.entries[name]
	return s, ok
}

// Set overwrites the value of name, keeping its kind. A missing entry is
// created as a knob.
func (t *SymbolTable) Set(name string, v float64) {
	t.init()
	s, ok := t.entries[name]
	if !ok {
		s.Kind = KindKnob
	}
	s.Value = v
	s.Data = nil
	t.entries[name] = s
}

// Multiplier returns the current value of name, or 1 when name is not
// defined.
func (t *SymbolTable) Multiplier(name string) float64 {
	if s, ok := t.entries[name]; ok {
		return s.Value
	}
	return 1
}

// Len returns the number of entries.
func (t *SymbolTable) Len() int {
	return len(t.entries)
}

// Names returns the sorted entry names.
func (t *SymbolTable) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the table.
func (t *SymbolTable) Clone() *SymbolTable {
	return &SymbolTable{entries: maps.Clone(t.entriesOrEmpty())}
}

// MarshalJSON encodes the table as an object of [kind, value] pairs.
func (t *SymbolTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.entriesOrEmpty())
}

// UnmarshalJSON decodes an object of [kind, value] pairs.
func (t *SymbolTable) UnmarshalJSON(data []byte) error {
	var m map[string]Symbol
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if m == nil {
		m = make(map[string]Symbol)
	}
	t.entries = m
	return nil
}

func (t *SymbolTable) init() {
	if t.entries == nil {
		t.entries = make(map[string]Symbol)
	}
}

func (t *SymbolTable) entriesOrEmpty() map[string]Symbol {
	if t.entries == nil {
		return map[string]Symbol{}
	}
	return t.entries
}
