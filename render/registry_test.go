package render

import (
	"slices"
	"strings"
	"testing"
)

func TestSoftwareRegistered(t *testing.T) {
	if !slices.Contains(Backends(), "software") {
		t.Fatalf("Backends() = %v, missing software", Backends())
	}
	b, err := NewBackend("software", DefaultConfig())
	if err != nil {
		t.Fatalf("NewBackend(software) error: %v", err)
	}
	if _, ok := b.(*Software); !ok {
		t.Errorf("NewBackend(software) returned %T, want *Software", b)
	}
}

func TestRegisterCustomBackend(t *testing.T) {
	const name = "test-registry"
	Register(name, func(cfg Config) Backend { return NewSoftware(cfg) })
	t.Cleanup(func() {
		registryMu.Lock()
		delete(backends, name)
		registryMu.Unlock()
	})

	if !slices.Contains(Backends(), name) {
		t.Errorf("Backends() = %v, missing %q", Backends(), name)
	}
	if !slices.IsSorted(Backends()) {
		t.Errorf("Backends() = %v, not sorted", Backends())
	}
	b, err := NewBackend(name, Config{Width: 3, Height: 2})
	if err != nil {
		t.Fatalf("NewBackend(%q) error: %v", name, err)
	}
	if got := b.NewFrame().Canvas.Width(); got != 3 {
		t.Errorf("canvas width = %d, want 3 from the config", got)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register of a duplicate name did not panic")
		}
	}()
	Register("software", func(cfg Config) Backend { return NewSoftware(cfg) })
}

func TestRegisterNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register(nil) did not panic")
		}
	}()
	Register("nil-factory", nil)
}

func TestNewBackendUnknown(t *testing.T) {
	_, err := NewBackend("nope", DefaultConfig())
	if err == nil {
		t.Fatal("NewBackend(nope) error = nil, want error")
	}
	if !strings.Contains(err.Error(), "software") {
		t.Errorf("error %q does not list the registered back-ends", err)
	}
}
