package netlist

import (
	"errors"
	"fmt"
	"testing"
)

func TestSubcircuitSelfRegisters(t *testing.T) {
	c := New()
	first := c.NewSubcircuit("inv", []Net{NamedNet("in"), NamedNet("out")}, nil)
	if got, ok := c.Subcircuit("inv"); !ok || got != first {
		t.Fatal("subcircuit not registered at creation")
	}

	// Re-registering the same name: last write wins.
	second := c.NewSubcircuit("inv", []Net{NamedNet("a"), NamedNet("b")}, nil)
	if got, _ := c.Subcircuit("inv"); got != second {
		t.Error("repeated name should replace the previous definition")
	}
}

func TestSubcircuitFixedAddWarnsAndIgnores(t *testing.T) {
	c := New()
	var warned []string
	c.SetWarnFunc(func(format string, args ...any) {
		warned = append(warned, fmt.Sprintf(format, args...))
	})

	s := c.NewSubcircuit("inv", []Net{NamedNet("in"), NamedNet("out")}, nil)
	comp := testComponent(t, c, NamedNet("in"), NamedNet("out"))
	s.Add(comp)
	s.Fix()

	late := testComponent(t, c, NamedNet("x"), NamedNet("y"))
	s.Add(late)

	if len(s.Components()) != 1 {
		t.Errorf("components = %d, want 1 (late add ignored)", len(s.Components()))
	}
	if len(warned) != 1 {
		t.Fatalf("warnings = %d, want 1", len(warned))
	}
	if !s.Fixed() {
		t.Error("Fixed() = false after Fix")
	}
}

func TestSubcircuitAddSetsScope(t *testing.T) {
	c := New()
	s := c.NewSubcircuit("bias", []Net{NamedNet("v")}, nil)
	comp := testComponent(t, c, NamedNet("v"))
	s.Add(comp)
	if comp.Scope != "bias" {
		t.Errorf("Scope = %q, want bias", comp.Scope)
	}
	if !s.Contains(comp) {
		t.Error("Contains should report added component")
	}
}

func TestSubcircuitInst(t *testing.T) {
	ports := []Net{NamedNet("in"), NamedNet("out")}

	tests := []struct {
		name    string
		formals Params
		ports   []Net
		params  Params
		wantErr error
	}{
		{
			name:    "HappyPathNoParams",
			formals: nil,
			ports:   ports,
		},
		{
			name:    "WrongPortCount",
			formals: nil,
			ports:   []Net{NamedNet("in")},
			wantErr: ErrPortCount,
		},
		{
			name:    "MissingRequired",
			formals: Params{"w": nil, "l": 0.18},
			ports:   ports,
			params:  nil,
			wantErr: ErrMissingParams,
		},
		{
			name:    "ExactRequiredKeys",
			formals: Params{"w": nil, "l": 0.18},
			ports:   ports,
			params:  Params{"w": 1.2},
		},
		{
			name:    "ExtraKeyRejected",
			formals: Params{"w": nil},
			ports:   ports,
			params:  Params{"w": 1.2, "l": 0.5},
			wantErr: ErrParamMismatch,
		},
		{
			name:    "WrongKeyRejected",
			formals: Params{"w": nil},
			ports:   ports,
			params:  Params{"l": 0.5},
			wantErr: ErrParamMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			s := c.NewSubcircuit("amp", []Net{NamedNet("p"), NamedNet("n")}, tt.formals)

			comp, err := s.Inst(tt.ports, tt.params)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Inst: %v", err)
			}
			if comp.Name() != "amp" {
				t.Errorf("Name() = %q, want amp", comp.Name())
			}
		})
	}
}

func TestSubcircuitInstIDsShareGlobalSequence(t *testing.T) {
	// The per-name counter is circuit-global, not scoped by subcircuit:
	// instances of "amp" number one shared sequence wherever they land.
	c := New()
	s := c.NewSubcircuit("amp", []Net{NamedNet("p")}, nil)

	a, err := s.Inst([]Net{NamedNet("x")}, nil)
	if err != nil {
		t.Fatalf("Inst: %v", err)
	}
	b, err := s.Inst([]Net{NamedNet("y")}, nil)
	if err != nil {
		t.Fatalf("Inst: %v", err)
	}
	if a.NumID() != 0 || b.NumID() != 1 {
		t.Errorf("ids = %d, %d, want 0, 1", a.NumID(), b.NumID())
	}
}
