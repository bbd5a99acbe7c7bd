package spectre

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lowent/netforge/pkg/netlist"
)

func TestParseInstanceLine(t *testing.T) {
	c, err := Parse(`M3 (out in vdd vdd) pmos w=2.00 l=0.18 corner="fast"` + "\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	comps := c.Components()
	if len(comps) != 1 {
		t.Fatalf("components = %d, want 1", len(comps))
	}
	comp := comps[0]
	if comp.Letter != "M" || comp.NumID() != 3 || comp.Name() != "pmos" {
		t.Errorf("got %s%d %s, want M3 pmos", comp.Letter, comp.NumID(), comp.Name())
	}
	wantPorts := []netlist.Net{
		netlist.NamedNet("out"), netlist.NamedNet("in"),
		netlist.NamedNet("vdd"), netlist.NamedNet("vdd"),
	}
	if !reflect.DeepEqual(comp.Ports, wantPorts) {
		t.Errorf("ports = %v, want %v", comp.Ports, wantPorts)
	}
	wantParams := netlist.Params{"w": 2.0, "l": 0.18, "corner": "fast"}
	if !reflect.DeepEqual(comp.Params(), wantParams) {
		t.Errorf("params = %v, want %v", comp.Params(), wantParams)
	}
}

func TestParseNumericNodesKeptVerbatim(t *testing.T) {
	c, err := Parse("R1 (1 0) res\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	comp := c.Components()[0]
	for i, want := range []string{"1", "0"} {
		n := comp.Ports[i]
		if !n.Named() || n.Name() != want {
			t.Errorf("port %d = %v, want verbatim name %q", i, n, want)
		}
	}
}

func TestParseSubcktBlock(t *testing.T) {
	src := `subckt inv in out vdd gnd
parameters w l=0.18
M0 (out in vdd vdd) pmos
M0 (out in gnd gnd) nmos
ends inv
I0 (a y vdd gnd) inv
`
	c, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	s, ok := c.Subcircuit("inv")
	if !ok {
		t.Fatal("subcircuit inv not registered")
	}
	if len(s.Ports()) != 4 {
		t.Errorf("formal ports = %d, want 4", len(s.Ports()))
	}
	if v, ok := s.Params()["w"]; !ok || v != nil {
		t.Errorf("formal w = %v, %v, want required nil", v, ok)
	}
	if v := s.Params()["l"]; v != 0.18 {
		t.Errorf("formal l = %v, want 0.18", v)
	}
	if len(s.Components()) != 2 {
		t.Fatalf("body components = %d, want 2", len(s.Components()))
	}
	if scope := s.Components()[0].Scope; scope != "inv" {
		t.Errorf("body scope = %q, want inv", scope)
	}
	if len(c.Components()) != 1 || c.Components()[0].Name() != "inv" {
		t.Error("top-level instance of inv missing")
	}
}

func TestParseDirectivesAndOptions(t *testing.T) {
	src := `simulator lang=spectre
include models.scs
options temp=27 scale=1e-06
R0 (a b) res
`
	c, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	dirs := c.Directives()
	if len(dirs) != 2 {
		t.Fatalf("directives = %d, want 2 (options folded away)", len(dirs))
	}
	if dirs[0].Name != "simulator" || dirs[0].Args["lang"] != "spectre" {
		t.Errorf("directive 0 = %+v", dirs[0])
	}
	if _, ok := dirs[1].Args["models.scs"]; dirs[1].Name != "include" || !ok {
		t.Errorf("directive 1 = %+v", dirs[1])
	}
	if c.Options()["temp"] != 27 {
		t.Errorf("options temp = %v, want 27", c.Options()["temp"])
	}
	if c.Options()["scale"] != 1e-06 {
		t.Errorf("options scale = %v, want 1e-06", c.Options()["scale"])
	}
}

func TestParseReconcilesRegistry(t *testing.T) {
	c, err := Parse("R4 (a b) res\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	fresh, err := c.NewComponent([]netlist.Net{netlist.NamedNet("x")}, netlist.Options{Name: "res"})
	if err != nil {
		t.Fatalf("NewComponent: %v", err)
	}
	if fresh.NumID() != 5 {
		t.Errorf("post-parse id = %d, want 5", fresh.NumID())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind ErrKind
		line int
		col  int
		text string
	}{
		{
			name: "UnexpectedChar",
			src:  "R1 (a b) res @\n",
			kind: UnexpectedChar,
			line: 1,
			col:  14,
			text: "@",
		},
		{
			name: "UnclosedSubckt",
			src:  "subckt foo a b\nR0 (a b) res\n",
			kind: UnexpectedEOF,
			line: 3,
		},
		{
			name: "EndsNameMismatch",
			src:  "subckt foo a b\nR0 (a b) res\nends bar\n",
			kind: UnexpectedToken,
			line: 3,
			col:  6,
			text: "bar",
		},
		{
			name: "EmptyNodeList",
			src:  "R0 () res\n",
			kind: UnexpectedToken,
			line: 1,
			col:  5,
			text: ")",
		},
		{
			name: "MissingParamValue",
			src:  "R0 (a b) res w=\n",
			kind: UnexpectedToken,
			line: 1,
			text: "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.src)
			if c != nil {
				t.Error("failed parse must not yield a circuit")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("err = %v, want *ParseError", err)
			}
			if perr.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", perr.Kind, tt.kind)
			}
			if perr.Line != tt.line {
				t.Errorf("line = %d, want %d", perr.Line, tt.line)
			}
			if tt.col != 0 && perr.Col != tt.col {
				t.Errorf("col = %d, want %d", perr.Col, tt.col)
			}
			if tt.text != "" && perr.Text != tt.text {
				t.Errorf("text = %q, want %q", perr.Text, tt.text)
			}
		})
	}
}

func TestRoundTripStability(t *testing.T) {
	c := netlist.New()
	c.AddDirective(&netlist.Directive{Name: "simulator", Args: netlist.Params{"lang": "spectre"}})

	s := c.NewSubcircuit("inv",
		[]netlist.Net{netlist.NamedNet("in"), netlist.NamedNet("out"), netlist.NamedNet("vdd"), netlist.NamedNet("gnd")},
		netlist.Params{"w": nil})
	p, err := c.NewComponent(
		[]netlist.Net{netlist.NamedNet("out"), netlist.NamedNet("in"), netlist.NamedNet("vdd"), netlist.NamedNet("vdd")},
		netlist.Options{Name: "pmos", Letter: "M", Params: netlist.Params{"w": 2.0}})
	if err != nil {
		t.Fatalf("NewComponent: %v", err)
	}
	s.Add(p)

	top, err := s.Inst(
		[]netlist.Net{netlist.NamedNet("a"), netlist.NamedNet("y"), netlist.NamedNet("vdd"), netlist.NamedNet("gnd")},
		netlist.Params{"w": 1.5})
	if err != nil {
		t.Fatalf("Inst: %v", err)
	}
	c.Add(top)
	c.SetOption("temp", 27)

	first := Export(c)
	reparsed, err := Parse(first)
	if err != nil {
		t.Fatalf("Parse(first emit): %v", err)
	}
	second := Export(reparsed)
	if first != second {
		t.Errorf("round trip not stable:\nfirst:\n%s\nsecond:\n%s", first, second)
	}

	// Same multiset of instance names and node lists.
	if len(reparsed.Components()) != len(c.Components()) {
		t.Errorf("components = %d, want %d", len(reparsed.Components()), len(c.Components()))
	}
	got := reparsed.Components()[0]
	if got.Name() != "inv" || got.NumID() != top.NumID() {
		t.Errorf("reparsed top = %s/%d, want inv/%d", got.Name(), got.NumID(), top.NumID())
	}
}
