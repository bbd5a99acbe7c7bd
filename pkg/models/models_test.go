package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCastValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"42", 42},
		{"-3", -3},
		{"0.18", 0.18},
		{"1e-6", 1e-6},
		{"fast", "fast"},
		{"1u", "1u"},
	}
	for _, tt := range tests {
		if got := CastValue(tt.in); got != tt.want {
			t.Errorf("CastValue(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestVerilogA(t *testing.T) {
	src := `// behavioral resistor
module res_va (p, n);
  parameter real R = 1000;
  parameter integer noisy = 1;
  parameter string corner = "tt";
analog begin
  parameter real ignored = 5;
end
endmodule

module cap_va (p, n);
  parameter real C = 1e-12;
analog begin
end
endmodule
`
	lib, err := VerilogA(strings.NewReader(src))
	if err != nil {
		t.Fatalf("VerilogA: %v", err)
	}
	if len(lib) != 2 {
		t.Fatalf("models = %d, want 2", len(lib))
	}

	res := lib["res_va"]
	if res == nil {
		t.Fatal("res_va missing")
	}
	if res.Params["R"] != 1000 {
		t.Errorf("R = %#v, want 1000", res.Params["R"])
	}
	if res.Params["noisy"] != 1 {
		t.Errorf("noisy = %#v, want 1", res.Params["noisy"])
	}
	if res.Params["corner"] != "tt" {
		t.Errorf("corner = %#v, want tt (quotes stripped)", res.Params["corner"])
	}
	if _, ok := res.Params["ignored"]; ok {
		t.Error("parameters inside analog block must be skipped")
	}
	if lib["cap_va"].Params["C"] != 1e-12 {
		t.Errorf("C = %#v, want 1e-12", lib["cap_va"].Params["C"])
	}
}

func TestEldo(t *testing.T) {
	src := `* foundry lib
.subckt nmos_lv d g s b
+ param w=1 l=0.18
+ vth=0.4
m1 d g s b nmos
.ends

.subckt pmos_lv d g s b
+ param w=2
.ends
`
	lib, err := Eldo(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Eldo: %v", err)
	}
	nmos := lib["nmos_lv"]
	if nmos == nil {
		t.Fatal("nmos_lv missing")
	}
	if nmos.Params["w"] != 1 || nmos.Params["l"] != 0.18 || nmos.Params["vth"] != 0.4 {
		t.Errorf("params = %v", nmos.Params)
	}
	if lib["pmos_lv"].Params["w"] != 2 {
		t.Errorf("pmos w = %#v, want 2", lib["pmos_lv"].Params["w"])
	}
}

func TestEldoMalformedParam(t *testing.T) {
	src := ".subckt bad a b\n+ param w=1 oops\n.ends\n"
	if _, err := Eldo(strings.NewReader(src)); err == nil {
		t.Fatal("want error for parameter without '='")
	}
}

func TestSpectre(t *testing.T) {
	src := `subckt nmos_lv d g s b
parameters w=1 l=0.18
+ vth=0.4
M0 (d g s b) nmos
ends nmos_lv
`
	lib, err := Spectre(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Spectre: %v", err)
	}
	m := lib["nmos_lv"]
	if m == nil {
		t.Fatal("nmos_lv missing")
	}
	if m.Params["w"] != 1 || m.Params["l"] != 0.18 || m.Params["vth"] != 0.4 {
		t.Errorf("params = %v", m.Params)
	}
}

func TestConfig(t *testing.T) {
	src := `
[[model]]
name = "nmos_base"
[model.params]
vth = 0.4
w = 1.0
noisy = true

[[model]]
name = "nmos_lv"
[model.params]
from = "nmos_base"
vth = 0.3
noisy = false
`
	lib, err := Config(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Config: %v", err)
	}

	lv := lib["nmos_lv"]
	if lv == nil {
		t.Fatal("nmos_lv missing")
	}
	if lv.Name != "nmos_lv" {
		t.Errorf("Name = %q, want nmos_lv", lv.Name)
	}
	if lv.Params["vth"] != 0.3 {
		t.Errorf("vth = %#v, want local override 0.3", lv.Params["vth"])
	}
	if lv.Params["w"] != 1.0 {
		t.Errorf("w = %#v, want inherited 1.0", lv.Params["w"])
	}
	if _, ok := lv.Params["noisy"]; ok {
		t.Error("falsy values must be pruned after the merge")
	}
	if _, ok := lv.Params["from"]; ok {
		t.Error("inherit marker must not survive as a parameter")
	}

	// Base unaffected by the derived model.
	if lib["nmos_base"].Params["vth"] != 0.4 {
		t.Errorf("base vth = %#v, want 0.4", lib["nmos_base"].Params["vth"])
	}
}

func TestConfigUnknownBase(t *testing.T) {
	src := "[[model]]\nname = \"x\"\n[model.params]\nfrom = \"ghost\"\n"
	if _, err := Config(strings.NewReader(src)); err == nil {
		t.Fatal("want error for unknown base")
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.va")
	src := "module r (p, n);\n  parameter real R = 50;\nanalog begin\nend\nendmodule\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	lib, err := ParseFile(path, VerilogA)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if lib["r"] == nil || lib["r"].Params["R"] != 50 {
		t.Errorf("lib = %v", lib)
	}
}
