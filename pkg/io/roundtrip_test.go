package io

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lowent/netforge/pkg/netlist"
)

func buildCircuit(t *testing.T) *netlist.Circuit {
	t.Helper()
	c := netlist.New()

	s := c.NewSubcircuit("inv",
		[]netlist.Net{netlist.NamedNet("a"), netlist.NamedNet("y")},
		netlist.Params{"w": nil})
	m, err := c.NewComponent(
		[]netlist.Net{netlist.NamedNet("y"), netlist.NamedNet("a")},
		netlist.Options{Name: "nmos", Letter: "M", Params: netlist.Params{"l": 0.18}})
	if err != nil {
		t.Fatalf("NewComponent: %v", err)
	}
	s.Add(m)
	s.Fix()

	top, err := c.NewComponent(
		[]netlist.Net{c.Net(), netlist.NamedNet("out")},
		netlist.Options{Name: "res", Params: netlist.Params{"R": 470.0}})
	if err != nil {
		t.Fatalf("NewComponent: %v", err)
	}
	c.Add(top)

	c.AddDirective(&netlist.Directive{Name: "simulator", Args: netlist.Params{"lang": "spectre"}})
	c.SetOption("temp", 27.0)
	return c
}

func TestRoundTrip(t *testing.T) {
	c := buildCircuit(t)

	var buf bytes.Buffer
	if err := WriteJSON(c, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if !reflect.DeepEqual(got.Registry().Instances(), c.Registry().Instances()) {
		t.Errorf("instances = %v, want %v", got.Registry().Instances(), c.Registry().Instances())
	}
	if got.Registry().Nets() != c.Registry().Nets() {
		t.Errorf("nets = %d, want %d", got.Registry().Nets(), c.Registry().Nets())
	}

	if len(got.Components()) != 1 {
		t.Fatalf("components = %d, want 1", len(got.Components()))
	}
	top := got.Components()[0]
	if top.Name() != "res" || top.NumID() != 0 || top.Letter != "R" {
		t.Errorf("top = %s%d %s", top.Letter, top.NumID(), top.Name())
	}
	wantPorts := []netlist.Net{netlist.NumNet(0), netlist.NamedNet("out")}
	if !reflect.DeepEqual(top.Ports, wantPorts) {
		t.Errorf("ports = %v, want %v", top.Ports, wantPorts)
	}
	if top.Params()["R"] != 470.0 {
		t.Errorf("R = %v, want 470", top.Params()["R"])
	}

	s, ok := got.Subcircuit("inv")
	if !ok {
		t.Fatal("subcircuit inv missing")
	}
	if !s.Fixed() {
		t.Error("fixed flag lost")
	}
	if v, ok := s.Params()["w"]; !ok || v != nil {
		t.Errorf("formal w = %v, %v, want required nil", v, ok)
	}
	if len(s.Components()) != 1 || s.Components()[0].Name() != "nmos" {
		t.Error("subcircuit body lost")
	}
	if s.Components()[0].Scope != "inv" {
		t.Errorf("scope = %q, want inv", s.Components()[0].Scope)
	}

	if len(got.Directives()) != 1 || got.Directives()[0].Name != "simulator" {
		t.Error("directives lost")
	}
	if got.Options()["temp"] != 27.0 {
		t.Errorf("options temp = %v, want 27", got.Options()["temp"])
	}
}

func TestImportContinuesAllocation(t *testing.T) {
	c := buildCircuit(t)
	var buf bytes.Buffer
	if err := WriteJSON(c, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	fresh, err := got.NewComponent([]netlist.Net{got.Net()}, netlist.Options{Name: "res"})
	if err != nil {
		t.Fatalf("NewComponent: %v", err)
	}
	if fresh.NumID() != 1 {
		t.Errorf("next res id = %d, want 1", fresh.NumID())
	}
	if fresh.Ports[0] != netlist.NumNet(1) {
		t.Errorf("next net = %v, want net1", fresh.Ports[0])
	}
}

func TestExportImportFile(t *testing.T) {
	c := buildCircuit(t)
	path := filepath.Join(t.TempDir(), "circuit.json")

	if err := ExportJSON(c, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if len(got.Components()) != 1 || len(got.Subcircuits()) != 1 {
		t.Error("file round trip lost content")
	}
}

func TestReadJSONMalformed(t *testing.T) {
	if _, err := ReadJSON(bytes.NewReader([]byte("{not json"))); err == nil {
		t.Fatal("want decode error")
	}
}
