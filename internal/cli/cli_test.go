package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleNetlist = `subckt inv in out
M0 (out in gnd) nmos w=1.00
M1 (out in vdd) pmos w=2.00
ends inv
X0 (a b) inv
X1 (b a) inv
`

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := testCLI().RootCommand()

	want := []string{"parse", "emit", "count", "graph", "models", "inspect", "serve", "completion"}
	have := map[string]bool{}
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestRunParseEmitRoundTrip(t *testing.T) {
	c := testCLI()
	netlistPath := writeSample(t, "ring.scs", sampleNetlist)
	snapshotPath := filepath.Join(t.TempDir(), "ring.json")

	if err := c.runParse(netlistPath, &parseOpts{output: snapshotPath}); err != nil {
		t.Fatalf("runParse: %v", err)
	}

	emitted := filepath.Join(t.TempDir(), "ring.scs")
	if err := c.runEmit(snapshotPath, &emitOpts{output: emitted}); err != nil {
		t.Fatalf("runEmit: %v", err)
	}

	data, err := os.ReadFile(emitted)
	if err != nil {
		t.Fatalf("read emitted netlist: %v", err)
	}
	text := string(data)
	for _, want := range []string{"subckt inv in out", "ends inv", "X0 (a b) inv", "X1 (b a) inv"} {
		if !strings.Contains(text, want) {
			t.Errorf("emitted netlist missing %q:\n%s", want, text)
		}
	}
}

func TestRunParseReportsPosition(t *testing.T) {
	c := testCLI()
	path := writeSample(t, "bad.scs", "R0 (a b res r=1k\n")

	err := c.runParse(path, &parseOpts{})
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "line") {
		t.Errorf("error should carry position info, got %v", err)
	}
}

func TestRunCount(t *testing.T) {
	c := testCLI()
	path := writeSample(t, "ring.scs", sampleNetlist)

	if err := c.runCount(path); err != nil {
		t.Fatalf("runCount: %v", err)
	}
}

func TestRunGraphWritesDOT(t *testing.T) {
	c := testCLI()
	netlistPath := writeSample(t, "ring.scs", sampleNetlist)
	out := filepath.Join(t.TempDir(), "ring.dot")

	if err := c.runGraph(netlistPath, &graphOpts{output: out}); err != nil {
		t.Fatalf("runGraph: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read dot: %v", err)
	}
	if !strings.Contains(string(data), "digraph hierarchy") {
		t.Errorf("dot output missing header:\n%s", data)
	}
}

func TestRunModelsUnknownDialect(t *testing.T) {
	c := testCLI()
	path := writeSample(t, "lib.scs", "subckt nmos d g s b\nends nmos\n")

	err := c.runModels(path, &modelsOpts{dialect: "hspice"})
	if err == nil || !strings.Contains(err.Error(), "unknown dialect") {
		t.Errorf("want unknown dialect error, got %v", err)
	}
}

func TestRunModelsSpectre(t *testing.T) {
	c := testCLI()
	lib := "subckt nmos d g s b\nparameters w=1.0 l=0.18\nends nmos\n"
	path := writeSample(t, "lib.scs", lib)

	if err := c.runModels(path, &modelsOpts{dialect: "spectre"}); err != nil {
		t.Fatalf("runModels: %v", err)
	}
}

func TestDialectParsersComplete(t *testing.T) {
	for _, dialect := range []string{"veriloga", "eldo", "spectre", "config"} {
		if dialectParsers[dialect] == nil {
			t.Errorf("dialect %q not registered", dialect)
		}
	}
}
