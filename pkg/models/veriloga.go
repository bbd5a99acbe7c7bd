package models

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/lowent/netforge/pkg/netlist"
)

var (
	vaModuleRe = regexp.MustCompile(`module (\w+)\b.*;`)
	vaParamRe  = regexp.MustCompile(`parameter \w+ (\w+) = (.*);`)
)

// VerilogA scans a Verilog-A library: each `module <name> …;` opens a
// model, `parameter <type> <key> = <value>;` lines up to `analog begin`
// fill its defaults. Everything past the analog block is behavioral
// code and is skipped.
func VerilogA(r io.Reader) (Library, error) {
	lib := Library{}
	sc := bufio.NewScanner(r)

	var current *netlist.Model
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "module"):
			m := vaModuleRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			current = &netlist.Model{Name: m[1], Params: netlist.Params{}}
			lib[current.Name] = current
		case strings.HasPrefix(line, "analog begin"):
			current = nil
		default:
			if current == nil {
				continue
			}
			if m := vaParamRe.FindStringSubmatch(line); m != nil {
				current.Params[m[1]] = CastValue(strings.ReplaceAll(m[2], `"`, ""))
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan veriloga: %w", err)
	}
	return lib, nil
}
