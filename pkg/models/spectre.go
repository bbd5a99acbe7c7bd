package models

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/lowent/netforge/pkg/netlist"
)

var spectreSubcktRe = regexp.MustCompile(`^subckt (\w+)\b`)

// Spectre scans a Spectre-format library: each `subckt <name> …` block
// opens a model, `parameters k=v …` lines (with `+` continuations)
// carry its defaults, and `ends` closes it.
func Spectre(r io.Reader) (Library, error) {
	lib := Library{}
	sc := bufio.NewScanner(r)

	var current *netlist.Model
	inParams := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "subckt"):
			if m := spectreSubcktRe.FindStringSubmatch(line); m != nil {
				current = &netlist.Model{Name: m[1], Params: netlist.Params{}}
				lib[current.Name] = current
			}
			inParams = false
		case strings.HasPrefix(line, "ends"):
			current, inParams = nil, false
		case current != nil && strings.HasPrefix(line, "parameters"):
			inParams = true
			if err := addPairs(current.Params, strings.TrimPrefix(line, "parameters")); err != nil {
				return nil, fmt.Errorf("model %s: %w", current.Name, err)
			}
		case current != nil && inParams && strings.HasPrefix(line, "+"):
			if err := addPairs(current.Params, line[1:]); err != nil {
				return nil, fmt.Errorf("model %s: %w", current.Name, err)
			}
		default:
			inParams = false
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan spectre: %w", err)
	}
	return lib, nil
}

func addPairs(params netlist.Params, s string) error {
	for _, field := range strings.Fields(s) {
		k, v, ok := strings.Cut(field, "=")
		if !ok || k == "" {
			return fmt.Errorf("malformed parameter %q", field)
		}
		params[k] = CastValue(v)
	}
	return nil
}
