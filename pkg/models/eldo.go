package models

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/lowent/netforge/pkg/netlist"
)

var eldoSubcktRe = regexp.MustCompile(`\.subckt (\w+)\b`)

// Eldo scans an Eldo .lib file: each `.subckt <name> …` opens a model
// and the following `+` continuation lines carry its `param k=v …`
// list. Continuations are joined before splitting so a parameter list
// may wrap over any number of lines.
func Eldo(r io.Reader) (Library, error) {
	lib := Library{}
	sc := bufio.NewScanner(r)

	var name string
	var cont []string
	flush := func() error {
		if name == "" {
			return nil
		}
		params, err := splitParamList(strings.Join(cont, " "))
		if err != nil {
			return fmt.Errorf("model %s: %w", name, err)
		}
		lib[name] = &netlist.Model{Name: name, Params: params}
		name, cont = "", nil
		return nil
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, ".subckt"):
			if err := flush(); err != nil {
				return nil, err
			}
			if m := eldoSubcktRe.FindStringSubmatch(line); m != nil {
				name = m[1]
			}
		case strings.HasPrefix(line, "+") && name != "":
			cont = append(cont, strings.TrimSpace(line[1:]))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan eldo: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return lib, nil
}

// splitParamList parses `k=v k=v …`, tolerating a leading "param" or
// "params:" marker.
func splitParamList(s string) (netlist.Params, error) {
	params := netlist.Params{}
	for i, field := range strings.Fields(s) {
		if i == 0 && !strings.Contains(field, "=") {
			continue // param marker
		}
		k, v, ok := strings.Cut(field, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("malformed parameter %q", field)
		}
		params[k] = CastValue(v)
	}
	return params, nil
}
