package models

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/lowent/netforge/pkg/netlist"
)

type configFile struct {
	Models []configModel `toml:"model"`
}

type configModel struct {
	Name   string         `toml:"name"`
	Params map[string]any `toml:"params"`
}

// inheritKey marks a config model's base inside its params table.
const inheritKey = "from"

// Config reads the structured TOML dialect: an array of `[[model]]`
// tables, each with a name and a `params` table. A params table may
// carry `from = "<base>"` to inherit an earlier model's defaults; the
// local values override the base's and falsy entries are pruned after
// the merge. Bases must be declared before the models deriving from
// them.
func Config(r io.Reader) (Library, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg configFile
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	lib := Library{}
	for _, m := range cfg.Models {
		if m.Name == "" {
			return nil, fmt.Errorf("config model without a name")
		}
		params := netlist.Params(m.Params).Clone()

		if baseName, ok := params[inheritKey]; ok {
			delete(params, inheritKey)
			base, ok := lib[fmt.Sprint(baseName)]
			if !ok {
				return nil, fmt.Errorf("model %s inherits unknown base %v", m.Name, baseName)
			}
			params = base.Params.Merge(params).Pruned()
		}

		lib[m.Name] = &netlist.Model{Name: m.Name, Params: params}
	}
	return lib, nil
}
