package spectre

import "github.com/lowent/netforge/pkg/netlist"

// optionsDirective is the statement name the emitter uses for the
// global options line; the transform folds it back into the circuit's
// options map instead of keeping it as a raw directive.
const optionsDirective = "options"

// Circuit assembles the parsed tree into the entity model. Node tokens
// become named nets verbatim, including positional numeric ones, so a
// later emit renders them exactly as they were read. Instance ids from
// the source stay authoritative: each one is restored as-is and the
// registry is raised past it, so components built afterwards on the
// same circuit never collide.
func (f *File) Circuit() *netlist.Circuit {
	c := netlist.New()
	for _, stmt := range f.Statements {
		switch s := stmt.(type) {
		case *DirectiveStmt:
			if s.Name == optionsDirective && len(s.Args) > 0 {
				for k, v := range s.Args {
					c.SetOption(k, v)
				}
				continue
			}
			c.AddDirective(&netlist.Directive{Name: s.Name, Args: s.Args})
		case *InstanceStmt:
			c.Add(restore(c, s))
		case *SubcktStmt:
			sub := c.NewSubcircuit(s.Name, nodeNets(s.Nodes), s.Params)
			for _, inst := range s.Body {
				sub.Add(restore(c, inst))
			}
		}
	}
	return c
}

func restore(c *netlist.Circuit, s *InstanceStmt) *netlist.Component {
	comp := c.RestoreComponent(s.Letter, s.Name, s.ID, nodeNets(s.Nodes), "", s.Params)
	c.Registry().Ensure(s.Name, s.ID)
	return comp
}

func nodeNets(nodes []string) []netlist.Net {
	nets := make([]netlist.Net, len(nodes))
	for i, n := range nodes {
		nets[i] = netlist.NamedNet(n)
	}
	return nets
}
