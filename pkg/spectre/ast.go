package spectre

import "github.com/lowent/netforge/pkg/netlist"

// Pos locates a statement or token in the source, 1-based.
type Pos struct {
	Line int
	Col  int
}

// File is the parsed form of one netlist source: a flat list of
// statements in source order. Node references inside statements are
// raw source tokens; nothing is renumbered at this stage.
type File struct {
	Statements []Statement
}

// Statement is one parsed netlist statement.
type Statement interface{ stmt() }

func (*DirectiveStmt) stmt() {}
func (*InstanceStmt) stmt()  {}
func (*SubcktStmt) stmt()    {}

// DirectiveStmt is a raw non-instance statement: a bare name with an
// optional keyword/value argument table.
type DirectiveStmt struct {
	Pos  Pos
	Name string
	Args netlist.Params
}

// InstanceStmt is one instance line. Letter and ID come from the
// instance identifier token ("M3" splits into "M" and 3), Nodes holds
// the node tokens verbatim, and Params the keyword table.
type InstanceStmt struct {
	Pos    Pos
	Letter string
	ID     int
	Nodes  []string
	Name   string
	Params netlist.Params
}

// SubcktStmt is a subckt…ends block: the definition name, formal node
// list, the parameters line folded into a table (bare names map to
// nil), and the contained instance lines.
type SubcktStmt struct {
	Pos    Pos
	Name   string
	Nodes  []string
	Params netlist.Params
	Body   []*InstanceStmt
}
