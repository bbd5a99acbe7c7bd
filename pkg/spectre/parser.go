package spectre

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lowent/netforge/pkg/netlist"
)

// Parse reads netlist source and assembles it into a circuit. On
// malformed input it returns a nil circuit and a *ParseError; there is
// never a partial result.
func Parse(src string) (*netlist.Circuit, error) {
	f, err := ParseTree(src)
	if err != nil {
		return nil, err
	}
	return f.Circuit(), nil
}

// ParseFile reads and parses a netlist file.
func ParseFile(path string) (*netlist.Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read netlist: %w", err)
	}
	return Parse(string(data))
}

// ParseTree parses source into its syntax tree without building a
// circuit. Callers wanting the model should use [Parse].
func ParseTree(src string) (*File, error) {
	p, perr := newParser(src)
	if perr != nil {
		return nil, perr
	}
	f, perr := p.parseFile()
	if perr != nil {
		return nil, perr
	}
	return f, nil
}

type parser struct {
	sc   *scanner
	toks []token
	i    int
}

func newParser(src string) (*parser, *ParseError) {
	sc := newScanner(src)
	p := &parser{sc: sc}
	for {
		tok, err := sc.next()
		if err != nil {
			return nil, err
		}
		p.toks = append(p.toks, tok)
		if tok.kind == tokEOF {
			return p, nil
		}
	}
}

func (p *parser) cur() token { return p.toks[p.i] }

func (p *parser) peek() token {
	if p.i+1 < len(p.toks) {
		return p.toks[p.i+1]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) advance() token {
	tok := p.toks[p.i]
	if p.i < len(p.toks)-1 {
		p.i++
	}
	return tok
}

func (p *parser) skipNewlines() {
	for p.cur().kind == tokNewline {
		p.advance()
	}
}

func (p *parser) errUnexpected(tok token) *ParseError {
	if tok.kind == tokEOF {
		return &ParseError{
			Kind:    UnexpectedEOF,
			Line:    tok.pos.Line,
			Col:     tok.pos.Col,
			Context: p.sc.contextLine(tok.pos.Line),
		}
	}
	return &ParseError{
		Kind:    UnexpectedToken,
		Line:    tok.pos.Line,
		Col:     tok.pos.Col,
		Text:    tok.text,
		Context: p.sc.contextLine(tok.pos.Line),
	}
}

func (p *parser) parseFile() (*File, *ParseError) {
	f := &File{}
	for {
		p.skipNewlines()
		if p.cur().kind == tokEOF {
			return f, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		f.Statements = append(f.Statements, stmt)
	}
}

func (p *parser) parseStatement() (Statement, *ParseError) {
	tok := p.cur()
	if tok.kind != tokIdent {
		return nil, p.errUnexpected(tok)
	}
	switch {
	case tok.text == "subckt":
		return p.parseSubckt()
	case isInstanceID(tok.text) && p.peek().kind == tokLParen:
		return p.parseInstance()
	default:
		return p.parseDirective()
	}
}

// isInstanceID reports whether a token has the shape of an instance
// identifier: one or more letters followed by one or more digits.
func isInstanceID(text string) bool {
	i := 0
	for i < len(text) && isLetter(text[i]) {
		i++
	}
	if i == 0 || i == len(text) {
		return false
	}
	for _, ch := range []byte(text[i:]) {
		if !isDigit(ch) {
			return false
		}
	}
	return true
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func splitInstanceID(text string) (letter string, id int) {
	i := 0
	for i < len(text) && isLetter(text[i]) {
		i++
	}
	letter = text[:i]
	id, _ = strconv.Atoi(text[i:])
	return letter, id
}

// parseInstance consumes `<letter><id> ( node… ) <name> k=v…` up to the
// end of the line.
func (p *parser) parseInstance() (*InstanceStmt, *ParseError) {
	idTok := p.advance()
	letter, id := splitInstanceID(idTok.text)
	inst := &InstanceStmt{Pos: idTok.pos, Letter: letter, ID: id}

	if tok := p.advance(); tok.kind != tokLParen {
		return nil, p.errUnexpected(tok)
	}
	for p.cur().kind == tokIdent || p.cur().kind == tokNumber {
		inst.Nodes = append(inst.Nodes, p.advance().text)
	}
	rparen := p.advance()
	if rparen.kind != tokRParen || len(inst.Nodes) == 0 {
		return nil, p.errUnexpected(rparen)
	}

	nameTok := p.advance()
	if nameTok.kind != tokIdent {
		return nil, p.errUnexpected(nameTok)
	}
	inst.Name = nameTok.text

	params, err := p.parseParamTable(false)
	if err != nil {
		return nil, err
	}
	inst.Params = params
	return inst, p.endOfLine()
}

// parseDirective consumes `<name> arg…` where arguments are either k=v
// pairs or bare tokens recorded with a nil value.
func (p *parser) parseDirective() (*DirectiveStmt, *ParseError) {
	nameTok := p.advance()
	d := &DirectiveStmt{Pos: nameTok.pos, Name: nameTok.text}

	args, err := p.parseParamTable(true)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		d.Args = args
	}
	return d, p.endOfLine()
}

// parseSubckt consumes a full block:
//
//	subckt <name> <node…>
//	parameters <k…> <k=v…>   (optional)
//	<instance lines>
//	ends <name>
func (p *parser) parseSubckt() (*SubcktStmt, *ParseError) {
	kw := p.advance() // subckt
	nameTok := p.advance()
	if nameTok.kind != tokIdent {
		return nil, p.errUnexpected(nameTok)
	}
	s := &SubcktStmt{Pos: kw.pos, Name: nameTok.text}

	for p.cur().kind == tokIdent || p.cur().kind == tokNumber {
		s.Nodes = append(s.Nodes, p.advance().text)
	}
	if err := p.endOfLine(); err != nil {
		return nil, err
	}
	p.skipNewlines()

	if p.cur().kind == tokIdent && p.cur().text == "parameters" {
		p.advance()
		params, err := p.parseParamTable(true)
		if err != nil {
			return nil, err
		}
		s.Params = params
		if err := p.endOfLine(); err != nil {
			return nil, err
		}
		p.skipNewlines()
	}

	for {
		tok := p.cur()
		if tok.kind == tokEOF {
			return nil, p.errUnexpected(tok)
		}
		if tok.kind == tokIdent && tok.text == "ends" {
			p.advance()
			endTok := p.advance()
			if endTok.kind != tokIdent || endTok.text != s.Name {
				return nil, p.errUnexpected(endTok)
			}
			return s, p.endOfLine()
		}
		if tok.kind != tokIdent || !isInstanceID(tok.text) || p.peek().kind != tokLParen {
			return nil, p.errUnexpected(tok)
		}
		inst, err := p.parseInstance()
		if err != nil {
			return nil, err
		}
		s.Body = append(s.Body, inst)
		p.skipNewlines()
	}
}

// parseParamTable reads `k=v` entries until end of line. When bare is
// true, lone idents are accepted too and map to nil, which is how the
// parameters line declares required formals and directives carry flag
// arguments.
func (p *parser) parseParamTable(bare bool) (netlist.Params, *ParseError) {
	params := netlist.Params{}
	for p.cur().kind == tokIdent || (bare && (p.cur().kind == tokString || p.cur().kind == tokNumber)) {
		keyTok := p.advance()
		if p.cur().kind != tokEquals {
			if !bare {
				return nil, p.errUnexpected(p.cur())
			}
			params[keyTok.text] = nil
			continue
		}
		if keyTok.kind != tokIdent {
			return nil, p.errUnexpected(keyTok)
		}
		p.advance() // =
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		params[keyTok.text] = v
	}
	if len(params) == 0 {
		return nil, nil
	}
	return params, nil
}

// parseValue reads one parameter value: a number (int when it has no
// fractional part), a quoted string, a bare word, or a bracketed list.
func (p *parser) parseValue() (any, *ParseError) {
	tok := p.cur()
	switch tok.kind {
	case tokNumber:
		p.advance()
		return castNumber(tok.text), nil
	case tokString, tokIdent:
		p.advance()
		return tok.text, nil
	case tokLBracket:
		p.advance()
		var list []any
		for {
			el := p.cur()
			switch el.kind {
			case tokRBracket:
				p.advance()
				return list, nil
			case tokNumber:
				p.advance()
				list = append(list, castNumber(el.text))
			case tokIdent, tokString:
				p.advance()
				list = append(list, el.text)
			default:
				return nil, p.errUnexpected(el)
			}
		}
	default:
		return nil, p.errUnexpected(tok)
	}
}

// castNumber prefers int over float, mirroring how parameter values are
// coerced everywhere else in the system.
func castNumber(text string) any {
	if !strings.ContainsAny(text, ".eE") {
		if n, err := strconv.Atoi(text); err == nil {
			return n
		}
	}
	f, _ := strconv.ParseFloat(text, 64)
	return f
}

// endOfLine requires the statement to stop at a newline or the end of
// input.
func (p *parser) endOfLine() *ParseError {
	tok := p.cur()
	if tok.kind == tokNewline || tok.kind == tokEOF {
		return nil
	}
	return p.errUnexpected(tok)
}
