package spectre

import "fmt"

// ErrKind classifies a parse failure.
type ErrKind int

const (
	// UnexpectedEOF means the input ended inside an unfinished
	// construct, such as a subckt block without its ends line.
	UnexpectedEOF ErrKind = iota
	// UnexpectedToken means a well-formed token appeared where the
	// grammar does not allow it.
	UnexpectedToken
	// UnexpectedChar means the scanner hit a character that starts no
	// token.
	UnexpectedChar
)

// ParseError is the single failure type of the reader. It carries the
// failure kind, the 1-based source position, the offending text, and
// the full source line for context. Parsing never returns a partial
// circuit alongside one.
type ParseError struct {
	Kind    ErrKind
	Line    int
	Col     int
	Text    string // offending token or character, "" at EOF
	Context string // the source line the failure occurred on
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedEOF:
		return fmt.Sprintf("unexpected end of input at line %d:%d", e.Line, e.Col)
	case UnexpectedChar:
		return fmt.Sprintf("unexpected character %q at line %d:%d", e.Text, e.Line, e.Col)
	default:
		return fmt.Sprintf("unexpected %q at line %d:%d", e.Text, e.Line, e.Col)
	}
}
