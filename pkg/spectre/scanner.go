package spectre

import "strings"

type tokKind int

const (
	tokEOF tokKind = iota
	tokNewline
	tokIdent
	tokNumber
	tokString
	tokLParen
	tokRParen
	tokEquals
	tokLBracket
	tokRBracket
)

type token struct {
	kind tokKind
	text string // raw source text; for tokString, without the quotes
	pos  Pos
}

// scanner turns netlist source into tokens. Newlines are significant
// because the grammar is line-oriented; runs of blank lines collapse
// into a single newline token. Comments run from "//" to end of line.
type scanner struct {
	src   string
	lines []string
	off   int
	line  int
	col   int
}

func newScanner(src string) *scanner {
	return &scanner{src: src, lines: strings.Split(src, "\n"), line: 1, col: 1}
}

// contextLine returns the source line at the given 1-based position,
// for error reporting.
func (s *scanner) contextLine(line int) string {
	if line < 1 || line > len(s.lines) {
		return ""
	}
	return strings.TrimRight(s.lines[line-1], "\r")
}

func (s *scanner) peek() byte {
	if s.off >= len(s.src) {
		return 0
	}
	return s.src[s.off]
}

func (s *scanner) advance() byte {
	ch := s.src[s.off]
	s.off++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch
}

func isIdentChar(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return true
	case ch == '_', ch == '.', ch == '!', ch == ':':
		return true
	}
	return false
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

// next returns the following token, or a *ParseError on a character
// that starts no token.
func (s *scanner) next() (token, *ParseError) {
	for {
		// Skip horizontal whitespace and comments.
		for s.off < len(s.src) {
			ch := s.peek()
			if ch == ' ' || ch == '\t' || ch == '\r' {
				s.advance()
				continue
			}
			if ch == '/' && s.off+1 < len(s.src) && s.src[s.off+1] == '/' {
				for s.off < len(s.src) && s.peek() != '\n' {
					s.advance()
				}
				continue
			}
			break
		}

		if s.off >= len(s.src) {
			return token{kind: tokEOF, pos: Pos{Line: s.line, Col: s.col}}, nil
		}

		pos := Pos{Line: s.line, Col: s.col}
		ch := s.peek()

		switch {
		case ch == '\n':
			for s.off < len(s.src) {
				c := s.peek()
				if c == '\n' || c == ' ' || c == '\t' || c == '\r' {
					s.advance()
					continue
				}
				break
			}
			return token{kind: tokNewline, text: "\n", pos: pos}, nil
		case ch == '(':
			s.advance()
			return token{kind: tokLParen, text: "(", pos: pos}, nil
		case ch == ')':
			s.advance()
			return token{kind: tokRParen, text: ")", pos: pos}, nil
		case ch == '=':
			s.advance()
			return token{kind: tokEquals, text: "=", pos: pos}, nil
		case ch == '[':
			s.advance()
			return token{kind: tokLBracket, text: "[", pos: pos}, nil
		case ch == ']':
			s.advance()
			return token{kind: tokRBracket, text: "]", pos: pos}, nil
		case ch == '"':
			return s.scanString(pos)
		case isDigit(ch), ch == '-' && s.off+1 < len(s.src) && isDigit(s.src[s.off+1]):
			return s.scanNumber(pos), nil
		case isIdentChar(ch):
			return s.scanIdent(pos), nil
		default:
			return token{}, &ParseError{
				Kind:    UnexpectedChar,
				Line:    pos.Line,
				Col:     pos.Col,
				Text:    string(ch),
				Context: s.contextLine(pos.Line),
			}
		}
	}
}

func (s *scanner) scanString(pos Pos) (token, *ParseError) {
	s.advance() // opening quote
	start := s.off
	for s.off < len(s.src) {
		ch := s.peek()
		if ch == '\n' {
			break
		}
		if ch == '"' {
			text := s.src[start:s.off]
			s.advance()
			return token{kind: tokString, text: text, pos: pos}, nil
		}
		s.advance()
	}
	return token{}, &ParseError{
		Kind:    UnexpectedEOF,
		Line:    s.line,
		Col:     s.col,
		Context: s.contextLine(pos.Line),
	}
}

// scanNumber consumes a numeric token. A number that runs into ident
// characters (a node token such as "2n" or "0v") degrades to an ident
// with the full raw text, so node references survive verbatim.
func (s *scanner) scanNumber(pos Pos) token {
	start := s.off
	if s.peek() == '-' {
		s.advance()
	}
	seenExp := false
	for s.off < len(s.src) {
		ch := s.peek()
		if isDigit(ch) || ch == '.' {
			s.advance()
			continue
		}
		if (ch == 'e' || ch == 'E') && !seenExp && s.off+1 < len(s.src) &&
			(isDigit(s.src[s.off+1]) || s.src[s.off+1] == '-' || s.src[s.off+1] == '+') {
			seenExp = true
			s.advance()
			s.advance()
			continue
		}
		break
	}
	kind := tokNumber
	for s.off < len(s.src) && isIdentChar(s.peek()) {
		kind = tokIdent
		s.advance()
	}
	return token{kind: kind, text: s.src[start:s.off], pos: pos}
}

func (s *scanner) scanIdent(pos Pos) token {
	start := s.off
	for s.off < len(s.src) && isIdentChar(s.peek()) {
		s.advance()
	}
	return token{kind: tokIdent, text: s.src[start:s.off], pos: pos}
}
