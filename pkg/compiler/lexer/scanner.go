package lexer

import (
	"fmt"

	"github.com/minic-lang/minic/pkg/compiler/token"
)

var keywords = map[string]bool{
	"int": true, "float": true, "double": true, "bool": true,
	"char": true, "string": true, "void": true,
	"if": true, "else": true, "while": true, "for": true, "return": true,
}

// twoCharOps must be tried before their one-character prefixes.
var twoCharOps = []string{"||", "&&", "==", "!=", "<=", ">="}

const oneCharOps = "<>+-*/%=!"

const specialChars = "(){};,"

// Scanner performs lexical analysis on minic source.
type Scanner struct {
	source    []byte
	cursor    int
	line      int
	lineStart int
}

// New creates a scanner for the given source.
func New(source []byte) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Scan tokenizes the given source. Comment tokens are included;
// callers that feed a parser filter them out first.
func Scan(source []byte) ([]token.Token, error) {
	return New(source).Scan()
}

// Scan consumes the source to the end and returns every token.
func (s *Scanner) Scan() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// next returns the next token, or ok=false at end of input.
func (s *Scanner) next() (tok token.Token, ok bool, err error) {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return token.Token{}, false, nil
	}

	line, col := s.line, s.column()
	ch := s.source[s.cursor]

	if ch == '/' && (s.peek() == '/' || s.peek() == '*') {
		text, err := s.scanComment()
		if err != nil {
			return token.Token{}, false, err
		}
		return token.Token{Category: token.Comment, Text: text, Line: line, Column: col}, true, nil
	}

	if isDigit(ch) {
		return token.Token{Category: token.NumericConstant, Text: s.scanNumber(), Line: line, Column: col}, true, nil
	}

	if isAlpha(ch) {
		text := s.scanIdentifier()
		cat := token.Identifier
		switch {
		case text == "true" || text == "false":
			cat = token.BooleanLiteral
		case keywords[text]:
			cat = token.Keyword
		}
		return token.Token{Category: cat, Text: text, Line: line, Column: col}, true, nil
	}

	for _, op := range twoCharOps {
		if ch == op[0] && s.peek() == op[1] {
			s.cursor += 2
			return token.Token{Category: token.Operator, Text: op, Line: line, Column: col}, true, nil
		}
	}
	for i := 0; i < len(oneCharOps); i++ {
		if ch == oneCharOps[i] {
			s.cursor++
			return token.Token{Category: token.Operator, Text: string(ch), Line: line, Column: col}, true, nil
		}
	}
	for i := 0; i < len(specialChars); i++ {
		if ch == specialChars[i] {
			s.cursor++
			return token.Token{Category: token.SpecialCharacter, Text: string(ch), Line: line, Column: col}, true, nil
		}
	}

	return token.Token{}, false, fmt.Errorf("line %d, column %d: unexpected character %q", line, col, ch)
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		switch s.source[s.cursor] {
		case ' ', '\t', '\r':
			s.cursor++
		case '\n':
			s.cursor++
			s.line++
			s.lineStart = s.cursor
		default:
			return
		}
	}
}

func (s *Scanner) scanComment() (string, error) {
	start := s.cursor
	if s.peek() == '/' {
		for s.cursor < len(s.source) && s.source[s.cursor] != '\n' {
			s.cursor++
		}
		return string(s.source[start:s.cursor]), nil
	}

	line, col := s.line, s.column()
	s.cursor += 2 // skip /*
	for s.cursor < len(s.source) {
		if s.source[s.cursor] == '\n' {
			s.line++
			s.lineStart = s.cursor + 1
		} else if s.source[s.cursor] == '*' && s.peek() == '/' {
			s.cursor += 2
			return string(s.source[start:s.cursor]), nil
		}
		s.cursor++
	}
	return "", fmt.Errorf("line %d, column %d: unterminated block comment", line, col)
}

func (s *Scanner) scanNumber() string {
	start := s.cursor
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.cursor++
	}
	// A single fractional part; "3." without a following digit stays "3".
	if s.cursor < len(s.source) && s.source[s.cursor] == '.' && isDigit(s.peek()) {
		s.cursor++
		for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
			s.cursor++
		}
	}
	return string(s.source[start:s.cursor])
}

func (s *Scanner) scanIdentifier() string {
	start := s.cursor
	for s.cursor < len(s.source) && (isAlpha(s.source[s.cursor]) || isDigit(s.source[s.cursor])) {
		s.cursor++
	}
	return string(s.source[start:s.cursor])
}

func (s *Scanner) column() int {
	return s.cursor - s.lineStart + 1
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
