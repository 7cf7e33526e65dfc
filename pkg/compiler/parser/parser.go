package parser

import (
	"github.com/minic-lang/minic/pkg/compiler/ast"
	"github.com/minic-lang/minic/pkg/compiler/token"
)

var typeKeywords = map[string]bool{
	"int": true, "float": true, "double": true, "bool": true,
	"char": true, "string": true, "void": true,
}

// Parser validates a token sequence against the grammar selected by its
// Profile and builds the syntax tree. One Parser handles exactly one
// sequence; the first mismatch anywhere aborts the whole parse.
type Parser struct {
	tokens  []token.Token
	pos     int
	profile Profile
	levels  []map[string]bool
}

// New creates a parser over the given tokens. Comment tokens are
// dropped up front; the grammar never sees them.
func New(tokens []token.Token, profile Profile) *Parser {
	filtered := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Category != token.Comment {
			filtered = append(filtered, t)
		}
	}
	return &Parser{
		tokens:  filtered,
		profile: profile,
		levels:  profile.binaryLevels(),
	}
}

// Parse runs the top-level production and requires that every token was
// consumed.
func (p *Parser) Parse() (*ast.Program, error) {
	stmts, err := p.statementList()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok != nil {
		return nil, errAt(tok, "unexpected tokens after valid program")
	}
	return &ast.Program{Stmts: stmts}, nil
}

// peek returns the current token without consuming it, or nil at end of
// input.
func (p *Parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

// advance moves the cursor forward one token. It is the only operation
// that mutates the cursor; there is no backtracking.
func (p *Parser) advance() {
	p.pos++
}

// eat consumes the current token if it has the given category and, when
// text is non-empty, the given text. On mismatch it fails without
// consuming.
func (p *Parser) eat(cat token.Category, text string) (token.Token, error) {
	tok := p.peek()
	if tok != nil && tok.Category == cat && (text == "" || tok.Text == text) {
		p.advance()
		return *tok, nil
	}
	if text != "" {
		return token.Token{}, errAt(tok, "expected '%s'", text)
	}
	return token.Token{}, errAt(tok, "expected %s", cat)
}

// at reports whether the current token matches category and text.
func (p *Parser) at(cat token.Category, text string) bool {
	tok := p.peek()
	return tok != nil && tok.Category == cat && tok.Text == text
}

// statementList parses statements until '}' or end of input, leaving
// the terminator for the caller.
func (p *Parser) statementList() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for p.peek() != nil && !p.at(token.SpecialCharacter, "}") {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	tok := p.peek()
	if tok == nil {
		return nil, errAt(nil, "expected a statement")
	}

	if tok.Category == token.SpecialCharacter && tok.Text == "{" {
		return p.block()
	}

	if tok.Category == token.Keyword {
		switch tok.Text {
		case "if":
			return p.ifStatement()
		case "while":
			return p.whileStatement()
		case "for":
			return p.forStatement()
		case "return":
			return p.returnStatement()
		}
		if typeKeywords[tok.Text] {
			return p.declarationOrFunction()
		}
	}

	if tok.Category == token.Identifier {
		stmt, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(token.SpecialCharacter, ";"); err != nil {
			return nil, err
		}
		return stmt, nil
	}

	if p.profile.AllowExpressionStatements && p.isExpressionStart(tok) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(token.SpecialCharacter, ";"); err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{X: expr}, nil
	}

	return nil, errAt(tok, "invalid statement start")
}

func (p *Parser) isExpressionStart(tok *token.Token) bool {
	switch tok.Category {
	case token.NumericConstant:
		return true
	case token.BooleanLiteral:
		return p.profile.AllowBooleanPrimary
	case token.SpecialCharacter:
		return tok.Text == "("
	}
	return false
}

func (p *Parser) block() (ast.Stmt, error) {
	lbrace, err := p.eat(token.SpecialCharacter, "{")
	if err != nil {
		return nil, err
	}
	stmts, err := p.statementList()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.SpecialCharacter, "}"); err != nil {
		return nil, err
	}
	return &ast.Block{Token: lbrace, Stmts: stmts}, nil
}

// declarationOrFunction parses a type keyword and an identifier. With
// function definitions enabled, a following '(' turns the construct
// into a function definition; otherwise it is a variable declaration
// terminated by ';'.
func (p *Parser) declarationOrFunction() (ast.Stmt, error) {
	typeTok, err := p.eat(token.Keyword, "")
	if err != nil {
		return nil, err
	}
	name, err := p.eat(token.Identifier, "")
	if err != nil {
		return nil, err
	}

	if p.profile.AllowFunctionDefinitions && p.at(token.SpecialCharacter, "(") {
		return p.functionDefinition(typeTok, name)
	}

	if _, err := p.eat(token.SpecialCharacter, ";"); err != nil {
		return nil, err
	}
	return &ast.Declaration{Type: typeTok, Name: name}, nil
}

func (p *Parser) functionDefinition(typeTok, name token.Token) (ast.Stmt, error) {
	p.advance() // the '('

	var params []ast.Param
	if !p.at(token.SpecialCharacter, ")") {
		for {
			ptype := p.peek()
			if ptype == nil || ptype.Category != token.Keyword || !typeKeywords[ptype.Text] {
				return nil, errAt(ptype, "expected parameter type")
			}
			p.advance()
			pname, err := p.eat(token.Identifier, "")
			if err != nil {
				return nil, err
			}
			params = append(params, ast.Param{Type: *ptype, Name: pname})
			if !p.at(token.SpecialCharacter, ",") {
				break
			}
			p.advance()
		}
	}
	if _, err := p.eat(token.SpecialCharacter, ")"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDef{Type: typeTok, Name: name, Params: params, Body: body}, nil
}

func (p *Parser) assignment() (ast.Stmt, error) {
	name, err := p.eat(token.Identifier, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.Operator, "="); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Name: name, Value: value}, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	ifTok, err := p.eat(token.Keyword, "if")
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.SpecialCharacter, "("); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.SpecialCharacter, ")"); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	// An 'else' here binds to this, the nearest unmatched 'if'.
	var elseStmt ast.Stmt
	if p.at(token.Keyword, "else") {
		p.advance()
		elseStmt, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Token: ifTok, Cond: cond, Then: then, Else: elseStmt}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	whileTok, err := p.eat(token.Keyword, "while")
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.SpecialCharacter, "("); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.SpecialCharacter, ")"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Token: whileTok, Cond: cond, Body: body}, nil
}

func (p *Parser) forStatement() (ast.Stmt, error) {
	forTok, err := p.eat(token.Keyword, "for")
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.SpecialCharacter, "("); err != nil {
		return nil, err
	}

	// Init: a declaration when the lookahead is a type keyword, else an
	// assignment. The declaration's ';' is the clause separator.
	var init ast.Stmt
	if tok := p.peek(); tok != nil && tok.Category == token.Keyword && typeKeywords[tok.Text] {
		typeTok := *tok
		p.advance()
		name, err := p.eat(token.Identifier, "")
		if err != nil {
			return nil, err
		}
		init = &ast.Declaration{Type: typeTok, Name: name}
	} else {
		init, err = p.assignment()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(token.SpecialCharacter, ";"); err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !p.at(token.SpecialCharacter, ";") {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(token.SpecialCharacter, ";"); err != nil {
		return nil, err
	}

	update, err := p.forUpdate()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.SpecialCharacter, ")"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.For{Token: forTok, Init: init, Cond: cond, Update: update, Body: body}, nil
}

func (p *Parser) forUpdate() (ast.Stmt, error) {
	if !p.profile.PermissiveForUpdate {
		return p.assignment()
	}
	if p.at(token.SpecialCharacter, ")") {
		return nil, nil
	}
	if tok := p.peek(); tok != nil && tok.Category == token.Identifier {
		return p.assignment()
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{X: expr}, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	retTok, err := p.eat(token.Keyword, "return")
	if err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.SpecialCharacter, ";"); err != nil {
		return nil, err
	}
	return &ast.Return{Token: retTok, Value: value}, nil
}

// expression parses the precedence chain, lowest level first. The
// levels come from the profile; each binary level folds its operators
// left-associatively over the next higher level.
func (p *Parser) expression() (ast.Expr, error) {
	return p.binary(0)
}

func (p *Parser) binary(level int) (ast.Expr, error) {
	if level == len(p.levels) {
		return p.unary()
	}
	left, err := p.binary(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok == nil || tok.Category != token.Operator || !p.levels[level][tok.Text] {
			return left, nil
		}
		op := *tok
		p.advance()
		right, err := p.binary(level + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right}
	}
}

// unary parses prefix operators right-recursively, so chained prefixes
// like '--x' or '!!ok' nest naturally.
func (p *Parser) unary() (ast.Expr, error) {
	if p.profile.AllowUnaryPrefixes {
		if tok := p.peek(); tok != nil && tok.Category == token.Operator &&
			(tok.Text == "+" || tok.Text == "-" || tok.Text == "!") {
			op := *tok
			p.advance()
			operand, err := p.unary()
			if err != nil {
				return nil, err
			}
			return &ast.UnaryOp{Op: op, Operand: operand}, nil
		}
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expr, error) {
	tok := p.peek()
	if tok == nil {
		return nil, errAt(nil, "%s", p.primaryExpectation())
	}

	switch tok.Category {
	case token.Identifier:
		p.advance()
		return &ast.Identifier{Token: *tok}, nil
	case token.NumericConstant:
		p.advance()
		return &ast.NumberLiteral{Token: *tok}, nil
	case token.BooleanLiteral:
		if p.profile.AllowBooleanPrimary {
			p.advance()
			return &ast.BooleanLiteral{Token: *tok}, nil
		}
	case token.SpecialCharacter:
		if tok.Text == "(" {
			p.advance()
			expr, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.eat(token.SpecialCharacter, ")"); err != nil {
				return nil, err
			}
			return expr, nil
		}
	}
	return nil, errAt(tok, "%s", p.primaryExpectation())
}

func (p *Parser) primaryExpectation() string {
	if p.profile.AllowBooleanPrimary {
		return "expected identifier, number, boolean literal, or '('"
	}
	return "expected identifier, number, or '('"
}
