package ast

import "github.com/minic-lang/minic/pkg/compiler/token"

// Node represents any node in the syntax tree.
type Node interface {
	Pos() token.Token
}

// Expr represents an expression that yields a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a standalone unit of execution.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root node.
type Program struct {
	Stmts []Stmt
}

func (p *Program) Pos() token.Token {
	if len(p.Stmts) > 0 {
		return p.Stmts[0].Pos()
	}
	return token.Token{}
}

// Block: '{' statements '}'
type Block struct {
	Token token.Token // the '{'
	Stmts []Stmt
}

func (b *Block) Pos() token.Token { return b.Token }
func (b *Block) stmtNode()        {}

// Declaration: TYPE NAME
type Declaration struct {
	Type token.Token
	Name token.Token
}

func (d *Declaration) Pos() token.Token { return d.Type }
func (d *Declaration) stmtNode()        {}

// Param is one entry of a function definition's parameter list.
type Param struct {
	Type token.Token
	Name token.Token
}

// FunctionDef: TYPE NAME '(' params ')' body
type FunctionDef struct {
	Type   token.Token
	Name   token.Token
	Params []Param
	Body   Stmt
}

func (f *FunctionDef) Pos() token.Token { return f.Type }
func (f *FunctionDef) stmtNode()        {}

// Assignment: NAME '=' value
type Assignment struct {
	Name  token.Token
	Value Expr
}

func (a *Assignment) Pos() token.Token { return a.Name }
func (a *Assignment) stmtNode()        {}

// If: 'if' '(' cond ')' then [ 'else' else ]
type If struct {
	Token token.Token // the 'if'
	Cond  Expr
	Then  Stmt
	Else  Stmt // nil when absent
}

func (i *If) Pos() token.Token { return i.Token }
func (i *If) stmtNode()        {}

// While: 'while' '(' cond ')' body
type While struct {
	Token token.Token
	Cond  Expr
	Body  Stmt
}

func (w *While) Pos() token.Token { return w.Token }
func (w *While) stmtNode()        {}

// For: 'for' '(' init ';' cond ';' update ')' body
type For struct {
	Token  token.Token
	Init   Stmt // Declaration or Assignment
	Cond   Expr // nil when absent
	Update Stmt // Assignment or ExpressionStatement, nil when absent
	Body   Stmt
}

func (f *For) Pos() token.Token { return f.Token }
func (f *For) stmtNode()        {}

// Return: 'return' value ';'
type Return struct {
	Token token.Token
	Value Expr
}

func (r *Return) Pos() token.Token { return r.Token }
func (r *Return) stmtNode()        {}

// ExpressionStatement: a bare expression terminated by ';'.
type ExpressionStatement struct {
	X Expr
}

func (e *ExpressionStatement) Pos() token.Token { return e.X.Pos() }
func (e *ExpressionStatement) stmtNode()        {}

// BinaryOp: left OP right
type BinaryOp struct {
	Op    token.Token
	Left  Expr
	Right Expr
}

func (b *BinaryOp) Pos() token.Token { return b.Op }
func (b *BinaryOp) exprNode()        {}

// UnaryOp: OP operand
type UnaryOp struct {
	Op      token.Token
	Operand Expr
}

func (u *UnaryOp) Pos() token.Token { return u.Op }
func (u *UnaryOp) exprNode()        {}

type Identifier struct {
	Token token.Token
}

func (i *Identifier) Pos() token.Token { return i.Token }
func (i *Identifier) exprNode()        {}

type NumberLiteral struct {
	Token token.Token
}

func (n *NumberLiteral) Pos() token.Token { return n.Token }
func (n *NumberLiteral) exprNode()        {}

type BooleanLiteral struct {
	Token token.Token
}

func (b *BooleanLiteral) Pos() token.Token { return b.Token }
func (b *BooleanLiteral) exprNode()        {}
