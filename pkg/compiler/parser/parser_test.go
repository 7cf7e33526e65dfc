package parser_test

import (
	"strings"
	"testing"

	"github.com/minic-lang/minic/pkg/compiler/ast"
	"github.com/minic-lang/minic/pkg/compiler/lexer"
	"github.com/minic-lang/minic/pkg/compiler/parser"
)

func parse(t *testing.T, src string, profile parser.Profile) (*ast.Program, error) {
	t.Helper()
	toks, err := lexer.Scan([]byte(src))
	if err != nil {
		t.Fatalf("Scan(%q) error = %v", src, err)
	}
	return parser.New(toks, profile).Parse()
}

func TestAcceptPrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "declaration and assignment",
			src:  "int x; float y; x = 5; y = 3.14;",
		},
		{
			name: "arithmetic precedence",
			src:  "int x; x = 5 + 3 * 2;",
		},
		{
			name: "comparison with boolean",
			src:  "bool val; val = (5 > 3) == true;",
		},
		{
			name: "if else",
			src:  "int x; if (x > 10) { x = 0; } else { x = 1; }",
		},
		{
			name: "while loop",
			src:  "int i; i = 0; while (i < 10) { i = i + 1; }",
		},
		{
			name: "for loop with assignment init",
			src:  "int i; for (i = 0; i < 10; i = i + 1) h = 5;",
		},
		{
			name: "for loop with declaration init",
			src:  "for (int i; i < 10; i = i + 1) { x = i; }",
		},
		{
			name: "for loop without condition",
			src:  "for (i = 0; ; i = i + 1) { x = i; }",
		},
		{
			name: "nested blocks",
			src:  "{ int x; x = 1; { x = 2; } }",
		},
		{
			name: "return statement",
			src:  "int f() { return x + 1; }",
		},
		{
			name: "function definition with parameters",
			src:  "int add(int a, int b) { return a + b; }",
		},
		{
			name: "function definition without parameters",
			src:  "void main() { x = 1; }",
		},
		{
			name: "logical and unary operators",
			src:  "bool ok; ok = !done && x <= 3 || y != 0;",
		},
		{
			name: "chained unary prefixes",
			src:  "x = - - 5 + !ok;",
		},
		{
			name: "bare expression statement",
			src:  "(1 + 2) * 3; true; 42;",
		},
		{
			name: "comments are ignored",
			src:  "int x; // declare\n/* assign */ x = 1;",
		},
		{
			name: "empty input",
			src:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parse(t, tt.src, parser.FullProfile()); err != nil {
				t.Errorf("Parse() error = %v, want accept", err)
			}
		})
	}
}

func TestRejectPrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "missing semicolon after declaration",
			src:  "int x if (x > 10) { x = 0; }",
			want: "expected ';'",
		},
		{
			name: "missing semicolon at end of input",
			src:  "int x",
			want: "end of input: expected ';'",
		},
		{
			name: "bad expression operand",
			src:  "x = 5 + * 3;",
			want: `expected identifier, number, boolean literal, or '(', found "*"`,
		},
		{
			name: "missing closing brace",
			src:  "if (true) { x = 1;",
			want: "end of input: expected '}'",
		},
		{
			name: "spurious closing brace",
			src:  "x = 1; }",
			want: "unexpected tokens after valid program",
		},
		{
			name: "invalid statement start",
			src:  "int x; % y;",
			want: "invalid statement start",
		},
		{
			name: "assignment without operator",
			src:  "x 5;",
			want: "expected '='",
		},
		{
			name: "unclosed parenthesis in condition",
			src:  "while (x < 10 { x = 1; }",
			want: "expected ')'",
		},
		{
			name: "function parameter without type",
			src:  "int add(a, int b) { return a; }",
			want: "expected parameter type",
		},
		{
			name: "for loop missing separator",
			src:  "for (i = 0 i < 10; i = i + 1) x = 1;",
			want: "expected ';'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.src, parser.FullProfile())
			if err == nil {
				t.Fatal("Parse() accepted, want reject")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := parse(t, "x = 5 +\n   * 3;", parser.FullProfile())
	if err == nil {
		t.Fatal("Parse() accepted, want reject")
	}
	serr, ok := err.(*parser.SyntaxError)
	if !ok {
		t.Fatalf("error type = %T, want *parser.SyntaxError", err)
	}
	if serr.Token == nil {
		t.Fatal("SyntaxError.Token = nil, want offending token")
	}
	if serr.Token.Line != 2 || serr.Token.Column != 4 {
		t.Errorf("offending token at %d:%d, want 2:4", serr.Token.Line, serr.Token.Column)
	}
}

func TestEndOfInputErrorHasNoPosition(t *testing.T) {
	_, err := parse(t, "int x", parser.FullProfile())
	if err == nil {
		t.Fatal("Parse() accepted, want reject")
	}
	serr, ok := err.(*parser.SyntaxError)
	if !ok {
		t.Fatalf("error type = %T, want *parser.SyntaxError", err)
	}
	if serr.Token != nil {
		t.Errorf("SyntaxError.Token = %v, want nil at end of input", serr.Token)
	}
}

// assignedValue parses src with the full grammar and returns the value
// expression of the single assignment statement.
func assignedValue(t *testing.T, src string) ast.Expr {
	t.Helper()
	prog, err := parse(t, src, parser.FullProfile())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(prog.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Stmts))
	}
	assign, ok := prog.Stmts[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("statement type = %T, want *ast.Assignment", prog.Stmts[0])
	}
	return assign.Value
}

func TestOperatorPrecedence(t *testing.T) {
	root, ok := assignedValue(t, "x = 5 + 3 * 2;").(*ast.BinaryOp)
	if !ok || root.Op.Text != "+" {
		t.Fatalf("root = %#v, want BinaryOp +", root)
	}
	right, ok := root.Right.(*ast.BinaryOp)
	if !ok || right.Op.Text != "*" {
		t.Fatalf("right child = %#v, want BinaryOp *", root.Right)
	}
}

func TestLeftAssociativity(t *testing.T) {
	root, ok := assignedValue(t, "x = a - b - c;").(*ast.BinaryOp)
	if !ok || root.Op.Text != "-" {
		t.Fatalf("root = %#v, want BinaryOp -", root)
	}
	left, ok := root.Left.(*ast.BinaryOp)
	if !ok || left.Op.Text != "-" {
		t.Fatalf("left child = %#v, want BinaryOp - (left-associative fold)", root.Left)
	}
	if right, ok := root.Right.(*ast.Identifier); !ok || right.Token.Text != "c" {
		t.Errorf("right child = %#v, want identifier c", root.Right)
	}
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	root, ok := assignedValue(t, "x = (5 + 3) * 2;").(*ast.BinaryOp)
	if !ok || root.Op.Text != "*" {
		t.Fatalf("root = %#v, want BinaryOp *", root)
	}
	left, ok := root.Left.(*ast.BinaryOp)
	if !ok || left.Op.Text != "+" {
		t.Fatalf("left child = %#v, want BinaryOp +", root.Left)
	}
}

func TestDanglingElseBindsToNearestIf(t *testing.T) {
	prog, err := parse(t, "if (a) if (b) x = 1; else x = 2;", parser.FullProfile())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	outer, ok := prog.Stmts[0].(*ast.If)
	if !ok {
		t.Fatalf("statement type = %T, want *ast.If", prog.Stmts[0])
	}
	if outer.Else != nil {
		t.Error("outer if has an else branch, want none")
	}
	inner, ok := outer.Then.(*ast.If)
	if !ok {
		t.Fatalf("outer then branch type = %T, want *ast.If", outer.Then)
	}
	if inner.Else == nil {
		t.Error("inner if has no else branch, want the dangling else")
	}
}

func TestForDeclarationInit(t *testing.T) {
	prog, err := parse(t, "for (int i; i < 10; i = i + 1) x = i;", parser.FullProfile())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	forStmt, ok := prog.Stmts[0].(*ast.For)
	if !ok {
		t.Fatalf("statement type = %T, want *ast.For", prog.Stmts[0])
	}
	decl, ok := forStmt.Init.(*ast.Declaration)
	if !ok {
		t.Fatalf("init type = %T, want *ast.Declaration", forStmt.Init)
	}
	if decl.Type.Text != "int" || decl.Name.Text != "i" {
		t.Errorf("init declaration = %s %s, want int i", decl.Type.Text, decl.Name.Text)
	}
}

func TestParseConsumesAllTokens(t *testing.T) {
	// A prefix that is itself valid must not be accepted when trailing
	// tokens remain.
	_, err := parse(t, "{ x = 1; } }", parser.FullProfile())
	if err == nil {
		t.Fatal("Parse() accepted input with trailing tokens")
	}
	if !strings.Contains(err.Error(), "unexpected tokens after valid program") {
		t.Errorf("Parse() error = %q, want trailing-token diagnostic", err)
	}
}
