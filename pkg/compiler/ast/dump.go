package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented rendering of the tree rooted at n.
func Dump(w io.Writer, n Node) {
	dump(w, n, 0)
}

func dump(w io.Writer, n Node, depth int) {
	if n == nil {
		return
	}
	pad := strings.Repeat("  ", depth)

	switch n := n.(type) {
	case *Program:
		fmt.Fprintf(w, "%sProgram\n", pad)
		for _, s := range n.Stmts {
			dump(w, s, depth+1)
		}
	case *Block:
		fmt.Fprintf(w, "%sBlock\n", pad)
		for _, s := range n.Stmts {
			dump(w, s, depth+1)
		}
	case *Declaration:
		fmt.Fprintf(w, "%sDeclaration %s %s\n", pad, n.Type.Text, n.Name.Text)
	case *FunctionDef:
		fmt.Fprintf(w, "%sFunctionDef %s %s(", pad, n.Type.Text, n.Name.Text)
		for i, p := range n.Params {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%s %s", p.Type.Text, p.Name.Text)
		}
		fmt.Fprintln(w, ")")
		dump(w, n.Body, depth+1)
	case *Assignment:
		fmt.Fprintf(w, "%sAssignment %s\n", pad, n.Name.Text)
		dump(w, n.Value, depth+1)
	case *If:
		fmt.Fprintf(w, "%sIf\n", pad)
		dump(w, n.Cond, depth+1)
		dump(w, n.Then, depth+1)
		if n.Else != nil {
			fmt.Fprintf(w, "%sElse\n", pad)
			dump(w, n.Else, depth+1)
		}
	case *While:
		fmt.Fprintf(w, "%sWhile\n", pad)
		dump(w, n.Cond, depth+1)
		dump(w, n.Body, depth+1)
	case *For:
		fmt.Fprintf(w, "%sFor\n", pad)
		dump(w, n.Init, depth+1)
		dump(w, n.Cond, depth+1)
		dump(w, n.Update, depth+1)
		dump(w, n.Body, depth+1)
	case *Return:
		fmt.Fprintf(w, "%sReturn\n", pad)
		dump(w, n.Value, depth+1)
	case *ExpressionStatement:
		fmt.Fprintf(w, "%sExpressionStatement\n", pad)
		dump(w, n.X, depth+1)
	case *BinaryOp:
		fmt.Fprintf(w, "%sBinaryOp %s\n", pad, n.Op.Text)
		dump(w, n.Left, depth+1)
		dump(w, n.Right, depth+1)
	case *UnaryOp:
		fmt.Fprintf(w, "%sUnaryOp %s\n", pad, n.Op.Text)
		dump(w, n.Operand, depth+1)
	case *Identifier:
		fmt.Fprintf(w, "%sIdentifier %s\n", pad, n.Token.Text)
	case *NumberLiteral:
		fmt.Fprintf(w, "%sNumber %s\n", pad, n.Token.Text)
	case *BooleanLiteral:
		fmt.Fprintf(w, "%sBoolean %s\n", pad, n.Token.Text)
	}
}
