package token_test

import (
	"fmt"
	"testing"

	"github.com/minic-lang/minic/pkg/compiler/token"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  token.Category
		want string
	}{
		{token.Keyword, "Keyword"},
		{token.Identifier, "Identifier"},
		{token.NumericConstant, "NumericConstant"},
		{token.Operator, "Operator"},
		{token.SpecialCharacter, "SpecialCharacter"},
		{token.Comment, "Comment"},
		{token.BooleanLiteral, "BooleanLiteral"},
		{token.Category(200), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestTokenInDiagnostics(t *testing.T) {
	// Diagnostics interpolate the category with %s; make sure a Token
	// renders its parts the way error messages rely on.
	tok := token.Token{Category: token.Keyword, Text: "if", Line: 3, Column: 7}
	got := fmt.Sprintf("found %q (%s)", tok.Text, tok.Category)
	if got != `found "if" (Keyword)` {
		t.Errorf("rendered %q", got)
	}
}
