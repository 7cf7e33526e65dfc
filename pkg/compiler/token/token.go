package token

// Category classifies a token by what the grammar may do with it.
type Category uint8

const (
	Keyword Category = iota
	Identifier
	NumericConstant
	Operator
	SpecialCharacter
	Comment
	BooleanLiteral
)

func (c Category) String() string {
	switch c {
	case Keyword:
		return "Keyword"
	case Identifier:
		return "Identifier"
	case NumericConstant:
		return "NumericConstant"
	case Operator:
		return "Operator"
	case SpecialCharacter:
		return "SpecialCharacter"
	case Comment:
		return "Comment"
	case BooleanLiteral:
		return "BooleanLiteral"
	}
	return "Unknown"
}

// Token is a single lexical unit. Line and Column are 1-based and
// refer to the first character of Text in the source.
type Token struct {
	Category Category
	Text     string
	Line     int
	Column   int
}
