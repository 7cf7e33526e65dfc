package parser

// Profile selects which productions the grammar admits. The same parse
// engine serves every profile; a disabled option simply removes the
// corresponding branch from the grammar.
type Profile struct {
	// AllowLogicalOperators enables the '||' and '&&' precedence levels.
	AllowLogicalOperators bool
	// AllowUnaryPrefixes enables prefix '+', '-' and '!', right-recursive.
	AllowUnaryPrefixes bool
	// AllowBooleanPrimary enables 'true' and 'false' as primary expressions.
	AllowBooleanPrimary bool
	// AllowFunctionDefinitions promotes a declaration to a function
	// definition when '(' follows the declared name.
	AllowFunctionDefinitions bool
	// AllowExpressionStatements enables bare expression statements
	// terminated by ';'.
	AllowExpressionStatements bool
	// CollapseComparisons merges the equality and relational operators
	// into a single precedence tier.
	CollapseComparisons bool
	// PermissiveForUpdate lets the for-loop update clause be a bare
	// expression when its lookahead is not an identifier, or be empty.
	// When off, the update clause must be an assignment.
	PermissiveForUpdate bool
}

// FullProfile is the complete grammar: logical and unary operators,
// boolean primaries, function definitions, expression statements.
func FullProfile() Profile {
	return Profile{
		AllowLogicalOperators:     true,
		AllowUnaryPrefixes:        true,
		AllowBooleanPrimary:       true,
		AllowFunctionDefinitions:  true,
		AllowExpressionStatements: true,
		PermissiveForUpdate:       true,
	}
}

// ReducedProfile is the restricted grammar: no logical or unary
// operators, no boolean primaries, no function definitions, and a single
// collapsed comparison tier. The permissive for-update clause is kept as
// a deliberate quirk of this grammar.
func ReducedProfile() Profile {
	return Profile{
		CollapseComparisons: true,
		PermissiveForUpdate: true,
	}
}

// binaryLevels returns the operator sets of the precedence chain,
// lowest precedence first.
func (p Profile) binaryLevels() []map[string]bool {
	var levels []map[string]bool
	if p.AllowLogicalOperators {
		levels = append(levels,
			map[string]bool{"||": true},
			map[string]bool{"&&": true},
		)
	}
	if p.CollapseComparisons {
		levels = append(levels,
			map[string]bool{"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true},
		)
	} else {
		levels = append(levels,
			map[string]bool{"==": true, "!=": true},
			map[string]bool{"<": true, ">": true, "<=": true, ">=": true},
		)
	}
	levels = append(levels,
		map[string]bool{"+": true, "-": true},
		map[string]bool{"*": true, "/": true, "%": true},
	)
	return levels
}
