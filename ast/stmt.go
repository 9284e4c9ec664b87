package ast

import "petalc/types"

// VarDecl represents a variable declaration.
type VarDecl struct {
	ASTBase

	// The name of the declared variable.
	Name string

	// The declared type of the variable.
	Type types.Type

	// The expression initializing the variable.
	Initializer ASTExpr
}

// Assignment represents the reassignment of an existing variable.
type Assignment struct {
	ASTBase

	// The name of the variable being assigned to.
	Name string

	// The value being assigned.
	Value ASTExpr
}

// ReturnStmt represents a return statement.
type ReturnStmt struct {
	ASTBase

	// The value being returned.  It is nil for an empty return.
	Value ASTExpr
}

// CallStmt represents a function call evaluated only for its effect.
type CallStmt struct {
	ASTBase

	// The call being evaluated.
	Call *Call
}
