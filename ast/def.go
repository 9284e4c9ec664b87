package ast

import "petalc/types"

// FuncDef is an AST node for a function definition.
type FuncDef struct {
	ASTBase

	// The name of the function.
	Name string

	// Whether the function is only declared here and defined elsewhere.
	Extern bool

	// The parameters of the function in declaration order.
	Params []*FuncParam

	// The declared return type.  It is nil if no return type was given.
	ReturnType types.Type

	// The body of the function.  It is nil for extern functions.
	Body *Block
}

// FuncParam represents a single function parameter.
type FuncParam struct {
	ASTBase

	Name string
	Type types.Type
}

// ImportStmt represents a reference to another module.  It is accepted by the
// parser but not supported by later stages.
type ImportStmt struct {
	ASTBase

	Path string
}
