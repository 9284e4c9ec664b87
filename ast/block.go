package ast

// Block represents a list of AST statements.
type Block struct {
	ASTBase

	// The statements of the block.
	Stmts []ASTNode
}

// -----------------------------------------------------------------------------

// IfStmt represents a conditional block.  The block shares the scope of the
// enclosing function.
type IfStmt struct {
	ASTBase

	// The condition of the statement.
	Condition ASTExpr

	// The body of the statement.
	Body *Block
}
