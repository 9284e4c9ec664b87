package ast

import (
	"petalc/report"
	"petalc/types"
)

// The abstract interface for all AST nodes.
type ASTNode interface {
	// The text span of the AST.
	Span() *report.TextSpan
}

// A utility base struct for all AST nodes.
type ASTBase struct {
	// The span over which the AST node occurs.
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}

// -----------------------------------------------------------------------------

// The abstract interface for all AST expressions.
type ASTExpr interface {
	ASTNode

	// The resolved type of the expression.  This is nil until the expression
	// has been resolved.
	Type() types.Type

	// SetType sets the resolved type of the expression.
	SetType(typ types.Type)
}

// A utility base struct for all AST expressions.
type ExprBase struct {
	ASTBase

	// The resolved type of the AST expression.
	typ types.Type
}

// NewExprBase creates a new expression base with the given span.
func NewExprBase(span *report.TextSpan) ExprBase {
	return ExprBase{ASTBase: ASTBase{span: span}}
}

func (eb *ExprBase) Type() types.Type {
	return eb.typ
}

func (eb *ExprBase) SetType(typ types.Type) {
	eb.typ = typ
}
