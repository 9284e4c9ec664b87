package ast

import "fmt"

// IntLiteral represents an integer literal.
type IntLiteral struct {
	ExprBase

	Value uint64
}

// BoolLiteral represents a boolean literal.
type BoolLiteral struct {
	ExprBase

	Value bool
}

// StringLiteral represents a string literal.  The value is already unescaped.
type StringLiteral struct {
	ExprBase

	Value string
}

// Identifier represents a named value used in an expression.
type Identifier struct {
	ExprBase

	// The name of the identifier.
	Name string

	// Whether the variable is explicitly taken by reference.
	ByRef bool
}

// Call represents a function call.
type Call struct {
	ExprBase

	// The name of the function being called.
	Func string

	// The arguments to the call.
	Args []ASTExpr
}

// -----------------------------------------------------------------------------

// Oper is a binary operator kind.  It must be one of the enumerated operator
// kinds below.
type Oper int

// Enumeration of arithmetic operators.
const (
	OperAdd Oper = iota
	OperSub
	OperMul
	OperDiv
)

// Enumeration of comparison operators.
const (
	OperEq Oper = iota + 16
	OperNotEq
	OperLt
	OperLtEq
	OperGt
	OperGtEq
)

var operSymbols = map[Oper]string{
	OperAdd:   "+",
	OperSub:   "-",
	OperMul:   "*",
	OperDiv:   "/",
	OperEq:    "==",
	OperNotEq: "!=",
	OperLt:    "<",
	OperLtEq:  "<=",
	OperGt:    ">",
	OperGtEq:  ">=",
}

func (op Oper) String() string {
	if sym, ok := operSymbols[op]; ok {
		return sym
	}

	return fmt.Sprintf("oper(%d)", int(op))
}

// BinaryOp represents a binary arithmetic operation.
type BinaryOp struct {
	ExprBase

	Op       Oper
	LHS, RHS ASTExpr
}

// Comparison represents a binary comparison.  Its result is always a boolean.
type Comparison struct {
	ExprBase

	Op       Oper
	LHS, RHS ASTExpr
}
