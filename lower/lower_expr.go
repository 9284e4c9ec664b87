package lower

import (
	"petalc/ast"
	"petalc/ir"
	"petalc/report"
)

// operands maps the arithmetic operators onto their IR operands.
var operands = map[ast.Oper]ir.Operand{
	ast.OperAdd: ir.Add,
	ast.OperSub: ir.Subtract,
	ast.OperMul: ir.Multiply,
	ast.OperDiv: ir.Divide,
}

// lowerExpr lowers an expression into a value.
func (l *Lowerer) lowerExpr(expr ast.ASTExpr) ir.Value {
	typ := l.valueType(expr.Type(), expr.Span())

	switch v := expr.(type) {
	case *ast.IntLiteral:
		return &ir.IntegerLiteral{Value: v.Value, ValType: typ}
	case *ast.StringLiteral:
		l.mustHaveScope(v.Span())

		// Strings are NUL-terminated so they can be passed to C.
		data := append([]byte(v.Value), 0)
		return &ir.DataSectionReference{Index: l.scope.fn.AddData(data)}
	case *ast.Identifier:
		return &ir.LocalReference{Index: l.lookupLocal(v.Name, v.Span()), ValType: typ}
	case *ast.BinaryOp:
		operand, ok := operands[v.Op]
		if !ok {
			l.error(report.UnsupportedOperand, v.Span(), "`%s` is not an arithmetic operator", v.Op)
		}

		lhs := l.lowerExpr(v.LHS)
		rhs := l.lowerExpr(v.RHS)

		return &ir.BinaryOperation{LHS: lhs, RHS: rhs, Operand: operand, ValType: typ}
	case *ast.Call:
		return &ir.Call{Name: v.Func, Args: l.lowerArgs(v.Args), ValType: typ}
	default:
		l.error(report.UnsupportedType, expr.Span(), "expression is not supported by code generation yet")
	}

	return nil
}

// lowerArgs lowers the arguments of a call.
func (l *Lowerer) lowerArgs(args []ast.ASTExpr) []ir.Value {
	values := make([]ir.Value, len(args))

	for i, arg := range args {
		values[i] = l.lowerExpr(arg)
	}

	return values
}
