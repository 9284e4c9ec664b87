package walk

import (
	"petalc/ast"
	"petalc/report"
	"petalc/types"
)

// walkExpr walks an expression and annotates it with its resolved type which
// is also returned.  The hint is the type the expression is expected to have:
// it is only used to type integer literals and may be nil.
func (w *Walker) walkExpr(expr ast.ASTExpr, hint types.Type) types.Type {
	var typ types.Type

	switch v := expr.(type) {
	case *ast.IntLiteral:
		if types.IsInteger(hint) {
			typ = hint
		} else {
			typ = types.I32
		}
	case *ast.BoolLiteral:
		typ = types.Bool
	case *ast.StringLiteral:
		typ = types.ReferenceType{ElemType: types.I8}
	case *ast.Identifier:
		varType, err := w.ctx.LookupVariable(v.Name, v.Span())
		w.must(err)

		if v.ByRef {
			typ = types.ReferenceType{ElemType: varType}
		} else {
			typ = varType
		}
	case *ast.BinaryOp:
		lhsType := w.walkExpr(v.LHS, hint)
		rhsType := w.walkExpr(v.RHS, hint)
		w.mustMatch(lhsType, rhsType, v.RHS.Span())

		typ = lhsType
	case *ast.Comparison:
		lhsType := w.walkExpr(v.LHS, nil)
		rhsType := w.walkExpr(v.RHS, lhsType)
		w.mustMatch(lhsType, rhsType, v.RHS.Span())

		if !types.IsInteger(lhsType) {
			w.mismatch("integer", lhsType, v.LHS.Span())
		}

		typ = types.Bool
	case *ast.Call:
		rt, ok := w.ctx.LookupFunction(v.Func)
		if !ok {
			w.error(report.UndefinedFunction, v.Span(), "undefined function: `%s`", v.Func)
		}

		// Arguments are not checked against the parameters of the callee.
		for _, arg := range v.Args {
			w.walkExpr(arg, nil)
		}

		typ = rt
	default:
		w.error(report.UnsupportedStatement, expr.Span(), "unknown expression")
	}

	expr.SetType(typ)
	return typ
}
