package lower

import (
	"petalc/ast"
	"petalc/ir"
	"petalc/report"
)

// lowerStmt lowers a single body statement into an operation.
func (l *Lowerer) lowerStmt(stmt ast.ASTNode) ir.Operation {
	switch v := stmt.(type) {
	case *ast.VarDecl:
		value := l.lowerExpr(v.Initializer)
		index := l.defineLocal(v.Name, l.valueType(v.Type, v.Span()), ir.Variable, v.Span())

		return &ir.StoreLocal{Index: index, Value: value}
	case *ast.Assignment:
		value := l.lowerExpr(v.Value)

		return &ir.StoreLocal{Index: l.lookupLocal(v.Name, v.Span()), Value: value}
	case *ast.ReturnStmt:
		if v.Value == nil {
			return &ir.Return{}
		}

		return &ir.Return{Value: l.lowerExpr(v.Value)}
	case *ast.CallStmt:
		return &ir.FunctionCall{Name: v.Call.Func, Args: l.lowerArgs(v.Call.Args)}
	case *ast.FuncDef:
		// A function scope is always active here so this fails.
		l.startFunctionScope(&ir.Function{Name: v.Name}, v.Span())
	case *ast.IfStmt:
		l.error(report.UnsupportedStatement, v.Span(), "if statements are not supported by code generation yet")
	default:
		l.error(report.UnsupportedStatement, stmt.Span(), "statement is not supported by code generation")
	}

	return nil
}
