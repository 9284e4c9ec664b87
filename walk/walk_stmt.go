package walk

import (
	"petalc/ast"
	"petalc/report"
	"petalc/types"
)

// walkBlock walks every statement of a block in order.
func (w *Walker) walkBlock(block *ast.Block) {
	for _, stmt := range block.Stmts {
		w.walkStmt(stmt)
	}
}

// walkStmt walks a single statement.
func (w *Walker) walkStmt(stmt ast.ASTNode) {
	switch v := stmt.(type) {
	case *ast.VarDecl:
		w.walkVarDecl(v)
	case *ast.Assignment:
		w.walkAssign(v)
	case *ast.ReturnStmt:
		w.walkReturn(v)
	case *ast.IfStmt:
		w.walkIf(v)
	case *ast.CallStmt:
		w.walkExpr(v.Call, nil)
	case *ast.FuncDef:
		// A function scope is always active here so this fails.
		w.must(w.ctx.StartFunctionScope(v.Span()))
	default:
		w.error(report.UnsupportedStatement, stmt.Span(), "statement is not allowed inside a function body")
	}
}

// walkVarDecl walks a local variable declaration.
func (w *Walker) walkVarDecl(vd *ast.VarDecl) {
	vd.Type = w.resolveType(vd.Type, vd.Span())

	initType := w.walkExpr(vd.Initializer, vd.Type)
	w.mustMatch(vd.Type, initType, vd.Initializer.Span())

	w.must(w.ctx.DefineVariable(vd.Name, vd.Type, vd.Span()))
}

// walkAssign walks the reassignment of a variable.  The value is resolved with
// the type of the variable as hint.  A variable of type `&T` may be assigned a
// value of type `T`: the value is stored through the reference.
func (w *Walker) walkAssign(as *ast.Assignment) {
	varType, err := w.ctx.LookupVariable(as.Name, as.Span())
	w.must(err)

	valueType := w.walkExpr(as.Value, varType)
	if types.Equals(varType, valueType) {
		return
	}

	if rt, ok := varType.(types.ReferenceType); ok && types.Equals(rt.ElemType, valueType) {
		return
	}

	w.mismatch(varType.Repr(), valueType, as.Value.Span())
}

// walkReturn walks a return statement.
func (w *Walker) walkReturn(ret *ast.ReturnStmt) {
	if ret.Value == nil {
		if !types.IsVoid(w.returnType) {
			w.mismatch(w.returnType.Repr(), types.Void, ret.Span())
		}

		return
	}

	valueType := w.walkExpr(ret.Value, w.returnType)
	w.mustMatch(w.returnType, valueType, ret.Value.Span())
}

// walkIf walks an if statement.  The body shares the enclosing function scope.
func (w *Walker) walkIf(ifStmt *ast.IfStmt) {
	condType := w.walkExpr(ifStmt.Condition, types.Bool)
	w.mustMatch(types.Bool, condType, ifStmt.Condition.Span())

	w.walkBlock(ifStmt.Body)
}

// insertImplicitReturn appends an empty return to the body of a void function.
// Any other function is missing a return statement.
func (w *Walker) insertImplicitReturn(fd *ast.FuncDef, span *report.TextSpan) {
	if !types.IsVoid(fd.ReturnType) {
		w.error(report.ExpectedReturn, span, "missing return statement in function `%s`", fd.Name)
	}

	fd.Body.Stmts = append(fd.Body.Stmts, &ast.ReturnStmt{ASTBase: ast.NewASTBaseOn(span)})
}
