package walk

import (
	"petalc/ast"
	"petalc/types"
)

// walkFuncDef walks a function definition.
func (w *Walker) walkFuncDef(fd *ast.FuncDef) {
	// Resolve the signature of the function.
	if fd.ReturnType == nil {
		fd.ReturnType = types.Void
	} else {
		fd.ReturnType = w.resolveType(fd.ReturnType, fd.Span())
	}

	for _, param := range fd.Params {
		param.Type = w.resolveType(param.Type, param.Span())
	}

	// Extern functions have no body to resolve.
	if fd.Extern {
		w.ctx.DefineFunction(fd.Name, fd.ReturnType)
		return
	}

	w.must(w.ctx.StartFunctionScope(fd.Span()))

	// Register the function first so that its body can call it.
	w.ctx.DefineFunction(fd.Name, fd.ReturnType)

	for _, param := range fd.Params {
		w.must(w.ctx.DefineVariable(param.Name, param.Type, param.Span()))
	}

	if fd.Body == nil {
		fd.Body = &ast.Block{ASTBase: ast.NewASTBaseOn(fd.Span())}
	}

	w.returnType = fd.ReturnType
	w.walkBlock(fd.Body)

	// Make sure the function returns.
	stmts := fd.Body.Stmts
	if len(stmts) == 0 {
		w.insertImplicitReturn(fd, fd.Span())
	} else if _, ok := stmts[len(stmts)-1].(*ast.ReturnStmt); !ok {
		w.insertImplicitReturn(fd, stmts[len(stmts)-1].Span())
	}

	w.returnType = nil
	w.must(w.ctx.EndFunctionScope(fd.Span()))
}
