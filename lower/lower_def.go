package lower

import (
	"petalc/ast"
	"petalc/ir"
)

// lowerFuncDef lowers a function definition.
func (l *Lowerer) lowerFuncDef(fd *ast.FuncDef) *ir.Function {
	fn := &ir.Function{
		Name:       fd.Name,
		Span:       fd.Span(),
		IsExternal: fd.Extern,
	}

	l.startFunctionScope(fn, fd.Span())

	// Parameters are declared first so the body can refer to them.
	for _, param := range fd.Params {
		l.defineLocal(param.Name, l.valueType(param.Type, param.Span()), ir.Parameter, param.Span())
	}

	if !fd.Extern && fd.Body != nil {
		for _, stmt := range fd.Body.Stmts {
			fn.Body = append(fn.Body, l.lowerStmt(stmt))
		}
	}

	l.endFunctionScope(fd.Span())

	return fn
}
