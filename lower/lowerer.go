package lower

import (
	"petalc/ast"
	"petalc/ir"
	"petalc/report"
	"petalc/types"
)

// Lowerer is the construct responsible for converting a resolved syntax tree
// into IR functions.
type Lowerer struct {
	// The scope of the function being lowered.  It is nil between functions.
	scope *functionScope
}

// functionScope holds the local table of the function being lowered.
type functionScope struct {
	fn *ir.Function

	// The indices of the visible locals organized by name.  A redeclared name
	// refers to its latest local.
	names map[string]int
}

// NewLowerer creates a new lowerer.
func NewLowerer() *Lowerer {
	return &Lowerer{}
}

// Lower converts resolved top-level statements into IR functions.
func Lower(defs []ast.ASTNode) ([]*ir.Function, error) {
	return NewLowerer().Lower(defs)
}

// Lower converts resolved top-level statements into IR functions, one for each
// function definition in order.  No functions are returned if an error occurs.
func (l *Lowerer) Lower(defs []ast.ASTNode) ([]*ir.Function, error) {
	funcs, err := l.lowerDefs(defs)
	if err != nil {
		return nil, err
	}

	return funcs, nil
}

// lowerDefs lowers every top-level statement catching the first error.
func (l *Lowerer) lowerDefs(defs []ast.ASTNode) (funcs []*ir.Function, err error) {
	defer report.Catch(&err)

	for _, def := range defs {
		fd, ok := def.(*ast.FuncDef)
		if !ok {
			l.error(report.UnsupportedTopLevelStatement, def.Span(), "only function definitions are allowed at the top level")
		}

		funcs = append(funcs, l.lowerFuncDef(fd))
	}

	return
}

// -----------------------------------------------------------------------------

// startFunctionScope opens the scope of fn.  Functions cannot be nested.
func (l *Lowerer) startFunctionScope(fn *ir.Function, span *report.TextSpan) {
	if l.scope != nil {
		l.error(report.UnterminatedFunctionScope, span, "cannot define a function inside of another function")
	}

	l.scope = &functionScope{fn: fn, names: make(map[string]int)}
}

// endFunctionScope closes the scope of the current function.
func (l *Lowerer) endFunctionScope(span *report.TextSpan) {
	l.mustHaveScope(span)
	l.scope = nil
}

// mustHaveScope asserts that a function scope is active.
func (l *Lowerer) mustHaveScope(span *report.TextSpan) {
	if l.scope == nil {
		l.error(report.ExpectedFunctionScope, span, "no function scope is active")
	}
}

// defineLocal appends a new local to the current function.
func (l *Lowerer) defineLocal(name string, typ ir.ValueType, kind ir.LocalKind, span *report.TextSpan) int {
	l.mustHaveScope(span)

	index := l.scope.fn.AddLocal(name, typ, kind)
	l.scope.names[name] = index
	return index
}

// lookupLocal returns the index of the local with the given name.
func (l *Lowerer) lookupLocal(name string, span *report.TextSpan) int {
	l.mustHaveScope(span)

	index, ok := l.scope.names[name]
	if !ok {
		l.error(report.UndefinedIdentifier, span, "undefined identifier: `%s`", name)
	}

	return index
}

// valueType converts a resolved type into its IR value type.
func (l *Lowerer) valueType(typ types.Type, span *report.TextSpan) ir.ValueType {
	switch v := typ.(type) {
	case types.IntegerType:
		return ir.Integer(v.Width)
	case types.ReferenceType:
		if !types.IsResolved(v) {
			l.error(report.MissingTypeInformation, span, "type `%s` was never resolved", v.Repr())
		}

		return ir.Reference
	case types.BoolType, types.VoidType:
		l.error(report.UnsupportedType, span, "values of type `%s` are not supported by code generation", v.Repr())
	case nil:
		l.error(report.MissingTypeInformation, span, "no type information was recorded for this node")
	default:
		l.error(report.MissingTypeInformation, span, "type `%s` was never resolved", v.Repr())
	}

	return ir.ValueType{}
}

// error reports an error on the given span that aborts lowering.
func (l *Lowerer) error(kind report.ErrorKind, span *report.TextSpan, msg string, args ...interface{}) {
	panic(report.Raise(kind, span, msg, args...))
}
