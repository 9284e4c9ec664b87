package walk

import (
	"petalc/report"
	"petalc/types"
)

// TypecheckerContext is the state shared while resolving one compilation
// unit.  It holds the return types of all functions seen so far and at most one
// active function scope.
type TypecheckerContext struct {
	// The return types of declared functions organized by name.
	functions map[string]types.Type

	// The active function scope.  It is nil if no function is being resolved.
	scope *FunctionScope
}

// FunctionScope holds the types of the variables visible while resolving the
// body of a single function.
type FunctionScope struct {
	vars map[string]types.Type
}

// NewTypecheckerContext creates a new, empty typechecker context.
func NewTypecheckerContext() *TypecheckerContext {
	return &TypecheckerContext{functions: make(map[string]types.Type)}
}

// -----------------------------------------------------------------------------

// DefineFunction registers the return type of a function.
func (ctx *TypecheckerContext) DefineFunction(name string, returnType types.Type) {
	ctx.functions[name] = returnType
}

// LookupFunction looks up the return type of a function by name.
func (ctx *TypecheckerContext) LookupFunction(name string) (types.Type, bool) {
	rt, ok := ctx.functions[name]
	return rt, ok
}

// -----------------------------------------------------------------------------

// StartFunctionScope opens a new function scope.  It is an error to open a
// function scope while another one is active.
func (ctx *TypecheckerContext) StartFunctionScope(span *report.TextSpan) error {
	if ctx.scope != nil {
		return report.Raise(
			report.UnterminatedFunctionScope,
			span,
			"cannot define a function inside of another function",
		)
	}

	ctx.scope = &FunctionScope{vars: make(map[string]types.Type)}
	return nil
}

// EndFunctionScope closes the active function scope.
func (ctx *TypecheckerContext) EndFunctionScope(span *report.TextSpan) error {
	if ctx.scope == nil {
		return errNoFunctionScope(span)
	}

	ctx.scope = nil
	return nil
}

// DefineVariable declares a variable in the active function scope.  A variable
// which already exists under the same name is replaced.
func (ctx *TypecheckerContext) DefineVariable(name string, typ types.Type, span *report.TextSpan) error {
	if ctx.scope == nil {
		return errNoFunctionScope(span)
	}

	ctx.scope.vars[name] = typ
	return nil
}

// LookupVariable looks up the type of a variable in the active function scope.
func (ctx *TypecheckerContext) LookupVariable(name string, span *report.TextSpan) (types.Type, error) {
	if ctx.scope == nil {
		return nil, errNoFunctionScope(span)
	}

	if typ, ok := ctx.scope.vars[name]; ok {
		return typ, nil
	}

	return nil, report.Raise(report.UndefinedVariable, span, "undefined variable: `%s`", name)
}

// errNoFunctionScope returns the error for using a function scope when none is
// active.
func errNoFunctionScope(span *report.TextSpan) error {
	return report.Raise(report.ExpectedFunctionScope, span, "no function scope is active")
}
