package walk

import (
	"petalc/ast"
	"petalc/report"
	"petalc/types"
)

// Walker is responsible for walking the syntax tree of a compilation unit,
// resolving all the types it names and checking every type-dependent construct.
// The tree is updated in place: declared types are replaced by their resolved
// forms and every expression is annotated with its resolved type.
type Walker struct {
	ctx *TypecheckerContext

	// The return type of the enclosing function.  If this is `nil`, then there
	// is no enclosing function.
	returnType types.Type
}

// NewWalker creates a new walker with a fresh typechecker context.
func NewWalker() *Walker {
	return &Walker{ctx: NewTypecheckerContext()}
}

// Resolve resolves the given top-level statements of a compilation unit.  It
// stops and returns the first error encountered.
func Resolve(defs []ast.ASTNode) error {
	return NewWalker().WalkDefs(defs)
}

// WalkDefs walks the top-level statements of a compilation unit.
func (w *Walker) WalkDefs(defs []ast.ASTNode) (err error) {
	// Catch any errors that occur while walking the definitions.
	defer report.Catch(&err)

	for _, def := range defs {
		// Only function definitions have anything to resolve: other top-level
		// statements are rejected when the tree is lowered.
		if fd, ok := def.(*ast.FuncDef); ok {
			w.walkFuncDef(fd)
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

// resolveType resolves a declared type to its concrete form.
func (w *Walker) resolveType(typ types.Type, span *report.TextSpan) types.Type {
	switch v := typ.(type) {
	case types.UnresolvedType:
		if rtyp, ok := types.LookupBuiltin(v.Name); ok {
			return rtyp
		}

		w.error(report.UnresolvedType, span, "undefined type: `%s`", v.Name)
	case types.ReferenceType:
		return types.ReferenceType{ElemType: w.resolveType(v.ElemType, span)}
	case nil:
		w.error(report.MissingTypeInformation, span, "declaration has no type")
	}

	return typ
}

// mustMatch asserts that received is structurally equal to expected.
func (w *Walker) mustMatch(expected, received types.Type, span *report.TextSpan) {
	if !types.Equals(expected, received) {
		w.mismatch(expected.Repr(), received, span)
	}
}

// mismatch reports a mismatched type error.
func (w *Walker) mismatch(expected string, received types.Type, span *report.TextSpan) {
	w.error(
		report.MismatchedType,
		span,
		"type mismatch: expected `%s` but received `%s`",
		expected,
		received.Repr(),
	)
}

// must aborts walking if err is not nil.
func (w *Walker) must(err error) {
	if err != nil {
		panic(err)
	}
}

// error reports an error on the given span that aborts resolution.
func (w *Walker) error(kind report.ErrorKind, span *report.TextSpan, msg string, args ...interface{}) {
	panic(report.Raise(kind, span, msg, args...))
}
