package report

import (
	"errors"
	"fmt"
)

// TextSpan represents a range or "span" of source text.  It is used to specify
// erroneous or otherwise significant source text in a Petal program.  The line
// and column numbers are zero-indexed; Length is the number of characters
// covered by the span on its line.
type TextSpan struct {
	Line, Col int
	Length    int
}

func (ts *TextSpan) String() string {
	return fmt.Sprintf("%d:%d", ts.Line+1, ts.Col+1)
}

// -----------------------------------------------------------------------------

// ErrorKind classifies a compile error.  It must be one of the enumerated kinds
// below.
type ErrorKind int

// Enumeration of resolution error kinds.
const (
	UnresolvedType ErrorKind = iota
	MismatchedType
	UndefinedVariable
	UndefinedFunction
	ExpectedReturn
	ExpectedFunctionScope
	UnterminatedFunctionScope
)

// Enumeration of lowering error kinds.
const (
	UnsupportedTopLevelStatement ErrorKind = iota + 100
	MissingTypeInformation
	UndefinedIdentifier
	UnsupportedStatement
	UnsupportedType
)

// Enumeration of code generation error kinds.
const (
	UnsupportedOperation ErrorKind = iota + 200
	UnsupportedValue
	UnsupportedOperand
	CompilationFailure
	LinkingFailure
	OutputFailure
	InvalidIR
)

var errorKindNames = map[ErrorKind]string{
	UnresolvedType:               "unresolved type",
	MismatchedType:               "mismatched type",
	UndefinedVariable:            "undefined variable",
	UndefinedFunction:            "undefined function",
	ExpectedReturn:               "expected return",
	ExpectedFunctionScope:        "expected function scope",
	UnterminatedFunctionScope:    "unterminated function scope",
	UnsupportedTopLevelStatement: "unsupported top-level statement",
	MissingTypeInformation:       "missing type information",
	UndefinedIdentifier:          "undefined identifier",
	UnsupportedStatement:         "unsupported statement",
	UnsupportedType:              "unsupported type",
	UnsupportedOperation:         "unsupported operation",
	UnsupportedValue:             "unsupported value",
	UnsupportedOperand:           "unsupported operand",
	CompilationFailure:           "compilation failure",
	LinkingFailure:               "linking failure",
	OutputFailure:                "output failure",
	InvalidIR:                    "invalid IR",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("error kind %d", int(k))
}

// -----------------------------------------------------------------------------

// CompileError is the error produced by every stage of the compiler.  It
// carries the kind of error and, when one is known, the span of the offending
// source text.
type CompileError struct {
	Kind ErrorKind

	// The span over which the error occurs.  This may be nil if no meaningful
	// source location exists.
	Span *TextSpan

	// The error message.
	Message string

	// Detail is any additional output associated with the error: eg. the
	// captured output of the assembler.
	Detail string

	// Err is the underlying cause of the error if any.
	Err error
}

func (ce *CompileError) Error() string {
	if ce.Err != nil {
		return fmt.Sprintf("%s: %s", ce.Message, ce.Err)
	}

	return ce.Message
}

func (ce *CompileError) Unwrap() error {
	return ce.Err
}

// Internal returns whether the error indicates a violated compiler invariant
// rather than erroneous user input.
func (ce *CompileError) Internal() bool {
	switch ce.Kind {
	case MissingTypeInformation, ExpectedFunctionScope, InvalidIR:
		return true
	default:
		return false
	}
}

// Raise creates a new compile error of the given kind.
func Raise(kind ErrorKind, span *TextSpan, msg string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Span: span, Message: fmt.Sprintf(msg, args...)}
}

// Wrap creates a new compile error of the given kind caused by err.
func Wrap(kind ErrorKind, err error, msg string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(msg, args...), Err: err}
}

// IsKind returns whether err is or wraps a compile error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var cerr *CompileError
	if errors.As(err, &cerr) {
		return cerr.Kind == kind
	}

	return false
}

// -----------------------------------------------------------------------------

// Catch catches a compile error raised by a `panic` during a stage of
// compilation and stores it in errp.  Any other panic is propagated.
// NB: This function must ALWAYS be deferred.
func Catch(errp *error) {
	if x := recover(); x != nil {
		if cerr, ok := x.(*CompileError); ok {
			*errp = cerr
		} else {
			panic(x)
		}
	}
}
