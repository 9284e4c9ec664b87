// Package codegen contains the pieces shared by the native code generation
// drivers: stack frame layout, backend capability checks, the assembly text
// buffer, and the external assembler and linker.
package codegen

import "petalc/ir"

// Driver is a code generation backend for one instruction set architecture.
type Driver interface {
	// Target returns the name of the architecture the driver generates code
	// for.
	Target() string

	// Capabilities returns the table of IR features the driver supports.
	Capabilities() *Capabilities

	// Generate produces the assembly module for the given functions in order.
	Generate(funcs []*ir.Function) (string, error)
}
