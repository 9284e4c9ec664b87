// Package amd64 generates x86-64 assembly for the System V ABI in the Intel
// syntax understood by the GNU assembler.
package amd64

import (
	"petalc/codegen"
	"petalc/ir"
)

// capabilities is the capability table of the x86-64 driver.  Division needs
// the rdx:rax register pair and is not supported yet.
var capabilities = codegen.Capabilities{
	Operands: map[ir.Operand]bool{
		ir.Add:      true,
		ir.Subtract: true,
		ir.Multiply: true,
	},
	ArgRegisters: len(argRegisters),
}

// Driver generates x86-64 assembly.
type Driver struct{}

// NewDriver creates a new x86-64 driver.
func NewDriver() *Driver {
	return &Driver{}
}

func (d *Driver) Target() string {
	return "amd64"
}

func (d *Driver) Capabilities() *codegen.Capabilities {
	return &capabilities
}

// Generate produces the assembly module for the given functions.
func (d *Driver) Generate(funcs []*ir.Function) (string, error) {
	if err := codegen.CheckCapabilities(funcs, d.Capabilities()); err != nil {
		return "", err
	}

	asm := codegen.NewAssembly()
	if err := asm.EmitHeader([]string{".intel_syntax noprefix"}, ".section .rodata", ".section .text"); err != nil {
		return "", err
	}

	externs := make(map[string]bool)
	for _, fn := range funcs {
		if fn.IsExternal {
			externs[fn.Name] = true
		}
	}

	for _, fn := range funcs {
		g := &generator{
			asm:     asm,
			fn:      fn,
			frame:   codegen.NewFrame(fn),
			externs: externs,
		}

		if err := g.generate(); err != nil {
			return "", err
		}
	}

	return asm.Finalize()
}
