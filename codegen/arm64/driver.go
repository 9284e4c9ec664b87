// Package arm64 generates AArch64 assembly for the AAPCS64 calling convention
// in the syntax understood by the GNU assembler.
package arm64

import (
	"petalc/codegen"
	"petalc/ir"
)

// maxFrameSize is the largest frame whose locals can be addressed with the
// signed 9 bit offsets of the unscaled load and store instructions.
const maxFrameSize = 256

// capabilities is the capability table of the AArch64 driver.
var capabilities = codegen.Capabilities{
	Operands: map[ir.Operand]bool{
		ir.Add:      true,
		ir.Subtract: true,
		ir.Multiply: true,
		ir.Divide:   true,
	},
	ArgRegisters: numArgRegisters,
	MaxFrameSize: maxFrameSize,
}

// Driver generates AArch64 assembly.
type Driver struct{}

// NewDriver creates a new AArch64 driver.
func NewDriver() *Driver {
	return &Driver{}
}

func (d *Driver) Target() string {
	return "arm64"
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
	if err := asm.EmitHeader(nil, ".section .rodata", ".section .text"); err != nil {
		return "", err
	}

	for _, fn := range funcs {
		g := &generator{asm: asm, fn: fn, frame: codegen.NewFrame(fn)}

		if err := g.generate(); err != nil {
			return "", err
		}
	}

	return asm.Finalize()
}
