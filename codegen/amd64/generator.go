package amd64

import (
	"fmt"

	"petalc/codegen"
	"petalc/ir"
	"petalc/report"
)

// generator emits the assembly of a single function.
type generator struct {
	asm   *codegen.Assembly
	fn    *ir.Function
	frame *codegen.Frame

	// The names of the functions declared external in the module.
	externs map[string]bool
}

// generate emits the function.
func (g *generator) generate() error {
	if err := g.asm.StartFunction(); err != nil {
		return err
	}

	if g.fn.IsExternal {
		g.asm.Directive(".extern %s", g.fn.Name)
		return nil
	}

	for i, data := range g.fn.Data {
		g.asm.AddData(g.fn.DataLabel(i), data)
	}

	g.asm.Directive(".global %s", g.fn.Name)
	g.asm.Label(g.fn.Name)

	// Prologue
	g.asm.Instr("push rbp")
	g.asm.Instr("mov rbp, rsp")
	if g.frame.AlignedSize > 0 {
		g.asm.Instr("sub rsp, %d", g.frame.AlignedSize)
	}

	returned := false
	for _, op := range g.fn.Body {
		if err := op.Accept(g); err != nil {
			return err
		}

		_, returned = op.(*ir.Return)
	}

	if !returned {
		g.epilogue()
	}

	return nil
}

// epilogue emits the function epilogue.
func (g *generator) epilogue() {
	if g.frame.AlignedSize > 0 {
		g.asm.Instr("add rsp, %d", g.frame.AlignedSize)
	}

	g.asm.Instr("pop rbp")
	g.asm.Instr("ret")
}

// -----------------------------------------------------------------------------

// regParam returns the argument register holding the local at index.  It
// returns false if the local is not a parameter passed in a register.
func (g *generator) regParam(index int) (register, bool) {
	pos := g.fn.ParamPosition(index)
	if 0 <= pos && pos < len(argRegisters) {
		return argRegisters[pos], true
	}

	return register{}, false
}

// address returns the address of a local stored in memory.
func (g *generator) address(index int) string {
	if pos := g.fn.ParamPosition(index); pos >= 0 {
		// Stack arguments sit above the return address and saved rbp.
		return fmt.Sprintf("[rbp+%d]", 16+8*(pos-len(argRegisters)))
	}

	return fmt.Sprintf("[rbp-%d]", g.frame.Depth(g.fn, index))
}

// localOperand returns the operand holding the content of the local at index.
func (g *generator) localOperand(index int) string {
	local := g.fn.Locals[index]

	if reg, ok := g.regParam(index); ok {
		return reg.of(local.Type)
	}

	return ptrSize(local.Type) + " " + g.address(index)
}

// isAddressOf returns whether a value denotes the address of its operand
// rather than its content.
func (g *generator) isAddressOf(v ir.Value) bool {
	switch v := v.(type) {
	case *ir.DataSectionReference:
		return true
	case *ir.LocalReference:
		return v.ValType.IsReference && !g.fn.Locals[v.Index].Type.IsReference
	default:
		return false
	}
}

// load moves the value v whose operand is op into reg.  Integers narrower than
// 32 bits are sign extended.  It returns the name of the register as sized for
// arithmetic: the 32 bit name for integers up to 32 bits, the 64 bit name
// otherwise.
func (g *generator) load(reg register, v ir.Value, op string) string {
	if g.isAddressOf(v) {
		g.asm.Instr("lea %s, %s", reg.q, op)
		return reg.q
	}

	return g.loadOperand(reg, v.Type(), op)
}

// loadOperand moves the content of op of type vt into reg.
func (g *generator) loadOperand(reg register, vt ir.ValueType, op string) string {
	var dest string
	mnemonic := "mov"

	switch width := bits(vt); {
	case width == 64:
		dest = reg.q
	case width == 32 || isImmediate(op):
		dest = reg.d
	default:
		dest = reg.d
		mnemonic = "movsx"
	}

	if op != dest {
		g.asm.Instr("%s %s, %s", mnemonic, dest, op)
	}

	return dest
}

// spill saves reg in a new 16 byte stack slot so that rsp stays aligned.
func (g *generator) spill(reg register) {
	g.asm.Instr("sub rsp, 16")
	g.asm.Instr("mov %s, %s", stackSlot(0), reg.q)
}

// unspill restores reg from the stack slot created by spill.
func (g *generator) unspill(reg register) {
	g.asm.Instr("mov %s, %s", reg.q, stackSlot(0))
	g.asm.Instr("add rsp, 16")
}

// unsupported returns the error for a construct the driver cannot emit.
func (g *generator) unsupported(kind report.ErrorKind, msg string, args ...interface{}) error {
	return report.Raise(kind, g.fn.Span, "x86-64: "+msg, args...)
}
