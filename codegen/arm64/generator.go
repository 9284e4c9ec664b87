package arm64

import (
	"strconv"

	"petalc/codegen"
	"petalc/ir"
	"petalc/report"
)

// generator emits the assembly of a single function.
type generator struct {
	asm   *codegen.Assembly
	fn    *ir.Function
	frame *codegen.Frame
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
	g.asm.Instr("stp x29, x30, [sp, #-16]!")
	g.asm.Instr("mov x29, sp")
	if g.frame.AlignedSize > 0 {
		g.asm.Instr("sub sp, sp, #%d", g.frame.AlignedSize)
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
		g.asm.Instr("add sp, sp, #%d", g.frame.AlignedSize)
	}

	g.asm.Instr("ldp x29, x30, [sp], #16")
	g.asm.Instr("ret")
}

// -----------------------------------------------------------------------------

// regParam returns the number of the argument register holding the local at
// index.  It returns false if the local is not a parameter passed in a
// register.
func (g *generator) regParam(index int) (int, bool) {
	pos := g.fn.ParamPosition(index)
	if 0 <= pos && pos < numArgRegisters {
		return pos, true
	}

	return 0, false
}

// frameOffset returns the offset from the frame pointer of a local stored in
// memory.  Stack arguments sit above the saved frame record.
func (g *generator) frameOffset(index int) int {
	if pos := g.fn.ParamPosition(index); pos >= 0 {
		return 16 + 8*(pos-numArgRegisters)
	}

	return -g.frame.Depth(g.fn, index)
}

// localOperand returns the operand holding the content of the local at index.
func (g *generator) localOperand(index int) string {
	if n, ok := g.regParam(index); ok {
		return reg(n, g.fn.Locals[index].Type)
	}

	return frameSlot(g.frameOffset(index))
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

// load moves the value v whose operand is op into register n and returns the
// name of the register as sized for v.
func (g *generator) load(n int, v ir.Value, op string) string {
	switch v := v.(type) {
	case *ir.DataSectionReference:
		g.asm.Instr("adrp %s, %s", xreg(n), op)
		g.asm.Instr("add %s, %s, :lo12:%s", xreg(n), xreg(n), op)
		return xreg(n)
	case *ir.LocalReference:
		if g.isAddressOf(v) {
			offset := g.frameOffset(v.Index)
			if offset < 0 {
				g.asm.Instr("sub %s, x29, #%d", xreg(n), -offset)
			} else {
				g.asm.Instr("add %s, x29, #%d", xreg(n), offset)
			}

			return xreg(n)
		}
	}

	return g.loadOperand(n, v.Type(), op)
}

// loadOperand moves the content of op of type vt into register n.  Integers
// narrower than 32 bits are sign extended.
func (g *generator) loadOperand(n int, vt ir.ValueType, op string) string {
	dest := reg(n, vt)

	switch {
	case isImmediate(op):
		value, _ := strconv.ParseInt(op[1:], 10, 64)
		if -65536 < value && value < 65536 {
			g.asm.Instr("mov %s, %s", dest, op)
		} else {
			g.asm.Instr("ldr %s, =%d", dest, value)
		}
	case isMemory(op):
		g.asm.Instr("%s %s, %s", loadMnemonic(vt, isUnscaled(op)), dest, op)
	case bits(vt) == 8:
		g.asm.Instr("sxtb %s, %s", dest, op)
	case bits(vt) == 16:
		g.asm.Instr("sxth %s, %s", dest, op)
	case op != dest:
		g.asm.Instr("mov %s, %s", dest, op)
	}

	return dest
}

// spill pushes register n in a new 16 byte stack slot so that sp stays aligned.
func (g *generator) spill(n int) {
	g.asm.Instr("str %s, [sp, #-16]!", xreg(n))
}

// unspill pops register n from the stack slot created by spill.
func (g *generator) unspill(n int) {
	g.asm.Instr("ldr %s, [sp], #16", xreg(n))
}

// unsupported returns the error for a construct the driver cannot emit.
func (g *generator) unsupported(kind report.ErrorKind, msg string, args ...interface{}) error {
	return report.Raise(kind, g.fn.Span, "aarch64: "+msg, args...)
}
