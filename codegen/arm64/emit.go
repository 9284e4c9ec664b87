package arm64

import (
	"petalc/codegen"
	"petalc/ir"
	"petalc/report"
)

// mnemonics are the instructions implementing each supported operand.
var mnemonics = map[ir.Operand]string{
	ir.Add:      "add",
	ir.Subtract: "sub",
	ir.Multiply: "mul",
	ir.Divide:   "sdiv",
}

func (g *generator) VisitStoreLocal(op *ir.StoreLocal) error {
	val, err := op.Value.Accept(g)
	if err != nil {
		return err
	}

	vt := op.Value.Type()
	g.load(accReg, op.Value, val)

	local := g.fn.Locals[op.Index]
	if local.Type.IsReference && !vt.IsReference {
		// Store through the reference held by the local.
		ptr := g.loadOperand(ptrReg, ir.Reference, g.localOperand(op.Index))
		g.asm.Instr("%s %s, [%s]", storeMnemonic(vt, false), reg(accReg, vt), ptr)
		return nil
	}

	dest := g.localOperand(op.Index)
	if isMemory(dest) {
		g.asm.Instr("%s %s, %s", storeMnemonic(local.Type, isUnscaled(dest)), reg(accReg, local.Type), dest)
	} else {
		g.asm.Instr("mov %s, %s", dest, reg(accReg, local.Type))
	}

	return nil
}

func (g *generator) VisitReturn(op *ir.Return) error {
	if op.Value != nil {
		val, err := op.Value.Accept(g)
		if err != nil {
			return err
		}

		g.load(0, op.Value, val)
	}

	g.epilogue()
	return nil
}

func (g *generator) VisitFunctionCall(op *ir.FunctionCall) error {
	return g.call(op.Name, op.Args, false)
}

// -----------------------------------------------------------------------------

func (g *generator) VisitIntegerLiteral(v *ir.IntegerLiteral) (string, error) {
	return immediate(v.Value, bits(v.ValType)), nil
}

func (g *generator) VisitLocalReference(v *ir.LocalReference) (string, error) {
	return g.localOperand(v.Index), nil
}

func (g *generator) VisitBinaryOperation(v *ir.BinaryOperation) (string, error) {
	mnemonic, ok := mnemonics[v.Operand]
	if !ok {
		return "", g.unsupported(report.UnsupportedOperand, "operator `%s` is not implemented", v.Operand)
	}

	lhs, err := v.LHS.Accept(g)
	if err != nil {
		return "", err
	}

	g.load(accReg, v.LHS, lhs)

	if ir.IsComputed(v.RHS) {
		// Evaluating the right operand clobbers the scratch registers.
		g.spill(accReg)

		rop, err := v.RHS.Accept(g)
		if err != nil {
			return "", err
		}

		g.load(rhsReg, v.RHS, rop)
		g.unspill(accReg)
	} else {
		rop, err := v.RHS.Accept(g)
		if err != nil {
			return "", err
		}

		g.load(rhsReg, v.RHS, rop)
	}

	acc := reg(accReg, v.ValType)
	g.asm.Instr("%s %s, %s, %s", mnemonic, acc, acc, reg(rhsReg, v.ValType))
	g.asm.Instr("mov %s, %s", reg(resultReg, v.ValType), acc)

	return reg(resultReg, v.ValType), nil
}

func (g *generator) VisitCall(v *ir.Call) (string, error) {
	if err := g.call(v.Name, v.Args, true); err != nil {
		return "", err
	}

	return reg(callReg, v.ValType), nil
}

func (g *generator) VisitDataSectionReference(v *ir.DataSectionReference) (string, error) {
	return g.fn.DataLabel(v.Index), nil
}

// -----------------------------------------------------------------------------

// call emits a call to the named function.  Arguments are evaluated into a
// staging area on the stack before any argument register is written, and the
// registers holding the caller's own parameters are saved there across the
// call.  The staging area is laid out as: arguments passed on the stack,
// arguments passed in registers, saved parameters.  If keepResult is set, the
// result is moved out of x0 before the parameters are restored.
func (g *generator) call(name string, args []ir.Value, keepResult bool) error {
	nstack := 0
	if len(args) > numArgRegisters {
		nstack = len(args) - numArgRegisters
	}

	params, _ := g.fn.Params()
	nsaved := len(params)
	if nsaved > numArgRegisters {
		nsaved = numArgRegisters
	}

	argSlot := func(i int) int {
		if i >= numArgRegisters {
			return 8 * (i - numArgRegisters)
		}

		return 8 * (nstack + i)
	}

	savedSlot := func(j int) int {
		return 8 * (len(args) + j)
	}

	area := codegen.AlignUp(8*(len(args)+nsaved), codegen.StackAlign)
	if area > 0 {
		g.asm.Instr("sub sp, sp, #%d", area)
	}

	for j := 0; j < nsaved; j++ {
		g.asm.Instr("str %s, %s", xreg(j), stackSlot(savedSlot(j)))
	}

	for i, arg := range args {
		op, err := arg.Accept(g)
		if err != nil {
			return err
		}

		g.load(accReg, arg, op)
		g.asm.Instr("str %s, %s", xreg(accReg), stackSlot(argSlot(i)))
	}

	for i := 0; i < len(args) && i < numArgRegisters; i++ {
		g.asm.Instr("ldr %s, %s", xreg(i), stackSlot(argSlot(i)))
	}

	g.asm.Instr("bl %s", name)

	if keepResult {
		g.asm.Instr("mov %s, x0", xreg(callReg))
	}

	for j := 0; j < nsaved; j++ {
		g.asm.Instr("ldr %s, %s", xreg(j), stackSlot(savedSlot(j)))
	}

	if area > 0 {
		g.asm.Instr("add sp, sp, #%d", area)
	}

	return nil
}
