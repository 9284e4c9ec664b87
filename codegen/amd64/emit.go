package amd64

import (
	"fmt"

	"petalc/codegen"
	"petalc/ir"
	"petalc/report"
)

// mnemonics are the instructions implementing each supported operand.
var mnemonics = map[ir.Operand]string{
	ir.Add:      "add",
	ir.Subtract: "sub",
	ir.Multiply: "imul",
}

func (g *generator) VisitStoreLocal(op *ir.StoreLocal) error {
	val, err := op.Value.Accept(g)
	if err != nil {
		return err
	}

	vt := op.Value.Type()
	g.load(rax, op.Value, val)

	local := g.fn.Locals[op.Index]
	if local.Type.IsReference && !vt.IsReference {
		// Store through the reference held by the local.
		ptr := g.loadOperand(r11, ir.Reference, g.localOperand(op.Index))
		g.asm.Instr("mov %s [%s], %s", ptrSize(vt), ptr, rax.of(vt))
		return nil
	}

	g.asm.Instr("mov %s, %s", g.localOperand(op.Index), rax.of(local.Type))
	return nil
}

func (g *generator) VisitReturn(op *ir.Return) error {
	if op.Value != nil {
		val, err := op.Value.Accept(g)
		if err != nil {
			return err
		}

		g.load(rax, op.Value, val)
	}

	g.epilogue()
	return nil
}

func (g *generator) VisitFunctionCall(op *ir.FunctionCall) error {
	return g.call(op.Name, op.Args)
}

// -----------------------------------------------------------------------------

func (g *generator) VisitIntegerLiteral(v *ir.IntegerLiteral) (string, error) {
	return immediate(v.Value, bits(v.ValType)), nil
}

func (g *generator) VisitLocalReference(v *ir.LocalReference) (string, error) {
	if g.isAddressOf(v) {
		return g.address(v.Index), nil
	}

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

	width := bits(v.ValType)

	var rhs string
	if ir.IsComputed(v.RHS) {
		// Evaluating the right operand clobbers the scratch registers.
		g.load(rax, v.LHS, lhs)
		g.spill(rax)

		rop, err := v.RHS.Accept(g)
		if err != nil {
			return "", err
		}

		rhs = g.load(r11, v.RHS, rop)
		g.unspill(rax)
	} else {
		rop, err := v.RHS.Accept(g)
		if err != nil {
			return "", err
		}

		g.load(rax, v.LHS, lhs)

		switch {
		case g.isAddressOf(v.RHS), width < 32 && !isImmediate(rop):
			rhs = g.load(r11, v.RHS, rop)
		case width == 64 && isImmediate(rop) && !fitsImm32(rop):
			rhs = g.load(r11, v.RHS, rop)
		default:
			rhs = rop
		}
	}

	acc := rax.d
	result := r10.d
	if width == 64 {
		acc = rax.q
		result = r10.q
	}

	g.asm.Instr("%s %s, %s", mnemonic, acc, rhs)
	g.asm.Instr("mov %s, %s", result, acc)

	return r10.of(v.ValType), nil
}

func (g *generator) VisitCall(v *ir.Call) (string, error) {
	if err := g.call(v.Name, v.Args); err != nil {
		return "", err
	}

	return rax.of(v.ValType), nil
}

func (g *generator) VisitDataSectionReference(v *ir.DataSectionReference) (string, error) {
	return fmt.Sprintf("[rip + %s]", g.fn.DataLabel(v.Index)), nil
}

// -----------------------------------------------------------------------------

// call emits a call to the named function.  Arguments are evaluated into a
// staging area on the stack before any argument register is written, and the
// registers holding the caller's own parameters are saved there across the
// call.  The staging area is laid out as: arguments passed on the stack,
// arguments passed in registers, saved parameters.
func (g *generator) call(name string, args []ir.Value) error {
	nregs := len(argRegisters)

	nstack := 0
	if len(args) > nregs {
		nstack = len(args) - nregs
	}

	params, _ := g.fn.Params()
	nsaved := len(params)
	if nsaved > nregs {
		nsaved = nregs
	}

	argSlot := func(i int) int {
		if i >= nregs {
			return 8 * (i - nregs)
		}

		return 8 * (nstack + i)
	}

	savedSlot := func(j int) int {
		return 8 * (len(args) + j)
	}

	area := codegen.AlignUp(8*(len(args)+nsaved), codegen.StackAlign)
	if area > 0 {
		g.asm.Instr("sub rsp, %d", area)
	}

	for j := 0; j < nsaved; j++ {
		g.asm.Instr("mov %s, %s", stackSlot(savedSlot(j)), argRegisters[j].q)
	}

	for i, arg := range args {
		op, err := arg.Accept(g)
		if err != nil {
			return err
		}

		g.load(rax, arg, op)
		g.asm.Instr("mov %s, %s", stackSlot(argSlot(i)), rax.q)
	}

	for i := 0; i < len(args) && i < nregs; i++ {
		g.asm.Instr("mov %s, %s", argRegisters[i].q, stackSlot(argSlot(i)))
	}

	// Variadic callees read the number of vector arguments from al.
	if g.externs[name] {
		g.asm.Instr("xor eax, eax")
	}

	g.asm.Instr("call %s", name)

	for j := 0; j < nsaved; j++ {
		g.asm.Instr("mov %s, %s", argRegisters[j].q, stackSlot(savedSlot(j)))
	}

	if area > 0 {
		g.asm.Instr("add rsp, %d", area)
	}

	return nil
}
