package arm64

import (
	"fmt"
	"strconv"
	"strings"

	"petalc/ir"
)

// numArgRegisters is the number of integer argument registers: x0 to x7.
const numArgRegisters = 8

// Scratch registers.  All of them are caller saved.
const (
	accReg    = 9  // Accumulator of binary operations.
	rhsReg    = 10 // Right operand of binary operations.
	resultReg = 11 // Result of binary operations.
	callReg   = 12 // Result of calls.
	ptrReg    = 13 // References being stored through.
)

// reg returns the name of register n holding a value of type vt.
func reg(n int, vt ir.ValueType) string {
	if vt.IsReference || vt.Width == 64 {
		return xreg(n)
	}

	return "w" + strconv.Itoa(n)
}

// xreg returns the 64 bit name of register n.
func xreg(n int) string {
	return "x" + strconv.Itoa(n)
}

// bits returns the width of a value of type vt in bits.
func bits(vt ir.ValueType) int {
	if vt.IsReference {
		return 64
	}

	return vt.Width
}

// loadMnemonic returns the load instruction for a value of type vt.  Narrow
// integers are sign extended.  Negative offsets need the unscaled forms.
func loadMnemonic(vt ir.ValueType, unscaled bool) string {
	var mnemonic string
	switch bits(vt) {
	case 8:
		mnemonic = "ldrsb"
	case 16:
		mnemonic = "ldrsh"
	default:
		mnemonic = "ldr"
	}

	if unscaled {
		return strings.Replace(mnemonic, "ldr", "ldur", 1)
	}

	return mnemonic
}

// storeMnemonic returns the store instruction for a value of type vt.
func storeMnemonic(vt ir.ValueType, unscaled bool) string {
	var mnemonic string
	switch bits(vt) {
	case 8:
		mnemonic = "strb"
	case 16:
		mnemonic = "strh"
	default:
		mnemonic = "str"
	}

	if unscaled {
		return strings.Replace(mnemonic, "str", "stur", 1)
	}

	return mnemonic
}

// immediate formats an integer literal as a signed immediate of the given bit
// width.
func immediate(value uint64, width int) string {
	if width > 0 && width < 64 {
		shift := uint(64 - width)
		return "#" + strconv.FormatInt(int64(value<<shift)>>shift, 10)
	}

	return "#" + strconv.FormatInt(int64(value), 10)
}

// isImmediate returns whether an operand is an immediate.
func isImmediate(op string) bool {
	return strings.HasPrefix(op, "#")
}

// isMemory returns whether an operand is a memory operand.
func isMemory(op string) bool {
	return strings.HasPrefix(op, "[")
}

// isUnscaled returns whether a memory operand has a negative offset.
func isUnscaled(op string) bool {
	return strings.Contains(op, "#-")
}

// frameSlot returns the memory operand at offset from the frame pointer.
func frameSlot(offset int) string {
	return fmt.Sprintf("[x29, #%d]", offset)
}

// stackSlot returns the memory operand at offset from the stack pointer.
func stackSlot(offset int) string {
	if offset == 0 {
		return "[sp]"
	}

	return fmt.Sprintf("[sp, #%d]", offset)
}
