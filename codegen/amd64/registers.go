package amd64

import (
	"strconv"

	"petalc/ir"
)

// register is a general purpose register named by its operand sizes.
type register struct {
	q, d, w, b string
}

var (
	rax = register{"rax", "eax", "ax", "al"}
	rdi = register{"rdi", "edi", "di", "dil"}
	rsi = register{"rsi", "esi", "si", "sil"}
	rdx = register{"rdx", "edx", "dx", "dl"}
	rcx = register{"rcx", "ecx", "cx", "cl"}
	r8  = register{"r8", "r8d", "r8w", "r8b"}
	r9  = register{"r9", "r9d", "r9w", "r9b"}
	r10 = register{"r10", "r10d", "r10w", "r10b"}
	r11 = register{"r11", "r11d", "r11w", "r11b"}
)

// argRegisters are the integer argument registers of the System V ABI.
var argRegisters = []register{rdi, rsi, rdx, rcx, r8, r9}

// sized returns the name of the register for a value of the given bit width.
func (r register) sized(width int) string {
	switch width {
	case 8:
		return r.b
	case 16:
		return r.w
	case 32:
		return r.d
	default:
		return r.q
	}
}

// of returns the name of the register holding a value of type vt.
func (r register) of(vt ir.ValueType) string {
	return r.sized(bits(vt))
}

// bits returns the width of a value of type vt in bits.
func bits(vt ir.ValueType) int {
	if vt.IsReference {
		return 64
	}

	return vt.Width
}

// ptrSize returns the memory operand size keyword for a value of type vt.
func ptrSize(vt ir.ValueType) string {
	switch bits(vt) {
	case 8:
		return "byte ptr"
	case 16:
		return "word ptr"
	case 32:
		return "dword ptr"
	default:
		return "qword ptr"
	}
}

// immediate formats an integer literal as a signed immediate of the given
// bit width.
func immediate(value uint64, width int) string {
	if width > 0 && width < 64 {
		shift := uint(64 - width)
		return strconv.FormatInt(int64(value<<shift)>>shift, 10)
	}

	return strconv.FormatInt(int64(value), 10)
}

// isImmediate returns whether an operand is an immediate.
func isImmediate(op string) bool {
	return len(op) > 0 && (op[0] == '-' || ('0' <= op[0] && op[0] <= '9'))
}

// fitsImm32 returns whether an immediate operand can be encoded as a sign
// extended 32 bit immediate.
func fitsImm32(op string) bool {
	n, err := strconv.ParseInt(op, 10, 64)
	return err == nil && -1<<31 <= n && n < 1<<31
}

// stackSlot returns the memory operand for the quadword at offset from rsp.
func stackSlot(offset int) string {
	if offset == 0 {
		return "qword ptr [rsp]"
	}

	return "qword ptr [rsp+" + strconv.Itoa(offset) + "]"
}
