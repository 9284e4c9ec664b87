package amd64

import (
	"strings"
	"testing"

	"petalc/ir"
	"petalc/report"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var i32 = ir.Integer(32)

func local(index int, vt ir.ValueType) *ir.LocalReference {
	return &ir.LocalReference{Index: index, ValType: vt}
}

func lit(value uint64) *ir.IntegerLiteral {
	return &ir.IntegerLiteral{Value: value, ValType: i32}
}

func generate(t *testing.T, funcs ...*ir.Function) string {
	t.Helper()

	text, err := NewDriver().Generate(funcs)
	require.NoError(t, err)

	return text
}

// -----------------------------------------------------------------------------

func TestGenerateAdd(t *testing.T) {
	fn := &ir.Function{Name: "add"}
	fn.AddLocal("a", i32, ir.Parameter)
	fn.AddLocal("b", i32, ir.Parameter)
	fn.Body = []ir.Operation{
		&ir.Return{Value: &ir.BinaryOperation{LHS: local(0, i32), RHS: local(1, i32), Operand: ir.Add, ValType: i32}},
	}

	g := goldie.New(t)
	g.Assert(t, "add", []byte(generate(t, fn)))
}

func TestGenerateLocals(t *testing.T) {
	fn := &ir.Function{Name: "locals"}
	fn.AddLocal("x", i32, ir.Variable)
	fn.AddLocal("y", i32, ir.Variable)
	fn.AddLocal("z", i32, ir.Variable)
	fn.Body = []ir.Operation{
		&ir.StoreLocal{Index: 0, Value: lit(1)},
		&ir.StoreLocal{Index: 1, Value: lit(2)},
		&ir.StoreLocal{Index: 2, Value: &ir.BinaryOperation{LHS: local(0, i32), RHS: local(1, i32), Operand: ir.Add, ValType: i32}},
		&ir.Return{Value: local(2, i32)},
	}

	g := goldie.New(t)
	g.Assert(t, "locals", []byte(generate(t, fn)))
}

func TestGenerateExternCall(t *testing.T) {
	puts := &ir.Function{Name: "puts", IsExternal: true}
	puts.AddLocal("s", ir.Reference, ir.Parameter)

	main := &ir.Function{Name: "main"}
	main.AddData([]byte("hi\x00"))
	main.Body = []ir.Operation{
		&ir.FunctionCall{Name: "puts", Args: []ir.Value{&ir.DataSectionReference{Index: 0}}},
		&ir.Return{Value: lit(0)},
	}

	g := goldie.New(t)
	g.Assert(t, "extern_call", []byte(generate(t, puts, main)))
}

func TestGenerateNoTrailingEpilogueAfterReturn(t *testing.T) {
	fn := &ir.Function{Name: "f"}
	fn.Body = []ir.Operation{&ir.Return{}}

	assert.Equal(t, 1, countLines(generate(t, fn), "    ret"))

	fn.Body = nil
	assert.Equal(t, 1, countLines(generate(t, fn), "    ret"))
}

func TestGenerateStoreThroughReference(t *testing.T) {
	fn := &ir.Function{Name: "set"}
	fn.AddLocal("p", ir.Reference, ir.Parameter)
	fn.Body = []ir.Operation{&ir.StoreLocal{Index: 0, Value: lit(5)}}

	text := generate(t, fn)
	assert.Contains(t, text, "    mov eax, 5\n    mov r11, rdi\n    mov dword ptr [r11], eax\n")
}

func TestGenerateAddressOfLocal(t *testing.T) {
	fn := &ir.Function{Name: "f"}
	fn.AddLocal("x", i32, ir.Variable)
	fn.AddLocal("p", ir.Reference, ir.Variable)
	fn.Body = []ir.Operation{
		&ir.StoreLocal{Index: 0, Value: lit(1)},
		&ir.StoreLocal{Index: 1, Value: local(0, ir.Reference)},
	}

	text := generate(t, fn)
	assert.Contains(t, text, "    lea rax, [rbp-4]\n    mov qword ptr [rbp-12], rax\n")
}

func TestGenerateComputedRightOperand(t *testing.T) {
	fn := &ir.Function{Name: "f"}
	fn.AddLocal("n", i32, ir.Parameter)
	fn.Body = []ir.Operation{
		&ir.Return{Value: &ir.BinaryOperation{
			LHS:     local(0, i32),
			RHS:     &ir.Call{Name: "f", Args: []ir.Value{local(0, i32)}, ValType: i32},
			Operand: ir.Multiply,
			ValType: i32,
		}},
	}

	text := generate(t, fn)

	// The left operand survives the call on the stack and the caller's own
	// parameter is saved across it.
	assert.Contains(t, text, "    mov eax, edi\n    sub rsp, 16\n    mov qword ptr [rsp], rax\n")
	assert.Contains(t, text, "    mov qword ptr [rsp+8], rdi\n")
	assert.Contains(t, text, "    call f\n    mov rdi, qword ptr [rsp+8]\n    add rsp, 16\n")
	assert.Contains(t, text, "    mov r11d, eax\n    mov rax, qword ptr [rsp]\n    add rsp, 16\n    imul eax, r11d\n")
	assert.NotContains(t, text, "xor eax, eax")
}

func TestGenerateStackArguments(t *testing.T) {
	callee := &ir.Function{Name: "many", IsExternal: true}
	args := make([]ir.Value, 7)
	for i := range args {
		callee.AddLocal("a", i32, ir.Parameter)
		args[i] = lit(uint64(i))
	}

	fn := &ir.Function{Name: "f"}
	fn.Body = []ir.Operation{&ir.FunctionCall{Name: "many", Args: args}}

	text := generate(t, callee, fn)

	// The seventh argument is passed at the bottom of the staging area.
	assert.Contains(t, text, "    sub rsp, 64\n")
	assert.Contains(t, text, "    mov eax, 6\n    mov qword ptr [rsp], rax\n")
	assert.Contains(t, text, "    mov rdi, qword ptr [rsp+8]\n")
	assert.Contains(t, text, "    mov r9, qword ptr [rsp+48]\n")
}

func TestGenerateNarrowIntegers(t *testing.T) {
	i8 := ir.Integer(8)

	fn := &ir.Function{Name: "f"}
	fn.AddLocal("x", i8, ir.Variable)
	fn.AddLocal("y", i8, ir.Variable)
	fn.Body = []ir.Operation{
		&ir.StoreLocal{Index: 0, Value: &ir.IntegerLiteral{Value: 255, ValType: i8}},
		&ir.StoreLocal{Index: 1, Value: &ir.BinaryOperation{LHS: local(0, i8), RHS: local(0, i8), Operand: ir.Add, ValType: i8}},
	}

	text := generate(t, fn)
	assert.Contains(t, text, "    mov eax, -1\n    mov byte ptr [rbp-1], al\n")
	assert.Contains(t, text, "    movsx eax, byte ptr [rbp-1]\n    movsx r11d, byte ptr [rbp-1]\n    add eax, r11d\n")
	assert.Contains(t, text, "    mov byte ptr [rbp-2], al\n")
}

func TestGenerateRejectsDivision(t *testing.T) {
	fn := &ir.Function{Name: "div"}
	fn.AddLocal("a", i32, ir.Parameter)
	fn.AddLocal("b", i32, ir.Parameter)
	fn.Body = []ir.Operation{
		&ir.Return{Value: &ir.BinaryOperation{LHS: local(0, i32), RHS: local(1, i32), Operand: ir.Divide, ValType: i32}},
	}

	text, err := NewDriver().Generate([]*ir.Function{fn})
	assert.True(t, report.IsKind(err, report.UnsupportedOperand))
	assert.Empty(t, text)
}

func TestGenerateRejectsAddressOfRegisterParameter(t *testing.T) {
	fn := &ir.Function{Name: "f"}
	fn.AddLocal("a", i32, ir.Parameter)
	fn.AddLocal("p", ir.Reference, ir.Variable)
	fn.Body = []ir.Operation{&ir.StoreLocal{Index: 1, Value: local(0, ir.Reference)}}

	_, err := NewDriver().Generate([]*ir.Function{fn})
	assert.True(t, report.IsKind(err, report.UnsupportedValue))
}

func countLines(text, line string) int {
	n := 0
	for _, l := range strings.Split(text, "\n") {
		if l == line {
			n++
		}
	}

	return n
}
