package codegen

import (
	"testing"

	"petalc/ir"
	"petalc/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCaps = &Capabilities{
	Operands:     map[ir.Operand]bool{ir.Add: true},
	ArgRegisters: 2,
	MaxFrameSize: 16,
}

func TestCheckCapabilitiesAcceptsSupportedModule(t *testing.T) {
	fn := &ir.Function{Name: "f"}
	fn.AddLocal("x", ir.Integer(32), ir.Variable)
	fn.AddData([]byte("s\x00"))
	fn.Body = []ir.Operation{
		&ir.StoreLocal{Index: 0, Value: &ir.BinaryOperation{
			LHS:     &ir.IntegerLiteral{Value: 1, ValType: ir.Integer(32)},
			RHS:     &ir.LocalReference{Index: 0, ValType: ir.Integer(32)},
			Operand: ir.Add,
			ValType: ir.Integer(32),
		}},
		&ir.FunctionCall{Name: "g", Args: []ir.Value{&ir.DataSectionReference{Index: 0}}},
		&ir.Return{},
	}

	assert.NoError(t, CheckCapabilities([]*ir.Function{fn}, testCaps))
}

func TestCheckCapabilitiesRejectsOperand(t *testing.T) {
	fn := &ir.Function{Name: "f"}
	fn.Body = []ir.Operation{
		&ir.Return{Value: &ir.Call{
			Name: "g",
			Args: []ir.Value{&ir.BinaryOperation{
				LHS:     &ir.IntegerLiteral{Value: 1, ValType: ir.Integer(32)},
				RHS:     &ir.IntegerLiteral{Value: 2, ValType: ir.Integer(32)},
				Operand: ir.Multiply,
				ValType: ir.Integer(32),
			}},
			ValType: ir.Integer(32),
		}},
	}

	err := CheckCapabilities([]*ir.Function{fn}, testCaps)
	assert.True(t, report.IsKind(err, report.UnsupportedOperand))
}

func TestCheckCapabilitiesRejectsLargeFrame(t *testing.T) {
	fn := &ir.Function{Name: "f"}
	for i := 0; i < 3; i++ {
		fn.AddLocal("x", ir.Integer(64), ir.Variable)
	}

	err := CheckCapabilities([]*ir.Function{fn}, testCaps)
	assert.True(t, report.IsKind(err, report.UnsupportedOperation))
}

func TestCheckCapabilitiesRejectsBadIndices(t *testing.T) {
	fn := &ir.Function{Name: "f", Span: &report.TextSpan{Line: 2}}
	fn.Body = []ir.Operation{&ir.StoreLocal{Index: 3, Value: &ir.IntegerLiteral{ValType: ir.Integer(32)}}}

	// Malformed IR is a compiler bug: it is reported without a source span.
	err := CheckCapabilities([]*ir.Function{fn}, testCaps)
	requireInternal(t, err)

	fn.Body = []ir.Operation{&ir.Return{Value: &ir.DataSectionReference{Index: 0}}}
	err = CheckCapabilities([]*ir.Function{fn}, testCaps)
	requireInternal(t, err)
}

func requireInternal(t *testing.T, err error) {
	t.Helper()

	var cerr *report.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, report.InvalidIR, cerr.Kind)
	assert.True(t, cerr.Internal())
	assert.Nil(t, cerr.Span)
}

func TestCheckCapabilitiesAddressOfParameter(t *testing.T) {
	fn := &ir.Function{Name: "f"}
	fn.AddLocal("a", ir.Integer(32), ir.Parameter)
	fn.AddLocal("b", ir.Integer(32), ir.Parameter)
	fn.AddLocal("c", ir.Integer(32), ir.Parameter)

	// Only the third parameter lives in memory.
	fn.Body = []ir.Operation{&ir.Return{Value: &ir.LocalReference{Index: 2, ValType: ir.Reference}}}
	assert.NoError(t, CheckCapabilities([]*ir.Function{fn}, testCaps))

	fn.Body = []ir.Operation{&ir.Return{Value: &ir.LocalReference{Index: 1, ValType: ir.Reference}}}
	err := CheckCapabilities([]*ir.Function{fn}, testCaps)
	assert.True(t, report.IsKind(err, report.UnsupportedValue))
}

func TestCheckCapabilitiesSkipsExterns(t *testing.T) {
	fn := &ir.Function{Name: "f", IsExternal: true}
	for i := 0; i < 8; i++ {
		fn.AddLocal("x", ir.Integer(64), ir.Parameter)
	}

	assert.NoError(t, CheckCapabilities([]*ir.Function{fn}, testCaps))
}
