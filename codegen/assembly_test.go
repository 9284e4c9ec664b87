package codegen

import (
	"testing"

	"petalc/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemblyStages(t *testing.T) {
	asm := NewAssembly()
	assert.Equal(t, StageEmpty, asm.Stage())

	err := asm.StartFunction()
	assert.True(t, report.IsKind(err, report.UnsupportedOperation))

	_, err = asm.Finalize()
	assert.Error(t, err)

	require.NoError(t, asm.EmitHeader(nil, ".data", ".text"))
	assert.Equal(t, StageHeader, asm.Stage())
	assert.Error(t, asm.EmitHeader(nil, ".data", ".text"))

	require.NoError(t, asm.StartFunction())
	assert.Equal(t, StageFunctions, asm.Stage())

	_, err = asm.Finalize()
	require.NoError(t, err)
	assert.Equal(t, StageFinalized, asm.Stage())

	_, err = asm.Finalize()
	assert.Error(t, err)
	assert.Error(t, asm.StartFunction())
}

func TestAssemblyDataGoesInDataSection(t *testing.T) {
	asm := NewAssembly()
	require.NoError(t, asm.EmitHeader([]string{".intel_syntax noprefix"}, ".section .rodata", ".section .text"))
	require.NoError(t, asm.StartFunction())

	asm.AddData("f_data_0", []byte("hi\x00"))
	asm.Directive(".global %s", "f")
	asm.Label("f")
	asm.AddData("f_data_1", []byte{0xff})
	asm.Instr("ret")

	text, err := asm.Finalize()
	require.NoError(t, err)

	expected := `.intel_syntax noprefix
.section .rodata
f_data_0: .byte 0x68, 0x69, 0x00
f_data_1: .byte 0xff
.section .text

.global f
f:
    ret
`
	assert.Equal(t, expected, text)
}
