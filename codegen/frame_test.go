package codegen

import (
	"testing"

	"petalc/ir"

	"github.com/stretchr/testify/assert"
)

func TestFrameLayout(t *testing.T) {
	fn := &ir.Function{Name: "f"}
	fn.AddLocal("a", ir.Integer(32), ir.Parameter)
	fn.AddLocal("x", ir.Integer(32), ir.Variable)
	fn.AddLocal("y", ir.Integer(8), ir.Variable)
	fn.AddLocal("p", ir.Reference, ir.Variable)

	frame := NewFrame(fn)
	assert.Equal(t, []int{-1, 0, 4, 5}, frame.Offsets)
	assert.Equal(t, 13, frame.Size)
	assert.Equal(t, 16, frame.AlignedSize)

	assert.Equal(t, 4, frame.Depth(fn, 1))
	assert.Equal(t, 5, frame.Depth(fn, 2))
	assert.Equal(t, 13, frame.Depth(fn, 3))
}

func TestFrameOffsetsAreMonotonic(t *testing.T) {
	fn := &ir.Function{Name: "f"}
	for _, width := range []int{64, 16, 32, 8, 64} {
		fn.AddLocal("v", ir.Integer(width), ir.Variable)
	}

	frame := NewFrame(fn)
	for i := 1; i < len(frame.Offsets); i++ {
		assert.Greater(t, frame.Offsets[i], frame.Offsets[i-1])
	}

	assert.Equal(t, 0, frame.AlignedSize%StackAlign)
	assert.GreaterOrEqual(t, frame.AlignedSize, frame.Size)
}

func TestEmptyFrame(t *testing.T) {
	frame := NewFrame(&ir.Function{Name: "f"})
	assert.Equal(t, 0, frame.Size)
	assert.Equal(t, 0, frame.AlignedSize)
}

func TestAlignUp(t *testing.T) {
	assert.Equal(t, 0, AlignUp(0, 16))
	assert.Equal(t, 16, AlignUp(12, 16))
	assert.Equal(t, 16, AlignUp(16, 16))
	assert.Equal(t, 32, AlignUp(17, 16))
}
