package codegen

import "petalc/ir"

// StackAlign is the alignment of the stack required at call boundaries.
const StackAlign = 16

// Frame is the stack layout of a function.
type Frame struct {
	// Offsets holds the byte offset of every local in the frame.  Parameters
	// are not stored in the frame and have an offset of -1.
	Offsets []int

	// Size is the total size of all variables.
	Size int

	// AlignedSize is Size rounded up to the stack alignment.  It is the number
	// of bytes reserved for the frame.
	AlignedSize int
}

// NewFrame computes the stack layout of a function.  Each variable is placed
// at the cumulative size of all variables declared before it.
func NewFrame(fn *ir.Function) *Frame {
	frame := &Frame{Offsets: make([]int, len(fn.Locals))}

	for i, local := range fn.Locals {
		if local.Kind == ir.Parameter {
			frame.Offsets[i] = -1
			continue
		}

		frame.Offsets[i] = frame.Size
		frame.Size += local.Type.Size()
	}

	frame.AlignedSize = AlignUp(frame.Size, StackAlign)
	return frame
}

// Depth returns the distance from the frame pointer to the lowest byte of the
// local at index.  The local is stored at `fp - Depth(index)`.
func (f *Frame) Depth(fn *ir.Function, index int) int {
	return f.Offsets[index] + fn.Locals[index].Type.Size()
}

// AlignUp rounds n up to the nearest multiple of align.
func AlignUp(n, align int) int {
	if spill := n % align; spill != 0 {
		return n + align - spill
	}

	return n
}
