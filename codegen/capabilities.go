package codegen

import (
	"petalc/ir"
	"petalc/report"
)

// Capabilities describes what a driver can emit.  It is checked against the
// whole module before any text is generated.
type Capabilities struct {
	// The binary operands the driver can emit.
	Operands map[ir.Operand]bool

	// The number of integer argument registers of the calling convention.
	ArgRegisters int

	// The largest frame the driver can address.  Zero means no limit.
	MaxFrameSize int
}

// CheckCapabilities returns an error for the first construct in funcs that the
// driver with the given capabilities cannot emit.
func CheckCapabilities(funcs []*ir.Function, caps *Capabilities) error {
	for _, fn := range funcs {
		if fn.IsExternal {
			continue
		}

		frame := NewFrame(fn)
		if caps.MaxFrameSize > 0 && frame.AlignedSize > caps.MaxFrameSize {
			return report.Raise(
				report.UnsupportedOperation,
				fn.Span,
				"function `%s` needs a %d byte frame but at most %d bytes are supported",
				fn.Name,
				frame.AlignedSize,
				caps.MaxFrameSize,
			)
		}

		c := &checker{fn: fn, caps: caps}
		for _, op := range fn.Body {
			if err := op.Accept(c); err != nil {
				return err
			}
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

// checker walks the operations of a function looking for unsupported
// constructs.
type checker struct {
	fn   *ir.Function
	caps *Capabilities
}

func (c *checker) VisitStoreLocal(op *ir.StoreLocal) error {
	if err := c.checkIndex(op.Index); err != nil {
		return err
	}

	return c.checkValue(op.Value)
}

func (c *checker) VisitReturn(op *ir.Return) error {
	if op.Value == nil {
		return nil
	}

	return c.checkValue(op.Value)
}

func (c *checker) VisitFunctionCall(op *ir.FunctionCall) error {
	return c.checkValues(op.Args)
}

func (c *checker) VisitIntegerLiteral(v *ir.IntegerLiteral) (string, error) {
	return "", nil
}

func (c *checker) VisitLocalReference(v *ir.LocalReference) (string, error) {
	if err := c.checkIndex(v.Index); err != nil {
		return "", err
	}

	// Parameters passed in registers have no address.
	local := c.fn.Locals[v.Index]
	if v.ValType.IsReference && !local.Type.IsReference {
		if pos := c.fn.ParamPosition(v.Index); pos >= 0 && pos < c.caps.ArgRegisters {
			return "", report.Raise(
				report.UnsupportedValue,
				c.fn.Span,
				"cannot take a reference to parameter `%s` of function `%s`",
				local.Name,
				c.fn.Name,
			)
		}
	}

	return "", nil
}

func (c *checker) VisitBinaryOperation(v *ir.BinaryOperation) (string, error) {
	if !c.caps.Operands[v.Operand] {
		return "", report.Raise(
			report.UnsupportedOperand,
			c.fn.Span,
			"operator `%s` is not supported by this target yet",
			v.Operand,
		)
	}

	if err := c.checkValue(v.LHS); err != nil {
		return "", err
	}

	return "", c.checkValue(v.RHS)
}

func (c *checker) VisitCall(v *ir.Call) (string, error) {
	return "", c.checkValues(v.Args)
}

func (c *checker) VisitDataSectionReference(v *ir.DataSectionReference) (string, error) {
	if v.Index < 0 || v.Index >= len(c.fn.Data) {
		return "", report.Raise(
			report.InvalidIR,
			nil,
			"function `%s` has no data entry %d",
			c.fn.Name,
			v.Index,
		)
	}

	return "", nil
}

func (c *checker) checkValue(v ir.Value) error {
	_, err := v.Accept(c)
	return err
}

func (c *checker) checkValues(values []ir.Value) error {
	for _, v := range values {
		if err := c.checkValue(v); err != nil {
			return err
		}
	}

	return nil
}

func (c *checker) checkIndex(index int) error {
	if index < 0 || index >= len(c.fn.Locals) {
		return report.Raise(
			report.InvalidIR,
			nil,
			"function `%s` has no local %d",
			c.fn.Name,
			index,
		)
	}

	return nil
}
