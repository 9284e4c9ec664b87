package ir

import (
	"fmt"
	"strconv"
)

// ValueType is the type of an IR value: either an integer of a given width or
// a reference.
type ValueType struct {
	// The width of an integer in bits.  It is zero for references.
	Width int

	IsReference bool
}

// Integer returns the integer value type of the given bit width.
func Integer(width int) ValueType {
	return ValueType{Width: width}
}

// Reference is the value type of all references.
var Reference = ValueType{IsReference: true}

// Size returns the size of a value of this type in bytes.
func (vt ValueType) Size() int {
	if vt.IsReference {
		return 8
	}

	return vt.Width / 8
}

func (vt ValueType) Repr() string {
	if vt.IsReference {
		return "ref"
	}

	return "i" + strconv.Itoa(vt.Width)
}

// -----------------------------------------------------------------------------

// Value represents a value computed by an IR operation.  The set of values is
// closed: every value is one of the value kinds below and is dispatched through
// a ValueVisitor.
type Value interface {
	// Type returns the type of the value.
	Type() ValueType

	// Accept dispatches the value to the matching method of the visitor.
	Accept(v ValueVisitor) (string, error)
}

// ValueVisitor is implemented by every consumer of IR values.  Visit methods
// return an operand string: the textual form of the value as understood by
// the visitor.
type ValueVisitor interface {
	VisitIntegerLiteral(v *IntegerLiteral) (string, error)
	VisitLocalReference(v *LocalReference) (string, error)
	VisitBinaryOperation(v *BinaryOperation) (string, error)
	VisitCall(v *Call) (string, error)
	VisitDataSectionReference(v *DataSectionReference) (string, error)
}

// IntegerLiteral is an integer constant.
type IntegerLiteral struct {
	Value   uint64
	ValType ValueType
}

func (il *IntegerLiteral) Type() ValueType {
	return il.ValType
}

func (il *IntegerLiteral) Accept(v ValueVisitor) (string, error) {
	return v.VisitIntegerLiteral(il)
}

// LocalReference is the use of a local by index.  If its type is a reference
// and the local is an integer, the value is the address of the local.
type LocalReference struct {
	Index   int
	ValType ValueType
}

func (lr *LocalReference) Type() ValueType {
	return lr.ValType
}

func (lr *LocalReference) Accept(v ValueVisitor) (string, error) {
	return v.VisitLocalReference(lr)
}

// Operand is a binary arithmetic operator.  It must be one of the enumerated
// operands below.
type Operand int

// Enumeration of operands.
const (
	Add Operand = iota
	Subtract
	Multiply
	Divide
)

var operandSymbols = [...]string{"+", "-", "*", "/"}

func (op Operand) String() string {
	if 0 <= op && int(op) < len(operandSymbols) {
		return operandSymbols[op]
	}

	return fmt.Sprintf("operand(%d)", int(op))
}

// BinaryOperation applies an operand to two values.
type BinaryOperation struct {
	LHS, RHS Value
	Operand  Operand
	ValType  ValueType
}

func (bo *BinaryOperation) Type() ValueType {
	return bo.ValType
}

func (bo *BinaryOperation) Accept(v ValueVisitor) (string, error) {
	return v.VisitBinaryOperation(bo)
}

// Call is a function call whose result is used as a value.
type Call struct {
	Name    string
	Args    []Value
	ValType ValueType
}

func (c *Call) Type() ValueType {
	return c.ValType
}

func (c *Call) Accept(v ValueVisitor) (string, error) {
	return v.VisitCall(c)
}

// DataSectionReference is the address of a byte blob in the data section of
// the enclosing function.
type DataSectionReference struct {
	Index int
}

func (dr *DataSectionReference) Type() ValueType {
	return Reference
}

func (dr *DataSectionReference) Accept(v ValueVisitor) (string, error) {
	return v.VisitDataSectionReference(dr)
}

// IsComputed returns whether a value requires instructions to be evaluated as
// opposed to being directly usable as an operand.
func IsComputed(v Value) bool {
	switch v.(type) {
	case *BinaryOperation, *Call:
		return true
	default:
		return false
	}
}
