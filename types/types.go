package types

import "strconv"

// Type represents a Petal data type.  Types are pure values: two types are
// equal if they are structurally equal.
type Type interface {
	// Returns whether this type is equal to the other type.  This should only
	// be called through `Equals`.
	equals(other Type) bool

	// Returns the size of this type in bytes.
	Size() int

	// Returns the representative string for this type.
	Repr() string
}

// PointerSize is the size of a reference on all supported targets.
const PointerSize = 8

// Equals returns whether two types are structurally equal.
func Equals(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.equals(b)
}

// -----------------------------------------------------------------------------

// IntegerType represents a signed integer type of a given bit width.
type IntegerType struct {
	Width int
}

func (it IntegerType) equals(other Type) bool {
	if oit, ok := other.(IntegerType); ok {
		return it.Width == oit.Width
	}

	return false
}

func (it IntegerType) Size() int {
	return it.Width / 8
}

func (it IntegerType) Repr() string {
	return "i" + strconv.Itoa(it.Width)
}

// BoolType represents the boolean type.
type BoolType struct{}

func (BoolType) equals(other Type) bool {
	_, ok := other.(BoolType)
	return ok
}

func (BoolType) Size() int {
	return 1
}

func (BoolType) Repr() string {
	return "bool"
}

// VoidType represents the absence of a value.
type VoidType struct{}

func (VoidType) equals(other Type) bool {
	_, ok := other.(VoidType)
	return ok
}

func (VoidType) Size() int {
	return 0
}

func (VoidType) Repr() string {
	return "void"
}

// ReferenceType represents a reference to a value of the element type.
type ReferenceType struct {
	ElemType Type
}

func (rt ReferenceType) equals(other Type) bool {
	if ort, ok := other.(ReferenceType); ok {
		return Equals(rt.ElemType, ort.ElemType)
	}

	return false
}

func (rt ReferenceType) Size() int {
	return PointerSize
}

func (rt ReferenceType) Repr() string {
	return "&" + rt.ElemType.Repr()
}

// UnresolvedType is a named type that has not been resolved yet.  No
// unresolved type remains reachable from a tree that has been resolved.
type UnresolvedType struct {
	Name string
}

func (ut UnresolvedType) equals(other Type) bool {
	if out, ok := other.(UnresolvedType); ok {
		return ut.Name == out.Name
	}

	return false
}

func (ut UnresolvedType) Size() int {
	return 0
}

func (ut UnresolvedType) Repr() string {
	return ut.Name
}

// -----------------------------------------------------------------------------

// IsVoid returns whether typ is the void type.
func IsVoid(typ Type) bool {
	_, ok := typ.(VoidType)
	return ok
}

// IsInteger returns whether typ is an integer type.
func IsInteger(typ Type) bool {
	_, ok := typ.(IntegerType)
	return ok
}

// IsResolved returns whether typ contains no unresolved component.
func IsResolved(typ Type) bool {
	switch v := typ.(type) {
	case UnresolvedType:
		return false
	case ReferenceType:
		return IsResolved(v.ElemType)
	default:
		return typ != nil
	}
}
