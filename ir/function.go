package ir

import (
	"petalc/report"
	"strconv"
)

// Function represents a single Petal function in the IR.
type Function struct {
	// The name of the function.
	Name string

	// The span of the function definition.
	Span *report.TextSpan

	// The operations making up the function body in order.
	Body []Operation

	// The local storage slots of the function: its parameters followed by
	// its variables in declaration order.
	Locals []Local

	// The byte blobs of the function's read-only data section.  They are
	// referenced by index.
	Data [][]byte

	// Whether the function is only declared: external functions have no body.
	IsExternal bool
}

// LocalKind indicates how a local is stored.  It must be one of the enumerated
// local kinds below.
type LocalKind int

// Enumeration of local kinds.
const (
	Parameter LocalKind = iota
	Variable
)

// Local represents a storage slot for a parameter or a declared variable.
type Local struct {
	Name string
	Type ValueType
	Kind LocalKind
}

// AddLocal appends a new local to the function and returns its index.
func (fn *Function) AddLocal(name string, typ ValueType, kind LocalKind) int {
	fn.Locals = append(fn.Locals, Local{Name: name, Type: typ, Kind: kind})
	return len(fn.Locals) - 1
}

// AddData appends a byte blob to the function's data section and returns its
// index.
func (fn *Function) AddData(data []byte) int {
	fn.Data = append(fn.Data, data)
	return len(fn.Data) - 1
}

// Params returns the parameter locals of the function in order along with
// their local indices.
func (fn *Function) Params() (params []Local, indices []int) {
	for i, local := range fn.Locals {
		if local.Kind == Parameter {
			params = append(params, local)
			indices = append(indices, i)
		}
	}

	return
}

// ParamPosition returns the position of the local at index among the
// parameters of the function.  It returns -1 if the local is not a parameter.
func (fn *Function) ParamPosition(index int) int {
	if fn.Locals[index].Kind != Parameter {
		return -1
	}

	pos := 0
	for i := 0; i < index; i++ {
		if fn.Locals[i].Kind == Parameter {
			pos++
		}
	}

	return pos
}

// DataLabel returns the assembly symbol naming the byte blob at index.
func (fn *Function) DataLabel(index int) string {
	return fn.Name + "_data_" + strconv.Itoa(index)
}
