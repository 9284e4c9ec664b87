package ir

// Operation represents a single step of a function body.  The set of
// operations is closed: every operation is one of the operation kinds below and
// is dispatched through an OperationVisitor.
type Operation interface {
	// Accept dispatches the operation to the matching method of the visitor.
	Accept(v OperationVisitor) error
}

// OperationVisitor is implemented by every consumer of IR operations.
type OperationVisitor interface {
	VisitStoreLocal(op *StoreLocal) error
	VisitReturn(op *Return) error
	VisitFunctionCall(op *FunctionCall) error
}

// StoreLocal stores a value into the local at Index.
type StoreLocal struct {
	Index int
	Value Value
}

func (sl *StoreLocal) Accept(v OperationVisitor) error {
	return v.VisitStoreLocal(sl)
}

// Return returns from the function.  Value is nil for an empty return.
type Return struct {
	Value Value
}

func (r *Return) Accept(v OperationVisitor) error {
	return v.VisitReturn(r)
}

// FunctionCall calls a function for its effect only.
type FunctionCall struct {
	Name string
	Args []Value
}

func (fc *FunctionCall) Accept(v OperationVisitor) error {
	return v.VisitFunctionCall(fc)
}
