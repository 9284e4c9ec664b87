package ir

import (
	"strconv"
	"strings"

	"github.com/kr/pretty"

	"petalc/util"
)

// Repr returns the textual representation of the function.
func (fn *Function) Repr() string {
	sb := strings.Builder{}

	if fn.IsExternal {
		sb.WriteString("extern ")
	}

	sb.WriteString("func ")
	sb.WriteString(fn.Name)
	sb.WriteRune('(')

	params, _ := fn.Params()
	for i, param := range params {
		if i != 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(param.Name)
		sb.WriteString(": ")
		sb.WriteString(param.Type.Repr())
	}

	sb.WriteRune(')')

	if fn.IsExternal {
		sb.WriteRune('\n')
		return sb.String()
	}

	sb.WriteString(" {\n")

	for _, local := range fn.Locals {
		if local.Kind == Variable {
			sb.WriteString("    var ")
			sb.WriteString(local.Name)
			sb.WriteString(": ")
			sb.WriteString(local.Type.Repr())
			sb.WriteRune('\n')
		}
	}

	p := &printer{fn: fn, sb: &sb}
	for _, op := range fn.Body {
		sb.WriteString("    ")

		// Printing never fails.
		_ = op.Accept(p)

		sb.WriteRune('\n')
	}

	for i, data := range fn.Data {
		sb.WriteString("    data[")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("] = ")
		sb.WriteString(strconv.Quote(string(data)))
		sb.WriteRune('\n')
	}

	sb.WriteString("}\n")
	return sb.String()
}

// Dump returns a structural dump of the given functions for debugging.
func Dump(funcs []*Function) string {
	return pretty.Sprint(funcs)
}

// -----------------------------------------------------------------------------

// printer renders operations and values as text.
type printer struct {
	fn *Function
	sb *strings.Builder
}

func (p *printer) VisitStoreLocal(op *StoreLocal) error {
	p.sb.WriteString(p.localName(op.Index))
	p.sb.WriteString(" = ")
	p.sb.WriteString(p.value(op.Value))
	return nil
}

func (p *printer) VisitReturn(op *Return) error {
	p.sb.WriteString("return")

	if op.Value != nil {
		p.sb.WriteRune(' ')
		p.sb.WriteString(p.value(op.Value))
	}

	return nil
}

func (p *printer) VisitFunctionCall(op *FunctionCall) error {
	p.sb.WriteString(p.call(op.Name, op.Args))
	return nil
}

func (p *printer) VisitIntegerLiteral(v *IntegerLiteral) (string, error) {
	return strconv.FormatUint(v.Value, 10), nil
}

func (p *printer) VisitLocalReference(v *LocalReference) (string, error) {
	name := p.localName(v.Index)

	if v.ValType.IsReference && v.Index < len(p.fn.Locals) && !p.fn.Locals[v.Index].Type.IsReference {
		return "&" + name, nil
	}

	return name, nil
}

func (p *printer) VisitBinaryOperation(v *BinaryOperation) (string, error) {
	return "(" + p.value(v.LHS) + " " + v.Operand.String() + " " + p.value(v.RHS) + ")", nil
}

func (p *printer) VisitCall(v *Call) (string, error) {
	return p.call(v.Name, v.Args), nil
}

func (p *printer) VisitDataSectionReference(v *DataSectionReference) (string, error) {
	return "data[" + strconv.Itoa(v.Index) + "]", nil
}

func (p *printer) value(v Value) string {
	s, _ := v.Accept(p)
	return s
}

func (p *printer) call(name string, args []Value) string {
	return name + "(" + strings.Join(util.Map(args, p.value), ", ") + ")"
}

func (p *printer) localName(index int) string {
	if 0 <= index && index < len(p.fn.Locals) {
		return p.fn.Locals[index].Name
	}

	return "$" + strconv.Itoa(index)
}
