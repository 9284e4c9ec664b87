package codegen

import (
	"fmt"
	"strings"

	"petalc/report"
)

// Stage is the stage of an assembly module being built.
type Stage int

// Enumeration of assembly stages.
const (
	StageEmpty Stage = iota
	StageHeader
	StageFunctions
	StageFinalized
)

// Assembly is the text of an assembly module being built.  Byte blobs can be
// added to its read-only data section at any point before it is finalized.
type Assembly struct {
	lines []string

	// The index of the line before which data entries are inserted.
	dataIndex int

	stage Stage
}

// NewAssembly creates a new, empty assembly module.
func NewAssembly() *Assembly {
	return &Assembly{}
}

// Stage returns the current stage of the module.
func (a *Assembly) Stage() Stage {
	return a.stage
}

// EmitHeader emits the preamble of the module followed by the directive
// opening its read-only data section and the directive opening its text
// section.
func (a *Assembly) EmitHeader(preamble []string, dataSection, textSection string) error {
	if a.stage != StageEmpty {
		return errStage("the header has already been emitted")
	}

	a.lines = append(a.lines, preamble...)
	a.lines = append(a.lines, dataSection)
	a.dataIndex = len(a.lines)
	a.lines = append(a.lines, textSection)

	a.stage = StageHeader
	return nil
}

// StartFunction begins the emission of a new function.
func (a *Assembly) StartFunction() error {
	if a.stage != StageHeader && a.stage != StageFunctions {
		return errStage("functions can only be emitted after the header")
	}

	a.lines = append(a.lines, "")
	a.stage = StageFunctions
	return nil
}

// AddData adds a labeled byte blob to the read-only data section.
func (a *Assembly) AddData(label string, data []byte) {
	sb := strings.Builder{}
	sb.WriteString(label)
	sb.WriteString(": .byte ")

	for i, b := range data {
		if i != 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "0x%02x", b)
	}

	a.lines = append(a.lines, "")
	copy(a.lines[a.dataIndex+1:], a.lines[a.dataIndex:])
	a.lines[a.dataIndex] = sb.String()
	a.dataIndex++
}

// Directive emits an unindented directive.
func (a *Assembly) Directive(format string, args ...interface{}) {
	a.lines = append(a.lines, fmt.Sprintf(format, args...))
}

// Label emits a label.
func (a *Assembly) Label(name string) {
	a.lines = append(a.lines, name+":")
}

// Instr emits an instruction.
func (a *Assembly) Instr(format string, args ...interface{}) {
	a.lines = append(a.lines, "    "+fmt.Sprintf(format, args...))
}

// Finalize returns the text of the module.  No more text may be added.
func (a *Assembly) Finalize() (string, error) {
	if a.stage == StageEmpty || a.stage == StageFinalized {
		return "", errStage("only a module with a header can be finalized once")
	}

	a.stage = StageFinalized
	return strings.Join(a.lines, "\n") + "\n", nil
}

func errStage(msg string) error {
	return report.Raise(report.UnsupportedOperation, nil, "invalid assembly stage: %s", msg)
}
