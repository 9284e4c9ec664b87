package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = `func main() i32 {
    x: i7 = 1
    return x
}`

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("Verbose")
	require.NoError(t, err)
	assert.Equal(t, LogLevelVerbose, level)

	_, err = ParseLogLevel("loud")
	assert.Error(t, err)
}

func TestReportErrorShowsSource(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewReporter(out, LogLevelVerbose)

	r.ReportError(Raise(UnresolvedType, &TextSpan{Line: 1, Col: 7, Length: 2}, "unresolved type: `i7`"), source)

	text := out.String()
	assert.True(t, r.AnyErrors())
	assert.Contains(t, text, "2:8: ")
	assert.Contains(t, text, "unresolved type: `i7`")
	assert.Contains(t, text, "1 | func main() i32 {\n")
	assert.Contains(t, text, "2 |     x: i7 = 1\n")
	assert.Contains(t, text, "  | "+"       ")
	assert.Contains(t, text, "^^")
	assert.NotContains(t, text, "return x")
}

func TestReportErrorShowsDetail(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewReporter(out, LogLevelError)

	cerr := Raise(CompilationFailure, nil, "assembler exited with status 1")
	cerr.Detail = "out.s:3: Error: no such instruction\n"
	r.ReportError(cerr, "")

	assert.Contains(t, out.String(), "out.s:3: Error: no such instruction\n")
}

func TestInternalErrorsAreAlwaysShown(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewReporter(out, LogLevelSilent)

	r.ReportError(Raise(MissingTypeInformation, nil, "expression has no type"), source)
	assert.Contains(t, out.String(), "internal compiler error")
	assert.Contains(t, out.String(), "no source location is available for this error")

	out.Reset()
	r.ReportError(Raise(MismatchedType, nil, "type mismatch"), source)
	assert.Empty(t, out.String())
	assert.True(t, r.AnyErrors())
}

func TestReportStdError(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewReporter(out, LogLevelError)

	r.ReportError(errors.New("no such file"), "")
	assert.Contains(t, out.String(), "no such file")
}

func TestReportLevels(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewReporter(out, LogLevelWarn)

	r.ReportInfo("ir", "func main() {\n}\n")
	r.ReportPhase("Resolving")
	r.ReportPhaseDone()
	assert.Empty(t, out.String())

	r.ReportWarning("unused variable `%s`", "x")
	assert.Contains(t, out.String(), "unused variable `x`")
	assert.False(t, r.AnyErrors())
}

func TestReportPhases(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewReporter(out, LogLevelVerbose)

	r.ReportPhase("Resolving")
	r.ReportPhase("Lowering")
	r.ReportPhaseDone()

	text := out.String()
	assert.Contains(t, text, "Resolving...")
	assert.Contains(t, text, "Resolving: done (")
	assert.Contains(t, text, "Lowering: done (")
}
