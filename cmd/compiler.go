package cmd

import (
	"fmt"
	"io"
	"runtime"

	"petalc/ast"
	"petalc/codegen"
	"petalc/codegen/amd64"
	"petalc/codegen/arm64"
	"petalc/ir"
	"petalc/lower"
	"petalc/report"
	"petalc/walk"
)

// Compiler represents the overall state and configuration of compilation.
type Compiler struct {
	// The build profile of this compiler instance.
	profile *BuildProfile

	// The reporter used to display errors and phase progress.
	reporter *report.Reporter

	// The code generation driver of the target architecture.
	driver codegen.Driver
}

// NewCompiler creates a new compiler for the given build profile which reports
// to out.
func NewCompiler(profile *BuildProfile, out io.Writer) (*Compiler, error) {
	driver, err := newDriver(profile.TargetArch)
	if err != nil {
		return nil, err
	}

	c := &Compiler{
		profile:  profile,
		reporter: report.NewReporter(out, profile.LogLevel),
		driver:   driver,
	}

	// Executables for another architecture need a cross toolchain: the host
	// `as` and `cc` cannot link them.
	if profile.OutputFormat == FormatBin && driver.Target() != runtime.GOARCH {
		c.reporter.ReportWarning(
			"linking for `%s` on a `%s` host: the assembler `%s` and linker `%s` must target `%s`",
			driver.Target(),
			runtime.GOARCH,
			profile.Toolchain.Assembler,
			profile.Toolchain.Linker,
			driver.Target(),
		)
	}

	return c, nil
}

// newDriver returns the code generation driver for arch.
func newDriver(arch string) (codegen.Driver, error) {
	switch arch {
	case "amd64":
		return amd64.NewDriver(), nil
	case "arm64":
		return arm64.NewDriver(), nil
	default:
		return nil, fmt.Errorf("no code generation driver for architecture `%s`", arch)
	}
}

// Compile runs all the phases of the compiler over the top-level definitions
// of a compilation unit.  It returns whether compilation succeeded.  All errors
// are reported.
func (c *Compiler) Compile(defs []ast.ASTNode, source string) bool {
	defer c.reporter.ReportPhaseDone()

	// Resolve all the types in the tree and check them.
	c.reporter.ReportPhase("Resolving")
	if err := walk.Resolve(defs); err != nil {
		c.reporter.ReportError(err, source)
		return false
	}

	// Lower the tree into IR.
	c.reporter.ReportPhase("Lowering")
	funcs, err := lower.Lower(defs)
	if err != nil {
		c.reporter.ReportError(err, source)
		return false
	}

	if c.profile.Debug {
		c.dumpIR(funcs)
	}

	// Generate the assembly and produce the requested output.
	c.reporter.ReportPhase(fmt.Sprintf("Generating (%s)", c.driver.Target()))
	text, err := c.driver.Generate(funcs)
	if err != nil {
		c.reporter.ReportError(err, source)
		return false
	}

	if err := c.CodeGen(text); err != nil {
		c.reporter.ReportError(err, source)
		return false
	}

	return true
}

// dumpIR displays the IR of all functions.
func (c *Compiler) dumpIR(funcs []*ir.Function) {
	var listing string
	for _, fn := range funcs {
		listing += fn.Repr()
	}

	c.reporter.ReportInfo("IR", listing)
	c.reporter.ReportInfo("IR Dump", ir.Dump(funcs))
}
