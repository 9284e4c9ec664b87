package cmd

import (
	"os"

	"github.com/pkg/errors"

	"petalc/codegen"
	"petalc/report"
)

// CodeGen turns the generated assembly text into the output of the requested
// format.  Each format stops at a different stage: writing the assembly file
// `<output>.s`, assembling it into the object file `<output>.o`, or linking the
// object file into an executable at `<output>`.
func (c *Compiler) CodeGen(text string) error {
	tc := c.profile.Toolchain
	outputPath := c.profile.OutputPath

	asmPath := codegen.AssemblyPath(outputPath)

	c.reporter.ReportPhase("Writing")
	if err := tc.WriteAssembly(text, asmPath); err != nil {
		return err
	}

	if c.profile.OutputFormat == FormatASM {
		return nil
	}

	objPath := codegen.ObjectPath(outputPath)

	c.reporter.ReportPhase("Assembling")
	if err := tc.Assemble(asmPath, objPath); err != nil {
		return err
	}

	// The assembly file is kept for inspection in debug builds.
	if !c.profile.Debug {
		if err := os.Remove(asmPath); err != nil {
			return report.Wrap(report.OutputFailure, errors.Wrapf(err, "removing %s", asmPath), "failed to delete assembly file")
		}
	}

	if c.profile.OutputFormat == FormatObj {
		return nil
	}

	c.reporter.ReportPhase("Linking")
	return tc.Link(objPath, outputPath)
}
