package codegen

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sys/execabs"

	"petalc/report"
)

// Toolchain describes the external programs used to turn assembly text into
// an executable.  Programs are looked up in the host PATH.
type Toolchain struct {
	Assembler      string
	AssemblerFlags []string

	// The linker may be `ld` or a C compiler driver acting as a linker.
	Linker      string
	LinkerFlags []string

	// LinkObjects is the collection of paths to link with the final
	// executable.
	LinkObjects []string
}

// DefaultToolchain returns the toolchain used when none is configured.
func DefaultToolchain() *Toolchain {
	return &Toolchain{
		Assembler: "as",
		Linker:    "cc",
	}
}

// AssemblyPath returns the path of the assembly file for an output path.
func AssemblyPath(outputPath string) string {
	return outputPath + ".s"
}

// ObjectPath returns the path of the object file for an output path.
func ObjectPath(outputPath string) string {
	return outputPath + ".o"
}

// -----------------------------------------------------------------------------

// WriteAssembly writes the assembly text to its file.
func (tc *Toolchain) WriteAssembly(text, asmPath string) error {
	if err := os.WriteFile(asmPath, []byte(text), 0644); err != nil {
		return report.Wrap(report.OutputFailure, errors.Wrapf(err, "writing %s", asmPath), "failed to write assembly")
	}

	return nil
}

// Assemble runs the assembler over the assembly file producing the object
// file.
func (tc *Toolchain) Assemble(asmPath, objPath string) error {
	args := append(append([]string{}, tc.AssemblerFlags...), "-o", objPath, asmPath)

	return runTool(report.CompilationFailure, "assembler", tc.Assembler, args)
}

// Link runs the linker over the object file producing the executable.  Any
// partially written executable is removed if linking fails.  The object file
// is removed once the executable has been produced.
func (tc *Toolchain) Link(objPath, outputPath string) error {
	args := append([]string{}, tc.LinkerFlags...)
	args = append(args, "-o", outputPath, objPath)
	args = append(args, tc.LinkObjects...)

	if err := runTool(report.LinkingFailure, "linker", tc.Linker, args); err != nil {
		if rmErr := os.Remove(outputPath); rmErr != nil && !os.IsNotExist(rmErr) {
			return report.Wrap(report.OutputFailure, errors.Wrapf(rmErr, "removing %s", outputPath), "failed to clean up after linking")
		}

		return err
	}

	// Once linking is finished, we can remove the object file: avoid making a
	// mess in the user's working directory.
	if err := os.Remove(objPath); err != nil {
		return report.Wrap(report.OutputFailure, errors.Wrapf(err, "removing %s", objPath), "failed to delete object file")
	}

	return nil
}

// runTool runs an external tool.  Failures are reported with the given error
// kind and carry the tool's captured output.
func runTool(kind report.ErrorKind, role, name string, args []string) error {
	cmd := execabs.Command(name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cerr := report.Wrap(
			kind,
			errors.Wrapf(err, "running `%s %s`", name, strings.Join(args, " ")),
			"%s failed",
			role,
		)

		var exitErr *execabs.ExitError
		if errors.As(err, &exitErr) {
			// The tool ran but rejected its input: its output explains why.
			cerr.Message = fmt.Sprintf("%s exited with status %d", role, exitErr.ExitCode())
			cerr.Detail = stdout.String() + stderr.String()
		}

		return cerr
	}

	return nil
}
