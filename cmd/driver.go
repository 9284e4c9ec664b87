// Package cmd is the top-level "driver" package for the Petal compiler: it
// manages the build profile and runs the various phases of the compiler over
// a parsed compilation unit.
package cmd

import (
	"os"

	"petalc/ast"
	"petalc/report"
)

// RunCompiler compiles a parsed compilation unit using the build profile at
// profilePath.  If profilePath is empty, the default profile is used.  source
// is the text of the unit: it is only used to display errors.  It returns the
// process exit code.
func RunCompiler(profilePath string, defs []ast.ASTNode, source string) int {
	profile := DefaultProfile()
	if profilePath != "" {
		var err error
		if profile, err = LoadProfile(profilePath); err != nil {
			report.NewReporter(os.Stderr, report.LogLevelError).ReportError(err, "")
			return 1
		}
	}

	c, err := NewCompiler(profile, os.Stdout)
	if err != nil {
		report.NewReporter(os.Stderr, profile.LogLevel).ReportError(err, "")
		return 1
	}

	if !c.Compile(defs, source) {
		return 1
	}

	return 0
}
