package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	ErrorColorFG = pterm.FgRed
	ErrorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	ICEStyleBG   = pterm.NewStyle(pterm.BgMagenta, pterm.FgWhite)
	WarnColorFG  = pterm.FgYellow
	WarnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	InfoColorFG  = pterm.FgLightGreen
	InfoStyleBG  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	PhaseColorFG = pterm.FgCyan
)

// displayICE displays an internal compiler error.
func displayICE(w io.Writer, cerr *CompileError) {
	fmt.Fprint(w, ICEStyleBG.Sprint("internal compiler error"))
	fmt.Fprintln(w, ErrorColorFG.Sprint(" "+cerr.Error()))

	if cerr.Span == nil {
		fmt.Fprintln(w, "no source location is available for this error")
	} else {
		fmt.Fprintf(w, "reported at %s\n", cerr.Span)
	}

	fmt.Fprint(w, "This error was not supposed to happen: it indicates a bug in the compiler.\n\n")
}

// displayCompileError displays a user-facing compile error along with the
// offending source text if it is available.
func displayCompileError(w io.Writer, cerr *CompileError, source string) {
	if cerr.Span == nil {
		fmt.Fprint(w, ErrorStyleBG.Sprint("error"))
	} else {
		fmt.Fprintf(w, "%s: %s", cerr.Span, ErrorStyleBG.Sprint("error"))
	}
	fmt.Fprintln(w, ErrorColorFG.Sprint(" "+cerr.Error()))

	if cerr.Span != nil && source != "" {
		displaySourceText(w, source, cerr.Span)
	}

	if cerr.Detail != "" {
		fmt.Fprintln(w, strings.TrimRight(cerr.Detail, "\n"))
	}

	fmt.Fprintln(w)
}

// displayStdError displays a standard Go error.
func displayStdError(w io.Writer, err error) {
	fmt.Fprint(w, ErrorStyleBG.Sprint("error"))
	fmt.Fprintln(w, ErrorColorFG.Sprint(" "+err.Error()))
}

// displayWarning displays a warning message.
func displayWarning(w io.Writer, msg string) {
	fmt.Fprint(w, WarnStyleBG.Sprint("warning"))
	fmt.Fprintln(w, WarnColorFG.Sprint(" "+msg))
}

// displayInfo displays a titled informational message.
func displayInfo(w io.Writer, title, msg string) {
	fmt.Fprint(w, InfoStyleBG.Sprint(title))
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.TrimRight(msg, "\n"))
}

// displayPhase displays a compilation phase progress line.
func displayPhase(w io.Writer, name, status string) {
	if status == "" {
		fmt.Fprintln(w, PhaseColorFG.Sprint(name+"..."))
	} else {
		fmt.Fprintln(w, PhaseColorFG.Sprint(name+": "+status))
	}
}

// -----------------------------------------------------------------------------

// displaySourceText displays the line containing a text span preceded by one
// line of context and followed by carets underlining the span.
func displaySourceText(w io.Writer, source string, span *TextSpan) {
	lines := strings.Split(source, "\n")
	if span.Line < 0 || span.Line >= len(lines) {
		return
	}

	firstLine := span.Line
	if firstLine > 0 {
		firstLine--
	}

	// Generate the format string for line numbers.
	maxLineNumLen := len(strconv.Itoa(span.Line + 1))
	lineNumFmtStr := "%" + strconv.Itoa(maxLineNumLen) + "d | %s\n"

	for ln := firstLine; ln <= span.Line; ln++ {
		fmt.Fprintf(w, lineNumFmtStr, ln+1, strings.ReplaceAll(lines[ln], "\t", " "))
	}

	caretCount := span.Length
	if caretCount < 1 {
		caretCount = 1
	}

	fmt.Fprint(w, strings.Repeat(" ", maxLineNumLen), " | ")
	fmt.Fprint(w, strings.Repeat(" ", span.Col))
	fmt.Fprintln(w, ErrorColorFG.Sprint(strings.Repeat("^", caretCount)))
}
