package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Reporter is responsible for reporting errors, phase progress, and other kinds
// of messages to the user during compilation.  The reporter respects the set
// log level and is synchronized: its methods can be safely called from multiple
// goroutines.
type Reporter struct {
	// The mutex used to synchonize different reporting method calls.
	m *sync.Mutex

	// The destination of all displayed output.
	out io.Writer

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// Indicates whether or not an error has been reported.
	isErr bool

	// The name and start time of the current compilation phase.
	phase      string
	phaseStart time.Time
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

var logLevelNames = map[string]int{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"warn":    LogLevelWarn,
	"verbose": LogLevelVerbose,
}

// ParseLogLevel converts the name of a log level into its enumerated value.
func ParseLogLevel(name string) (int, error) {
	if level, ok := logLevelNames[strings.ToLower(name)]; ok {
		return level, nil
	}

	return 0, fmt.Errorf("unknown log level: `%s`", name)
}

// NewReporter creates a new reporter writing to out at the given log level.
func NewReporter(out io.Writer, logLevel int) *Reporter {
	return &Reporter{
		m:        &sync.Mutex{},
		out:      out,
		logLevel: logLevel,
	}
}

// -----------------------------------------------------------------------------

// ReportError reports an error returned by a compilation stage.  The source is
// the text of the compiled unit: it is used to display the offending line.  It
// may be empty in which case only the position is displayed.
func (r *Reporter) ReportError(err error, source string) {
	r.m.Lock()
	defer r.m.Unlock()

	r.isErr = true

	var cerr *CompileError
	if !errors.As(err, &cerr) {
		if r.logLevel > LogLevelSilent {
			displayStdError(r.out, err)
		}

		return
	}

	// Internal compiler errors are always displayed regardless of log level.
	if cerr.Internal() {
		displayICE(r.out, cerr)
	} else if r.logLevel > LogLevelSilent {
		displayCompileError(r.out, cerr, source)
	}
}

// ReportWarning reports a warning message.
func (r *Reporter) ReportWarning(msg string, args ...interface{}) {
	if r.logLevel > LogLevelError {
		r.m.Lock()
		defer r.m.Unlock()

		displayWarning(r.out, fmt.Sprintf(msg, args...))
	}
}

// ReportInfo reports an informational message such as a debug dump.
func (r *Reporter) ReportInfo(title, msg string) {
	if r.logLevel > LogLevelWarn {
		r.m.Lock()
		defer r.m.Unlock()

		displayInfo(r.out, title, msg)
	}
}

// ReportPhase marks the beginning of a new compilation phase.  The previous
// phase, if any, is finished first.
func (r *Reporter) ReportPhase(name string) {
	r.ReportPhaseDone()

	r.m.Lock()
	defer r.m.Unlock()

	r.phase = name
	r.phaseStart = time.Now()

	if r.logLevel > LogLevelWarn {
		displayPhase(r.out, name, "")
	}
}

// ReportPhaseDone marks the end of the current compilation phase.
func (r *Reporter) ReportPhaseDone() {
	r.m.Lock()
	defer r.m.Unlock()

	if r.phase == "" {
		return
	}

	if r.logLevel > LogLevelWarn && !r.isErr {
		displayPhase(r.out, r.phase, fmt.Sprintf("done (%.3fs)", time.Since(r.phaseStart).Seconds()))
	}

	r.phase = ""
}

// AnyErrors returns whether or not any errors were reported.
func (r *Reporter) AnyErrors() bool {
	r.m.Lock()
	defer r.m.Unlock()

	return r.isErr
}
