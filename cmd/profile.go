package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"petalc/codegen"
	"petalc/report"
)

// BuildProfile represents the current build profile.
type BuildProfile struct {
	Name       string
	Debug      bool
	OutputPath string
	TargetArch string

	// OutputFormat should be one of the enumerated output formats.
	OutputFormat int

	// LogLevel should be one of the enumerated reporter log levels.
	LogLevel int

	// Toolchain is the assembler and linker configuration.
	Toolchain *codegen.Toolchain
}

// Enumeration of possible output formats.
const (
	FormatBin = iota // Output a linked executable (default).
	FormatObj        // Output an object file.
	FormatASM        // Output an assembly file.
)

var formatNames = map[string]int{
	"bin": FormatBin,
	"obj": FormatObj,
	"asm": FormatASM,
}

// archNames maps the accepted architecture names to their canonical names.
var archNames = map[string]string{
	"amd64":   "amd64",
	"x86_64":  "amd64",
	"x86-64":  "amd64",
	"arm64":   "arm64",
	"aarch64": "arm64",
}

// DefaultProfile returns the profile used when no profile file is given.
func DefaultProfile() *BuildProfile {
	return &BuildProfile{
		Name:         "default",
		OutputPath:   "out",
		TargetArch:   runtime.GOARCH,
		OutputFormat: FormatBin,
		LogLevel:     report.LogLevelVerbose,
		Toolchain:    codegen.DefaultToolchain(),
	}
}

// -----------------------------------------------------------------------------

// tomlProfile represents a build profile as it is encoded in TOML.
type tomlProfile struct {
	Profile   tomlProfileTable   `toml:"profile"`
	Toolchain tomlToolchainTable `toml:"toolchain"`
}

type tomlProfileTable struct {
	Name       string `toml:"name"`
	TargetArch string `toml:"target-arch"`
	Output     string `toml:"output"`
	Format     string `toml:"format"`
	Debug      bool   `toml:"debug"`
	LogLevel   string `toml:"log-level"`
}

type tomlToolchainTable struct {
	Assembler      string   `toml:"assembler"`
	AssemblerFlags []string `toml:"assembler-flags"`
	Linker         string   `toml:"linker"`
	LinkerFlags    []string `toml:"linker-flags"`
	LinkObjects    []string `toml:"link-objects"`
}

// LoadProfile loads and validates the build profile at path.
func LoadProfile(path string) (*BuildProfile, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading profile file at `%s`", path)
	}

	profile, err := ParseProfile(buff)
	if err != nil {
		return nil, errors.Wrapf(err, "loading profile file at `%s`", path)
	}

	return profile, nil
}

// ParseProfile parses and validates a TOML encoded build profile.  Missing keys
// take their value from the default profile.
func ParseProfile(buff []byte) (*BuildProfile, error) {
	tomlProf := &tomlProfile{}
	if err := toml.Unmarshal(buff, tomlProf); err != nil {
		return nil, errors.Wrap(err, "parsing profile")
	}

	profile := DefaultProfile()
	if err := validateProfile(profile, tomlProf); err != nil {
		return nil, err
	}

	return profile, nil
}

// validateProfile checks the TOML profile and moves its contents over to
// profile.
func validateProfile(profile *BuildProfile, tomlProf *tomlProfile) error {
	tp := &tomlProf.Profile

	if tp.Name != "" {
		profile.Name = tp.Name
	}

	if tp.TargetArch != "" {
		arch, ok := archNames[strings.ToLower(tp.TargetArch)]
		if !ok {
			return fmt.Errorf("unsupported target architecture: `%s`", tp.TargetArch)
		}

		profile.TargetArch = arch
	}

	if tp.Output != "" {
		profile.OutputPath = tp.Output
	}

	if tp.Format != "" {
		format, ok := formatNames[strings.ToLower(tp.Format)]
		if !ok {
			return fmt.Errorf("unknown output format: `%s`", tp.Format)
		}

		profile.OutputFormat = format
	}

	if tp.LogLevel != "" {
		level, err := report.ParseLogLevel(tp.LogLevel)
		if err != nil {
			return err
		}

		profile.LogLevel = level
	}

	profile.Debug = tp.Debug

	tt := &tomlProf.Toolchain
	if tt.Assembler != "" {
		profile.Toolchain.Assembler = tt.Assembler
	}

	if tt.Linker != "" {
		profile.Toolchain.Linker = tt.Linker
	}

	profile.Toolchain.AssemblerFlags = tt.AssemblerFlags
	profile.Toolchain.LinkerFlags = tt.LinkerFlags
	profile.Toolchain.LinkObjects = tt.LinkObjects

	return nil
}
