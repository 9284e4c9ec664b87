package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"petalc/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	profile := DefaultProfile()
	assert.Equal(t, runtime.GOARCH, profile.TargetArch)
	assert.Equal(t, "out", profile.OutputPath)
	assert.Equal(t, FormatBin, profile.OutputFormat)
	assert.Equal(t, report.LogLevelVerbose, profile.LogLevel)
	assert.Equal(t, "as", profile.Toolchain.Assembler)
	assert.Equal(t, "cc", profile.Toolchain.Linker)
}

func TestParseProfile(t *testing.T) {
	profile, err := ParseProfile([]byte(`
[profile]
name = "release"
target-arch = "aarch64"
output = "build/main"
format = "obj"
debug = true
log-level = "warn"

[toolchain]
assembler = "aarch64-linux-gnu-as"
assembler-flags = ["-g"]
linker = "aarch64-linux-gnu-gcc"
linker-flags = ["-static"]
link-objects = ["lib/rt.o"]
`))
	require.NoError(t, err)

	assert.Equal(t, "release", profile.Name)
	assert.Equal(t, "arm64", profile.TargetArch)
	assert.Equal(t, "build/main", profile.OutputPath)
	assert.Equal(t, FormatObj, profile.OutputFormat)
	assert.True(t, profile.Debug)
	assert.Equal(t, report.LogLevelWarn, profile.LogLevel)
	assert.Equal(t, "aarch64-linux-gnu-as", profile.Toolchain.Assembler)
	assert.Equal(t, []string{"-g"}, profile.Toolchain.AssemblerFlags)
	assert.Equal(t, "aarch64-linux-gnu-gcc", profile.Toolchain.Linker)
	assert.Equal(t, []string{"-static"}, profile.Toolchain.LinkerFlags)
	assert.Equal(t, []string{"lib/rt.o"}, profile.Toolchain.LinkObjects)
}

func TestParseProfileDefaults(t *testing.T) {
	profile, err := ParseProfile([]byte("[profile]\ntarget-arch = \"x86_64\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "amd64", profile.TargetArch)
	assert.Equal(t, "out", profile.OutputPath)
	assert.Equal(t, FormatBin, profile.OutputFormat)
	assert.Equal(t, "cc", profile.Toolchain.Linker)
}

func TestParseProfileRejectsUnknownValues(t *testing.T) {
	for _, text := range []string{
		"[profile]\ntarget-arch = \"riscv64\"\n",
		"[profile]\nformat = \"llvm\"\n",
		"[profile]\nlog-level = \"loud\"\n",
		"[profile\n",
	} {
		_, err := ParseProfile([]byte(text))
		assert.Error(t, err, text)
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petal.toml")
	require.NoError(t, os.WriteFile(path, []byte("[profile]\nformat = \"asm\"\n"), 0644))

	profile, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, FormatASM, profile.OutputFormat)

	_, err = LoadProfile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
