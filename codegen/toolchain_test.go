package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"petalc/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolchainPaths(t *testing.T) {
	assert.Equal(t, "out.s", AssemblyPath("out"))
	assert.Equal(t, "out.o", ObjectPath("out"))

	tc := DefaultToolchain()
	assert.Equal(t, "as", tc.Assembler)
	assert.Equal(t, "cc", tc.Linker)
}

func TestWriteAssembly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.s")

	require.NoError(t, DefaultToolchain().WriteAssembly("ret\n", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ret\n", string(data))

	err = DefaultToolchain().WriteAssembly("ret\n", filepath.Join(t.TempDir(), "missing", "out.s"))
	assert.True(t, report.IsKind(err, report.OutputFailure))
}

func TestAssembleFailure(t *testing.T) {
	tc := &Toolchain{Assembler: "false"}

	err := tc.Assemble("in.s", "in.o")
	require.True(t, report.IsKind(err, report.CompilationFailure))
	assert.Contains(t, err.Error(), "assembler exited with status 1")
}

func TestAssembleMissingTool(t *testing.T) {
	tc := &Toolchain{Assembler: "petalc-no-such-assembler"}

	err := tc.Assemble("in.s", "in.o")
	require.True(t, report.IsKind(err, report.CompilationFailure))
	assert.Contains(t, err.Error(), "assembler failed")
}

func TestLinkRemovesObjectFile(t *testing.T) {
	dir := t.TempDir()
	obj := filepath.Join(dir, "out.o")
	require.NoError(t, os.WriteFile(obj, nil, 0644))

	tc := &Toolchain{Linker: "true"}
	require.NoError(t, tc.Link(obj, filepath.Join(dir, "out")))

	_, err := os.Stat(obj)
	assert.True(t, os.IsNotExist(err))
}

func TestLinkFailureRemovesOutput(t *testing.T) {
	dir := t.TempDir()
	obj := filepath.Join(dir, "out.o")
	out := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(obj, nil, 0644))
	require.NoError(t, os.WriteFile(out, []byte("partial"), 0644))

	tc := &Toolchain{Linker: "false"}
	err := tc.Link(obj, out)
	assert.True(t, report.IsKind(err, report.LinkingFailure))

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))

	// The object file is kept for inspection.
	_, statErr = os.Stat(obj)
	assert.NoError(t, statErr)
}
