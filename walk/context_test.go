package walk

import (
	"testing"

	"petalc/report"
	"petalc/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionScopeLifecycle(t *testing.T) {
	ctx := NewTypecheckerContext()
	require.NoError(t, ctx.StartFunctionScope(nil))

	err := ctx.StartFunctionScope(span(2, 0, 4))
	assert.True(t, report.IsKind(err, report.UnterminatedFunctionScope))

	require.NoError(t, ctx.DefineVariable("x", types.I32, nil))
	typ, err := ctx.LookupVariable("x", nil)
	require.NoError(t, err)
	assert.Equal(t, types.I32, typ)

	require.NoError(t, ctx.EndFunctionScope(nil))

	// Once closed, the scope can be opened again.
	require.NoError(t, ctx.StartFunctionScope(nil))
}

func TestScopeOperationsWithoutScope(t *testing.T) {
	ctx := NewTypecheckerContext()

	err := ctx.EndFunctionScope(nil)
	require.True(t, report.IsKind(err, report.ExpectedFunctionScope))
	assert.True(t, err.(*report.CompileError).Internal())

	_, err = ctx.LookupVariable("x", nil)
	assert.True(t, report.IsKind(err, report.ExpectedFunctionScope))

	err = ctx.DefineVariable("x", types.I32, nil)
	assert.True(t, report.IsKind(err, report.ExpectedFunctionScope))
}

func TestFunctionTable(t *testing.T) {
	ctx := NewTypecheckerContext()
	ctx.DefineFunction("main", types.I32)

	rt, ok := ctx.LookupFunction("main")
	assert.True(t, ok)
	assert.Equal(t, types.I32, rt)

	_, ok = ctx.LookupFunction("other")
	assert.False(t, ok)
}
