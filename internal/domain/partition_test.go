package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/fnpack/internal/model"
)

func TestPartition_KeepsOrderWithinEnvironment(t *testing.T) {
	entryPoints := []m.EntryPoint{
		{Path: "c.ts", Environment: m.EnvironmentIsolate, Kind: m.KindFunction},
		{Path: "actions/b.ts", Environment: m.EnvironmentExtended, Kind: m.KindFunction},
		{Path: "a.ts", Environment: m.EnvironmentIsolate, Kind: m.KindFunction},
		{Path: "actions/a.ts", Environment: m.EnvironmentExtended, Kind: m.KindFunction},
		{Path: "http.ts", Environment: m.EnvironmentIsolate, Kind: m.KindHTTP},
	}

	set, err := Partition(entryPoints)
	require.NoError(t, err)

	require.Len(t, set.Isolate, 3)
	require.Len(t, set.Extended, 2)
	assert.Equal(t, []m.SourcePath{"c.ts", "a.ts", "http.ts"}, paths(set.Isolate))
	assert.Equal(t, []m.SourcePath{"actions/b.ts", "actions/a.ts"}, paths(set.Extended))
}

func TestPartition_Empty(t *testing.T) {
	set, err := Partition(nil)
	require.NoError(t, err)

	assert.NotNil(t, set.Isolate)
	assert.NotNil(t, set.Extended)
	assert.Empty(t, set.Isolate)
	assert.Empty(t, set.Extended)
}

func TestPartition_UnknownEnvironment(t *testing.T) {
	for _, env := range []m.Environment{"", "edge"} {
		t.Run(string(env), func(t *testing.T) {
			entryPoints := []m.EntryPoint{
				{Path: "a.ts", Environment: m.EnvironmentIsolate, Kind: m.KindFunction},
				{Path: "b.ts", Environment: env, Kind: m.KindFunction},
			}

			var set m.EnvironmentSet

			require.NotPanics(t, func() {
				var err error
				set, err = Partition(entryPoints)
				require.ErrorIs(t, err, ErrUnknownEnvironment)
				assert.Contains(t, err.Error(), "b.ts")
			})
			assert.Empty(t, set.Isolate)
		})
	}
}

func paths(entryPoints []m.EntryPoint) []m.SourcePath {
	out := make([]m.SourcePath, 0, len(entryPoints))
	for _, ep := range entryPoints {
		out = append(out, ep.Path)
	}

	return out
}
