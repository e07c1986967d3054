package adapter

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/fnpack/internal/model"
)

func TestZipPackageStore_WriteRead(t *testing.T) {
	sourceMap := `{"version":3}`
	modules := []m.ModuleBundle{
		{Path: "foo.js", Content: "export const foo = 1;", Environment: m.EnvironmentIsolate},
		{Path: "_deps/chunk-AB12.js", Content: "export {};", Environment: m.EnvironmentIsolate},
		{Path: "actions/send.js", Content: "export const send = 1;", SourceMap: &sourceMap, Environment: m.EnvironmentExtended},
	}

	store := NewPackageStore()

	var buf bytes.Buffer
	info, err := store.Write(&buf, modules)
	require.NoError(t, err)

	require.Len(t, info.Files, 3)
	assert.Equal(t, checksum([]byte("export const foo = 1;")), info.Files["foo.js"].FileChecksum)
	assert.Empty(t, info.Files["foo.js"].SourceMapChecksum)
	assert.Equal(t, checksum([]byte(sourceMap)), info.Files["actions/send.js"].SourceMapChecksum)
	assert.Positive(t, info.UnzippedSizeBytes)

	got, err := store.Read(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, m.SourcePath("_deps/chunk-AB12.js"), got[0].Path)
	assert.Equal(t, m.SourcePath("actions/send.js"), got[1].Path)
	assert.Equal(t, m.EnvironmentExtended, got[1].Environment)
	require.NotNil(t, got[1].SourceMap)
	assert.Equal(t, sourceMap, *got[1].SourceMap)
	assert.Equal(t, m.SourcePath("foo.js"), got[2].Path)
	assert.Nil(t, got[2].SourceMap)
}

func TestZipPackageStore_WriteRejectsBadModules(t *testing.T) {
	store := NewPackageStore()

	t.Run("duplicate path", func(t *testing.T) {
		_, err := store.Write(&bytes.Buffer{}, []m.ModuleBundle{
			{Path: "foo.js", Environment: m.EnvironmentIsolate},
			{Path: "foo.js", Environment: m.EnvironmentExtended},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("non js module", func(t *testing.T) {
		_, err := store.Write(&bytes.Buffer{}, []m.ModuleBundle{{Path: "foo.ts", Environment: m.EnvironmentIsolate}})
		assert.Error(t, err)
	})

	t.Run("missing environment", func(t *testing.T) {
		_, err := store.Write(&bytes.Buffer{}, []m.ModuleBundle{{Path: "foo.js"}})
		assert.Error(t, err)
	})
}

func TestZipPackageStore_ReadValidatesMetadata(t *testing.T) {
	store := NewPackageStore()

	t.Run("missing metadata", func(t *testing.T) {
		data := buildArchive(t, map[string]string{"modules/foo.js": "x"})

		_, err := store.Read(bytes.NewReader(data), int64(len(data)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "metadata.json not found")
	})

	t.Run("metadata paths mismatch", func(t *testing.T) {
		meta, err := json.Marshal(metadataJSON{
			ModulePaths:        []string{"foo.js", "bar.js"},
			ModuleEnvironments: [][2]string{{"foo.js", "isolate"}},
		})
		require.NoError(t, err)

		data := buildArchive(t, map[string]string{"modules/foo.js": "x", "metadata.json": string(meta)})

		_, err = store.Read(bytes.NewReader(data), int64(len(data)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "don't match")
	})

	t.Run("missing environment", func(t *testing.T) {
		meta, err := json.Marshal(metadataJSON{ModulePaths: []string{"foo.js"}})
		require.NoError(t, err)

		data := buildArchive(t, map[string]string{"modules/foo.js": "x", "metadata.json": string(meta)})

		_, err = store.Read(bytes.NewReader(data), int64(len(data)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing environment")
	})

	t.Run("entry outside modules", func(t *testing.T) {
		data := buildArchive(t, map[string]string{"other/foo.js": "x"})

		_, err := store.Read(bytes.NewReader(data), int64(len(data)))
		assert.Error(t, err)
	})
}

func TestZipPackageStore_SaveLoad(t *testing.T) {
	store := NewPackageStore()
	path := m.Path(filepath.Join(t.TempDir(), "package.zip"))

	modules := []m.ModuleBundle{{Path: "foo.js", Content: "1", Environment: m.EnvironmentIsolate}}

	_, err := store.Save(path, modules)
	require.NoError(t, err)

	got, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, modules, got)
}

func buildArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for name, contents := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(contents))
		require.NoError(t, err)
	}

	require.NoError(t, zw.Close())

	return buf.Bytes()
}
