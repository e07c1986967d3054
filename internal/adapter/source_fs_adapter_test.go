package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/fnpack/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested files in lexical order", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "b.js"), "")
		writeTestFile(t, filepath.Join(root, "a.js"), "")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.ts")
		writeTestFile(t, child, "")

		var visited []string
		err := adapter.Walk(m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			root,
			filepath.Join(root, "a.js"),
			filepath.Join(root, "b.js"),
			nestedDir,
			child,
		}, visited)
	})

	t.Run("skip dir prunes a subtree", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "node_modules")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "dep.js"), "")

		var visited []string
		err := adapter.Walk(m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() && path == nestedDir {
				return SkipDir
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.False(t, containsPath(visited, filepath.Join(nestedDir, "dep.js")))
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "foo.js")
	content := "export const f = 1;\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "foo.js")
	writeTestFile(t, path, "")

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)
	assert.False(t, info.IsDir(), "FileInfo() reported file as directory")

	dirInfo, err := adapter.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir(), "FileInfo() reported directory as file")
}

func TestLocalSourceFSAdapter_RelPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()

	rel, err := adapter.RelPath(m.Path(root), m.Path(filepath.Join(root, "sub", "https.js")))
	require.NoError(t, err)
	assert.Equal(t, m.SourcePath("sub/https.js"), rel)

	_, err = adapter.RelPath(m.Path(filepath.Join(root, "sub")), m.Path(filepath.Join(root, "other.js")))
	assert.Error(t, err, "paths outside base must be rejected")
}

func TestAbsRoot(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	t.Run("directory resolves to absolute path", func(t *testing.T) {
		root := t.TempDir()

		got, err := AbsRoot(adapter, m.Path(root))
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(string(got)))
	})

	t.Run("missing root is rejected", func(t *testing.T) {
		_, err := AbsRoot(adapter, m.Path(filepath.Join(t.TempDir(), "missing")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("file root is rejected", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "foo.js")
		writeTestFile(t, path, "")

		_, err := AbsRoot(adapter, m.Path(path))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
