package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestReadCodeFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.py", "print('hi')\n")
	writeFile(t, root, "web/index.html", "<html></html>\n")
	writeFile(t, root, "notes.docx", "binary stuff")
	writeFile(t, root, "node_modules/pkg/index.js", "module.exports = 1\n")

	out := ReadCodeFiles(root)

	assert.Contains(t, out, "File: app.py")
	assert.Contains(t, out, "print('hi')")
	assert.Contains(t, out, "File: web/index.html")
	assert.NotContains(t, out, "notes.docx")
	assert.NotContains(t, out, "node_modules")
	assert.Contains(t, out, strings.Repeat("=", 60))
}

func TestReadCodeFiles_Empty(t *testing.T) {
	assert.Empty(t, ReadCodeFiles(t.TempDir()))
}

func TestRepositoryDigest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md", "# My Project\n")
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "big.py", strings.Repeat("x", 200))

	out := RepositoryDigest(root, 50, 100)

	t.Run("manifests first", func(t *testing.T) {
		readmeAt := strings.Index(out, "File: README.md")
		mainAt := strings.Index(out, "File: main.go")
		require.GreaterOrEqual(t, readmeAt, 0)
		require.GreaterOrEqual(t, mainAt, 0)
		assert.Less(t, readmeAt, mainAt)
	})

	t.Run("oversized files truncated", func(t *testing.T) {
		assert.Contains(t, out, "... [truncated]")
		assert.NotContains(t, out, strings.Repeat("x", 101))
	})
}

func TestRepositoryDigest_FileLimit(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.py", "a")
	writeFile(t, root, "b.py", "b")
	writeFile(t, root, "c.py", "c")

	out := RepositoryDigest(root, 2, 1000)
	assert.Equal(t, 2, strings.Count(out, "File: "))
}
