package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Relative(t *testing.T) {
	files := map[string]int{
		"src/a.js":         0,
		"src/b.js":         1,
		"src/lib/index.js": 2,
		"shared/util.ts":   3,
		"src/c":            4,
		"src/c.ts":         5,
	}

	t.Run("sibling with inferred extension", func(t *testing.T) {
		id, ok := Resolve("./b", "src/a.js", files)
		require.True(t, ok)
		assert.Equal(t, 1, id)
	})

	t.Run("parent directory traversal", func(t *testing.T) {
		id, ok := Resolve("../shared/util", "src/a.js", files)
		require.True(t, ok)
		assert.Equal(t, 3, id)
	})

	t.Run("directory index fallback", func(t *testing.T) {
		id, ok := Resolve("./lib", "src/a.js", files)
		require.True(t, ok)
		assert.Equal(t, 2, id)
	})

	t.Run("verbatim path wins over suffix variants", func(t *testing.T) {
		id, ok := Resolve("./c", "src/a.js", files)
		require.True(t, ok)
		assert.Equal(t, 4, id)
	})

	t.Run("unresolved", func(t *testing.T) {
		_, ok := Resolve("./missing", "src/a.js", files)
		assert.False(t, ok)
	})
}

func TestResolve_Dotted(t *testing.T) {
	files := map[string]int{
		"pkg/a.py":           0,
		"pkg/util.py":        1,
		"pkg/sub/__init__.py": 2,
	}

	t.Run("module file", func(t *testing.T) {
		id, ok := Resolve("pkg.util", "pkg/a.py", files)
		require.True(t, ok)
		assert.Equal(t, 1, id)
	})

	t.Run("package init fallback", func(t *testing.T) {
		id, ok := Resolve("pkg.sub", "pkg/a.py", files)
		require.True(t, ok)
		assert.Equal(t, 2, id)
	})

	t.Run("root relative not source relative", func(t *testing.T) {
		// Dotted tokens ignore the importing file's location.
		_, ok := Resolve("util", "pkg/a.py", files)
		assert.False(t, ok)
	})

	t.Run("unresolved external package", func(t *testing.T) {
		_, ok := Resolve("requests", "pkg/a.py", files)
		assert.False(t, ok)
	})
}
