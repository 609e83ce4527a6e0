package depgraph

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_RelativeImport(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.js", "import {x} from './b'\n")
	writeFile(t, root, "b.js", "")

	g := Build(root, DefaultConfig())
	require.Len(t, g.Nodes, 2)
	require.Len(t, g.Edges, 1)

	byPath := nodeIndex(g)
	assert.Equal(t, byPath["a.js"], g.Edges[0].Source)
	assert.Equal(t, byPath["b.js"], g.Edges[0].Target)
	assert.Equal(t, "./b", g.Edges[0].Import)
}

func TestBuild_DottedImport(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pkg/a.py", "from pkg.util import f\n")
	writeFile(t, root, "pkg/util.py", "")

	g := Build(root, DefaultConfig())
	require.Len(t, g.Nodes, 2)
	require.Len(t, g.Edges, 1)

	byPath := nodeIndex(g)
	assert.Equal(t, byPath["pkg/a.py"], g.Edges[0].Source)
	assert.Equal(t, byPath["pkg/util.py"], g.Edges[0].Target)
	assert.Equal(t, "pkg.util", g.Edges[0].Import)
}

func TestBuild_StdlibImportYieldsNoEdge(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.py", "import os\n")

	g := Build(root, DefaultConfig())
	assert.Len(t, g.Nodes, 1)
	assert.Empty(t, g.Edges)
}

func TestBuild_BarePackageYieldsNoEdge(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.js", "import x from 'lodash'\n")

	g := Build(root, DefaultConfig())
	assert.Len(t, g.Nodes, 1)
	assert.Empty(t, g.Edges)
}

func TestBuild_SelfLoopSuppressed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.js", "import x from './a'\n")

	g := Build(root, DefaultConfig())
	assert.Len(t, g.Nodes, 1)
	assert.Empty(t, g.Edges)
}

func TestBuild_EmptyDirectory(t *testing.T) {
	g := Build(t.TempDir(), DefaultConfig())

	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nodes":[],"edges":[]}`, string(data))
}

func TestBuild_ReferentialIntegrity(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.js", "import {b} from './b'\nconst c = require('./sub/c')\n")
	writeFile(t, root, "b.js", "import {c} from './sub/c'\n")
	writeFile(t, root, "sub/c.js", "const b = require('../b')\n")
	writeFile(t, root, "m.py", "import helpers\nfrom sub import x\n")
	writeFile(t, root, "helpers.py", "")
	writeFile(t, root, "sub/__init__.py", "")

	g := Build(root, DefaultConfig())
	require.NotEmpty(t, g.Edges)

	ids := map[int]bool{}
	for _, n := range g.Nodes {
		ids[n.ID] = true
	}
	for _, e := range g.Edges {
		assert.True(t, ids[e.Source], "edge source %d not in nodes", e.Source)
		assert.True(t, ids[e.Target], "edge target %d not in nodes", e.Target)
		assert.NotEqual(t, e.Source, e.Target, "self loop leaked")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.js", "import {b} from './b'\n")
	writeFile(t, root, "b.js", "import {c} from './c'\n")
	writeFile(t, root, "c.js", "")
	writeFile(t, root, "pkg/m.py", "from pkg.n import y\n")
	writeFile(t, root, "pkg/n.py", "")

	first := Build(root, DefaultConfig())
	second := Build(root, DefaultConfig())
	assert.Equal(t, first, second)
}

func TestBuild_MultipleEdgesBetweenSamePair(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.js", "import {x} from './b'\nconst y = require('./b')\n")
	writeFile(t, root, "b.js", "")

	// One edge per distinct token occurrence; no deduplication.
	g := Build(root, DefaultConfig())
	assert.Len(t, g.Edges, 2)
}

func nodeIndex(g *Graph) map[string]int {
	byPath := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		byPath[n.Path] = n.ID
	}
	return byPath
}
