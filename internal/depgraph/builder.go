package depgraph

import (
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Build constructs the reference graph for the tree rooted at root.
// It never fails: unreadable files contribute no edges and a degenerate
// root yields a well-formed empty graph. Extraction runs in parallel per
// file, but node ids are fixed by the collector before it starts and edge
// assembly is sequential, so reruns on an unchanged snapshot produce the
// same graph.
func Build(root string, cfg Config) *Graph {
	g := NewGraph()

	nodes := Collect(root, cfg)
	if len(nodes) == 0 {
		return g
	}
	g.Nodes = nodes

	index := make(map[string]int, len(nodes))
	for _, n := range nodes {
		index[n.Path] = n.ID
	}

	refs := make([][]string, len(nodes))
	eg := new(errgroup.Group)
	eg.SetLimit(runtime.NumCPU())
	for i, n := range nodes {
		eg.Go(func() error {
			data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(n.Path)))
			if err != nil {
				return nil
			}
			refs[i] = ExtractReferences(string(data), n.Type, cfg)
			return nil
		})
	}
	_ = eg.Wait()

	for i, n := range nodes {
		for _, token := range refs[i] {
			target, ok := Resolve(token, n.Path, index)
			if !ok || target == n.ID {
				continue
			}
			g.Edges = append(g.Edges, Edge{Source: n.ID, Target: target, Import: token})
		}
	}

	return g
}
