package depgraph

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// Collect walks the tree under root and returns the graphable files in
// discovery order. Only directory metadata is touched here; file contents
// are read later by the builder. An unreadable subdirectory is skipped
// silently: a partial node set is an accepted product of a best-effort tool.
func Collect(root string, cfg Config) []Node {
	var nodes []Node
	id := 0

	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		if d.IsDir() {
			if p != root && cfg.excludesDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if !cfg.graphable(ext) {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		nodes = append(nodes, Node{
			ID:    id,
			Name:  d.Name(),
			Path:  rel,
			Type:  strings.TrimPrefix(ext, "."),
			Group: path.Dir(rel),
		})
		id++
		return nil
	})

	return nodes
}
