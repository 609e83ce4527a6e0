package content

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TreeNode is one entry in the hierarchical file tree shown alongside the
// analysis. Folders carry Children; files carry Size and Extension.
type TreeNode struct {
	Name      string      `json:"name"`
	Type      string      `json:"type"`
	Path      string      `json:"path"`
	Size      int64       `json:"size,omitempty"`
	Extension string      `json:"extension,omitempty"`
	Children  []*TreeNode `json:"children,omitempty"`
}

// treeExtensions is the set of file extensions admitted into the tree view.
var treeExtensions = map[string]bool{
	".py": true, ".js": true, ".jsx": true, ".ts": true, ".tsx": true,
	".java": true, ".go": true, ".rs": true, ".rb": true, ".php": true,
	".cs": true, ".cpp": true, ".c": true, ".h": true, ".hpp": true,
	".swift": true, ".kt": true, ".html": true, ".css": true, ".scss": true,
	".json": true, ".yaml": true, ".yml": true, ".md": true, ".ipynb": true,
	".r": true, ".jl": true,
}

// treeSpecialFiles are admitted even when their extension is not.
var treeSpecialFiles = map[string]bool{
	"package.json": true, "README.md": true, "requirements.txt": true,
	"Dockerfile": true, "docker-compose.yml": true, ".gitignore": true,
}

// FileTree builds the hierarchical tree for root. Directories sort first,
// then names case-insensitively. Permission errors prune the affected
// subtree instead of failing the whole walk. Returns nil when root itself
// cannot be read.
func FileTree(root string) *TreeNode {
	info, err := os.Stat(root)
	if err != nil {
		return nil
	}
	return buildTree(root, root, info.IsDir())
}

func buildTree(p, root string, isDir bool) *TreeNode {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return nil
	}

	node := &TreeNode{
		Name: filepath.Base(p),
		Path: filepath.ToSlash(rel),
	}

	if !isDir {
		node.Type = "file"
		node.Extension = strings.ToLower(filepath.Ext(p))
		if info, err := os.Stat(p); err == nil {
			node.Size = info.Size()
		}
		return node
	}

	node.Type = "folder"
	entries, err := os.ReadDir(p)
	if err != nil {
		return node
	}

	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := entries[i].IsDir(), entries[j].IsDir()
		if di != dj {
			return di
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			if excludeDirs[name] {
				continue
			}
		} else if !treeExtensions[strings.ToLower(filepath.Ext(name))] && !treeSpecialFiles[name] {
			continue
		}
		if child := buildTree(filepath.Join(p, name), root, e.IsDir()); child != nil {
			node.Children = append(node.Children, child)
		}
	}
	return node
}
