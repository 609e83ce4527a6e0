package content

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var banner = strings.Repeat("=", 60)

// concatExtensions is the allow-list for the full-text concatenation fed to
// the analyzer. It is wider than the graphable set but still code-only.
var concatExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".java": true, ".cpp": true,
	".c": true, ".html": true, ".css": true, ".ipynb": true, ".jsx": true,
	".tsx": true,
}

// excludeDirs are pruned from every walk in this package.
var excludeDirs = map[string]bool{
	"node_modules": true, ".git": true, "__pycache__": true, "venv": true,
	"env": true, ".venv": true, "dist": true, "build": true, "target": true,
	".idea": true, ".vscode": true, "coverage": true, ".next": true,
	".nuxt": true, "vendor": true, ".cache": true,
}

// digestExtensions is the wide allow-list used by RepositoryDigest.
var digestExtensions = map[string]bool{
	".py": true, ".js": true, ".jsx": true, ".ts": true, ".tsx": true,
	".java": true, ".go": true, ".rs": true, ".rb": true, ".php": true,
	".cs": true, ".cpp": true, ".c": true, ".h": true, ".hpp": true,
	".swift": true, ".kt": true, ".scala": true, ".md": true, ".txt": true,
	".json": true, ".yaml": true, ".yml": true, ".toml": true, ".ini": true,
	".cfg": true, ".html": true, ".css": true, ".scss": true, ".less": true,
	".sql": true, ".sh": true, ".bash": true, ".zsh": true, ".ipynb": true,
	".r": true, ".jl": true, ".m": true, ".mat": true,
}

// manifestFiles are read first by RepositoryDigest regardless of extension.
var manifestFiles = []string{
	"README.md", "package.json", "pyproject.toml", "Cargo.toml",
	"go.mod", "pom.xml", "build.gradle", "requirements.txt",
}

// ReadCodeFiles concatenates every code file under root into a single string,
// each prefixed with a banner naming its repo-relative path. Unreadable files
// are skipped; an empty result means the repository has no supported code.
func ReadCodeFiles(root string) string {
	var parts []string

	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != root && excludeDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !concatExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return nil
		}
		parts = append(parts, fileSection(filepath.ToSlash(rel), string(data)))
		return nil
	})

	return strings.Join(parts, "\n")
}

// RepositoryDigest is a bounded variant of ReadCodeFiles: root manifests
// first, then up to maxFiles files from a wider allow-list, each clipped to
// maxFileSize bytes.
func RepositoryDigest(root string, maxFiles, maxFileSize int) string {
	var parts []string
	processed := 0
	seen := map[string]bool{}

	for _, name := range manifestFiles {
		if processed >= maxFiles {
			break
		}
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			continue
		}
		parts = append(parts, fileSection(name, clip(string(data), maxFileSize)))
		seen[name] = true
		processed++
	}

	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if processed >= maxFiles {
			return filepath.SkipAll
		}
		if d.IsDir() {
			if p != root && excludeDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if seen[rel] {
			return nil
		}
		if !digestExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return nil
		}
		parts = append(parts, fileSection(rel, clip(string(data), maxFileSize)))
		processed++
		return nil
	})

	return strings.Join(parts, "\n")
}

func fileSection(rel, content string) string {
	return "\n" + banner + "\nFile: " + rel + "\n" + banner + "\n" + content
}

func clip(content string, max int) string {
	if max > 0 && len(content) > max {
		return content[:max] + "\n... [truncated]"
	}
	return content
}
