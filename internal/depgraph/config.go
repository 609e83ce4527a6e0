package depgraph

import "strings"

// Config controls which files the collector admits and which import tokens
// the extractor keeps. Injecting it keeps the builder a pure function of
// (directory snapshot, config).
type Config struct {
	// ExcludeDirs are directory names pruned from the walk entirely.
	ExcludeDirs []string

	// GraphExtensions is the allow-list of lowercased file extensions
	// (with dot) eligible for graphing. Only languages with a registered
	// extraction pattern belong here.
	GraphExtensions []string

	// StdlibModules are dotted-import first segments treated as clearly
	// out-of-repo and dropped during extraction.
	StdlibModules []string
}

// DefaultConfig returns the stock filter sets.
func DefaultConfig() Config {
	return Config{
		ExcludeDirs: []string{
			"node_modules", ".git", "__pycache__", "venv", "env", ".venv",
			"dist", "build", "target", ".idea", ".vscode", "coverage",
		},
		GraphExtensions: []string{".py", ".js", ".jsx", ".ts", ".tsx"},
		StdlibModules: []string{
			"os", "sys", "json", "re", "typing", "pathlib",
			"collections", "datetime", "asyncio", "functools",
		},
	}
}

func (c Config) excludesDir(name string) bool {
	for _, d := range c.ExcludeDirs {
		if name == d {
			return true
		}
	}
	return false
}

func (c Config) graphable(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range c.GraphExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func (c Config) isStdlib(first string) bool {
	for _, m := range c.StdlibModules {
		if first == m {
			return true
		}
	}
	return false
}
