package depgraph

import (
	"path"
	"strings"
)

// Suffix probe orders. First match wins, so the order is part of the
// resolution contract.
var (
	relativeSuffixes = []string{"", ".js", ".jsx", ".ts", ".tsx", "/index.js", "/index.ts"}
	dottedSuffixes   = []string{".py", "/__init__.py"}
)

// Resolve maps a raw import token to a collected file id. sourcePath is the
// slash-separated repo-relative path of the importing file and files maps
// every collected path to its id. The second return is false when the token
// does not land on a file in the snapshot; absence is a normal outcome, not
// an error.
func Resolve(token, sourcePath string, files map[string]int) (int, bool) {
	if strings.HasPrefix(token, "./") || strings.HasPrefix(token, "../") {
		// Relative tokens resolve against the importing file's directory.
		base := path.Join(path.Dir(sourcePath), token)
		for _, suffix := range relativeSuffixes {
			if id, ok := files[base+suffix]; ok {
				return id, true
			}
		}
		return 0, false
	}

	// Dotted tokens resolve as repo-root-relative paths. Imports satisfied
	// by installed packages or package-relative semantics simply fail to
	// resolve here.
	base := strings.ReplaceAll(token, ".", "/")
	for _, suffix := range dottedSuffixes {
		if id, ok := files[base+suffix]; ok {
			return id, true
		}
	}
	return 0, false
}
