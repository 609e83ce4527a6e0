package depgraph

import (
	"regexp"
	"strings"
)

// These two statement shapes are the compatibility contract for extraction.
// They are lexical matches, not parsing: commented-out imports and string
// literals that happen to match are an accepted heuristic cost.
var (
	// Dotted-path imports anchored at true line start. Leading whitespace
	// is deliberately not tolerated.
	pyImportPattern = regexp.MustCompile(`(?m)^(?:from\s+([\w.]+)\s+import|import\s+([\w.]+))`)

	// ES-module and CommonJS require forms anywhere in the text.
	jsImportPattern = regexp.MustCompile(`import\s+.*?\s+from\s+['"](.+?)['"]|require\s*\(\s*['"](.+?)['"]\s*\)`)
)

// ExtractReferences pulls raw import tokens out of one file's content.
// lang is the node's language tag (extension without dot). A language with
// no registered pattern yields no tokens; order is walk order of the regex
// matches and duplicates are kept.
func ExtractReferences(content, lang string, cfg Config) []string {
	switch lang {
	case "py":
		return extractDotted(content, cfg)
	case "js", "jsx", "ts", "tsx":
		return extractRelative(content)
	}
	return nil
}

// extractDotted handles dotted-path module systems. Tokens whose first path
// segment is a known standard-library module are dropped: precision over
// recall for in-repo dependency detection.
func extractDotted(content string, cfg Config) []string {
	var refs []string
	for _, m := range pyImportPattern.FindAllStringSubmatch(content, -1) {
		token := m[1]
		if token == "" {
			token = m[2]
		}
		if token == "" {
			continue
		}
		first, _, _ := strings.Cut(token, ".")
		if cfg.isStdlib(first) {
			continue
		}
		refs = append(refs, token)
	}
	return refs
}

// extractRelative handles the JS/TS family. Only ./ and ../ paths are kept;
// bare package names are out-of-repo by definition.
func extractRelative(content string) []string {
	var refs []string
	for _, m := range jsImportPattern.FindAllStringSubmatch(content, -1) {
		token := m[1]
		if token == "" {
			token = m[2]
		}
		if strings.HasPrefix(token, "./") || strings.HasPrefix(token, "../") {
			refs = append(refs, token)
		}
	}
	return refs
}
