package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
)

var (
	// ErrInvalidRepo marks URLs that are malformed or point at no repository.
	ErrInvalidRepo = errors.New("invalid repository")
	// ErrCloneFailed marks clones that failed for reasons other than a bad URL.
	ErrCloneFailed = errors.New("clone failed")
)

var githubURLPattern = regexp.MustCompile(`^https?://github\.com/[a-zA-Z0-9_-]+/[a-zA-Z0-9_.-]+(\.git)?$`)

// ValidateURL reports whether url looks like a public GitHub repository URL.
func ValidateURL(url string) bool {
	return githubURLPattern.MatchString(strings.TrimSpace(url))
}

// RepoName extracts the repository name from its URL.
func RepoName(url string) string {
	url = strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}

// GitSource materializes read-only checkouts of public repositories into
// request-scoped temp directories.
type GitSource struct{}

func NewGitSource() *GitSource {
	return &GitSource{}
}

// Clone shallow-clones repoURL into a fresh temp directory and returns its
// path. The directory is removed before returning on every failure path;
// on success the caller owns it and must release it via Cleanup.
func (g *GitSource) Clone(ctx context.Context, repoURL string) (string, error) {
	repoURL = strings.TrimSpace(repoURL)
	if !ValidateURL(repoURL) {
		return "", fmt.Errorf("%w: %q is not a GitHub repository URL", ErrInvalidRepo, repoURL)
	}
	if !strings.HasSuffix(repoURL, ".git") {
		repoURL += ".git"
	}

	dir, err := os.MkdirTemp("", "codearch-")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCloneFailed, err)
	}

	_, err = git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:          repoURL,
		Depth:        1,
		SingleBranch: true,
	})
	if err != nil {
		_ = os.RemoveAll(dir)
		return "", classifyCloneError(repoURL, err)
	}
	return dir, nil
}

// Cleanup releases a checkout. Safe to call with an empty path; failure is
// logged, never propagated.
func (g *GitSource) Cleanup(path string) {
	if path == "" {
		return
	}
	if err := os.RemoveAll(path); err != nil {
		slog.Warn("failed to clean up checkout", "path", path, "error", err)
	}
}

func classifyCloneError(repoURL string, err error) error {
	switch {
	case errors.Is(err, transport.ErrRepositoryNotFound):
		return fmt.Errorf("%w: repository not found: %s", ErrInvalidRepo, repoURL)
	case errors.Is(err, transport.ErrAuthenticationRequired),
		errors.Is(err, transport.ErrAuthorizationFailed):
		return fmt.Errorf("%w: access denied, the repository may be private", ErrCloneFailed)
	default:
		return fmt.Errorf("%w: %v", ErrCloneFailed, err)
	}
}
