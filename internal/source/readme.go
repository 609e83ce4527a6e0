package source

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"time"
)

var ownerRepoPattern = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)

var readmeClient = &http.Client{Timeout: 10 * time.Second}

// FetchReadme pulls the repository README through the GitHub API without
// cloning. Best effort: any failure yields an empty string.
func FetchReadme(ctx context.Context, repoURL string) string {
	m := ownerRepoPattern.FindStringSubmatch(repoURL)
	if m == nil {
		return ""
	}

	apiURL := "https://api.github.com/repos/" + m[1] + "/" + m[2] + "/readme"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("Accept", "application/vnd.github.raw")

	resp, err := readmeClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}
	return string(body)
}
