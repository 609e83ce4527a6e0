package storage

import (
	"context"
	"time"
)

// RepoAnalysis is one persisted analysis. The report fields are opaque text
// blobs produced by the analyzer; Modules holds the JSON-encoded module map.
type RepoAnalysis struct {
	ID                       int64
	RepoURL                  string
	Modules                  string
	Architecture             string
	TechnicalDebt            string
	TechnicalDebtSuggestions string
	OnboardingGuide          string
	CreatedAt                time.Time
}

// Store persists repository analyses keyed by repository URL.
type Store interface {
	// SaveAnalysis upserts the analysis for its repository URL.
	SaveAnalysis(ctx context.Context, a *RepoAnalysis) error

	// GetAnalysis returns the stored analysis for repoURL, or (nil, nil)
	// when none exists.
	GetAnalysis(ctx context.Context, repoURL string) (*RepoAnalysis, error)

	Close() error
}
