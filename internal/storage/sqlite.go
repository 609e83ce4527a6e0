package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements Store over a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS repo_analysis (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		repo_url TEXT UNIQUE NOT NULL,
		modules TEXT,
		architecture TEXT,
		technical_debt TEXT,
		technical_debt_suggestions TEXT,
		onboarding_guide TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`)
	return err
}

// SaveAnalysis upserts by repository URL, so re-analyzing a repository
// replaces its report instead of accumulating rows.
func (s *SQLiteStore) SaveAnalysis(ctx context.Context, a *RepoAnalysis) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO repo_analysis (repo_url, modules, architecture, technical_debt, technical_debt_suggestions, onboarding_guide)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(repo_url) DO UPDATE SET
			modules=excluded.modules,
			architecture=excluded.architecture,
			technical_debt=excluded.technical_debt,
			technical_debt_suggestions=excluded.technical_debt_suggestions,
			onboarding_guide=excluded.onboarding_guide
	`, a.RepoURL, a.Modules, a.Architecture, a.TechnicalDebt, a.TechnicalDebtSuggestions, a.OnboardingGuide)
	return err
}

func (s *SQLiteStore) GetAnalysis(ctx context.Context, repoURL string) (*RepoAnalysis, error) {
	var a RepoAnalysis
	err := s.db.QueryRowContext(ctx, `
		SELECT id, repo_url, modules, architecture, technical_debt, technical_debt_suggestions, onboarding_guide, created_at
		FROM repo_analysis WHERE repo_url = ?
	`, repoURL).Scan(
		&a.ID, &a.RepoURL, &a.Modules, &a.Architecture,
		&a.TechnicalDebt, &a.TechnicalDebtSuggestions, &a.OnboardingGuide, &a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis: %w", err)
	}
	return &a, nil
}
