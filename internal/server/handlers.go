package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"codearch/internal/content"
	"codearch/internal/depgraph"
	"codearch/internal/gemini"
	"codearch/internal/source"
	"codearch/internal/storage"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": ServiceName})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleAnalyze drives the whole pipeline: validate, cache lookup, clone,
// read, local extraction, model call, persist. The file tree, reference
// graph and AI-authorship estimate are best-effort garnish: their failure
// degrades the response, never fails it.
func (s *Server) handleAnalyze(c *gin.Context) {
	logger := slog.With("request_id", getRequestID(c), "handler", "analyze")

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "repo is required"})
		return
	}

	repoURL := strings.TrimSpace(req.Repo)
	if !source.ValidateURL(repoURL) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Detail: "Invalid GitHub URL. Use format: https://github.com/username/repo.git",
		})
		return
	}

	ctx := c.Request.Context()

	// Serve the cached report when this repository was analyzed before.
	if cached, err := s.store.GetAnalysis(ctx, repoURL); err == nil && cached != nil {
		logger.Info("serving cached analysis", "repo", repoURL)
		c.JSON(http.StatusOK, cachedResponse(cached))
		return
	} else if err != nil {
		logger.Warn("cache lookup failed", "error", err)
	}

	logger.Info("cloning repository", "repo", repoURL)
	checkout, err := s.source.Clone(ctx, repoURL)
	if err != nil {
		if errors.Is(err, source.ErrInvalidRepo) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		} else {
			c.JSON(http.StatusBadGateway, ErrorResponse{Detail: err.Error()})
		}
		return
	}
	defer s.source.Cleanup(checkout)

	codeText := content.ReadCodeFiles(checkout)
	if codeText == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Detail: "Repository appears to be empty or has no supported code files. " +
				"Supported extensions: .py, .js, .ts, .java, .cpp, .c, .html, .css",
		})
		return
	}

	tree := content.FileTree(checkout)
	if tree == nil {
		tree = &content.TreeNode{Name: "root", Type: "folder", Path: "."}
	}
	deps := depgraph.Build(checkout, s.graphCfg)
	detection := s.analyzer.DetectAIAuthorship(ctx, codeText)

	logger.Info("requesting analysis", "repo", repoURL, "code_bytes", len(codeText))
	analysis, err := s.analyzer.Analyze(ctx, codeText, source.RepoName(repoURL))
	if err != nil {
		c.JSON(analyzeStatus(err), ErrorResponse{Detail: err.Error()})
		return
	}

	modulesJSON, _ := json.Marshal(analysis.Modules)
	record := &storage.RepoAnalysis{
		RepoURL:                  repoURL,
		Modules:                  string(modulesJSON),
		Architecture:             analysis.Architecture,
		TechnicalDebt:            analysis.TechnicalDebt,
		TechnicalDebtSuggestions: analysis.TechnicalDebtSuggestions,
		OnboardingGuide:          analysis.OnboardingGuide,
	}
	if err := s.store.SaveAnalysis(ctx, record); err != nil {
		// The report is still worth returning.
		logger.Warn("failed to persist analysis", "repo", repoURL, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"modules":                    analysis.Modules,
		"architecture":               analysis.Architecture,
		"technical_debt":             analysis.TechnicalDebt,
		"technical_debt_suggestions": analysis.TechnicalDebtSuggestions,
		"onboarding_guide":           analysis.OnboardingGuide,
		"file_tree":                  tree,
		"dependencies":               deps,
		"ai_detection":               detection,
	})
}

func (s *Server) handleChat(c *gin.Context) {
	logger := slog.With("request_id", getRequestID(c), "handler", "chat")

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "repo and question are required"})
		return
	}

	repoURL := strings.TrimSpace(req.Repo)
	ctx := c.Request.Context()

	cached, err := s.store.GetAnalysis(ctx, repoURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to look up repository"})
		return
	}
	if cached == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Detail: "Repository not found. Please analyze it first using /analyze endpoint.",
		})
		return
	}

	answer, err := s.analyzer.Chat(ctx, chatContext(cached), repoURL, req.Question, req.History)
	if err != nil {
		logger.Warn("chat failed", "repo", repoURL, "error", err)
		c.JSON(analyzeStatus(err), ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Response: answer})
}

// chatContext rebuilds a textual stand-in for the repository from the stored
// report, since the checkout itself is long gone.
func chatContext(a *storage.RepoAnalysis) string {
	var sb strings.Builder
	sb.WriteString("Modules:\n")
	sb.WriteString(a.Modules)
	sb.WriteString("\n\nArchitecture:\n")
	sb.WriteString(a.Architecture)
	sb.WriteString("\n\nTechnical debt:\n")
	sb.WriteString(a.TechnicalDebt)
	sb.WriteString("\n\nOnboarding guide:\n")
	sb.WriteString(a.OnboardingGuide)
	return sb.String()
}

func cachedResponse(a *storage.RepoAnalysis) gin.H {
	modules := map[string]string{}
	if a.Modules != "" {
		_ = json.Unmarshal([]byte(a.Modules), &modules)
	}
	return gin.H{
		"modules":                    modules,
		"architecture":               a.Architecture,
		"technical_debt":             a.TechnicalDebt,
		"technical_debt_suggestions": a.TechnicalDebtSuggestions,
		"onboarding_guide":           a.OnboardingGuide,
	}
}

// analyzeStatus maps analyzer error classes onto upstream-style statuses.
func analyzeStatus(err error) int {
	switch {
	case errors.Is(err, gemini.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, gemini.ErrConnection):
		return http.StatusServiceUnavailable
	case errors.Is(err, gemini.ErrAPI):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
