package server

import (
	"context"
	"log/slog"

	"codearch/internal/depgraph"
	"codearch/internal/gemini"
	"codearch/internal/storage"

	"github.com/gin-gonic/gin"
)

// ServiceName appears in the health payload.
const ServiceName = "Code Archaeologist API"

// RepositorySource materializes and releases repository checkouts.
type RepositorySource interface {
	Clone(ctx context.Context, repoURL string) (string, error)
	Cleanup(path string)
}

// TextAnalyzer turns repository text into structured reports. It is opaque
// to the server: prompt construction and model choice live behind it.
type TextAnalyzer interface {
	Analyze(ctx context.Context, codeText, repoName string) (*gemini.Analysis, error)
	Chat(ctx context.Context, repoContent, repoURL, question string, history []gemini.ChatMessage) (string, error)
	DetectAIAuthorship(ctx context.Context, repoContent string) *gemini.Detection
}

// Server wires the HTTP surface to its collaborators.
type Server struct {
	source   RepositorySource
	analyzer TextAnalyzer
	store    storage.Store
	graphCfg depgraph.Config
}

func New(source RepositorySource, analyzer TextAnalyzer, store storage.Store) *Server {
	return &Server{
		source:   source,
		analyzer: analyzer,
		store:    store,
		graphCfg: depgraph.DefaultConfig(),
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), cors())

	r.GET("/", s.handleRoot)
	r.GET("/health", s.handleHealth)
	r.POST("/analyze", s.handleAnalyze)
	r.POST("/chat", s.handleChat)

	return r
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	slog.Info("listening", "addr", addr, "service", ServiceName)
	return s.Router().Run(addr)
}
