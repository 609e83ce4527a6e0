package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"codearch/internal/config"
	"codearch/internal/content"
	"codearch/internal/depgraph"
	"codearch/internal/gemini"
	"codearch/internal/server"
	"codearch/internal/source"
	"codearch/internal/storage"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "codearch",
		Short: "AI-powered repository analysis service",
	}
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML configuration file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(graphCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

		store, err := storage.NewSQLiteStore(cfg.Database.Path)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer store.Close()

		analyzer, err := gemini.NewClient(context.Background(), cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}

		srv := server.New(source.NewGitSource(), analyzer, store)
		fmt.Printf("🚀 %s listening on %s\n", server.ServiceName, cfg.Server.Addr)
		if err := srv.Run(cfg.Server.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <repo-url>",
	Short: "Analyze a repository once and print the report as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Clone.Timeout)
		defer cancel()

		analyzer, err := gemini.NewClient(ctx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}

		repoURL := args[0]
		src := source.NewGitSource()

		fmt.Printf("📦 Cloning %s...\n", repoURL)
		checkout, err := src.Clone(ctx, repoURL)
		if err != nil {
			log.Fatalf("Clone failed: %v", err)
		}
		defer src.Cleanup(checkout)

		codeText := content.ReadCodeFiles(checkout)
		if codeText == "" {
			log.Fatal("Repository has no supported code files")
		}

		fmt.Println("🔗 Extracting reference graph...")
		deps := depgraph.Build(checkout, depgraph.DefaultConfig())

		fmt.Println("🧠 Requesting analysis...")
		analysis, err := analyzer.Analyze(ctx, codeText, source.RepoName(repoURL))
		if err != nil {
			log.Fatalf("Analysis failed: %v", err)
		}

		report := map[string]any{
			"modules":                    analysis.Modules,
			"architecture":               analysis.Architecture,
			"technical_debt":             analysis.TechnicalDebt,
			"technical_debt_suggestions": analysis.TechnicalDebtSuggestions,
			"onboarding_guide":           analysis.OnboardingGuide,
			"file_tree":                  content.FileTree(checkout),
			"dependencies":               deps,
			"ai_detection":               analyzer.DetectAIAuthorship(ctx, codeText),
		}
		printJSON(report)
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph [path]",
	Short: "Build the static reference graph for a local directory",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}

		g := depgraph.Build(root, depgraph.DefaultConfig())
		fmt.Fprintf(os.Stderr, "✅ %d nodes, %d edges\n", len(g.Nodes), len(g.Edges))
		printJSON(g)
	},
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
}
