package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	AI struct {
		Model  string `yaml:"model"`
		APIKey string `yaml:"api_key"`
	} `yaml:"ai"`
	Clone struct {
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"clone"`
}

// LoadConfig reads the YAML config at path, layered under a .env file and
// environment variables. A missing config file is fine: defaults plus the
// environment are enough to run.
func LoadConfig(path string) (*Config, error) {
	// Load .env if exists
	_ = godotenv.Load()

	cfg := defaults()

	if file, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// Environment variables win over the file.
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if model := os.Getenv("CODEARCH_MODEL"); model != "" {
		cfg.AI.Model = model
	}
	if addr := os.Getenv("CODEARCH_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if db := os.Getenv("CODEARCH_DB"); db != "" {
		cfg.Database.Path = db
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8000"
	cfg.Database.Path = "codearch.db"
	cfg.AI.Model = "gemini-3-pro-preview"
	cfg.Clone.Timeout = 2 * time.Minute
	return cfg
}
