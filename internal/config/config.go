// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type ResearchConfig struct {
	ProviderTimeout time.Duration `yaml:"provider_timeout"` // per-company enrichment budget
	ItemDelay       time.Duration `yaml:"item_delay"`       // pacing floor between companies
	Retention       time.Duration `yaml:"retention"`        // keep terminal jobs this long
	SweepInterval   time.Duration `yaml:"sweep_interval"`
	PollInterval    time.Duration `yaml:"poll_interval"` // min spacing between status polls per job
	PollBurst       int           `yaml:"poll_burst"`
}

type UploadConfig struct {
	MaxBytes int64 `yaml:"max_bytes"`
}

type AIConfig struct {
	PerplexityKey string `yaml:"perplexity_key"`
	PerplexityURL string `yaml:"perplexity_url"`
	OpenAIKey     string `yaml:"openai_key"`
	Model         string `yaml:"model"`
}

type EnrichConfig struct {
	ExaKey     string `yaml:"exa_key"`
	ExaURL     string `yaml:"exa_url"`
	ProspeoKey string `yaml:"prospeo_key"`
	ProspeoURL string `yaml:"prospeo_url"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Research ResearchConfig `yaml:"research"`
	Upload   UploadConfig   `yaml:"upload"`
	AI       AIConfig       `yaml:"ai"`
	Enrich   EnrichConfig   `yaml:"enrich"`

	Runtime RuntimeConfig `yaml:"-"`
}

func LoadConfig(path string, dev bool) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	// Minimal validation: a real discovery key is required outside dev mode.
	if !dev && cfg.AI.PerplexityKey == "" && cfg.AI.OpenAIKey == "" {
		return nil, errors.New("ai.perplexity_key or ai.openai_key is required (or run with -dev)")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 7501
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Research.ProviderTimeout <= 0 {
		cfg.Research.ProviderTimeout = 60 * time.Second
	}
	if cfg.Research.ItemDelay <= 0 {
		cfg.Research.ItemDelay = 3 * time.Second
	}
	if cfg.Research.Retention <= 0 {
		cfg.Research.Retention = time.Hour
	}
	if cfg.Research.SweepInterval <= 0 {
		cfg.Research.SweepInterval = 5 * time.Minute
	}
	if cfg.Research.PollInterval <= 0 {
		cfg.Research.PollInterval = time.Second
	}
	if cfg.Research.PollBurst <= 0 {
		cfg.Research.PollBurst = 3
	}
	if cfg.Upload.MaxBytes <= 0 {
		cfg.Upload.MaxBytes = 5 << 20 // 5MB cap on spreadsheet uploads
	}
	if cfg.AI.PerplexityURL == "" {
		cfg.AI.PerplexityURL = "https://api.perplexity.ai"
	}
	if cfg.AI.Model == "" {
		if cfg.AI.PerplexityKey != "" {
			cfg.AI.Model = "sonar"
		} else {
			cfg.AI.Model = "gpt-4o-mini"
		}
	}
	if cfg.Enrich.ExaURL == "" {
		cfg.Enrich.ExaURL = "https://api.exa.ai"
	}
	if cfg.Enrich.ProspeoURL == "" {
		cfg.Enrich.ProspeoURL = "https://api.prospeo.io"
	}
}
