package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"atena/internal/knowledge"
)

// Settings is the application-level configuration of the CLI: where the
// construction document and the knowledge base live, and how chatty logging
// should be. It is distinct from the parsed document itself.
type Settings struct {
	// Document is the path to the agent construction markdown file.
	Document string `yaml:"document"`

	// KnowledgeDir roots the knowledge base file lookups.
	KnowledgeDir string `yaml:"knowledge_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultSettings returns the conventional settings.
func DefaultSettings() *Settings {
	return &Settings{
		Document:     "docs/agent_construction.md",
		KnowledgeDir: knowledge.DefaultBaseDir,
		LogLevel:     "info",
	}
}

// LoadSettings reads settings from a yaml file, layering file values over the
// defaults and environment overrides over both. A missing file is not an
// error; defaults plus environment apply.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parsing settings %s: %w", path, err)
		}
	}

	s.applyEnvOverrides()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the settings as yaml, creating parent directories as needed.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	return nil
}

func (s *Settings) applyEnvOverrides() {
	if v := os.Getenv("ATENA_DOCUMENT"); v != "" {
		s.Document = v
	}
	if v := os.Getenv("ATENA_KNOWLEDGE_DIR"); v != "" {
		s.KnowledgeDir = v
	}
	if v := os.Getenv("ATENA_LOG_LEVEL"); v != "" {
		s.LogLevel = v
	}
}

// Validate checks the settings for values the CLI cannot run with.
func (s *Settings) Validate() error {
	if s.Document == "" {
		return fmt.Errorf("settings: document path must not be empty")
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("settings: invalid log level %q", s.LogLevel)
	}
	return nil
}
