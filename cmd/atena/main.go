package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"atena/internal/config"
)

var (
	// Global flags
	settingsPath string
	documentPath string
	knowledgeDir string
	verbose      bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "atena",
	Short: "Atena - markdown-driven requirements analyst configuration",
	Long: `Atena manages the agent construction document: a structured markdown
form describing the agent's identity, the problems it solves, its behavior,
and up to nine task definitions with per-task LLM settings and knowledge
base references.

The document is parsed into an immutable snapshot and kept in sync with
on-disk edits via a filesystem watch.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		cfg := zap.NewProductionConfig()
		level := settings.LogLevel
		if verbose {
			level = "debug"
		}
		var zl zapcore.Level
		if err := zl.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(zl)

		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// loadSettings resolves the effective settings: yaml file, environment, then
// command-line flags, strongest last.
func loadSettings() (*config.Settings, error) {
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}
	if documentPath != "" {
		settings.Document = documentPath
	}
	if knowledgeDir != "" {
		settings.KnowledgeDir = knowledgeDir
	}
	return settings, nil
}

// newProvider builds a Provider from the effective settings. Callers own the
// returned provider and must Close it.
func newProvider() (*config.Provider, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}
	return config.NewProvider(settings.Document, settings.KnowledgeDir, logger)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "atena.yaml", "path to the settings file")
	rootCmd.PersistentFlags().StringVar(&documentPath, "document", "", "agent construction document (overrides settings)")
	rootCmd.PersistentFlags().StringVar(&knowledgeDir, "knowledge-dir", "", "knowledge base directory (overrides settings)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
