// Package knowledge resolves and loads the markdown files a task cites as its
// knowledge base.
package knowledge

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// DefaultBaseDir is the conventional location of knowledge base files.
const DefaultBaseDir = "knowledge_base/definition"

var ordinalPrefixRe = regexp.MustCompile(`^\d+\.`)

// Loader reads knowledge base files referenced by task configurations.
// References may carry a leading ordinal prefix ("1.requirements.md") and may
// omit the .md/.markdown extension.
type Loader struct {
	baseDir string
	log     *zap.Logger
}

// NewLoader returns a Loader rooted at baseDir. An empty baseDir falls back to
// DefaultBaseDir; a nil logger disables logging.
func NewLoader(baseDir string, log *zap.Logger) *Loader {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{baseDir: baseDir, log: log}
}

// BaseDir returns the directory references are resolved against.
func (l *Loader) BaseDir() string {
	return l.baseDir
}

// LoadFiles resolves each reference and reads it as UTF-8 text, keyed by the
// reference's basename stripped of its ordinal prefix and extension.
// Unresolvable references are logged and skipped; partial results are normal.
// Duplicate keys overwrite earlier entries.
func (l *Loader) LoadFiles(refs []string) map[string]string {
	contents := make(map[string]string)

	for _, ref := range refs {
		name := strings.TrimSpace(ref)
		if name == "" {
			continue
		}
		clean := ordinalPrefixRe.ReplaceAllString(name, "")

		base := filepath.Base(clean)
		base = strings.TrimSuffix(base, filepath.Ext(base))

		candidates := []string{filepath.Join(l.baseDir, clean)}
		if !strings.Contains(clean, ".") {
			candidates = append(candidates,
				filepath.Join(l.baseDir, clean+".md"),
				filepath.Join(l.baseDir, clean+".markdown"),
			)
		}

		loaded := false
		for _, path := range candidates {
			data, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				l.log.Error("failed to read knowledge file",
					zap.String("path", path), zap.Error(err))
				break
			}
			contents[base] = string(data)
			l.log.Debug("knowledge file loaded", zap.String("path", path))
			loaded = true
			break
		}

		if !loaded {
			l.log.Warn("knowledge file not found", zap.String("ref", ref),
				zap.String("dir", l.baseDir))
		}
	}

	return contents
}
