package knowledge

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFiles_OrdinalPrefixAndMissingEntry(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "reqs.md", "requirements content")

	loader := NewLoader(dir, nil)
	got := loader.LoadFiles([]string{"2.reqs", "missing_file"})

	if len(got) != 1 {
		t.Fatalf("expected exactly one entry, got %d: %v", len(got), got)
	}
	if got["reqs"] != "requirements content" {
		t.Errorf("unexpected content for reqs: %q", got["reqs"])
	}
}

func TestLoadFiles_ExtensionCandidates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.markdown", "markdown body")

	loader := NewLoader(dir, nil)
	got := loader.LoadFiles([]string{"notes"})
	if got["notes"] != "markdown body" {
		t.Errorf(".markdown fallback failed: %v", got)
	}
}

func TestLoadFiles_LiteralNameWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "guide.md", "literal")

	loader := NewLoader(dir, nil)
	got := loader.LoadFiles([]string{"1.guide.md"})
	if got["guide"] != "literal" {
		t.Errorf("expected literal name resolution after prefix strip: %v", got)
	}
}

func TestLoadFiles_BlankAndEmptyRefs(t *testing.T) {
	loader := NewLoader(t.TempDir(), nil)
	got := loader.LoadFiles([]string{"", "   ", "\t"})
	if len(got) != 0 {
		t.Errorf("blank refs must be skipped, got %v", got)
	}
}

func TestLoadFiles_DuplicateBasenameOverwrites(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1.topic.md", "first")
	writeFile(t, dir, "topic.md", "second")

	loader := NewLoader(dir, nil)
	// Both refs normalize to the "topic" key; the later load wins.
	got := loader.LoadFiles([]string{"1.topic.md", "topic.md"})
	if len(got) != 1 || got["topic"] != "second" {
		t.Errorf("expected later entry to overwrite, got %v", got)
	}
}

func TestNewLoader_Defaults(t *testing.T) {
	loader := NewLoader("", nil)
	if loader.BaseDir() != DefaultBaseDir {
		t.Errorf("expected default base dir, got %q", loader.BaseDir())
	}
}
