package config

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"atena/internal/knowledge"
	"atena/internal/markdown"
)

// Temperature presets selectable in the document's LLM sub-block.
const (
	TemperatureLow     = 0.1
	TemperatureDefault = 0.5
	TemperatureHigh    = 0.9
)

// LLMConfig holds the language model settings of one task.
type LLMConfig struct {
	Model       string
	Temperature float64
	MaxTokens   int // 0 means unset
}

// TaskConfig holds one task parsed from a "### 3.<n>" subsection.
type TaskConfig struct {
	Name           string
	MainObjective  string
	Description    string
	Language       string
	ExpectedOutput string
	OutputJSON     string

	OutOfScope    []string
	KnowledgeBase []string
	Tools         []string

	// KnowledgeContents maps normalized knowledge base references to loaded
	// file text. Always a subset of KnowledgeBase after normalization.
	KnowledgeContents map[string]string

	LLM LLMConfig
}

// ParseTaskConfig extracts one task from its subsection text. num is the task
// index 1..9; loader resolves the task's knowledge base references. Missing
// fields stay at their defaults; the parse never fails.
func ParseTaskConfig(section string, num int, loader *knowledge.Loader, log *zap.Logger) *TaskConfig {
	if log == nil {
		log = zap.NewNop()
	}
	t := &TaskConfig{
		Name:              fmt.Sprintf("Task %d", num),
		KnowledgeContents: map[string]string{},
		LLM:               LLMConfig{Temperature: TemperatureDefault},
	}

	t.MainObjective = markdown.ExtractBetweenBackticks(markdown.FindSection(section, "Main Objective"))
	t.Description = parseOutcomes(markdown.ExtractBetweenBackticks(markdown.FindSection(section, "Expected Outcomes")))
	t.Language = markdown.ExtractBetweenBackticks(markdown.FindSection(section, "Language"))
	t.ExpectedOutput = markdown.ExtractBetweenBackticks(markdown.FindSection(section, "Expected Output"))
	t.OutputJSON = markdown.ExtractBetweenBackticks(markdown.FindSection(section, "Output Json"))

	t.OutOfScope = markdown.SplitList(markdown.ExtractBetweenBackticks(markdown.FindSection(section, "Out of Scope")))
	t.KnowledgeBase = markdown.SplitList(markdown.ExtractBetweenBackticks(markdown.FindSection(section, "Knowledge Base")))
	t.Tools = markdown.SplitList(markdown.ExtractBetweenBackticks(markdown.FindSection(section, "Tools")))

	t.parseLLM(section, num)

	if len(t.KnowledgeBase) > 0 && loader != nil {
		t.KnowledgeContents = loader.LoadFiles(t.KnowledgeBase)
	}

	log.Debug("task parsed",
		zap.String("task", t.Name),
		zap.String("model", t.LLM.Model),
		zap.Int("knowledge_files", len(t.KnowledgeContents)))
	return t
}

// parseLLM reads the "#### 3.<n>.1" sub-block. A malformed block leaves the
// affected field at its default and never aborts the task parse.
func (t *TaskConfig) parseLLM(section string, num int) {
	start := fmt.Sprintf("#### 3.%d.1", num)
	end := fmt.Sprintf("#### 3.%d.2", num)
	if !strings.Contains(section, end) {
		end = markerSection4
	}
	block := markdown.FindSectionBetweenHeaders(section, start, end)
	if block == "" {
		return
	}

	if model := markdown.SafeExtractValue(block, "LLM Model"); model != "" {
		t.LLM.Model = strings.TrimSpace(model)
	}

	temp := markdown.FindSection(block, "LLM Temperature")
	switch {
	case strings.Contains(temp, "[X] 0.1") || strings.Contains(temp, "[x] 0.1"):
		t.LLM.Temperature = TemperatureLow
	case strings.Contains(temp, "[X] 0.9") || strings.Contains(temp, "[x] 0.9"):
		t.LLM.Temperature = TemperatureHigh
	default:
		t.LLM.Temperature = TemperatureDefault
	}

	maxTokens := markdown.ExtractBetweenBackticks(markdown.FindSection(block, "LLM Max Tokens"))
	if maxTokens != "" && !strings.HasPrefix(maxTokens, "[") && isDigits(maxTokens) {
		if n, err := strconv.Atoi(maxTokens); err == nil {
			t.LLM.MaxTokens = n
		}
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// parseOutcomes collects the numbered outcome blocks of the fenced outcomes
// text. An outcome starts at a line "<n>." containing "outcome:" and runs
// until the next numbered marker; blocks are joined with blank lines.
func parseOutcomes(text string) string {
	if text == "" {
		return ""
	}

	var outcomes []string
	var current []string
	next := 1

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, fmt.Sprintf("%d.", next)) && strings.Contains(line, "outcome:") {
			if len(current) > 0 {
				outcomes = append(outcomes, strings.Join(current, "\n"))
				current = nil
			}
			current = append(current, line)
			next++
		} else if len(current) > 0 {
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		outcomes = append(outcomes, strings.Join(current, "\n"))
	}

	return strings.Join(outcomes, "\n\n")
}

// FormattedDescription returns the description with every {name} placeholder
// replaced by the matching knowledge content. Unmatched placeholders are left
// untouched.
func (t *TaskConfig) FormattedDescription() string {
	formatted := t.Description
	for name, content := range t.KnowledgeContents {
		formatted = strings.ReplaceAll(formatted, "{"+name+"}", content)
	}
	return formatted
}
