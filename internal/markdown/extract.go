// Package markdown extracts structured values from the agent construction
// document format: named sections delimited by bold labels (**Name**) or
// heading markers (### Name), values carried either in triple-backtick fences
// or as checkbox option lists.
//
// Every function is total: malformed or absent input yields the empty value,
// never an error. Callers treat "" as "section not present".
package markdown

import (
	"regexp"
	"strings"
)

var (
	checkboxValueRe   = regexp.MustCompile(`- \[[Xx]\] ([^:\n]+)`)
	checkboxOptDescRe = regexp.MustCompile(`- \[[Xx]\] ([^:]+):\s*(.+)`)
	checkboxOptRe     = regexp.MustCompile(`- \[[Xx]\] ([^:]+)`)
)

// FindSection returns the span of the named section: the bold form
// **name** up to the next bold marker or end of document, or failing that the
// heading form "### name" up to the next "###" or end of document.
// Returns "" when neither form appears.
func FindSection(content, name string) string {
	if content == "" || name == "" {
		return ""
	}
	marker := "**" + name + "**"
	if i := strings.Index(content, marker); i >= 0 {
		return sliceUntil(content[i:], len(marker), "**")
	}
	marker = "### " + name
	if i := strings.Index(content, marker); i >= 0 {
		return sliceUntil(content[i:], len(marker), "###")
	}
	return ""
}

// sliceUntil returns text up to (excluding) the first occurrence of stop after
// the leading skip bytes, or all of text if stop never occurs again.
func sliceUntil(text string, skip int, stop string) string {
	if j := strings.Index(text[skip:], stop); j >= 0 {
		return text[:skip+j]
	}
	return text
}

// SectionExists reports whether the named section appears in either header
// form.
func SectionExists(content, name string) bool {
	return strings.Contains(content, "**"+name+"**") ||
		strings.Contains(content, "### "+name)
}

// FindSectionBetweenHeaders returns everything from the first occurrence of
// startHeader up to (excluding) the first following occurrence of endHeader,
// or to end of document when endHeader never occurs. Headers are matched as
// literal text.
func FindSectionBetweenHeaders(content, startHeader, endHeader string) string {
	i := strings.Index(content, startHeader)
	if i < 0 {
		return ""
	}
	return sliceUntil(content[i:], len(startHeader), endHeader)
}

// ExtractBetweenBackticks returns the trimmed body of the first
// triple-backtick fenced block in text, or "" when no complete fence exists.
func ExtractBetweenBackticks(text string) string {
	i := strings.Index(text, "```")
	if i < 0 {
		return ""
	}
	rest := text[i+3:]
	j := strings.Index(rest, "```")
	if j < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:j])
}

// ExtractSelectedCheckboxValue returns the label of the first marked checkbox
// line ("- [X] Label" or "- [x] Label", label terminated at a colon or end of
// line). Later marked lines are ignored.
func ExtractSelectedCheckboxValue(section string) string {
	for _, line := range strings.Split(section, "\n") {
		if !strings.Contains(line, "[X]") && !strings.Contains(line, "[x]") {
			continue
		}
		if m := checkboxValueRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// GetSelectedOption locates the named section and returns the first marked
// checkbox option as "Label: Description" when the line carries a
// colon-delimited description, or just "Label" otherwise. Returns "" when the
// section is absent or nothing is marked.
func GetSelectedOption(content, name string) string {
	section := FindSection(content, name)
	if section == "" {
		return ""
	}
	for _, line := range strings.Split(section, "\n") {
		if !strings.Contains(line, "[X]") && !strings.Contains(line, "[x]") {
			continue
		}
		if m := checkboxOptDescRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]) + ": " + strings.TrimSpace(m[2])
		}
		if m := checkboxOptRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// SelectedOptionWithDescription returns the first marked checkbox option of a
// section in the strict "Label: Description" form. Marked lines without a
// description are skipped; returns "" when no marked line carries one.
func SelectedOptionWithDescription(section string) string {
	for _, line := range strings.Split(section, "\n") {
		if !strings.Contains(line, "[X]") && !strings.Contains(line, "[x]") {
			continue
		}
		if m := checkboxOptDescRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]) + ": " + strings.TrimSpace(m[2])
		}
	}
	return ""
}

// SafeExtractValue locates the named section and extracts its value,
// preferring a fenced block and falling back to a marked checkbox. Returns ""
// when the section is absent or carries neither form.
func SafeExtractValue(content, name string) string {
	section := FindSection(content, name)
	if section == "" {
		return ""
	}
	if v := ExtractBetweenBackticks(section); v != "" {
		return v
	}
	return ExtractSelectedCheckboxValue(section)
}

// SplitList splits fenced list text into trimmed, non-empty lines, dropping
// comment lines prefixed with '#'.
func SplitList(text string) []string {
	if text == "" {
		return nil
	}
	var items []string
	for _, line := range strings.Split(text, "\n") {
		item := strings.TrimSpace(line)
		if item == "" || strings.HasPrefix(item, "#") {
			continue
		}
		items = append(items, item)
	}
	return items
}
