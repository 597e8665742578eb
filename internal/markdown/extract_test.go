package markdown

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleDoc = `## Section 1: Agent Identification

**Agent Name**
` + "```" + `
Atena
` + "```" + `

**Interaction Type**
- [ ] Autonomous
- [X] Conversational: multi-turn dialogue with the user

## Section 2: Problem Definition

**Problems to be Solved**
` + "```" + `
# One problem per line
Ambiguous requirements
Missing acceptance criteria
` + "```" + `

## Section 4: Agent Configuration

### Role Definition

**Role Title**
` + "```" + `
Requirements Analyst
` + "```" + `

**Autonomy**
- [ ] Low
- [X] High: full independence
- [ ] Medium
`

func TestFindSection_BoldForm(t *testing.T) {
	section := FindSection(sampleDoc, "Agent Name")
	if section == "" {
		t.Fatal("expected section for Agent Name")
	}
	if !strings.Contains(section, "Atena") {
		t.Errorf("section missing fenced value: %q", section)
	}
	// Bold sections stop at the next bold marker.
	if strings.Contains(section, "Interaction Type") {
		t.Errorf("section leaked into the next bold label: %q", section)
	}
}

func TestFindSection_HeadingForm(t *testing.T) {
	section := FindSection(sampleDoc, "Role Definition")
	if section == "" {
		t.Fatal("expected section for heading form")
	}
	if !strings.HasPrefix(section, "### Role Definition") {
		t.Errorf("unexpected section start: %q", section)
	}
}

func TestFindSection_Absent(t *testing.T) {
	if got := FindSection(sampleDoc, "No Such Section"); got != "" {
		t.Errorf("expected empty string for absent section, got %q", got)
	}
	if got := FindSection("", "Agent Name"); got != "" {
		t.Errorf("expected empty string for empty content, got %q", got)
	}
}

func TestSectionExists(t *testing.T) {
	if !SectionExists(sampleDoc, "Agent Name") {
		t.Error("bold section should exist")
	}
	if !SectionExists(sampleDoc, "Role Definition") {
		t.Error("heading section should exist")
	}
	if SectionExists(sampleDoc, "Nonexistent") {
		t.Error("absent section reported as existing")
	}
}

func TestExtractBetweenBackticks_RoundTrip(t *testing.T) {
	for _, v := range []string{"plain", "  padded  ", "multi\nline\nvalue", ""} {
		text := "label\n```" + v + "```\ntrailing"
		if got, want := ExtractBetweenBackticks(text), strings.TrimSpace(v); got != want {
			t.Errorf("round trip of %q: got %q, want %q", v, got, want)
		}
	}
}

func TestExtractBetweenBackticks_NoFence(t *testing.T) {
	if got := ExtractBetweenBackticks("no fences here"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	// An unterminated fence is not a value.
	if got := ExtractBetweenBackticks("```dangling"); got != "" {
		t.Errorf("expected empty for unterminated fence, got %q", got)
	}
}

func TestExtractSelectedCheckboxValue_FirstMarkedWins(t *testing.T) {
	section := "**Level**\n- [ ] Low\n- [x] Medium\n- [X] High"
	if got := ExtractSelectedCheckboxValue(section); got != "Medium" {
		t.Errorf("expected first marked line to win, got %q", got)
	}

	// Reordering unmarked lines changes nothing.
	reordered := "**Level**\n- [x] Medium\n- [ ] Low\n- [X] High"
	if got := ExtractSelectedCheckboxValue(reordered); got != "Medium" {
		t.Errorf("expected Medium after reorder, got %q", got)
	}
}

func TestExtractSelectedCheckboxValue_LabelStopsAtColon(t *testing.T) {
	section := "- [X] High: full independence"
	if got := ExtractSelectedCheckboxValue(section); got != "High" {
		t.Errorf("expected label only, got %q", got)
	}
}

func TestExtractSelectedCheckboxValue_NothingMarked(t *testing.T) {
	section := "- [ ] Low\n- [ ] High"
	if got := ExtractSelectedCheckboxValue(section); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestGetSelectedOption_WithDescription(t *testing.T) {
	doc := "**Autonomy**\n- [ ] Low\n- [X] High: full independence\n- [ ] Medium"
	if got := GetSelectedOption(doc, "Autonomy"); got != "High: full independence" {
		t.Errorf("got %q", got)
	}
}

func TestGetSelectedOption_WithoutDescription(t *testing.T) {
	doc := "**Style**\n- [x] Formal\n- [ ] Casual"
	if got := GetSelectedOption(doc, "Style"); got != "Formal" {
		t.Errorf("got %q", got)
	}
}

func TestGetSelectedOption_SectionAbsent(t *testing.T) {
	if got := GetSelectedOption(sampleDoc, "Missing"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestSelectedOptionWithDescription(t *testing.T) {
	section := "- [X] Advanced: ten years in the field"
	if got := SelectedOptionWithDescription(section); got != "Advanced: ten years in the field" {
		t.Errorf("got %q", got)
	}
	// Marked lines without a description are skipped entirely.
	if got := SelectedOptionWithDescription("- [X] Advanced"); got != "" {
		t.Errorf("expected empty for bare option, got %q", got)
	}
}

func TestFindSectionBetweenHeaders(t *testing.T) {
	got := FindSectionBetweenHeaders(sampleDoc, "## Section 1:", "## Section 2:")
	if !strings.Contains(got, "Agent Name") {
		t.Errorf("slice missing Section 1 content: %q", got)
	}
	if strings.Contains(got, "Problems to be Solved") {
		t.Errorf("slice leaked into Section 2: %q", got)
	}
}

func TestFindSectionBetweenHeaders_EndAbsentBoundsAtEOF(t *testing.T) {
	got := FindSectionBetweenHeaders(sampleDoc, "## Section 4:", "## Section 5:")
	if got == "" {
		t.Fatal("expected Section 4 slice even though Section 5 is absent")
	}
	if !strings.Contains(got, "Autonomy") {
		t.Errorf("slice truncated before end of document: %q", got)
	}
}

func TestFindSectionBetweenHeaders_StartAbsent(t *testing.T) {
	if got := FindSectionBetweenHeaders(sampleDoc, "## Section 9:", "## Section 10:"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestFindSectionBetweenHeaders_LiteralMatching(t *testing.T) {
	doc := "prefix ## S.1 (a+b) body ## S.2 tail"
	got := FindSectionBetweenHeaders(doc, "## S.1 (a+b)", "## S.2")
	if got != "## S.1 (a+b) body " {
		t.Errorf("metacharacters in headers must match literally, got %q", got)
	}
}

func TestSafeExtractValue(t *testing.T) {
	if got := SafeExtractValue(sampleDoc, "Agent Name"); got != "Atena" {
		t.Errorf("fenced value: got %q", got)
	}
	if got := SafeExtractValue(sampleDoc, "Interaction Type"); got != "Conversational" {
		t.Errorf("checkbox fallback: got %q", got)
	}
	if got := SafeExtractValue(sampleDoc, "Missing"); got != "" {
		t.Errorf("absent section: got %q", got)
	}
}

func TestSplitList(t *testing.T) {
	text := "# comment\nfirst\n\n  second  \n# another\nthird"
	want := []string{"first", "second", "third"}
	if diff := cmp.Diff(want, SplitList(text)); diff != "" {
		t.Errorf("SplitList mismatch (-want +got):\n%s", diff)
	}
	if got := SplitList(""); got != nil {
		t.Errorf("expected nil for empty text, got %v", got)
	}
}
