// Package prompt renders system and task prompts from a parsed agent
// configuration snapshot.
package prompt

import (
	"fmt"
	"strings"

	"atena/internal/config"
)

// UnnamedAgent is rendered when the document carries no agent name.
const UnnamedAgent = "Unnamed Agent"

// SystemPrompt formats the agent profile into the system prompt header used
// for every conversation turn.
func SystemPrompt(a *config.AgentConfig) string {
	name := a.Name
	if name == "" {
		name = UnnamedAgent
	}

	var b strings.Builder
	b.WriteString("### AGENT PROFILE ###\n")
	fmt.Fprintf(&b, "NAME: %s\n\n", name)

	b.WriteString("ROLE CONFIGURATION:\n")
	fmt.Fprintf(&b, "- Role Title: %s\n", a.Role)
	fmt.Fprintf(&b, "- Field of Work: %s\n", a.FieldOfWork)
	fmt.Fprintf(&b, "- Expertise Level: %s\n", a.ExpertiseLevel)
	fmt.Fprintf(&b, "- Professional Background: %s\n\n", a.ProfessionalBackground)

	b.WriteString("TECHNICAL SKILLS:\n")
	writeBullets(&b, a.TechnicalSkills)
	b.WriteString("\nRESOURCES:\n")
	writeBullets(&b, a.Resources)

	b.WriteString("\nBEHAVIOR CONFIGURATION:\n")
	fmt.Fprintf(&b, "- Communication Approach: %s\n", a.CommunicationApproach)
	fmt.Fprintf(&b, "- Response Style: %s\n", a.ResponseStyle)
	fmt.Fprintf(&b, "- Proactivity Level: %s\n", a.ProactivityLevel)
	fmt.Fprintf(&b, "- Autonomy: %s\n", a.Autonomy)

	return b.String()
}

// TaskPrompt formats one task brief: the problems the agent addresses, the
// task objective, the placeholder-substituted outcomes, and the delivery
// constraints. demand is the user's specific request and may be empty.
func TaskPrompt(a *config.AgentConfig, t *config.TaskConfig, demand string) string {
	var b strings.Builder
	b.WriteString("### TASK BRIEF ###\n")
	fmt.Fprintf(&b, "TASK: %s\n\n", t.Name)

	b.WriteString("PROBLEMS TO SOLVE:\n")
	writeBullets(&b, a.Problems)

	fmt.Fprintf(&b, "\nMAIN OBJECTIVE:\n%s\n", t.MainObjective)

	if desc := t.FormattedDescription(); desc != "" {
		fmt.Fprintf(&b, "\nEXPECTED OUTCOMES:\n%s\n", desc)
	}
	if len(t.OutOfScope) > 0 {
		b.WriteString("\nOUT OF SCOPE:\n")
		writeBullets(&b, t.OutOfScope)
	}
	if t.Language != "" {
		fmt.Fprintf(&b, "\nLANGUAGE: %s\n", t.Language)
	}
	if t.ExpectedOutput != "" {
		fmt.Fprintf(&b, "\nEXPECTED OUTPUT:\n%s\n", t.ExpectedOutput)
	}
	if demand != "" {
		fmt.Fprintf(&b, "\nUSER DEMAND:\n%s\n", demand)
	}

	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	if len(items) == 0 {
		b.WriteString("- none\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}
