// Package config parses the Atena agent construction document into agent and
// task configuration, and keeps it in sync with on-disk edits.
package config

import (
	"go.uber.org/zap"

	"atena/internal/markdown"
)

// Top-level markers of the construction document.
const (
	markerSection1 = "## Section 1:"
	markerSection2 = "## Section 2:"
	markerSection3 = "## Section 3:"
	markerSection4 = "## Section 4:"
	markerSection5 = "## Section 5:"
)

// AgentConfig holds the agent identity and behavior parsed from the document.
// Fields left out of the document stay at their zero value; an empty field is
// never an error.
type AgentConfig struct {
	// Identity (Section 1)
	Name            string
	CreationDate    string
	Responsible     string
	Version         string
	InteractionType string

	// Problems to be solved (Section 2)
	Problems []string

	// Role and behavior (Section 4)
	Role                   string
	FieldOfWork            string
	ExpertiseLevel         string
	ProfessionalBackground string
	TechnicalSkills        []string
	Resources              []string
	CommunicationApproach  string
	ResponseStyle          string
	ProactivityLevel       string
	Autonomy               string
}

// ParseAgentConfig extracts the agent configuration from the whole document.
// Missing sections leave their fields empty; the parse never fails.
func ParseAgentConfig(content string, log *zap.Logger) *AgentConfig {
	if log == nil {
		log = zap.NewNop()
	}
	a := &AgentConfig{}
	a.parseIdentity(content, log)
	a.parseProblems(content, log)
	a.parseBehavior(content, log)
	return a
}

func (a *AgentConfig) parseIdentity(content string, log *zap.Logger) {
	identity := markdown.FindSectionBetweenHeaders(content, markerSection1, markerSection2)
	if identity != "" {
		a.Name = markdown.SafeExtractValue(identity, "Agent Name")
		a.CreationDate = markdown.SafeExtractValue(identity, "Creation Date")
		a.Responsible = markdown.SafeExtractValue(identity, "Responsible")
		a.Version = markdown.SafeExtractValue(identity, "Version")
	}

	// The interaction type lives outside the identity slice in some document
	// revisions, so it is searched document-wide.
	interaction := markdown.FindSection(content, "Interaction Type")
	a.InteractionType = markdown.SelectedOptionWithDescription(interaction)

	if a.Name == "" {
		log.Debug("agent name not found in document")
	} else {
		log.Debug("agent identity parsed", zap.String("name", a.Name))
	}
}

func (a *AgentConfig) parseProblems(content string, log *zap.Logger) {
	section := markdown.FindSection(content, "Problems to be Solved")
	a.Problems = markdown.SplitList(markdown.ExtractBetweenBackticks(section))
	log.Debug("problems parsed", zap.Int("count", len(a.Problems)))
}

func (a *AgentConfig) parseBehavior(content string, log *zap.Logger) {
	// When Section 5 is absent the slice runs to end of document.
	section := markdown.FindSectionBetweenHeaders(content, markerSection4, markerSection5)
	if section == "" {
		log.Debug("behavior section not found")
		return
	}

	a.Role = markdown.ExtractBetweenBackticks(markdown.FindSection(section, "Role Title"))
	a.FieldOfWork = markdown.ExtractBetweenBackticks(markdown.FindSection(section, "Field of Work"))
	a.ProfessionalBackground = markdown.ExtractBetweenBackticks(markdown.FindSection(section, "Professional Background"))
	a.ExpertiseLevel = markdown.SelectedOptionWithDescription(markdown.FindSection(section, "Expertise Level"))

	a.TechnicalSkills = markdown.SplitList(
		markdown.ExtractBetweenBackticks(markdown.FindSection(section, "Required Technical Skills")))
	a.Resources = markdown.SplitList(
		markdown.ExtractBetweenBackticks(markdown.FindSection(section, "Resources")))

	a.CommunicationApproach = markdown.GetSelectedOption(section, "Communication Approach")
	a.ResponseStyle = markdown.GetSelectedOption(section, "Response Style")
	a.ProactivityLevel = markdown.GetSelectedOption(section, "Proactivity Level")
	a.Autonomy = markdown.GetSelectedOption(section, "Autonomy")

	log.Debug("agent behavior parsed", zap.String("role", a.Role))
}

// IsComplete reports whether all mandatory role fields are filled. The prompt
// layer refuses to render a profile for an incomplete agent.
func (a *AgentConfig) IsComplete() bool {
	return a.Role != "" && a.FieldOfWork != "" &&
		a.ExpertiseLevel != "" && a.ProfessionalBackground != ""
}
