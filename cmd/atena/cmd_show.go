package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"atena/internal/config"
)

// showCmd dumps the full parsed configuration.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the parsed agent and task configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := newProvider()
		if err != nil {
			return err
		}
		defer provider.Close()

		printSnapshot(provider.Snapshot())
		return nil
	},
}

// validateCmd parses the document and reports a summary, failing on an
// unreadable document.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse the document and report what was found",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := newProvider()
		if err != nil {
			return err
		}
		defer provider.Close()

		snap := provider.Snapshot()
		agent := snap.Agent

		fmt.Printf("document: %s\n", provider.Path())
		fmt.Printf("agent:    %s (version %s)\n", orNone(agent.Name), orNone(agent.Version))
		fmt.Printf("problems: %d\n", len(agent.Problems))
		fmt.Printf("tasks:    %d\n", len(snap.Tasks))
		for _, key := range sortedTaskKeys(snap.Tasks) {
			task := snap.Tasks[key]
			fmt.Printf("  %s: model=%s temperature=%.1f knowledge=%d/%d\n",
				key, orNone(task.LLM.Model), task.LLM.Temperature,
				len(task.KnowledgeContents), len(task.KnowledgeBase))
		}
		if !agent.IsComplete() {
			fmt.Println("warning: agent profile is incomplete (role, field of work, expertise level, professional background are mandatory)")
		}
		return nil
	},
}

func printSnapshot(snap *config.Snapshot) {
	agent := snap.Agent

	fmt.Println("AGENT IDENTIFICATION")
	fmt.Printf("  Name:             %s\n", orNone(agent.Name))
	fmt.Printf("  Creation Date:    %s\n", orNone(agent.CreationDate))
	fmt.Printf("  Responsible:      %s\n", orNone(agent.Responsible))
	fmt.Printf("  Version:          %s\n", orNone(agent.Version))
	fmt.Printf("  Interaction Type: %s\n", orNone(agent.InteractionType))

	fmt.Println("\nPROBLEMS TO SOLVE")
	printList(agent.Problems)

	fmt.Println("\nAGENT CONFIGURATION")
	fmt.Printf("  Role:                    %s\n", orNone(agent.Role))
	fmt.Printf("  Field of Work:           %s\n", orNone(agent.FieldOfWork))
	fmt.Printf("  Expertise Level:         %s\n", orNone(agent.ExpertiseLevel))
	fmt.Printf("  Professional Background: %s\n", orNone(agent.ProfessionalBackground))

	fmt.Println("\nTECHNICAL SKILLS")
	printList(agent.TechnicalSkills)
	fmt.Println("\nRESOURCES")
	printList(agent.Resources)

	fmt.Println("\nBEHAVIOR")
	fmt.Printf("  Communication Approach: %s\n", orNone(agent.CommunicationApproach))
	fmt.Printf("  Response Style:         %s\n", orNone(agent.ResponseStyle))
	fmt.Printf("  Proactivity Level:      %s\n", orNone(agent.ProactivityLevel))
	fmt.Printf("  Autonomy:               %s\n", orNone(agent.Autonomy))

	fmt.Println("\nTASKS")
	if len(snap.Tasks) == 0 {
		fmt.Println("  - none")
		return
	}
	for _, key := range sortedTaskKeys(snap.Tasks) {
		task := snap.Tasks[key]
		fmt.Printf("  %s\n", key)
		fmt.Printf("    Objective:       %s\n", orNone(task.MainObjective))
		fmt.Printf("    Language:        %s\n", orNone(task.Language))
		fmt.Printf("    Expected Output: %s\n", orNone(task.ExpectedOutput))
		fmt.Printf("    Model:           %s (temperature %.1f)\n", orNone(task.LLM.Model), task.LLM.Temperature)
		if task.LLM.MaxTokens > 0 {
			fmt.Printf("    Max Tokens:      %d\n", task.LLM.MaxTokens)
		}
		if len(task.Tools) > 0 {
			fmt.Printf("    Tools:           %v\n", task.Tools)
		}
		if len(task.KnowledgeBase) > 0 {
			fmt.Printf("    Knowledge Base:  %v (%d loaded)\n", task.KnowledgeBase, len(task.KnowledgeContents))
		}
	}
}

func sortedTaskKeys(tasks map[string]*config.TaskConfig) []string {
	keys := make([]string, 0, len(tasks))
	for key := range tasks {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func printList(items []string) {
	if len(items) == 0 {
		fmt.Println("  - none")
		return
	}
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}

func orNone(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
}
