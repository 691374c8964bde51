package router

import (
	"fmt"
	"strings"

	"concierge-router/internal/model"
)

// buildPrompt renders the persona, the quoted message, the instruction lines
// and at most MaxHistoryTurns of history, oldest first.
func buildPrompt(message string, history []model.Turn, instructions ...string) string {
	var b strings.Builder
	b.WriteString(PromptPersona)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, PromptUserMessage, message)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(instructions, "\n"))

	recent := lastTurns(history, MaxHistoryTurns)
	if len(recent) > 0 {
		b.WriteString("\n\n")
		b.WriteString(PromptHistoryHeader)
		for _, t := range recent {
			b.WriteString("\n")
			fmt.Fprintf(&b, PromptHistoryLine, t.Role, t.Content)
		}
	}
	return b.String()
}

func lastTurns(history []model.Turn, n int) []model.Turn {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

func webSearchLine(enabled bool) string {
	if enabled {
		return PromptWebSearchOn
	}
	return PromptWebSearchOff
}
