package messenger

import (
	"fmt"
	"strings"
)

// historyLimit — how many recent log entries feed the prompt context.
const historyLimit = 5

const promptTemplate = `You are a helpful and friendly chatbot assistant. Keep responses conversational and under 200 characters for messaging.

Conversation history:
%s

User: %s

Please respond naturally and helpfully:`

// BuildPrompt renders the instruction template around a transcript of prior
// messages. history must be oldest-first; messages are passed through as-is,
// long ones included.
func BuildPrompt(history []MessageEntry, newText string) string {
	lines := make([]string, 0, len(history))
	for _, m := range history {
		role := "User"
		if m.Direction == DirectionOutgoing {
			role = "Assistant"
		}
		lines = append(lines, role+": "+m.Text)
	}

	return fmt.Sprintf(promptTemplate, strings.Join(lines, "\n"), newText)
}

// FallbackReply is the canned answer used when the generation provider
// fails. It echoes the original inbound text, not the prompt, so the user
// always gets an acknowledgment.
func FallbackReply(text string) string {
	return fmt.Sprintf("I received your message: '%s'. How can I help you?", text)
}
