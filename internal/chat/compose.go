package chat

import (
	"context"
	"strings"
)

// NoDataReply is the fixed assistant response when no context is available.
const NoDataReply = "I have no data. Please upload a document first."

const contextSeparator = "\n\n--- DATA CONTEXT ---\n"

// Generator is the external chat-completion collaborator.
type Generator interface {
	Complete(ctx context.Context, msgs []Turn) (string, error)
}

// Compose builds the two-message generation request: a system message made
// of the persona prompt plus the retrieved context, and the user message.
func Compose(systemPrompt, contextText, userMessage string) []Turn {
	return []Turn{
		{Role: RoleSystem, Content: systemPrompt + contextSeparator + contextText},
		{Role: RoleUser, Content: userMessage},
	}
}

// Respond produces the assistant reply for one chat turn. An empty context
// short-circuits to the fixed no-data reply without calling the generator;
// a generation failure is surfaced verbatim as the reply text so the user
// can see and correct the cause.
func Respond(ctx context.Context, gen Generator, systemPrompt, contextText, userMessage string) string {
	if strings.TrimSpace(contextText) == "" {
		return NoDataReply
	}
	reply, err := gen.Complete(ctx, Compose(systemPrompt, contextText, userMessage))
	if err != nil {
		return "Error: " + err.Error()
	}
	return reply
}
