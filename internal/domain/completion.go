package domain

import (
	"context"
	"fmt"
)

// Role is the author of a conversation message.
type Role string

// Conversation roles accepted from callers.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IsValid checks if the role is supported.
func (r Role) IsValid() bool {
	return r == RoleSystem || r == RoleUser || r == RoleAssistant
}

// Message is a single turn of a conversation.
type Message struct {
	Role    Role
	Content string
}

// ValidateHistory checks caller-supplied conversation history.
func ValidateHistory(history []Message) error {
	if len(history) == 0 {
		return fmt.Errorf("%w: messages must not be empty", ErrInvalidInput)
	}
	for i, m := range history {
		if !m.Role.IsValid() {
			return fmt.Errorf("%w: message %d has unknown role %q", ErrInvalidInput, i, m.Role)
		}
	}
	return nil
}

// Stream yields generated text fragments in arrival order.
// Recv returns io.EOF once the generation is complete.
type Stream interface {
	Recv() (string, error)
	Close() error
}

// Completion is a fully generated text with its token usage.
type Completion struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
}

// Completer is the text-generation contract shared between layers.
type Completer interface {
	StreamCompletion(ctx context.Context, system string, history []Message) (Stream, error)
	CompleteText(ctx context.Context, prompt string) (Completion, error)
}

// HealthChecker verifies provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
