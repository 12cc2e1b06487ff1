// Package model wraps the generative backend behind a small adapter: one
// structured-output operation and one multi-turn conversation operation.
// Construction never fails — when no usable credential exists the adapter
// degrades to a disabled sentinel and every call reports ErrOffline.
package model

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"

	"mindwell/internal/wellness"
)

// ErrOffline is returned by every backend operation when the adapter was
// constructed without a usable credential.
var ErrOffline = errors.New("model backend not configured")

// Turn is one entry of a conversation history in the wire shape the backend
// expects: a role plus a single text part.
type Turn struct {
	Role wellness.Role
	Text string
}

// Conversation is a stateful multi-turn chat handle.
type Conversation interface {
	// Send submits one user message and returns the raw reply text.
	Send(ctx context.Context, message string) (string, error)
}

// Client is the boundary to the generative backend.
type Client interface {
	// Enabled reports whether a backend credential was resolved.
	Enabled() bool

	// GenerateStructured issues one prompt constrained to emit JSON matching
	// schema and returns the raw response text. systemInstruction may be
	// empty.
	GenerateStructured(ctx context.Context, model, systemInstruction, prompt string, schema *genai.Schema) (string, error)

	// StartChat opens a conversation seeded with a system instruction and
	// prior history.
	StartChat(ctx context.Context, model, systemInstruction string, history []Turn) (Conversation, error)
}

// CleanJSON strips markdown code fences that models occasionally wrap around
// JSON output despite the response schema.
func CleanJSON(resp string) string {
	resp = strings.TrimSpace(resp)
	resp = strings.TrimPrefix(resp, "```json")
	resp = strings.TrimPrefix(resp, "```")
	resp = strings.TrimSuffix(resp, "```")
	return strings.TrimSpace(resp)
}
