package model

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"mindwell/internal/logging"
	"mindwell/internal/wellness"
)

// chatTemperature matches the conversational persona tuning; structured
// calls rely on the response schema instead.
const chatTemperature = float32(0.7)

// GenAI is the Gemini-backed Client. A zero credential, or any failure while
// constructing the underlying SDK client, leaves the adapter disabled rather
// than failing startup.
type GenAI struct {
	client *genai.Client
}

// New builds the adapter from the resolved model configuration. It logs the
// outcome exactly once and never returns an error: initialization problems
// degrade to offline mode.
func New(cfg wellness.ModelConfig) *GenAI {
	if cfg.Offline() {
		logging.BootWarn("model credential missing, running in offline mode")
		return &GenAI{}
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logging.ModelError("client initialization failed, running in offline mode: %v", err)
		return &GenAI{}
	}

	logging.Boot("model client initialized (fast=%s deep=%s)", cfg.FastModel, cfg.DeepModel)
	return &GenAI{client: client}
}

// Enabled reports whether the backend is usable.
func (g *GenAI) Enabled() bool {
	return g != nil && g.client != nil
}

// GenerateStructured issues a single structured-output request.
func (g *GenAI) GenerateStructured(ctx context.Context, model, systemInstruction, prompt string, schema *genai.Schema) (string, error) {
	if !g.Enabled() {
		return "", ErrOffline
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	if systemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(systemInstruction, genai.RoleUser)
	}

	logging.ModelDebug("GenerateStructured: model=%s prompt_len=%d", model, len(prompt))

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no completion returned")
	}
	logging.ModelDebug("GenerateStructured: model=%s response_len=%d", model, len(text))
	return text, nil
}

// StartChat opens a multi-turn conversation.
func (g *GenAI) StartChat(ctx context.Context, model, systemInstruction string, history []Turn) (Conversation, error) {
	if !g.Enabled() {
		return nil, ErrOffline
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(chatTemperature),
	}
	if systemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(systemInstruction, genai.RoleUser)
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == wellness.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}

	chat, err := g.client.Chats.Create(ctx, model, cfg, contents)
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}
	return &genaiConversation{chat: chat, model: model}, nil
}

type genaiConversation struct {
	chat  *genai.Chat
	model string
}

// Send submits one message and returns the raw reply text.
func (c *genaiConversation) Send(ctx context.Context, message string) (string, error) {
	logging.ModelDebug("chat send: model=%s message_len=%d", c.model, len(message))

	resp, err := c.chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no reply returned")
	}
	return text, nil
}
