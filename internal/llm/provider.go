package llm

import (
	"context"
	"encoding/json"
)

// Provider is the gateway abstraction for generative-model interaction.
// The scheduling, explanation, resource-search, and tutoring flows all go
// through this interface.
type Provider interface {
	// Generate sends one request to the model and returns its response.
	// When the request carries a Schema, the response Content is JSON
	// validated against it. When the request enables WebSearch, the
	// response additionally carries the citations the model consulted.
	// No retry happens here; callers decide failure policy.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one call to the model.
type Request struct {
	// System is the system/persona instruction. Optional.
	System string

	// Messages is the conversation so far, oldest first. Single-turn
	// flows send exactly one user message; the tutor replays its full
	// transcript plus the new message.
	Messages []Message

	// Schema, when set, constrains the output shape via the provider's
	// native structured-output mechanism. The declared shape is advisory
	// to the model; the gateway validates the result before returning it.
	Schema *Schema

	// WebSearch enables live web-search grounding. Mutually exclusive
	// with Schema: a grounded response is prose plus citations, not
	// structured JSON. Only the Gemini provider supports this.
	WebSearch bool

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means provider
	// default; flows that need structural compliance bias this low.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema declares the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI, cache key for validation). Kebab-case.
	Name string

	// Description tells the model what this schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Citation is one grounding source consulted by a web-search call.
type Citation struct {
	Title string
	URL   string
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output: validated JSON when a Schema was
	// requested, otherwise the raw response text.
	Content json.RawMessage

	// Citations lists the web sources the model consulted. Populated
	// only for WebSearch requests, and may be empty even then.
	Citations []Citation

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
