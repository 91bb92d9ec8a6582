// Package explain requests structured academic explanations of study
// topics from the model gateway.
package explain

import (
	"context"
	"encoding/json"

	"github.com/jsalaria/jedu/internal/llm"
	"github.com/jsalaria/jedu/internal/profile"
)

// Config holds explanation generation parameters.
type Config struct {
	MaxTokens int
}

// DefaultConfig returns the standard parameters. Temperature is left at the
// provider default: explanation quality benefits from some variance.
func DefaultConfig() Config {
	return Config{MaxTokens: 4096}
}

// Service generates topic explanations.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Explain requests an explanation of topic within the given background
// string (subject plus task description). Returns nil on any transport or
// parse failure; the caller renders an explicit could-not-load state for nil.
func (s *Service) Explain(ctx context.Context, topic, background string) *profile.Explanation {
	ctx = llm.WithPurpose(ctx, "explain")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, background)},
		},
		Schema:    ExplanationSchema,
		MaxTokens: s.cfg.MaxTokens,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil
	}

	var out profile.Explanation
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil
	}
	return &out
}
