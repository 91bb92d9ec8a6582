// Package tutor runs the JEdu tutoring conversation: a persona-driven chat
// that replays the full transcript on every turn.
package tutor

import (
	"context"
	"strings"

	"github.com/jsalaria/jedu/internal/llm"
	"github.com/jsalaria/jedu/internal/profile"
)

// fallbackReply is returned whenever the gateway fails or produces nothing,
// so the conversation surface never shows a raw error.
const fallbackReply = "I'm sorry, I am having trouble connecting right now. Please try again in a moment."

// Config holds tutoring chat parameters.
type Config struct {
	MaxTokens int
}

// DefaultConfig returns the standard parameters.
func DefaultConfig() Config {
	return Config{MaxTokens: 4096}
}

// Service answers tutoring questions in the context of a course profile.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutoring service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Reply answers one student question given the conversation so far. The full
// transcript is sent with every turn, oldest first, followed by the new
// question. Never fails: gateway errors degrade to a fixed apology.
func (s *Service) Reply(ctx context.Context, course *profile.Course, transcript *Transcript, question string) string {
	ctx = llm.WithPurpose(ctx, "tutor")

	var messages []llm.Message
	if transcript != nil {
		for _, m := range transcript.Messages() {
			messages = append(messages, llm.Message{
				Role:    mapRole(m.Role),
				Content: m.Text,
			})
		}
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: question})

	req := llm.Request{
		System:    buildPersona(course),
		Messages:  messages,
		MaxTokens: s.cfg.MaxTokens,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return fallbackReply
	}

	reply := strings.TrimSpace(string(resp.Content))
	if reply == "" {
		return fallbackReply
	}
	return reply
}

func mapRole(r profile.ChatRole) llm.Role {
	if r == profile.RoleTutor {
		return llm.RoleAssistant
	}
	return llm.RoleUser
}
