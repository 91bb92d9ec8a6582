// Package resources retrieves web-grounded study resources for a topic via
// a search-augmented gateway call.
package resources

import (
	"context"
	"net/url"

	"github.com/jsalaria/jedu/internal/llm"
	"github.com/jsalaria/jedu/internal/profile"
)

// failureSummary is shown when the search call fails outright.
const failureSummary = "Error searching for resources."

// emptySummary is shown when the call succeeds but yields no prose.
const emptySummary = "No resources found."

// Config holds resource search parameters.
type Config struct {
	MaxTokens int
}

// DefaultConfig returns the standard parameters.
func DefaultConfig() Config {
	return Config{MaxTokens: 2048}
}

// Result is a resource search outcome: a prose summary and the extracted
// resource links. An empty Resources list with a non-empty Summary is a
// valid outcome ("no direct links found"), distinct from a failure.
type Result struct {
	Summary   string
	Resources []profile.Resource
}

// Service finds study resources through web-grounded generation.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a resource search service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Find searches for resources on a topic. Never fails: transport errors
// degrade to an explanatory summary with an empty list.
func (s *Service) Find(ctx context.Context, topic, courseContext string) Result {
	ctx = llm.WithPurpose(ctx, "resources")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, courseContext)},
		},
		WebSearch: true,
		MaxTokens: s.cfg.MaxTokens,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Result{Summary: failureSummary}
	}

	summary := string(resp.Content)
	if summary == "" {
		summary = emptySummary
	}

	return Result{
		Summary:   summary,
		Resources: extractResources(resp.Citations),
	}
}

// extractResources maps grounding citations to resource records. Citations
// without a usable URL are dropped; source is the URL's host component.
func extractResources(citations []llm.Citation) []profile.Resource {
	var out []profile.Resource
	for _, c := range citations {
		u, err := url.Parse(c.URL)
		if err != nil || u.Hostname() == "" {
			continue
		}
		out = append(out, profile.Resource{
			Title:  c.Title,
			URL:    c.URL,
			Source: u.Hostname(),
			Type:   "Web",
		})
	}
	return out
}
