package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":           map[string]any{"type": "string"},
				"durationMinutes": map[string]any{"type": "integer"},
				"priority":        map[string]any{"type": "string", "enum": []any{"High", "Medium", "Low"}},
			},
			"required": []any{"title", "durationMinutes"},
		},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "ARRAY" {
		t.Fatalf("expected ARRAY type, got %s", schema.Type)
	}
	items := schema.Items
	if items == nil || items.Type != "OBJECT" {
		t.Fatalf("expected OBJECT items, got %+v", items)
	}
	if items.Properties["title"].Type != "STRING" {
		t.Fatalf("expected STRING for title, got %s", items.Properties["title"].Type)
	}
	if items.Properties["durationMinutes"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for durationMinutes, got %s", items.Properties["durationMinutes"].Type)
	}
	if len(items.Properties["priority"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(items.Properties["priority"].Enum))
	}
	if len(items.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(items.Required))
	}
}

func TestExtractCitations(t *testing.T) {
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				GroundingMetadata: &genai.GroundingMetadata{
					GroundingChunks: []*genai.GroundingChunk{
						{Web: &genai.GroundingChunkWeb{Title: "MIT OCW", URI: "https://ocw.mit.edu/x"}},
						{}, // no web source
						{Web: &genai.GroundingChunkWeb{Title: "Coursera", URI: "https://coursera.org/y"}},
					},
				},
			},
		},
	}

	cites := extractCitations(result)

	if len(cites) != 2 {
		t.Fatalf("expected 2 citations, got %d", len(cites))
	}
	if cites[0].Title != "MIT OCW" || cites[0].URL != "https://ocw.mit.edu/x" {
		t.Errorf("unexpected first citation: %+v", cites[0])
	}
	if cites[1].Title != "Coursera" {
		t.Errorf("unexpected second citation: %+v", cites[1])
	}
}

func TestExtractCitations_NoGrounding(t *testing.T) {
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}
	if got := extractCitations(result); got != nil {
		t.Fatalf("expected nil citations, got %v", got)
	}
}
