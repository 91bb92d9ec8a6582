package explain

import "github.com/jsalaria/jedu/internal/llm"

// ExplanationSchema mirrors the Explanation record: an executive overview
// plus ordered subheading/detail sections.
var ExplanationSchema = &llm.Schema{
	Name:        "topic-explanation",
	Description: "A structured academic explanation of a study topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overview": map[string]any{
				"type":        "string",
				"description": "2-3 sentence executive summary",
			},
			"sections": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"point": map[string]any{
							"type":        "string",
							"description": "Academic subheading",
						},
						"detail": map[string]any{
							"type":        "string",
							"description": "Detailed explanation, 2-3 paragraphs",
						},
					},
					"required":             []any{"point", "detail"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"overview", "sections"},
		"additionalProperties": false,
	},
}
