package schedule

import "github.com/jsalaria/jedu/internal/llm"

// TaskListSchema defines the JSON schema for schedule generation: an array
// of task objects in planner order.
var TaskListSchema = &llm.Schema{
	Name:        "study-schedule",
	Description: "An ordered list of study tasks covering the planning horizon",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{
					"type":        "string",
					"description": "Short task title",
				},
				"subjectId": map[string]any{
					"type":        "string",
					"description": "Use the subject name as ID",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "What to study and how",
				},
				"durationMinutes": map[string]any{
					"type":        "integer",
					"description": "Length of the session in minutes",
				},
				"priority": map[string]any{
					"type": "string",
					"enum": []any{"High", "Medium", "Low"},
				},
				"date": map[string]any{
					"type":        "string",
					"description": "YYYY-MM-DD format",
				},
			},
			"required":             []any{"title", "subjectId", "description", "durationMinutes", "priority", "date"},
			"additionalProperties": false,
		},
	},
}
