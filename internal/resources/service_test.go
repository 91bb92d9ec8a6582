package resources

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jsalaria/jedu/internal/llm"
)

func TestFind_ExtractsCitations(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{
		Content: json.RawMessage(`Here are some strong starting points for calculus.`),
		Citations: []llm.Citation{
			{Title: "MIT OCW Single Variable Calculus", URL: "https://ocw.mit.edu/courses/18-01"},
			{Title: "Paul's Online Math Notes", URL: "https://tutorial.math.lamar.edu/"},
		},
	})

	svc := NewService(mock, DefaultConfig())
	res := svc.Find(context.Background(), "Calculus", "BSc Mathematics, semester 1")

	if res.Summary != "Here are some strong starting points for calculus." {
		t.Errorf("unexpected summary: %q", res.Summary)
	}
	if len(res.Resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(res.Resources))
	}
	first := res.Resources[0]
	if first.Title != "MIT OCW Single Variable Calculus" {
		t.Errorf("unexpected title: %q", first.Title)
	}
	if first.Source != "ocw.mit.edu" {
		t.Errorf("expected source to be URL host, got %q", first.Source)
	}
	if first.Type != "Web" {
		t.Errorf("expected type Web, got %q", first.Type)
	}
}

func TestFind_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`ok`)})

	svc := NewService(mock, DefaultConfig())
	svc.Find(context.Background(), "Thermodynamics", "BTech Mechanical")

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if !req.WebSearch {
		t.Error("expected web search to be enabled")
	}
	if req.Schema != nil {
		t.Error("expected no structured-output schema on a search request")
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}
	body := req.Messages[0].Content
	if !strings.Contains(body, "Thermodynamics") {
		t.Error("expected topic in user message")
	}
	if !strings.Contains(body, "BTech Mechanical") {
		t.Error("expected course context in user message")
	}
}

func TestFind_DropsUnusableCitations(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{
		Content: json.RawMessage(`Summary text.`),
		Citations: []llm.Citation{
			{Title: "Good", URL: "https://example.edu/course"},
			{Title: "No host", URL: "/relative/path"},
			{Title: "Garbage", URL: "://bad"},
		},
	})

	svc := NewService(mock, DefaultConfig())
	res := svc.Find(context.Background(), "Topic", "")

	if len(res.Resources) != 1 {
		t.Fatalf("expected 1 resource after filtering, got %d", len(res.Resources))
	}
	if len(res.Resources) > 3 {
		t.Error("extraction must never invent resources beyond the citations")
	}
}

func TestFind_ProviderErrorDegrades(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Err: errors.New("network down")})

	svc := NewService(mock, DefaultConfig())
	res := svc.Find(context.Background(), "Topic", "")

	if res.Summary != "Error searching for resources." {
		t.Errorf("unexpected failure summary: %q", res.Summary)
	}
	if len(res.Resources) != 0 {
		t.Errorf("expected no resources on failure, got %d", len(res.Resources))
	}
}

func TestFind_EmptyTextSuccess(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(``)})

	svc := NewService(mock, DefaultConfig())
	res := svc.Find(context.Background(), "Topic", "")

	if res.Summary != "No resources found." {
		t.Errorf("unexpected summary: %q", res.Summary)
	}
}
