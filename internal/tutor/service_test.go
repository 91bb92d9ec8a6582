package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jsalaria/jedu/internal/llm"
	"github.com/jsalaria/jedu/internal/profile"
)

func testCourse() *profile.Course {
	return &profile.Course{
		StudentName: "Priya",
		Name:        "BSc Physics Year 2",
		Degree:      "BSc Physics",
		Subjects: []profile.Subject{
			{ID: "Quantum Mechanics", Name: "Quantum Mechanics"},
			{ID: "Electromagnetism", Name: "Electromagnetism"},
		},
	}
}

func TestTranscript_AlternationInvariant(t *testing.T) {
	tr := NewTranscript()
	tr.Exchange("What is a wavefunction?", "A wavefunction describes the quantum state of a system.")
	tr.Exchange("And its square?", "Its squared magnitude gives a probability density.")

	msgs := tr.Messages()
	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages after 2 exchanges, got %d", len(msgs))
	}
	for i, m := range msgs {
		want := profile.RoleStudent
		if i%2 == 1 {
			want = profile.RoleTutor
		}
		if m.Role != want {
			t.Errorf("message %d: expected role %q, got %q", i, want, m.Role)
		}
	}
	if msgs[0].Text != "What is a wavefunction?" {
		t.Errorf("messages out of chronological order: %q", msgs[0].Text)
	}
}

func TestReply_ForwardsHistoryInOrder(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`It models interference.`)})

	tr := NewTranscript()
	tr.Exchange("First question", "First answer")
	tr.Exchange("Second question", "Second answer")

	svc := NewService(mock, DefaultConfig())
	reply := svc.Reply(context.Background(), testCourse(), tr, "Third question")

	if reply != "It models interference." {
		t.Errorf("unexpected reply: %q", reply)
	}

	req := mock.Calls[0]
	if len(req.Messages) != 5 {
		t.Fatalf("expected 4 history turns plus the new question, got %d messages", len(req.Messages))
	}
	wantRoles := []llm.Role{llm.RoleUser, llm.RoleAssistant, llm.RoleUser, llm.RoleAssistant, llm.RoleUser}
	for i, r := range wantRoles {
		if req.Messages[i].Role != r {
			t.Errorf("message %d: expected role %q, got %q", i, r, req.Messages[i].Role)
		}
	}
	if req.Messages[0].Content != "First question" || req.Messages[4].Content != "Third question" {
		t.Error("history not forwarded in chronological order")
	}
	if req.Schema != nil {
		t.Error("tutoring turns must not request structured output")
	}
}

func TestReply_PersonaIncludesProfile(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`Hello Priya.`)})

	svc := NewService(mock, DefaultConfig())
	svc.Reply(context.Background(), testCourse(), NewTranscript(), "Hi")

	system := mock.Calls[0].System
	for _, want := range []string{"JEdu", "Priya", "BSc Physics", "Quantum Mechanics, Electromagnetism"} {
		if !strings.Contains(system, want) {
			t.Errorf("persona missing %q", want)
		}
	}
}

func TestReply_NilCourseUsesDefaults(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`Hello.`)})

	svc := NewService(mock, DefaultConfig())
	svc.Reply(context.Background(), nil, nil, "Hi")

	system := mock.Calls[0].System
	if !strings.Contains(system, "Student") {
		t.Error("expected default student name in persona")
	}
}

func TestReply_ErrorDegradesToApology(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Err: errors.New("boom")})

	svc := NewService(mock, DefaultConfig())
	reply := svc.Reply(context.Background(), testCourse(), NewTranscript(), "Hi")

	if reply != fallbackReply {
		t.Errorf("expected fallback reply, got %q", reply)
	}
}

func TestReply_EmptyContentDegrades(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`  `)})

	svc := NewService(mock, DefaultConfig())
	reply := svc.Reply(context.Background(), testCourse(), NewTranscript(), "Hi")

	if reply != fallbackReply {
		t.Errorf("expected fallback on empty content, got %q", reply)
	}
}
