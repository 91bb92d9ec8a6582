package chatui

import (
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jsalaria/jedu/internal/llm"
	"github.com/jsalaria/jedu/internal/profile"
	"github.com/jsalaria/jedu/internal/tutor"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestModel(mock *llm.MockProvider) Model {
	course := &profile.Course{StudentName: "Ravi", Name: "BCom Accounting"}
	svc := tutor.NewService(mock, tutor.DefaultConfig())
	m := New(svc, course)
	m.width = 80
	m.height = 24
	return m
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		next, _ := m.Update(keyPress(r))
		m = next.(Model)
	}
	return m
}

func TestEnterSendsQuestionAndShowsPending(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`Debits on the left.`)})

	m := newTestModel(mock)
	m = typeString(m, "hi")

	next, cmd := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected a command dispatching the tutoring turn")
	}
	if m.pending != "hi" {
		t.Errorf("expected pending question %q, got %q", "hi", m.pending)
	}

	view := m.render()
	if !strings.Contains(view, "hi") {
		t.Error("expected pending question shown before the reply arrives")
	}
	if !strings.Contains(view, "thinking") {
		t.Error("expected pending indicator")
	}

	msg := cmd()
	reply, ok := msg.(replyMsg)
	if !ok {
		t.Fatalf("expected replyMsg, got %T", msg)
	}
	next, _ = m.Update(reply)
	m = next.(Model)

	if m.pending != "" {
		t.Error("expected pending cleared after reply")
	}
	if m.transcript.Len() != 2 {
		t.Fatalf("expected 2 transcript turns, got %d", m.transcript.Len())
	}
	view = m.render()
	if !strings.Contains(view, "Debits on the left.") {
		t.Error("expected reply in the rendered transcript")
	}
}

func TestEnterIgnoredWhileReplyInFlight(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`ok`)})

	m := newTestModel(mock)
	m = typeString(m, "one")
	next, _ := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)

	m = typeString(m, "two")
	next, cmd := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	if cmd != nil {
		t.Error("expected no new turn while one is in flight")
	}
	if m.pending != "one" {
		t.Errorf("pending question changed: %q", m.pending)
	}
}

func TestEmptyInputNotSent(t *testing.T) {
	m := newTestModel(llm.NewMockProvider())
	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected empty input to be ignored")
	}
}

func TestEscQuits(t *testing.T) {
	m := newTestModel(llm.NewMockProvider())
	_, cmd := m.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
