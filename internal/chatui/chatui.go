// Package chatui is the interactive tutoring chat surface. It is a single
// Bubble Tea model: a scrolling transcript above a text input, with a
// pending indicator while the tutor's reply is in flight.
package chatui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jsalaria/jedu/internal/profile"
	"github.com/jsalaria/jedu/internal/tutor"
	"github.com/jsalaria/jedu/internal/ui/theme"
)

// replyMsg carries a completed tutor reply back into the update loop.
type replyMsg struct {
	question string
	reply    string
}

// Model is the chat screen state.
type Model struct {
	svc        *tutor.Service
	course     *profile.Course
	transcript *tutor.Transcript
	input      textinput.Model
	width      int
	height     int
	pending    string // question awaiting a reply, empty when idle
}

// New creates the chat model for a course profile.
func New(svc *tutor.Service, course *profile.Course) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask your tutor anything..."
	ti.Focus()

	return Model{
		svc:        svc,
		course:     course,
		transcript: tutor.NewTranscript(),
		input:      ti,
	}
}

func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case replyMsg:
		m.transcript.Exchange(msg.question, msg.reply)
		m.pending = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.pending != "" {
				return m, nil
			}
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			m.input.Reset()
			m.pending = question
			return m, m.ask(question)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ask runs the tutoring turn off the update loop. The transcript is only
// appended to when the reply lands, so the alternation invariant holds even
// if the user quits mid-flight.
func (m Model) ask(question string) tea.Cmd {
	svc, course, tr := m.svc, m.course, m.transcript
	return func() tea.Msg {
		reply := svc.Reply(context.Background(), course, tr, question)
		return replyMsg{question: question, reply: reply}
	}
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the transcript, any in-flight question, and the input line.
func (m Model) render() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("JEdu Tutor"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(m.subtitle()))
	b.WriteString("\n\n")

	wrap := lipgloss.NewStyle().Width(m.width - 4)

	for _, msg := range m.transcript.Messages() {
		label := theme.TutorLabel.Render("JEdu")
		if msg.Role == profile.RoleStudent {
			label = theme.StudentLabel.Render(m.studentName())
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(theme.ChatBubble.Render(wrap.Render(msg.Text)))
		b.WriteString("\n\n")
	}

	if m.pending != "" {
		b.WriteString(theme.StudentLabel.Render(m.studentName()))
		b.WriteString("\n")
		b.WriteString(theme.ChatBubble.Render(wrap.Render(m.pending)))
		b.WriteString("\n\n")
		b.WriteString(theme.Pending.Render("JEdu is thinking..."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Enter to send · Esc to leave"))

	return b.String()
}

func (m Model) subtitle() string {
	if m.course == nil || m.course.Name == "" {
		return "Your personal academic tutor"
	}
	return fmt.Sprintf("Tutoring for %s", m.course.Name)
}

func (m Model) studentName() string {
	if m.course != nil && strings.TrimSpace(m.course.StudentName) != "" {
		return m.course.StudentName
	}
	return "You"
}

// Run starts the chat program and blocks until the user leaves.
func Run(svc *tutor.Service, course *profile.Course) error {
	p := tea.NewProgram(New(svc, course))
	_, err := p.Run()
	return err
}
