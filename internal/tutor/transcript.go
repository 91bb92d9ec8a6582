package tutor

import "github.com/jsalaria/jedu/internal/profile"

// Transcript is an ordered tutoring conversation. Turns strictly alternate
// between the student and the tutor, always starting with the student, so a
// transcript built through Exchange always holds an even number of messages.
type Transcript struct {
	messages []profile.ChatMessage
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Exchange appends one student question and the tutor's reply as a pair,
// preserving the alternation invariant.
func (t *Transcript) Exchange(question, reply string) {
	t.messages = append(t.messages,
		profile.ChatMessage{Role: profile.RoleStudent, Text: question},
		profile.ChatMessage{Role: profile.RoleTutor, Text: reply},
	)
}

// Messages returns the transcript's turns in chronological order.
func (t *Transcript) Messages() []profile.ChatMessage {
	return t.messages
}

// Len returns the number of turns recorded.
func (t *Transcript) Len() int {
	return len(t.messages)
}
