// Package profile holds the student profile data model: the Course being
// studied, its Subjects, and the Tasks generated for it, plus the transient
// records (explanations, resources, chat turns) attached to a task while it
// is open.
package profile

import "strings"

// Subject is one area of study within a Course.
type Subject struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	SyllabusTopics []string `json:"syllabusTopics"`
	// Proficiency is the student's self-reported confidence, 0-100.
	Proficiency int `json:"proficiency"`
}

// Course is the student's academic profile. It is created once during setup
// and is the prompt context for every downstream generation call.
type Course struct {
	ID          string    `json:"id"`
	StudentName string    `json:"studentName"`
	Name        string    `json:"name"`
	Degree      string    `json:"degree"`
	Semester    string    `json:"semester"`
	Subjects    []Subject `json:"subjects"`
	// ExamDate is the optional target exam date in YYYY-MM-DD form.
	// Empty means none specified.
	ExamDate        string `json:"examDate,omitempty"`
	DailyStudyHours int    `json:"dailyStudyHours"`
}

// Priority is the scheduling priority assigned to a task by the planner.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ValidPriority reports whether p is one of the three allowed values.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Task is one scheduled unit of study work.
//
// SubjectID carries the subject *name* as free-formed by the model. It is a
// display label, not a foreign key, and may not match any Course subject.
type Task struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	SubjectID       string   `json:"subjectId"`
	Description     string   `json:"description"`
	DurationMinutes int      `json:"durationMinutes"`
	IsCompleted     bool     `json:"isCompleted"`
	Priority        Priority `json:"priority"`
	// Date is the scheduled calendar date in YYYY-MM-DD form.
	Date string `json:"date"`
	// XP is the reward-point value derived at generation time.
	XP int `json:"xp"`
}

// ExplanationPoint is one subheading/detail pair within an Explanation.
type ExplanationPoint struct {
	Point  string `json:"point"`
	Detail string `json:"detail"`
}

// Explanation is an AI-generated academic explanation of a topic.
// Transient: requested per task per session, never persisted.
type Explanation struct {
	Overview string             `json:"overview"`
	Sections []ExplanationPoint `json:"sections"`
}

// Resource is a study resource extracted from a web-grounded response.
type Resource struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
	Type   string `json:"type"`
}

// ChatRole is the sender of a tutoring chat turn.
type ChatRole string

const (
	RoleStudent ChatRole = "user"
	RoleTutor   ChatRole = "model"
)

// ChatMessage is one turn in a tutoring conversation.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// Normalize trims subject names and drops subjects left with an empty name.
// Called at setup submission; the rest of the system tolerates whatever a
// stale snapshot hands it.
func (c *Course) Normalize() {
	kept := c.Subjects[:0]
	for _, s := range c.Subjects {
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			continue
		}
		kept = append(kept, s)
	}
	c.Subjects = kept
}

// FindTask returns the task with the given ID, or nil.
func FindTask(tasks []Task, id string) *Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}

// ToggleTask flips the completion flag of the task with the given ID and
// reports whether a task was found.
func ToggleTask(tasks []Task, id string) bool {
	t := FindTask(tasks, id)
	if t == nil {
		return false
	}
	t.IsCompleted = !t.IsCompleted
	return true
}
