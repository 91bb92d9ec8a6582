package schedule

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/jsalaria/jedu/internal/llm"
	"github.com/jsalaria/jedu/internal/profile"
)

// xpPerMinute is the reward-point rate applied to task duration.
const xpPerMinute = 1.5

// Service turns a course profile into a week of study tasks.
type Service struct {
	provider llm.Provider
	cfg      Config
	now      func() time.Time
}

// NewService creates a schedule generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg, now: time.Now}
}

// rawTask is the shape of one element of the model's response array.
type rawTask struct {
	Title           string `json:"title"`
	SubjectID       string `json:"subjectId"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
	Priority        string `json:"priority"`
	Date            string `json:"date"`
}

// Generate produces the task schedule for a course, in the order the model
// planned it. Any transport or parse failure degrades to an empty slice:
// the caller treats an empty result as "generation failed or produced
// nothing", never as a raised fault.
func (s *Service) Generate(ctx context.Context, course profile.Course) []profile.Task {
	ctx = llm.WithPurpose(ctx, "schedule")

	today := s.now().Format("2006-01-02")
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(course, today, s.cfg.HorizonDays)},
		},
		Schema:      TaskListSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil
	}

	raw, err := parseTasks(resp.Content)
	if err != nil {
		return nil
	}

	return enrich(raw)
}

// parseTasks decodes and checks the response array. The declared schema is
// advisory to the model, so the contract is re-checked here: a task with an
// unknown priority, an unparsable date, or a non-positive duration fails
// the whole batch.
func parseTasks(content json.RawMessage) ([]rawTask, error) {
	var raw []rawTask
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, err
	}

	for _, t := range raw {
		if !profile.ValidPriority(profile.Priority(t.Priority)) {
			return nil, &llm.ErrInvalidResponse{Content: content, Err: errInvalidPriority(t.Priority)}
		}
		if _, err := time.Parse("2006-01-02", t.Date); err != nil {
			return nil, &llm.ErrInvalidResponse{Content: content, Err: err}
		}
		if t.DurationMinutes <= 0 {
			return nil, &llm.ErrInvalidResponse{Content: content, Err: errNonPositiveDuration(t.DurationMinutes)}
		}
	}
	return raw, nil
}

// enrich maps raw model output to task records: fresh identity, cleared
// completion flag, derived reward points.
func enrich(raw []rawTask) []profile.Task {
	tasks := make([]profile.Task, len(raw))
	for i, t := range raw {
		tasks[i] = profile.Task{
			ID:              uuid.NewString(),
			Title:           t.Title,
			SubjectID:       t.SubjectID,
			Description:     t.Description,
			DurationMinutes: t.DurationMinutes,
			IsCompleted:     false,
			Priority:        profile.Priority(t.Priority),
			Date:            t.Date,
			XP:              TaskXP(t.DurationMinutes),
		}
	}
	return tasks
}

// TaskXP derives the reward points for a task of the given duration:
// durationMinutes × 1.5, rounded half-up. 30 minutes earns exactly 45;
// 33 minutes rounds 49.5 up to 50.
func TaskXP(durationMinutes int) int {
	return int(math.Floor(float64(durationMinutes)*xpPerMinute + 0.5))
}
