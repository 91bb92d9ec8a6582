package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jsalaria/jedu/internal/profile"
)

// Snapshot keys. The stored value is the serialized record, versionless;
// loading tolerates missing or extra fields.
const (
	keyCourse = "course"
	keyTasks  = "tasks"
)

// defaultTaskXP is assumed when a persisted task predates reward points.
const defaultTaskXP = 50

// ProfileRepo persists the Course and its Task collection.
type ProfileRepo interface {
	// SaveCourse stores the course, replacing any previous one.
	SaveCourse(ctx context.Context, c profile.Course) error

	// LoadCourse returns the stored course. An absent or unreadable
	// snapshot loads as nil, never as an error condition on its own.
	LoadCourse(ctx context.Context) (*profile.Course, error)

	// SaveTasks stores the task collection, replacing any previous one.
	SaveTasks(ctx context.Context, tasks []profile.Task) error

	// LoadTasks returns the stored tasks. An absent or unreadable
	// collection loads as empty, never as an error condition on its own.
	LoadTasks(ctx context.Context) ([]profile.Task, error)

	// Reset deletes the course and all tasks.
	Reset(ctx context.Context) error
}

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) SaveCourse(ctx context.Context, c profile.Course) error {
	return r.put(ctx, keyCourse, c)
}

func (r *profileRepo) LoadCourse(ctx context.Context) (*profile.Course, error) {
	raw, ok, err := r.get(ctx, keyCourse)
	if err != nil || !ok {
		return nil, err
	}

	var c profile.Course
	if err := json.Unmarshal(raw, &c); err != nil {
		warnCorruptSnapshot(keyCourse, err)
		return nil, nil
	}
	return &c, nil
}

func (r *profileRepo) SaveTasks(ctx context.Context, tasks []profile.Task) error {
	return r.put(ctx, keyTasks, tasks)
}

func (r *profileRepo) LoadTasks(ctx context.Context) ([]profile.Task, error) {
	raw, ok, err := r.get(ctx, keyTasks)
	if err != nil || !ok {
		return nil, err
	}

	tasks, err := decodeTasks(raw)
	if err != nil {
		warnCorruptSnapshot(keyTasks, err)
		return nil, nil
	}
	return tasks, nil
}

// warnCorruptSnapshot notes an undecodable snapshot on stderr. Corrupt
// persisted state loads as absent so commands keep working; the bad value
// stays in place until the next save or reset overwrites it.
func warnCorruptSnapshot(key string, err error) {
	fmt.Fprintf(os.Stderr, "warning: ignoring corrupt %s snapshot: %v\n", key, err)
}

func (r *profileRepo) Reset(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM profile_snapshots`)
	if err != nil {
		return fmt.Errorf("reset profile: %w", err)
	}
	return nil
}

func (r *profileRepo) put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s snapshot: %w", key, err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO profile_snapshots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(raw))
	if err != nil {
		return fmt.Errorf("save %s snapshot: %w", key, err)
	}
	return nil
}

func (r *profileRepo) get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM profile_snapshots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s snapshot: %w", key, err)
	}
	return json.RawMessage(value), true, nil
}

// taskRecord mirrors profile.Task with optional fields so snapshots written
// by older layouts still load. Absent xp defaults to defaultTaskXP; an
// absent completion flag defaults to false.
type taskRecord struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	SubjectID       string           `json:"subjectId"`
	Description     string           `json:"description"`
	DurationMinutes int              `json:"durationMinutes"`
	IsCompleted     *bool            `json:"isCompleted"`
	Priority        profile.Priority `json:"priority"`
	Date            string           `json:"date"`
	XP              *int             `json:"xp"`
}

func decodeTasks(raw json.RawMessage) ([]profile.Task, error) {
	var records []taskRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode tasks snapshot: %w", err)
	}

	tasks := make([]profile.Task, 0, len(records))
	for _, rec := range records {
		t := profile.Task{
			ID:              rec.ID,
			Title:           rec.Title,
			SubjectID:       rec.SubjectID,
			Description:     rec.Description,
			DurationMinutes: rec.DurationMinutes,
			Priority:        rec.Priority,
			Date:            rec.Date,
			XP:              defaultTaskXP,
		}
		if rec.IsCompleted != nil {
			t.IsCompleted = *rec.IsCompleted
		}
		if rec.XP != nil {
			t.XP = *rec.XP
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
