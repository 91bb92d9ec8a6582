package schedule

import "fmt"

type errInvalidPriority string

func (e errInvalidPriority) Error() string {
	return fmt.Sprintf("priority %q is not one of High, Medium, Low", string(e))
}

type errNonPositiveDuration int

func (e errNonPositiveDuration) Error() string {
	return fmt.Sprintf("durationMinutes must be positive, got %d", int(e))
}
