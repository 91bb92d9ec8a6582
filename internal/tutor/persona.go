package tutor

import (
	"fmt"
	"strings"

	"github.com/jsalaria/jedu/internal/profile"
)

// defaultStudentName is used when the course profile has no student name.
const defaultStudentName = "Student"

// buildPersona renders the tutor's system instruction for a course profile.
// The persona is fixed; the course details are interpolated so the tutor can
// ground its answers in what the student is actually studying.
func buildPersona(course *profile.Course) string {
	name := defaultStudentName
	degree := "an unspecified degree"
	courseName := "their current course"
	var subjects []string

	if course != nil {
		if strings.TrimSpace(course.StudentName) != "" {
			name = course.StudentName
		}
		if strings.TrimSpace(course.Degree) != "" {
			degree = course.Degree
		}
		if strings.TrimSpace(course.Name) != "" {
			courseName = course.Name
		}
		for _, s := range course.Subjects {
			subjects = append(subjects, s.Name)
		}
	}

	subjectLine := "none on record"
	if len(subjects) > 0 {
		subjectLine = strings.Join(subjects, ", ")
	}

	return fmt.Sprintf(`You are JEdu, a professional and articulate AI academic tutor.

Your student is %s, pursuing %s and currently enrolled in %s.
Their subjects: %s.

Conduct yourself as an expert educator:
- Be professional, precise, and articulate at all times.
- Explain concepts with academic rigor, building from first principles.
- Encourage the student by name and keep them focused on their objective.
- Stay objective. No slang, no sarcasm, no filler.
- When a question falls outside the student's subjects, answer it well but
  relate it back to their studies where a genuine connection exists.`,
		name, degree, courseName, subjectLine)
}
