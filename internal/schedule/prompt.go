package schedule

import (
	"fmt"
	"strings"

	"github.com/jsalaria/jedu/internal/profile"
)

const systemPrompt = `You are an elite academic strategist. You create professional, high-performance study schedules tailored to a student's course profile and produce structured output exactly as requested.`

// buildUserMessage composes the scheduling brief: the student's profile,
// the planning horizon, and the ordering objectives.
func buildUserMessage(course profile.Course, today string, horizonDays int) string {
	student := course.StudentName
	if student == "" {
		student = "Student"
	}

	examDate := course.ExamDate
	if examDate == "" {
		examDate = "None specified"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Create a study schedule for a student named %s based on the following profile:\n\n", student)
	fmt.Fprintf(&b, "Course: %s (%s, Semester %s).\n", course.Name, course.Degree, course.Semester)
	fmt.Fprintf(&b, "Daily Capacity: %d hours of focused deep work.\n", course.DailyStudyHours)
	b.WriteString("Subjects & Syllabus:\n")
	for _, s := range course.Subjects {
		fmt.Fprintf(&b, "- %s: %s (self-rated proficiency %d/100)\n",
			s.Name, strings.Join(s.SyllabusTopics, ", "), s.Proficiency)
	}
	fmt.Fprintf(&b, "Target Exam Date: %s.\n", examDate)

	fmt.Fprintf(&b, `
Objective:
Generate a structured, logical sequence of study tasks for the next %d days starting from %s.
- Ensure topics flow logically (foundational concepts before advanced ones).
- Break down complex syllabus items into manageable "Deep Work" sessions.
- Prioritize based on exam proximity and high-yield topics.
- Use the subject name as the subjectId of each task.

Return ONLY JSON.`, horizonDays, today)

	return b.String()
}
