package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsalaria/jedu/internal/profile"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create or replace your course profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		course := runWizard(bufio.NewScanner(os.Stdin))
		course.Normalize()
		if len(course.Subjects) == 0 {
			return fmt.Errorf("a course profile needs at least one subject")
		}

		if err := s.ProfileRepo().SaveCourse(cmd.Context(), course); err != nil {
			return fmt.Errorf("save course: %w", err)
		}

		fmt.Printf("\nProfile saved for %s (%d subjects).\n", course.Name, len(course.Subjects))
		fmt.Println("Run `jedu plan` to generate your study schedule.")
		return nil
	},
}

// runWizard collects the course profile interactively.
func runWizard(in *bufio.Scanner) profile.Course {
	fmt.Println("Let's set up your course profile.")

	course := profile.Course{ID: uuid.NewString()}
	course.StudentName = prompt(in, "Your name", "Student")
	course.Name = prompt(in, "Course name (e.g. BSc Physics Year 2)", "My Course")
	course.Degree = prompt(in, "Degree", "")
	course.Semester = prompt(in, "Semester", "")
	course.ExamDate = prompt(in, "Exam date (YYYY-MM-DD, blank if none)", "")
	course.DailyStudyHours = promptInt(in, "Daily study hours", 2, 1, 16)

	fmt.Println("\nNow add your subjects. Leave the name blank to finish.")
	for {
		name := prompt(in, "Subject name", "")
		if name == "" {
			break
		}
		topics := prompt(in, "  Syllabus topics (comma separated)", "")
		prof := promptInt(in, "  Your proficiency (0-100)", 50, 0, 100)

		course.Subjects = append(course.Subjects, profile.Subject{
			ID:             name,
			Name:           name,
			SyllabusTopics: splitTopics(topics),
			Proficiency:    prof,
		})
	}

	return course
}

func prompt(in *bufio.Scanner, label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	if !in.Scan() {
		return def
	}
	v := strings.TrimSpace(in.Text())
	if v == "" {
		return def
	}
	return v
}

func promptInt(in *bufio.Scanner, label string, def, min, max int) int {
	for {
		raw := prompt(in, label, strconv.Itoa(def))
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Println("  Please enter a number.")
			continue
		}
		if n < min {
			return min
		}
		if n > max {
			return max
		}
		return n
	}
}

func splitTopics(raw string) []string {
	var topics []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}
