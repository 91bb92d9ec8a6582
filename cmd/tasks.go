package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsalaria/jedu/internal/profile"
	"github.com/jsalaria/jedu/internal/ui/theme"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Show your current study schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTasks(cmd)
	},
}

func runTasks(cmd *cobra.Command) error {
	ctx := cmd.Context()

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	course, err := s.ProfileRepo().LoadCourse(ctx)
	if err != nil {
		return fmt.Errorf("load course: %w", err)
	}
	if course == nil {
		fmt.Println("No course profile yet. Run `jedu setup` to get started.")
		return nil
	}

	tasks, err := s.ProfileRepo().LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	if len(tasks) == 0 {
		fmt.Printf("No schedule yet for %s. Run `jedu plan` to generate one.\n", course.Name)
		return nil
	}

	fmt.Println(theme.Title.Render(course.Name))
	st := profile.Stats(tasks)
	fmt.Println(theme.Subtitle.Render(fmt.Sprintf("%d/%d tasks done · %d/%d XP", st.Completed, st.Total, st.EarnedXP, st.TotalXP)))
	fmt.Println()

	printSchedule(tasks)
	return nil
}

// printSchedule renders tasks grouped by date with short IDs for `jedu done`.
func printSchedule(tasks []profile.Task) {
	for _, day := range profile.GroupByDate(tasks) {
		fmt.Println(theme.DateHeading.Render(day.Date))
		for _, t := range day.Tasks {
			mark := "[ ]"
			titleStyle := theme.TaskOpen
			if t.IsCompleted {
				mark = "[x]"
				titleStyle = theme.TaskDone
			}
			fmt.Printf("  %s %s  %s  %s %s\n",
				mark,
				theme.Hint.Render(shortID(t.ID)),
				titleStyle.Render(t.Title),
				priorityStyle(t.Priority).Render(string(t.Priority)),
				theme.XPBadge.Render(fmt.Sprintf("%dm · %d XP", t.DurationMinutes, t.XP)),
			)
			if t.Description != "" {
				fmt.Printf("        %s\n", theme.Hint.Render(t.Description))
			}
		}
		fmt.Println()
	}
}

func priorityStyle(p profile.Priority) interface{ Render(...string) string } {
	switch p {
	case profile.PriorityHigh:
		return theme.PriorityHigh
	case profile.PriorityMedium:
		return theme.PriorityMedium
	default:
		return theme.PriorityLow
	}
}

// shortID returns the first ID segment, enough to disambiguate in practice.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
