package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsalaria/jedu/internal/profile"
)

var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Toggle a task's completion state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		tasks, err := s.ProfileRepo().LoadTasks(ctx)
		if err != nil {
			return fmt.Errorf("load tasks: %w", err)
		}

		task, err := matchTask(tasks, args[0])
		if err != nil {
			return err
		}
		task.IsCompleted = !task.IsCompleted

		if err := s.ProfileRepo().SaveTasks(ctx, tasks); err != nil {
			return fmt.Errorf("save tasks: %w", err)
		}

		if task.IsCompleted {
			fmt.Printf("Done: %s (+%d XP)\n", task.Title, task.XP)
		} else {
			fmt.Printf("Reopened: %s\n", task.Title)
		}
		return nil
	},
}

// matchTask finds a task by full ID or unambiguous ID prefix.
func matchTask(tasks []profile.Task, id string) (*profile.Task, error) {
	if t := profile.FindTask(tasks, id); t != nil {
		return t, nil
	}

	var match *profile.Task
	for i := range tasks {
		if strings.HasPrefix(tasks[i].ID, id) {
			if match != nil {
				return nil, fmt.Errorf("task ID %q is ambiguous", id)
			}
			match = &tasks[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no task with ID %q; see `jedu tasks` for IDs", id)
	}
	return match, nil
}
