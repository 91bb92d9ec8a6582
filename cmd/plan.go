package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsalaria/jedu/internal/schedule"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a fresh 7-day study schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
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
			return fmt.Errorf("no course profile yet; run `jedu setup` first")
		}

		provider, err := newProvider(ctx, s.EventRepo())
		if err != nil {
			return err
		}

		fmt.Println("Generating your study schedule...")
		svc := schedule.NewService(provider, schedule.DefaultConfig())
		tasks := svc.Generate(ctx, *course)
		if len(tasks) == 0 {
			fmt.Println("Could not generate a schedule right now. Try again in a moment.")
			return nil
		}

		if err := s.ProfileRepo().SaveTasks(ctx, tasks); err != nil {
			return fmt.Errorf("save tasks: %w", err)
		}

		fmt.Printf("Planned %d tasks over the next week.\n\n", len(tasks))
		printSchedule(tasks)
		return nil
	},
}
