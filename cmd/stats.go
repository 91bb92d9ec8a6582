package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsalaria/jedu/internal/profile"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study progress statistics",
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
		if len(tasks) == 0 {
			fmt.Println("No schedule yet. Run `jedu plan` first.")
			return nil
		}

		st := profile.Stats(tasks)
		fmt.Printf("Tasks:  %d/%d completed\n", st.Completed, st.Total)
		fmt.Printf("XP:     %d/%d earned\n\n", st.EarnedXP, st.TotalXP)

		fmt.Printf("%-28s  %10s  %8s\n", "Subject", "Done", "XP")
		fmt.Println(strings.Repeat("─", 52))
		for _, sub := range profile.StatsBySubject(tasks) {
			label := sub.Subject
			if len(label) > 28 {
				label = label[:28]
			}
			fmt.Printf("%-28s  %6d/%-3d  %8d\n", label, sub.Completed, sub.Total, sub.EarnedXP)
		}
		return nil
	},
}
