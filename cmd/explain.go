package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsalaria/jedu/internal/explain"
	"github.com/jsalaria/jedu/internal/ui/theme"
)

var explainCmd = &cobra.Command{
	Use:   "explain <topic>",
	Short: "Get a structured explanation of a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		topic := strings.Join(args, " ")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		provider, err := newProvider(ctx, s.EventRepo())
		if err != nil {
			return err
		}

		// Course context sharpens the explanation but is optional.
		background := ""
		if course, err := s.ProfileRepo().LoadCourse(ctx); err == nil && course != nil {
			background = fmt.Sprintf("%s, %s", course.Name, course.Degree)
		}

		fmt.Printf("Explaining %s...\n\n", topic)
		svc := explain.NewService(provider, explain.DefaultConfig())
		exp := svc.Explain(ctx, topic, background)
		if exp == nil {
			fmt.Println("Could not generate an explanation right now. Try again in a moment.")
			return nil
		}

		fmt.Println(theme.Title.Render(topic))
		fmt.Println()
		fmt.Println(theme.Body.Render(exp.Overview))
		fmt.Println()
		for _, sec := range exp.Sections {
			fmt.Println(theme.DateHeading.Render(sec.Point))
			fmt.Println(theme.Body.Render("  " + sec.Detail))
			fmt.Println()
		}
		return nil
	},
}
