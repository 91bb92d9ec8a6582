package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsalaria/jedu/internal/resources"
	"github.com/jsalaria/jedu/internal/ui/theme"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources <topic>",
	Short: "Find web study resources for a topic",
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

		courseContext := ""
		if course, err := s.ProfileRepo().LoadCourse(ctx); err == nil && course != nil {
			courseContext = fmt.Sprintf("%s (%s)", course.Name, course.Degree)
		}

		fmt.Printf("Searching for %s resources...\n\n", topic)
		svc := resources.NewService(provider, resources.DefaultConfig())
		res := svc.Find(ctx, topic, courseContext)

		fmt.Println(theme.Body.Render(res.Summary))
		fmt.Println()

		if len(res.Resources) == 0 {
			fmt.Println(theme.Hint.Render("No direct links found."))
			return nil
		}

		for _, r := range res.Resources {
			fmt.Printf("%s\n  %s %s\n",
				theme.TaskOpen.Render(r.Title),
				theme.Hint.Render(r.Source+" ·"),
				theme.Subtitle.Render(r.URL),
			)
		}
		return nil
	},
}
