package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsalaria/jedu/internal/chatui"
	"github.com/jsalaria/jedu/internal/tutor"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor",
	Short: "Chat with your AI tutor",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		provider, err := newProvider(ctx, s.EventRepo())
		if err != nil {
			return err
		}

		course, err := s.ProfileRepo().LoadCourse(ctx)
		if err != nil {
			return fmt.Errorf("load course: %w", err)
		}

		svc := tutor.NewService(provider, tutor.DefaultConfig())
		return chatui.Run(svc, course)
	},
}
