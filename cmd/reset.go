package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved profile and schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("This deletes your course profile and schedule. Continue? [y/N] ")
			in := bufio.NewScanner(os.Stdin)
			if !in.Scan() || strings.ToLower(strings.TrimSpace(in.Text())) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.ProfileRepo().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset profile: %w", err)
		}
		fmt.Println("Profile and schedule deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
