package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsalaria/jedu/internal/llm"
	"github.com/jsalaria/jedu/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "jedu",
	Short: "AI study planner and tutor",
	Long:  "JEdu — terminal study assistant that plans your week, explains topics, finds resources, and tutors you through your course.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTasks(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides JEDU_DB env var)")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(tutorCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then JEDU_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newProvider builds the configured gateway provider, with call logging
// wired to the store's event repo.
func newProvider(ctx context.Context, eventRepo store.EventRepo) (llm.Provider, error) {
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "AI provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set GEMINI_API_KEY (or another provider key) to enable AI features.")
		return nil, err
	}
	return provider, nil
}
