package cmd

import (
	"github.com/abhisek/skillforge/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillforge",
	Short: "AI-powered skill assessment and career coaching",
	Long:  "SkillForge — terminal app that measures your skills against a target role, finds the gaps, and coaches you to close them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLFORGE_DB env var)")

	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(gapsCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(adviseCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(llmCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SKILLFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
