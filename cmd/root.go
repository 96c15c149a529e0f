package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/skillscope/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "skillscope",
	Short: "Resume-driven skill assessment in the terminal",
	Long: "SkillScope extracts skills from a resume or a manual list, generates a " +
		"multiple-choice test with a local or hosted LLM, scores it and suggests " +
		"career domains.",
}

func Execute() error {
	// Best effort: a missing .env file is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLSCOPE_DB env var)")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SKILLSCOPE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
