package cmd

import (
	"github.com/spf13/cobra"

	"github.com/studialabs/studia/internal/telemetry"
)

var rootCmd = &cobra.Command{
	Use:   "studia [document.pdf]",
	Short: "Turn any document into a study quiz",
	Long:  "Studia — terminal study companion that reads a PDF, generates a quiz from it, and grades your answers with a per-question breakdown.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("server", "", "Analysis server base URL (overrides STUDIA_SERVER env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDIA_DB env var)")
	rootCmd.PersistentFlags().Bool("offline", false, "Generate quizzes locally with a configured LLM provider instead of the analysis server")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STUDIA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, telemetry.EnsureDir(p)
	}
	return telemetry.DefaultDBPath()
}
