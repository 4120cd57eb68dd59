package cmd

import (
	"github.com/spf13/cobra"

	"github.com/openlearn/coursepack/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "coursepack",
	Short: "Course content certification pipeline",
	Long: `Coursepack validates quiz content quality and deterministically rebuilds
course packages: bibliography and read-more sections, per-lesson question
sets, and whole-package invariants. A package that fails any gate is
rejected as a unit and nothing is written.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COURSEPACK_DB env var)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(rebuildCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then COURSEPACK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
