package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openlearn/coursepack/internal/audit"
	"github.com/openlearn/coursepack/internal/course"
	"github.com/openlearn/coursepack/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <package.json>",
	Short: "Audit a package file and import it into the store",
	Long: `Import runs the full package audit before writing anything: a package that
fails any invariant is rejected in full. On success the stored package is
replaced as a unit.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().Int("lessons", 30, "Expected lesson count")
	importCmd.Flags().Int("questions", 7, "Expected questions per lesson")
}

func runImport(cmd *cobra.Command, args []string) error {
	lessons, _ := cmd.Flags().GetInt("lessons")
	questions, _ := cmd.Flags().GetInt("questions")

	pkg, err := course.LoadPackage(args[0])
	if err != nil {
		return err
	}

	cfg := audit.DefaultConfig()
	cfg.LessonCount = lessons
	cfg.QuestionsPerLesson = questions
	if err := audit.Audit(pkg, cfg); err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Lessons().ReplacePackage(context.Background(), pkg); err != nil {
		return err
	}
	fmt.Printf("Imported %d lessons into %s\n", len(pkg.Lessons), dbPath)
	return nil
}
