package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openlearn/coursepack/internal/course"
	"github.com/openlearn/coursepack/internal/quality"
	"github.com/openlearn/coursepack/internal/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate <package.json>",
	Short: "Run quality validation over every lesson in a package export",
	Long: `Validate each lesson's question set against the full rule chain and print
every finding. Warnings are advisory; any error makes the command exit
nonzero. All findings across all lessons are reported, not just the first.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().Int("day", 0, "Validate only the lesson with this day number")
}

func runValidate(cmd *cobra.Command, args []string) error {
	day, _ := cmd.Flags().GetInt("day")

	pkg, err := course.LoadPackage(args[0])
	if err != nil {
		return err
	}

	v := quality.New(quality.DefaultConfig())

	var failed int
	for _, lesson := range pkg.Lessons {
		if day != 0 && lesson.Day != day {
			continue
		}
		res := v.ValidateQuestionSet(lesson.Questions, lesson.Language, lesson.Title)
		label := fmt.Sprintf("day %d: %s", lesson.Day, lesson.Title)
		fmt.Print(report.RenderValidationSummary(label, res))
		if !res.IsValid {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d lessons failed validation", failed)
	}
	return nil
}
