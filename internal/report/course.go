// Package report renders an audited package into human-readable artifacts.
// Nothing here validates: by the time a package reaches a report emitter it
// has already passed the auditor.
package report

import (
	"fmt"
	"strings"

	"github.com/openlearn/coursepack/internal/course"
)

// optionLabels letter the four options in rendered question banks.
var optionLabels = [course.OptionCount]string{"A", "B", "C", "D"}

// RenderCourse produces the full-course document: every lesson body in day
// order followed by an answer-keyed question bank.
func RenderCourse(pkg *course.Package, title string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)
	for _, lesson := range pkg.Lessons {
		fmt.Fprintf(&b, "# Day %d: %s\n\n", lesson.Day, lesson.Title)
		b.WriteString(strings.TrimSpace(lesson.Content))
		b.WriteString("\n\n")
	}

	b.WriteString("# Question bank\n")
	for _, lesson := range pkg.Lessons {
		fmt.Fprintf(&b, "\n## Day %d: %s\n\n", lesson.Day, lesson.Title)
		for i, q := range lesson.Questions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q.Text)
			for j, opt := range q.Options {
				fmt.Fprintf(&b, "   %s) %s\n", optionLabels[j], opt)
			}
			fmt.Fprintf(&b, "   Answer: %s (%s, %s)\n\n", optionLabels[q.CorrectOption], q.CognitiveType, q.Difficulty)
		}
	}

	return b.String()
}
