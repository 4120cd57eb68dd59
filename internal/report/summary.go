package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/openlearn/coursepack/internal/quality"
)

var (
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F43F5E"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
	labelStyle = lipgloss.NewStyle().Bold(true)
)

// RenderValidationSummary renders one lesson's validation result for the
// terminal. label identifies the lesson (e.g. "lesson 4: Objection
// handling").
func RenderValidationSummary(label string, res quality.Result) string {
	var b strings.Builder

	verdict := passStyle.Render("PASS")
	if !res.IsValid {
		verdict = failStyle.Render("FAIL")
	}
	fmt.Fprintf(&b, "%s %s", verdict, labelStyle.Render(label))
	fmt.Fprintf(&b, "  (%d errors, %d warnings)\n", len(res.Errors), len(res.Warnings))

	for _, e := range res.Errors {
		fmt.Fprintf(&b, "  %s %s\n", errStyle.Render("✗"), e)
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(&b, "  %s %s\n", warnStyle.Render("!"), w)
	}
	return b.String()
}
