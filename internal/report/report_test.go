package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/openlearn/coursepack/internal/course"
	"github.com/openlearn/coursepack/internal/quality"
)

func reportLesson(day, questions int) course.Lesson {
	l := course.Lesson{
		Day:      day,
		Language: "en",
		Title:    fmt.Sprintf("Practice %d", day),
		Content: fmt.Sprintf(`Prose for day %[1]d.

## Bibliography

- [Handbook](https://example.com/handbook)
- [Case study %[1]d](https://example.com/case/%[1]d)

## Read more

- [Deep dive %[1]d](https://example.com/deep/%[1]d) (article)

---
`, day),
	}
	for i := 0; i < questions; i++ {
		l.Questions = append(l.Questions, course.Question{
			Text: fmt.Sprintf("Scenario %d.%d: what should the consultant do first?", day, i+1),
			Options: []string{
				"Map the decision process", "Audit the reporting data",
				"Run a full-day workshop", "Send a written proposal",
			},
			CorrectOption: i % 4,
			CognitiveType: course.CognitiveApplication,
			Difficulty:    "medium",
		})
	}
	return l
}

func reportPackage(days, questions int) *course.Package {
	pkg := &course.Package{}
	for d := 1; d <= days; d++ {
		pkg.Lessons = append(pkg.Lessons, reportLesson(d, questions))
	}
	return pkg
}

func TestRenderCourse(t *testing.T) {
	out := RenderCourse(reportPackage(2, 2), "Consulting Foundations")

	for _, want := range []string{
		"# Consulting Foundations",
		"# Day 1: Practice 1",
		"# Day 2: Practice 2",
		"Prose for day 1.",
		"# Question bank",
		"1. Scenario 1.1: what should the consultant do first?",
		"   A) Map the decision process",
		"   D) Send a written proposal",
		"   Answer: A (application, medium)",
		"   Answer: B (application, medium)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered course missing %q", want)
		}
	}
}

func TestRenderCourseAnswerKeyCount(t *testing.T) {
	out := RenderCourse(reportPackage(3, 7), "Consulting Foundations")
	if got := strings.Count(out, "Answer: "); got != 21 {
		t.Errorf("rendered %d answer lines, want 21", got)
	}
}

func TestRenderBibliographyDigest(t *testing.T) {
	out, err := RenderBibliographyDigest(reportPackage(2, 1), "Consulting Foundations", "## Bibliography", "## Read more")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"# Consulting Foundations: bibliography digest",
		"## Day 1: Practice 1",
		"- [Case study 2](https://example.com/case/2)",
		"- [Deep dive 1](https://example.com/deep/1) (article)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("digest missing %q", want)
		}
	}
	if strings.Contains(out, "---") {
		t.Error("digest should not carry the document terminator")
	}
	if strings.Contains(out, "Prose for day") {
		t.Error("digest should not carry lesson prose")
	}
}

func TestRenderBibliographyDigestMissingSection(t *testing.T) {
	pkg := reportPackage(1, 1)
	pkg.Lessons[0].Content = "No sections here."
	_, err := RenderBibliographyDigest(pkg, "Broken", "## Bibliography", "## Read more")
	if err == nil || !strings.Contains(err.Error(), "lesson 1") {
		t.Errorf("expected per-lesson error, got %v", err)
	}
}

func TestRenderValidationSummary(t *testing.T) {
	pass := RenderValidationSummary("lesson 1: Practice 1", quality.Result{IsValid: true})
	if !strings.Contains(pass, "PASS") || !strings.Contains(pass, "lesson 1: Practice 1") {
		t.Errorf("unexpected pass summary: %q", pass)
	}

	fail := RenderValidationSummary("lesson 2: Practice 2", quality.Result{
		IsValid:  false,
		Errors:   []string{"question 1: difficulty is empty"},
		Warnings: []string{"question 2: bare interrogative"},
	})
	for _, want := range []string{"FAIL", "(1 errors, 1 warnings)", "difficulty is empty", "bare interrogative"} {
		if !strings.Contains(fail, want) {
			t.Errorf("fail summary missing %q: %q", want, fail)
		}
	}
}
