package audit

import (
	"fmt"
	"strings"
	"testing"

	"github.com/openlearn/coursepack/internal/course"
)

func makeQuestion(day, idx int) course.Question {
	q := course.Question{
		Text: fmt.Sprintf("A consultant advising engagement number %d faces a sponsor with limited calendar time this week, case %d. Which first step best uncovers the real constraints before proposing work?", day, idx+1),
		Options: []string{
			"Walk through the current workflow and note where the deadline creates pressure",
			"Send the standard checklist and wait for the stakeholders to complete it unprompted",
			"Schedule the technical kickoff first, since constraints only matter at go-live",
			"Ask the account manager to summarize the contract terms instead of holding interviews",
		},
		CorrectOption: idx % 4,
		CognitiveType: course.CognitiveApplication,
		Difficulty:    "medium",
	}
	if idx >= 5 {
		q.CognitiveType = course.CognitiveCritical
		q.Difficulty = "advanced"
	}
	return q
}

func makeLesson(day int) course.Lesson {
	questions := make([]course.Question, 7)
	for i := range questions {
		questions[i] = makeQuestion(day, i)
	}
	content := fmt.Sprintf(`# Engagement practice %[1]d

Prose about running engagement number %[1]d.

## Bibliography

- [Course handbook](https://example.com/handbook)
- [Field guide](https://example.com/guide) (book)
- [Case study %[1]d](https://example.com/case/%[1]d)

## Read more

- [Deep dive %[1]d](https://example.com/deep/%[1]d) (article)

---
`, day)
	return course.Lesson{
		ID:        fmt.Sprintf("lesson-%d", day),
		Day:       day,
		Language:  "en",
		Title:     fmt.Sprintf("Engagement practice %d", day),
		Content:   content,
		Questions: questions,
	}
}

func makePackage(days int) *course.Package {
	pkg := &course.Package{}
	for d := 1; d <= days; d++ {
		pkg.Lessons = append(pkg.Lessons, makeLesson(d))
	}
	return pkg
}

func testConfig(days int) Config {
	cfg := DefaultConfig()
	cfg.LessonCount = days
	return cfg
}

func TestAuditAcceptsValidPackage(t *testing.T) {
	if err := Audit(makePackage(3), testConfig(3)); err != nil {
		t.Fatalf("unexpected audit failure: %v", err)
	}
}

func TestAuditRejectsWrongLessonCount(t *testing.T) {
	err := Audit(makePackage(2), testConfig(3))
	if err == nil || !strings.Contains(err.Error(), "exactly 3 required") {
		t.Errorf("expected lesson-count error, got %v", err)
	}
}

func TestAuditRejectsWrongQuestionCount(t *testing.T) {
	pkg := makePackage(3)
	pkg.Lessons[1].Questions = pkg.Lessons[1].Questions[:6]
	err := Audit(pkg, testConfig(3))
	if err == nil || !strings.Contains(err.Error(), "lesson 2 has 6 questions") {
		t.Errorf("expected question-count error, got %v", err)
	}
}

func TestAuditRejectsDuplicateQuestionText(t *testing.T) {
	pkg := makePackage(3)
	pkg.Lessons[2].Questions[2].Text = pkg.Lessons[0].Questions[4].Text
	err := Audit(pkg, testConfig(3))
	if err == nil {
		t.Fatal("expected duplicate-text error")
	}
	for _, want := range []string{"lesson 3 question 3", "lesson 1 question 5"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not name %q", err, want)
		}
	}
}

func TestAuditDuplicateDetectionNormalizes(t *testing.T) {
	pkg := makePackage(3)
	// Case and whitespace differences must not hide a duplicate.
	pkg.Lessons[2].Questions[0].Text = "  " + strings.ToUpper(pkg.Lessons[0].Questions[0].Text) + "  "
	err := Audit(pkg, testConfig(3))
	if err == nil || !strings.Contains(err.Error(), "duplicate question text") {
		t.Errorf("expected normalized duplicate to be caught, got %v", err)
	}
}

func TestAuditRejectsThinBibliography(t *testing.T) {
	pkg := makePackage(3)
	thin := makeLesson(2)
	thin.Content = strings.Replace(thin.Content, "- [Case study 2](https://example.com/case/2)\n", "", 1)
	pkg.Lessons[1] = thin
	err := Audit(pkg, testConfig(3))
	if err == nil || !strings.Contains(err.Error(), "lesson 2 bibliography has 2 entries") {
		t.Errorf("expected bibliography error, got %v", err)
	}
}

func TestAuditRejectsDuplicateReadMore(t *testing.T) {
	pkg := makePackage(3)
	pkg.Lessons[2].Content = strings.Replace(pkg.Lessons[2].Content,
		"[Deep dive 3](https://example.com/deep/3)",
		"[Deep dive 1](https://example.com/deep/1)", 1)
	err := Audit(pkg, testConfig(3))
	if err == nil {
		t.Fatal("expected duplicate read-more error")
	}
	if !strings.Contains(err.Error(), "lesson 3 repeats lesson 1") {
		t.Errorf("error %q does not name both lessons", err)
	}
}

func TestAuditRejectsMissingSection(t *testing.T) {
	pkg := makePackage(3)
	pkg.Lessons[0].Content = strings.Replace(pkg.Lessons[0].Content, "## Bibliography", "## Sources", 1)
	err := Audit(pkg, testConfig(3))
	if err == nil || !strings.Contains(err.Error(), `"## Bibliography" not found`) {
		t.Errorf("expected missing-section error, got %v", err)
	}
}

func TestAuditRejectsFailingQuestionSet(t *testing.T) {
	pkg := makePackage(3)
	pkg.Lessons[1].Questions[0].CognitiveType = course.CognitiveRecall
	err := Audit(pkg, testConfig(3))
	if err == nil || !strings.Contains(err.Error(), "lesson 2 failed question-set validation") {
		t.Errorf("expected question-set error, got %v", err)
	}
}

func TestParseEntry(t *testing.T) {
	cases := []struct {
		line string
		want course.SourceItem
	}{
		{"- [Deep dive](https://example.com/x) (article)", course.SourceItem{Title: "Deep dive", URL: "https://example.com/x", Meta: "article"}},
		{"- [Handbook](https://example.com/h)", course.SourceItem{Title: "Handbook", URL: "https://example.com/h"}},
		{"- Annual report (pdf)", course.SourceItem{Title: "Annual report", Meta: "pdf"}},
		{"- Annual report", course.SourceItem{Title: "Annual report"}},
	}
	for _, tc := range cases {
		got, err := ParseEntry(tc.line)
		if err != nil {
			t.Errorf("ParseEntry(%q): %v", tc.line, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseEntry(%q) = %+v, want %+v", tc.line, got, tc.want)
		}
	}

	if _, err := ParseEntry("- [broken"); err == nil {
		t.Error("expected error for malformed link")
	}
}
