package assemble

import (
	"fmt"
	"strings"
	"testing"

	"github.com/openlearn/coursepack/internal/audit"
	"github.com/openlearn/coursepack/internal/course"
	"github.com/openlearn/coursepack/internal/document"
)

func testSpec(days int) *CourseSpec {
	spec := &CourseSpec{
		Title:              "Consulting Foundations",
		Language:           "en",
		LessonCount:        days,
		QuestionsPerLesson: 7,
		MinSources:         3,
		CoreSources: []SourceSpec{
			{Title: "Course handbook", URL: "https://example.com/handbook"},
			{Title: "Field glossary", URL: "https://example.com/glossary"},
		},
	}
	offerings := []string{"a workflow audit", "a rollout plan", "a renewal proposal", "a discovery workshop"}
	buyers := []string{"a regional hospital", "a logistics startup", "a school district", "a retail chain"}
	constraints := []string{
		"the budget is frozen until next quarter",
		"the sponsor changed two weeks ago",
		"the legal review is already overdue",
		"half the team is new to the product",
	}
	for d := 1; d <= days; d++ {
		spec.Lessons = append(spec.Lessons, LessonSpec{
			Day:       d,
			Title:     fmt.Sprintf("Day %d topic", d),
			Objective: fmt.Sprintf("objective number %d of the course", d),
			ExtraSource: SourceSpec{
				Title: fmt.Sprintf("Case study %d", d),
				URL:   fmt.Sprintf("https://example.com/case/%d", d),
			},
			ReadMore: SourceSpec{
				Title: fmt.Sprintf("Deep dive %d", d),
				Meta:  "article",
				URL:   fmt.Sprintf("https://example.com/deep/%d", d),
			},
			Scenario: Scenario{
				Role:       "consultant",
				Offering:   offerings[(d-1)%len(offerings)],
				Buyer:      buyers[(d-1)%len(buyers)],
				Constraint: constraints[(d-1)%len(constraints)],
			},
		})
	}
	return spec
}

func lessonDoc(day int) string {
	return fmt.Sprintf(`# Day %d

Hand-written prose for day %d that the assembler must not touch.

## Bibliography

- stale entry

## Read more

- stale pointer

---
`, day, day)
}

func prevPackage(days int) *course.Package {
	pkg := &course.Package{}
	for d := 1; d <= days; d++ {
		pkg.Lessons = append(pkg.Lessons, course.Lesson{
			ID:       fmt.Sprintf("lesson-%d", d),
			Day:      d,
			Language: "en",
			Title:    "old title",
			Content:  lessonDoc(d),
		})
	}
	return pkg
}

func TestAssembleRebuildsLessons(t *testing.T) {
	spec := testSpec(3)
	out, err := NewAssembler(spec, DefaultConfig()).Assemble(prevPackage(3))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(out.Lessons) != 3 {
		t.Fatalf("got %d lessons", len(out.Lessons))
	}

	for i, lesson := range out.Lessons {
		if len(lesson.Questions) != 7 {
			t.Errorf("lesson %d: %d questions", i+1, len(lesson.Questions))
		}
		var app, crit int
		for _, q := range lesson.Questions {
			switch q.CognitiveType {
			case course.CognitiveApplication:
				app++
			case course.CognitiveCritical:
				crit++
			}
		}
		if app != 5 || crit != 2 {
			t.Errorf("lesson %d: distribution %d/%d", i+1, app, crit)
		}

		if strings.Contains(lesson.Content, "stale entry") || strings.Contains(lesson.Content, "stale pointer") {
			t.Errorf("lesson %d: stale section content survived", i+1)
		}
		if !strings.Contains(lesson.Content, "Hand-written prose") {
			t.Errorf("lesson %d: author prose was modified", i+1)
		}

		bib, err := document.SliceSection(lesson.Content, "## Bibliography", "## Read more")
		if err != nil {
			t.Fatalf("lesson %d: %v", i+1, err)
		}
		if !strings.Contains(bib, "Course handbook") || !strings.Contains(bib, fmt.Sprintf("Case study %d", i+1)) {
			t.Errorf("lesson %d bibliography:\n%s", i+1, bib)
		}
	}
}

func TestAssembleDoesNotMutateInput(t *testing.T) {
	prev := prevPackage(3)
	before := prev.Lessons[0].Content
	if _, err := NewAssembler(testSpec(3), DefaultConfig()).Assemble(prev); err != nil {
		t.Fatal(err)
	}
	if prev.Lessons[0].Content != before {
		t.Error("input package was mutated")
	}
}

func TestAssembleRejectsDuplicateReadMore(t *testing.T) {
	spec := testSpec(3)
	spec.Lessons[2].ReadMore = spec.Lessons[0].ReadMore
	_, err := NewAssembler(spec, DefaultConfig()).Assemble(prevPackage(3))
	if err == nil {
		t.Fatal("expected duplicate read-more error")
	}
	if !strings.Contains(err.Error(), "day 1") || !strings.Contains(err.Error(), "day 3") {
		t.Errorf("error should name both days: %v", err)
	}
}

func TestAssembleRejectsUnknownDay(t *testing.T) {
	prev := prevPackage(3)
	prev.Lessons[1].Day = 9
	_, err := NewAssembler(testSpec(3), DefaultConfig()).Assemble(prev)
	if err == nil || !strings.Contains(err.Error(), "no entry in course spec") {
		t.Errorf("expected missing-day error, got %v", err)
	}
}

func TestAssembleRejectsMissingSectionHeader(t *testing.T) {
	prev := prevPackage(3)
	prev.Lessons[0].Content = "# Day 1\n\nNo machine-owned sections at all.\n"
	_, err := NewAssembler(testSpec(3), DefaultConfig()).Assemble(prev)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected missing-header error, got %v", err)
	}
}

func TestAssembledPackagePassesAudit(t *testing.T) {
	spec := testSpec(3)
	out, err := NewAssembler(spec, DefaultConfig()).Assemble(prevPackage(3))
	if err != nil {
		t.Fatal(err)
	}

	cfg := audit.DefaultConfig()
	cfg.LessonCount = spec.LessonCount
	cfg.QuestionsPerLesson = spec.QuestionsPerLesson
	cfg.MinSources = spec.MinSources
	if err := audit.Audit(out, cfg); err != nil {
		t.Fatalf("assembled package failed audit: %v", err)
	}
}
