package assemble

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const specYAML = `title: Consulting Foundations
language: en
lesson_count: 2
questions_per_lesson: 7
min_sources: 3
core_sources:
  - title: Course handbook
    url: https://example.com/handbook
lessons:
  - day: 1
    title: Discovery
    objective: running a discovery conversation
    extra_source:
      title: Case study 1
      url: https://example.com/case/1
    read_more:
      title: Deep dive 1
      meta: article
      url: https://example.com/deep/1
    scenario:
      role: consultant
      offering: a workflow audit
      buyer: a regional hospital
      constraint: the budget is frozen until next quarter
  - day: 2
    title: Positioning
    objective: positioning against the status quo
    extra_source:
      title: Case study 2
      url: https://example.com/case/2
    read_more:
      title: Deep dive 2
      url: https://example.com/deep/2
    scenario:
      role: consultant
      offering: a rollout plan
      buyer: a logistics startup
      constraint: the sponsor changed two weeks ago
`

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "course.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSpec(t *testing.T) {
	spec, err := LoadSpec(writeSpec(t, specYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.LessonCount != 2 || len(spec.Lessons) != 2 {
		t.Errorf("unexpected spec: %+v", spec)
	}
	if spec.Lessons[1].Scenario.Offering != "a rollout plan" {
		t.Errorf("scenario not parsed: %+v", spec.Lessons[1].Scenario)
	}

	l, ok := spec.LessonByDay(2)
	if !ok || l.Title != "Positioning" {
		t.Errorf("LessonByDay(2) = %+v, %v", l, ok)
	}
	if _, ok := spec.LessonByDay(9); ok {
		t.Error("LessonByDay(9) should not exist")
	}
}

func TestLoadSpecRejectsCountMismatch(t *testing.T) {
	bad := strings.Replace(specYAML, "lesson_count: 2", "lesson_count: 3", 1)
	_, err := LoadSpec(writeSpec(t, bad))
	if err == nil || !strings.Contains(err.Error(), "lists 2 lessons") {
		t.Errorf("expected count mismatch error, got %v", err)
	}
}

func TestLoadSpecRejectsDuplicateDay(t *testing.T) {
	bad := strings.Replace(specYAML, "day: 2", "day: 1", 1)
	_, err := LoadSpec(writeSpec(t, bad))
	if err == nil || !strings.Contains(err.Error(), "duplicate day") {
		t.Errorf("expected duplicate day error, got %v", err)
	}
}

func TestLoadSpecRequiresReadMore(t *testing.T) {
	bad := strings.Replace(specYAML, `    read_more:
      title: Deep dive 2
      url: https://example.com/deep/2
`, "", 1)
	_, err := LoadSpec(writeSpec(t, bad))
	if err == nil || !strings.Contains(err.Error(), "read_more is required") {
		t.Errorf("expected read_more error, got %v", err)
	}
}
