package assemble

import (
	"fmt"
	"strings"

	"github.com/openlearn/coursepack/internal/course"
)

// buildSources derives a lesson's bibliography: the course-wide core
// references, then the lesson's canonical sources, then the one per-lesson
// extra. With non-empty core sources and the required extra this always
// clears the minimum-sources floor; the auditor re-counts it regardless.
func buildSources(spec *CourseSpec, lesson LessonSpec) []course.SourceItem {
	items := make([]course.SourceItem, 0, len(spec.CoreSources)+len(lesson.Sources)+1)
	for _, s := range spec.CoreSources {
		items = append(items, s.Item())
	}
	for _, s := range lesson.Sources {
		items = append(items, s.Item())
	}
	if lesson.ExtraSource.Title != "" || lesson.ExtraSource.URL != "" {
		items = append(items, lesson.ExtraSource.Item())
	}
	return items
}

// renderSourceLine formats one bibliography or read-more entry. The format
// is parsed back by the auditor, so the two must stay in sync.
func renderSourceLine(s course.SourceItem) string {
	var b strings.Builder
	b.WriteString("- ")
	if s.URL != "" {
		fmt.Fprintf(&b, "[%s](%s)", s.Title, s.URL)
	} else {
		b.WriteString(s.Title)
	}
	if s.Meta != "" {
		fmt.Fprintf(&b, " (%s)", s.Meta)
	}
	return b.String()
}

// renderSourceList renders a full bibliography body.
func renderSourceList(items []course.SourceItem) string {
	lines := make([]string, len(items))
	for i, s := range items {
		lines[i] = renderSourceLine(s)
	}
	return strings.Join(lines, "\n")
}
