// Package assemble regenerates a course package from its canonical spec:
// per-lesson bibliography and read-more sections rewritten in place, plus a
// freshly generated question set per lesson. The assembler only constructs
// candidates; all acceptance decisions live in the quality validator and
// the package auditor so validation is never duplicated here.
package assemble

import (
	"fmt"
	"strings"

	"github.com/openlearn/coursepack/internal/course"
	"github.com/openlearn/coursepack/internal/document"
)

// Assembler rewrites a previously exported package according to a course
// spec. It does not mutate its input; Assemble returns a new candidate
// package for the auditor to accept or reject as a unit.
type Assembler struct {
	spec *CourseSpec
	cfg  Config
}

// NewAssembler creates an Assembler for one course spec.
func NewAssembler(spec *CourseSpec, cfg Config) *Assembler {
	return &Assembler{spec: spec, cfg: cfg}
}

// Assemble produces the candidate package. It fails before touching any
// lesson if the spec's read-more references collide, since a collision
// guarantees the auditor would reject the output anyway.
func (a *Assembler) Assemble(prev *course.Package) (*course.Package, error) {
	if err := a.checkReadMoreUnique(); err != nil {
		return nil, err
	}

	out := &course.Package{Lessons: make([]course.Lesson, 0, len(prev.Lessons))}
	for i, lesson := range prev.Lessons {
		spec, ok := a.spec.LessonByDay(lesson.Day)
		if !ok {
			return nil, fmt.Errorf("lesson %d (day %d): no entry in course spec", i+1, lesson.Day)
		}
		rebuilt, err := a.rebuildLesson(lesson, spec)
		if err != nil {
			return nil, fmt.Errorf("lesson %d (day %d): %w", i+1, lesson.Day, err)
		}
		out.Lessons = append(out.Lessons, rebuilt)
	}
	return out, nil
}

func (a *Assembler) checkReadMoreUnique() error {
	seen := make(map[string]int, len(a.spec.Lessons))
	for _, l := range a.spec.Lessons {
		key := course.ReadMoreKey(l.ReadMore.Item())
		if prevDay, dup := seen[key]; dup {
			return fmt.Errorf("read-more reference %q is assigned to both day %d and day %d", key, prevDay, l.Day)
		}
		seen[key] = l.Day
	}
	return nil
}

func (a *Assembler) rebuildLesson(lesson course.Lesson, spec LessonSpec) (course.Lesson, error) {
	doc := lesson.Content
	// The terminator closes the trailing read-more section; the assembler
	// owns the export format, so a missing one is supplied rather than
	// treated as an error.
	if !strings.Contains(doc, a.cfg.Terminator) {
		doc = strings.TrimRight(doc, "\n") + "\n" + a.cfg.Terminator
	}

	bibBody := renderSourceList(buildSources(a.spec, spec))
	doc, err := document.ReplaceSection(doc, a.cfg.BibliographyHeader, []string{a.cfg.ReadMoreHeader}, bibBody)
	if err != nil {
		return course.Lesson{}, fmt.Errorf("rewrite bibliography: %w", err)
	}

	readMoreBody := renderSourceLine(spec.ReadMore.Item())
	enders := append([]string{}, a.cfg.SectionEnders...)
	enders = append(enders, a.cfg.Terminator)
	doc, err = document.ReplaceSection(doc, a.cfg.ReadMoreHeader, enders, readMoreBody)
	if err != nil {
		return course.Lesson{}, fmt.Errorf("rewrite read-more: %w", err)
	}

	rebuilt := lesson
	rebuilt.Title = spec.Title
	rebuilt.Language = a.spec.Language
	rebuilt.Content = doc
	rebuilt.Questions = buildQuestions(spec)
	return rebuilt, nil
}
