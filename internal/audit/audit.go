// Package audit is the single gate between a candidate course package and a
// persisted one. It re-checks everything at package scope and fails fast:
// partial success is not a meaningful state here, so the first violation
// aborts the run and nothing downstream is written.
package audit

import (
	"fmt"
	"strings"

	"github.com/openlearn/coursepack/internal/course"
	"github.com/openlearn/coursepack/internal/document"
	"github.com/openlearn/coursepack/internal/quality"
)

// Config fixes the package-level targets and the document conventions the
// auditor reads sections with.
type Config struct {
	// LessonCount is the exact number of lessons a package must contain.
	LessonCount int
	// QuestionsPerLesson is the exact question-set size per lesson.
	QuestionsPerLesson int
	// MinSources is the minimum number of bibliography entries per lesson.
	MinSources int

	BibliographyHeader string
	ReadMoreHeader     string

	// Quality configures the per-lesson question-set validation re-run.
	Quality quality.Config
}

// DefaultConfig returns the production package targets.
func DefaultConfig() Config {
	return Config{
		LessonCount:        30,
		QuestionsPerLesson: 7,
		MinSources:         3,
		BibliographyHeader: "## Bibliography",
		ReadMoreHeader:     "## Read more",
		Quality:            quality.DefaultConfig(),
	}
}

// Audit validates a whole package against the global invariants. Any
// violation aborts immediately with a descriptive error; nil means the
// package may be persisted. The uniqueness accumulators are local to one
// call and must not be shared across audits of unrelated packages.
func Audit(pkg *course.Package, cfg Config) error {
	// Lesson count first: if this is wrong, per-lesson indices below would
	// be meaningless.
	if len(pkg.Lessons) != cfg.LessonCount {
		return fmt.Errorf("package has %d lessons; exactly %d required", len(pkg.Lessons), cfg.LessonCount)
	}

	// Per-lesson question count plus cross-lesson text uniqueness.
	type seenAt struct{ lesson, question int }
	seenTexts := make(map[string]seenAt, cfg.LessonCount*cfg.QuestionsPerLesson)
	for i, lesson := range pkg.Lessons {
		if len(lesson.Questions) != cfg.QuestionsPerLesson {
			return fmt.Errorf("lesson %d has %d questions; exactly %d required", i+1, len(lesson.Questions), cfg.QuestionsPerLesson)
		}
		for j, q := range lesson.Questions {
			key := course.NormalizeText(q.Text)
			if prev, dup := seenTexts[key]; dup {
				return fmt.Errorf("duplicate question text: lesson %d question %d repeats lesson %d question %d (%q)",
					i+1, j+1, prev.lesson, prev.question, q.Text)
			}
			seenTexts[key] = seenAt{lesson: i + 1, question: j + 1}
		}
	}

	// Bibliography entry counts.
	for i, lesson := range pkg.Lessons {
		bib, err := document.SliceSection(lesson.Content, cfg.BibliographyHeader, cfg.ReadMoreHeader)
		if err != nil {
			return fmt.Errorf("lesson %d: %w", i+1, err)
		}
		if n := countEntries(bib); n < cfg.MinSources {
			return fmt.Errorf("lesson %d bibliography has %d entries; at least %d required", i+1, n, cfg.MinSources)
		}
	}

	// Read-more uniqueness across the whole package.
	seenRefs := make(map[string]int, cfg.LessonCount)
	for i, lesson := range pkg.Lessons {
		section, err := document.SliceSection(lesson.Content, cfg.ReadMoreHeader, "")
		if err != nil {
			return fmt.Errorf("lesson %d: %w", i+1, err)
		}
		ref, err := parseFirstEntry(section)
		if err != nil {
			return fmt.Errorf("lesson %d read-more: %w", i+1, err)
		}
		key := course.ReadMoreKey(ref)
		if prev, dup := seenRefs[key]; dup {
			return fmt.Errorf("duplicate read-more reference: lesson %d repeats lesson %d (%q)", i+1, prev, key)
		}
		seenRefs[key] = i + 1
	}

	// Full question-set validation per lesson.
	v := quality.New(cfg.Quality)
	for i, lesson := range pkg.Lessons {
		res := v.ValidateQuestionSet(lesson.Questions, lesson.Language, lesson.Title)
		if !res.IsValid {
			return fmt.Errorf("lesson %d failed question-set validation:\n  %s", i+1, strings.Join(res.Errors, "\n  "))
		}
	}

	// Final cross-check: the incremental uniqueness gate and the expected
	// total must agree.
	if want := cfg.LessonCount * cfg.QuestionsPerLesson; len(seenTexts) != want {
		return fmt.Errorf("package has %d unique question texts; expected exactly %d", len(seenTexts), want)
	}

	return nil
}

// countEntries counts "- " bullet entries in a section body.
func countEntries(section string) int {
	n := 0
	for _, line := range strings.Split(section, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "- ") {
			n++
		}
	}
	return n
}

// parseFirstEntry parses the first bullet entry of a section body back into
// a SourceItem. The format mirrors what the assembler renders:
// "- [Title](URL) (meta)" or "- Title (meta)".
func parseFirstEntry(section string) (course.SourceItem, error) {
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "- ") {
			continue
		}
		return ParseEntry(line)
	}
	return course.SourceItem{}, fmt.Errorf("no entry found")
}

// ParseEntry parses one rendered source line.
func ParseEntry(line string) (course.SourceItem, error) {
	body := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
	if body == "" {
		return course.SourceItem{}, fmt.Errorf("empty entry")
	}

	var item course.SourceItem
	if strings.HasPrefix(body, "[") {
		mid := strings.Index(body, "](")
		end := strings.Index(body, ")")
		if mid < 0 || end < mid {
			return course.SourceItem{}, fmt.Errorf("malformed link in entry %q", line)
		}
		item.Title = body[1:mid]
		item.URL = body[mid+2 : end]
		body = strings.TrimSpace(body[end+1:])
	} else {
		if idx := strings.Index(body, " ("); idx >= 0 {
			item.Title = body[:idx]
			body = body[idx:]
		} else {
			item.Title = body
			body = ""
		}
	}

	body = strings.TrimSpace(body)
	if strings.HasPrefix(body, "(") && strings.HasSuffix(body, ")") {
		item.Meta = body[1 : len(body)-1]
	}
	return item, nil
}
