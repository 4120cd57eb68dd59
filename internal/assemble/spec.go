package assemble

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openlearn/coursepack/internal/course"
)

// CourseSpec is the canonical per-lesson specification the assembler is
// driven by. It is authored as YAML and owned by the content team; the
// assembler never invents data that is not in the spec or its static
// question templates.
type CourseSpec struct {
	Title    string `yaml:"title"`
	Language string `yaml:"language"`

	// LessonCount and QuestionsPerLesson are the package-level targets the
	// auditor enforces.
	LessonCount        int `yaml:"lesson_count"`
	QuestionsPerLesson int `yaml:"questions_per_lesson"`
	MinSources         int `yaml:"min_sources"`

	// CoreSources appear in every lesson's bibliography.
	CoreSources []SourceSpec `yaml:"core_sources"`

	Lessons []LessonSpec `yaml:"lessons"`
}

// SourceSpec mirrors course.SourceItem in the YAML surface.
type SourceSpec struct {
	Title string `yaml:"title"`
	Meta  string `yaml:"meta"`
	URL   string `yaml:"url"`
}

// Scenario is the short structured tuple fed into the question templates.
type Scenario struct {
	Role       string `yaml:"role"`
	Offering   string `yaml:"offering"`
	Buyer      string `yaml:"buyer"`
	Constraint string `yaml:"constraint"`
}

// LessonSpec drives assembly of one lesson.
type LessonSpec struct {
	Day       int    `yaml:"day"`
	Title     string `yaml:"title"`
	Objective string `yaml:"objective"`

	// Sources are the lesson-specific canonical references.
	Sources []SourceSpec `yaml:"sources"`
	// ExtraSource is the one per-lesson unique bibliography item.
	ExtraSource SourceSpec `yaml:"extra_source"`
	// ReadMore is the lesson's single supplementary reference; unique
	// across the whole course.
	ReadMore SourceSpec `yaml:"read_more"`

	Scenario Scenario `yaml:"scenario"`
}

// Item converts a SourceSpec to the package data model.
func (s SourceSpec) Item() course.SourceItem {
	return course.SourceItem{Title: s.Title, Meta: s.Meta, URL: s.URL}
}

// LoadSpec reads and minimally validates a course spec file. Deep
// invariants (uniqueness, counts) are the assembler's and auditor's job;
// this only rejects specs that cannot drive assembly at all.
func LoadSpec(path string) (*CourseSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read course spec: %w", err)
	}
	var spec CourseSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse course spec: %w", err)
	}
	if err := spec.check(); err != nil {
		return nil, fmt.Errorf("course spec %s: %w", path, err)
	}
	return &spec, nil
}

func (s *CourseSpec) check() error {
	if s.Language == "" {
		return fmt.Errorf("language is required")
	}
	if s.LessonCount <= 0 {
		return fmt.Errorf("lesson_count must be positive")
	}
	if len(s.Lessons) != s.LessonCount {
		return fmt.Errorf("spec declares lesson_count %d but lists %d lessons", s.LessonCount, len(s.Lessons))
	}
	days := make(map[int]bool, len(s.Lessons))
	for i, l := range s.Lessons {
		if l.Day <= 0 {
			return fmt.Errorf("lesson %d: day must be positive", i+1)
		}
		if days[l.Day] {
			return fmt.Errorf("duplicate day %d", l.Day)
		}
		days[l.Day] = true
		if l.Objective == "" {
			return fmt.Errorf("day %d: objective is required", l.Day)
		}
		if l.ReadMore.Title == "" && l.ReadMore.URL == "" {
			return fmt.Errorf("day %d: read_more is required", l.Day)
		}
	}
	return nil
}

// LessonByDay returns the spec for a given day number.
func (s *CourseSpec) LessonByDay(day int) (LessonSpec, bool) {
	for _, l := range s.Lessons {
		if l.Day == day {
			return l, true
		}
	}
	return LessonSpec{}, false
}
