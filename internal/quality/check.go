package quality

import (
	"github.com/openlearn/coursepack/internal/course"
)

// Severity distinguishes blocking findings from advisory ones.
type Severity int

const (
	// SeverityError marks the question invalid.
	SeverityError Severity = iota
	// SeverityWarning is surfaced to reviewers but never blocks acceptance.
	SeverityWarning
)

// Finding is one named, human-readable reason a check produced.
type Finding struct {
	Check    string // Name of the check that produced this finding
	Severity Severity
	Message  string
}

// Context carries everything a check needs beyond the question itself.
type Context struct {
	// Language is the declared language code of the lesson, e.g. "en", "bg".
	Language string
	// LessonTitle is optional and used only for message context.
	LessonTitle string

	Patterns *PatternSet
	Config   *Config
}

// Check inspects one question and reports zero or more findings.
// Checks are stateless and must never panic on malformed input; every
// problem is reported as a Finding so callers can aggregate all failures
// for a question in one pass.
type Check interface {
	// Name returns a short identifier for this check (for messages and
	// logging), e.g. "self-containment", "script-consistency".
	Name() string

	Check(q *course.Question, ctx Context) []Finding
}

// Result is the aggregate verdict for a question or a question set.
// Warnings never affect IsValid.
type Result struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

func (r *Result) add(f Finding) {
	switch f.Severity {
	case SeverityWarning:
		r.Warnings = append(r.Warnings, f.Message)
	default:
		r.IsValid = false
		r.Errors = append(r.Errors, f.Message)
	}
}
