package course

// CognitiveType is the pedagogical category of a question.
type CognitiveType string

const (
	// CognitiveRecall is the legacy rote-memorization category.
	// Recall questions are categorically disallowed in new content.
	CognitiveRecall CognitiveType = "recall"

	// CognitiveApplication asks the learner to apply a concept to a scenario.
	CognitiveApplication CognitiveType = "application"

	// CognitiveCritical asks the learner to weigh trade-offs or critique.
	CognitiveCritical CognitiveType = "critical-thinking"
)

// OptionCount is the required number of answer options per question.
const OptionCount = 4

// Question is a single multiple-choice quiz question as persisted and served.
type Question struct {
	// Text is the question prompt shown to the learner.
	Text string `json:"text"`

	// Options holds exactly 4 answer options, one of which is correct.
	Options []string `json:"options"`

	// CorrectOption is the 0-based index into Options.
	CorrectOption int `json:"correct_option"`

	// CognitiveType is "application" or "critical-thinking".
	// "recall" appears only in legacy imports and never passes validation.
	CognitiveType CognitiveType `json:"cognitive_type"`

	// Difficulty is a free-form tier label, e.g. "medium", "advanced".
	Difficulty string `json:"difficulty"`

	Tags []string `json:"tags,omitempty"`
}

// SourceItem is one bibliography entry or a lesson's read-more pointer.
type SourceItem struct {
	Title string `json:"title"`
	// Meta is an optional annotation, e.g. "chapter 3" or "video, 12 min".
	Meta string `json:"meta,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Lesson is one day of a course: long-form content with two machine-owned
// sections (Bibliography, Read more) plus an embedded question set.
type Lesson struct {
	ID       string `json:"id"`
	Day      int    `json:"day"`
	Language string `json:"language"`
	Title    string `json:"title"`

	// Content is the full lesson document. The Bibliography and Read-more
	// sections inside it are rewritten by the assembler; everything else is
	// author-owned prose.
	Content string `json:"content"`

	Questions []Question `json:"questions"`
}

// Package is the full multi-lesson course unit. Whole-package invariants
// (lesson count, global question-text uniqueness, read-more uniqueness) are
// enforced by the auditor, not here.
type Package struct {
	Lessons []Lesson `json:"lessons"`
}
