package quality

import (
	"fmt"

	"github.com/openlearn/coursepack/internal/course"
)

// Validator runs the configured check chain over questions and question
// sets. It is stateless and safe for concurrent use as long as the Config
// it was built with is not mutated.
type Validator struct {
	cfg Config
}

// New creates a Validator. Most callers pass DefaultConfig().
func New(cfg Config) *Validator {
	if cfg.Patterns == nil {
		cfg.Patterns = DefaultPatternSet()
	}
	return &Validator{cfg: cfg}
}

// ValidateQuestion runs every check on one question and aggregates all
// findings. It never returns a Go error: content problems are data, not
// failures, so callers can collect every reason at once.
func (v *Validator) ValidateQuestion(q course.Question, language, lessonTitle string) Result {
	ctx := Context{
		Language:    language,
		LessonTitle: lessonTitle,
		Patterns:    v.cfg.Patterns,
		Config:      &v.cfg,
	}

	res := Result{IsValid: true}
	for _, check := range v.cfg.Checks {
		for _, f := range check.Check(&q, ctx) {
			res.add(f)
		}
	}
	return res
}

// ValidateQuestionSet validates a lesson's full question list: every
// question individually plus set-level size and cognitive-type
// distribution. Per-question findings are prefixed with the question's
// 1-based position so a bulk author can locate every failure in one pass.
//
// The recall count is re-checked here even though ValidateQuestion already
// rejects recall questions, so a bulk import path that skips per-question
// validation still cannot smuggle one in.
func (v *Validator) ValidateQuestionSet(questions []course.Question, language, lessonTitle string) Result {
	res := Result{IsValid: true}

	if len(questions) < v.cfg.MinSetSize {
		res.add(Finding{
			Check:    "set-size",
			Severity: SeverityError,
			Message:  fmt.Sprintf("lesson has %d questions; at least %d required", len(questions), v.cfg.MinSetSize),
		})
	}

	var recall, application, critical int
	for _, q := range questions {
		switch q.CognitiveType {
		case course.CognitiveRecall:
			recall++
		case course.CognitiveApplication:
			application++
		case course.CognitiveCritical:
			critical++
		}
	}
	if recall > 0 {
		res.add(Finding{
			Check:    "set-distribution",
			Severity: SeverityError,
			Message:  fmt.Sprintf("lesson contains %d recall questions; recall is not allowed", recall),
		})
	}
	if application < v.cfg.MinApplication {
		res.add(Finding{
			Check:    "set-distribution",
			Severity: SeverityError,
			Message:  fmt.Sprintf("lesson has %d application questions; at least %d required", application, v.cfg.MinApplication),
		})
	}
	if critical < v.cfg.RecommendedCritical {
		res.add(Finding{
			Check:    "set-distribution",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("lesson has %d critical-thinking questions; %d recommended", critical, v.cfg.RecommendedCritical),
		})
	}

	for i, q := range questions {
		qr := v.ValidateQuestion(q, language, lessonTitle)
		for _, e := range qr.Errors {
			res.add(Finding{
				Check:    "question",
				Severity: SeverityError,
				Message:  fmt.Sprintf("question %d: %s", i+1, e),
			})
		}
		for _, w := range qr.Warnings {
			res.add(Finding{
				Check:    "question",
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("question %d: %s", i+1, w),
			})
		}
	}

	return res
}
