package quality

import (
	"fmt"
	"strings"
	"testing"

	"github.com/openlearn/coursepack/internal/course"
)

// makeSet builds a syntactically clean set with the given cognitive-type
// distribution, application questions first.
func makeSet(application, critical, recall int) []course.Question {
	var qs []course.Question
	add := func(n int, ct course.CognitiveType, difficulty string) {
		for i := 0; i < n; i++ {
			q := validQuestion()
			q.CognitiveType = ct
			q.Difficulty = difficulty
			q.Text = fmt.Sprintf("Scenario %d for %s: a consultant must adapt a rollout plan after the client's budget owner changes mid-project. What should happen first?", len(qs)+1, ct)
			qs = append(qs, q)
		}
	}
	add(application, course.CognitiveApplication, "medium")
	add(critical, course.CognitiveCritical, "advanced")
	add(recall, course.CognitiveRecall, "easy")
	return qs
}

func TestSetValid(t *testing.T) {
	v := New(DefaultConfig())
	res := v.ValidateQuestionSet(makeSet(5, 2, 0), "en", "Negotiation basics")
	if !res.IsValid {
		t.Fatalf("expected valid set, got %v", res.Errors)
	}
}

func TestSetTooSmall(t *testing.T) {
	v := New(DefaultConfig())
	res := v.ValidateQuestionSet(makeSet(4, 2, 0), "en", "")
	if res.IsValid || !hasError(res, "at least 7 required") {
		t.Errorf("expected set-size error, got %v", res.Errors)
	}
}

func TestSetApplicationMinimum(t *testing.T) {
	// Total stays at 7, application drops to 4.
	v := New(DefaultConfig())
	res := v.ValidateQuestionSet(makeSet(4, 3, 0), "en", "")
	if res.IsValid {
		t.Fatal("expected invalid when application count is 4")
	}
	if !hasError(res, "at least 5 required") {
		t.Errorf("expected application-minimum error, got %v", res.Errors)
	}
}

func TestSetCriticalBelowTargetWarnsOnly(t *testing.T) {
	v := New(DefaultConfig())
	res := v.ValidateQuestionSet(makeSet(6, 1, 0), "en", "")
	if !res.IsValid {
		t.Fatalf("critical-thinking target is soft; got errors %v", res.Errors)
	}
	if !hasWarning(res, "2 recommended") {
		t.Errorf("expected distribution warning, got %v", res.Warnings)
	}
}

func TestSetRecallRejectedAtAggregateLevel(t *testing.T) {
	v := New(DefaultConfig())
	res := v.ValidateQuestionSet(makeSet(5, 1, 1), "en", "")
	if res.IsValid {
		t.Fatal("expected invalid for recall in set")
	}
	if !hasError(res, "recall is not allowed") {
		t.Errorf("expected aggregate recall error, got %v", res.Errors)
	}
}

func TestSetPrefixesPerQuestionFindings(t *testing.T) {
	qs := makeSet(5, 2, 0)
	qs[2].Options = qs[2].Options[:3]
	qs[6].Text = "Too short to be a question."

	v := New(DefaultConfig())
	res := v.ValidateQuestionSet(qs, "en", "")
	if res.IsValid {
		t.Fatal("expected invalid set")
	}
	var got3, got7 bool
	for _, e := range res.Errors {
		if strings.HasPrefix(e, "question 3:") {
			got3 = true
		}
		if strings.HasPrefix(e, "question 7:") {
			got7 = true
		}
	}
	if !got3 || !got7 {
		t.Errorf("expected positioned errors for questions 3 and 7, got %v", res.Errors)
	}
}

func TestSetCollectsAllFailures(t *testing.T) {
	// Two broken questions: both must be reported in one pass.
	qs := makeSet(5, 2, 0)
	qs[0].CognitiveType = course.CognitiveRecall
	qs[1].Options[0] = qs[1].Options[1]

	v := New(DefaultConfig())
	res := v.ValidateQuestionSet(qs, "en", "")
	if len(res.Errors) < 2 {
		t.Errorf("expected at least 2 errors, got %v", res.Errors)
	}
}
