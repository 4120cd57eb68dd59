package quality

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/openlearn/coursepack/internal/course"
)

// CognitiveTypeCheck rejects recall-style questions outright. Recall is a
// legacy category: no amount of wording quality makes a rote-memorization
// question acceptable.
type CognitiveTypeCheck struct{}

func (c *CognitiveTypeCheck) Name() string { return "cognitive-type" }

func (c *CognitiveTypeCheck) Check(q *course.Question, _ Context) []Finding {
	if q.CognitiveType == course.CognitiveRecall {
		return []Finding{{
			Check:    c.Name(),
			Severity: SeverityError,
			Message:  "recall questions are not allowed; rewrite as application or critical-thinking",
		}}
	}
	return nil
}

// TypeDifficultyCheck requires a known cognitive type and a non-empty
// difficulty tier.
type TypeDifficultyCheck struct{}

func (c *TypeDifficultyCheck) Name() string { return "type-difficulty" }

func (c *TypeDifficultyCheck) Check(q *course.Question, _ Context) []Finding {
	var fs []Finding
	switch q.CognitiveType {
	case course.CognitiveApplication, course.CognitiveCritical:
	case course.CognitiveRecall:
		// Reported by CognitiveTypeCheck with a clearer message.
	default:
		fs = append(fs, Finding{
			Check:    c.Name(),
			Severity: SeverityError,
			Message:  fmt.Sprintf("unknown cognitive type %q: must be %q or %q", q.CognitiveType, course.CognitiveApplication, course.CognitiveCritical),
		})
	}
	if strings.TrimSpace(q.Difficulty) == "" {
		fs = append(fs, Finding{
			Check:    c.Name(),
			Severity: SeverityError,
			Message:  "difficulty is empty",
		})
	}
	return fs
}

// SelfContainmentCheck rejects questions that refer back to "the lesson" or
// "the course" in any supported language. Full-phrase patterns across every
// language are scanned regardless of the declared language, since leaked
// phrasing is usually in the source language, not the declared one.
type SelfContainmentCheck struct{}

func (c *SelfContainmentCheck) Name() string { return "self-containment" }

func (c *SelfContainmentCheck) Check(q *course.Question, ctx Context) []Finding {
	var fs []Finding
	scan := func(label, text string) {
		for lang, patterns := range ctx.Patterns.LessonReferential {
			for _, p := range patterns {
				if m := p.FindString(text); m != "" {
					fs = append(fs, Finding{
						Check:    c.Name(),
						Severity: SeverityError,
						Message:  fmt.Sprintf("%s references its own lesson (%s phrase %q); content must stand alone", label, lang, m),
					})
				}
			}
		}
	}
	scan("question text", q.Text)
	for i, opt := range q.Options {
		scan(fmt.Sprintf("option %d", i+1), opt)
	}
	return fs
}

// Checklist artifacts and ellipses indicate a truncated copy-paste from the
// lesson body rather than authored content.
var snippetArtifacts = []string{"✓", "✔", "☑", "✗", "✘", "☐", "…", "..."}

// SnippetLeakCheck rejects checklist marks and ellipses anywhere in the
// question or options, quoted or not.
type SnippetLeakCheck struct{}

func (c *SnippetLeakCheck) Name() string { return "snippet-leak" }

func (c *SnippetLeakCheck) Check(q *course.Question, _ Context) []Finding {
	var fs []Finding
	scan := func(label, text string) {
		for _, mark := range snippetArtifacts {
			if strings.Contains(text, mark) {
				fs = append(fs, Finding{
					Check:    c.Name(),
					Severity: SeverityError,
					Message:  fmt.Sprintf("%s contains copy-paste artifact %q", label, mark),
				})
				return // one finding per field is enough
			}
		}
	}
	scan("question text", q.Text)
	for i, opt := range q.Options {
		scan(fmt.Sprintf("option %d", i+1), opt)
	}
	return fs
}

// CrossLanguageLeakCheck rejects known English tokens in non-English
// lessons. The token list is short and symptomatic: these words show up
// when a translation pipeline silently falls back to the source text.
type CrossLanguageLeakCheck struct{}

func (c *CrossLanguageLeakCheck) Name() string { return "cross-language-leak" }

func (c *CrossLanguageLeakCheck) Check(q *course.Question, ctx Context) []Finding {
	if ctx.Language == "en" || ctx.Language == "" {
		return nil
	}
	var fs []Finding
	combined := q.Text + "\n" + strings.Join(q.Options, "\n")
	for _, token := range ctx.Patterns.LeakTokens {
		if m := token.FindString(combined); m != "" {
			fs = append(fs, Finding{
				Check:    c.Name(),
				Severity: SeverityError,
				Message:  fmt.Sprintf("English token %q in %s-language content suggests untranslated source text", m, ctx.Language),
			})
		}
	}
	return fs
}

// RichnessCheck requires enough question text to carry scenario context.
type RichnessCheck struct{}

func (c *RichnessCheck) Name() string { return "richness" }

func (c *RichnessCheck) Check(q *course.Question, ctx Context) []Finding {
	n := utf8.RuneCountInString(strings.TrimSpace(q.Text))
	if n <= ctx.Config.MinQuestionRunes {
		return []Finding{{
			Check:    c.Name(),
			Severity: SeverityError,
			Message:  fmt.Sprintf("question text is %d characters; must exceed %d to carry scenario context", n, ctx.Config.MinQuestionRunes),
		}}
	}
	return nil
}

// TemplateOpenerCheck rejects questions built from generic template
// skeletons: openers matched at the start of the text, and a narrower list
// of generic phrases matched anywhere. The split keeps incidental
// substrings from being flagged.
type TemplateOpenerCheck struct{}

func (c *TemplateOpenerCheck) Name() string { return "template-pattern" }

func (c *TemplateOpenerCheck) Check(q *course.Question, ctx Context) []Finding {
	var fs []Finding
	folded := course.NormalizeText(q.Text)
	for _, opener := range ctx.Patterns.TemplateOpeners {
		if strings.HasPrefix(folded, opener) {
			fs = append(fs, Finding{
				Check:    c.Name(),
				Severity: SeverityError,
				Message:  fmt.Sprintf("question starts with generic template opener %q", opener),
			})
			break
		}
	}
	for _, phrase := range ctx.Patterns.GenericPhrases {
		if strings.Contains(folded, phrase) {
			fs = append(fs, Finding{
				Check:    c.Name(),
				Severity: SeverityError,
				Message:  fmt.Sprintf("question contains generic template phrase %q", phrase),
			})
			break
		}
	}
	return fs
}

var quotedTokenRe = regexp.MustCompile(`"([^"]+)"|'([^']+)'|«([^»]+)»|„([^“”"]+)[“”"]|“([^”]+)”`)

// FragmentQuoteCheck requires quoted tokens to be complete, meaningful
// terms: no quoting of sub-word fragments or tokens too short to be terms.
type FragmentQuoteCheck struct{}

func (c *FragmentQuoteCheck) Name() string { return "fragment-quote" }

func (c *FragmentQuoteCheck) Check(q *course.Question, ctx Context) []Finding {
	var fs []Finding
	for _, match := range quotedTokenRe.FindAllStringSubmatch(q.Text, -1) {
		var token string
		for _, group := range match[1:] {
			if group != "" {
				token = group
				break
			}
		}
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if utf8.RuneCountInString(token) < ctx.Config.MinQuotedRunes {
			fs = append(fs, Finding{
				Check:    c.Name(),
				Severity: SeverityError,
				Message:  fmt.Sprintf("quoted token %q is too short to be a meaningful term", token),
			})
			continue
		}
		lower := strings.ToLower(token)
		for _, frag := range ctx.Patterns.Fragments {
			if lower == frag {
				fs = append(fs, Finding{
					Check:    c.Name(),
					Severity: SeverityError,
					Message:  fmt.Sprintf("quoted token %q is a word fragment, not a term", token),
				})
				break
			}
		}
	}
	return fs
}

// PlaceholderAnswerCheck rejects generic placeholder options, with a more
// specific message for known machine-template answers.
type PlaceholderAnswerCheck struct{}

func (c *PlaceholderAnswerCheck) Name() string { return "placeholder-answer" }

func (c *PlaceholderAnswerCheck) Check(q *course.Question, ctx Context) []Finding {
	var fs []Finding
	for i, opt := range q.Options {
		folded := course.NormalizeText(opt)
		matched := false
		for _, tmpl := range ctx.Patterns.TemplateAnswers {
			if strings.Contains(folded, tmpl) {
				fs = append(fs, Finding{
					Check:    c.Name(),
					Severity: SeverityError,
					Message:  fmt.Sprintf("option %d matches machine-template answer %q; distractors must be authored", i+1, tmpl),
				})
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		for _, generic := range ctx.Patterns.GenericAnswers {
			if strings.Contains(folded, generic) {
				fs = append(fs, Finding{
					Check:    c.Name(),
					Severity: SeverityError,
					Message:  fmt.Sprintf("option %d is a generic placeholder answer (%q)", i+1, generic),
				})
				break
			}
		}
	}
	return fs
}

// OptionShapeCheck enforces the structural shape of the option list:
// exactly 4 options, each long enough to be educational, no duplicates
// after normalization, and a correct-option index in range.
type OptionShapeCheck struct{}

func (c *OptionShapeCheck) Name() string { return "option-shape" }

func (c *OptionShapeCheck) Check(q *course.Question, ctx Context) []Finding {
	var fs []Finding
	if len(q.Options) != course.OptionCount {
		fs = append(fs, Finding{
			Check:    c.Name(),
			Severity: SeverityError,
			Message:  fmt.Sprintf("question has %d options; exactly %d required", len(q.Options), course.OptionCount),
		})
	}
	if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
		fs = append(fs, Finding{
			Check:    c.Name(),
			Severity: SeverityError,
			Message:  fmt.Sprintf("correct option index %d is out of range", q.CorrectOption),
		})
	}

	seen := make(map[string]int, len(q.Options))
	for i, opt := range q.Options {
		trimmed := strings.TrimSpace(opt)
		if trimmed == "" {
			fs = append(fs, Finding{
				Check:    c.Name(),
				Severity: SeverityError,
				Message:  fmt.Sprintf("option %d is empty", i+1),
			})
			continue
		}
		if n := utf8.RuneCountInString(trimmed); n <= ctx.Config.MinOptionRunes {
			fs = append(fs, Finding{
				Check:    c.Name(),
				Severity: SeverityError,
				Message:  fmt.Sprintf("option %d is %d characters; must exceed %d to be an educational distractor", i+1, n, ctx.Config.MinOptionRunes),
			})
		}
		key := course.NormalizeText(opt)
		if prev, dup := seen[key]; dup {
			fs = append(fs, Finding{
				Check:    c.Name(),
				Severity: SeverityError,
				Message:  fmt.Sprintf("options %d and %d are duplicates", prev+1, i+1),
			})
			continue
		}
		seen[key] = i
	}
	return fs
}

// ScriptConsistencyCheck catches machine-translation fallbacks in
// non-Latin-script languages: too few letters of the expected script, or a
// long contiguous run of untranslated Latin text.
type ScriptConsistencyCheck struct{}

func (c *ScriptConsistencyCheck) Name() string { return "script-consistency" }

func (c *ScriptConsistencyCheck) Check(q *course.Question, ctx Context) []Finding {
	script, ok := expectedScript[ctx.Language]
	if !ok {
		return nil
	}
	combined := q.Text + " " + strings.Join(q.Options, " ")

	var fs []Finding
	if ratio := scriptRatio(combined, script); ratio < ctx.Config.ScriptRatioFloor {
		fs = append(fs, Finding{
			Check:    c.Name(),
			Severity: SeverityError,
			Message:  fmt.Sprintf("only %.0f%% of letters are in the expected script for language %q (floor %.0f%%)", ratio*100, ctx.Language, ctx.Config.ScriptRatioFloor*100),
		})
	}
	if run := longestLatinRun(combined); run >= ctx.Config.MaxLatinRun {
		fs = append(fs, Finding{
			Check:    c.Name(),
			Severity: SeverityError,
			Message:  fmt.Sprintf("contains a %d-character Latin run in %q-language content; looks like untranslated text", run, ctx.Language),
		})
	}
	return fs
}

// SoftHeuristicsCheck emits advisory warnings only: weak-but-valid content
// a reviewer should glance at. Nothing here ever blocks acceptance.
type SoftHeuristicsCheck struct{}

func (c *SoftHeuristicsCheck) Name() string { return "soft-heuristics" }

func (c *SoftHeuristicsCheck) Check(q *course.Question, ctx Context) []Finding {
	var fs []Finding

	if q.CognitiveType == course.CognitiveCritical {
		switch strings.ToLower(strings.TrimSpace(q.Difficulty)) {
		case "advanced", "hard", "expert":
		default:
			fs = append(fs, Finding{
				Check:    c.Name(),
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("critical-thinking question carries difficulty %q; these usually warrant a high tier", q.Difficulty),
			})
		}
	}

	for i, opt := range q.Options {
		if n := utf8.RuneCountInString(strings.TrimSpace(opt)); n > 0 && n < ctx.Config.ShortOptionRunes {
			fs = append(fs, Finding{
				Check:    c.Name(),
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("option %d is only %d characters; likely low-value", i+1, n),
			})
		}
	}

	trimmed := strings.TrimSpace(q.Text)
	if strings.HasSuffix(trimmed, "?") && len(strings.Fields(trimmed)) <= 6 {
		fs = append(fs, Finding{
			Check:    c.Name(),
			Severity: SeverityWarning,
			Message:  "question is a bare interrogative; may lack scenario context",
		})
	}

	return fs
}
