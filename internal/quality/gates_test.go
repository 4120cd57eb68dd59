package quality

import (
	"strings"
	"testing"

	"github.com/openlearn/coursepack/internal/course"
)

func validQuestion() course.Question {
	return course.Question{
		Text: "A support engineer is onboarding a hospital client under a strict rollout deadline. Which first step best uncovers the client's real constraints?",
		Options: []string{
			"Walk through the client's current workflow and note where the deadline creates pressure",
			"Send the standard onboarding checklist and wait for the client to complete it unprompted",
			"Schedule the technical migration first, since constraints only matter at go-live",
			"Ask the account manager to summarize the contract terms instead of talking to the client",
		},
		CorrectOption: 0,
		CognitiveType: course.CognitiveApplication,
		Difficulty:    "medium",
	}
}

func validate(t *testing.T, q course.Question, lang string) Result {
	t.Helper()
	v := New(DefaultConfig())
	return v.ValidateQuestion(q, lang, "")
}

func hasError(res Result, substr string) bool {
	for _, e := range res.Errors {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func hasWarning(res Result, substr string) bool {
	for _, w := range res.Warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

func TestValidQuestionPasses(t *testing.T) {
	res := validate(t, validQuestion(), "en")
	if !res.IsValid {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
}

func TestRecallAlwaysRejected(t *testing.T) {
	q := validQuestion()
	q.CognitiveType = course.CognitiveRecall
	res := validate(t, q, "en")
	if res.IsValid {
		t.Fatal("expected invalid for recall question")
	}
	if !hasError(res, "recall") {
		t.Errorf("expected a recall-specific error, got %v", res.Errors)
	}
}

func TestUnknownCognitiveTypeRejected(t *testing.T) {
	q := validQuestion()
	q.CognitiveType = "comprehension"
	res := validate(t, q, "en")
	if res.IsValid || !hasError(res, "unknown cognitive type") {
		t.Errorf("expected unknown-type error, got %v", res.Errors)
	}
}

func TestEmptyDifficultyRejected(t *testing.T) {
	q := validQuestion()
	q.Difficulty = "   "
	res := validate(t, q, "en")
	if res.IsValid || !hasError(res, "difficulty is empty") {
		t.Errorf("expected difficulty error, got %v", res.Errors)
	}
}

func TestSelfContainmentRejectsLessonReferences(t *testing.T) {
	cases := []struct {
		name   string
		inject string
	}{
		{"english", "Apply the framework as described in the lesson to the scenario below and pick the strongest option."},
		{"english in-this-lesson", "In this lesson we saw a three-step framework; a consultant now has to apply it under time pressure."},
		{"hungarian", "Egy tanácsadó alkalmazza a keretrendszert, ahogy a leckében szerepel, és kiválasztja a legjobb lépést."},
		{"russian", "Консультант применяет модель, как описано в уроке, чтобы выбрать наилучший первый шаг в переговорах."},
		{"spanish", "Un consultor aplica el marco según la lección para elegir el mejor primer paso con su cliente nuevo."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := validQuestion()
			q.Text = tc.inject
			res := validate(t, q, "en")
			if !hasError(res, "references its own lesson") {
				t.Errorf("expected self-containment error, got %v", res.Errors)
			}
		})
	}
}

func TestSelfContainmentDecoyDoesNotFalsePositive(t *testing.T) {
	// Bare uses of the underlying word without the referential phrase.
	q := validQuestion()
	q.Text = "A piano teacher plans a trial lesson for a new student with limited time. Which structure makes the session most useful?"
	res := validate(t, q, "en")
	if hasError(res, "references its own lesson") {
		t.Errorf("decoy sentence false-positived: %v", res.Errors)
	}
}

func TestSelfContainmentChecksOptions(t *testing.T) {
	q := validQuestion()
	q.Options[2] = "Follow the exact sequence presented in this lesson without adapting it to the client at hand"
	res := validate(t, q, "en")
	if !hasError(res, "option 3") {
		t.Errorf("expected option 3 flagged, got %v", res.Errors)
	}
}

func TestSnippetLeakRejectsArtifacts(t *testing.T) {
	for _, artifact := range []string{"✓", "…", "..."} {
		q := validQuestion()
		q.Text = strings.Replace(q.Text, "real constraints?", "real constraints "+artifact+" and more?", 1)
		res := validate(t, q, "en")
		if !hasError(res, "copy-paste artifact") {
			t.Errorf("artifact %q not rejected: %v", artifact, res.Errors)
		}
	}
}

func TestCrossLanguageLeak(t *testing.T) {
	q := validQuestion()
	q.Text = "Egy tanácsadó új ügyféllel dolgozik, és a goals dokumentum alapján kell döntenie a következő lépésről a projektben."
	res := validate(t, q, "hu")
	if !hasError(res, "untranslated source text") {
		t.Errorf("expected leak error for non-English lesson, got %v", res.Errors)
	}

	// Same text declared English: the leak gate does not apply.
	res = validate(t, q, "en")
	if hasError(res, "untranslated source text") {
		t.Errorf("leak gate should not fire for English lessons: %v", res.Errors)
	}
}

func TestRichnessRequiresScenarioContext(t *testing.T) {
	q := validQuestion()
	q.Text = "What is active listening in practice?"
	res := validate(t, q, "en")
	if !hasError(res, "scenario context") {
		t.Errorf("expected richness error, got %v", res.Errors)
	}
}

func TestTemplateOpenerRejected(t *testing.T) {
	q := validQuestion()
	q.Text = "What is the main idea of the negotiation framework introduced for enterprise renewal conversations?"
	res := validate(t, q, "en")
	if !hasError(res, "template opener") {
		t.Errorf("expected opener error, got %v", res.Errors)
	}
}

func TestGenericPhraseRejectedAnywhere(t *testing.T) {
	q := validQuestion()
	q.Text = "A trainer reviews a draft quiz and notices it only asks about the main idea of the text rather than application."
	res := validate(t, q, "en")
	if !hasError(res, "generic template phrase") {
		t.Errorf("expected generic-phrase error, got %v", res.Errors)
	}
}

func TestFragmentQuoteRejected(t *testing.T) {
	q := validQuestion()
	q.Text = `A reviewer flags a draft because it quotes "ing" as if it were a term. Which rewrite makes the question self-contained?`
	res := validate(t, q, "en")
	if !hasError(res, "too short to be a meaningful term") && !hasError(res, "word fragment") {
		t.Errorf("expected fragment-quote error, got %v", res.Errors)
	}
}

func TestMeaningfulQuoteAccepted(t *testing.T) {
	q := validQuestion()
	q.Text = `A facilitator introduces the term "active listening" during a coaching session. Which behavior best demonstrates it with a frustrated client?`
	res := validate(t, q, "en")
	if hasError(res, "quoted token") {
		t.Errorf("meaningful quote rejected: %v", res.Errors)
	}
}

func TestPlaceholderAnswerRejected(t *testing.T) {
	q := validQuestion()
	q.Options[1] = "All of the above answers apply equally"
	res := validate(t, q, "en")
	if !hasError(res, "generic placeholder answer") {
		t.Errorf("expected placeholder error, got %v", res.Errors)
	}
}

func TestTemplateAnswerGetsSpecificError(t *testing.T) {
	q := validQuestion()
	q.Options[1] = "This is the correct answer because it covers the scenario"
	res := validate(t, q, "en")
	if !hasError(res, "machine-template answer") {
		t.Errorf("expected template-answer error, got %v", res.Errors)
	}
}

func TestOptionCountEnforced(t *testing.T) {
	q := validQuestion()
	q.Options = q.Options[:3]
	res := validate(t, q, "en")
	if res.IsValid || !hasError(res, "exactly 4 required") {
		t.Errorf("expected option-count error, got %v", res.Errors)
	}
}

func TestDuplicateOptionsRejected(t *testing.T) {
	q := validQuestion()
	q.Options[3] = "  " + strings.ToUpper(q.Options[0]) + "  "
	res := validate(t, q, "en")
	if !hasError(res, "duplicates") {
		t.Errorf("expected duplicate error, got %v", res.Errors)
	}
}

func TestShortOptionRejected(t *testing.T) {
	q := validQuestion()
	q.Options[2] = "Do the migration first"
	res := validate(t, q, "en")
	if !hasError(res, "educational distractor") {
		t.Errorf("expected short-option error, got %v", res.Errors)
	}
}

func TestVeryShortOptionAlsoWarns(t *testing.T) {
	q := validQuestion()
	q.Options[2] = "Yes"
	res := validate(t, q, "en")
	if !hasWarning(res, "likely low-value") {
		t.Errorf("expected low-value warning, got %v", res.Warnings)
	}
}

func TestCorrectOptionIndexRange(t *testing.T) {
	q := validQuestion()
	q.CorrectOption = 4
	res := validate(t, q, "en")
	if !hasError(res, "out of range") {
		t.Errorf("expected index error, got %v", res.Errors)
	}
}

func TestScriptConsistency(t *testing.T) {
	latin := validQuestion()

	// Latin-script text declared Bulgarian fails the script gate.
	res := validate(t, latin, "bg")
	if !hasError(res, "expected script") && !hasError(res, "Latin run") {
		t.Errorf("expected script-consistency error, got %v", res.Errors)
	}

	// The same text declared English passes that gate.
	res = validate(t, latin, "en")
	if hasError(res, "expected script") || hasError(res, "Latin run") {
		t.Errorf("script gate fired for Latin-script English: %v", res.Errors)
	}
}

func TestScriptConsistencyCyrillicPasses(t *testing.T) {
	q := course.Question{
		Text: "Консультант готовится к первой встрече с больницей в условиях жёсткого дедлайна. Какой первый шаг лучше всего выявит ограничения клиента?",
		Options: []string{
			"Разобрать текущий рабочий процесс клиента и отметить, где дедлайн создаёт давление",
			"Отправить стандартный список вопросов и ждать, пока клиент заполнит его самостоятельно",
			"Сначала запланировать техническую миграцию, потому что ограничения важны только при запуске",
			"Попросить менеджера пересказать условия контракта вместо разговора с клиентом",
		},
		CorrectOption: 0,
		CognitiveType: course.CognitiveApplication,
		Difficulty:    "medium",
	}
	res := validate(t, q, "ru")
	if !res.IsValid {
		t.Fatalf("expected valid Cyrillic question, got %v", res.Errors)
	}
}

func TestLongLatinRunInCyrillicRejected(t *testing.T) {
	q := validQuestion()
	// Mostly Cyrillic, but one long untranslated Latin word.
	q.Text = "Консультант обсуждает с клиентом стоимость внедрения troubleshooting и выбирает, как лучше объяснить процесс команде."
	q.Options = []string{
		"Показать команде пошаговый разбор процесса на примере реального инцидента из практики",
		"Оставить объяснение на потом и сосредоточиться только на сроках внедрения проекта",
		"Передать вопрос подрядчику, чтобы команда не тратила время на изучение процесса",
		"Сократить объяснение до одного письма и считать вопрос закрытым для всей команды",
	}
	res := validate(t, q, "ru")
	if !hasError(res, "Latin run") {
		t.Errorf("expected latin-run error, got %v", res.Errors)
	}
}

func TestCriticalThinkingDifficultyWarning(t *testing.T) {
	q := validQuestion()
	q.CognitiveType = course.CognitiveCritical
	q.Difficulty = "easy"
	res := validate(t, q, "en")
	if !res.IsValid {
		t.Fatalf("warnings must not block: %v", res.Errors)
	}
	if !hasWarning(res, "high tier") {
		t.Errorf("expected difficulty warning, got %v", res.Warnings)
	}
}

func TestWarningsNeverBlock(t *testing.T) {
	q := validQuestion()
	q.CognitiveType = course.CognitiveCritical
	q.Difficulty = "easy"
	res := validate(t, q, "en")
	if !res.IsValid || len(res.Warnings) == 0 {
		t.Fatalf("expected valid result with warnings, got valid=%v warnings=%v", res.IsValid, res.Warnings)
	}
}
