package quality

import "regexp"

// PatternSet is the curated multi-language phrase library the checks match
// against. A PatternSet is immutable after construction: callers that need
// an extra language or a different phrase list build their own set and pass
// it through Config rather than mutating the default.
type PatternSet struct {
	// LessonReferential maps a language code to full-phrase patterns that
	// refer back to the lesson or course itself. Full phrases, not bare
	// words, so legitimate uses of "lesson"/"урок"/"lección" in unrelated
	// sentences do not false-positive.
	LessonReferential map[string][]*regexp.Regexp

	// TemplateOpeners are generic question openers (lower-cased). A match
	// anchored at the start of the question text is always rejected.
	TemplateOpeners []string

	// GenericPhrases is the narrower sub-list rejected wherever it appears
	// inside the question text, not only at the start.
	GenericPhrases []string

	// GenericAnswers are placeholder option texts (lower-cased).
	GenericAnswers []string

	// TemplateAnswers are known machine-template answers. They get a more
	// specific message than GenericAnswers because they indicate automated
	// low-effort generation rather than an honest distractor.
	TemplateAnswers []string

	// Fragments are known meaningless word fragments that must never be
	// quoted as if they were terms.
	Fragments []string

	// LeakTokens are English tokens whose presence in a non-English lesson
	// indicates untranslated source text leaking through.
	LeakTokens []*regexp.Regexp
}

// DefaultPatternSet returns the built-in phrase library covering the
// languages the course catalog ships in.
func DefaultPatternSet() *PatternSet {
	return &PatternSet{
		LessonReferential: map[string][]*regexp.Regexp{
			"en": {
				regexp.MustCompile(`(?i)\b(?:as|which is)\s+(?:described|mentioned|discussed|covered|explained)\s+in\s+(?:the|this)\s+(?:lesson|course|module)\b`),
				regexp.MustCompile(`(?i)\bin\s+(?:this|today's)\s+lesson\b`),
				regexp.MustCompile(`(?i)\baccording\s+to\s+(?:the|this)\s+(?:lesson|course)\b`),
				regexp.MustCompile(`(?i)\bfrom\s+the\s+lesson\s+(?:above|text)\b`),
			},
			"es": {
				regexp.MustCompile(`(?i)según\s+(?:la|esta)\s+lección`),
				regexp.MustCompile(`(?i)en\s+esta\s+lección`),
				regexp.MustCompile(`(?i)como\s+se\s+(?:menciona|describe)\s+en\s+la\s+lección`),
			},
			"fr": {
				regexp.MustCompile(`(?i)dans\s+cette\s+leçon`),
				regexp.MustCompile(`(?i)selon\s+(?:la|cette)\s+leçon`),
				regexp.MustCompile(`(?i)comme\s+(?:décrit|mentionné)\s+dans\s+la\s+leçon`),
			},
			"de": {
				regexp.MustCompile(`(?i)in\s+dieser\s+lektion`),
				regexp.MustCompile(`(?i)laut\s+(?:der\s+)?lektion`),
				regexp.MustCompile(`(?i)wie\s+in\s+der\s+lektion\s+beschrieben`),
			},
			"it": {
				regexp.MustCompile(`(?i)in\s+questa\s+lezione`),
				regexp.MustCompile(`(?i)secondo\s+(?:la|questa)\s+lezione`),
				regexp.MustCompile(`(?i)come\s+descritto\s+nella\s+lezione`),
			},
			"pt": {
				regexp.MustCompile(`(?i)nesta\s+lição`),
				regexp.MustCompile(`(?i)de\s+acordo\s+com\s+a\s+lição`),
				regexp.MustCompile(`(?i)conforme\s+(?:a\s+)?lição`),
			},
			"hu": {
				regexp.MustCompile(`(?i)a\s+leckében`),
				regexp.MustCompile(`(?i)ebben\s+a\s+leckében`),
				regexp.MustCompile(`(?i)a\s+lecke\s+szerint`),
			},
			"bg": {
				// No \b here: RE2 word boundaries are ASCII-only and never
				// match adjacent to Cyrillic letters.
				regexp.MustCompile(`(?i)в\s+(?:този\s+)?урок`),
				regexp.MustCompile(`(?i)според\s+урока`),
				regexp.MustCompile(`(?i)както\s+е\s+описано\s+в\s+урока`),
			},
			"ru": {
				regexp.MustCompile(`(?i)в\s+(?:этом\s+)?уроке`),
				regexp.MustCompile(`(?i)согласно\s+уроку`),
				regexp.MustCompile(`(?i)как\s+(?:описано|сказано)\s+в\s+уроке`),
			},
			"ar": {
				regexp.MustCompile(`في\s+هذا\s+الدرس`),
				regexp.MustCompile(`كما\s+ورد\s+في\s+الدرس`),
			},
			"hi": {
				regexp.MustCompile(`इस\s+पाठ\s+में`),
				regexp.MustCompile(`पाठ\s+के\s+अनुसार`),
			},
		},

		TemplateOpeners: []string{
			"what is the main idea of",
			"what is the most important thing",
			"which of the following best describes",
			"which of the following statements",
			"what did you learn",
			"what is the key takeaway",
			"¿cuál es la idea principal de",
			"quelle est l'idée principale de",
			"was ist die hauptidee von",
			"qual è l'idea principale di",
			"qual é a ideia principal de",
			"mi a fő gondolata",
			"каква е основната идея на",
			"какова основная идея",
		},

		GenericPhrases: []string{
			"the main idea of the text",
			"the most important concept",
			"основная идея текста",
			"la idea principal del texto",
		},

		GenericAnswers: []string{
			"all of the above",
			"none of the above",
			"it depends",
			"something else",
			"todas las anteriores",
			"ninguna de las anteriores",
			"toutes les réponses ci-dessus",
			"alle oben genannten",
			"tutte le precedenti",
			"todas as anteriores",
			"mindegyik fenti",
			"всички изброени",
			"все вышеперечисленное",
			"ничего из перечисленного",
		},

		TemplateAnswers: []string{
			"this is the correct answer",
			"the correct option",
			"a correct statement about the topic",
			"an incorrect statement about the topic",
			"это правильный ответ",
			"esta es la respuesta correcta",
		},

		Fragments: []string{
			"ing", "tion", "ness", "ment", "able",
			"ka", "ste", "ott", "ett",
		},

		LeakTokens: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bgoals\b`),
		},
	}
}
