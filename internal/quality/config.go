package quality

// Config controls the validator: which checks run, against which pattern
// set, and all tunable thresholds. The thresholds carry the values the
// content team calibrated in production; none of them is load-bearing
// beyond that, so alternate deployments may tune them freely.
type Config struct {
	// Checks is the ordered list of checks run on every question. All
	// checks always run; a failure never short-circuits the rest, so the
	// author sees every problem at once.
	Checks []Check

	Patterns *PatternSet

	// MinQuestionRunes is the length a question text must exceed to carry
	// enough scenario context.
	MinQuestionRunes int

	// MinOptionRunes is the length an option must exceed to count as an
	// educational distractor.
	MinOptionRunes int

	// ShortOptionRunes is the threshold below which an option additionally
	// draws a likely-low-value warning.
	ShortOptionRunes int

	// MinQuotedRunes is the shortest token that may appear in quotes.
	MinQuotedRunes int

	// ScriptRatioFloor is the minimum fraction of letters that must belong
	// to the declared language's script.
	ScriptRatioFloor float64

	// MaxLatinRun is the longest run of Latin letters tolerated inside
	// non-Latin-script content.
	MaxLatinRun int

	// MinSetSize is the minimum number of questions per lesson.
	MinSetSize int

	// MinApplication is the minimum number of application questions per
	// lesson (hard).
	MinApplication int

	// RecommendedCritical is the recommended number of critical-thinking
	// questions per lesson (soft: below it is a warning, not an error).
	RecommendedCritical int
}

// DefaultConfig returns the standard check chain and production thresholds.
func DefaultConfig() Config {
	return Config{
		Checks: []Check{
			&CognitiveTypeCheck{},
			&TypeDifficultyCheck{},
			&SelfContainmentCheck{},
			&SnippetLeakCheck{},
			&CrossLanguageLeakCheck{},
			&RichnessCheck{},
			&TemplateOpenerCheck{},
			&FragmentQuoteCheck{},
			&PlaceholderAnswerCheck{},
			&OptionShapeCheck{},
			&ScriptConsistencyCheck{},
			&SoftHeuristicsCheck{},
		},
		Patterns:            DefaultPatternSet(),
		MinQuestionRunes:    40,
		MinOptionRunes:      25,
		ShortOptionRunes:    10,
		MinQuotedRunes:      4,
		ScriptRatioFloor:    0.25,
		MaxLatinRun:         10,
		MinSetSize:          7,
		MinApplication:      5,
		RecommendedCritical: 2,
	}
}
