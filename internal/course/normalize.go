package course

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeText collapses runs of whitespace to single spaces, trims, and
// case-folds. Two question texts that normalize equal are treated as
// duplicates everywhere in the pipeline (within a lesson and across the
// whole package).
func NormalizeText(s string) string {
	collapsed := strings.Join(strings.Fields(s), " ")
	// cases.Caser carries state, so a fresh one per call; text volumes here
	// are tiny.
	return cases.Fold().String(collapsed)
}

// ReadMoreKey derives the uniqueness key for a read-more reference: the URL
// when present, otherwise the normalized title.
func ReadMoreKey(s SourceItem) string {
	if s.URL != "" {
		return s.URL
	}
	return NormalizeText(s.Title)
}
