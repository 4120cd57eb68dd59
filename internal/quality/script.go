package quality

import "unicode"

// expectedScript maps language codes with a non-Latin writing system to the
// Unicode script their content is expected to be written in. Languages not
// listed are Latin-script and skip the consistency gate.
var expectedScript = map[string]*unicode.RangeTable{
	"bg": unicode.Cyrillic,
	"ru": unicode.Cyrillic,
	"ar": unicode.Arabic,
	"hi": unicode.Devanagari,
}

// scriptRatio returns the fraction of letters in text that belong to the
// given script. Non-letter runes (digits, punctuation, spaces) are ignored.
// A text with no letters at all returns 1 so empty and purely numeric
// snippets do not trip the gate.
func scriptRatio(text string, script *unicode.RangeTable) float64 {
	var letters, inScript int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(script, r) {
			inScript++
		}
	}
	if letters == 0 {
		return 1
	}
	return float64(inScript) / float64(letters)
}

// longestLatinRun returns the length of the longest run of consecutive
// Latin-script letters in text. Machine-translation fallbacks tend to leave
// whole source words behind, which show up as long Latin runs inside
// otherwise non-Latin text.
func longestLatinRun(text string) int {
	var run, longest int
	for _, r := range text {
		if unicode.Is(unicode.Latin, r) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}
