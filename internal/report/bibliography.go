package report

import (
	"fmt"
	"strings"

	"github.com/openlearn/coursepack/internal/course"
	"github.com/openlearn/coursepack/internal/document"
)

// RenderBibliographyDigest produces the bibliography-only digest: each
// lesson's bibliography and read-more sections, sliced straight out of the
// lesson documents so the digest can never drift from what is shipped.
func RenderBibliographyDigest(pkg *course.Package, title, bibliographyHeader, readMoreHeader string) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s: bibliography digest\n", title)
	for i, lesson := range pkg.Lessons {
		bib, err := document.SliceSection(lesson.Content, bibliographyHeader, readMoreHeader)
		if err != nil {
			return "", fmt.Errorf("lesson %d: %w", i+1, err)
		}
		readMore, err := document.SliceSection(lesson.Content, readMoreHeader, "")
		if err != nil {
			return "", fmt.Errorf("lesson %d: %w", i+1, err)
		}

		fmt.Fprintf(&b, "\n## Day %d: %s\n\n", lesson.Day, lesson.Title)
		b.WriteString(bib)
		b.WriteString("\n\nRead more:\n")
		// Keep only the entry line; the slice may carry the trailing
		// document terminator.
		for _, line := range strings.Split(readMore, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "- ") {
				b.WriteString(strings.TrimSpace(line))
				b.WriteString("\n")
				break
			}
		}
	}

	return b.String(), nil
}
