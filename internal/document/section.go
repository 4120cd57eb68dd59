// Package document performs targeted surgery on named, header-delimited
// sections inside long-form lesson text. The document as a whole is treated
// as an opaque blob: only the span strictly between two headers is touched,
// so author-edited prose elsewhere survives byte-for-byte.
package document

import (
	"fmt"
	"strings"
)

// ReplaceSection replaces everything strictly between the first occurrence
// of startHeader and the earliest following occurrence of any header in
// endHeaders. Both headers and all surrounding text are preserved exactly.
// The replacement body is framed with blank lines so the headers stay on
// their own lines.
//
// A missing startHeader, or none of endHeaders occurring after it, is a
// hard error: a partial document must never be produced by a silent no-op.
func ReplaceSection(doc, startHeader string, endHeaders []string, body string) (string, error) {
	start := strings.Index(doc, startHeader)
	if start < 0 {
		return "", fmt.Errorf("section header %q not found", startHeader)
	}
	contentStart := start + len(startHeader)

	end := -1
	for _, h := range endHeaders {
		if h == "" {
			continue
		}
		if idx := strings.Index(doc[contentStart:], h); idx >= 0 {
			abs := contentStart + idx
			if end < 0 || abs < end {
				end = abs
			}
		}
	}
	if end < 0 {
		return "", fmt.Errorf("no closing header after %q (candidates: %s)", startHeader, strings.Join(endHeaders, ", "))
	}

	var b strings.Builder
	b.Grow(len(doc) + len(body))
	b.WriteString(doc[:contentStart])
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n\n")
	b.WriteString(doc[end:])
	return b.String(), nil
}

// SliceSection extracts the span strictly between the first occurrence of
// startHeader and the first following occurrence of endHeader, without
// modifying the document. An empty endHeader slices to the end of the
// document. Used by the auditor to inspect machine-owned sections.
func SliceSection(doc, startHeader, endHeader string) (string, error) {
	start := strings.Index(doc, startHeader)
	if start < 0 {
		return "", fmt.Errorf("section header %q not found", startHeader)
	}
	contentStart := start + len(startHeader)

	if endHeader == "" {
		return strings.TrimSpace(doc[contentStart:]), nil
	}
	idx := strings.Index(doc[contentStart:], endHeader)
	if idx < 0 {
		return "", fmt.Errorf("closing header %q not found after %q", endHeader, startHeader)
	}
	return strings.TrimSpace(doc[contentStart : contentStart+idx]), nil
}
