package document

import (
	"strings"
	"testing"
)

const sampleDoc = `# Day 4: Objection handling

Prose the author owns. It must survive untouched.

## Bibliography

- old entry one
- old entry two

## Read more

- old pointer

---
`

func TestReplaceSection(t *testing.T) {
	out, err := ReplaceSection(sampleDoc, "## Bibliography", []string{"## Read more"}, "- new entry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "- new entry") {
		t.Error("replacement body missing")
	}
	if strings.Contains(out, "old entry one") {
		t.Error("old section content not removed")
	}
	if !strings.Contains(out, "Prose the author owns. It must survive untouched.") {
		t.Error("text before the section was modified")
	}
	if !strings.Contains(out, "- old pointer") {
		t.Error("text after the section was modified")
	}
	if !strings.Contains(out, "## Bibliography") || !strings.Contains(out, "## Read more") {
		t.Error("headers must be preserved")
	}
}

func TestReplaceSectionRoundTrip(t *testing.T) {
	body := "- entry A\n- entry B"
	out, err := ReplaceSection(sampleDoc, "## Bibliography", []string{"## Read more"}, body)
	if err != nil {
		t.Fatal(err)
	}
	got, err := SliceSection(out, "## Bibliography", "## Read more")
	if err != nil {
		t.Fatal(err)
	}
	if got != body {
		t.Errorf("round trip: got %q, want %q", got, body)
	}
}

func TestReplaceSectionMissingStartHeader(t *testing.T) {
	_, err := ReplaceSection(sampleDoc, "## Glossary", []string{"## Read more"}, "x")
	if err == nil {
		t.Fatal("expected error for missing start header")
	}
}

func TestReplaceSectionMissingEndHeader(t *testing.T) {
	_, err := ReplaceSection(sampleDoc, "## Bibliography", []string{"## Appendix"}, "x")
	if err == nil {
		t.Fatal("expected error for missing end header")
	}
}

func TestReplaceSectionEndHeaderBeforeStartFails(t *testing.T) {
	// "## Read more" occurs only before "## Bibliography" here: the closing
	// header must come after the opening one.
	doc := "## Read more\n\n- x\n\n## Bibliography\n\n- y\n"
	_, err := ReplaceSection(doc, "## Bibliography", []string{"## Read more"}, "z")
	if err == nil {
		t.Fatal("expected error when closing header only precedes the section")
	}
}

func TestReplaceSectionEarliestCandidateWins(t *testing.T) {
	doc := "## A\n\nbody\n\n## C\n\nmore\n\n## B\n\ntail\n"
	out, err := ReplaceSection(doc, "## A", []string{"## B", "## C"}, "new")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "## C\n\nmore") {
		t.Errorf("## C section should be untouched, got %q", out)
	}
}

func TestSliceSectionToEnd(t *testing.T) {
	got, err := SliceSection(sampleDoc, "## Read more", "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "- old pointer") {
		t.Errorf("got %q", got)
	}
}

func TestSliceSectionMissingHeader(t *testing.T) {
	if _, err := SliceSection(sampleDoc, "## Glossary", ""); err == nil {
		t.Fatal("expected error")
	}
}
