package assemble

// Config fixes the document conventions the assembler writes. The headers
// must match the package export byte-for-byte: section surgery is plain
// substring search, so a renamed header in the export is a hard error, not
// a fuzzy match.
type Config struct {
	// BibliographyHeader opens the machine-owned bibliography section.
	BibliographyHeader string
	// ReadMoreHeader opens the machine-owned read-more section and also
	// closes the bibliography section.
	ReadMoreHeader string
	// SectionEnders are candidate closers for the read-more section, in
	// addition to the document terminator.
	SectionEnders []string
	// Terminator closes the final machine-owned section of each lesson
	// document. The assembler appends one if the source document lacks it.
	Terminator string
}

// DefaultConfig returns the export document conventions.
func DefaultConfig() Config {
	return Config{
		BibliographyHeader: "## Bibliography",
		ReadMoreHeader:     "## Read more",
		SectionEnders:      []string{"\n## ", "\n# "},
		Terminator:         "\n---\n",
	}
}
