package course

import "testing"

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Hello   World  ", "hello world"},
		{"Hello\tWorld\n", "hello world"},
		{"ЧТО ДЕЛАТЬ", "что делать"},
		{"same", "same"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeText(tc.in); got != tc.want {
			t.Errorf("NormalizeText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestReadMoreKeyPrefersURL(t *testing.T) {
	withURL := SourceItem{Title: "Deep Work", URL: "https://example.com/deep-work"}
	if got := ReadMoreKey(withURL); got != "https://example.com/deep-work" {
		t.Errorf("got %q", got)
	}

	withoutURL := SourceItem{Title: "  Deep   Work "}
	if got := ReadMoreKey(withoutURL); got != "deep work" {
		t.Errorf("got %q", got)
	}
}
