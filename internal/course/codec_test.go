package course

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const minimalPackage = `{
  "lessons": [
    {
      "id": "l1",
      "day": 1,
      "language": "en",
      "title": "Discovery",
      "content": "## Bibliography\n\n- [A](https://a)\n\n## Read more\n\n- [B](https://b)\n\n---\n",
      "questions": []
    }
  ]
}`

func TestParsePackage(t *testing.T) {
	pkg, err := ParsePackage([]byte(minimalPackage))
	require.NoError(t, err)
	if len(pkg.Lessons) != 1 || pkg.Lessons[0].Day != 1 {
		t.Errorf("unexpected package: %+v", pkg)
	}
}

func TestParsePackageRejectsInvalidJSON(t *testing.T) {
	_, err := ParsePackage([]byte("{not json"))
	require.Error(t, err)
}

func TestParsePackageRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"missing lessons":  `{}`,
		"missing day":      `{"lessons":[{"id":"x","language":"en","title":"t","content":"","questions":[]}]}`,
		"unknown field":    `{"lessons":[],"extra":true}`,
		"negative day":     `{"lessons":[{"id":"x","day":-1,"language":"en","title":"t","content":"","questions":[]}]}`,
		"question no text": `{"lessons":[{"id":"x","day":1,"language":"en","title":"t","content":"","questions":[{"options":[],"correct_option":0,"cognitive_type":"application","difficulty":"easy"}]}]}`,
	}
	for name, raw := range cases {
		if _, err := ParsePackage([]byte(raw)); err == nil {
			t.Errorf("%s: expected schema error", name)
		} else if !strings.Contains(err.Error(), "schema") {
			t.Errorf("%s: expected schema error, got %v", name, err)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	pkg, err := ParsePackage([]byte(minimalPackage))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, SavePackage(path, pkg))
	loaded, err := LoadPackage(path)
	require.NoError(t, err)
	if len(loaded.Lessons) != 1 || loaded.Lessons[0].Title != "Discovery" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}
