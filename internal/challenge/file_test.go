package challenge

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTableFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "challenges.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write table file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeTableFile(t, `
challenges:
  - id: 1
    text: Say hello to a neighbor.
    category: warm
    difficulty: 1
  - id: 2
    text: Ask someone about their weekend.
    category: connection
    difficulty: 2
`)
	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("len=%d, want 2", len(table))
	}
	if table[0].Category != CategoryWarm || table[1].Difficulty != 2 {
		t.Fatalf("unexpected table: %+v", table)
	}
}

func TestLoadFileRejectsBadTables(t *testing.T) {
	cases := map[string]string{
		"empty": `challenges: []`,
		"bad category": `
challenges:
  - id: 1
    text: Hello.
    category: bravery
    difficulty: 1
`,
		"bad difficulty": `
challenges:
  - id: 1
    text: Hello.
    category: warm
    difficulty: 4
`,
		"missing text": `
challenges:
  - id: 1
    category: warm
    difficulty: 1
`,
		"duplicate id": `
challenges:
  - id: 1
    text: Hello.
    category: warm
    difficulty: 1
  - id: 1
    text: Hi again.
    category: warm
    difficulty: 1
`,
		"not yaml": `{{{`,
	}
	for name, content := range cases {
		if _, err := LoadFile(writeTableFile(t, content)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
