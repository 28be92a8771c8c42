package wordlist

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/phanxgames/wordcloud"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []wordcloud.Word
	}{
		{"empty", "", []wordcloud.Word{}},
		{"single", "go 10", []wordcloud.Word{{Text: "go", Value: 10}}},
		{"colon", "rust: 7.5", []wordcloud.Word{{Text: "rust", Value: 7.5}}},
		{"default weight", "haskell", []wordcloud.Word{{Text: "haskell", Value: 1}}},
		{"quoted phrase", `"new york" 4`, []wordcloud.Word{{Text: "new york", Value: 4}}},
		{"escaped quote", `"say \"hi\"" 2`, []wordcloud.Word{{Text: `say "hi"`, Value: 2}}},
		{"numeric word", "2024 3", []wordcloud.Word{{Text: "2024", Value: 3}}},
		{"symbols", "c++ 2\nc# 1", []wordcloud.Word{{Text: "c++", Value: 2}, {Text: "c", Value: 1}}},
		{
			"comments and blank lines",
			"# header\n\ngo 3 # trailing\n\n  zig  \n",
			[]wordcloud.Word{{Text: "go", Value: 3}, {Text: "zig", Value: 1}},
		},
		{
			"keeps order",
			"b 1\na 2\nc 3",
			[]wordcloud.Word{{Text: "b", Value: 1}, {Text: "a", Value: 2}, {Text: "c", Value: 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Parse = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseTextErrors(t *testing.T) {
	for _, input := range []string{`"unterminated 3`, "go : : 3"} {
		if _, err := ParseBytes([]byte(input)); err == nil {
			t.Errorf("ParseBytes(%q) should fail", input)
		}
	}
}

func TestParseJSON(t *testing.T) {
	got, err := ParseJSON(strings.NewReader(`[{"text":"go","value":10},{"text":"rust","value":2.5}]`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	want := []wordcloud.Word{{Text: "go", Value: 10}, {Text: "rust", Value: 2.5}}
	if !slices.Equal(got, want) {
		t.Errorf("ParseJSON = %v, want %v", got, want)
	}
	if _, err := ParseJSON(strings.NewReader(`[{"word":"go"}]`)); err == nil {
		t.Error("unknown fields should be rejected")
	}
}

func TestParseAuto(t *testing.T) {
	got, err := ParseAuto([]byte("  \n[{\"text\":\"a\",\"value\":1}]"))
	if err != nil || len(got) != 1 || got[0].Text != "a" {
		t.Errorf("ParseAuto JSON = %v, %v", got, err)
	}
	got, err = ParseAuto([]byte("a 1\nb 2"))
	if err != nil || len(got) != 2 {
		t.Errorf("ParseAuto text = %v, %v", got, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "words.txt")
	js := filepath.Join(dir, "words.json")
	if err := os.WriteFile(txt, []byte("go 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(js, []byte(`[{"text":"go","value":2}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{txt, js} {
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", path, err)
		}
		if len(got) != 1 || got[0] != (wordcloud.Word{Text: "go", Value: 2}) {
			t.Errorf("Load(%s) = %v", path, got)
		}
	}
	if _, err := Load(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
