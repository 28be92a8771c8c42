// Package wordlist reads weighted word lists for the word cloud.
//
// The text format has one entry per line: a word (or a quoted phrase), an
// optional colon and an optional weight. Missing weights default to 1 and
// '#' starts a comment.
//
//	# languages
//	go 10
//	rust: 7.5
//	"new york" 4
//	haskell
//
// The JSON format is an array of {"text", "value"} objects.
package wordlist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/phanxgames/wordcloud"
)

// DefaultValue is the weight of an entry that has none.
const DefaultValue = 1

var (
	listLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.\d*|\.\d+|\d+)(?:[eE][-+]?\d+)?`},
		{Name: "Colon", Pattern: `:`},
		{Name: "Word", Pattern: `[^\s"#:]+`},
	})

	listParser = participle.MustBuild[list](
		participle.Lexer(listLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
	)
)

type list struct {
	Entries []*entry `parser:"( @@ | Newline )*"`
}

type entry struct {
	Pos   lexer.Position
	Text  string `parser:"@(String | Word | Number)"`
	Value string `parser:"( Colon? @Number )?"`
}

// Parse reads the text format.
func Parse(r io.Reader) ([]wordcloud.Word, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("wordlist: read: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes parses the text format from data.
func ParseBytes(data []byte) ([]wordcloud.Word, error) {
	doc, err := listParser.ParseBytes("", data)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	words := make([]wordcloud.Word, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		value := float64(DefaultValue)
		if e.Value != "" {
			value, err = strconv.ParseFloat(e.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("wordlist: %s: weight %q: %w", e.Pos, e.Value, err)
			}
		}
		text := strings.TrimSpace(e.Text)
		if text == "" {
			continue
		}
		words = append(words, wordcloud.Word{Text: text, Value: value})
	}
	return words, nil
}

// ParseJSON reads the JSON format.
func ParseJSON(r io.Reader) ([]wordcloud.Word, error) {
	var words []wordcloud.Word
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&words); err != nil {
		return nil, fmt.Errorf("wordlist: parse json: %w", err)
	}
	return words, nil
}

// ParseAuto parses data as JSON when it starts with '[' and as the text
// format otherwise.
func ParseAuto(data []byte) ([]wordcloud.Word, error) {
	if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '[' {
		return ParseJSON(bytes.NewReader(trimmed))
	}
	return ParseBytes(data)
}

// Load reads a word list file. Files ending in .json are JSON; anything else
// is detected with ParseAuto.
func Load(path string) ([]wordcloud.Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(bytes.NewReader(data))
	}
	return ParseAuto(data)
}
