package scandown_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/reformahtml/scandown"
)

func Example() {
	for _, line := range []string{
		"",
		"# A Header",
		"Some text",
		"* item",
		"12. ordered",
		": term",
		":: desc",
		"> quote",
		"---",
		"==",
		"~~~ lang",
		"   - indented item",
	} {
		fmt.Printf("%+v\n", scandown.ParseLine(line))
	}

	// Output:
	// Blank
	// Heading1 delim='#'
	// Paragraph
	// Item delim='*' width=1 content="item"
	// OrderedItem delim='.' width=2 ordinal=12 content="ordered"
	// DefTerm delim=':' width=1 content="term"
	// DefDesc delim=':' width=2 content="desc"
	// Blockquote delim='>' width=1
	// Ruler delim='-' width=3
	// Underline delim='=' width=2
	// Codefence delim='~' width=3
	// Item delim='-' width=1 indent="   " content="indented item"
}

func TestParseLine(t *testing.T) {
	for _, tc := range []struct {
		line string
		typ  scandown.BlockType
	}{
		{"   \t", scandown.Blank},
		{"plain words", scandown.Paragraph},
		{"*emphasis*", scandown.Paragraph},
		{"-", scandown.Paragraph},
		{"*", scandown.Paragraph},
		{"- item", scandown.Item},
		{"\t* item", scandown.Item},
		{"- - -", scandown.Item},
		{"+ not bikeshed", scandown.Paragraph},
		{"1. one", scandown.OrderedItem},
		{"1.one", scandown.Paragraph},
		{"1) paren", scandown.Paragraph},
		{"2024.", scandown.Paragraph},
		{":", scandown.DefTerm},
		{": term", scandown.DefTerm},
		{"::", scandown.DefDesc},
		{":: desc", scandown.DefDesc},
		{"::: many", scandown.Paragraph},
		{":x", scandown.Paragraph},
		{"###### six", scandown.Heading},
		{"####### seven", scandown.Paragraph},
		{"#hashtag", scandown.Paragraph},
		{"#", scandown.Paragraph},
		{">", scandown.Blockquote},
		{"> quoted", scandown.Blockquote},
		{">>", scandown.Paragraph},
		{"***", scandown.Ruler},
		{"_ _ _", scandown.Ruler},
		{"**", scandown.Paragraph},
		{"--", scandown.Underline},
		{"= = =", scandown.Underline},
		{"-=", scandown.Paragraph},
		{"```", scandown.Codefence},
		{"``", scandown.Paragraph},
		{"  ~~~~ info", scandown.Codefence},
		{"\r", scandown.Blank},
		{"---\r", scandown.Ruler},
		{"***\r", scandown.Ruler},
		{"===\r", scandown.Underline},
		{"--\r", scandown.Underline},
		{"- item\r", scandown.Item},
		{"#\r", scandown.Paragraph},
		{"```\r", scandown.Codefence},
	} {
		t.Run(fmt.Sprintf("%q", tc.line), func(t *testing.T) {
			assert.Equal(t, tc.typ, scandown.ParseLine(tc.line).Type)
		})
	}
}

func TestBlock_MarkString(t *testing.T) {
	for _, tc := range []struct {
		line string
		mark string
	}{
		{"*   spaced   out", "* "},
		{"  -\titem", "  - "},
		{"007. bond", "007. "},
		{":", ":"},
		{":  ", ":"},
		{"  :: desc", "  :: "},
		{"plain", "!ERROR(invalid container block type Paragraph)"},
	} {
		t.Run(fmt.Sprintf("%q", tc.line), func(t *testing.T) {
			b := scandown.ParseLine(tc.line)
			assert.Equal(t, tc.mark, b.MarkString())
			assert.Equal(t, "> "+tc.mark, string(b.AppendMark([]byte("> "))))
			assert.Equal(t, tc.mark, string(b.AppendMark(nil)))
		})
	}
}

func TestBlock_Closes(t *testing.T) {
	ticks := scandown.ParseLine("````go")
	assert.True(t, ticks.Closes("````"))
	assert.True(t, ticks.Closes("  `````  "))
	assert.False(t, ticks.Closes("```"), "shorter than opener")
	assert.False(t, ticks.Closes("~~~~"), "different delimiter")
	assert.False(t, ticks.Closes("```` go"), "trailing info")
	assert.True(t, ticks.Closes("````\r"), "CRLF line ending")
	assert.False(t, ticks.Closes("```\r"), "shorter than opener, CRLF")

	para := scandown.ParseLine("````x")
	assert.Equal(t, scandown.Codefence, para.Type)
	assert.False(t, scandown.ParseLine("text").Closes("```"))
}

func TestIsLazyContinuation(t *testing.T) {
	assert.True(t, scandown.IsLazyContinuation("  more words"))
	assert.False(t, scandown.IsLazyContinuation(""))
	assert.False(t, scandown.IsLazyContinuation("* next"))
	assert.False(t, scandown.IsLazyContinuation(":: desc"))
	assert.False(t, scandown.IsLazyContinuation("==="))
	assert.False(t, scandown.IsLazyContinuation("```"))
}
