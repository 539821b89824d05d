package reformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendPlain(t *testing.T) {
	assert.Equal(t, "a b", string(appendPlain(nil, "a\nb")))
	assert.Equal(t, "a b", string(appendPlain(nil, "a  \n\t b")))
	assert.Equal(t, "a  b\tc", string(appendPlain(nil, "a  b\tc")))
	assert.Equal(t, " a ", string(appendPlain(nil, "\r\na\n")))
}

func TestAppendMarkdown(t *testing.T) {
	for _, tc := range []struct {
		name, in, out string
	}{
		{"single line kept", "  lone line  ", "  lone line  "},
		{"paragraph", "one  \n  two\nthree\n", "one two three\n"},
		{"no final newline", "one\ntwo", "one two"},
		{"ordered", "3. x\n   y\n", "3. x y\n"},
		{"bullet spacing", "-    wide\n", "- wide\n"},
		{"quote", "> a\n> b\n", "> a\n> b\n"},
		{"heading", "para\n# Head\nmore\n", "para\n# Head\nmore\n"},
		{"ruler", "a\n***\nb\n", "a\n***\nb\n"},
		{"ruler after item", "* x\n---\n", "* x\n---\n"},
		{"dangling underline", "\n--\nnext\n", "\n-- next\n"},
		{"unclosed fence", "~~~\n a\n\n b", "~~~\n a\n\n b"},
		{"item stops at fence", "* x\n```\ny\n```\n", "* x\n```\ny\n```\n"},
		{"empty definition", ":\n  term text\n", ": term text\n"},
		{"crlf paragraph", "one\r\ntwo\r\n", "one two\r\n"},
		{"crlf item", "* x\r\n  y\r\n", "* x y\r\n"},
		{"crlf ruler", "a\r\n---\r\nb\r\n", "a\r\n---\r\nb\r\n"},
		{"crlf star ruler", "a\r\n***\r\nb\r\n", "a\r\n***\r\nb\r\n"},
		{"crlf underline", "Title\r\n===\r\nbody\r\n", "Title\r\n===\r\nbody\r\n"},
		{"crlf fence closes", "```\r\n a\r\n```\r\n* x\r\n  y\r\n", "```\r\n a\r\n```\r\n* x y\r\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, string(appendMarkdown(nil, text(tc.in))))
		})
	}
}


func TestChomp(t *testing.T) {
	for _, tc := range []struct {
		in, line, eol text
	}{
		{"", "", ""},
		{"a", "a", ""},
		{"a\n", "a", "\n"},
		{"a\r\n", "a", "\r\n"},
		{"a\r", "a\r", ""},
		{"\r\n", "", "\r\n"},
	} {
		line, eol := tc.in.chomp()
		assert.Equal(t, tc.line, line, "line of %q", tc.in)
		assert.Equal(t, tc.eol, eol, "eol of %q", tc.in)
	}
}
