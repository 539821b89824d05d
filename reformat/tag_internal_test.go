package reformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasNoReformat(t *testing.T) {
	for _, tc := range []struct {
		tag  string
		want bool
	}{
		{`<div data-noreformat>`, true},
		{`<div DATA-NoReformat="">`, true},
		{`<div class=a data-noreformat>`, true},
		{`<div x='a b' data-noreformat/>`, true},
		{`<div "junk" data-noreformat>`, true},
		{`<div title="data-noreformat">`, false},
		{`<div data-noreformat-x>`, false},
		{`<div x= >`, false},
		{`<div>`, false},
		{`<`, false},
	} {
		t.Run(tc.tag, func(t *testing.T) {
			assert.Equal(t, tc.want, hasNoReformat([]byte(tc.tag)))
		})
	}
}

func TestAppendNormalizedTag(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{"<p>", "<p>"},
		{"< p  >", "<p>"},
		{"<a\thref='x'\r\n  id=y>", "<a href='x' id=y>"},
		{"<a href =\n'x'>", "<a href ='x'>"},
		{"<a title='  keep  '>", "<a title='  keep  '>"},
		{"<a title=\"one \n two\">", "<a title=\"one two\">"},
		{"<br />", "<br />"},
		{"<>", "<>"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			out := string(appendNormalizedTag(nil, []byte(tc.in)))
			assert.Equal(t, tc.out, out)
			assert.Equal(t, tc.out, string(appendNormalizedTag(nil, []byte(out))), "must be stable")
		})
	}
}
