package reformat_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/reformahtml/internal/scanio"
	. "github.com/jcorbin/reformahtml/reformat"
)

func ExampleScanner() {
	sc := NewScanner([]byte("a<b>c<!-- d -->\n<pre>x<y</pre>\n<!-- e -->\n"))
	for sc.Scan() {
		fmt.Printf("%+v %q\n", sc.Token(), sc.Bytes())
	}

	// Output:
	// Text@0:1 "a"
	// Tag@1:4 "<b>"
	// Text@4:5 "c"
	// Comment@5:15 "<!-- d -->"
	// Text@15:16 "\n"
	// Tag@16:21 "<pre>"
	// RawText@21:24 "x<y"
	// Tag@24:30 "</pre>"
	// Text@30:31 "\n"
	// Comment@31:41 standalone "<!-- e -->"
	// Text@41:42 "\n"
}

func TestScanner_lossless(t *testing.T) {
	for _, in := range append([]string{
		"<p class='a > b'>x</p>",
		"<textarea><b></textarea>",
		"<style>a</b>c</style>tail",
		"<script>never closed",
		"<xmp></xmp><wpt>\n</WPT>",
	}, oddInputs...) {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			var buf bytes.Buffer
			sc := NewScanner([]byte(in))
			_, err := scanio.CopyScanner(&buf, sc)
			require.NoError(t, err)
			require.NoError(t, scanio.ScanError(sc))
			assert.Equal(t, in, buf.String())
		})
	}
}

func TestScanner_rawText(t *testing.T) {
	var kinds []string
	sc := NewScanner([]byte("<style>a</b>c</style>d"))
	for sc.Scan() {
		kinds = append(kinds, fmt.Sprintf("%v:%s", sc.Token().Kind, sc.Bytes()))
	}
	assert.Equal(t, []string{
		"Tag:<style>",
		"RawText:a</b>c",
		"Tag:</style>",
		"Text:d",
	}, kinds)
}

func TestScanner_Reset(t *testing.T) {
	sc := NewScanner([]byte("<pre>unterminated"))
	for sc.Scan() {
	}
	assert.Equal(t, 17, sc.Offset())

	sc.Reset([]byte("<b>x"))
	require.True(t, sc.Scan())
	assert.Equal(t, TagToken, sc.Token().Kind)
	require.True(t, sc.Scan())
	assert.Equal(t, TextToken, sc.Token().Kind, "raw text state must not survive Reset")
	assert.False(t, sc.Scan())
}

func TestParseTag(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out string
	}{
		{"<div>", "<div>"},
		{"<DIV class=x>", "<DIV>"},
		{"</ p >", "</p>"},
		{"<br/>", "<br/>"},
		{"<br />", "<br/>"},
		{"<img src=x / >", "<img/>"},
		{"<a/>", "<a/>"},
		{"<svg:rect>", "<svg:rect>"},
		{"<!DOCTYPE html>", "<>"},
		{"<?xml version=\"1.0\"?>", "<>"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.out, fmt.Sprint(ParseTag([]byte(tc.in))))
		})
	}
}

func TestClassification(t *testing.T) {
	assert.True(t, IsInline([]byte("SPAN")))
	assert.True(t, IsInline([]byte("ref")))
	assert.False(t, IsInline([]byte("div")))
	assert.True(t, IsVoid([]byte("Br")))
	assert.False(t, IsVoid([]byte("p")))
	assert.True(t, IsRawText([]byte("wpt")))
	assert.True(t, IsRawText([]byte("XMP")))
	assert.True(t, IsStructural([]byte("foreignObject")))
	assert.True(t, IsStructural([]byte("h6")))
	assert.True(t, IsStructural([]byte("pre")))
	assert.False(t, IsStructural([]byte("span")))
	assert.False(t, IsStructural(nil))
}
