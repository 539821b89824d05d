package cliutil_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jcorbin/reformahtml/internal/cliutil"
)

func TestPrefixWriter(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("> ", &out)

	io.WriteString(pw, "one\ntw")
	assert.Equal(t, "> one\n", out.String(), "partial line stays buffered")

	io.WriteString(pw, "o\nthree")
	require.NoError(t, pw.Close())
	assert.Equal(t, "> one\n> two\n> three", out.String())
}

func TestPrefixWriter_skipAndChange(t *testing.T) {
	var out bytes.Buffer
	io.WriteString(&out, "1. ")
	pw := NewPrefixWriter("   ", &out)
	pw.Skip = true
	io.WriteString(pw, "first\nsecond\n")
	pw.Prefix = "   log: "
	io.WriteString(pw, "third\n")
	require.NoError(t, pw.Close())
	assert.Equal(t, "1. first\n   second\n   log: third\n", out.String())
}

type failWriter struct{ after int }

func (fw *failWriter) Write(p []byte) (int, error) {
	if fw.after <= 0 {
		return 0, errors.New("nope")
	}
	fw.after--
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	ew := &ErrWriter{Writer: &failWriter{after: 1}}
	_, err := io.WriteString(ew, "a")
	assert.NoError(t, err)
	_, err = io.WriteString(ew, "b")
	assert.EqualError(t, err, "nope")
	n, err := io.WriteString(ew, "c")
	assert.Equal(t, 0, n)
	assert.EqualError(t, err, "nope")
}

func TestWriteLines(t *testing.T) {
	var out bytes.Buffer
	i := 0
	require.NoError(t, WriteLines(&out, func(w io.Writer, _ func()) bool {
		if i++; i > 3 {
			return false
		}
		fmt.Fprintf(w, "line %v\n", i)
		return true
	}))
	assert.Equal(t, "line 1\nline 2\nline 3\n", out.String())

	calls := 0
	err := WriteLines(&failWriter{}, func(w io.Writer, _ func()) bool {
		calls++
		io.WriteString(w, "x\n")
		return true
	})
	assert.EqualError(t, err, "nope")
	assert.Equal(t, 1, calls, "stops after the first write error")
}

func TestFlushLineChunks(t *testing.T) {
	assert.Equal(t, 0, FlushLineChunks([]byte("abc")))
	assert.Equal(t, 4, FlushLineChunks([]byte("a\nb\ncd")))
}
