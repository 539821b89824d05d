package cliutil

import (
	"bytes"
	"io"
)

// WriteBuffer combines a byte buffer with a destination writer and flush
// policy, so that output may be produced in small writes but reaches its
// destination in whole line chunks.
//
// 	var buf WriteBuffer
// 	buf.To = os.Stdout
// 	for _, tok := range toks {
// 		fmt.Fprintln(&buf, tok)
// 		if err := buf.MaybeFlush(); err != nil {
// 			return err
// 		}
// 	}
// 	return buf.Flush()
type WriteBuffer struct {
	FlushPolicy
	To io.Writer
	bytes.Buffer
}

// FlushPolicy determines how many buffered bytes a WriteBuffer should flush
// before its final Flush.
type FlushPolicy interface {
	ShouldFlush(b []byte) int
}

// FlushPolicyFunc adapts an ordinary function into a FlushPolicy.
type FlushPolicyFunc func(b []byte) int

// ShouldFlush calls f.
func (f FlushPolicyFunc) ShouldFlush(b []byte) int { return f(b) }

// Flush writes all buffered bytes regardless of FlushPolicy.
func (buf *WriteBuffer) Flush() error {
	_, err := buf.WriteTo(buf.To)
	return err
}

// MaybeFlush writes however many bytes FlushPolicy asks for, discarding the
// ones written from the buffer. A nil FlushPolicy means FlushLineChunks.
func (buf *WriteBuffer) MaybeFlush() error {
	if buf.FlushPolicy == nil {
		buf.FlushPolicy = FlushPolicyFunc(FlushLineChunks)
	}
	b := buf.Bytes()
	if n := buf.ShouldFlush(b); n > 0 {
		m, err := buf.To.Write(b[:n])
		buf.Next(m)
		return err
	}
	return nil
}

// FlushLineChunks is a FlushPolicyFunc that flushes through the last newline.
func FlushLineChunks(b []byte) int {
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// ErrWriter wraps a writer, retaining its first error and refusing any
// further writes after it.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer while Err is nil.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// PrefixWriter prepends Prefix to every line written through it.
// Close it to flush any partial final line.
type PrefixWriter struct {
	// Prefix may be changed between writes; it takes effect at the next line.
	Prefix string

	// Skip suppresses the prefix on the next line only, for a caller that
	// already wrote its own lead-in to the underlying writer.
	Skip bool

	buf WriteBuffer
	mid bool
}

// NewPrefixWriter returns a PrefixWriter writing to w.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	p := &PrefixWriter{Prefix: prefix}
	p.buf.To = w
	return p
}

// Write buffers b with a prefix at the start of each line, flushing any
// complete lines.
func (p *PrefixWriter) Write(b []byte) (n int, err error) {
	for len(b) > 0 {
		if !p.mid {
			if p.Skip {
				p.Skip = false
			} else {
				p.buf.WriteString(p.Prefix)
			}
		}
		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			line = b[:i+1]
		}
		b = b[len(line):]
		m, _ := p.buf.Write(line)
		n += m
		p.mid = line[len(line)-1] != '\n'
	}
	return n, p.buf.MaybeFlush()
}

// Flush writes any buffered partial line.
func (p *PrefixWriter) Flush() error { return p.buf.Flush() }

// Close flushes; it does not close the underlying writer.
func (p *PrefixWriter) Close() error { return p.buf.Flush() }

// WriteLines calls next around an internal WriteBuffer until it returns false,
// flushing whole lines after each call. Iteration stops early on the first
// write error, which is returned.
func WriteLines(to io.Writer, next func(w io.Writer, flush func()) bool) error {
	ew, _ := to.(*ErrWriter)
	if ew == nil {
		ew = &ErrWriter{Writer: to}
	}
	var buf WriteBuffer
	buf.To = ew
	for ew.Err == nil && next(&buf, func() { buf.Flush() }) {
		buf.MaybeFlush()
	}
	buf.Flush()
	return ew.Err
}
