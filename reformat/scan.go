package reformat

import (
	"bytes"
	"strings"
)

// TokenKind identifies the kind of a Token.
type TokenKind int

// Token kinds produced by Scanner.
const (
	// TextToken is character data between markup.
	TextToken TokenKind = iota + 1

	// TagToken is a start or end tag, from '<' through its closing '>'.
	TagToken

	// CommentToken is a terminated <!-- ... --> comment.
	CommentToken

	// RawTextToken is the content of a raw text element (pre, script, ...)
	// up to its literal end tag, which is scanned next as a TagToken.
	RawTextToken

	// RemainderToken is everything after an unterminated tag or comment.
	RemainderToken
)

// Token is one lexical unit, addressed as a byte range of the source.
type Token struct {
	Kind       TokenKind
	Start, End int

	// Standalone is set on CommentToken tokens that occupy their own line: only
	// spaces or tabs before them on their line and a newline right after.
	Standalone bool
}

// Scanner splits an HTML source into a lossless token stream: concatenating
// the bytes of every scanned token reproduces the source.
//
// Scanner tracks open raw text elements itself, since their content ends only
// at a literal matching end tag.
type Scanner struct {
	src []byte
	pos int
	tok Token
	raw []string
}

// NewScanner returns a Scanner reading src.
func NewScanner(src []byte) *Scanner {
	var sc Scanner
	sc.Reset(src)
	return &sc
}

// Reset rewinds the scanner to the start of src.
func (sc *Scanner) Reset(src []byte) {
	sc.src = src
	sc.pos = 0
	sc.tok = Token{}
	sc.raw = sc.raw[:0]
}

// Token returns the most recently scanned token.
func (sc *Scanner) Token() Token { return sc.tok }

// Bytes returns the source bytes of the most recently scanned token.
func (sc *Scanner) Bytes() []byte { return sc.src[sc.tok.Start:sc.tok.End] }

// Offset returns the source offset where the next token will start.
func (sc *Scanner) Offset() int { return sc.pos }

// Err always returns nil; scanning an in-memory source cannot fail.
func (sc *Scanner) Err() error { return nil }

// Scan advances to the next token, returning false at the end of the source.
func (sc *Scanner) Scan() bool {
	if sc.pos >= len(sc.src) {
		sc.tok = Token{}
		return false
	}
	start := sc.pos

	if len(sc.raw) > 0 {
		name := sc.raw[len(sc.raw)-1]
		lt, gt := findRawTextEnd(sc.src, start, name)
		switch {
		case lt < 0:
			sc.emit(Token{Kind: RawTextToken, Start: start, End: len(sc.src)})
		case lt > start:
			sc.emit(Token{Kind: RawTextToken, Start: start, End: lt})
		default:
			sc.raw = sc.raw[:len(sc.raw)-1]
			sc.emit(Token{Kind: TagToken, Start: start, End: gt + 1})
		}
		return true
	}

	if bytes.HasPrefix(sc.src[start:], commentOpen) {
		if end, standalone := scanComment(sc.src, start); end < 0 {
			sc.emit(Token{Kind: RemainderToken, Start: start, End: len(sc.src)})
		} else {
			sc.emit(Token{Kind: CommentToken, Start: start, End: end + len(commentClose), Standalone: standalone})
		}
		return true
	}

	if sc.src[start] == '<' {
		gt := findTagEnd(sc.src, start)
		if gt < 0 {
			sc.emit(Token{Kind: RemainderToken, Start: start, End: len(sc.src)})
			return true
		}
		sc.emit(Token{Kind: TagToken, Start: start, End: gt + 1})
		if t := ParseTag(sc.src[start : gt+1]); !t.End && !t.SelfClosing && IsRawText(t.Name) {
			sc.raw = append(sc.raw, strings.ToLower(string(t.Name)))
		}
		return true
	}

	end := len(sc.src)
	if i := bytes.IndexByte(sc.src[start:], '<'); i >= 0 {
		end = start + i
	}
	sc.emit(Token{Kind: TextToken, Start: start, End: end})
	return true
}

func (sc *Scanner) emit(tok Token) {
	sc.tok = tok
	sc.pos = tok.End
}

// skip consumes n bytes following the current token without producing a
// token for them.
func (sc *Scanner) skip(n int) {
	if sc.pos += n; sc.pos > len(sc.src) {
		sc.pos = len(sc.src)
	}
}

var (
	commentOpen  = []byte("<!--")
	commentClose = []byte("-->")
)

// findTagEnd returns the index of the '>' closing the tag that opens at
// src[lt], skipping over quoted attribute values, or -1 if there is none.
func findTagEnd(src []byte, lt int) int {
	var quote byte
	for i := lt + 1; i < len(src); i++ {
		switch c := src[i]; {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return i
		}
	}
	return -1
}

// scanComment finds the "-->" terminating the comment opened at src[lt],
// returning the index of its first '-' or -1 if unterminated.
func scanComment(src []byte, lt int) (end int, standalone bool) {
	i := bytes.Index(src[lt+len(commentOpen):], commentClose)
	if i < 0 {
		return -1, false
	}
	end = lt + len(commentOpen) + i
	after := end + len(commentClose)
	return end, onlySpaceTabBefore(src, lt) && after < len(src) && src[after] == '\n'
}

// onlySpaceTabBefore reports whether src[pos] is preceded on its line only by
// spaces and tabs.
func onlySpaceTabBefore(src []byte, pos int) bool {
	for i := pos - 1; i >= 0; i-- {
		switch src[i] {
		case '\n':
			return true
		case ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// findRawTextEnd searches for the end tag closing the raw text element name,
// returning the offsets of its '<' and '>' or -1, -1 if the element is never
// closed. Any other tag found along the way is skipped whole.
func findRawTextEnd(src []byte, from int, name string) (lt, gt int) {
	for j := from; j < len(src); {
		i := bytes.IndexByte(src[j:], '<')
		if i < 0 {
			break
		}
		lt = j + i
		if lt+2 >= len(src) || src[lt+1] != '/' {
			j = lt + 1
			continue
		}
		gt = findTagEnd(src, lt)
		if gt < 0 {
			break
		}
		if t := ParseTag(src[lt : gt+1]); strings.EqualFold(string(t.Name), name) {
			return lt, gt
		}
		j = gt + 1
	}
	return -1, -1
}
