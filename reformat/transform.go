// Package reformat reflows the prose of HTML and Bikeshed documents.
//
// Text runs are re-wrapped so that soft line breaks become single spaces,
// while the markup around them keeps its layout: structural tags, standalone
// comments, raw text elements (pre, script, style, ...) and any subtree
// marked with a data-noreformat attribute are left alone. Tags themselves get
// the whitespace inside them collapsed.
//
// In Markdown mode, text is further understood as Bikeshed-flavored
// Markdown: list and definition items are joined onto one line each, while
// fences, headings, quotes and rules stay as written.
//
// Malformed markup is never an error: an unterminated tag or comment, and
// everything after it, is copied unchanged.
package reformat

import "strings"

// Transform returns the reformatted form of src.
func Transform(src []byte, markdown bool) []byte {
	return Append(make([]byte, 0, len(src)+len(src)/20+2048), src, markdown)
}

// Append appends the reformatted form of src to dst, returning the extended
// buffer.
func Append(dst, src []byte, markdown bool) []byte {
	r := reformatter{
		src:      src,
		out:      dst,
		markdown: markdown,
	}
	r.sc.Reset(src)
	r.run()
	return r.out
}

// frame is an open element.
type frame struct {
	name     string // lower case
	verbatim bool   // within a data-noreformat subtree
	rawText  bool
}

// reformatter holds the state of a single transform.
type reformatter struct {
	src      []byte
	out      []byte
	markdown bool

	sc    Scanner
	stack []frame

	// afterBoundary is set after a structural start tag or a standalone
	// comment; afterBR after a <br>. Either keeps the leading whitespace of
	// the following text run.
	afterBoundary bool
	afterBR       bool
}

func (r *reformatter) run() {
	for r.sc.Scan() {
		tok := r.sc.Token()
		b := r.sc.Bytes()
		switch tok.Kind {
		case CommentToken:
			r.comment(tok, b)
		case TagToken:
			r.tag(tok, b)
		case TextToken:
			if r.verbatim() {
				r.out = append(r.out, b...)
			} else {
				r.text(tok.Start, tok.End)
			}
			r.afterBoundary, r.afterBR = false, false
		default: // RawTextToken, RemainderToken
			r.out = append(r.out, b...)
			r.afterBoundary, r.afterBR = false, false
		}
	}
}

func (r *reformatter) verbatim() bool {
	if n := len(r.stack); n > 0 {
		return r.stack[n-1].verbatim
	}
	return false
}

func (r *reformatter) comment(tok Token, b []byte) {
	switch {
	case r.verbatim():
		r.out = append(r.out, b...)
	case tok.Standalone:
		r.out = append(r.out, b...)
		r.afterBoundary = true
	default:
		r.out = appendInlineComment(r.out, b)
		r.afterBoundary = false
	}
}

func (r *reformatter) tag(tok Token, b []byte) {
	t := ParseTag(b)
	marked := !t.End && hasNoReformat(b)
	if r.verbatim() || marked {
		r.out = append(r.out, b...)
	} else {
		r.out = appendNormalizedTag(r.out, b)
	}

	switch {
	case t.End:
		r.pop(t)
	case len(t.Name) > 0 && !t.SelfClosing && !IsVoid(t.Name):
		r.push(t, marked)
	}

	if !t.End && t.Is("br") {
		r.afterBR = true
		if tok.End < len(r.src) && r.src[tok.End] == '\n' {
			r.out = append(r.out, '\n')
			r.sc.skip(1)
		}
	}
	r.afterBoundary = !t.End && IsStructural(t.Name)
}

// push opens a new element, first closing any sibling it implies the end of.
func (r *reformatter) push(t Tag, marked bool) {
	name := strings.ToLower(string(t.Name))
	if n := len(r.stack); n > 0 {
		switch top := r.stack[n-1].name; {
		case name == "li":
			if top == "li" {
				r.stack = r.stack[:n-1]
			}
		case name == "dt" || name == "dd":
			if top == "dt" || top == "dd" {
				r.stack = r.stack[:n-1]
			}
		case paragraphClosingTags.hasLower(name):
			if top == "p" {
				r.stack = r.stack[:n-1]
			}
		}
	}
	r.stack = append(r.stack, frame{
		name:     name,
		verbatim: marked || r.verbatim(),
		rawText:  rawTextTags.hasLower(name),
	})
}

// pop closes the nearest open element matching an end tag, along with every
// element opened after it. A stray end tag closes nothing.
func (r *reformatter) pop(t Tag) {
	name := strings.ToLower(string(t.Name))
	for i := len(r.stack) - 1; i >= 0; i-- {
		if r.stack[i].name == name {
			if r.stack[i].rawText {
				r.afterBR = false
			}
			r.stack = r.stack[:i]
			return
		}
	}
}

// text reflows the text run src[at:next] into the output.
func (r *reformatter) text(at, next int) {
	chunk := r.src[at:next]
	following := lookahead(r.src, next)

	if isBlank(chunk) {
		if following.joins() && singleNewline(chunk) && !prevLineEndsWithStructuralStart(r.src, next) {
			r.out = append(r.out, ' ')
		} else {
			r.out = append(r.out, chunk...)
		}
		return
	}

	keepTrailing := following.bounds() || r.markdown && lineStartsWithDefinition(r.src, next)
	keepLeading := r.afterBoundary || r.afterBR
	if keepLeading || keepTrailing {
		left := 0
		if keepLeading {
			for left < len(chunk) && isSpace(chunk[left]) {
				left++
			}
			r.out = append(r.out, chunk[:left]...)
		}
		right := len(chunk)
		for right > left && isSpace(chunk[right-1]) {
			right--
		}
		if body := chunk[left:right]; len(body) > 0 {
			r.reflowBody(body, at)
		}
		switch {
		case keepTrailing:
			r.out = append(r.out, chunk[right:]...)
		case following.joins() && right < len(chunk):
			r.out = append(r.out, ' ')
		}
		return
	}

	lead := 0
	for lead < len(chunk) && isSpaceTab(chunk[lead]) {
		lead++
	}
	trail := len(chunk)
	for trail > lead && isSpaceTab(chunk[trail-1]) {
		trail--
	}
	r.out = append(r.out, chunk[:lead]...)
	start := len(r.out)
	if definition := r.reflowBody(chunk[lead:trail], at); definition {
		r.out = append(r.out, chunk[trail:]...)
		return
	}

	if following.joins() && trailingNewlines(chunk) == 1 && !prevLineEndsWithStructuralStart(r.src, next) {
		r.out = trimTrailingBreak(r.out, start)
		r.out = append(r.out, ' ')
		return
	}
	r.out = append(r.out, chunk[trail:]...)
}

// reflowBody reflows the non-blank body of a text run starting at src[at],
// giving its leading newline special treatment: a newline that introduces a
// definition line is kept, reporting true, and a lone soft-wrapped newline
// becomes a space.
func (r *reformatter) reflowBody(body []byte, at int) (definition bool) {
	if r.markdown {
		if i, ok := definitionIndent(body); ok {
			r.out = append(r.out, body[:i]...)
			r.out = r.reflow(r.out, decodeText(body[i:]))
			return true
		}
	}
	if r.softWraps(body, at) {
		j := 1
		for j < len(body) && isSpaceTab(body[j]) {
			j++
		}
		r.out = r.reflow(r.out, " "+decodeText(body[j:]))
		return false
	}
	r.out = r.reflow(r.out, decodeText(body))
	return false
}

func (r *reformatter) softWraps(body []byte, at int) bool {
	return len(body) > 0 && body[0] == '\n' &&
		(len(body) == 1 || body[1] != '\n') &&
		!r.afterBR && !r.afterBoundary &&
		!prevLineEndsWithStructuralStart(r.src, at)
}

func (r *reformatter) reflow(dst []byte, t text) []byte {
	if r.markdown {
		return appendMarkdown(dst, t)
	}
	return appendPlain(dst, t)
}

// trimTrailingBreak removes trailing spaces and tabs from buf[start:],
// along with at most one newline among them.
func trimTrailingBreak(buf []byte, start int) []byte {
	trim := func() {
		for len(buf) > start && isSpaceTab(buf[len(buf)-1]) {
			buf = buf[:len(buf)-1]
		}
	}
	trim()
	if len(buf) > start && buf[len(buf)-1] == '\n' {
		buf = buf[:len(buf)-1]
		trim()
	}
	return buf
}
