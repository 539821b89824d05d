package reformat

import "github.com/jcorbin/reformahtml/scandown"

// text is document content on its way to being reflowed.
//
// Scanning and boundary decisions work on raw []byte source; only the bodies
// handed to a reflow function cross into text. All reflow decisions look at
// ASCII bytes alone, so multi-byte sequences, valid or not, pass through
// whole.
type text string

func decodeText(b []byte) text { return text(b) }

// appendPlain appends t with every whitespace run that holds a newline
// collapsed to one space; other runs are kept as is.
func appendPlain(dst []byte, t text) []byte {
	for i := 0; i < len(t); {
		j := i
		if !isSpace(t[i]) {
			for j < len(t) && !isSpace(t[j]) {
				j++
			}
			dst = append(dst, t[i:j]...)
			i = j
			continue
		}
		nl := false
		for j < len(t) && isSpace(t[j]) {
			if t[j] == '\n' {
				nl = true
			}
			j++
		}
		if nl {
			dst = append(dst, ' ')
		} else {
			dst = append(dst, t[i:j]...)
		}
		i = j
	}
	return dst
}

// appendInlineComment appends an inline comment with the whitespace runs of
// its interior collapsed like appendPlain does.
func appendInlineComment(dst, comment []byte) []byte {
	if len(comment) < len(commentOpen)+len(commentClose) {
		return append(dst, comment...)
	}
	inner := comment[len(commentOpen) : len(comment)-len(commentClose)]
	dst = append(dst, commentOpen...)
	dst = appendPlain(dst, decodeText(inner))
	return append(dst, commentClose...)
}

// appendMarkdown appends t reflowed a line at a time as Bikeshed-flavored
// Markdown: paragraphs and list or definition items are joined onto one line,
// while fences, headings, quotes, rules and blank lines are kept.
func appendMarkdown(dst []byte, t text) []byte {
	var (
		lines         = lineCursor{text: t}
		para          paragraph
		fence         scandown.Block
		inFence       bool
		afterParaLine bool
	)
	for {
		raw, ok := lines.next()
		if !ok {
			break
		}
		line, eol := raw.chomp()

		if inFence {
			dst = append(dst, raw...)
			if fence.Closes(string(line)) {
				inFence = false
			}
			continue
		}

		b := scandown.ParseLine(string(line))
		switch b.Type {
		case scandown.Blank:
			dst = para.flush(dst)
			dst = append(dst, raw...)

		case scandown.Codefence:
			dst = para.flush(dst)
			dst = append(dst, raw...)
			fence, inFence = b, true

		case scandown.Item, scandown.OrderedItem, scandown.DefTerm, scandown.DefDesc:
			dst = para.flush(dst)
			dst = appendItem(dst, b, eol, &lines)

		case scandown.Heading, scandown.Blockquote, scandown.Ruler:
			dst = para.flush(dst)
			dst = append(dst, raw...)

		case scandown.Underline:
			if afterParaLine {
				dst = para.flush(dst)
				dst = append(dst, raw...)
				afterParaLine = false
				continue
			}
			para.add(line, eol)
			afterParaLine = true
			continue

		default:
			para.add(line, eol)
			afterParaLine = true
			continue
		}
		afterParaLine = false
	}
	return para.flush(dst)
}

// appendItem appends a container line b along with any lazy continuation
// lines that follow it, joined onto one line ended by eol.
func appendItem(dst []byte, b scandown.Block, eol text, lines *lineCursor) []byte {
	dst = b.AppendMark(dst)
	dst = append(dst, trimRightSpaceTab(text(b.Content))...)
	for {
		raw, ok := lines.peek()
		if !ok {
			break
		}
		line, lineEOL := raw.chomp()
		if !scandown.IsLazyContinuation(string(line)) {
			break
		}
		lines.next()
		dst = append(dst, ' ')
		dst = append(dst, trimLeftSpaceTab(line)...)
		eol = lineEOL
	}
	return append(dst, eol...)
}

// paragraph accumulates plain lines until something ends the paragraph; the
// joined line is ended like its last line was.
type paragraph struct {
	lines []text
	eol   text
}

func (para *paragraph) add(line, eol text) {
	para.lines = append(para.lines, line)
	para.eol = eol
}

func (para *paragraph) flush(dst []byte) []byte {
	switch len(para.lines) {
	case 0:
		return dst
	case 1:
		dst = append(dst, para.lines[0]...)
	default:
		dst = append(dst, trimRightSpaceTab(para.lines[0])...)
		for _, line := range para.lines[1:] {
			dst = append(dst, ' ')
			dst = append(dst, trimLeftSpaceTab(line)...)
		}
	}
	dst = append(dst, para.eol...)
	para.lines = para.lines[:0]
	para.eol = ""
	return dst
}

// lineCursor iterates over the lines of a text, each with its newline, with
// one line of lookahead.
type lineCursor struct {
	text text
	pos  int
}

func (lc *lineCursor) peek() (line text, ok bool) {
	if lc.pos >= len(lc.text) {
		return "", false
	}
	rest := lc.text[lc.pos:]
	for i := 0; i < len(rest); i++ {
		if rest[i] == '\n' {
			return rest[:i+1], true
		}
	}
	return rest, true
}

func (lc *lineCursor) next() (line text, ok bool) {
	line, ok = lc.peek()
	lc.pos += len(line)
	return line, ok
}

// chomp splits off a trailing "\n" or "\r\n" line ending.
func (t text) chomp() (line, eol text) {
	n := len(t)
	switch {
	case n > 1 && t[n-2] == '\r' && t[n-1] == '\n':
		return t[:n-2], t[n-2:]
	case n > 0 && t[n-1] == '\n':
		return t[:n-1], t[n-1:]
	}
	return t, ""
}

func trimLeftSpaceTab(t text) text {
	for len(t) > 0 && isSpaceTab(t[0]) {
		t = t[1:]
	}
	return t
}

func trimRightSpaceTab(t text) text {
	for n := len(t); n > 0 && isSpaceTab(t[n-1]); n = len(t) {
		t = t[:n-1]
	}
	return t
}
