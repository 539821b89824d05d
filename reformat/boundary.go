package reformat

import "bytes"

// ahead classifies the token following a text run.
type ahead struct {
	kind aheadKind
	tag  Tag
}

type aheadKind int

const (
	aheadNothing aheadKind = iota
	aheadStandaloneComment
	aheadInlineComment
	aheadTag
)

func lookahead(src []byte, pos int) (a ahead) {
	if pos >= len(src) {
		return a
	}
	if bytes.HasPrefix(src[pos:], commentOpen) {
		switch end, standalone := scanComment(src, pos); {
		case end < 0:
		case standalone:
			a.kind = aheadStandaloneComment
		default:
			a.kind = aheadInlineComment
		}
		return a
	}
	if gt := findTagEnd(src, pos); gt >= 0 {
		a.kind = aheadTag
		a.tag = ParseTag(src[pos : gt+1])
	}
	return a
}

// joins reports whether text may run straight on into the next token: an
// inline start tag or an inline comment.
func (a ahead) joins() bool {
	switch a.kind {
	case aheadInlineComment:
		return true
	case aheadTag:
		return !a.tag.End && IsInline(a.tag.Name)
	default:
		return false
	}
}

// bounds reports whether the next token marks a layout boundary, so the
// whitespace before it must be kept.
func (a ahead) bounds() bool {
	switch a.kind {
	case aheadNothing, aheadStandaloneComment:
		return true
	case aheadTag:
		return IsStructural(a.tag.Name)
	default:
		return false
	}
}

// prevLineEndsWithStructuralStart reports whether the last non-whitespace
// bytes before pos are a structural start tag, found as the last '<' on that
// line.
func prevLineEndsWithStructuralStart(src []byte, pos int) bool {
	end := pos
	for end > 0 && isSpace(src[end-1]) {
		end--
	}
	if end == 0 || src[end-1] != '>' {
		return false
	}
	line := src[:end]
	if nl := bytes.LastIndexByte(line, '\n'); nl >= 0 {
		line = line[nl+1:]
	}
	lt := bytes.LastIndexByte(line, '<')
	if lt < 0 {
		return false
	}
	t := ParseTag(line[lt:])
	return !t.End && IsStructural(t.Name)
}

// lineStartsWithDefinition reports whether the line holding pos begins,
// after indentation, with a definition marker.
func lineStartsWithDefinition(src []byte, pos int) bool {
	start := bytes.LastIndexByte(src[:pos], '\n') + 1
	i := start
	for i < len(src) && isSpaceTab(src[i]) {
		i++
	}
	return definitionMarkAt(src, i)
}

// definitionMarkAt reports whether ':' or '::' starts at src[i], followed by
// a space, tab, newline or the end of input.
func definitionMarkAt(src []byte, i int) bool {
	if i >= len(src) || src[i] != ':' {
		return false
	}
	i++
	if i < len(src) && src[i] == ':' {
		i++
	}
	return i == len(src) || isSpaceTab(src[i]) || src[i] == '\n' || src[i] == '\r'
}

// definitionIndent reports whether body opens with a single newline and an
// indented definition marker, returning the offset of the marker.
func definitionIndent(body []byte) (int, bool) {
	if len(body) < 2 || body[0] != '\n' {
		return 0, false
	}
	i := 1
	for i < len(body) && isSpaceTab(body[i]) {
		i++
	}
	return i, definitionMarkAt(body, i)
}

// singleNewline reports whether run holds exactly one newline.
func singleNewline(run []byte) bool {
	return bytes.Count(run, []byte{'\n'}) == 1
}

// trailingNewlines counts the consecutive newlines ending chunk, once any
// final spaces and tabs are set aside.
func trailingNewlines(chunk []byte) (n int) {
	i := len(chunk)
	for i > 0 && isSpaceTab(chunk[i-1]) {
		i--
	}
	for i > 0 && chunk[i-1] == '\n' {
		n++
		i--
	}
	return n
}

func isBlank(b []byte) bool {
	for _, c := range b {
		if !isSpace(c) {
			return false
		}
	}
	return true
}
