package scandown

import (
	"fmt"
	"io"
	"strings"
)

// Block represents the structure mark found at the start of one line of
// Bikeshed-flavored Markdown.
//
// Unlike full CommonMark, marks are recognized a line at a time with no
// container nesting: indentation never opens a code block, and every
// container marker starts a single reflowable item.
type Block struct {
	Type BlockType

	// Delim may contain a delimiter byte:
	// - Heading: '#'
	// - Underline: '=' or '-'
	// - Ruler: '-','_', or '*'
	// - Blockquote: '>'
	// - Item: '-' or '*'
	// - OrderedItem: '.'
	// - DefTerm, DefDesc: ':'
	// - Codefence: '`' or '~'
	Delim byte

	// Width may contain a mark width:
	// - Heading: the header level
	// - Underline, Ruler: counts how many rule bytes, not including spaces
	// - OrderedItem: counts ordinal digits
	// - DefTerm: 1, DefDesc: 2
	// - Codefence: counts how many fence Delim bytes were used
	Width int

	// Indent holds the spaces and tabs before the mark.
	Indent string

	// Ordinal holds the digits of an OrderedItem, as written.
	Ordinal string

	// Content holds the rest of the line after a container mark (Item,
	// OrderedItem, DefTerm, DefDesc) and the spaces or tabs following it.
	Content string
}

// BlockType is to determine the semantic meaning of a Block.
type BlockType int

// BlockType constants for the line structures that reflow cares about.
const (
	noBlock BlockType = iota // 0 value should never be seen by user
	Blank
	Paragraph
	Heading
	Underline
	Ruler
	Blockquote
	Item
	OrderedItem
	DefTerm
	DefDesc
	Codefence
)

// IsContainer reports whether the block type starts a reflowable item that
// absorbs lazy continuation lines.
func (t BlockType) IsContainer() bool {
	switch t {
	case Item, OrderedItem, DefTerm, DefDesc:
		return true
	default:
		return false
	}
}

// ParseLine classifies a single line, given without its trailing newline.
// A '\r' left over from a CRLF line ending is ignored.
//
// Marks are tried in a fixed priority order: blank, code fence, bullet item,
// ordered item, definition term, definition description, ATX heading, block
// quote, ruler, and setext underline. Anything else is a Paragraph line.
//
// An Underline only underlines a heading when it follows a paragraph line;
// deciding that is left to the caller.
func ParseLine(line string) Block {
	if strings.TrimSpace(line) == "" {
		return Block{Type: Blank}
	}

	indent, cont := trimIndent(trimCR(line))
	block := Block{Type: Paragraph, Indent: indent}

	if delim, width, _ := fence(cont, 3, '`', '~'); delim != 0 {
		block.Type, block.Delim, block.Width = Codefence, delim, width
	} else if delim, content, ok := listMarker(cont); ok {
		block.Type, block.Delim, block.Width, block.Content = Item, delim, 1, content
	} else if ordinal, content, ok := orderedMarker(cont); ok {
		block.Type, block.Delim, block.Width = OrderedItem, '.', len(ordinal)
		block.Ordinal, block.Content = ordinal, content
	} else if width, content, ok := definitionMarker(cont); ok {
		block.Type, block.Delim, block.Width, block.Content = DefTerm, ':', width, content
		if width == 2 {
			block.Type = DefDesc
		}
	} else if delim, width, tail := delimiter(cont, 6, '#'); delim != 0 && len(tail) > 0 {
		block.Type, block.Delim, block.Width = Heading, delim, width
	} else if delim, _, _ := delimiter(cont, 1, '>'); delim != 0 {
		block.Type, block.Delim, block.Width = Blockquote, delim, 1
	} else if delim, width := ruler(cont, '-', '_', '*'); delim != 0 && width >= 3 {
		block.Type, block.Delim, block.Width = Ruler, delim, width
	} else if delim, width := ruler(cont, '=', '-'); delim != 0 && width >= 2 {
		block.Type, block.Delim, block.Width = Underline, delim, width
	}
	return block
}

// IsLazyContinuation reports whether line may be folded into a preceding
// container item: it must be non-blank and carry no mark of its own.
func IsLazyContinuation(line string) bool {
	return ParseLine(line).Type == Paragraph
}

// Closes reports whether line closes the receiver Codefence: it must hold
// only a run of at least Width Delim bytes, surrounded by spaces or tabs.
func (block Block) Closes(line string) bool {
	if block.Type != Codefence {
		return false
	}
	_, cont := trimIndent(trimCR(line))
	delim, _, tail := fence(cont, block.Width, block.Delim)
	if delim == 0 {
		return false
	}
	_, rest := trimIndent(tail)
	return len(rest) == 0
}

// MarkString returns the string prefix that opens a reflowed container line:
// indentation, the mark, and a single space. Definition marks at the end of
// their line get no space.
func (block Block) MarkString() string {
	var sb strings.Builder
	block.justWriteMark(&sb)
	return sb.String()
}

// AppendMark appends the MarkString to into.
func (block Block) AppendMark(into []byte) []byte {
	aw := appendWriter{buf: into, orig: into}
	block.justWriteMark(&aw)
	return aw.buf
}

type resetStringWriter interface {
	io.StringWriter
	Reset()
}

func (block Block) justWriteMark(into resetStringWriter) {
	if _, err := block.writeMark(into); err != nil {
		into.Reset()
		into.WriteString("!ERROR(")
		into.WriteString(err.Error())
		into.WriteString(")")
	}
}

func (block Block) writeMark(into io.StringWriter) (n int64, err error) {
	writeString := func(s string) {
		if err == nil {
			var m int
			m, err = into.WriteString(s)
			n += int64(m)
		}
	}

	switch block.Type {
	case Item:
		switch d := block.Delim; d {
		case '-', '*':
			writeString(block.Indent)
			writeString(string(d))
			writeString(" ")
		default:
			return 0, fmt.Errorf("invalid Item delim %q", d)
		}

	case OrderedItem:
		if block.Ordinal == "" {
			return 0, fmt.Errorf("invalid OrderedItem, missing ordinal")
		}
		writeString(block.Indent)
		writeString(block.Ordinal)
		writeString(". ")

	case DefTerm, DefDesc:
		writeString(block.Indent)
		writeString(strings.Repeat(":", block.Width))
		if block.Content != "" {
			writeString(" ")
		}

	default:
		return 0, fmt.Errorf("invalid container block type %v", block.Type)
	}
	return n, err
}

func listMarker(line string) (delim byte, content string, ok bool) {
	delim, _, tail := delimiter(line, 1, '-', '*')
	if delim == 0 || len(tail) == 0 {
		return 0, "", false
	}
	_, content = trimIndent(tail)
	return delim, content, true
}

func orderedMarker(line string) (digits, content string, ok bool) {
	width, tail := ordinal(line)
	if width == 0 {
		return "", "", false
	}
	if delim, _, rest := delimiter(tail, 1, '.'); delim != 0 && len(rest) > 0 {
		_, content = trimIndent(rest)
		return line[:width], content, true
	}
	return "", "", false
}

func definitionMarker(line string) (width int, content string, ok bool) {
	delim, width, tail := delimiter(line, 2, ':')
	if delim == 0 {
		return 0, "", false
	}
	_, content = trimIndent(tail)
	return width, content, true
}

// delimiter matches up to maxWidth repeats of one of the marks, which must
// be followed by a space, tab, or the end of line.
func delimiter(line string, maxWidth int, marks ...byte) (delim byte, width int, tail string) {
	if len(line) == 0 {
		return 0, 0, ""
	}
	if delim = line[0]; !isByte(delim, marks...) {
		return 0, 0, ""
	}

	width++
	tail = line[1:]
	for {
		if len(tail) == 0 {
			return delim, width, tail
		}
		switch tail[0] {
		case delim:
			if width++; width > maxWidth {
				return 0, 0, ""
			}
			tail = tail[1:]
		case ' ', '\t':
			return delim, width, tail
		default:
			return 0, 0, ""
		}
	}
}

func ordinal(line string) (width int, tail string) {
	for width < len(line) && '0' <= line[width] && line[width] <= '9' {
		width++
	}
	return width, line[width:]
}

func fence(line string, min int, marks ...byte) (fence byte, width int, tail string) {
	if len(line) == 0 {
		return 0, 0, ""
	}
	if fence = line[0]; !isByte(fence, marks...) {
		return 0, 0, ""
	}
	width++

	for ; width < len(line); width++ {
		if line[width] != fence {
			break
		}
	}

	if width < min {
		return 0, 0, ""
	}

	return fence, width, line[width:]
}

// ruler matches a line made only of one of the marks, with any spaces or
// tabs between, returning the count of mark bytes.
func ruler(line string, marks ...byte) (rule byte, width int) {
	if len(line) == 0 {
		return 0, 0
	}
	if rule = line[0]; !isByte(rule, marks...) {
		return 0, 0
	}
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case rule:
			width++
		case ' ', '\t':
		default:
			return 0, 0
		}
	}
	return rule, width
}

func isByte(b byte, any ...byte) bool {
	for _, ab := range any {
		if b == ab {
			return true
		}
	}
	return false
}

func trimCR(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}

func trimIndent(line string) (indent, tail string) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i], line[i:]
}

type appendWriter struct {
	buf  []byte
	orig []byte
}

// Reset rewinds to the buffer as it was before any writes.
func (aw *appendWriter) Reset() { aw.buf = aw.orig }

func (aw *appendWriter) WriteString(s string) (n int, err error) {
	aw.buf = append(aw.buf, s...)
	return len(s), nil
}
