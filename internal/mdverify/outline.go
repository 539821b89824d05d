// Package mdverify checks that reflowing a Markdown document kept its block
// structure, by comparing block outlines parsed with blackfriday before and
// after.
package mdverify

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/russross/blackfriday"
)

// ErrStructureChanged is wrapped by the errors Verify returns.
var ErrStructureChanged = errors.New("markdown block structure changed")

const extensions = 0 |
	blackfriday.NoIntraEmphasis |
	blackfriday.FencedCode |
	blackfriday.Autolink |
	blackfriday.Strikethrough |
	blackfriday.SpaceHeadings |
	blackfriday.HeadingIDs |
	blackfriday.BackslashLineBreak |
	blackfriday.NoEmptyLineBeforeBlock

// Block is one entry in a document outline.
type Block struct {
	Depth int
	Type  blackfriday.NodeType
	Level int // of headings

	// Content holds the text of leaf blocks with all whitespace removed, since
	// reflow may only ever change whitespace.
	Content string
}

// Format writes the block indented by its depth, with its content when
// formatted with `%+v`.
func (b Block) Format(f fmt.State, _ rune) {
	for i := 0; i < b.Depth; i++ {
		io.WriteString(f, "  ")
	}
	io.WriteString(f, b.Type.String())
	if b.Type == blackfriday.Heading {
		fmt.Fprintf(f, "%v", b.Level)
	}
	if f.Flag('+') && b.Content != "" {
		fmt.Fprintf(f, " %q", b.Content)
	}
}

// Outline parses src and returns its blocks in document order.
func Outline(src []byte) []Block {
	md := blackfriday.New(blackfriday.WithExtensions(extensions))
	doc := md.Parse(src)

	var (
		blocks []Block
		depth  int
		buf    bytes.Buffer
	)
	doc.Walk(func(n *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		switch n.Type {
		case blackfriday.Document:
			return blackfriday.GoToNext

		case blackfriday.List, blackfriday.Item, blackfriday.BlockQuote,
			blackfriday.Table, blackfriday.TableHead, blackfriday.TableBody, blackfriday.TableRow:
			if entering {
				blocks = append(blocks, Block{Depth: depth, Type: n.Type})
				depth++
			} else {
				depth--
			}
			return blackfriday.GoToNext

		case blackfriday.Paragraph, blackfriday.Heading, blackfriday.TableCell:
			buf.Reset()
			collectText(&buf, n)
			blocks = append(blocks, Block{Depth: depth, Type: n.Type, Level: n.Level, Content: buf.String()})
			return blackfriday.SkipChildren

		case blackfriday.CodeBlock, blackfriday.HTMLBlock:
			buf.Reset()
			writeNonSpace(&buf, n.Literal)
			blocks = append(blocks, Block{Depth: depth, Type: n.Type, Content: buf.String()})
			return blackfriday.GoToNext

		case blackfriday.HorizontalRule:
			blocks = append(blocks, Block{Depth: depth, Type: n.Type})
			return blackfriday.GoToNext
		}
		return blackfriday.GoToNext
	})
	return blocks
}

// Verify returns an error wrapping ErrStructureChanged describing the first
// block that differs between the outlines of before and after.
func Verify(before, after []byte) error {
	a, b := Outline(before), Outline(after)
	for i := 0; i < len(a) || i < len(b); i++ {
		switch {
		case i >= len(a):
			return fmt.Errorf("%w: block %v added: %+v", ErrStructureChanged, i+1, b[i])
		case i >= len(b):
			return fmt.Errorf("%w: block %v removed: %+v", ErrStructureChanged, i+1, a[i])
		case a[i] != b[i]:
			return fmt.Errorf("%w: block %v %+v became %+v", ErrStructureChanged, i+1, a[i], b[i])
		}
	}
	return nil
}

func collectText(buf *bytes.Buffer, node *blackfriday.Node) {
	node.Walk(func(n *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if entering {
			writeNonSpace(buf, n.Literal)
		}
		return blackfriday.GoToNext
	})
}

func writeNonSpace(buf *bytes.Buffer, b []byte) {
	for len(b) > 0 {
		r, n := utf8.DecodeRune(b)
		if !unicode.IsSpace(r) {
			buf.Write(b[:n])
		}
		b = b[n:]
	}
}
