package scandown

import (
	"fmt"
	"io"
)

// Format writes a textual representation of the receiver, providing improved
// fmt.Printf display. Produces a verbose "Type attr=value" form when
// formatted with `%+v", a terse "Type" form otherwise.
func (b Block) Format(f fmt.State, _ rune) {
	width := b.Width
	switch b.Type {
	case Heading:
		fmt.Fprintf(f, "%v%v", b.Type, width)
		width = 0
	default:
		fmt.Fprint(f, b.Type)
	}
	if f.Flag('+') {
		if d := b.Delim; d != 0 {
			fmt.Fprintf(f, " delim=%q", d)
		}
		if width != 0 {
			fmt.Fprintf(f, " width=%v", width)
		}
		if in := b.Indent; in != "" {
			fmt.Fprintf(f, " indent=%q", in)
		}
		if ord := b.Ordinal; ord != "" {
			fmt.Fprintf(f, " ordinal=%v", ord)
		}
		if c := b.Content; c != "" {
			fmt.Fprintf(f, " content=%q", c)
		}
	}
}

// Format writes a type string representing the receiver code.
func (t BlockType) Format(f fmt.State, _ rune) {
	switch t {
	case noBlock:
		io.WriteString(f, "None")
	case Blank:
		io.WriteString(f, "Blank")
	case Paragraph:
		io.WriteString(f, "Paragraph")
	case Heading:
		io.WriteString(f, "Heading")
	case Underline:
		io.WriteString(f, "Underline")
	case Ruler:
		io.WriteString(f, "Ruler")
	case Blockquote:
		io.WriteString(f, "Blockquote")
	case Item:
		io.WriteString(f, "Item")
	case OrderedItem:
		io.WriteString(f, "OrderedItem")
	case DefTerm:
		io.WriteString(f, "DefTerm")
	case DefDesc:
		io.WriteString(f, "DefDesc")
	case Codefence:
		io.WriteString(f, "Codefence")
	default:
		fmt.Fprintf(f, "InvalidBlock%v", int(t))
	}
}
