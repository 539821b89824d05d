package reformat

import (
	"fmt"
	"io"
)

// Format writes a type string representing the receiver code.
func (k TokenKind) Format(f fmt.State, _ rune) {
	switch k {
	case 0:
		io.WriteString(f, "None")
	case TextToken:
		io.WriteString(f, "Text")
	case TagToken:
		io.WriteString(f, "Tag")
	case CommentToken:
		io.WriteString(f, "Comment")
	case RawTextToken:
		io.WriteString(f, "RawText")
	case RemainderToken:
		io.WriteString(f, "Remainder")
	default:
		fmt.Fprintf(f, "InvalidToken%v", int(k))
	}
}

// Format writes a textual representation of the receiver, providing improved
// fmt.Printf display: "Kind@start:end", with a "standalone" note on comments
// when formatted with `%+v`.
func (tok Token) Format(f fmt.State, _ rune) {
	fmt.Fprintf(f, "%v@%v:%v", tok.Kind, tok.Start, tok.End)
	if f.Flag('+') && tok.Standalone {
		io.WriteString(f, " standalone")
	}
}

// Format writes the tag in a terse "<name>", "</name>", or "<name/>" form.
func (t Tag) Format(f fmt.State, _ rune) {
	io.WriteString(f, "<")
	if t.End {
		io.WriteString(f, "/")
	}
	f.Write(t.Name)
	if t.SelfClosing {
		io.WriteString(f, "/")
	}
	io.WriteString(f, ">")
}
