package reformat

import (
	"strings"

	"golang.org/x/net/html/atom"
)

type tagSet map[string]struct{}

func newTagSet(names ...string) tagSet {
	set := make(tagSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func (set tagSet) has(name []byte) bool {
	if len(name) == 0 {
		return false
	}
	_, ok := set[strings.ToLower(string(name))]
	return ok
}

func (set tagSet) hasLower(name string) bool {
	_, ok := set[name]
	return ok
}

// Inline elements flow within a line of text.
var inlineTags = newTagSet(
	atom.A.String(),
	atom.Abbr.String(),
	atom.B.String(),
	atom.Bdi.String(),
	atom.Bdo.String(),
	atom.Cite.String(),
	atom.Code.String(),
	atom.Data.String(),
	atom.Del.String(),
	atom.Dfn.String(),
	atom.Em.String(),
	atom.I.String(),
	atom.Ins.String(),
	atom.Kbd.String(),
	atom.Mark.String(),
	atom.Q.String(),
	atom.S.String(),
	atom.Samp.String(),
	atom.Small.String(),
	atom.Span.String(),
	atom.Strong.String(),
	atom.Sub.String(),
	atom.Sup.String(),
	atom.Time.String(),
	atom.U.String(),
	atom.Var.String(),
	"ref", // bikeshed autolink
)

// Void elements have no content and no end tag.
var voidTags = newTagSet(
	atom.Area.String(),
	atom.Base.String(),
	atom.Br.String(),
	atom.Col.String(),
	atom.Embed.String(),
	atom.Hr.String(),
	atom.Img.String(),
	atom.Input.String(),
	atom.Link.String(),
	atom.Meta.String(),
	atom.Param.String(),
	atom.Source.String(),
	atom.Track.String(),
	atom.Wbr.String(),
)

// Raw text elements have their content copied verbatim until their literal
// end tag.
var rawTextTags = newTagSet(
	atom.Pre.String(),
	atom.Textarea.String(),
	atom.Script.String(),
	atom.Style.String(),
	atom.Xmp.String(),
	"wpt", // bikeshed web-platform-tests block
)

// Structural elements always mark a layout boundary.
var structuralTags = newTagSet(
	atom.Address.String(),
	atom.Article.String(),
	atom.Aside.String(),
	atom.Blockquote.String(),
	atom.Details.String(),
	atom.Dialog.String(),
	atom.Div.String(),
	atom.Dl.String(),
	atom.Dt.String(),
	atom.Dd.String(),
	atom.Fieldset.String(),
	atom.Figcaption.String(),
	atom.Figure.String(),
	atom.Footer.String(),
	atom.Form.String(),
	atom.H1.String(),
	atom.H2.String(),
	atom.H3.String(),
	atom.H4.String(),
	atom.H5.String(),
	atom.H6.String(),
	atom.Header.String(),
	atom.Hgroup.String(),
	atom.Hr.String(),
	atom.Main.String(),
	atom.Menu.String(),
	atom.Nav.String(),
	atom.Ol.String(),
	atom.P.String(),
	atom.Pre.String(),
	"search",
	atom.Section.String(),
	atom.Table.String(),
	atom.Thead.String(),
	atom.Tbody.String(),
	atom.Tfoot.String(),
	atom.Tr.String(),
	atom.Td.String(),
	atom.Th.String(),
	atom.Caption.String(),
	atom.Colgroup.String(),
	atom.Ul.String(),
	atom.Li.String(),
	atom.Optgroup.String(),
	atom.Option.String(),
	atom.Ruby.String(),
	atom.Rt.String(),
	atom.Rp.String(),
	"foreignobject", // svg foreignObject, matched case-insensitively
)

// Start tags in this set imply the end of an open p element.
var paragraphClosingTags = newTagSet(
	atom.Address.String(),
	atom.Article.String(),
	atom.Aside.String(),
	atom.Blockquote.String(),
	atom.Center.String(),
	atom.Details.String(),
	atom.Dialog.String(),
	atom.Dir.String(),
	atom.Div.String(),
	atom.Dl.String(),
	atom.Fieldset.String(),
	atom.Figcaption.String(),
	atom.Figure.String(),
	atom.Footer.String(),
	atom.Header.String(),
	atom.Hgroup.String(),
	atom.Main.String(),
	atom.Menu.String(),
	atom.Nav.String(),
	atom.Ol.String(),
	atom.P.String(),
	"search",
	atom.Section.String(),
	atom.Summary.String(),
	atom.Ul.String(),
)

// IsInline reports whether name (any case) is an inline element.
func IsInline(name []byte) bool { return inlineTags.has(name) }

// IsVoid reports whether name (any case) is a void element.
func IsVoid(name []byte) bool { return voidTags.has(name) }

// IsRawText reports whether name (any case) is a raw text element, whose
// content is never reformatted.
func IsRawText(name []byte) bool { return rawTextTags.has(name) }

// IsStructural reports whether name (any case) is a structural element.
func IsStructural(name []byte) bool { return structuralTags.has(name) }
