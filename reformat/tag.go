package reformat

import "bytes"

// Tag describes one scanned tag.
type Tag struct {
	// Name is the element name as written, possibly empty for markup like
	// <!DOCTYPE html> or <?xml ...?>.
	Name []byte

	End         bool // </name>
	SelfClosing bool // <name/>
}

// ParseTag extracts the name and flags from a complete tag, from '<' through
// '>' inclusive.
func ParseTag(tag []byte) (t Tag) {
	if len(tag) < 2 {
		return t
	}
	i := 1
	if tag[i] == '/' {
		t.End = true
		i++
	}
	for i < len(tag) && isSpace(tag[i]) {
		i++
	}
	start := i
	for i < len(tag) && isNameChar(tag[i]) {
		i++
	}
	t.Name = tag[start:i]

	j := len(tag) - 1
	for j > 0 && isSpace(tag[j-1]) {
		j--
	}
	t.SelfClosing = j >= 2 && tag[j-1] == '/'
	return t
}

// Is reports whether the tag names the element name, given in lower case.
func (t Tag) Is(name string) bool {
	return len(t.Name) == len(name) && bytes.EqualFold(t.Name, []byte(name))
}

func isNameChar(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		c == '-' || c == '_' || c == ':'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isSpaceTab(c byte) bool {
	return c == ' ' || c == '\t'
}

var noReformatAttr = []byte("data-noreformat")

// hasNoReformat reports whether a start tag carries the data-noreformat
// attribute, in any case and with or without a value. Unparseable bytes are
// skipped one at a time.
func hasNoReformat(tag []byte) bool {
	n := len(tag)
	for i := 1; i < n && tag[i] != '>'; {
		for i < n && (isSpace(tag[i]) || tag[i] == '/') {
			i++
		}
		if i >= n || tag[i] == '>' {
			break
		}
		if !isNameChar(tag[i]) {
			i++
			continue
		}

		start := i
		for i < n && isNameChar(tag[i]) {
			i++
		}
		if bytes.EqualFold(tag[start:i], noReformatAttr) {
			return true
		}

		for i < n && isSpace(tag[i]) {
			i++
		}
		if i >= n || tag[i] != '=' {
			continue
		}
		i++
		for i < n && isSpace(tag[i]) {
			i++
		}
		if i >= n || tag[i] == '>' {
			break
		}
		if q := tag[i]; q == '"' || q == '\'' {
			i++
			for i < n && tag[i] != q {
				i++
			}
			if i < n {
				i++
			}
		} else {
			for i < n && !isSpace(tag[i]) && tag[i] != '>' {
				i++
			}
		}
	}
	return false
}

// appendNormalizedTag appends tag with the whitespace inside it collapsed.
//
// Outside quoted values a whitespace run becomes one space, or vanishes when
// it holds a newline and sits next to '='. Inside quoted values only runs
// holding a newline are collapsed. Spaces just inside the angle brackets are
// dropped.
func appendNormalizedTag(dst, tag []byte) []byte {
	if len(tag) < 2 {
		return append(dst, tag...)
	}
	inner := tag[1 : len(tag)-1]

	dst = append(dst, '<')
	start := len(dst)
	spaceOnce := func() {
		if len(dst) > start && dst[len(dst)-1] != ' ' {
			dst = append(dst, ' ')
		}
	}

	var quote byte
	for i := 0; i < len(inner); {
		c := inner[i]
		if !isSpace(c) {
			switch {
			case quote != 0:
				if c == quote {
					quote = 0
				}
			case c == '"' || c == '\'':
				quote = c
			}
			dst = append(dst, c)
			i++
			continue
		}

		j := i
		sawNL := false
		for j < len(inner) && isSpace(inner[j]) {
			if inner[j] == '\n' {
				sawNL = true
			}
			j++
		}
		switch {
		case quote != 0:
			if sawNL {
				spaceOnce()
			} else {
				dst = append(dst, inner[i:j]...)
			}
		case sawNL && (i > 0 && inner[i-1] == '=' || j < len(inner) && inner[j] == '='):
		default:
			spaceOnce()
		}
		i = j
	}

	for len(dst) > start && dst[len(dst)-1] == ' ' {
		dst = dst[:len(dst)-1]
	}
	return append(dst, '>')
}
