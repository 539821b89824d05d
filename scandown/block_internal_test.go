package scandown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendWriter_Reset(t *testing.T) {
	for _, into := range [][]byte{nil, []byte("> ")} {
		aw := appendWriter{buf: into, orig: into}
		aw.WriteString("partial")
		aw.Reset()
		aw.WriteString("!")
		assert.Equal(t, string(into)+"!", string(aw.buf), "rewinds %q", into)
	}
}
