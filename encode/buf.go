package encode

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/witchof0x20/msd-sub000/token"
)

// tagBuf accumulates one tag.
type tagBuf struct {
	es  *EncState
	buf bytes.Buffer
	// rowOpen is set once the tag has a row, cells counts the cells of that
	// row.
	rowOpen bool
	cells   int
}

type mark struct {
	n       int
	rowOpen bool
	cells   int
}

func newTagBuf(es *EncState) *tagBuf {
	t := &tagBuf{es: es}
	t.put(SigilColor, []byte{token.Sigil})
	return t
}

func (t *tagBuf) mark() mark {
	return mark{n: t.buf.Len(), rowOpen: t.rowOpen, cells: t.cells}
}

func (t *tagBuf) grew(m mark) bool {
	return t.buf.Len() > m.n
}

func (t *tagBuf) rewind(m mark) {
	t.buf.Truncate(m.n)
	t.rowOpen, t.cells = m.rowOpen, m.cells
}

func (t *tagBuf) put(a ColorAttr, d []byte) {
	if t.es.Color == nil {
		t.buf.Write(d)
		return
	}
	t.buf.WriteString(t.es.Color(a, string(d)))
}

// row starts a new row.
func (t *tagBuf) row() {
	if t.rowOpen {
		t.put(SepColor, []byte{token.StmtSep})
	}
	t.rowOpen = true
	t.cells = 0
}

// cell appends an escaped cell to the current row.
func (t *tagBuf) cell(a ColorAttr, raw []byte) {
	if t.cells > 0 {
		t.put(SepColor, []byte{token.FieldSep})
	}
	t.rowOpen = true
	t.cells++
	t.put(a, Escape(raw))
}

// close terminates the tag.
func (t *tagBuf) close() []byte {
	t.put(SepColor, []byte{token.StmtSep})
	if t.es.newlines {
		t.buf.WriteByte('\n')
	}
	return t.buf.Bytes()
}

// scalar formatting shared by every level.

func formatBool(v bool) []byte {
	return strconv.AppendBool(nil, v)
}

func formatInt(v int64) []byte {
	return strconv.AppendInt(nil, v, 10)
}

func formatUint(v uint64) []byte {
	return strconv.AppendUint(nil, v, 10)
}

func formatFloat(v float64, bits int) []byte {
	return strconv.AppendFloat(nil, v, 'g', -1, bits)
}

func formatChar(r rune) []byte {
	return utf8.AppendRune(nil, r)
}
