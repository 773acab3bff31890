package token

// Reserved bytes.
const (
	Sigil    byte = '#'
	FieldSep byte = ':'
	StmtSep  byte = ';'
	Escape   byte = '\\'
	Comment  byte = '/'
)

// IsSpace reports whether b is ASCII whitespace.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsReserved reports whether b must be escaped inside content.
func IsReserved(b byte) bool {
	switch b {
	case Sigil, FieldSep, StmtSep, Escape:
		return true
	}
	return false
}

type commentState uint8

const (
	commentNone commentState = iota
	commentMaybe
	commentIn
)

type class uint8

const (
	classData class = iota
	classSpace
	// the escape marker itself
	classEscape
	// the byte following an escape marker
	classEscaped
	// a lone comment marker which may or may not open a comment
	classSlash
	// comment body, from the second marker up to (not including) the newline
	classComment
	// an unescaped, uncommented boundary byte
	classBoundary
)

// scanner is the escape and comment state machine shared by the tag, row and
// cell levels. Only the boundary byte differs between them.
type scanner struct {
	boundary byte
	comment  commentState
	escaping bool
	// slashData is set by step when the preceding lone comment marker
	// turned out to be plain data.
	slashData bool
}

func (s *scanner) step(b byte) class {
	s.slashData = false
	if s.escaping {
		s.escaping = false
		return classEscaped
	}
	switch s.comment {
	case commentIn:
		if b == '\n' {
			s.comment = commentNone
			return classSpace
		}
		return classComment
	case commentMaybe:
		s.comment = commentNone
		if b == Comment {
			s.comment = commentIn
			return classComment
		}
		s.slashData = true
	}
	switch {
	case b == Escape:
		s.escaping = true
		return classEscape
	case b == Comment:
		s.comment = commentMaybe
		return classSlash
	case b == s.boundary:
		return classBoundary
	case IsSpace(b):
		return classSpace
	}
	return classData
}

// pending reports whether a lone comment marker is still undecided. At the
// end of input it is data.
func (s *scanner) pending() bool {
	return s.comment == commentMaybe
}

func (s *scanner) reset() {
	*s = scanner{boundary: s.boundary}
}

// cut describes one boundary-delimited span found by scan.
type cut struct {
	end     int // exclusive end of the span
	endPos  Pos // position of content[end]
	next    int // where scanning resumes
	nextPos Pos
	found   bool // the span was closed by a boundary byte
	content bool // the span holds more than whitespace and comments
}

func scan(d []byte, off int, pos Pos, boundary byte) cut {
	s := scanner{boundary: boundary}
	c := cut{}
	for i := off; i < len(d); i++ {
		b := d[i]
		cls := s.step(b)
		if s.slashData {
			c.content = true
		}
		switch cls {
		case classBoundary:
			c.end, c.endPos = i, pos
			pos.advance(b)
			c.next, c.nextPos, c.found = i+1, pos, true
			return c
		case classData, classEscape, classEscaped:
			c.content = true
		}
		pos.advance(b)
	}
	if s.pending() {
		c.content = true
	}
	c.end, c.endPos = len(d), pos
	c.next, c.nextPos = len(d), pos
	return c
}

// firstContent finds the first byte from off which is neither whitespace,
// comment nor boundary.
func firstContent(d []byte, off int, pos Pos, boundary byte) (Pos, bool) {
	s := scanner{boundary: boundary}
	var slashPos Pos
	for i := off; i < len(d); i++ {
		b := d[i]
		cls := s.step(b)
		if s.slashData {
			return slashPos, true
		}
		switch cls {
		case classData, classEscape:
			return pos, true
		case classSlash:
			slashPos = pos
		}
		pos.advance(b)
	}
	if s.pending() {
		return slashPos, true
	}
	return pos, false
}
