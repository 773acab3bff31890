package token

import "github.com/witchof0x20/msd-sub000/debug"

// Tag is the content of one tag, split into rows on ';'.
type Tag struct {
	owner   *Tags
	gen     uint64
	content []byte
	start   Pos

	off     int
	pos     Pos
	started bool // a row was handed out since the last reset
	done    bool // the final row was handed out
	pending *StoredValues
}

// StoredTag is a detached Tag: its scan progress without the obligation to
// stay in step with the buffer. It may be attached again (see
// [Tags.Revisit]) only while the buffer it came from has not been refilled.
type StoredTag struct {
	owner   *Tags
	gen     uint64
	content []byte
	start   Pos
	off     int
	pos     Pos
	started bool
	done    bool
	pending *StoredValues
}

func (t *Tag) Store() StoredTag {
	t.check()
	return StoredTag{
		owner:   t.owner,
		gen:     t.gen,
		content: t.content,
		start:   t.start,
		off:     t.off,
		pos:     t.pos,
		started: t.started,
		done:    t.done,
		pending: t.pending,
	}
}

func (s *StoredTag) attach(owner *Tags) *Tag {
	if s.owner != owner || s.gen != owner.gen {
		panic("token: stored tag is stale")
	}
	return &Tag{
		owner:   s.owner,
		gen:     s.gen,
		content: s.content,
		start:   s.start,
		off:     s.off,
		pos:     s.pos,
		started: s.started,
		done:    s.done,
		pending: s.pending,
	}
}

func (t *Tag) check() {
	if t.owner != nil && t.owner.gen != t.gen {
		panic("token: tag used after its buffer was refilled")
	}
}

// Pos is the position of the first content byte, just after the sigil.
func (t *Tag) Pos() Pos {
	return t.start
}

// Bytes returns the raw content of the tag, escapes and comments included.
func (t *Tag) Bytes() []byte {
	t.check()
	return t.content
}

// Next returns the next row. The first row is always produced, even for an
// empty tag; after that, a trailing row holding nothing but whitespace and
// comments is not a row, and Next fails with ErrEndOfTag.
func (t *Tag) Next() (*Values, error) {
	t.check()
	if t.pending != nil {
		s := t.pending
		t.pending = nil
		return s.attach(), nil
	}
	if t.done {
		return nil, NewError(ErrEndOfTag, t.pos)
	}
	startOff, startPos := t.off, t.pos
	c := scan(t.content, t.off, t.pos, StmtSep)
	t.off, t.pos = c.next, c.nextPos
	if !c.found {
		t.done = true
		if t.started && !c.content {
			return nil, NewError(ErrEndOfTag, startPos)
		}
	}
	t.started = true
	if debug.Rows() {
		debug.Logf("row at %s: %s\n", startPos, t.content[startOff:c.end])
	}
	return &Values{
		owner:   t.owner,
		gen:     t.gen,
		content: t.content[startOff:c.end],
		start:   startPos,
		pos:     startPos,
		last:    startPos,
	}, nil
}

// Reset rewinds the tag to its first row and drops any revisited row.
func (t *Tag) Reset() {
	t.off = 0
	t.pos = t.start
	t.started = false
	t.done = false
	t.pending = nil
}

// Revisit pushes a row back so that the next call to Next returns it again.
func (t *Tag) Revisit(v StoredValues) {
	if t.pending != nil {
		panic("token: Tag already holds a revisited row")
	}
	t.pending = &v
}

// AssertExhausted fails with ErrUnexpectedValues at the first byte of
// content which no row has consumed.
func (t *Tag) AssertExhausted() error {
	t.check()
	if t.pending != nil {
		return NewError(ErrUnexpectedValues, t.pending.start)
	}
	if t.done {
		return nil
	}
	if p, ok := firstContent(t.content, t.off, t.pos, StmtSep); ok {
		return NewError(ErrUnexpectedValues, p)
	}
	return nil
}

// Values is one row of a tag, split into cells on ':'.
type Values struct {
	owner   *Tags
	gen     uint64
	content []byte
	start   Pos

	off       int
	pos       Pos
	last      Pos // end of the last cell handed out
	exhausted bool
}

// StoredValues is a detached Values; see [StoredTag].
type StoredValues struct {
	owner     *Tags
	gen       uint64
	content   []byte
	start     Pos
	off       int
	pos       Pos
	last      Pos
	exhausted bool
}

func (v *Values) Store() StoredValues {
	v.check()
	return StoredValues{
		owner:     v.owner,
		gen:       v.gen,
		content:   v.content,
		start:     v.start,
		off:       v.off,
		pos:       v.pos,
		last:      v.last,
		exhausted: v.exhausted,
	}
}

func (s *StoredValues) attach() *Values {
	if s.owner != nil && s.owner.gen != s.gen {
		panic("token: stored row is stale")
	}
	return &Values{
		owner:     s.owner,
		gen:       s.gen,
		content:   s.content,
		start:     s.start,
		off:       s.off,
		pos:       s.pos,
		last:      s.last,
		exhausted: s.exhausted,
	}
}

func (v *Values) check() {
	if v.owner != nil && v.owner.gen != v.gen {
		panic("token: row used after its buffer was refilled")
	}
}

// Pos is the position of the first byte of the row.
func (v *Values) Pos() Pos {
	return v.start
}

// Bytes returns the raw content of the row.
func (v *Values) Bytes() []byte {
	v.check()
	return v.content
}

// Next returns the next cell. A row always holds at least one, possibly
// empty, cell; after the last one Next fails with ErrEndOfValues.
func (v *Values) Next() (Value, error) {
	v.check()
	if v.exhausted {
		return Value{}, NewError(ErrEndOfValues, v.pos)
	}
	c := scan(v.content, v.off, v.pos, FieldSep)
	val := Value{Bytes: v.content[v.off:c.end], Pos: v.pos}
	v.off, v.pos, v.last = c.next, c.nextPos, c.endPos
	if !c.found {
		v.exhausted = true
	}
	return val, nil
}

// Exhausted reports whether the final cell was handed out.
func (v *Values) Exhausted() bool {
	return v.exhausted
}

// Reset rewinds the row to its first cell.
func (v *Values) Reset() {
	v.off = 0
	v.pos = v.start
	v.last = v.start
	v.exhausted = false
}

// AssertExhausted fails with ErrUnexpectedValue, positioned just after the
// last cell handed out, if any cell remains.
func (v *Values) AssertExhausted() error {
	if v.exhausted {
		return nil
	}
	return NewError(ErrUnexpectedValue, v.last)
}
