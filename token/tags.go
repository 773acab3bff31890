package token

import (
	"bufio"
	"errors"
	"io"

	"github.com/witchof0x20/msd-sub000/debug"
)

type tagState uint8

const (
	stateNone tagState = iota
	stateInTag
	// an unescaped ';' was read, the tag may be over
	stateEnding
)

// Tags splits a byte source into tags.
//
// A sigil opens a tag at the start of input, after a tag was closed, or at
// column 0 of any line; elsewhere it is content. An unescaped ';' closes the
// tag when followed by whitespace, a sigil or the end of input, and is content
// otherwise.
//
// Any error other than running out of tags poisons the stream: every later
// call to Next returns the same error.
type Tags struct {
	r   io.ByteReader
	buf []byte
	// gen counts buffer refills; views remember the generation they were
	// cut from.
	gen uint64

	pos       Pos
	state     tagState
	outer     scanner // between tags
	inner     scanner // inside a tag
	lineStart bool
	slashPos  Pos
	start     Pos

	err    error
	stored *StoredTag
}

// NewTags reads tags from r. r is buffered unless it is already an
// io.ByteReader.
func NewTags(r io.Reader) *Tags {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Tags{
		r:     br,
		outer: scanner{boundary: Sigil},
		inner: scanner{boundary: StmtSep},
	}
}

// Next returns the next tag. The returned tag and every row and cell taken
// from it are only valid until the following call to Next or HasNext.
//
// At the end of input Next returns an error wrapping ErrEndOfFile.
func (t *Tags) Next() (*Tag, error) {
	if t.stored != nil {
		s := t.stored
		t.stored = nil
		return s.attach(t), nil
	}
	if t.err != nil {
		return nil, t.err
	}
	tag, err := t.scan()
	if err != nil {
		t.err = err
		return nil, err
	}
	if debug.Tags() {
		debug.Logf("tag at %s: %s\n", tag.start, tag.content)
	}
	return tag, nil
}

// HasNext reports whether Next would return a tag. The tag it finds, if any,
// is parked in the pushback slot, so it must not be called while a revisited
// tag is pending from elsewhere.
func (t *Tags) HasNext() (bool, error) {
	if t.stored != nil {
		return true, nil
	}
	tag, err := t.Next()
	if errors.Is(err, ErrEndOfFile) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	t.Revisit(tag.Store())
	return true, nil
}

// Revisit pushes a tag back so that the next call to Next returns it again.
// Only one tag may be pending at a time, and it must have been stored since
// the last refill.
func (t *Tags) Revisit(s StoredTag) {
	if t.stored != nil {
		panic("token: Tags already holds a revisited tag")
	}
	if s.owner != t || s.gen != t.gen {
		panic("token: revisited tag is stale")
	}
	t.stored = &s
}

// AssertExhausted fails with ErrUnexpectedTag if another tag follows.
func (t *Tags) AssertExhausted() error {
	has, err := t.HasNext()
	if err != nil {
		return err
	}
	if has {
		return NewError(ErrUnexpectedTag, t.stored.start)
	}
	return nil
}

// Pos is the position of the next unread byte.
func (t *Tags) Pos() Pos {
	return t.pos
}

func (t *Tags) scan() (*Tag, error) {
	t.buf = t.buf[:0]
	t.gen++
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			if err != io.EOF {
				return nil, ioErr(err, t.pos)
			}
			return t.finish()
		}
		p := t.pos
		t.pos.advance(b)
		switch t.state {
		case stateNone:
			if err := t.outside(b, p); err != nil {
				return nil, err
			}
			continue
		case stateEnding:
			if b == Sigil {
				tag := t.emit()
				t.open()
				return tag, nil
			}
			if IsSpace(b) {
				tag := t.emit()
				t.close()
				return tag, nil
			}
			// the ';' was data after all
			t.buf = append(t.buf, StmtSep)
			t.state = stateInTag
		}
		if t.lineStart && b == Sigil && !t.inner.escaping {
			tag := t.emit()
			t.open()
			return tag, nil
		}
		t.lineStart = b == '\n'
		if t.inner.step(b) == classBoundary {
			t.state = stateEnding
			continue
		}
		t.buf = append(t.buf, b)
	}
}

func (t *Tags) outside(b byte, p Pos) error {
	cls := t.outer.step(b)
	if t.outer.slashData {
		return NewError(ErrExpectedTag, t.slashPos)
	}
	switch cls {
	case classBoundary:
		t.open()
		return nil
	case classSlash:
		t.slashPos = p
		return nil
	case classSpace, classComment:
		return nil
	}
	return NewError(ErrExpectedTag, p)
}

func (t *Tags) finish() (*Tag, error) {
	if t.state == stateNone {
		if t.outer.pending() {
			return nil, NewError(ErrExpectedTag, t.slashPos)
		}
		return nil, NewError(ErrEndOfFile, t.pos)
	}
	tag := t.emit()
	t.close()
	return tag, nil
}

// open starts a tag whose content begins at the current position.
func (t *Tags) open() {
	t.state = stateInTag
	t.inner.reset()
	t.lineStart = false
	t.start = t.pos
}

func (t *Tags) close() {
	t.state = stateNone
	t.outer.reset()
}

func (t *Tags) emit() *Tag {
	return &Tag{
		owner:   t,
		gen:     t.gen,
		content: t.buf,
		start:   t.start,
		pos:     t.start,
	}
}
