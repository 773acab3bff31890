package token

import "bytes"

// Cleaner yields the bytes of raw content with escapes resolved and comments
// removed. A comment's closing newline is kept so that line counts of the
// cleaned text still agree with the source.
//
// A Cleaner is a value: copying one forks the iteration.
type Cleaner struct {
	d []byte
	i int
}

func Clean(d []byte) Cleaner {
	return Cleaner{d: d}
}

// Unescapes reports whether an escape marker in front of b is removed by
// Clean.
func Unescapes(b byte) bool {
	return IsReserved(b) || b == Comment
}

func (c *Cleaner) Next() (byte, bool) {
	if c.i >= len(c.d) {
		return 0, false
	}
	b := c.d[c.i]
	c.i++
	switch b {
	case Escape:
		if c.i < len(c.d) && Unescapes(c.d[c.i]) {
			b = c.d[c.i]
			c.i++
		}
	case Comment:
		if c.i < len(c.d) && c.d[c.i] == Comment {
			j := bytes.IndexByte(c.d[c.i:], '\n')
			if j < 0 {
				c.i = len(c.d)
				return 0, false
			}
			c.i += j + 1
			return '\n', true
		}
	}
	return b, true
}

// Trimmer drops leading and trailing whitespace from a Cleaner while keeping
// interior whitespace, without buffering.
type Trimmer struct {
	c       Cleaner
	started bool
}

func Trim(c Cleaner) Trimmer {
	return Trimmer{c: c}
}

func (t *Trimmer) Next() (byte, bool) {
	for {
		b, ok := t.c.Next()
		if !ok {
			return 0, false
		}
		if !t.started {
			if IsSpace(b) {
				continue
			}
			t.started = true
			return b, true
		}
		if !IsSpace(b) {
			return b, true
		}
		ahead := t.c
		for {
			nb, ok := ahead.Next()
			if !ok {
				t.c = ahead
				return 0, false
			}
			if !IsSpace(nb) {
				return b, true
			}
		}
	}
}

// CleanBytes collects Clean(d).
func CleanBytes(d []byte) []byte {
	c := Clean(d)
	res := make([]byte, 0, len(d))
	for b, ok := c.Next(); ok; b, ok = c.Next() {
		res = append(res, b)
	}
	return res
}

// TrimBytes collects Trim(Clean(d)).
func TrimBytes(d []byte) []byte {
	t := Trim(Clean(d))
	res := make([]byte, 0, len(d))
	for b, ok := t.Next(); ok; b, ok = t.Next() {
		res = append(res, b)
	}
	return res
}
