package token

import (
	"math"
	"unicode/utf8"
)

// Value is a single cell: a view of raw content and the position of its
// first byte. All interpretations are pure functions of the bytes.
type Value struct {
	Bytes []byte
	Pos   Pos
}

func (v Value) fail(e error) error {
	return NewError(e, v.Pos)
}

func (v Value) trim() Trimmer {
	return Trim(Clean(v.Bytes))
}

// Clean returns the cell with escapes resolved and comments removed.
func (v Value) Clean() []byte {
	return CleanBytes(v.Bytes)
}

// Trimmed returns the cleaned cell without surrounding whitespace.
func (v Value) Trimmed() []byte {
	return TrimBytes(v.Bytes)
}

func (v Value) Bool() (bool, error) {
	switch string(v.Trimmed()) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, v.fail(ErrExpectedBool)
}

func (v Value) Int8() (int8, error) {
	i, ok := parseInt(v.trim(), math.MinInt8, math.MaxInt8)
	if !ok {
		return 0, v.fail(ErrExpectedInt8)
	}
	return int8(i), nil
}

func (v Value) Int16() (int16, error) {
	i, ok := parseInt(v.trim(), math.MinInt16, math.MaxInt16)
	if !ok {
		return 0, v.fail(ErrExpectedInt16)
	}
	return int16(i), nil
}

func (v Value) Int32() (int32, error) {
	i, ok := parseInt(v.trim(), math.MinInt32, math.MaxInt32)
	if !ok {
		return 0, v.fail(ErrExpectedInt32)
	}
	return int32(i), nil
}

func (v Value) Int64() (int64, error) {
	i, ok := parseInt(v.trim(), math.MinInt64, math.MaxInt64)
	if !ok {
		return 0, v.fail(ErrExpectedInt64)
	}
	return i, nil
}

func (v Value) Uint8() (uint8, error) {
	u, ok := parseUint(v.trim(), math.MaxUint8)
	if !ok {
		return 0, v.fail(ErrExpectedUint8)
	}
	return uint8(u), nil
}

func (v Value) Uint16() (uint16, error) {
	u, ok := parseUint(v.trim(), math.MaxUint16)
	if !ok {
		return 0, v.fail(ErrExpectedUint16)
	}
	return uint16(u), nil
}

func (v Value) Uint32() (uint32, error) {
	u, ok := parseUint(v.trim(), math.MaxUint32)
	if !ok {
		return 0, v.fail(ErrExpectedUint32)
	}
	return uint32(u), nil
}

func (v Value) Uint64() (uint64, error) {
	u, ok := parseUint(v.trim(), math.MaxUint64)
	if !ok {
		return 0, v.fail(ErrExpectedUint64)
	}
	return u, nil
}

func (v Value) Float32() (float32, error) {
	f, ok := parseFloat(v.Trimmed(), 32)
	if !ok {
		return 0, v.fail(ErrExpectedFloat32)
	}
	return float32(f), nil
}

func (v Value) Float64() (float64, error) {
	f, ok := parseFloat(v.Trimmed(), 64)
	if !ok {
		return 0, v.fail(ErrExpectedFloat64)
	}
	return f, nil
}

// Char reads exactly one UTF-8 encoded character. Surrounding whitespace is
// ignored, except that a cell holding a single whitespace character yields
// that character.
func (v Value) Char() (rune, error) {
	d := v.Trimmed()
	if len(d) == 0 {
		raw := v.Clean()
		if len(raw) == 1 && IsSpace(raw[0]) {
			return rune(raw[0]), nil
		}
		return 0, v.fail(ErrExpectedChar)
	}
	if n := seqLen(d[0]); n == 0 || n != len(d) {
		return 0, v.fail(ErrExpectedChar)
	}
	r, size := utf8.DecodeRune(d)
	if r == utf8.RuneError && size <= 1 {
		return 0, v.fail(ErrExpectedChar)
	}
	return r, nil
}

// seqLen is the length of the UTF-8 sequence introduced by b, 0 if b cannot
// start one.
func seqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	}
	return 0
}

// Text returns the cleaned, untrimmed cell, which must be valid UTF-8.
func (v Value) Text() (string, error) {
	d := v.Clean()
	if !utf8.Valid(d) {
		return "", v.fail(ErrExpectedString)
	}
	return string(d), nil
}

// ByteBuf returns the cleaned, untrimmed cell.
func (v Value) ByteBuf() []byte {
	return v.Clean()
}

// Unit succeeds if the cleaned cell is all whitespace.
func (v Value) Unit() error {
	c := Clean(v.Bytes)
	for b, ok := c.Next(); ok; b, ok = c.Next() {
		if !IsSpace(b) {
			return v.fail(ErrExpectedUnit)
		}
	}
	return nil
}

// Identifier returns the trimmed, cleaned cell, which must be valid UTF-8.
func (v Value) Identifier() (string, error) {
	d := v.Trimmed()
	if !utf8.Valid(d) {
		return "", v.fail(ErrExpectedIdentifier)
	}
	return string(d), nil
}
