package encode

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnsupported is returned when a shape cannot be written at the level it
// was requested.
var ErrUnsupported = errors.New("unsupported shape")

// Encoder mirrors decode.Decoder.
type Encoder interface {
	Bool(bool) error
	Int8(int8) error
	Int16(int16) error
	Int32(int32) error
	Int64(int64) error
	Uint8(uint8) error
	Uint16(uint16) error
	Uint32(uint32) error
	Uint64(uint64) error
	Float32(float32) error
	Float64(float64) error
	Char(rune) error
	String(string) error
	Bytes([]byte) error
	Unit() error

	// None writes an absent option, which is nothing at all.
	None() error
	Some(fn func(Encoder) error) error
	Newtype(fn func(Encoder) error) error
	Tuple(n int, fn func(i int, e Encoder) error) error
	Struct(name string, fn func(StructEncoder) error) error
	Map(fn func(MapEncoder) error) error
	Seq(fn func(SeqEncoder) error) error

	UnitVariant(enum, variant string) error
	NewtypeVariant(enum, variant string, fn func(Encoder) error) error
	TupleVariant(enum, variant string, n int, fn func(i int, e Encoder) error) error
}

type StructEncoder interface {
	Field(name string, fn func(Encoder) error) error
}

type MapEncoder interface {
	Entry(key, value func(Encoder) error) error
}

type SeqEncoder interface {
	Element(fn func(Encoder) error) error
}

type EncState struct {
	newlines bool
	Color    func(ColorAttr, string) string
}

// New returns an Encoder writing a document to w. Each tag is written to w
// in one piece once it is complete.
func New(w io.Writer, opts ...EncodeOption) Encoder {
	es := &EncState{newlines: true}
	for _, opt := range opts {
		opt(es)
	}
	return (&docEncoder{w: w, es: es}).init()
}

func unsupported(shape, level string) error {
	return fmt.Errorf("%w: %s in a %s", ErrUnsupported, shape, level)
}
