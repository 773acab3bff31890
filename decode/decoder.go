package decode

import (
	"errors"
	"fmt"

	"github.com/witchof0x20/msd-sub000/debug"
	"github.com/witchof0x20/msd-sub000/token"
)

var (
	// ErrUnsupported is returned when a shape cannot be expressed at the
	// level it was requested.
	ErrUnsupported = errors.New("unsupported shape")
	// ErrUnknownVariant is returned when the identifier of a tagged union is
	// not one of its variants.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrEmptyElement is returned when a sequence element consumed nothing.
	ErrEmptyElement = errors.New("empty sequence element")
)

// Decoder is handed to visitors. Each call consumes exactly the input its
// shape occupies at the decoder's level.
type Decoder interface {
	Bool() (bool, error)
	Int8() (int8, error)
	Int16() (int16, error)
	Int32() (int32, error)
	Int64() (int64, error)
	Uint8() (uint8, error)
	Uint16() (uint16, error)
	Uint32() (uint32, error)
	Uint64() (uint64, error)
	Float32() (float32, error)
	Float64() (float64, error)
	Char() (rune, error)
	String() (string, error)
	Bytes() ([]byte, error)
	Unit() error

	// Option reports whether a value is present and, if so, decodes it
	// with fn.
	Option(fn func(Decoder) error) (bool, error)
	// Newtype decodes a wrapper around a single value.
	Newtype(fn func(Decoder) error) error
	// Tuple calls fn once per element, in order.
	Tuple(n int, fn func(i int, d Decoder) error) error
	// Struct calls fn once for every field present in the input.
	Struct(name string, fields []string, fn func(field string, d Decoder) error) error
	// Map calls fn once per entry; fn decodes the key before the value.
	Map(fn func(key, value Decoder) error) error
	// Seq calls fn once per element.
	Seq(fn func(d Decoder) error) error
	// Enum identifies the variant and hands its payload to fn.
	Enum(name string, variants []string, fn func(variant string, v VariantAccess) error) error

	Pos() token.Pos
}

// VariantAccess decodes the payload of a tagged union variant.
type VariantAccess interface {
	Unit() error
	Newtype(fn func(Decoder) error) error
	Tuple(n int, fn func(i int, d Decoder) error) error
}

// Document returns the decoder for a whole document.
func Document(tags *token.Tags) Decoder {
	return newDocDecoder(tags)
}

// Finish checks that no tag is left once a document has been decoded.
func Finish(tags *token.Tags) error {
	return tags.AssertExhausted()
}

func unsupported(shape, level string, p token.Pos) error {
	return token.NewError(fmt.Errorf("%w: %s in a %s", ErrUnsupported, shape, level), p)
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// visit runs a visitor callback, attaching p to errors that lack a position.
func visit(p token.Pos, fn func() error) error {
	return token.WithPos(fn(), p)
}

func trace(level, shape string, p token.Pos) {
	if debug.Decode() {
		debug.Logf("decode %s %s at %s\n", level, shape, p)
	}
}

func fieldSet(fields []string) map[string]bool {
	res := make(map[string]bool, len(fields))
	for _, f := range fields {
		res[f] = false
	}
	return res
}

// claim marks a record field as seen, reporting false for unknown or
// repeated names.
func claim(seen map[string]bool, id string) bool {
	done, ok := seen[id]
	if !ok || done {
		return false
	}
	seen[id] = true
	return true
}
