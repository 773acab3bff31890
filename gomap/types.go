package gomap

import (
	"encoding"
	"reflect"

	"github.com/witchof0x20/msd-sub000/decode"
	"github.com/witchof0x20/msd-sub000/encode"
)

// Unit is the unit value.
type Unit struct{}

// Char is a rune read and written as a single character rather than a
// number.
type Char rune

// Unmarshaler is implemented by types that decode themselves.
type Unmarshaler interface {
	UnmarshalMSD(decode.Decoder) error
}

// Marshaler is implemented by types that encode themselves.
type Marshaler interface {
	MarshalMSD(encode.Encoder) error
}

var (
	charType            = reflect.TypeFor[Char]()
	unmarshalerType     = reflect.TypeFor[Unmarshaler]()
	marshalerType       = reflect.TypeFor[Marshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
)

func isBytes(typ reflect.Type) bool {
	return typ.Kind() == reflect.Slice && typ.Elem().Kind() == reflect.Uint8
}
