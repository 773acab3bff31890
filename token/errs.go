package token

import (
	"errors"
	"fmt"
)

// Structural errors. These poison a [Tags] stream.
var (
	ErrEndOfFile   = errors.New("end of file")
	ErrEndOfTag    = errors.New("end of tag")
	ErrEndOfValues = errors.New("end of values")
	ErrExpectedTag = errors.New("expected tag")
	ErrIo          = errors.New("io error")
)

// Content errors: a cell does not hold the requested kind.
var (
	ErrExpectedBool       = errors.New("expected bool")
	ErrExpectedInt8       = errors.New("expected i8")
	ErrExpectedInt16      = errors.New("expected i16")
	ErrExpectedInt32      = errors.New("expected i32")
	ErrExpectedInt64      = errors.New("expected i64")
	ErrExpectedUint8      = errors.New("expected u8")
	ErrExpectedUint16     = errors.New("expected u16")
	ErrExpectedUint32     = errors.New("expected u32")
	ErrExpectedUint64     = errors.New("expected u64")
	ErrExpectedFloat32    = errors.New("expected f32")
	ErrExpectedFloat64    = errors.New("expected f64")
	ErrExpectedChar       = errors.New("expected char")
	ErrExpectedString     = errors.New("expected string")
	ErrExpectedUnit       = errors.New("expected unit")
	ErrExpectedIdentifier = errors.New("expected identifier")
)

// Protocol errors: content was left over where none was allowed.
var (
	ErrUnexpectedValue  = errors.New("unexpected value")
	ErrUnexpectedValues = errors.New("unexpected values")
	ErrUnexpectedTag    = errors.New("unexpected tag")
)

// Error attaches a source position to an error.
type Error struct {
	Err error
	Pos Pos
}

func NewError(e error, p Pos) *Error {
	return &Error{Err: e, Pos: p}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithPos wraps err with p unless it already carries a position.
func WithPos(err error, p Pos) error {
	if err == nil {
		return nil
	}
	var te *Error
	if errors.As(err, &te) {
		return err
	}
	return NewError(err, p)
}

func ioErr(e error, p Pos) *Error {
	return NewError(fmt.Errorf("%w: %w", ErrIo, e), p)
}
