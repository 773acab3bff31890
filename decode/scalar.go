package decode

import "github.com/witchof0x20/msd-sub000/token"

// cellSource yields the single cell of a scalar and checks, once it is
// interpreted, that the scalar left nothing behind at its level.
type cellSource interface {
	cell(kind string) (token.Value, error)
	done() error
}

// scalars implements the scalar half of Decoder on top of a cellSource.
type scalars struct {
	src cellSource
}

func scalar[T any](src cellSource, kind string, f func(token.Value) (T, error)) (T, error) {
	var zero T
	v, err := src.cell(kind)
	if err != nil {
		return zero, err
	}
	res, err := f(v)
	if err != nil {
		return zero, err
	}
	if err := src.done(); err != nil {
		return zero, err
	}
	return res, nil
}

func (s scalars) Bool() (bool, error)       { return scalar(s.src, "bool", token.Value.Bool) }
func (s scalars) Int8() (int8, error)       { return scalar(s.src, "i8", token.Value.Int8) }
func (s scalars) Int16() (int16, error)     { return scalar(s.src, "i16", token.Value.Int16) }
func (s scalars) Int32() (int32, error)     { return scalar(s.src, "i32", token.Value.Int32) }
func (s scalars) Int64() (int64, error)     { return scalar(s.src, "i64", token.Value.Int64) }
func (s scalars) Uint8() (uint8, error)     { return scalar(s.src, "u8", token.Value.Uint8) }
func (s scalars) Uint16() (uint16, error)   { return scalar(s.src, "u16", token.Value.Uint16) }
func (s scalars) Uint32() (uint32, error)   { return scalar(s.src, "u32", token.Value.Uint32) }
func (s scalars) Uint64() (uint64, error)   { return scalar(s.src, "u64", token.Value.Uint64) }
func (s scalars) Float32() (float32, error) { return scalar(s.src, "f32", token.Value.Float32) }
func (s scalars) Float64() (float64, error) { return scalar(s.src, "f64", token.Value.Float64) }
func (s scalars) Char() (rune, error)       { return scalar(s.src, "char", token.Value.Char) }
func (s scalars) String() (string, error)   { return scalar(s.src, "string", token.Value.Text) }

func (s scalars) Bytes() ([]byte, error) {
	return scalar(s.src, "bytes", func(v token.Value) ([]byte, error) {
		return v.ByteBuf(), nil
	})
}

func (s scalars) Unit() error {
	_, err := scalar(s.src, "unit", func(v token.Value) (struct{}, error) {
		return struct{}{}, v.Unit()
	})
	return err
}
