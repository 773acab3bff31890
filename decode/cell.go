package decode

import "github.com/witchof0x20/msd-sub000/token"

// cellDecoder reads a single cell, such as a map key.
type cellDecoder struct {
	scalars
	v    token.Value
	used bool
}

func newCellDecoder(v token.Value) *cellDecoder {
	d := &cellDecoder{v: v}
	d.scalars = scalars{src: d}
	return d
}

func (d *cellDecoder) Pos() token.Pos {
	return d.v.Pos
}

func (d *cellDecoder) cell(string) (token.Value, error) {
	if d.used {
		return token.Value{}, token.NewError(token.ErrEndOfValues, d.v.Pos)
	}
	d.used = true
	return d.v, nil
}

func (d *cellDecoder) done() error {
	return nil
}

// Option is present unless the cell is blank.
func (d *cellDecoder) Option(fn func(Decoder) error) (bool, error) {
	if d.used || len(d.v.Trimmed()) == 0 {
		return false, nil
	}
	return true, visit(d.v.Pos, func() error { return fn(d) })
}

func (d *cellDecoder) Newtype(fn func(Decoder) error) error {
	return visit(d.v.Pos, func() error { return fn(d) })
}

func (d *cellDecoder) Tuple(n int, fn func(int, Decoder) error) error {
	if n != 1 {
		return unsupported("tuple", "cell", d.v.Pos)
	}
	return visit(d.v.Pos, func() error { return fn(0, d) })
}

func (d *cellDecoder) Struct(name string, _ []string, _ func(string, Decoder) error) error {
	return unsupported("struct "+name, "cell", d.v.Pos)
}

func (d *cellDecoder) Map(func(key, value Decoder) error) error {
	return unsupported("map", "cell", d.v.Pos)
}

func (d *cellDecoder) Seq(func(Decoder) error) error {
	return unsupported("seq", "cell", d.v.Pos)
}

// Enum reads a unit variant named by the cell.
func (d *cellDecoder) Enum(name string, variants []string, fn func(string, VariantAccess) error) error {
	id, err := d.v.Identifier()
	if err != nil {
		return err
	}
	if !contains(variants, id) {
		return token.NewError(ErrUnknownVariant, d.v.Pos)
	}
	d.used = true
	return visit(d.v.Pos, func() error { return fn(id, cellVariant{d.v.Pos}) })
}

type cellVariant struct {
	pos token.Pos
}

func (cellVariant) Unit() error {
	return nil
}

func (v cellVariant) Newtype(func(Decoder) error) error {
	return unsupported("newtype variant", "cell", v.pos)
}

func (v cellVariant) Tuple(int, func(int, Decoder) error) error {
	return unsupported("tuple variant", "cell", v.pos)
}
