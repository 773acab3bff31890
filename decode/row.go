package decode

import "github.com/witchof0x20/msd-sub000/token"

// rowDecoder reads cells from one row. Nested tuples share the row.
type rowDecoder struct {
	scalars
	row   *token.Values
	pos   token.Pos
	pulls int
}

func newRowDecoder(row *token.Values) *rowDecoder {
	d := &rowDecoder{row: row, pos: row.Pos()}
	d.scalars = scalars{src: d}
	return d
}

func (d *rowDecoder) Pos() token.Pos {
	return d.pos
}

func (d *rowDecoder) next() (token.Value, error) {
	v, err := d.row.Next()
	if err != nil {
		return v, err
	}
	d.pos = v.Pos
	d.pulls++
	return v, nil
}

func (d *rowDecoder) cell(kind string) (token.Value, error) {
	trace("row", kind, d.pos)
	return d.next()
}

// done is a no-op: the consumer of the whole row checks it.
func (d *rowDecoder) done() error {
	return nil
}

func (d *rowDecoder) Option(fn func(Decoder) error) (bool, error) {
	if d.row.Exhausted() {
		return false, nil
	}
	return true, visit(d.pos, func() error { return fn(d) })
}

func (d *rowDecoder) Newtype(fn func(Decoder) error) error {
	return visit(d.pos, func() error { return fn(d) })
}

func (d *rowDecoder) Tuple(n int, fn func(int, Decoder) error) error {
	trace("row", "tuple", d.pos)
	for i := 0; i < n; i++ {
		if err := visit(d.pos, func() error { return fn(i, d) }); err != nil {
			return err
		}
	}
	return nil
}

func (d *rowDecoder) Struct(name string, _ []string, _ func(string, Decoder) error) error {
	return unsupported("struct "+name, "row", d.pos)
}

func (d *rowDecoder) Map(func(key, value Decoder) error) error {
	return unsupported("map", "row", d.pos)
}

// Seq takes every cell left in the row.
func (d *rowDecoder) Seq(fn func(Decoder) error) error {
	trace("row", "seq", d.pos)
	for !d.row.Exhausted() {
		before := d.pulls
		if err := visit(d.pos, func() error { return fn(d) }); err != nil {
			return err
		}
		if d.pulls == before {
			return token.NewError(ErrEmptyElement, d.pos)
		}
	}
	return nil
}

func (d *rowDecoder) Enum(name string, variants []string, fn func(string, VariantAccess) error) error {
	trace("row", "enum "+name, d.pos)
	key, err := d.next()
	if err != nil {
		return err
	}
	id, err := key.Identifier()
	if err != nil {
		return err
	}
	if !contains(variants, id) {
		return token.NewError(ErrUnknownVariant, key.Pos)
	}
	return visit(key.Pos, func() error { return fn(id, rowVariant{d}) })
}

type rowVariant struct {
	d *rowDecoder
}

func (v rowVariant) Unit() error {
	return nil
}

func (v rowVariant) Newtype(fn func(Decoder) error) error {
	return v.d.Newtype(fn)
}

func (v rowVariant) Tuple(n int, fn func(int, Decoder) error) error {
	return v.d.Tuple(n, fn)
}
