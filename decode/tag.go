package decode

import (
	"github.com/witchof0x20/msd-sub000/token"
)

// tagDecoder reads the rest of one tag. row, when set, is a row of which
// some cells were already taken, typically the field identifier. field is
// the record field the tag was matched to, if any.
type tagDecoder struct {
	scalars
	tags  *token.Tags
	tag   *token.Tag
	row   *token.Values
	field string

	// released is set once the tag was handed back to the tag stream.
	released bool
}

func newTagDecoder(tags *token.Tags, tag *token.Tag, row *token.Values, field string) *tagDecoder {
	d := &tagDecoder{tags: tags, tag: tag, row: row, field: field}
	d.scalars = scalars{src: d}
	return d
}

func (d *tagDecoder) Pos() token.Pos {
	if d.row != nil {
		return d.row.Pos()
	}
	return d.tag.Pos()
}

// current returns a row with cells left, pulling the next row if needed.
func (d *tagDecoder) current() (*token.Values, error) {
	if d.row != nil && !d.row.Exhausted() {
		return d.row, nil
	}
	row, err := d.tag.Next()
	if err != nil {
		return nil, err
	}
	d.row = row
	return row, nil
}

// settled checks that the partially read row has no cells left, before
// whole rows are consumed.
func (d *tagDecoder) settled() error {
	if d.row == nil {
		return nil
	}
	return d.row.AssertExhausted()
}

// end checks that nothing is left of the tag.
func (d *tagDecoder) end() error {
	if d.released {
		return nil
	}
	if err := d.settled(); err != nil {
		return err
	}
	return d.tag.AssertExhausted()
}

func (d *tagDecoder) cell(kind string) (token.Value, error) {
	trace("tag", kind, d.Pos())
	row, err := d.current()
	if err != nil {
		return token.Value{}, err
	}
	return row.Next()
}

func (d *tagDecoder) done() error {
	return d.end()
}

// remaining reports whether any cell or row is left.
func (d *tagDecoder) remaining() bool {
	if d.row != nil && !d.row.Exhausted() {
		return true
	}
	return d.tag.AssertExhausted() != nil
}

func (d *tagDecoder) Option(fn func(Decoder) error) (bool, error) {
	trace("tag", "option", d.Pos())
	if d.field == "" && !d.remaining() {
		return false, nil
	}
	return true, visit(d.Pos(), func() error { return fn(d) })
}

func (d *tagDecoder) Newtype(fn func(Decoder) error) error {
	return visit(d.Pos(), func() error { return fn(d) })
}

func (d *tagDecoder) Tuple(n int, fn func(int, Decoder) error) error {
	trace("tag", "tuple", d.Pos())
	row, err := d.current()
	if err != nil {
		return err
	}
	if err := newRowDecoder(row).Tuple(n, fn); err != nil {
		return err
	}
	return d.end()
}

// rows consumes whole rows until the tag ends or each returns false. each
// receives the row and its leading cell.
func (d *tagDecoder) rows(each func(row *token.Values, key token.Value) (bool, error)) error {
	if err := d.settled(); err != nil {
		return err
	}
	for {
		row, err := d.tag.Next()
		if endOfTag(err) {
			return nil
		}
		if err != nil {
			return err
		}
		key, err := row.Next()
		if err != nil {
			return err
		}
		more, err := each(row, key)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (d *tagDecoder) Struct(name string, fields []string, fn func(string, Decoder) error) error {
	trace("tag", "struct "+name, d.Pos())
	seen := fieldSet(fields)
	return d.rows(func(row *token.Values, key token.Value) (bool, error) {
		id, err := key.Identifier()
		if err != nil {
			return false, err
		}
		if !claim(seen, id) {
			row.Reset()
			d.tag.Revisit(row.Store())
			return false, nil
		}
		rd := newRowDecoder(row)
		if err := visit(key.Pos, func() error { return fn(id, rd) }); err != nil {
			return false, err
		}
		return true, row.AssertExhausted()
	})
}

func (d *tagDecoder) Map(fn func(key, value Decoder) error) error {
	trace("tag", "map", d.Pos())
	return d.rows(func(row *token.Values, key token.Value) (bool, error) {
		rd := newRowDecoder(row)
		if err := visit(key.Pos, func() error { return fn(newCellDecoder(key), rd) }); err != nil {
			return false, err
		}
		return true, row.AssertExhausted()
	})
}

// Seq reads the elements of a sequence. Bound to a record field, every
// following tag that names the same field is one element, the current tag
// being the first. Otherwise the cells left in the current row are the
// elements, or failing that, each remaining row is one.
func (d *tagDecoder) Seq(fn func(Decoder) error) error {
	trace("tag", "seq", d.Pos())
	if d.field != "" {
		return d.repeated(fn)
	}
	if d.row != nil && !d.row.Exhausted() {
		if err := newRowDecoder(d.row).Seq(fn); err != nil {
			return err
		}
		return d.end()
	}
	err := d.rows(func(row *token.Values, key token.Value) (bool, error) {
		row.Reset()
		rd := newRowDecoder(row)
		if err := visit(key.Pos, func() error { return fn(rd) }); err != nil {
			return false, err
		}
		return true, row.AssertExhausted()
	})
	if err != nil {
		return err
	}
	return d.end()
}

func (d *tagDecoder) repeated(fn func(Decoder) error) error {
	d.tag.Reset()
	d.tags.Revisit(d.tag.Store())
	d.released = true
	for {
		ok, err := d.tags.HasNext()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		tag, err := d.tags.Next()
		if err != nil {
			return err
		}
		row, err := tag.Next()
		if err != nil {
			return err
		}
		key, err := row.Next()
		if err != nil {
			return err
		}
		id, err := key.Identifier()
		if err != nil {
			return err
		}
		if id != d.field {
			tag.Reset()
			d.tags.Revisit(tag.Store())
			return nil
		}
		ed := newTagDecoder(d.tags, tag, row, "")
		if err := visit(key.Pos, func() error { return fn(ed) }); err != nil {
			return err
		}
		if err := ed.end(); err != nil {
			return err
		}
	}
}

func (d *tagDecoder) Enum(name string, variants []string, fn func(string, VariantAccess) error) error {
	trace("tag", "enum "+name, d.Pos())
	row, err := d.current()
	if err != nil {
		return err
	}
	key, err := row.Next()
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
	vd := newTagDecoder(d.tags, d.tag, row, "")
	if err := visit(key.Pos, func() error { return fn(id, &tagVariant{d: vd}) }); err != nil {
		return err
	}
	return vd.end()
}

// tagVariant is the payload of a variant whose identifier was read from a
// tag; a newtype payload may span the rest of the tag.
type tagVariant struct {
	d *tagDecoder
}

func (v *tagVariant) Unit() error {
	return v.d.end()
}

func (v *tagVariant) Newtype(fn func(Decoder) error) error {
	return v.d.Newtype(fn)
}

func (v *tagVariant) Tuple(n int, fn func(int, Decoder) error) error {
	return newRowDecoder(v.d.row).Tuple(n, fn)
}
