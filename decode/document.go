package decode

import (
	"errors"

	"github.com/witchof0x20/msd-sub000/token"
)

// docDecoder reads from the tag stream: records, maps and sequences take one
// tag per field, entry or element.
type docDecoder struct {
	scalars
	tags *token.Tags

	// scalar state between cell and done
	tag *token.Tag
	row *token.Values
}

func newDocDecoder(tags *token.Tags) *docDecoder {
	d := &docDecoder{tags: tags}
	d.scalars = scalars{src: d}
	return d
}

func (d *docDecoder) Pos() token.Pos {
	return d.tags.Pos()
}

// first pulls a tag and its first row.
func (d *docDecoder) first() (*token.Tag, *token.Values, error) {
	tag, err := d.tags.Next()
	if err != nil {
		return nil, nil, err
	}
	row, err := tag.Next()
	if err != nil {
		return nil, nil, err
	}
	return tag, row, nil
}

func (d *docDecoder) cell(kind string) (token.Value, error) {
	trace("document", kind, d.tags.Pos())
	tag, row, err := d.first()
	if err != nil {
		return token.Value{}, err
	}
	d.tag, d.row = tag, row
	return row.Next()
}

func (d *docDecoder) done() error {
	tag, row := d.tag, d.row
	d.tag, d.row = nil, nil
	if err := row.AssertExhausted(); err != nil {
		return err
	}
	return tag.AssertExhausted()
}

func (d *docDecoder) Option(fn func(Decoder) error) (bool, error) {
	trace("document", "option", d.tags.Pos())
	ok, err := d.tags.HasNext()
	if err != nil || !ok {
		return false, err
	}
	return true, visit(d.tags.Pos(), func() error { return fn(d) })
}

func (d *docDecoder) Newtype(fn func(Decoder) error) error {
	return visit(d.tags.Pos(), func() error { return fn(d) })
}

func (d *docDecoder) Tuple(n int, fn func(int, Decoder) error) error {
	trace("document", "tuple", d.tags.Pos())
	tag, row, err := d.first()
	if err != nil {
		return err
	}
	rd := newRowDecoder(row)
	if err := rd.Tuple(n, fn); err != nil {
		return err
	}
	if err := row.AssertExhausted(); err != nil {
		return err
	}
	return tag.AssertExhausted()
}

func (d *docDecoder) Struct(name string, fields []string, fn func(string, Decoder) error) error {
	trace("document", "struct "+name, d.tags.Pos())
	seen := fieldSet(fields)
	for {
		ok, err := d.tags.HasNext()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		tag, row, err := d.first()
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
		if !claim(seen, id) {
			tag.Reset()
			d.tags.Revisit(tag.Store())
			return nil
		}
		td := newTagDecoder(d.tags, tag, row, id)
		if err := visit(key.Pos, func() error { return fn(id, td) }); err != nil {
			return err
		}
		if err := td.end(); err != nil {
			return err
		}
	}
}

func (d *docDecoder) Map(fn func(key, value Decoder) error) error {
	trace("document", "map", d.tags.Pos())
	for {
		ok, err := d.tags.HasNext()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		tag, row, err := d.first()
		if err != nil {
			return err
		}
		key, err := row.Next()
		if err != nil {
			return err
		}
		td := newTagDecoder(d.tags, tag, row, "")
		if err := visit(key.Pos, func() error { return fn(newCellDecoder(key), td) }); err != nil {
			return err
		}
		if err := td.end(); err != nil {
			return err
		}
	}
}

func (d *docDecoder) Seq(fn func(Decoder) error) error {
	trace("document", "seq", d.tags.Pos())
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
		td := newTagDecoder(d.tags, tag, nil, "")
		if err := visit(tag.Pos(), func() error { return fn(td) }); err != nil {
			return err
		}
		if err := td.end(); err != nil {
			return err
		}
	}
}

func (d *docDecoder) Enum(name string, variants []string, fn func(string, VariantAccess) error) error {
	trace("document", "enum "+name, d.tags.Pos())
	tag, row, err := d.first()
	if err != nil {
		return err
	}
	td := newTagDecoder(d.tags, tag, row, "")
	return td.Enum(name, variants, fn)
}

// endOfTag reports whether err says a tag has no more rows.
func endOfTag(err error) bool {
	return errors.Is(err, token.ErrEndOfTag)
}
