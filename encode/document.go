package encode

import (
	"io"

	"github.com/witchof0x20/msd-sub000/debug"
)

// docEncoder writes whole tags.
type docEncoder struct {
	scalars
	w  io.Writer
	es *EncState
}

func (d *docEncoder) init() *docEncoder {
	d.scalars = scalars{sink: d}
	return d
}

func (d *docEncoder) write(t *tagBuf) error {
	out := t.close()
	if debug.Encode() {
		debug.Logf("encode tag %s\n", out)
	}
	_, err := d.w.Write(out)
	return err
}

// tag writes one tag whose content is produced by fn. Unless force is set,
// a tag to which fn added nothing past its first m bytes is dropped.
func (d *docEncoder) tag(t *tagBuf, force bool, fn func(*tagEncoder) error) error {
	m := t.mark()
	te := newTagEncoder(d, t, "")
	if err := fn(te); err != nil {
		return err
	}
	if !force && !t.grew(m) {
		return nil
	}
	return d.write(t)
}

func (d *docEncoder) emit(a ColorAttr, raw []byte) error {
	t := newTagBuf(d.es)
	t.cell(a, raw)
	return d.write(t)
}

func (d *docEncoder) None() error {
	return nil
}

func (d *docEncoder) Some(fn func(Encoder) error) error {
	return fn(d)
}

func (d *docEncoder) Newtype(fn func(Encoder) error) error {
	return fn(d)
}

func (d *docEncoder) Tuple(n int, fn func(int, Encoder) error) error {
	t := newTagBuf(d.es)
	if err := newRowEncoder(t).Tuple(n, fn); err != nil {
		return err
	}
	return d.write(t)
}

type docStruct struct {
	d *docEncoder
}

func (s docStruct) Field(name string, fn func(Encoder) error) error {
	t := newTagBuf(s.d.es)
	t.cell(FieldColor, []byte(name))
	m := t.mark()
	te := newTagEncoder(s.d, t, name)
	if err := fn(te); err != nil {
		return err
	}
	if !t.grew(m) {
		return nil
	}
	return s.d.write(t)
}

func (d *docEncoder) Struct(_ string, fn func(StructEncoder) error) error {
	return fn(docStruct{d})
}

type docMap struct {
	d *docEncoder
}

func (m docMap) Entry(key, value func(Encoder) error) error {
	t := newTagBuf(m.d.es)
	if err := key(newKeyEncoder(t)); err != nil {
		return err
	}
	return m.d.tag(t, true, func(te *tagEncoder) error { return value(te) })
}

func (d *docEncoder) Map(fn func(MapEncoder) error) error {
	return fn(docMap{d})
}

type docSeq struct {
	d *docEncoder
}

func (s docSeq) Element(fn func(Encoder) error) error {
	return s.d.tag(newTagBuf(s.d.es), true, func(te *tagEncoder) error { return fn(te) })
}

func (d *docEncoder) Seq(fn func(SeqEncoder) error) error {
	return fn(docSeq{d})
}

func (d *docEncoder) UnitVariant(_, variant string) error {
	t := newTagBuf(d.es)
	t.cell(VariantColor, []byte(variant))
	return d.write(t)
}

func (d *docEncoder) NewtypeVariant(_, variant string, fn func(Encoder) error) error {
	t := newTagBuf(d.es)
	t.cell(VariantColor, []byte(variant))
	return d.tag(t, true, func(te *tagEncoder) error { return fn(te) })
}

func (d *docEncoder) TupleVariant(_, variant string, n int, fn func(int, Encoder) error) error {
	t := newTagBuf(d.es)
	t.cell(VariantColor, []byte(variant))
	if err := newRowEncoder(t).Tuple(n, fn); err != nil {
		return err
	}
	return d.write(t)
}
