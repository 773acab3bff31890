package encode

// tagEncoder writes the rest of a tag. field is the record field the tag
// belongs to, if any.
type tagEncoder struct {
	scalars
	doc   *docEncoder
	t     *tagBuf
	field string
}

func newTagEncoder(doc *docEncoder, t *tagBuf, field string) *tagEncoder {
	e := &tagEncoder{doc: doc, t: t, field: field}
	e.scalars = scalars{sink: e}
	return e
}

func (e *tagEncoder) emit(a ColorAttr, raw []byte) error {
	e.t.cell(a, raw)
	return nil
}

func (e *tagEncoder) None() error {
	return nil
}

func (e *tagEncoder) Some(fn func(Encoder) error) error {
	return fn(e)
}

func (e *tagEncoder) Newtype(fn func(Encoder) error) error {
	return fn(e)
}

func (e *tagEncoder) Tuple(n int, fn func(int, Encoder) error) error {
	return newRowEncoder(e.t).Tuple(n, fn)
}

type tagStruct struct {
	t *tagBuf
}

// Field writes a row, dropped again if the value adds nothing to it.
func (s tagStruct) Field(name string, fn func(Encoder) error) error {
	before := s.t.mark()
	s.t.row()
	s.t.cell(FieldColor, []byte(name))
	m := s.t.mark()
	if err := fn(newRowEncoder(s.t)); err != nil {
		return err
	}
	if !s.t.grew(m) {
		s.t.rewind(before)
	}
	return nil
}

func (e *tagEncoder) Struct(_ string, fn func(StructEncoder) error) error {
	return fn(tagStruct{e.t})
}

type tagMap struct {
	t *tagBuf
}

func (m tagMap) Entry(key, value func(Encoder) error) error {
	m.t.row()
	if err := key(newKeyEncoder(m.t)); err != nil {
		return err
	}
	return value(newRowEncoder(m.t))
}

func (e *tagEncoder) Map(fn func(MapEncoder) error) error {
	return fn(tagMap{e.t})
}

// tagRows writes one row per element.
type tagRows struct {
	t *tagBuf
}

func (s tagRows) Element(fn func(Encoder) error) error {
	s.t.row()
	return fn(newRowEncoder(s.t))
}

// repeated writes one tag per element, each naming the field again.
type repeated struct {
	doc   *docEncoder
	field string
}

func (s repeated) Element(fn func(Encoder) error) error {
	t := newTagBuf(s.doc.es)
	t.cell(FieldColor, []byte(s.field))
	return s.doc.tag(t, true, func(te *tagEncoder) error { return fn(te) })
}

// Seq writes the elements of a record field as repeated tags, those after
// other cells of the current row as further cells, and otherwise one row
// each.
func (e *tagEncoder) Seq(fn func(SeqEncoder) error) error {
	switch {
	case e.field != "":
		return fn(repeated{doc: e.doc, field: e.field})
	case e.t.cells > 0:
		return fn(rowSeq{newRowEncoder(e.t)})
	}
	return fn(tagRows{e.t})
}

func (e *tagEncoder) UnitVariant(_, variant string) error {
	e.t.cell(VariantColor, []byte(variant))
	return nil
}

func (e *tagEncoder) NewtypeVariant(_, variant string, fn func(Encoder) error) error {
	e.t.cell(VariantColor, []byte(variant))
	return fn(newTagEncoder(e.doc, e.t, ""))
}

func (e *tagEncoder) TupleVariant(_, variant string, n int, fn func(int, Encoder) error) error {
	e.t.cell(VariantColor, []byte(variant))
	return newRowEncoder(e.t).Tuple(n, fn)
}
