package encode

// rowEncoder writes cells of the current row.
type rowEncoder struct {
	scalars
	t *tagBuf
}

func newRowEncoder(t *tagBuf) *rowEncoder {
	e := &rowEncoder{t: t}
	e.scalars = scalars{sink: e}
	return e
}

func (e *rowEncoder) emit(a ColorAttr, raw []byte) error {
	e.t.cell(a, raw)
	return nil
}

func (e *rowEncoder) None() error {
	return nil
}

func (e *rowEncoder) Some(fn func(Encoder) error) error {
	return fn(e)
}

func (e *rowEncoder) Newtype(fn func(Encoder) error) error {
	return fn(e)
}

func (e *rowEncoder) Tuple(n int, fn func(int, Encoder) error) error {
	for i := 0; i < n; i++ {
		if err := fn(i, e); err != nil {
			return err
		}
	}
	return nil
}

func (e *rowEncoder) Struct(name string, _ func(StructEncoder) error) error {
	return unsupported("struct "+name, "row")
}

func (e *rowEncoder) Map(func(MapEncoder) error) error {
	return unsupported("map", "row")
}

type rowSeq struct {
	e *rowEncoder
}

func (s rowSeq) Element(fn func(Encoder) error) error {
	return fn(s.e)
}

func (e *rowEncoder) Seq(fn func(SeqEncoder) error) error {
	return fn(rowSeq{e})
}

func (e *rowEncoder) UnitVariant(_, variant string) error {
	e.t.cell(VariantColor, []byte(variant))
	return nil
}

func (e *rowEncoder) NewtypeVariant(_, variant string, fn func(Encoder) error) error {
	e.t.cell(VariantColor, []byte(variant))
	return fn(e)
}

func (e *rowEncoder) TupleVariant(_, variant string, n int, fn func(int, Encoder) error) error {
	e.t.cell(VariantColor, []byte(variant))
	return e.Tuple(n, fn)
}

// keyEncoder writes a single cell naming a map entry.
type keyEncoder struct {
	scalars
	t *tagBuf
}

func newKeyEncoder(t *tagBuf) *keyEncoder {
	e := &keyEncoder{t: t}
	e.scalars = scalars{sink: e}
	return e
}

func (e *keyEncoder) emit(_ ColorAttr, raw []byte) error {
	e.t.cell(FieldColor, raw)
	return nil
}

func (e *keyEncoder) None() error {
	return unsupported("absent option", "map key")
}

func (e *keyEncoder) Some(fn func(Encoder) error) error {
	return fn(e)
}

func (e *keyEncoder) Newtype(fn func(Encoder) error) error {
	return fn(e)
}

func (e *keyEncoder) Tuple(n int, fn func(int, Encoder) error) error {
	if n != 1 {
		return unsupported("tuple", "map key")
	}
	return fn(0, e)
}

func (e *keyEncoder) Struct(name string, _ func(StructEncoder) error) error {
	return unsupported("struct "+name, "map key")
}

func (e *keyEncoder) Map(func(MapEncoder) error) error {
	return unsupported("map", "map key")
}

func (e *keyEncoder) Seq(func(SeqEncoder) error) error {
	return unsupported("seq", "map key")
}

func (e *keyEncoder) UnitVariant(_, variant string) error {
	e.t.cell(VariantColor, []byte(variant))
	return nil
}

func (e *keyEncoder) NewtypeVariant(_, variant string, _ func(Encoder) error) error {
	return unsupported("newtype variant "+variant, "map key")
}

func (e *keyEncoder) TupleVariant(_, variant string, _ int, _ func(int, Encoder) error) error {
	return unsupported("tuple variant "+variant, "map key")
}
