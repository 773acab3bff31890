package encode

// cellSink receives the single cell of a scalar.
type cellSink interface {
	emit(a ColorAttr, raw []byte) error
}

// scalars implements the scalar half of Encoder on top of a cellSink.
type scalars struct {
	sink cellSink
}

func (s scalars) Bool(v bool) error       { return s.sink.emit(ValueColor, formatBool(v)) }
func (s scalars) Int8(v int8) error       { return s.sink.emit(ValueColor, formatInt(int64(v))) }
func (s scalars) Int16(v int16) error     { return s.sink.emit(ValueColor, formatInt(int64(v))) }
func (s scalars) Int32(v int32) error     { return s.sink.emit(ValueColor, formatInt(int64(v))) }
func (s scalars) Int64(v int64) error     { return s.sink.emit(ValueColor, formatInt(v)) }
func (s scalars) Uint8(v uint8) error     { return s.sink.emit(ValueColor, formatUint(uint64(v))) }
func (s scalars) Uint16(v uint16) error   { return s.sink.emit(ValueColor, formatUint(uint64(v))) }
func (s scalars) Uint32(v uint32) error   { return s.sink.emit(ValueColor, formatUint(uint64(v))) }
func (s scalars) Uint64(v uint64) error   { return s.sink.emit(ValueColor, formatUint(v)) }
func (s scalars) Float32(v float32) error { return s.sink.emit(ValueColor, formatFloat(float64(v), 32)) }
func (s scalars) Float64(v float64) error { return s.sink.emit(ValueColor, formatFloat(v, 64)) }
func (s scalars) Char(r rune) error       { return s.sink.emit(ValueColor, formatChar(r)) }
func (s scalars) String(v string) error   { return s.sink.emit(ValueColor, []byte(v)) }
func (s scalars) Bytes(v []byte) error    { return s.sink.emit(ValueColor, v) }
func (s scalars) Unit() error             { return s.sink.emit(ValueColor, nil) }
