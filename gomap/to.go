package gomap

import (
	"cmp"
	"encoding"
	"fmt"
	"reflect"
	"slices"

	"github.com/witchof0x20/msd-sub000/encode"
)

// Marshal encodes v.
func Marshal(e encode.Encoder, v any) error {
	if v == nil {
		return e.None()
	}
	return encodeValue(e, reflect.ValueOf(v), "")
}

func encodeValue(e encode.Encoder, val reflect.Value, path string) error {
	return marshalErr(path, encodeKind(e, val, path))
}

func encodeKind(e encode.Encoder, val reflect.Value, path string) error {
	typ := val.Type()
	if typ.Kind() != reflect.Pointer && typ.Kind() != reflect.Interface {
		if m, ok := asMarshaler(val); ok {
			return m.MarshalMSD(e)
		}
		if m, ok := asTextMarshaler(val); ok {
			text, err := m.MarshalText()
			if err != nil {
				return err
			}
			return e.String(string(text))
		}
	}
	if typ == charType {
		return e.Char(rune(val.Int()))
	}

	switch typ.Kind() {
	case reflect.Bool:
		return e.Bool(val.Bool())
	case reflect.Int8:
		return e.Int8(int8(val.Int()))
	case reflect.Int16:
		return e.Int16(int16(val.Int()))
	case reflect.Int32:
		return e.Int32(int32(val.Int()))
	case reflect.Int64, reflect.Int:
		return e.Int64(val.Int())
	case reflect.Uint8:
		return e.Uint8(uint8(val.Uint()))
	case reflect.Uint16:
		return e.Uint16(uint16(val.Uint()))
	case reflect.Uint32:
		return e.Uint32(uint32(val.Uint()))
	case reflect.Uint64, reflect.Uint, reflect.Uintptr:
		return e.Uint64(val.Uint())
	case reflect.Float32:
		return e.Float32(float32(val.Float()))
	case reflect.Float64:
		return e.Float64(val.Float())
	case reflect.String:
		return e.String(val.String())
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return e.None()
		}
		return e.Some(func(se encode.Encoder) error {
			return encodeValue(se, val.Elem(), path)
		})
	case reflect.Slice:
		if isBytes(typ) {
			return e.Bytes(val.Bytes())
		}
		return e.Seq(func(s encode.SeqEncoder) error {
			for i := 0; i < val.Len(); i++ {
				elem := val.Index(i)
				err := s.Element(func(ee encode.Encoder) error {
					return encodeValue(ee, elem, indexPath(path, i))
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
	case reflect.Array:
		return e.Tuple(val.Len(), func(i int, ee encode.Encoder) error {
			return encodeValue(ee, val.Index(i), indexPath(path, i))
		})
	case reflect.Map:
		return encodeMap(e, val, path)
	case reflect.Struct:
		return encodeStruct(e, val, path)
	}
	return &TypeError{FieldPath: path, Type: typ.String()}
}

func asMarshaler(val reflect.Value) (Marshaler, bool) {
	if val.Type().Implements(marshalerType) {
		return val.Interface().(Marshaler), true
	}
	if val.CanAddr() && val.Addr().Type().Implements(marshalerType) {
		return val.Addr().Interface().(Marshaler), true
	}
	return nil, false
}

func asTextMarshaler(val reflect.Value) (encoding.TextMarshaler, bool) {
	if val.Type().Implements(textMarshalerType) {
		return val.Interface().(encoding.TextMarshaler), true
	}
	if val.CanAddr() && val.Addr().Type().Implements(textMarshalerType) {
		return val.Addr().Interface().(encoding.TextMarshaler), true
	}
	return nil, false
}

// encodeMap writes entries in key order so output is stable.
func encodeMap(e encode.Encoder, val reflect.Value, path string) error {
	keys := val.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	})
	return e.Map(func(m encode.MapEncoder) error {
		for _, k := range keys {
			kpath := joinPath(path, fmt.Sprint(k.Interface()))
			err := m.Entry(
				func(ke encode.Encoder) error { return encodeValue(ke, k, kpath) },
				func(ve encode.Encoder) error { return encodeValue(ve, val.MapIndex(k), kpath) },
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func encodeStruct(e encode.Encoder, val reflect.Value, path string) error {
	info, err := GetStructInfo(val.Type())
	if err != nil {
		return &TypeError{FieldPath: path, Type: val.Type().String(), Message: err.Error()}
	}
	switch info.Kind {
	case UnitKind:
		return e.Unit()
	case TupleKind:
		return e.Tuple(len(info.Fields), func(i int, ee encode.Encoder) error {
			f := info.Fields[i]
			return encodeField(ee, f, val.Field(f.Index), joinPath(path, f.Name))
		})
	case EnumKind:
		return encodeEnum(e, info, val, path)
	}
	return e.Struct(info.Name, func(s encode.StructEncoder) error {
		for _, f := range info.Fields {
			fv := val.Field(f.Index)
			err := s.Field(f.Name, func(fe encode.Encoder) error {
				return encodeField(fe, f, fv, joinPath(path, f.Name))
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func encodeField(e encode.Encoder, f *FieldInfo, val reflect.Value, path string) error {
	if f.Char {
		return marshalErr(path, e.Char(rune(val.Int())))
	}
	return encodeValue(e, val, path)
}

func encodeEnum(e encode.Encoder, info *StructInfo, val reflect.Value, path string) error {
	var set *FieldInfo
	for _, f := range info.Fields {
		if val.Field(f.Index).IsNil() {
			continue
		}
		if set != nil {
			return &MarshalError{FieldPath: path, Message: fmt.Sprintf("both %s and %s are set", set.Name, f.Name)}
		}
		set = f
	}
	if set == nil {
		return &MarshalError{FieldPath: path, Message: "no variant is set"}
	}
	payload := val.Field(set.Index).Elem()
	vpath := joinPath(path, set.Name)
	if payload.Kind() == reflect.Struct {
		pinfo, err := GetStructInfo(payload.Type())
		if err != nil {
			return &TypeError{FieldPath: vpath, Type: payload.Type().String(), Message: err.Error()}
		}
		switch pinfo.Kind {
		case UnitKind:
			return e.UnitVariant(info.Name, set.Name)
		case TupleKind:
			return e.TupleVariant(info.Name, set.Name, len(pinfo.Fields), func(i int, ee encode.Encoder) error {
				f := pinfo.Fields[i]
				return encodeField(ee, f, payload.Field(f.Index), joinPath(vpath, f.Name))
			})
		}
	}
	return e.NewtypeVariant(info.Name, set.Name, func(ne encode.Encoder) error {
		return encodeValue(ne, payload, vpath)
	})
}
