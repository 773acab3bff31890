package gomap

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/witchof0x20/msd-sub000/decode"
)

// Unmarshal decodes into v, which must be a non-nil pointer. The value is
// built aside and stored in *v only once decoding succeeded, so on error *v
// is left as it was; on success *v holds only what the input provides.
func Unmarshal(d decode.Decoder, v any) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	tmp := reflect.New(val.Elem().Type())
	if err := decodeValue(d, tmp.Elem(), ""); err != nil {
		return err
	}
	val.Elem().Set(tmp.Elem())
	return nil
}

func decodeValue(d decode.Decoder, val reflect.Value, path string) error {
	return unmarshalErr(path, decodeKind(d, val, path))
}

func decodeKind(d decode.Decoder, val reflect.Value, path string) error {
	typ := val.Type()
	if val.CanAddr() {
		ptr := val.Addr()
		if typ.Kind() != reflect.Pointer && ptr.Type().Implements(unmarshalerType) {
			return ptr.Interface().(Unmarshaler).UnmarshalMSD(d)
		}
		if typ.Kind() != reflect.Pointer && ptr.Type().Implements(textUnmarshalerType) {
			s, err := d.String()
			if err != nil {
				return err
			}
			return ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
		}
	}
	if typ == charType {
		r, err := d.Char()
		if err != nil {
			return err
		}
		val.SetInt(int64(r))
		return nil
	}

	switch typ.Kind() {
	case reflect.Bool:
		b, err := d.Bool()
		if err != nil {
			return err
		}
		val.SetBool(b)
	case reflect.Int8:
		return setInt(val, d.Int8)
	case reflect.Int16:
		return setInt(val, d.Int16)
	case reflect.Int32:
		return setInt(val, d.Int32)
	case reflect.Int64, reflect.Int:
		return setInt(val, d.Int64)
	case reflect.Uint8:
		return setUint(val, d.Uint8)
	case reflect.Uint16:
		return setUint(val, d.Uint16)
	case reflect.Uint32:
		return setUint(val, d.Uint32)
	case reflect.Uint64, reflect.Uint, reflect.Uintptr:
		return setUint(val, d.Uint64)
	case reflect.Float32:
		f, err := d.Float32()
		if err != nil {
			return err
		}
		val.SetFloat(float64(f))
	case reflect.Float64:
		f, err := d.Float64()
		if err != nil {
			return err
		}
		val.SetFloat(f)
	case reflect.String:
		s, err := d.String()
		if err != nil {
			return err
		}
		val.SetString(s)
	case reflect.Pointer:
		return decodePointer(d, val, path)
	case reflect.Slice:
		if isBytes(typ) {
			b, err := d.Bytes()
			if err != nil {
				return err
			}
			val.SetBytes(b)
			return nil
		}
		return decodeSlice(d, val, path)
	case reflect.Array:
		return d.Tuple(val.Len(), func(i int, ed decode.Decoder) error {
			return decodeValue(ed, val.Index(i), indexPath(path, i))
		})
	case reflect.Map:
		return decodeMap(d, val, path)
	case reflect.Struct:
		return decodeStruct(d, val, path)
	default:
		return &TypeError{FieldPath: path, Type: typ.String()}
	}
	return nil
}

func setInt[T int8 | int16 | int32 | int64](val reflect.Value, f func() (T, error)) error {
	i, err := f()
	if err != nil {
		return err
	}
	if val.OverflowInt(int64(i)) {
		return fmt.Errorf("%d overflows %s", i, val.Type())
	}
	val.SetInt(int64(i))
	return nil
}

func setUint[T uint8 | uint16 | uint32 | uint64](val reflect.Value, f func() (T, error)) error {
	u, err := f()
	if err != nil {
		return err
	}
	if val.OverflowUint(uint64(u)) {
		return fmt.Errorf("%d overflows %s", u, val.Type())
	}
	val.SetUint(uint64(u))
	return nil
}

func decodePointer(d decode.Decoder, val reflect.Value, path string) error {
	elem := reflect.New(val.Type().Elem())
	ok, err := d.Option(func(od decode.Decoder) error {
		return decodeValue(od, elem.Elem(), path)
	})
	if err != nil {
		return err
	}
	if ok {
		val.Set(elem)
	} else {
		val.Set(reflect.Zero(val.Type()))
	}
	return nil
}

func decodeSlice(d decode.Decoder, val reflect.Value, path string) error {
	res := reflect.MakeSlice(val.Type(), 0, 0)
	err := d.Seq(func(ed decode.Decoder) error {
		elem := reflect.New(val.Type().Elem()).Elem()
		if err := decodeValue(ed, elem, indexPath(path, res.Len())); err != nil {
			return err
		}
		res = reflect.Append(res, elem)
		return nil
	})
	if err != nil {
		return err
	}
	val.Set(res)
	return nil
}

func decodeMap(d decode.Decoder, val reflect.Value, path string) error {
	typ := val.Type()
	if val.IsNil() {
		val.Set(reflect.MakeMap(typ))
	}
	return d.Map(func(kd, vd decode.Decoder) error {
		key := reflect.New(typ.Key()).Elem()
		if err := decodeValue(kd, key, path); err != nil {
			return err
		}
		elem := reflect.New(typ.Elem()).Elem()
		if err := decodeValue(vd, elem, joinPath(path, fmt.Sprint(key.Interface()))); err != nil {
			return err
		}
		val.SetMapIndex(key, elem)
		return nil
	})
}

func decodeStruct(d decode.Decoder, val reflect.Value, path string) error {
	info, err := GetStructInfo(val.Type())
	if err != nil {
		return &TypeError{FieldPath: path, Type: val.Type().String(), Message: err.Error()}
	}
	switch info.Kind {
	case UnitKind:
		return d.Unit()
	case TupleKind:
		return d.Tuple(len(info.Fields), func(i int, ed decode.Decoder) error {
			f := info.Fields[i]
			return decodeField(ed, f, val.Field(f.Index), joinPath(path, f.Name))
		})
	case EnumKind:
		return decodeEnum(d, info, val, path)
	}
	seen := make(map[string]bool, len(info.Fields))
	err = d.Struct(info.Name, info.Names(), func(name string, fd decode.Decoder) error {
		f := info.Lookup(name)
		seen[name] = true
		return decodeField(fd, f, val.Field(f.Index), joinPath(path, name))
	})
	if err != nil {
		return err
	}
	for _, f := range info.Fields {
		if f.Required && !seen[f.Name] {
			return &UnmarshalError{FieldPath: joinPath(path, f.Name), Message: "missing required field"}
		}
	}
	return nil
}

func decodeField(d decode.Decoder, f *FieldInfo, val reflect.Value, path string) error {
	if !f.Char {
		return decodeValue(d, val, path)
	}
	r, err := d.Char()
	if err != nil {
		return unmarshalErr(path, err)
	}
	val.SetInt(int64(r))
	return nil
}

func decodeEnum(d decode.Decoder, info *StructInfo, val reflect.Value, path string) error {
	return d.Enum(info.Name, info.Names(), func(name string, va decode.VariantAccess) error {
		f := info.Lookup(name)
		vpath := joinPath(path, name)
		payload := reflect.New(f.Type.Elem())
		if err := decodeVariant(va, payload.Elem(), vpath); err != nil {
			return err
		}
		val.Set(reflect.Zero(val.Type()))
		val.Field(f.Index).Set(payload)
		return nil
	})
}

func decodeVariant(va decode.VariantAccess, val reflect.Value, path string) error {
	if val.Kind() == reflect.Struct {
		info, err := GetStructInfo(val.Type())
		if err != nil {
			return &TypeError{FieldPath: path, Type: val.Type().String(), Message: err.Error()}
		}
		switch info.Kind {
		case UnitKind:
			return unmarshalErr(path, va.Unit())
		case TupleKind:
			return unmarshalErr(path, va.Tuple(len(info.Fields), func(i int, ed decode.Decoder) error {
				f := info.Fields[i]
				return decodeField(ed, f, val.Field(f.Index), joinPath(path, f.Name))
			}))
		}
	}
	return unmarshalErr(path, va.Newtype(func(nd decode.Decoder) error {
		return decodeValue(nd, val, path)
	}))
}
