package gomap

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// StructKind is the shape a struct type maps to.
type StructKind int

const (
	RecordKind StructKind = iota
	TupleKind
	EnumKind
	UnitKind
)

// StructInfo holds what the `msd` tags of a struct type say about it.
type StructInfo struct {
	Kind StructKind
	// Name is the record, tuple or union name, the Go type name unless a
	// marker field sets name=...
	Name   string
	Fields []*FieldInfo
}

// FieldInfo holds field metadata extracted from struct tags
type FieldInfo struct {
	// Index is the index of the field in its struct.
	Index int

	// Name is the field name in the input, the Go field name unless set by
	// field=...
	Name string

	Type reflect.Type

	// Required makes unmarshaling fail when the field is absent.
	Required bool

	// Char reads and writes an integer field as a character.
	Char bool
}

// Names lists the field names in declaration order.
func (s *StructInfo) Names() []string {
	res := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		res[i] = f.Name
	}
	return res
}

// Lookup finds a field by input name.
func (s *StructInfo) Lookup(name string) *FieldInfo {
	for _, f := range s.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// ParseStructTag parses a struct tag string and returns a map of key-value pairs.
// Handles comma or space separated parts: `msd:"field=name,required"`
// Supports quoted values with spaces: `msd:"field='a name'"`
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)
	var (
		parts   []string
		current strings.Builder
		quote   byte
	)
	flush := func() {
		if part := strings.TrimSpace(current.String()); part != "" {
			parts = append(parts, part)
		}
		current.Reset()
	}
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			current.WriteByte(c)
		case c == '\'' || c == '"':
			quote = c
			current.WriteByte(c)
		case c == ',' || c == ' ':
			flush()
		default:
			current.WriteByte(c)
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("invalid tag: unterminated quote in %q", tag)
	}
	flush()

	for _, part := range parts {
		key, value, isPair := strings.Cut(part, "=")
		if !isPair {
			result[part] = ""
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid tag: empty key in %q", part)
		}
		result[key] = unquoteValue(strings.TrimSpace(value))
	}
	return result, nil
}

// unquoteValue removes surrounding single or double quotes from a value.
func unquoteValue(value string) string {
	if len(value) >= 2 {
		if q := value[0]; (q == '\'' || q == '"') && value[len(value)-1] == q {
			return value[1 : len(value)-1]
		}
	}
	return value
}

var structCache sync.Map // reflect.Type -> *StructInfo

// GetStructInfo reads the `msd` tags of a struct type.
func GetStructInfo(typ reflect.Type) (*StructInfo, error) {
	if v, ok := structCache.Load(typ); ok {
		return v.(*StructInfo), nil
	}
	info, err := structInfo(typ)
	if err != nil {
		return nil, err
	}
	v, _ := structCache.LoadOrStore(typ, info)
	return v.(*StructInfo), nil
}

func structInfo(typ reflect.Type) (*StructInfo, error) {
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s is not a struct", typ)
	}
	info := &StructInfo{Kind: RecordKind, Name: typ.Name()}
	if typ.NumField() == 0 {
		info.Kind = UnitKind
		return info, nil
	}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		parsed, err := ParseStructTag(field.Tag.Get("msd"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse tag on field %s: %w", field.Name, err)
		}
		if field.Name == "_" {
			if err := marker(info, parsed); err != nil {
				return nil, fmt.Errorf("%s: %w", typ, err)
			}
			continue
		}
		if !field.IsExported() {
			continue
		}
		if _, ok := parsed["-"]; ok {
			continue
		}
		fi := &FieldInfo{Index: i, Name: field.Name, Type: field.Type}
		if name, ok := parsed["field"]; ok && name != "" {
			fi.Name = name
		}
		_, fi.Required = parsed["required"]
		if _, ok := parsed["char"]; ok {
			if field.Type.Kind() != reflect.Int32 {
				return nil, fmt.Errorf("field %s: char needs a rune, not %s", field.Name, field.Type)
			}
			fi.Char = true
		}
		if info.Lookup(fi.Name) != nil {
			return nil, fmt.Errorf("%s: duplicate field name %q", typ, fi.Name)
		}
		info.Fields = append(info.Fields, fi)
	}
	if info.Kind == EnumKind {
		for _, f := range info.Fields {
			if f.Type.Kind() != reflect.Pointer {
				return nil, fmt.Errorf("%s: variant %s must be a pointer", typ, f.Name)
			}
		}
	}
	return info, nil
}

// marker applies the tag of a blank field.
func marker(info *StructInfo, parsed map[string]string) error {
	_, tuple := parsed["tuple"]
	_, enum := parsed["enum"]
	switch {
	case tuple && enum:
		return fmt.Errorf("a struct cannot be both tuple and enum")
	case tuple:
		info.Kind = TupleKind
	case enum:
		info.Kind = EnumKind
	}
	if name, ok := parsed["name"]; ok && name != "" {
		info.Name = name
	}
	return nil
}
