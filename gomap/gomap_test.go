package gomap

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/witchof0x20/msd-sub000/decode"
	"github.com/witchof0x20/msd-sub000/encode"
	"github.com/witchof0x20/msd-sub000/token"
)

type Point struct {
	_    struct{} `msd:"tuple"`
	X, Y int
}

type Kind struct {
	_      struct{} `msd:"enum,name=kind"`
	Circle *float64
	Square *Unit
	Rect   *Point
}

type Meta struct {
	Owner string `msd:"field=owner"`
	Level *uint8 `msd:"field=level"`
	Flags []bool `msd:"field=flags"`
}

type Shape struct {
	Name   string            `msd:"field=name,required"`
	Points []Point           `msd:"field=point"`
	Note   *string           `msd:"field=note"`
	Sep    rune              `msd:"field=sep,char"`
	Tags   map[string]uint16 `msd:"field=tags"`
	Kind   Kind              `msd:"field=kind"`
	Meta   Meta              `msd:"field=meta"`
	Data   []byte            `msd:"field=data"`
	Skip   string            `msd:"-"`
}

const shapeDoc = `#name:triangle;
#point:0:0;
#point:4:0;
#point:0:3;
#sep: ;
#tags;a:1;b:2;
#kind:Rect:2:3;
#meta;owner:me;flags:true:false;
#data:x\:y;
`

func unmarshalString(in string, v any) error {
	tags := token.NewTags(strings.NewReader(in))
	if err := Unmarshal(decode.Document(tags), v); err != nil {
		return err
	}
	return decode.Finish(tags)
}

func marshalString(t *testing.T, v any) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Marshal(encode.New(&buf), v); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

var ignore = cmpopts.IgnoreUnexported(Point{}, Kind{})

func TestShapeRoundTrip(t *testing.T) {
	var got Shape
	if err := unmarshalString(shapeDoc, &got); err != nil {
		t.Fatal(err)
	}
	want := Shape{
		Name:   "triangle",
		Points: []Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}},
		Sep:    ' ',
		Tags:   map[string]uint16{"a": 1, "b": 2},
		Kind:   Kind{Rect: &Point{X: 2, Y: 3}},
		Meta:   Meta{Owner: "me", Flags: []bool{true, false}},
		Data:   []byte("x:y"),
	}
	if diff := cmp.Diff(want, got, ignore); diff != "" {
		t.Fatalf("decoded mismatch (-want +got):\n%s", diff)
	}
	if out := marshalString(t, got); out != shapeDoc {
		t.Errorf("re-encoded:\n%s\nwant:\n%s", out, shapeDoc)
	}
}

func TestMissingRequired(t *testing.T) {
	var s Shape
	err := unmarshalString("#point:1:2;\n", &s)
	var ue *UnmarshalError
	if !errors.As(err, &ue) {
		t.Fatalf("got %v, want an unmarshal error", err)
	}
	if ue.FieldPath != "name" {
		t.Errorf("got path %q", ue.FieldPath)
	}
}

func TestErrorPath(t *testing.T) {
	var s Shape
	err := unmarshalString("#name:x;\n#tags;a:zz;\n", &s)
	if !errors.Is(err, token.ErrExpectedUint16) {
		t.Fatalf("got %v, want expected u16", err)
	}
	var ue *UnmarshalError
	if !errors.As(err, &ue) || ue.FieldPath != "tags.a" {
		t.Errorf("got %v", err)
	}
	var te *token.Error
	if !errors.As(err, &te) || te.Pos != (token.Pos{Line: 1, Column: 8}) {
		t.Errorf("got %v, want position 2:9", err)
	}
}

func TestEnumVariants(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{in: "#Circle:1.5;\n", want: Kind{Circle: ptr(1.5)}},
		{in: "#Square;\n", want: Kind{Square: &Unit{}}},
		{in: "#Rect:1:2;\n", want: Kind{Rect: &Point{X: 1, Y: 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got Kind
			if err := unmarshalString(tt.in, &got); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got, ignore); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			if out := marshalString(t, got); out != tt.in {
				t.Errorf("re-encoded %q, want %q", out, tt.in)
			}
		})
	}
}

func TestEnumMarshalErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := Marshal(encode.New(&buf), Kind{}); err == nil {
		t.Error("no error for an empty union")
	}
	both := Kind{Square: &Unit{}, Rect: &Point{}}
	var me *MarshalError
	if err := Marshal(encode.New(&buf), both); !errors.As(err, &me) {
		t.Errorf("got %v, want a marshal error", err)
	}
}

func ptr[T any](v T) *T {
	return &v
}

type upper string

func (u *upper) UnmarshalText(d []byte) error {
	*u = upper(strings.ToUpper(string(d)))
	return nil
}

func (u upper) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(string(u))), nil
}

// version reads "major.minor" as a two cell tuple.
type version struct {
	major, minor uint8
}

func (v *version) UnmarshalMSD(d decode.Decoder) error {
	return d.Tuple(2, func(i int, ed decode.Decoder) error {
		x, err := ed.Uint8()
		if i == 0 {
			v.major = x
		} else {
			v.minor = x
		}
		return err
	})
}

func (v version) MarshalMSD(e encode.Encoder) error {
	return e.Tuple(2, func(i int, ee encode.Encoder) error {
		if i == 0 {
			return ee.Uint8(v.major)
		}
		return ee.Uint8(v.minor)
	})
}

type hooks struct {
	Name    upper   `msd:"field=name"`
	Version version `msd:"field=version"`
	Initial Char    `msd:"field=initial"`
	Pair    [2]int8 `msd:"field=pair"`
}

func TestHooks(t *testing.T) {
	in := "#name:abc;\n#version:1:2;\n#initial:é;\n#pair:-1:1;\n"
	var got hooks
	if err := unmarshalString(in, &got); err != nil {
		t.Fatal(err)
	}
	want := hooks{Name: "ABC", Version: version{1, 2}, Initial: 'é', Pair: [2]int8{-1, 1}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(version{})); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if out := marshalString(t, got); out != in {
		t.Errorf("re-encoded %q, want %q", out, in)
	}
}

func TestUnsupportedType(t *testing.T) {
	var v struct {
		C chan int `msd:"field=c"`
	}
	err := unmarshalString("#c:1;\n", &v)
	var te *TypeError
	if !errors.As(err, &te) {
		t.Errorf("got %v, want a type error", err)
	}
}

func TestUnmarshalDestination(t *testing.T) {
	d := decode.Document(token.NewTags(strings.NewReader("")))
	var s Shape
	for _, v := range []any{nil, s, (*Shape)(nil)} {
		if err := Unmarshal(d, v); err == nil {
			t.Errorf("no error for %T", v)
		}
	}
}

func TestParseStructTag(t *testing.T) {
	tests := []struct {
		in   string
		want map[string]string
		err  bool
	}{
		{in: "", want: map[string]string{}},
		{in: "field=a,required", want: map[string]string{"field": "a", "required": ""}},
		{in: "field='a b' char", want: map[string]string{"field": "a b", "char": ""}},
		{in: "-", want: map[string]string{"-": ""}},
		{in: "=x", err: true},
		{in: "field='x", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStructTag(tt.in)
			if tt.err {
				if err == nil {
					t.Errorf("no error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStructInfoErrors(t *testing.T) {
	type dup struct {
		A int `msd:"field=x"`
		B int `msd:"field=x"`
	}
	type badEnum struct {
		_ struct{} `msd:"enum"`
		A int
	}
	type badChar struct {
		C string `msd:"char"`
	}
	for _, v := range []any{dup{}, badEnum{}, badChar{}} {
		var buf bytes.Buffer
		if err := Marshal(encode.New(&buf), v); err == nil {
			t.Errorf("%T: no error", v)
		}
	}
}
