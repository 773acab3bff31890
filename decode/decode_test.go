package decode

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/witchof0x20/msd-sub000/token"
)

func doc(in string) (*token.Tags, Decoder) {
	tags := token.NewTags(strings.NewReader(in))
	return tags, Document(tags)
}

type record struct {
	Foo string
	Bar uint64
	Baz bool
	Qux float64
	Opt *uint8
}

func decodeRecord(d Decoder) (record, error) {
	var r record
	err := d.Struct("record", []string{"foo", "bar", "baz", "qux", "opt"}, func(f string, fd Decoder) error {
		var err error
		switch f {
		case "foo":
			r.Foo, err = fd.String()
		case "bar":
			r.Bar, err = fd.Uint64()
		case "baz":
			err = fd.Unit()
			r.Baz = err == nil
		case "qux":
			r.Qux, err = fd.Float64()
		case "opt":
			_, err = fd.Option(func(od Decoder) error {
				v, err := od.Uint8()
				r.Opt = &v
				return err
			})
		}
		return err
	})
	return r, err
}

func TestRecordAnyOrder(t *testing.T) {
	tags, d := doc("#bar:42;\n#foo:text;\n#qux:1.2;\n#baz:;\n")
	got, err := decodeRecord(d)
	if err != nil {
		t.Fatal(err)
	}
	want := record{Foo: "text", Bar: 42, Baz: true, Qux: 1.2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	if err := Finish(tags); err != nil {
		t.Errorf("finish: %v", err)
	}
}

func TestRecordOptionalPresent(t *testing.T) {
	_, d := doc("#opt:7;\n#foo:x;\n")
	got, err := decodeRecord(d)
	if err != nil {
		t.Fatal(err)
	}
	if got.Opt == nil || *got.Opt != 7 || got.Foo != "x" {
		t.Errorf("got %+v", got)
	}
}

func TestRecordStopsAtForeignTag(t *testing.T) {
	tests := []struct {
		name string
		in   string
		pos  token.Pos
	}{
		{name: "unknown field", in: "#foo:1;\n#zzz:2;\n", pos: token.Pos{Line: 1, Column: 1}},
		{name: "repeated field", in: "#foo:1;\n#foo:2;\n", pos: token.Pos{Line: 1, Column: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, d := doc(tt.in)
			if _, err := decodeRecord(d); err != nil {
				t.Fatal(err)
			}
			err := Finish(tags)
			if !errors.Is(err, token.ErrUnexpectedTag) {
				t.Fatalf("got %v, want unexpected tag", err)
			}
			var te *token.Error
			if errors.As(err, &te) && te.Pos != tt.pos {
				t.Errorf("got position %v, want %v", te.Pos, tt.pos)
			}
		})
	}
}

type inner struct {
	N    uint64
	Unit bool
}

type triple struct {
	S string
	In inner
	F float64
}

func decodeTriple(d Decoder) (triple, error) {
	var tr triple
	err := d.Tuple(3, func(i int, ed Decoder) error {
		var err error
		switch i {
		case 0:
			tr.S, err = ed.String()
		case 1:
			err = ed.Tuple(2, func(j int, id Decoder) error {
				if j == 0 {
					var err error
					tr.In.N, err = id.Uint64()
					return err
				}
				tr.In.Unit = true
				return id.Unit()
			})
		case 2:
			tr.F, err = ed.Float64()
		}
		return err
	})
	return tr, err
}

func TestTupleInTuple(t *testing.T) {
	_, d := doc("#foo:42::1.2;")
	got, err := decodeTriple(d)
	if err != nil {
		t.Fatal(err)
	}
	want := triple{S: "foo", In: inner{N: 42, Unit: true}, F: 1.2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tuple mismatch (-want +got):\n%s", diff)
	}
}

func TestTupleTrailingCell(t *testing.T) {
	_, d := doc("#foo:42::1.2:bar;")
	_, err := decodeTriple(d)
	if !errors.Is(err, token.ErrUnexpectedValue) {
		t.Fatalf("got %v, want unexpected value", err)
	}
	var te *token.Error
	if !errors.As(err, &te) {
		t.Fatal("error has no position")
	}
	if want := (token.Pos{Line: 0, Column: 12}); te.Pos != want {
		t.Errorf("got position %v, want %v", te.Pos, want)
	}
}

func TestRepeatedFieldSeq(t *testing.T) {
	tags, d := doc("#foo:1;\n#foo:2;\n#bar:3;\n")
	var got []uint8
	err := d.Struct("r", []string{"foo"}, func(f string, fd Decoder) error {
		return fd.Seq(func(ed Decoder) error {
			v, err := ed.Uint8()
			got = append(got, v)
			return err
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint8{1, 2}, got); diff != "" {
		t.Errorf("seq mismatch (-want +got):\n%s", diff)
	}
	tag, err := tags.Next()
	if err != nil {
		t.Fatal(err)
	}
	if s := string(tag.Bytes()); s != "bar:3" {
		t.Errorf("left %q, want the bar tag", s)
	}
}

func TestRepeatedFieldThenOtherField(t *testing.T) {
	tags, d := doc("#foo:1;\n#foo:2;\n#bar:3;\n")
	var foos []uint8
	var bar uint8
	err := d.Struct("r", []string{"foo", "bar"}, func(f string, fd Decoder) error {
		if f == "bar" {
			var err error
			bar, err = fd.Uint8()
			return err
		}
		return fd.Seq(func(ed Decoder) error {
			v, err := ed.Uint8()
			foos = append(foos, v)
			return err
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(foos) != 2 || bar != 3 {
		t.Errorf("got foos %v, bar %d", foos, bar)
	}
	if err := Finish(tags); err != nil {
		t.Error(err)
	}
}

func TestNestedRecordRows(t *testing.T) {
	tags, d := doc("#outer;a:1;b:x;\n#n:5;\n")
	var a, n uint8
	var b string
	err := d.Struct("top", []string{"outer", "n"}, func(f string, fd Decoder) error {
		if f == "n" {
			var err error
			n, err = fd.Uint8()
			return err
		}
		return fd.Struct("inner", []string{"a", "b"}, func(f string, rd Decoder) error {
			var err error
			if f == "a" {
				a, err = rd.Uint8()
			} else {
				b, err = rd.String()
			}
			return err
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	if a != 1 || b != "x" || n != 5 {
		t.Errorf("got a=%d b=%q n=%d", a, b, n)
	}
	if err := Finish(tags); err != nil {
		t.Error(err)
	}
}

func TestNestedRecordLeftoverRow(t *testing.T) {
	_, d := doc("#outer;a:1;zz:2;\n")
	err := d.Struct("top", []string{"outer"}, func(f string, fd Decoder) error {
		return fd.Struct("inner", []string{"a"}, func(_ string, rd Decoder) error {
			_, err := rd.Uint8()
			return err
		})
	})
	if !errors.Is(err, token.ErrUnexpectedValues) {
		t.Fatalf("got %v, want unexpected values", err)
	}
}

func decodeStringMap(d Decoder) (map[string]uint8, error) {
	res := map[string]uint8{}
	err := d.Map(func(k, v Decoder) error {
		key, err := k.String()
		if err != nil {
			return err
		}
		res[key], err = v.Uint8()
		return err
	})
	return res, err
}

func TestMapTags(t *testing.T) {
	_, d := doc("#a:1;\n#b:2;\n")
	got, err := decodeStringMap(d)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]uint8{"a": 1, "b": 2}, got); diff != "" {
		t.Errorf("map mismatch (-want +got):\n%s", diff)
	}
}

func TestMapRows(t *testing.T) {
	_, d := doc("#m;x:1;y:2;\n")
	var got map[string]uint8
	err := d.Struct("r", []string{"m"}, func(_ string, fd Decoder) error {
		var err error
		got, err = decodeStringMap(fd)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]uint8{"x": 1, "y": 2}, got); diff != "" {
		t.Errorf("map mismatch (-want +got):\n%s", diff)
	}
}

func TestSeqCellsAndRows(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "cells", in: "#k:1:2:3;"},
		{name: "rows", in: "#k;1;2;3;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, d := doc(tt.in)
			var got []uint8
			err := d.Map(func(k, v Decoder) error {
				if _, err := k.String(); err != nil {
					return err
				}
				return v.Seq(func(ed Decoder) error {
					x, err := ed.Uint8()
					got = append(got, x)
					return err
				})
			})
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff([]uint8{1, 2, 3}, got); diff != "" {
				t.Errorf("seq mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDocumentSeq(t *testing.T) {
	_, d := doc("#1;\n#2;\n")
	var got []int32
	err := d.Seq(func(ed Decoder) error {
		x, err := ed.Int32()
		got = append(got, x)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int32{1, 2}, got); diff != "" {
		t.Errorf("seq mismatch (-want +got):\n%s", diff)
	}
}

type shape struct {
	Variant string
	A, B    uint8
}

func decodeShape(d Decoder) (shape, error) {
	var s shape
	err := d.Enum("shape", []string{"Empty", "Wrap", "Pair"}, func(v string, va VariantAccess) error {
		s.Variant = v
		switch v {
		case "Empty":
			return va.Unit()
		case "Wrap":
			return va.Newtype(func(nd Decoder) error {
				var err error
				s.A, err = nd.Uint8()
				return err
			})
		}
		return va.Tuple(2, func(i int, ed Decoder) error {
			x, err := ed.Uint8()
			if i == 0 {
				s.A = x
			} else {
				s.B = x
			}
			return err
		})
	})
	return s, err
}

func TestEnum(t *testing.T) {
	tests := []struct {
		in   string
		want shape
	}{
		{in: "#Empty;", want: shape{Variant: "Empty"}},
		{in: "#Wrap:7;", want: shape{Variant: "Wrap", A: 7}},
		{in: "#Pair:1:2;", want: shape{Variant: "Pair", A: 1, B: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, d := doc(tt.in)
			got, err := decodeShape(d)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("enum mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEnumErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{in: "#Nope;", want: ErrUnknownVariant},
		{in: "#Empty:1;", want: token.ErrUnexpectedValue},
		{in: "#Pair:1:2:3;", want: token.ErrUnexpectedValue},
		{in: "#Wrap:x;", want: token.ErrExpectedUint8},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, d := doc(tt.in)
			if _, err := decodeShape(d); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOption(t *testing.T) {
	var v uint8
	some := func(d Decoder) error {
		var err error
		v, err = d.Uint8()
		return err
	}
	_, d := doc("  // nothing here\n")
	if ok, err := d.Option(some); ok || err != nil {
		t.Errorf("empty document: got %v, %v", ok, err)
	}
	_, d = doc("#5;")
	if ok, err := d.Option(some); !ok || err != nil || v != 5 {
		t.Errorf("got %v, %v, %d", ok, err, v)
	}
}

func TestOptionInMapValue(t *testing.T) {
	_, d := doc("#a;\n#b:3;\n")
	got := map[string]*uint8{}
	err := d.Map(func(k, v Decoder) error {
		key, err := k.String()
		if err != nil {
			return err
		}
		got[key] = nil
		_, err = v.Option(func(od Decoder) error {
			x, err := od.Uint8()
			got[key] = &x
			return err
		})
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if got["a"] != nil || got["b"] == nil || *got["b"] != 3 {
		t.Errorf("got %v", got)
	}
}

func TestScalarLeftoverRow(t *testing.T) {
	_, d := doc("#1;2;")
	_, err := d.Uint8()
	if !errors.Is(err, token.ErrUnexpectedValues) {
		t.Fatalf("got %v, want unexpected values", err)
	}
	var te *token.Error
	if errors.As(err, &te) && te.Pos != (token.Pos{Line: 0, Column: 3}) {
		t.Errorf("got position %v", te.Pos)
	}
}

func TestUnsupportedInRow(t *testing.T) {
	_, d := doc("#x:1;")
	err := d.Tuple(1, func(_ int, ed Decoder) error {
		return ed.Struct("s", []string{"x"}, func(string, Decoder) error { return nil })
	})
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v, want unsupported", err)
	}
}

func TestVisitorErrorGetsPosition(t *testing.T) {
	bad := errors.New("bad value")
	_, d := doc("#foo:1;\n#bar:2;\n")
	err := d.Struct("r", []string{"foo", "bar"}, func(f string, fd Decoder) error {
		if f == "bar" {
			return bad
		}
		_, err := fd.Uint8()
		return err
	})
	if !errors.Is(err, bad) {
		t.Fatalf("got %v, want the visitor error", err)
	}
	var te *token.Error
	if !errors.As(err, &te) {
		t.Fatal("visitor error has no position")
	}
	if want := (token.Pos{Line: 1, Column: 1}); te.Pos != want {
		t.Errorf("got position %v, want %v", te.Pos, want)
	}
}
