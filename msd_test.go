package msd

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/witchof0x20/msd-sub000/gomap"
	"github.com/witchof0x20/msd-sub000/token"
)

type record struct {
	Foo string     `msd:"field=foo"`
	Bar uint32     `msd:"field=bar"`
	Baz gomap.Unit `msd:"field=baz"`
	Qux float64    `msd:"field=qux"`
	Opt *int16     `msd:"field=opt"`
}

func TestUnmarshalRecord(t *testing.T) {
	in := "#bar:42;\n#foo:text;\n#qux:1.2;\n#baz:;\n"
	var got record
	if err := Unmarshal([]byte(in), &got); err != nil {
		t.Fatal(err)
	}
	want := record{Foo: "text", Bar: 42, Qux: 1.2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalTrailingTag(t *testing.T) {
	var got record
	err := Unmarshal([]byte("#foo:a;\n#nope:1;\n"), &got)
	if !errors.Is(err, token.ErrUnexpectedTag) {
		t.Errorf("got %v, want unexpected tag", err)
	}
}

type everything struct {
	Text   string             `msd:"field=text"`
	Bytes  []byte             `msd:"field=bytes"`
	Small  int8               `msd:"field=small"`
	Big    uint64             `msd:"field=big"`
	F32    float32            `msd:"field=f32"`
	F64    float64            `msd:"field=f64"`
	Flag   bool               `msd:"field=flag"`
	Ch     gomap.Char         `msd:"field=ch"`
	Opt    *string            `msd:"field=opt"`
	List   []int32            `msd:"field=list"`
	Dict   map[string]float64 `msd:"field=dict"`
	Nested nested             `msd:"field=nested"`
	Pair   [2]string          `msd:"field=pair"`
}

type nested struct {
	A    uint8    `msd:"field=a"`
	B    *bool    `msd:"field=b"`
	Tail []string `msd:"field=tail"`
}

func TestRoundTrip(t *testing.T) {
	yes := true
	opt := "// not a comment"
	tests := []struct {
		name string
		v    everything
	}{
		{
			name: "reserved bytes",
			v: everything{
				Text:  "#tag: a;b \\ c // d / e",
				Bytes: []byte("x;y:z#\\"),
				Opt:   &opt,
			},
		},
		{
			name: "numbers",
			v: everything{
				Small: math.MinInt8,
				Big:   math.MaxUint64,
				F32:   3.4028235e38,
				F64:   -1.0000000000000002,
				Flag:  true,
				Ch:    ';',
			},
		},
		{
			name: "aggregates",
			v: everything{
				List:   []int32{1, -2, 3},
				Dict:   map[string]float64{"a:b": 0.5, "c": math.Inf(1)},
				Nested: nested{A: 7, B: &yes, Tail: []string{"x", "y;z"}},
				Pair:   [2]string{"left", "right"},
			},
		},
		{
			name: "whitespace",
			v: everything{
				Text: "  padded\n lines ",
				Ch:   ' ',
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Marshal(tt.v)
			if err != nil {
				t.Fatal(err)
			}
			var got everything
			if err := Unmarshal(data, &got); err != nil {
				t.Fatalf("%v in\n%s", err, data)
			}
			if diff := cmp.Diff(tt.v, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s\nencoded:\n%s", diff, data)
			}
			again, err := Marshal(got)
			if err != nil {
				t.Fatal(err)
			}
			if string(again) != string(data) {
				t.Errorf("second encoding differs:\n%s\nvs\n%s", again, data)
			}
		})
	}
}

func TestFloatNaN(t *testing.T) {
	data, err := Marshal(math.NaN())
	if err != nil {
		t.Fatal(err)
	}
	var f float64
	if err := Unmarshal(data, &f); err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(f) {
		t.Errorf("got %v from %q", f, data)
	}
}

func TestDecoderStream(t *testing.T) {
	d := NewDecoder(strings.NewReader("#1;\n#2;\n#3;\n"))
	var got []int
	if err := d.Decode(&got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrorPosition(t *testing.T) {
	var got record
	err := Unmarshal([]byte("#foo:a;\n\n#bar:-1;\n"), &got)
	if !errors.Is(err, token.ErrExpectedUint32) {
		t.Fatalf("got %v", err)
	}
	var te *token.Error
	if !errors.As(err, &te) || te.Pos != (token.Pos{Line: 2, Column: 5}) {
		t.Errorf("got %v", err)
	}
	if !strings.Contains(err.Error(), "3:6") {
		t.Errorf("message %q lacks the position", err.Error())
	}
}

func TestUnmarshalErrorLeavesTarget(t *testing.T) {
	type counts struct {
		A int32  `msd:"field=a"`
		B uint8  `msd:"field=b"`
		S string `msd:"field=s"`
	}
	got := counts{A: 1, S: "kept"}
	err := Unmarshal([]byte("#a:7;\n#b:999;\n"), &got)
	if !errors.Is(err, token.ErrExpectedUint8) {
		t.Fatalf("got %v, want expected u8", err)
	}
	if diff := cmp.Diff(counts{A: 1, S: "kept"}, got); diff != "" {
		t.Errorf("target changed by a failed decode (-want +got):\n%s", diff)
	}

	var list []int
	if err := Unmarshal([]byte("#1;\n#x;\n"), &list); err == nil {
		t.Fatal("expected an error")
	}
	if list != nil {
		t.Errorf("got %v, want nil", list)
	}
}
