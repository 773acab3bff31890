package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{MSDFormat, JSONFormat, YAMLFormat, TOMLFormat} {
		var got Format
		if err := got.UnmarshalText([]byte(f.String())); err != nil {
			t.Fatal(err)
		}
		if got != f {
			t.Errorf("got %v, want %v", got, f)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, want bad format", err)
	}
	if f, _ := ParseFormat("y"); f.Suffix() != ".yaml" {
		t.Errorf("got suffix %q", f.Suffix())
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"song.msd", MSDFormat, true},
		{"a/b.JSON", JSONFormat, true},
		{"c.yml", YAMLFormat, true},
		{"d.toml", TOMLFormat, true},
		{"-", MSDFormat, false},
		{"notes.txt", MSDFormat, false},
	}
	for _, tt := range tests {
		got, ok := ForPath(tt.path)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ForPath(%q) = %v, %v", tt.path, got, ok)
		}
	}
}
