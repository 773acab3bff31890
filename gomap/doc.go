// Package gomap maps Go values onto tags through package decode and package
// encode.
//
// # Usage
//
//	type Point struct {
//	    _ struct{} `msd:"tuple"`
//	    X, Y int
//	}
//	type Shape struct {
//	    Name   string  `msd:"field=name,required"`
//	    Points []Point `msd:"field=point"`
//	    Note   *string `msd:"field=note"`
//	}
//	var s Shape
//	err := gomap.Unmarshal(decode.Document(tags), &s)
//
// reads
//
//	#name:triangle;
//	#point:0:0;
//	#point:4:0;
//	#point:0:3;
//
// Types map to shapes as follows:
//
//   - bool, integers, floats and strings are scalars; []byte is a byte
//     buffer; [Char], and rune fields tagged `msd:"char"`, are characters;
//   - empty structs and [Unit] are units;
//   - pointers are options;
//   - arrays, and structs with a `msd:"tuple"` marker, are tuples;
//   - slices are sequences, maps are maps, and other structs are records;
//   - structs with a `msd:"enum"` marker are tagged unions whose variants are
//     the exported pointer fields, of which at most one is set.
//
// Types implementing [Unmarshaler] or [Marshaler] take over their own
// shape; types implementing encoding.TextUnmarshaler or
// encoding.TextMarshaler are read and written as strings.
//
// Only exported fields are mapped, and field names are case-sensitive.
package gomap
