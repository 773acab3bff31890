// Package encode writes values as tags.
//
// # Usage
//
//	enc := encode.New(os.Stdout, encode.EncodeColors(encode.NewColors()))
//	err := enc.Struct("point", func(s encode.StructEncoder) error {
//	    if err := s.Field("x", func(e encode.Encoder) error { return e.Int64(1) }); err != nil {
//	        return err
//	    }
//	    return s.Field("y", func(e encode.Encoder) error { return e.Int64(2) })
//	})
//
// writes
//
//	#x:1;
//	#y:2;
//
// The layout is the inverse of package decode: at the top level every record
// field, map entry and sequence element is its own tag; inside a tag they are
// rows; inside a row, cells. A field whose value writes nothing, such as an
// absent option, is left out.
//
// # Related Packages
//
//   - github.com/witchof0x20/msd-sub000/decode - the reading side
//   - github.com/witchof0x20/msd-sub000/gomap - Go values to and from tags
package encode
