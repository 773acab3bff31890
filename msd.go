// Package msd reads and writes Go values as tag-delimited text.
//
// A document is a sequence of tags. Each tag starts with '#', ends with ';'
// and holds rows separated by ';', each made of cells separated by ':'.
// A backslash escapes any of "#:;\" and "//" starts a comment running to the
// end of the line.
//
//	#name:triangle;
//	#point:0:0;   // repeated tags form a sequence
//	#point:4:0;
//	#style;fill:red;stroke:none;
//
// See package gomap for how Go types map onto tags, and packages decode and
// encode for the visitor interfaces underneath.
package msd

import (
	"bytes"
	"io"

	"github.com/witchof0x20/msd-sub000/decode"
	"github.com/witchof0x20/msd-sub000/encode"
	"github.com/witchof0x20/msd-sub000/gomap"
	"github.com/witchof0x20/msd-sub000/token"
)

// Unmarshal decodes the document in data into v. The whole document must be
// consumed.
func Unmarshal(data []byte, v any) error {
	return NewDecoder(bytes.NewReader(data)).Decode(v)
}

// Marshal encodes v as a document.
func Marshal(v any, opts ...encode.EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// A Decoder reads a document from a stream.
type Decoder struct {
	tags *token.Tags
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{tags: token.NewTags(r)}
}

// Decode decodes the rest of the stream into v and fails if any tag is left
// over.
func (d *Decoder) Decode(v any) error {
	if err := gomap.Unmarshal(decode.Document(d.tags), v); err != nil {
		return err
	}
	return decode.Finish(d.tags)
}

// Tags exposes the underlying tag stream.
func (d *Decoder) Tags() *token.Tags {
	return d.tags
}

// An Encoder writes documents to a stream.
type Encoder struct {
	w    io.Writer
	opts []encode.EncodeOption
}

func NewEncoder(w io.Writer, opts ...encode.EncodeOption) *Encoder {
	return &Encoder{w: w, opts: opts}
}

func (e *Encoder) Encode(v any) error {
	return gomap.Marshal(encode.New(e.w, e.opts...), v)
}
