package ir

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/witchof0x20/msd-sub000/encode"
	"github.com/witchof0x20/msd-sub000/token"
)

type Document struct {
	Tags []*Tag
}

type Tag struct {
	Pos  token.Pos
	Rows []*Row
}

type Row struct {
	Pos   token.Pos
	Cells []*Cell
}

type Cell struct {
	Pos  token.Pos
	Text string
}

// Name is the trimmed first cell of the tag, by convention the field or
// variant it holds.
func (t *Tag) Name() string {
	if len(t.Rows) == 0 || len(t.Rows[0].Cells) == 0 {
		return ""
	}
	return strings.TrimSpace(t.Rows[0].Cells[0].Text)
}

// Values lists the cleaned cells of the row.
func (r *Row) Values() []string {
	res := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		res[i] = c.Text
	}
	return res
}

// Parse reads a whole document.
func Parse(r io.Reader) (*Document, error) {
	tags := token.NewTags(r)
	doc := &Document{}
	for {
		tag, err := tags.Next()
		if errors.Is(err, token.ErrEndOfFile) {
			return doc, nil
		}
		if err != nil {
			return nil, err
		}
		t, err := parseTag(tag)
		if err != nil {
			return nil, err
		}
		doc.Tags = append(doc.Tags, t)
	}
}

func parseTag(tag *token.Tag) (*Tag, error) {
	t := &Tag{Pos: tag.Pos()}
	for {
		row, err := tag.Next()
		if errors.Is(err, token.ErrEndOfTag) {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
		r := &Row{Pos: row.Pos()}
		for {
			v, err := row.Next()
			if errors.Is(err, token.ErrEndOfValues) {
				break
			}
			if err != nil {
				return nil, err
			}
			text, err := v.Text()
			if err != nil {
				return nil, err
			}
			r.Cells = append(r.Cells, &Cell{Pos: v.Pos, Text: text})
		}
		t.Rows = append(t.Rows, r)
	}
}

// Encode writes the document back as tags.
func (d *Document) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.New(w, opts...).Seq(func(s encode.SeqEncoder) error {
		for _, t := range d.Tags {
			if err := s.Element(t.encode); err != nil {
				return err
			}
		}
		return nil
	})
}

func (t *Tag) encode(e encode.Encoder) error {
	return e.Seq(func(s encode.SeqEncoder) error {
		for _, r := range t.Rows {
			if err := s.Element(r.encode); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Row) encode(e encode.Encoder) error {
	return e.Seq(func(s encode.SeqEncoder) error {
		for _, c := range r.Cells {
			err := s.Element(func(ce encode.Encoder) error { return ce.String(c.Text) })
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// String renders the tag on its own, without a trailing newline.
func (t *Tag) String() string {
	var buf bytes.Buffer
	doc := &Document{Tags: []*Tag{t}}
	if err := doc.Encode(&buf, encode.EncodeNewlines(false)); err != nil {
		return ""
	}
	return buf.String()
}
