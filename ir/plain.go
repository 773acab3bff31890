package ir

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Plain is a document as nested lists: tags of rows of cells.
type Plain [][][]string

func (d *Document) Plain() Plain {
	res := make(Plain, len(d.Tags))
	for i, t := range d.Tags {
		rows := make([][]string, len(t.Rows))
		for j, r := range t.Rows {
			rows[j] = r.Values()
		}
		res[i] = rows
	}
	return res
}

// Document rebuilds a document without positions.
func (p Plain) Document() *Document {
	doc := &Document{Tags: make([]*Tag, len(p))}
	for i, rows := range p {
		t := &Tag{Rows: make([]*Row, len(rows))}
		for j, cells := range rows {
			r := &Row{Cells: make([]*Cell, len(cells))}
			for k, c := range cells {
				r.Cells[k] = &Cell{Text: c}
			}
			t.Rows[j] = r
		}
		doc.Tags[i] = t
	}
	return doc
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Plain())
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var p Plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = *p.Document()
	return nil
}

// JSON renders the plain form as indented JSON.
func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d.Plain(), "", "  ")
}

func (d *Document) YAML() ([]byte, error) {
	return yaml.Marshal(d.Plain())
}

func FromYAML(data []byte) (*Document, error) {
	var p Plain
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return p.Document(), nil
}

// tomlDoc wraps the plain form, TOML having no top level arrays.
type tomlDoc struct {
	Tags Plain `toml:"tags"`
}

func (d *Document) TOML() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tomlDoc{Tags: d.Plain()}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func FromTOML(data []byte) (*Document, error) {
	var td tomlDoc
	if _, err := toml.Decode(string(data), &td); err != nil {
		return nil, err
	}
	return td.Tags.Document(), nil
}

func FromJSON(data []byte) (*Document, error) {
	d := &Document{}
	if err := d.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return d, nil
}
