package token

import "fmt"

// Pos is a zero-indexed line and byte column in the source.
type Pos struct {
	Line   uint
	Column uint
}

// advance moves p past b.
func (p *Pos) advance(b byte) {
	if b == '\n' {
		p.Line++
		p.Column = 0
		return
	}
	p.Column++
}

// advanceAll moves p past every byte of d.
func (p *Pos) advanceAll(d []byte) {
	for _, b := range d {
		p.advance(b)
	}
}

// String renders p one-indexed, the way editors count.
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}
