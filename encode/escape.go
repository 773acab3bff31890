package encode

import "github.com/witchof0x20/msd-sub000/token"

// Escape is the inverse of token.Clean: it escapes reserved bytes and the
// second '/' of every "//" so that d reads back unchanged.
func Escape(d []byte) []byte {
	return AppendEscaped(make([]byte, 0, len(d)+len(d)/8), d)
}

func AppendEscaped(dst, d []byte) []byte {
	slash := false
	for _, b := range d {
		switch {
		case token.IsReserved(b), b == token.Comment && slash:
			dst = append(dst, token.Escape, b)
			slash = false
		default:
			dst = append(dst, b)
			slash = b == token.Comment
		}
	}
	return dst
}
