package encode

type EncodeOption func(*EncState)

// EncodeColors colors the output. Colored output is for display and does not
// read back.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeNewlines ends every top level tag with a newline (the default) or
// runs them together on one line.
func EncodeNewlines(v bool) EncodeOption {
	return func(es *EncState) { es.newlines = v }
}
