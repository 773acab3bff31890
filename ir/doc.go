// Package ir holds a document in memory, independent of any Go type.
//
// A [Document] owns copies of its cells, so unlike the views of package
// token it stays valid after the source is read on. Cells are kept cleaned:
// escapes are resolved and comments dropped, whitespace is kept as is.
//
// The plain form ([Plain]) drops positions and serves the JSON, YAML and
// TOML renderings:
//
//	#name:triangle;      [[["name", "triangle"]],
//	#style;fill:red;      [["style"], ["fill", "red"]]]
//
// A trailing row holding only whitespace does not survive a round trip.
package ir
