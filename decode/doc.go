// Package decode drives a visitor over a tag stream.
//
// A visitor asks a [Decoder] for the shape it expects (a scalar, an option, a
// tuple, a record, a map, a sequence or a tagged union) and the decoder
// decides which tags, rows or cells make up that shape. The same request
// means different things at different depths:
//
//   - at the document level a record field, a map entry or a sequence
//     element is a whole tag;
//   - inside a tag, a record field or map entry is a row, and a scalar is the
//     next cell;
//   - inside a row, everything is cells, and records and maps are not
//     available.
//
// Records stop at the first row or tag whose leading identifier is not one
// of their fields (or was already seen) and leave it for the caller.
// Everything a step consumes entirely is checked for leftovers.
package decode
