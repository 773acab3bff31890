// Package token provides the streaming tokenizer for MSD documents.
//
// An MSD document is a sequence of tags:
//
//	#TITLE:Some Song;
//	#BPMS:0.000=120.000;
//	// comments run to the end of the line
//	#NOTES:dance-single:Easy:1;
//
// Tokenization happens at four levels, each pulled on demand from the one
// above it:
//
//   - [Tags] splits a byte source into tags on the sigil '#'.
//   - [Tag] splits one tag into rows on the statement separator ';'.
//   - [Values] splits one row into cells on the field separator ':'.
//   - [Value] is a single cell, interpreted as a scalar on request.
//
// Rows and cells are views into a buffer owned by [Tags] which is refilled on
// every pull. A view is valid until the next call to [Tags.Next] unless it was
// detached with Store first. [Tags] and [Tag] each keep a single pushback slot
// (Revisit), which is all the lookahead the decoder needs.
//
// Reserved bytes are escaped with '\'. '//' starts a comment which extends to
// the end of the line. [Clean] removes both, and [Trim] strips surrounding
// whitespace, before a cell is interpreted.
package token
