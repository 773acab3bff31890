// Package libdiff compares documents tag by tag.
package libdiff

import (
	"github.com/witchof0x20/msd-sub000/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
	Replace
)

func (o Op) String() string {
	switch o {
	case Equal:
		return "equal"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	case Replace:
		return "replace"
	}
	return "unknown"
}

// Edit is one step from the old document to the new one. From is nil for
// an insertion, To for a deletion.
type Edit struct {
	Op   Op
	From *ir.Tag
	To   *ir.Tag
}

// Diff compares the tags of from and to by their rendered text. A tag
// deleted right before the insertion of a tag with the same name is reported
// as a replacement.
func Diff(from, to *ir.Document) []Edit {
	m := map[string]rune{}
	fromRunes := summarize(m, from.Tags)
	toRunes := summarize(m, to.Tags)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var res []Edit
	fi, ti := 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffEqual:
			for range n {
				res = append(res, Edit{Op: Equal, From: from.Tags[fi], To: to.Tags[ti]})
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, Edit{Op: Delete, From: from.Tags[fi]})
				fi++
			}
		case diffpatch.DiffInsert:
			start := len(res) - 1
			for range n {
				res = append(res, insertion(res, start, to.Tags[ti])...)
				ti++
			}
		}
	}
	return res
}

// insertion pairs tag with an unpaired deletion of the same name in the run
// of deletions ending at res[start], turning it into a replacement.
func insertion(res []Edit, start int, tag *ir.Tag) []Edit {
	for j := start; j >= 0 && (res[j].Op == Delete || res[j].Op == Replace); j-- {
		if res[j].Op == Delete && res[j].From.Name() == tag.Name() {
			res[j] = Edit{Op: Replace, From: res[j].From, To: tag}
			return nil
		}
	}
	return []Edit{{Op: Insert, To: tag}}
}

// summarize maps each distinct rendering to a rune so that the tags can be
// diffed as text.
func summarize(m map[string]rune, tags []*ir.Tag) []rune {
	rs := make([]rune, len(tags))
	for i, t := range tags {
		sum := t.String()
		r, ok := m[sum]
		if !ok {
			// skip the surrogate range, which does not survive as a rune
			r = rune(len(m))
			if r >= 0xD800 {
				r += 0x800
			}
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// Changed reports whether edits hold anything but Equal.
func Changed(edits []Edit) bool {
	for _, e := range edits {
		if e.Op != Equal {
			return true
		}
	}
	return false
}

// Reverse turns the edits from a to b into the edits from b to a.
func Reverse(edits []Edit) []Edit {
	res := make([]Edit, len(edits))
	for i, e := range edits {
		r := Edit{Op: e.Op, From: e.To, To: e.From}
		switch e.Op {
		case Delete:
			r.Op = Insert
		case Insert:
			r.Op = Delete
		}
		res[i] = r
	}
	return res
}
