package libdiff

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type FormatOption func(*formatter)

// FormatColors marks removals red and additions green.
func FormatColors() FormatOption {
	return func(f *formatter) {
		f.del = color.New(color.FgRed).SprintFunc()
		f.ins = color.New(color.FgGreen).SprintFunc()
	}
}

// FormatContext also lists unchanged tags.
func FormatContext() FormatOption {
	return func(f *formatter) { f.context = true }
}

type formatter struct {
	w        *bufio.Writer
	del, ins func(...any) string
	context  bool
}

func plain(a ...any) string {
	var sb strings.Builder
	for _, v := range a {
		sb.WriteString(v.(string))
	}
	return sb.String()
}

// Write prints one line per edit: "-" and "+" for removed and added tags,
// "~" for a replaced tag with the changed text spelled out as [-old-]{+new+}.
func Write(w io.Writer, edits []Edit, opts ...FormatOption) error {
	f := &formatter{w: bufio.NewWriter(w), del: plain, ins: plain}
	for _, o := range opts {
		o(f)
	}
	for _, e := range edits {
		switch e.Op {
		case Equal:
			if f.context {
				f.line(" ", e.From.String())
			}
		case Delete:
			f.line("-", f.del(e.From.String()))
		case Insert:
			f.line("+", f.ins(e.To.String()))
		case Replace:
			f.line("~", f.inline(e.From.String(), e.To.String()))
		}
	}
	return f.w.Flush()
}

func (f *formatter) line(mark, text string) {
	f.w.WriteString(mark)
	f.w.WriteString(text)
	f.w.WriteByte('\n')
}

func (f *formatter) inline(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, false))
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			sb.WriteString(d.Text)
		case diffpatch.DiffDelete:
			sb.WriteString(f.del("[-", d.Text, "-]"))
		case diffpatch.DiffInsert:
			sb.WriteString(f.ins("{+", d.Text, "+}"))
		}
	}
	return sb.String()
}
