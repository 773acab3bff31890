package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	SigilColor ColorAttr = iota
	SepColor
	FieldColor
	ValueColor
	VariantColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			SigilColor:   color.RGB(74, 92, 138).SprintfFunc(),
			SepColor:     color.RGB(255, 0, 196).SprintfFunc(),
			FieldColor:   color.RGB(196, 96, 16).SprintfFunc(),
			ValueColor:   color.RGB(8, 196, 16).SprintfFunc(),
			VariantColor: color.CyanString,
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
