package encode

import (
	"strings"

	"github.com/signadot/fieldpath/token"

	"github.com/fatih/color"
)

type Colorable struct {
	Type token.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	SepColor
	LabelColor
	ErrorColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range []token.Type{token.NumType, token.StrType, token.EndType} {
		able := Colorable{Type: t, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = LabelColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = ErrorColor
		colors.Map[able] = color.RedString
	}
	colors.Map[Colorable{Type: token.NumType, Attr: KeyColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Type: token.StrType, Attr: KeyColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Type: token.EndType, Attr: KeyColor}] = color.CyanString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t token.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t token.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
