package encode

import (
	"github.com/fatih/color"
)

// SymbolClass classifies a rendered symbol for coloring.
type SymbolClass int

const (
	LogicalSym SymbolClass = iota
	ParenSym
	VariableSym
	ConstantSym
	FunctionSym
	RelationSym
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[SymbolClass]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[SymbolClass]func(string, ...any) string{
			LogicalSym:  color.RGB(255, 0, 196).SprintfFunc(),
			ParenSym:    color.RGB(74, 92, 138).SprintfFunc(),
			VariableSym: color.RGB(128, 216, 236).SprintfFunc(),
			ConstantSym: color.RGB(196, 96, 16).SprintfFunc(),
			FunctionSym: color.GreenString,
			RelationSym: color.YellowString,
		},
	}
}

func colorDefault(s string, args ...any) string {
	return color.WhiteString(s, args...)
}

func (c *Colors) Color(class SymbolClass, s string) string {
	f, ok := c.Map[class]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}
