// Package dsl 解析内联样式声明，例如：
//
//	font-family: "Go Mono"; font-size: 12pt
//	word-wrap: 240px
//	text-color: #333; shadow-color: rgba(0, 0, 0, 0.5)
package dsl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/textcanvas/errs"
	"github.com/ByLCY/textcanvas/layout"
	"github.com/ByLCY/textcanvas/style"
)

var (
	styleLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{4}|[0-9A-Fa-f]{3})\b`},
		{Name: "ColorFunc", Pattern: `rgba?\([^)\n]*\)`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+|\.\d+)(?:px|pt|mm|cm|in)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[:;,]`},
	})

	sheetParser = participle.MustBuild[StyleSheet](
		participle.Lexer(styleLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment"),
	)
)

// StyleSheet is the root AST node: a list of declarations separated by ';' or newlines.
type StyleSheet struct {
	Pos          lexer.Position `parser:"" json:"-"`
	Declarations []*Declaration `parser:"( Newline | ';' )* ( @@ ( Newline | ';' )* )*"`
}

// Declaration uses colon syntax (key: value).
type Declaration struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident ':'"`
	Value *Value         `parser:"@@"`
}

// Value represents a declaration value.
type Value struct {
	String    *StringLiteral `parser:"  @String"`
	Number    *string        `parser:"| @Number"`
	Color     *string        `parser:"| @Color"`
	ColorFunc *string        `parser:"| @ColorFunc"`
	Words     []string       `parser:"| @Ident ( ( @',' )? @Ident )*"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses style declarations from an io.Reader.
func Parse(r io.Reader) (*StyleSheet, error) {
	return sheetParser.Parse("", r)
}

// ParseString parses style declarations from a string.
func ParseString(input string) (*StyleSheet, error) {
	return sheetParser.ParseString("", input)
}

// ParseStyle 解析声明并转换为 style.Partial。语法错误归类为 InvalidConfiguration。
func ParseStyle(input string) (style.Partial, error) {
	sheet, err := ParseString(input)
	if err != nil {
		return nil, errs.Wrap("dsl.ParseStyle", errs.KindInvalidConfiguration, "", err)
	}
	return sheet.Partial()
}

// ParseStyleReader is ParseStyle for a style file.
func ParseStyleReader(r io.Reader) (style.Partial, error) {
	sheet, err := Parse(r)
	if err != nil {
		return nil, errs.Wrap("dsl.ParseStyle", errs.KindInvalidConfiguration, "", err)
	}
	return sheet.Partial()
}

// Partial 把声明转换为 style.Partial：长度统一换算为 px，true/false 转为布尔值，
// 其余标识符按空格拼接。同名键以最后一次声明为准。
func (s *StyleSheet) Partial() (style.Partial, error) {
	out := style.Partial{}
	if s == nil {
		return out, nil
	}
	for _, decl := range s.Declarations {
		v, err := decl.Value.native()
		if err != nil {
			return nil, errs.Wrap("dsl.ParseStyle", errs.KindInvalidConfiguration, style.CanonicalKey(decl.Key),
				fmt.Errorf("%s: %w", decl.Pos, err))
		}
		out[style.CanonicalKey(decl.Key)] = v
	}
	return out, nil
}

func (v *Value) native() (any, error) {
	switch {
	case v == nil:
		return nil, fmt.Errorf("缺少取值")
	case v.String != nil:
		return string(*v.String), nil
	case v.Number != nil:
		l, err := layout.ParseLength(*v.Number)
		if err != nil {
			return nil, err
		}
		return l.ToPX(), nil
	case v.Color != nil:
		return *v.Color, nil
	case v.ColorFunc != nil:
		return *v.ColorFunc, nil
	case len(v.Words) == 1 && v.Words[0] == "false":
		return false, nil
	case len(v.Words) == 1 && v.Words[0] == "true":
		return true, nil
	case len(v.Words) > 0:
		return joinWords(v.Words), nil
	default:
		return nil, fmt.Errorf("缺少取值")
	}
}

func joinWords(words []string) string {
	var b strings.Builder
	for _, w := range words {
		if w == "," {
			b.WriteString(",")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	return b.String()
}
