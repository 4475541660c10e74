// Package style 负责把用户提供的部分样式与默认值合并，得到完整且经过校验的样式记录。
package style

import (
	"fmt"
	"math"
	"strings"
)

// FontStyle 对应 CSS font-style。
type FontStyle string

const (
	FontStyleNormal  FontStyle = "normal"
	FontStyleItalic  FontStyle = "italic"
	FontStyleOblique FontStyle = "oblique"
)

// FontVariant 对应 CSS font-variant。
type FontVariant string

const (
	FontVariantNormal    FontVariant = "normal"
	FontVariantSmallCaps FontVariant = "small-caps"
)

// Align 为文本水平对齐方式。
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Baseline 原样转交给绘制端，布局算法不解释它。
type Baseline string

const (
	BaselineTop         Baseline = "top"
	BaselineHanging     Baseline = "hanging"
	BaselineMiddle      Baseline = "middle"
	BaselineAlphabetic  Baseline = "alphabetic"
	BaselineIdeographic Baseline = "ideographic"
	BaselineBottom      Baseline = "bottom"
)

// DefaultLineHeightFactor 为未指定行高时相对字号的倍数。
const DefaultLineHeightFactor = 1.2

// Config 是合并并校验后的完整样式，解析后视为不可变值。
// WordWrap 为 0 表示关闭自动折行（只按硬换行分行），正数为最大行宽（像素）。
// LineHeight 为 0 表示使用 FontSize*1.2。
type Config struct {
	FontFamily    string         `json:"fontFamily" yaml:"fontFamily"`
	FontStyle     FontStyle      `json:"fontStyle" yaml:"fontStyle"`
	FontWeight    string         `json:"fontWeight" yaml:"fontWeight"`
	FontVariant   FontVariant    `json:"fontVariant" yaml:"fontVariant"`
	FontSize      float64        `json:"fontSize" yaml:"fontSize"`
	LineHeight    float64        `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"`
	TextAlign     Align          `json:"textAlign" yaml:"textAlign"`
	TextBaseline  Baseline       `json:"textBaseline" yaml:"textBaseline"`
	TextColor     string         `json:"textColor" yaml:"textColor"`
	WordWrap      float64        `json:"wordWrap,omitempty" yaml:"wordWrap,omitempty"`
	ShadowBlur    float64        `json:"shadowBlur,omitempty" yaml:"shadowBlur,omitempty"`
	ShadowOffsetX float64        `json:"shadowOffsetX,omitempty" yaml:"shadowOffsetX,omitempty"`
	ShadowOffsetY float64        `json:"shadowOffsetY,omitempty" yaml:"shadowOffsetY,omitempty"`
	ShadowColor   string         `json:"shadowColor,omitempty" yaml:"shadowColor,omitempty"`
	Extra         map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"` // 未识别的键原样保留
}

// Defaults 返回默认样式记录。
func Defaults() Config {
	return Config{
		FontFamily:   "sans-serif",
		FontStyle:    FontStyleNormal,
		FontWeight:   "normal",
		FontVariant:  FontVariantNormal,
		FontSize:     16,
		TextAlign:    AlignLeft,
		TextBaseline: BaselineBottom,
		TextColor:    "black",
		ShadowColor:  "transparent",
	}
}

// Wraps reports whether word wrapping is enabled.
func (c Config) Wraps() bool { return c.WordWrap > 0 }

// ResolvedLineHeight 返回实际行高：显式行高优先，否则为 FontSize*1.2。
func (c Config) ResolvedLineHeight() float64 {
	if c.LineHeight > 0 {
		return c.LineHeight
	}
	return c.FontSize * DefaultLineHeightFactor
}

// HasShadow reports whether a visible shadow is configured.
func (c Config) HasShadow() bool {
	color := strings.ToLower(strings.TrimSpace(c.ShadowColor))
	if color == "" || color == "transparent" {
		return false
	}
	return c.ShadowBlur != 0 || c.ShadowOffsetX != 0 || c.ShadowOffsetY != 0
}

// Font 返回 CSS font 简写，例如 "normal normal bold 16px sans-serif"。
func (c Config) Font() string {
	return fmt.Sprintf("%s %s %s %spx %s", c.FontStyle, c.FontVariant, c.FontWeight, formatNumber(c.FontSize), c.FontFamily)
}

// Validate 检查字号、折行宽度、行高与枚举字段。
func (c Config) Validate() error {
	const op = "style.Validate"
	if !finite(c.FontSize) || c.FontSize <= 0 {
		return invalid(op, KeyFontSize, "must be a positive number, got %v", c.FontSize)
	}
	if !finite(c.WordWrap) || c.WordWrap < 0 {
		return invalid(op, KeyWordWrap, "must be false or a positive number, got %v", c.WordWrap)
	}
	if !finite(c.LineHeight) || c.LineHeight < 0 {
		return invalid(op, KeyLineHeight, "must be a non-negative number, got %v", c.LineHeight)
	}
	switch c.FontStyle {
	case FontStyleNormal, FontStyleItalic, FontStyleOblique:
	default:
		return invalid(op, KeyFontStyle, "unsupported value %q", c.FontStyle)
	}
	switch c.FontVariant {
	case FontVariantNormal, FontVariantSmallCaps:
	default:
		return invalid(op, KeyFontVariant, "unsupported value %q", c.FontVariant)
	}
	switch c.TextAlign {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		return invalid(op, KeyTextAlign, "unsupported value %q", c.TextAlign)
	}
	for key, v := range map[string]float64{
		KeyShadowBlur:    c.ShadowBlur,
		KeyShadowOffsetX: c.ShadowOffsetX,
		KeyShadowOffsetY: c.ShadowOffsetY,
	} {
		if !finite(v) {
			return invalid(op, key, "must be a finite number, got %v", v)
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
