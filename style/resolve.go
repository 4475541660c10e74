package style

import (
	"fmt"
	"maps"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/ByLCY/textcanvas/errs"
)

// 样式键名（camelCase，与 TextStyle 的字段名一致）。
const (
	KeyFontFamily    = "fontFamily"
	KeyFontStyle     = "fontStyle"
	KeyFontWeight    = "fontWeight"
	KeyFontVariant   = "fontVariant"
	KeyFontSize      = "fontSize"
	KeyLineHeight    = "lineHeight"
	KeyTextAlign     = "textAlign"
	KeyTextBaseline  = "textBaseline"
	KeyTextColor     = "textColor"
	KeyWordWrap      = "wordWrap"
	KeyShadowBlur    = "shadowBlur"
	KeyShadowOffsetX = "shadowOffsetX"
	KeyShadowOffsetY = "shadowOffsetY"
	KeyShadowColor   = "shadowColor"
)

// Partial 是用户提供的部分样式。键可以是 camelCase（fontSize）或 kebab-case（font-size）。
// 值为 nil 的键视为未提供。
type Partial map[string]any

// Resolve 将 p 浅合并到默认样式之上并校验结果。纯函数，不修改 p。
func Resolve(p Partial) (Config, error) {
	return Merge(Defaults(), p)
}

// Merge 将 p 浅合并到 base 之上：p 中出现的每个顶层键覆盖 base，其余保持不变。
// 未识别的键保存在 Config.Extra 中。
func Merge(base Config, p Partial) (Config, error) {
	const op = "style.Resolve"
	out := base
	out.Extra = maps.Clone(base.Extra)

	for rawKey, value := range p {
		if value == nil {
			continue
		}
		key := CanonicalKey(rawKey)
		if err := apply(&out, key, value); err != nil {
			return Config{}, err
		}
	}
	if err := out.Validate(); err != nil {
		if e, ok := err.(*errs.Error); ok {
			e.Op = op
		}
		return Config{}, err
	}
	return out, nil
}

func apply(c *Config, key string, value any) error {
	const op = "style.Resolve"
	var err error
	switch key {
	case KeyFontFamily:
		c.FontFamily, err = stringValue(key, value)
	case KeyFontStyle:
		var s string
		s, err = stringValue(key, value)
		c.FontStyle = FontStyle(strings.ToLower(s))
	case KeyFontWeight:
		c.FontWeight, err = weightValue(value)
	case KeyFontVariant:
		var s string
		s, err = stringValue(key, value)
		c.FontVariant = FontVariant(strings.ToLower(s))
	case KeyFontSize:
		c.FontSize, err = numberValue(key, value)
		if err == nil && (!finite(c.FontSize) || c.FontSize <= 0) {
			err = invalid(op, key, "must be a positive number, got %v", c.FontSize)
		}
	case KeyLineHeight:
		c.LineHeight, err = numberValue(key, value)
	case KeyTextAlign:
		var s string
		s, err = stringValue(key, value)
		c.TextAlign = Align(strings.ToLower(s))
	case KeyTextBaseline:
		var s string
		s, err = stringValue(key, value)
		c.TextBaseline = Baseline(s)
	case KeyTextColor:
		c.TextColor, err = stringValue(key, value)
	case KeyWordWrap:
		c.WordWrap, err = wordWrapValue(value)
	case KeyShadowBlur:
		c.ShadowBlur, err = numberValue(key, value)
	case KeyShadowOffsetX:
		c.ShadowOffsetX, err = numberValue(key, value)
	case KeyShadowOffsetY:
		c.ShadowOffsetY, err = numberValue(key, value)
	case KeyShadowColor:
		c.ShadowColor, err = stringValue(key, value)
	default:
		if c.Extra == nil {
			c.Extra = map[string]any{}
		}
		c.Extra[key] = value
	}
	return err
}

// wordWrapValue 接受 false（关闭）或有限正数。true 与 0 都视为非法。
func wordWrapValue(value any) (float64, error) {
	const op = "style.Resolve"
	if b, ok := value.(bool); ok {
		if b {
			return 0, invalid(op, KeyWordWrap, "must be false or a positive number, got true")
		}
		return 0, nil
	}
	limit, ok := toFloat(value)
	if !ok {
		return 0, invalid(op, KeyWordWrap, "must be false or a positive number, got %T", value)
	}
	if !finite(limit) || limit <= 0 {
		return 0, invalid(op, KeyWordWrap, "must be false or a positive number, got %v", limit)
	}
	return limit, nil
}

func weightValue(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	if f, ok := toFloat(value); ok && finite(f) && f > 0 {
		return formatNumber(f), nil
	}
	return "", invalid("style.Resolve", KeyFontWeight, "must be a string or a positive number, got %v", value)
}

func stringValue(key string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", invalid("style.Resolve", key, "must be a string, got %T", value)
	}
	return s, nil
}

func numberValue(key string, value any) (float64, error) {
	f, ok := toFloat(value)
	if !ok {
		return 0, invalid("style.Resolve", key, "must be a number, got %T", value)
	}
	return f, nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return math.NaN(), false
	}
}

// CanonicalKey 把 kebab-case 键（font-size）转换为 camelCase（fontSize）。
func CanonicalKey(key string) string {
	key = strings.TrimSpace(key)
	if !strings.Contains(key, "-") {
		return key
	}
	var b strings.Builder
	upper := false
	for _, r := range key {
		if r == '-' {
			upper = b.Len() > 0
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func invalid(op, field, format string, args ...any) *errs.Error {
	return &errs.Error{
		Op:    op,
		Kind:  errs.KindInvalidConfiguration,
		Field: field,
		Msg:   fmt.Sprintf(format, args...),
	}
}
