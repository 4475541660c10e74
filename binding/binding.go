// Package binding 将文本中的 ${path.to.value} 占位符替换为 JSON/YAML 数据中的值。
package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 替换 text 中的占位符。占位符可带默认值：${user.name|guest}。
// 路径不存在且没有默认值时保留原占位符。
func Interpolate(text string, data any) string {
	out, _ := interpolate(text, data)
	return out
}

// Unresolved 返回 text 中无法解析且没有默认值的占位符路径，按出现顺序去重。
func Unresolved(text string, data any) []string {
	_, missing := interpolate(text, data)
	return missing
}

func interpolate(text string, data any) (string, []string) {
	var missing []string
	seen := map[string]bool{}
	out := exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		path, fallback, hasFallback := splitExpr(exprPattern.FindStringSubmatch(match)[1])
		if path == "" {
			return match
		}
		if val, ok := Lookup(data, path); ok {
			return format(val)
		}
		if hasFallback {
			return fallback
		}
		if !seen[path] {
			seen[path] = true
			missing = append(missing, path)
		}
		return match
	})
	return out, missing
}

func splitExpr(expr string) (path, fallback string, hasFallback bool) {
	path = expr
	if i := strings.IndexByte(expr, '|'); i != -1 {
		path, fallback, hasFallback = expr[:i], strings.TrimSpace(expr[i+1:]), true
	}
	return strings.TrimSpace(path), fallback, hasFallback
}

// Lookup 按 "a.b[0].c" 形式的路径在 map/slice 数据中取值。
func Lookup(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name, indexes, ok := parseSegment(segment)
		if !ok {
			return nil, false
		}
		if name != "" {
			if current, ok = descendMap(current, name); !ok {
				return nil, false
			}
		}
		for _, idx := range indexes {
			if current, ok = descendArray(current, idx); !ok {
				return nil, false
			}
		}
	}
	return current, true
}

func parseSegment(segment string) (string, []int, bool) {
	name, rest, _ := strings.Cut(segment, "[")
	if rest == "" {
		return name, nil, name != "" || segment != ""
	}
	var indexes []int
	rest = "[" + rest
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, false
		}
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			return "", nil, false
		}
		idx, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return "", nil, false
		}
		indexes = append(indexes, idx)
		rest = rest[end+1:]
	}
	return name, indexes, true
}

func descendMap(current any, key string) (any, bool) {
	switch c := current.(type) {
	case map[string]any:
		val, ok := c[key]
		return val, ok
	case map[any]any:
		val, ok := c[key]
		return val, ok
	default:
		return nil, false
	}
}

func descendArray(current any, idx int) (any, bool) {
	c, ok := current.([]any)
	if !ok || idx < 0 || idx >= len(c) {
		return nil, false
	}
	return c[idx], true
}

// format 渲染标量；整数值的浮点数不带小数部分（JSON 数字解码为 float64）。
func format(val any) string {
	if f, ok := val.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(val)
}
