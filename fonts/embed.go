// Package fonts 提供内置字体（Go 字体家族），在宿主没有提供字体文件时使用。
package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// Regular 为兜底字体名。
const Regular = "Go-Regular"

var builtin = map[string][]byte{
	"Go-Regular":         goregular.TTF,
	"Go-Bold":            gobold.TTF,
	"Go-Italic":          goitalic.TTF,
	"Go-BoldItalic":      gobolditalic.TTF,
	"Go-Medium":          gomedium.TTF,
	"Go-MediumItalic":    gomediumitalic.TTF,
	"Go-Mono":            gomono.TTF,
	"Go-MonoBold":        gomonobold.TTF,
	"Go-MonoItalic":      gomonoitalic.TTF,
	"Go-MonoBoldItalic":  gomonobolditalic.TTF,
	"Go-SmallCaps":       gosmallcaps.TTF,
	"Go-SmallCapsItalic": gosmallcapsitalic.TTF,
}

// Load 返回内置字体的字节数据，name 可写为 "embed:Go-Bold" 或直接 "Go-Bold"。
func Load(name string) ([]byte, error) {
	name = strings.TrimPrefix(name, "embed:")
	data, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("找不到内置字体 %s", name)
	}
	return data, nil
}

// Weight 是内置字体支持的字重档位。
type Weight int

const (
	WeightRegular Weight = iota
	WeightMedium
	WeightBold
)

// Select 按字体族、字重、斜体与小型大写字母选择最接近的内置字体名。
// monospace 系列映射到 Go Mono，其余一律映射到 Go 比例字体。
func Select(family string, weight Weight, italic, smallCaps bool) string {
	f := strings.ToLower(strings.TrimSpace(family))
	mono := strings.Contains(f, "mono") || strings.Contains(f, "courier")

	name := "Go-"
	switch {
	case mono:
		name += "Mono"
		if weight >= WeightBold {
			name += "Bold"
		}
	case smallCaps:
		name += "SmallCaps"
	case weight == WeightBold:
		name += "Bold"
	case weight == WeightMedium:
		name += "Medium"
	}
	if italic {
		name += "Italic"
	}
	if name == "Go-" {
		return Regular
	}
	if _, ok := builtin[name]; !ok {
		return Regular
	}
	return name
}

// ParseWeight 把 CSS font-weight（normal、bold、100..900）归档到内置字重。
func ParseWeight(weight string) Weight {
	switch strings.ToLower(strings.TrimSpace(weight)) {
	case "", "normal", "lighter", "100", "200", "300", "400":
		return WeightRegular
	case "500", "600":
		return WeightMedium
	case "bold", "bolder", "700", "800", "900":
		return WeightBold
	default:
		return WeightRegular
	}
}
