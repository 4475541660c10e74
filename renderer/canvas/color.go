package canvasrenderer

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/colornames"
)

var (
	hexPattern  = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{4}|[0-9A-Fa-f]{3})$`)
	funcPattern = regexp.MustCompile(`^rgba?\(\s*([^)]*)\)$`)
)

// parseColor 解析 CSS 颜色：#rgb/#rgba/#rrggbb/#rrggbbaa、rgb()/rgba()、颜色名与 transparent。
func parseColor(value string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case v == "":
		return nil, fmt.Errorf("颜色为空")
	case v == "transparent":
		return color.RGBA{}, nil
	case hexPattern.MatchString(v):
		return canvas.Hex(v), nil
	case funcPattern.MatchString(v):
		return parseColorFunc(funcPattern.FindStringSubmatch(v)[1])
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("无法识别的颜色 %q", value)
}

func parseColorFunc(args string) (color.Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("rgb()/rgba() 需要 3 或 4 个参数，实际 %d", len(parts))
	}
	var channels [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return nil, fmt.Errorf("颜色分量 %q 不在 0-255 之间", parts[i])
		}
		channels[i] = uint8(n)
	}
	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return nil, fmt.Errorf("透明度 %q 不在 0-1 之间", parts[3])
		}
		alpha = a
	}
	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: uint8(alpha*255 + 0.5)}, nil
}
