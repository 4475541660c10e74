package layout

import "github.com/ByLCY/textcanvas/style"

// Anchor 返回对齐方式对应的水平绘制锚点：left 为 0，center 为宽度一半，right 为宽度。
func (r Result) Anchor(align style.Align) float64 {
	switch align {
	case style.AlignCenter:
		return r.Width / 2
	case style.AlignRight:
		return r.Width
	default:
		return 0
	}
}

// Placements 返回每行的绘制坐标。纵向游标从 0 开始，在绘制每行之前先加上该行高度，
// 因此第一行的 y 等于它自己的行高。
func (r Result) Placements(align style.Align) []Placement {
	x := r.Anchor(align)
	y := 0.0
	out := make([]Placement, 0, len(r.Lines))
	for _, ln := range r.Lines {
		y += ln.Height
		out = append(out, Placement{Text: ln.Text, X: x, Y: y})
	}
	return out
}
