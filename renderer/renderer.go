package renderer

import (
	"github.com/ByLCY/textcanvas/style"
)

// Surface 是宿主提供的绘制表面：测量、应用样式、调整尺寸与绘制文本。
// 调整尺寸会重置绘制状态，调用方必须在每次 Resize 之后重新 ApplyStyle。
type Surface interface {
	// MeasureText 返回 s 在最近一次应用的字体下的像素宽度。
	MeasureText(s string) (float64, error)
	// ApplyStyle 设置后续绘制所用的字体、对齐、基线、填充色与阴影。
	ApplyStyle(cfg style.Config) error
	// Resize 分配 width*scale × height*scale 设备像素的表面，并把绘制坐标按 scale 缩放。
	Resize(width, height, scale float64) error
	// Clear 清空逻辑坐标下的矩形区域。
	Clear(width, height float64) error
	// FillText 以对齐方式决定的锚点在 (x, y) 处绘制 text。
	FillText(text string, x, y float64) error
}
