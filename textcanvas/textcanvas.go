// Package textcanvas 把一段文本按样式排版并绘制到可作为纹理或图层使用的表面上。
//
// TextCanvas 不是并发安全的：同一实例的设置与 Render 应由同一个调用方串行完成。
package textcanvas

import (
	"strings"

	"github.com/ByLCY/textcanvas/errs"
	"github.com/ByLCY/textcanvas/layout"
	"github.com/ByLCY/textcanvas/renderer"
	canvasrenderer "github.com/ByLCY/textcanvas/renderer/canvas"
	"github.com/ByLCY/textcanvas/style"
)

// TextCanvas holds the text, style and resolution used by the next Render.
type TextCanvas struct {
	text       string
	style      style.Config
	resolution float64
	ambient    float64
	surface    renderer.Surface

	initial *float64
	cached  *layout.Result
}

// Option configures a TextCanvas at construction.
type Option func(*TextCanvas)

// WithSurface sets the drawing surface. Defaults to a tdewolff/canvas surface with built-in fonts.
func WithSurface(s renderer.Surface) Option {
	return func(t *TextCanvas) { t.surface = s }
}

// WithAmbientScale sets the host pixel-density scale used when no resolution is given.
func WithAmbientScale(scale float64) Option {
	return func(t *TextCanvas) { t.ambient = scale }
}

// WithResolution sets the initial resolution; it is validated like SetResolution.
func WithResolution(resolution float64) Option {
	return func(t *TextCanvas) { t.initial = &resolution }
}

// New 创建文本画布：依次校验文本、合并样式并校验分辨率。
func New(text string, partial style.Partial, opts ...Option) (*TextCanvas, error) {
	t := &TextCanvas{style: style.Defaults()}
	for _, opt := range opts {
		opt(t)
	}
	if t.surface == nil {
		t.surface = canvasrenderer.NewSurface()
	}
	if err := t.SetText(text); err != nil {
		return nil, err
	}
	if err := t.SetStyle(partial); err != nil {
		return nil, err
	}
	if err := t.SetResolution(t.initial); err != nil {
		return nil, err
	}
	return t, nil
}

// AsText 校验动态来源（配置文件、JSON）的文本值必须是字符串。
func AsText(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errs.New("textcanvas.SetText", errs.KindInvalidArgument, "text", "must be a string, got %T", v)
	}
	return s, nil
}

// Text returns the trimmed text used by the next Render.
func (t *TextCanvas) Text() string { return t.text }

// SetText 保存去除首尾空白后的文本；文本为空时返回 InvalidRange。
func (t *TextCanvas) SetText(text string) error {
	t.invalidate()
	text = strings.TrimSpace(text)
	if text == "" {
		return errs.New("textcanvas.SetText", errs.KindInvalidRange, "text", "text is empty")
	}
	t.text = text
	return nil
}

// SetTextValue 与 SetText 相同，但接受任意类型；非字符串返回 InvalidArgument。
func (t *TextCanvas) SetTextValue(v any) error {
	t.invalidate()
	s, err := AsText(v)
	if err != nil {
		return err
	}
	return t.SetText(s)
}

// Style returns the resolved style used by the next Render.
func (t *TextCanvas) Style() style.Config { return t.style }

// SetStyle 把 partial 合并到当前样式之上，多次调用会累积。
func (t *TextCanvas) SetStyle(partial style.Partial) error {
	t.invalidate()
	cfg, err := style.Merge(t.style, partial)
	if err != nil {
		return err
	}
	t.style = cfg
	return nil
}

// Resolution returns the resolution scale used by the next Render.
func (t *TextCanvas) Resolution() float64 { return t.resolution }

// SetResolution 校验并保存分辨率；nil 表示使用宿主像素密度（未知时为 1）。
func (t *TextCanvas) SetResolution(value *float64) error {
	t.invalidate()
	r, err := style.ResolveResolution(value, t.ambient)
	if err != nil {
		return err
	}
	t.resolution = r
	return nil
}

// Surface returns the drawing surface.
func (t *TextCanvas) Surface() renderer.Surface { return t.surface }

// Layout 返回当前文本的排版结果，结果在下一次设置之前被缓存。
func (t *TextCanvas) Layout() (layout.Result, error) {
	if err := t.surface.ApplyStyle(t.style); err != nil {
		return layout.Result{}, err
	}
	if t.cached != nil {
		return *t.cached, nil
	}
	res, err := layout.Layout(t.text, t.style, t.surface.MeasureText)
	if err != nil {
		return layout.Result{}, err
	}
	t.cached = &res
	return res, nil
}

// Render 排版并绘制文本，返回绘制表面。任何错误都发生在第一次绘制之前。
func (t *TextCanvas) Render() (renderer.Surface, error) {
	res, err := t.Layout()
	if err != nil {
		return nil, err
	}
	if err := t.surface.Resize(res.Width, res.Height, t.resolution); err != nil {
		return nil, err
	}
	// 调整尺寸后样式会被重置
	if err := t.surface.ApplyStyle(t.style); err != nil {
		return nil, err
	}
	if err := t.surface.Clear(res.Width, res.Height); err != nil {
		return nil, err
	}
	for _, p := range res.Placements(t.style.TextAlign) {
		if err := t.surface.FillText(p.Text, p.X, p.Y); err != nil {
			return nil, err
		}
	}
	return t.surface, nil
}

func (t *TextCanvas) invalidate() { t.cached = nil }
