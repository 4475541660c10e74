package canvasrenderer

import (
	"fmt"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/textcanvas/errs"
	"github.com/ByLCY/textcanvas/fonts"
	"github.com/ByLCY/textcanvas/layout"
	"github.com/ByLCY/textcanvas/renderer"
	"github.com/ByLCY/textcanvas/style"
)

// Surface draws text via github.com/tdewolff/canvas.
// Layout coordinates are CSS pixels; the canvas works in millimeters and font sizes in points.
type Surface struct {
	// injected resources, keyed by lower-cased font family
	fontBlobs map[string][]byte
	// 读取失败的字体文件，在该字体族被使用时报告
	fontErrs  map[string]error

	fontMu       sync.Mutex
	fontFamilies map[string]*canvas.FontFamily

	cfg        style.Config
	face       *canvas.FontFace
	shadowFace *canvas.FontFace

	c      *canvas.Canvas
	ctx    *canvas.Context
	width  float64 // px
	height float64 // px
	scale  float64
}

var _ renderer.Surface = (*Surface)(nil)

// Options configures the canvas surface.
type Options struct {
	// Fonts maps a font family name (as used in fontFamily) to a font file.
	Fonts map[string]Resource
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// NewSurface creates a surface that only uses the built-in Go fonts.
func NewSurface() *Surface { return NewSurfaceWithOptions(Options{}) }

// NewSurfaceWithOptions creates a surface with injected font resources.
func NewSurfaceWithOptions(opts Options) *Surface {
	s := &Surface{
		fontBlobs:    map[string][]byte{},
		fontErrs:     map[string]error{},
		fontFamilies: map[string]*canvas.FontFamily{},
		scale:        1,
	}
	for name, res := range opts.Fonts {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if len(res.Bytes) > 0 {
			s.fontBlobs[key] = res.Bytes
			continue
		}
		if res.Path != "" {
			data, err := os.ReadFile(res.Path)
			switch {
			case err != nil:
				s.fontErrs[key] = fmt.Errorf("读取字体文件 %s 失败: %w", res.Path, err)
			case len(data) == 0:
				s.fontErrs[key] = fmt.Errorf("字体文件 %s 为空", res.Path)
			default:
				s.fontBlobs[key] = data
			}
		}
	}
	return s
}

// MeasureText 返回 s 在当前字体下的宽度（px）。
func (s *Surface) MeasureText(text string) (float64, error) {
	if s.face == nil {
		return 0, fmt.Errorf("canvas: 尚未应用样式，无法测量文本")
	}
	return s.face.TextWidth(text) * layout.MmToPx, nil
}

// ApplyStyle 根据样式创建字体面（文本色与阴影色各一个）。
func (s *Surface) ApplyStyle(cfg style.Config) error {
	const op = "canvas.ApplyStyle"
	fill, err := parseColor(cfg.TextColor)
	if err != nil {
		return errs.Wrap(op, errs.KindInvalidConfiguration, style.KeyTextColor, err)
	}
	family, err := s.ensureFontFamily(cfg)
	if err != nil {
		return err
	}
	size := cfg.FontSize * layout.PxToPt
	s.face = family.Face(size, fill, canvas.FontRegular, canvas.FontNormal)
	s.shadowFace = nil
	if cfg.HasShadow() {
		shadow, err := parseColor(cfg.ShadowColor)
		if err != nil {
			return errs.Wrap(op, errs.KindInvalidConfiguration, style.KeyShadowColor, err)
		}
		s.shadowFace = family.Face(size, shadow, canvas.FontRegular, canvas.FontNormal)
	}
	s.cfg = cfg
	return nil
}

// Resize 重新分配画布。与浏览器画布一样，调整尺寸会丢弃已应用的样式。
func (s *Surface) Resize(width, height, scale float64) error {
	if width < 0 || height < 0 || math.IsNaN(width) || math.IsNaN(height) {
		return fmt.Errorf("canvas: 非法尺寸 %gx%g", width, height)
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return fmt.Errorf("canvas: 非法缩放 %g", scale)
	}
	s.width, s.height, s.scale = width, height, scale
	s.newCanvas()
	s.face = nil
	s.shadowFace = nil
	return nil
}

// Clear 清空画布。矢量画布无法局部擦除，只能整体重建；尺寸超出画布时报错。
func (s *Surface) Clear(width, height float64) error {
	if s.c == nil {
		return fmt.Errorf("canvas: 画布尚未分配")
	}
	if width > s.width || height > s.height {
		return fmt.Errorf("canvas: 清空区域 %gx%g 超出画布 %gx%g", width, height, s.width, s.height)
	}
	s.newCanvas()
	return nil
}

// FillText 在 (x, y) 绘制文本；x 为对齐锚点，y 按 textBaseline 换算为字体基线。
func (s *Surface) FillText(text string, x, y float64) error {
	if s.ctx == nil {
		return fmt.Errorf("canvas: 画布尚未分配")
	}
	if s.face == nil {
		return fmt.Errorf("canvas: 调整尺寸后必须重新应用样式")
	}
	align := textAlign(s.cfg.TextAlign)
	anchorX := x * layout.PxToMm
	baseline := baselineY(y*layout.PxToMm, s.cfg.TextBaseline, s.face.Metrics())

	if s.shadowFace != nil {
		dx := s.cfg.ShadowOffsetX * layout.PxToMm
		dy := s.cfg.ShadowOffsetY * layout.PxToMm
		s.ctx.DrawText(anchorX+dx, baseline+dy, canvas.NewTextLine(s.shadowFace, text, align))
	}
	s.ctx.DrawText(anchorX, baseline, canvas.NewTextLine(s.face, text, align))
	return nil
}

// Size returns the logical surface size in px and its resolution scale.
func (s *Surface) Size() (width, height, scale float64) {
	return s.width, s.height, s.scale
}

// Canvas exposes the underlying vector canvas (nil before the first Resize).
func (s *Surface) Canvas() *canvas.Canvas { return s.c }

func (s *Surface) newCanvas() {
	s.c = canvas.New(s.width*layout.PxToMm, s.height*layout.PxToMm)
	s.ctx = canvas.NewContext(s.c)
	s.ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点
}

func (s *Surface) ensureFontFamily(cfg style.Config) (*canvas.FontFamily, error) {
	name, data, err := s.fontSource(cfg)
	if err != nil {
		return nil, err
	}

	s.fontMu.Lock()
	defer s.fontMu.Unlock()

	if family, ok := s.fontFamilies[name]; ok {
		return family, nil
	}
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载字体 %s 失败: %w", name, err)
	}
	s.fontFamilies[name] = family
	return family, nil
}

// fontSource 优先使用注入的字体文件，否则按字体族、字重、斜体与小型大写字母选择内置字体。
func (s *Surface) fontSource(cfg style.Config) (string, []byte, error) {
	key := strings.ToLower(strings.TrimSpace(cfg.FontFamily))
	if err, ok := s.fontErrs[key]; ok {
		return "", nil, errs.Wrap("canvas.ApplyStyle", errs.KindInvalidConfiguration, style.KeyFontFamily, err)
	}
	if blob, ok := s.fontBlobs[key]; ok {
		return "custom:" + key, blob, nil
	}
	italic := cfg.FontStyle == style.FontStyleItalic || cfg.FontStyle == style.FontStyleOblique
	smallCaps := cfg.FontVariant == style.FontVariantSmallCaps
	name := fonts.Select(cfg.FontFamily, fonts.ParseWeight(cfg.FontWeight), italic, smallCaps)
	data, err := fonts.Load(name)
	if err != nil {
		return "", nil, err
	}
	return name, data, nil
}

func textAlign(a style.Align) canvas.TextAlign {
	switch a {
	case style.AlignCenter:
		return canvas.Center
	case style.AlignRight:
		return canvas.Right
	default:
		return canvas.Left
	}
}

// baselineY 将 y（mm，向下为正）换算为字体基线位置。
func baselineY(y float64, b style.Baseline, m canvas.FontMetrics) float64 {
	ascent := math.Abs(m.Ascent)
	descent := math.Abs(m.Descent)
	switch b {
	case style.BaselineTop, style.BaselineHanging:
		return y + ascent
	case style.BaselineMiddle:
		return y + (ascent-descent)/2
	case style.BaselineAlphabetic:
		return y
	default: // bottom, ideographic
		return y - descent
	}
}
