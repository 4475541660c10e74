package canvasrenderer

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/ByLCY/textcanvas/layout"
)

// Format is an output encoding of a rendered surface.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
)

// FormatFromPath infers the output format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("不支持的输出格式: %s（支持 .png/.svg/.pdf）", path)
	}
}

// Image 以分辨率缩放栅格化画布：输出为 width*scale × height*scale 设备像素。
func (s *Surface) Image() (*image.RGBA, error) {
	if s.c == nil {
		return nil, fmt.Errorf("canvas: 画布尚未分配")
	}
	return rasterizer.Draw(s.c, canvas.DPMM(s.scale*layout.MmToPx), canvas.DefaultColorSpace), nil
}

// Encode writes the surface in the given format.
func (s *Surface) Encode(w io.Writer, format Format) error {
	if s.c == nil {
		return fmt.Errorf("canvas: 画布尚未分配")
	}
	switch format {
	case FormatPNG:
		img, err := s.Image()
		if err != nil {
			return err
		}
		return png.Encode(w, img)
	case FormatSVG:
		r := svg.New(w, s.width*layout.PxToMm, s.height*layout.PxToMm, nil)
		s.c.RenderTo(r)
		return r.Close()
	case FormatPDF:
		r := pdf.New(w, s.width*layout.PxToMm, s.height*layout.PxToMm, nil)
		s.c.RenderTo(r)
		if err := r.Close(); err != nil {
			return fmt.Errorf("写入 PDF 失败: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("不支持的输出格式: %s", format)
	}
}

// WriteFile encodes the surface into path, choosing the format from its extension.
func (s *Surface) WriteFile(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建输出文件 %s 失败: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := s.Encode(w, format); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
