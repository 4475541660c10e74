// Package layout 把文本拆成可绘制的行：先按硬换行分段，再按单词贪心折行，
// 最后计算包围盒尺寸与每行的绘制坐标。
package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/ByLCY/textcanvas/errs"
	"github.com/ByLCY/textcanvas/style"
)

// Measurer 返回 s 在当前字体下的像素宽度。
type Measurer func(s string) (float64, error)

// Layout 按 cfg 对 text 排版。text 应已去除首尾空白且非空。
// 测量函数出错或返回负数/NaN 时返回 MeasurementFailure，不会产生部分结果。
func Layout(text string, cfg style.Config, measure Measurer) (Result, error) {
	if measure == nil {
		return Result{}, errs.New("layout.Layout", errs.KindInvalidArgument, "measure", "measurer is nil")
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	m := measurer(measure)
	lineHeight := cfg.ResolvedLineHeight()
	forcedLines := strings.Split(text, "\n")

	var (
		lines []Line
		err   error
	)
	if cfg.Wraps() {
		lines, err = wrapLines(forcedLines, cfg.WordWrap, lineHeight, m)
	} else {
		lines, err = plainLines(forcedLines, lineHeight, m)
	}
	if err != nil {
		return Result{}, err
	}
	return newResult(lines), nil
}

// plainLines 不折行：每个硬换行段落即一行。
func plainLines(forcedLines []string, lineHeight float64, m measurer) ([]Line, error) {
	lines := make([]Line, 0, len(forcedLines))
	for _, forced := range forcedLines {
		content := strings.TrimSpace(forced)
		w, err := m.width(content)
		if err != nil {
			return nil, err
		}
		lines = append(lines, Line{Text: content, Width: w, Height: lineHeight})
	}
	return lines, nil
}

// wrapLines 对每个硬换行段落按空格分词并贪心折行。
// 段落首词即使超出 limit 也直接作为新行的开头，不会产生空行。
func wrapLines(forcedLines []string, limit, lineHeight float64, m measurer) ([]Line, error) {
	var lines []Line
	for _, forced := range forcedLines {
		space, err := m.width(" ")
		if err != nil {
			return nil, err
		}
		acc := accumulator{space: space}
		for _, word := range strings.Split(forced, " ") {
			ww, err := m.width(word)
			if err != nil {
				return nil, err
			}
			if acc.words > 0 && acc.width+ww > limit {
				lines = append(lines, acc.commit(lineHeight))
				acc = accumulator{space: space}
			}
			acc.add(word, ww)
		}
		lines = append(lines, acc.commit(lineHeight))
	}
	return lines, nil
}

// accumulator 是正在拼接的行，每个单词后都跟一个空格，宽度包含该空格。
type accumulator struct {
	text  strings.Builder
	width float64
	space float64
	words int
}

func (a *accumulator) add(word string, width float64) {
	a.text.WriteString(word)
	a.text.WriteByte(' ')
	a.width += width + a.space
	a.words++
}

// commit 去掉行尾空格并从宽度中扣除一个空格宽度。
func (a *accumulator) commit(lineHeight float64) Line {
	width := a.width
	if a.words > 0 {
		width -= a.space
	}
	return Line{
		Text:   strings.TrimSpace(a.text.String()),
		Width:  width,
		Height: lineHeight,
	}
}

func newResult(lines []Line) Result {
	maxWidth := 0.0
	totalHeight := 0.0
	for _, ln := range lines {
		maxWidth = math.Max(maxWidth, ln.Width)
		totalHeight += ln.Height
	}
	return Result{
		Lines:  lines,
		Width:  math.Ceil(maxWidth),
		Height: math.Ceil(totalHeight),
	}
}

type measurer Measurer

func (m measurer) width(s string) (float64, error) {
	const op = "layout.Layout"
	w, err := m(s)
	if err != nil {
		return 0, errs.Wrap(op, errs.KindMeasurementFailure, "measure", fmt.Errorf("measure %q: %w", s, err))
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0, errs.New(op, errs.KindMeasurementFailure, "measure", "measure %q returned %v", s, w)
	}
	return w, nil
}
