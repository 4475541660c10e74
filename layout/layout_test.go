package layout

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ByLCY/textcanvas/errs"
	"github.com/ByLCY/textcanvas/style"
)

// runeMeasure 是确定性的测量函数：每个字符 unit 像素。
func runeMeasure(unit float64) Measurer {
	return func(s string) (float64, error) {
		return float64(utf8.RuneCountInString(s)) * unit, nil
	}
}

func mustStyle(t *testing.T, p style.Partial) style.Config {
	t.Helper()
	cfg, err := style.Resolve(p)
	if err != nil {
		t.Fatalf("解析样式失败: %v", err)
	}
	return cfg
}

func lineTexts(res Result) []string {
	out := make([]string, 0, len(res.Lines))
	for _, ln := range res.Lines {
		out = append(out, ln.Text)
	}
	return out
}

func TestLayoutSingleLineNoWrap(t *testing.T) {
	cfg := mustStyle(t, nil)
	res, err := Layout("Hello there world", cfg, runeMeasure(10))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(res.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(res.Lines))
	}
	if res.Lines[0].Text != "Hello there world" || res.Lines[0].Width != 170 {
		t.Fatalf("unexpected line: %+v", res.Lines[0])
	}
	if res.Width != 170 {
		t.Fatalf("width = %g, want 170", res.Width)
	}
}

func TestLayoutHardBreaksNoWrap(t *testing.T) {
	cfg := mustStyle(t, style.Partial{"fontSize": 16})
	res, err := Layout("Hello\nWorld", cfg, runeMeasure(8))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if got := lineTexts(res); !reflect.DeepEqual(got, []string{"Hello", "World"}) {
		t.Fatalf("lines = %q", got)
	}
	for i, ln := range res.Lines {
		if math.Abs(ln.Height-19.2) > 1e-9 {
			t.Fatalf("line %d height = %g, want 19.2", i, ln.Height)
		}
	}
	if res.Height != 39 {
		t.Fatalf("height = %g, want ceil(38.4)=39", res.Height)
	}
	if res.Width != 40 {
		t.Fatalf("width = %g, want 40", res.Width)
	}
}

func TestLayoutKBreaksYieldKPlusOneLines(t *testing.T) {
	cfg := mustStyle(t, nil)
	text := "one\ntwo\n\nfour\nfive"
	res, err := Layout(text, cfg, runeMeasure(1))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	want := strings.Split(text, "\n")
	if got := lineTexts(res); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	if res.Lines[2].Width != 0 {
		t.Fatalf("blank line width = %g", res.Lines[2].Width)
	}
}

func TestLayoutWrapFitsOnOneLine(t *testing.T) {
	text := "fits on one line"
	plain, err := Layout(text, mustStyle(t, nil), runeMeasure(5))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	// 总宽度恰好等于限制
	wrapped, err := Layout(text, mustStyle(t, style.Partial{"wordWrap": 80}), runeMeasure(5))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if !reflect.DeepEqual(plain, wrapped) {
		t.Fatalf("wrapped = %+v, plain = %+v", wrapped, plain)
	}
}

func TestLayoutGreedyWrap(t *testing.T) {
	cfg := mustStyle(t, style.Partial{"wordWrap": 10})
	res, err := Layout("aaa bb cccc d ee", cfg, runeMeasure(1))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	want := []string{"aaa bb", "cccc d ee"}
	if got := lineTexts(res); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	if res.Lines[0].Width != 6 || res.Lines[1].Width != 9 {
		t.Fatalf("widths = %g, %g", res.Lines[0].Width, res.Lines[1].Width)
	}
	for _, ln := range res.Lines {
		if ln.Width > 10 {
			t.Fatalf("line %q exceeds limit", ln.Text)
		}
	}
}

// 第一个单词超宽时留在第一行，不会产生空行。
func TestLayoutFirstWordExemption(t *testing.T) {
	cfg := mustStyle(t, style.Partial{"wordWrap": 1})
	res, err := Layout("a b c", cfg, runeMeasure(10))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if got := lineTexts(res); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("lines = %q", got)
	}
	for _, ln := range res.Lines {
		if ln.Width != 10 {
			t.Fatalf("line %q width = %g, want 10", ln.Text, ln.Width)
		}
	}
}

// 后续硬换行段落的首词超宽时直接开始新行，不插入空行。
func TestLayoutOverflowOnLaterForcedLine(t *testing.T) {
	cfg := mustStyle(t, style.Partial{"wordWrap": 1})
	res, err := Layout("a b\nc d", cfg, runeMeasure(10))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	want := []string{"a", "b", "c", "d"}
	if got := lineTexts(res); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for _, ln := range res.Lines {
		if ln.Width != 10 {
			t.Fatalf("line %q width = %g, want 10", ln.Text, ln.Width)
		}
	}
	if res.Height != 77 {
		t.Fatalf("height = %g, want ceil(4*19.2)=77", res.Height)
	}
}

// 段首空格产生的空单词仍计入宽度，但行文本会去掉首尾空白。
func TestLayoutLeadingSpaceCountsTowardWidth(t *testing.T) {
	cfg := mustStyle(t, style.Partial{"wordWrap": 100})
	res, err := Layout("x\n a", cfg, runeMeasure(10))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if got := lineTexts(res); !reflect.DeepEqual(got, []string{"x", "a"}) {
		t.Fatalf("lines = %q", got)
	}
	if res.Lines[1].Width != 20 {
		t.Fatalf("width = %g, want 20 (leading space + a)", res.Lines[1].Width)
	}
}

func TestLayoutWrapStartsFreshPerForcedLine(t *testing.T) {
	cfg := mustStyle(t, style.Partial{"wordWrap": 100})
	res, err := Layout("ab cd\nef", cfg, runeMeasure(1))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if got := lineTexts(res); !reflect.DeepEqual(got, []string{"ab cd", "ef"}) {
		t.Fatalf("lines = %q", got)
	}
}

func TestLayoutUsesExplicitLineHeight(t *testing.T) {
	cfg := mustStyle(t, style.Partial{"lineHeight": 20, "wordWrap": 3})
	res, err := Layout("aa bb cc", cfg, runeMeasure(1))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(res.Lines) != 3 || res.Height != 60 {
		t.Fatalf("lines=%d height=%g", len(res.Lines), res.Height)
	}
}

func TestLayoutIdempotent(t *testing.T) {
	cfg := mustStyle(t, style.Partial{"wordWrap": 30})
	text := "the quick brown fox\njumps over the lazy dog"
	a, err := Layout(text, cfg, runeMeasure(3))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	b, err := Layout(text, cfg, runeMeasure(3))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("layout not idempotent:\n%+v\n%+v", a, b)
	}
}

func TestLayoutMeasureCountsSpaceOncePerForcedLine(t *testing.T) {
	calls := map[string]int{}
	measure := func(s string) (float64, error) {
		calls[s]++
		return float64(len(s)), nil
	}
	cfg := mustStyle(t, style.Partial{"wordWrap": 50})
	if _, err := Layout("a b c\nd e", cfg, measure); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if calls[" "] != 2 {
		t.Fatalf("space measured %d times, want 2", calls[" "])
	}
}

func TestLayoutMeasurementFailure(t *testing.T) {
	cases := map[string]Measurer{
		"error": func(string) (float64, error) { return 0, errors.New("no font") },
		"nan":   func(string) (float64, error) { return math.NaN(), nil },
		"neg":   func(string) (float64, error) { return -1, nil },
	}
	for name, m := range cases {
		for _, p := range []style.Partial{nil, {"wordWrap": 10}} {
			_, err := Layout("a b", mustStyle(t, p), m)
			if !errors.Is(err, errs.ErrMeasurementFailure) {
				t.Fatalf("%s: expected measurement failure, got %v", name, err)
			}
		}
	}
}

func TestLayoutRejectsNilMeasurer(t *testing.T) {
	if _, err := Layout("a", style.Defaults(), nil); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestAnchor(t *testing.T) {
	res := Result{Width: 100}
	cases := map[style.Align]float64{
		style.AlignLeft:   0,
		style.AlignCenter: 50,
		style.AlignRight:  100,
	}
	for align, want := range cases {
		if got := res.Anchor(align); got != want {
			t.Fatalf("Anchor(%s) = %g, want %g", align, got, want)
		}
	}
}

func TestPlacementsVerticalCursor(t *testing.T) {
	res := Result{
		Lines: []Line{
			{Text: "a", Width: 10, Height: 20},
			{Text: "b", Width: 30, Height: 20},
			{Text: "c", Width: 20, Height: 20},
		},
		Width:  30,
		Height: 60,
	}
	got := res.Placements(style.AlignRight)
	want := []Placement{{"a", 30, 20}, {"b", 30, 40}, {"c", 30, 60}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("placements = %+v, want %+v", got, want)
	}
}
