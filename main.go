package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ByLCY/textcanvas/binding"
	"github.com/ByLCY/textcanvas/config"
	"github.com/ByLCY/textcanvas/dsl"
	"github.com/ByLCY/textcanvas/layout"
	canvasrenderer "github.com/ByLCY/textcanvas/renderer/canvas"
	"github.com/ByLCY/textcanvas/style"
	"github.com/ByLCY/textcanvas/textcanvas"
)

// options 汇总命令行参数；非空的参数覆盖任务文件中的同名字段。
type options struct {
	configPath string
	text       string
	styleDSL   string
	styleFile  string
	resolution float64
	output     string
	debug      string
	dataJSON   string
	verbose    bool
}

const (
	defaultOutput = "output/text.png"
	// 未指定 -config 时读取当前目录下的任务文件（可不存在）
	defaultJob = "textcanvas.yaml"
)

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML 任务文件路径")
	flag.StringVar(&opts.text, "text", "", "要渲染的文本，支持 ${path|默认值} 绑定")
	flag.StringVar(&opts.styleDSL, "style", "", "内联样式声明，例如 \"font-size: 24px; text-align: center\"")
	flag.StringVar(&opts.styleFile, "style-file", "", "样式声明文件路径")
	flag.Float64Var(&opts.resolution, "resolution", 0, "分辨率倍率，0 表示沿用任务文件或默认值")
	flag.StringVar(&opts.output, "out", "", "输出路径，扩展名决定格式（.png/.svg/.pdf），默认 "+defaultOutput)
	flag.StringVar(&opts.debug, "debug", "", "布局调试 JSON 输出路径")
	flag.StringVar(&opts.dataJSON, "data", "", "绑定到文本的 JSON 数据")
	flag.BoolVar(&opts.verbose, "v", false, "输出渲染过程日志")
	flag.Parse()

	if !opts.verbose {
		log.SetOutput(io.Discard)
	}
	out, err := run(opts)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("渲染失败: %v", err)
	}
	fmt.Printf("已生成：%s\n", out)
}

// run 串联任务加载、样式解析、数据绑定、排版与输出，返回写入的文件路径。
func run(opts options) (string, error) {
	job, err := loadJob(opts.configPath)
	if err != nil {
		return "", err
	}

	if opts.text != "" {
		job.Text = opts.text
	}
	if job.Text == nil {
		return "", fmt.Errorf("缺少文本：请通过 -text 或任务文件的 text 字段提供")
	}
	text, err := textcanvas.AsText(job.Text)
	if err != nil {
		return "", err
	}

	partial, err := job.Partial()
	if err != nil {
		return "", err
	}
	if opts.styleFile != "" {
		f, err := os.Open(opts.styleFile)
		if err != nil {
			return "", fmt.Errorf("无法打开样式文件 %s: %w", opts.styleFile, err)
		}
		sheet, err := dsl.ParseStyleReader(f)
		f.Close()
		if err != nil {
			return "", err
		}
		mergePartial(partial, sheet)
	}
	if opts.styleDSL != "" {
		sheet, err := dsl.ParseStyle(opts.styleDSL)
		if err != nil {
			return "", err
		}
		mergePartial(partial, sheet)
	}
	log.Printf("样式: %v", partial)

	data := job.Data
	if opts.dataJSON != "" {
		if err := json.Unmarshal([]byte(opts.dataJSON), &data); err != nil {
			return "", fmt.Errorf("解析 data JSON 失败: %w", err)
		}
	}
	if data != nil {
		if missing := binding.Unresolved(text, data); len(missing) > 0 {
			log.Printf("未解析的绑定: %v", missing)
		}
		text = binding.Interpolate(text, data)
	}

	resolution := job.Resolution
	if opts.resolution != 0 {
		resolution = &opts.resolution
	}

	output := opts.output
	if output == "" {
		output = job.OutputPath()
	}
	if output == "" {
		output = defaultOutput
	}
	if _, err := canvasrenderer.FormatFromPath(output); err != nil {
		return "", err
	}

	fontRes := map[string]canvasrenderer.Resource{}
	for family, path := range job.FontPaths() {
		fontRes[family] = canvasrenderer.Resource{Path: path}
	}
	surface := canvasrenderer.NewSurfaceWithOptions(canvasrenderer.Options{Fonts: fontRes})

	tc, err := textcanvas.New(text, partial, textcanvas.WithSurface(surface))
	if err != nil {
		return "", err
	}
	if err := tc.SetResolution(resolution); err != nil {
		return "", err
	}

	res, err := tc.Layout()
	if err != nil {
		return "", err
	}
	log.Printf("文本 %d 字符, 字体 %q", len([]rune(tc.Text())), tc.Style().Font())
	log.Printf("布局: %d 行, %vx%v px, 分辨率 %v", len(res.Lines), res.Width, res.Height, tc.Resolution())

	debugPath := opts.debug
	if debugPath == "" {
		debugPath = job.Debug
	}
	if debugPath != "" {
		if err := writeDebug(layout.NewDebugDump(res, tc.Style(), tc.Resolution()), debugPath); err != nil {
			return "", err
		}
		log.Printf("调试 JSON: %s", debugPath)
	}

	if _, err := tc.Render(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := surface.WriteFile(output); err != nil {
		return "", err
	}
	return output, nil
}

// loadJob 读取显式指定的任务文件，文件不存在时报错；未指定时尝试默认任务文件。
func loadJob(path string) (*config.Job, error) {
	if path != "" {
		log.Printf("任务文件: %q", path)
		return config.Load(path)
	}
	return config.LoadOptional(defaultJob)
}

func mergePartial(dst, src style.Partial) {
	for k, v := range src {
		dst[k] = v
	}
}

func writeDebug(dump layout.DebugDump, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(dump, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
