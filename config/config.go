// Package config 读取 YAML 描述的渲染任务（文本、样式、分辨率、输出与绑定数据）。
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ByLCY/textcanvas/dsl"
	"github.com/ByLCY/textcanvas/style"
)

// Job represents a textcanvas.yaml render job.
type Job struct {
	// Text 保持原始类型，非字符串由 textcanvas.AsText 拒绝。
	Text       any               `yaml:"text"`
	Style      map[string]any    `yaml:"style,omitempty"`
	StyleSheet string            `yaml:"styleSheet,omitempty"`
	Resolution *float64          `yaml:"resolution,omitempty"`
	Output     string            `yaml:"output,omitempty"`
	Debug      string            `yaml:"debug,omitempty"`
	Data       any               `yaml:"data,omitempty"`
	Fonts      map[string]string `yaml:"fonts,omitempty"`

	dir string
}

// Parse decodes a job from YAML bytes.
func Parse(data []byte) (*Job, error) {
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job: %w", err)
	}
	return &job, nil
}

// Load reads the job file at path.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	job, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	job.dir = filepath.Dir(path)
	return job, nil
}

// LoadOptional reads the job file if present; a missing file yields an empty job.
func LoadOptional(path string) (*Job, error) {
	if path == "" {
		return &Job{}, nil
	}
	job, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Job{}, nil
		}
		return nil, err
	}
	return job, nil
}

// Partial 合并 style 映射与 styleSheet 声明，后者覆盖前者。
func (j *Job) Partial() (style.Partial, error) {
	out := style.Partial{}
	for k, v := range j.Style {
		out[style.CanonicalKey(k)] = v
	}
	if j.StyleSheet == "" {
		return out, nil
	}
	sheet, err := dsl.ParseStyle(j.StyleSheet)
	if err != nil {
		return nil, err
	}
	for k, v := range sheet {
		out[k] = v
	}
	return out, nil
}

// FontPaths returns the font files with relative paths resolved against the job file.
func (j *Job) FontPaths() map[string]string {
	out := make(map[string]string, len(j.Fonts))
	for family, path := range j.Fonts {
		if path != "" && !filepath.IsAbs(path) && j.dir != "" {
			path = filepath.Join(j.dir, path)
		}
		out[family] = path
	}
	return out
}

// OutputPath returns the output path relative to the job file when it is relative.
func (j *Job) OutputPath() string {
	if j.Output == "" || filepath.IsAbs(j.Output) || j.dir == "" {
		return j.Output
	}
	return filepath.Join(j.dir, j.Output)
}
