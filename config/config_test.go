package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ByLCY/textcanvas/errs"
)

const sampleJob = `
text: |
  Hello, ${user.name}!
  Welcome.
style:
  fontSize: 24
  word-wrap: 200
  textAlign: left
styleSheet: "text-align: center; font-weight: bold"
resolution: 2
output: out/hello.png
data:
  user:
    name: Ada
fonts:
  Brand: fonts/brand.ttf
`

func TestLoadJob(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yaml")
	if err := os.WriteFile(path, []byte(sampleJob), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	job, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s, ok := job.Text.(string); !ok || s != "Hello, ${user.name}!\nWelcome.\n" {
		t.Fatalf("text = %#v", job.Text)
	}
	if job.Resolution == nil || *job.Resolution != 2 {
		t.Fatalf("resolution = %v", job.Resolution)
	}
	if got, want := job.OutputPath(), filepath.Join(dir, "out/hello.png"); got != want {
		t.Fatalf("OutputPath = %q, want %q", got, want)
	}
	if got, want := job.FontPaths()["Brand"], filepath.Join(dir, "fonts/brand.ttf"); got != want {
		t.Fatalf("font path = %q, want %q", got, want)
	}

	p, err := job.Partial()
	if err != nil {
		t.Fatalf("Partial: %v", err)
	}
	if p["fontSize"] != 24 || p["wordWrap"] != 200 {
		t.Fatalf("style map not carried: %+v", p)
	}
	if p["textAlign"] != "center" || p["fontWeight"] != "bold" {
		t.Fatalf("styleSheet should override style map: %+v", p)
	}
	user, ok := job.Data.(map[string]any)["user"].(map[string]any)
	if !ok || user["name"] != "Ada" {
		t.Fatalf("data = %#v", job.Data)
	}
}

func TestParseKeepsNonStringText(t *testing.T) {
	job, err := Parse([]byte("text: 42\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if job.Text != 42 {
		t.Fatalf("text = %#v, want int 42", job.Text)
	}
	if job.Resolution != nil {
		t.Fatalf("absent resolution should stay nil")
	}
}

func TestLoadOptionalMissingFile(t *testing.T) {
	job, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if job.Text != nil || job.Output != "" {
		t.Fatalf("expected empty job, got %+v", job)
	}
}

func TestPartialBadStyleSheet(t *testing.T) {
	job := &Job{StyleSheet: "font-size 12"}
	if _, err := job.Partial(); !errors.Is(err, errs.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration, got %v", err)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("text: [unclosed")); err == nil {
		t.Fatalf("malformed YAML should fail")
	}
}
