package layout

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ByLCY/textcanvas/style"
)

func TestWriteDebugJSON(t *testing.T) {
	cfg := style.Defaults()
	cfg.TextAlign = style.AlignCenter
	res, err := Layout("ab\ncdef", cfg, runeMeasure(10))
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	path := filepath.Join(t.TempDir(), "layout.json")
	if err := WriteDebugJSON(NewDebugDump(res, cfg, 2), path); err != nil {
		t.Fatalf("WriteDebugJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var dump DebugDump
	if err := json.Unmarshal(data, &dump); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if dump.Anchor != 20 || len(dump.Placements) != 2 || dump.Resolution != 2 {
		t.Fatalf("unexpected dump: %+v", dump)
	}
	if dump.Placements[1].Text != "cdef" || dump.Placements[1].X != 20 {
		t.Fatalf("unexpected placement: %+v", dump.Placements[1])
	}
}
