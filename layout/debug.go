package layout

import (
	"encoding/json"
	"os"

	"github.com/ByLCY/textcanvas/style"
)

// DebugDump 是写入调试 JSON 的内容：排版结果、所用样式与各行绘制坐标。
type DebugDump struct {
	Style      style.Config `json:"style"`
	Resolution float64      `json:"resolution"`
	Result     Result       `json:"result"`
	Anchor     float64      `json:"anchor"`
	Placements []Placement  `json:"placements"`
}

// NewDebugDump 汇总一次排版的调试信息。
func NewDebugDump(res Result, cfg style.Config, resolution float64) DebugDump {
	return DebugDump{
		Style:      cfg,
		Resolution: resolution,
		Result:     res,
		Anchor:     res.Anchor(cfg.TextAlign),
		Placements: res.Placements(cfg.TextAlign),
	}
}

// WriteDebugJSON 将排版结果输出为 JSON，便于调试或可视化。
func WriteDebugJSON(dump DebugDump, path string) error {
	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
