package layout

// 该文件定义排版结果，供画布绘制与调试 JSON 共用。

// Line 表示排版后的一行文本内容及其宽高（像素）。
// Width 为去除首尾空白后内容的测量宽度，Height 等于解析后的行高。
type Line struct {
	Text   string  `json:"text"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Result 保存一次排版得到的全部行与包围盒尺寸。
// Width 为最大行宽向上取整，Height 为行高之和向上取整。
type Result struct {
	Lines  []Line  `json:"lines"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Placement 记录一行文本交给绘制端时的坐标。
type Placement struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}
