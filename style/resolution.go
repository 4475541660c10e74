package style

import (
	"math"

	"github.com/ByLCY/textcanvas/errs"
)

// DefaultScale 为宿主像素密度未知时使用的分辨率。
const DefaultScale = 1.0

// ResolveResolution 校验分辨率。value 为 nil 时回退到 ambient（宿主像素密度），
// ambient 不可用时回退到 1。
func ResolveResolution(value *float64, ambient float64) (float64, error) {
	const op = "style.ResolveResolution"
	if value == nil {
		if finite(ambient) && ambient > 0 {
			return ambient, nil
		}
		return DefaultScale, nil
	}
	v := *value
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errs.New(op, errs.KindInvalidArgument, "resolution", "must be a number, got %v", v)
	}
	if v == 0 {
		return 0, errs.New(op, errs.KindInvalidRange, "resolution", "must be greater than 0")
	}
	if v < 0 {
		return 0, errs.New(op, errs.KindInvalidRange, "resolution", "must be a positive number, got %v", v)
	}
	return v, nil
}
